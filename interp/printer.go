package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders v per the printer rules of spec §6.
func Print(i *Interpreter, v Value) string {
	var sb strings.Builder
	writeValue(&sb, i, v)
	return sb.String()
}

func writeValue(sb *strings.Builder, i *Interpreter, v Value) {
	switch v.Kind {
	case KindInteger:
		sb.WriteString(strconv.FormatInt(v.I, 10))
	case KindFloat:
		sb.WriteString(formatFloat(v.F))
	case KindBoolean:
		if v.B {
			sb.WriteString("#t")
		} else {
			sb.WriteString("#f")
		}
	case KindChar:
		sb.WriteRune(v.C)
	case KindNil:
		sb.WriteString("()")
	case KindHeapRef:
		writeHeapObject(sb, i, v.Ref)
	default:
		sb.WriteString("#<unprintable>")
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func writeHeapObject(sb *strings.Builder, i *Interpreter, ref HeapRef) {
	obj, err := i.Heap.Get(ref)
	if err != nil {
		sb.WriteString("#<error>")
		return
	}
	switch o := obj.(type) {
	case *symbolObject:
		sb.WriteString(o.name)
	case *stringObject:
		sb.WriteByte('"')
		for _, r := range o.s {
			if r == '"' || r == '\\' {
				sb.WriteByte('\\')
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('"')
	case *primitiveObject:
		fmt.Fprintf(sb, "<primitive %p>", o)
	case *closureObject:
		fmt.Fprintf(sb, "<closure %d>", ref)
	case *pairObject:
		writePair(sb, i, o)
	default:
		sb.WriteString("#<unknown>")
	}
}

func writePair(sb *strings.Builder, i *Interpreter, p *pairObject) {
	sb.WriteByte('(')
	writeValue(sb, i, p.car)
	cdr := p.cdr
	for {
		if cdr.Kind == KindNil {
			break
		}
		if cdr.Kind == KindHeapRef {
			obj, err := i.Heap.Get(cdr.Ref)
			if err == nil {
				if next, ok := obj.(*pairObject); ok {
					sb.WriteByte(' ')
					writeValue(sb, i, next.car)
					cdr = next.cdr
					continue
				}
			}
		}
		sb.WriteString(" . ")
		writeValue(sb, i, cdr)
		break
	}
	sb.WriteByte(')')
}
