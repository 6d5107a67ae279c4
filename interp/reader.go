package interp

import (
	"bufio"
	"go/token"
	"io"
	"strconv"
	"strings"
)

// Reader turns a byte stream into Values, one top-level expression at
// a time (spec §4.4). It mirrors the teacher's habit of carrying a
// *token.FileSet/token.Pos on everything so errors can report a
// precise source position, even though the grammar it parses is not
// Go.
type Reader struct {
	br   *bufio.Reader
	heap *Heap
	fset *token.FileSet
	file *token.File
	pos  int // 0-based byte offset into file, for Pos()

	// atEOF is set once a Read() call hits end-of-stream before
	// producing any token, distinguishing genuine end-of-input from a
	// value that merely happens to print as "()" (spec §4.4, §6).
	atEOF bool
}

// NewReader wraps r for s-expression parsing. The synthetic token.File
// is given a fixed size of 1<<30 bytes; line starts are recorded in it
// as newlines are consumed.
func NewReader(r io.Reader, heap *Heap) *Reader {
	fset := token.NewFileSet()
	file := fset.AddFile("<input>", -1, 1<<30)
	return &Reader{br: bufio.NewReader(r), heap: heap, fset: fset, file: file}
}

// AtEOF reports whether the most recent Read() returned Nil because
// the stream was exhausted before any token appeared.
func (r *Reader) AtEOF() bool { return r.atEOF }

func (r *Reader) position() token.Position {
	return r.file.Position(r.file.Pos(r.pos))
}

func (r *Reader) syntaxErrorf(format string, args ...interface{}) *SchemeError {
	e := newSyntaxError(format, args...)
	e.Pos = r.position()
	return e
}

func (r *Reader) incompleteSyntaxErrorf(format string, args ...interface{}) *SchemeError {
	e := newIncompleteSyntaxError(format, args...)
	e.Pos = r.position()
	return e
}

func (r *Reader) peek() (byte, error) {
	b, err := r.br.Peek(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) advance() (byte, error) {
	b, err := r.br.ReadByte()
	if err == nil {
		r.pos++
		if b == '\n' {
			r.file.AddLine(r.pos)
		}
	}
	return b, err
}

func (r *Reader) skipWhitespace() {
	for {
		b, err := r.peek()
		if err != nil {
			return
		}
		switch {
		case isASCIISpace(b):
			r.advance()
		case b == ';':
			for {
				c, err := r.advance()
				if err != nil || c == '\n' {
					break
				}
			}
		default:
			return
		}
	}
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isSymbolLead(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') ||
		strings.IndexByte("+-*/><=%!?", b) >= 0
}

func isSymbolBody(b byte) bool {
	if (b >= '0' && b <= '9') || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') {
		return true
	}
	return strings.IndexByte("!$%&*/:<=>?^_~+-", b) >= 0
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Read parses exactly one top-level expression. End-of-stream before
// any token produces Nil with a nil error and sets AtEOF (spec §4.4).
func (r *Reader) Read() (Value, error) {
	r.atEOF = false
	r.skipWhitespace()
	b, err := r.peek()
	if err != nil {
		r.atEOF = true
		return Nil, nil
	}
	switch {
	case b == '(':
		r.advance()
		return r.readList()
	case b == ')':
		r.advance()
		return Nil, r.syntaxErrorf("unexpected closing paren")
	case b == '"':
		return r.readString()
	case b == '#':
		return r.readHash()
	case b == '\'':
		r.advance()
		return r.readQuote()
	case b == '+' || b == '-':
		return r.readSignedOrSymbol(b)
	case isDigit(b):
		return r.readNumber("")
	case isSymbolLead(b):
		return r.readSymbol("")
	default:
		r.advance()
		return Nil, r.syntaxErrorf("unexpected character %q", rune(b))
	}
}

func (r *Reader) readQuote() (Value, error) {
	quoted, err := r.Read()
	if err != nil {
		return Nil, err
	}
	if r.atEOF {
		return Nil, r.incompleteSyntaxErrorf("unexpected end of input after quote")
	}
	quoteSym := RefValue(HeapRef(KeywordQuote))
	return r.heap.AllocList([]Value{quoteSym, quoted}), nil
}

func (r *Reader) readSignedOrSymbol(sign byte) (Value, error) {
	r.advance()
	next, err := r.peek()
	if err == nil && isDigit(next) {
		return r.readNumber(string(sign))
	}
	return r.readSymbol(string(sign))
}

func (r *Reader) readNumber(prefix string) (Value, error) {
	var sb strings.Builder
	sb.WriteString(prefix)
	hasDot, hasExp := false, false
	for {
		b, err := r.peek()
		if err != nil {
			break
		}
		switch {
		case isDigit(b):
			sb.WriteByte(b)
			r.advance()
		case b == '.' && !hasDot && !hasExp:
			hasDot = true
			sb.WriteByte(b)
			r.advance()
		case (b == 'e' || b == 'E') && !hasExp:
			hasExp = true
			sb.WriteByte(b)
			r.advance()
			if sign, err := r.peek(); err == nil && (sign == '+' || sign == '-') {
				sb.WriteByte(sign)
				r.advance()
			}
		default:
			goto done
		}
	}
done:
	text := sb.String()
	if hasDot || hasExp {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Nil, r.syntaxErrorf("invalid numeric literal %q", text)
		}
		return FloatValue(f), nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Nil, r.syntaxErrorf("invalid numeric literal %q", text)
	}
	return IntValue(n), nil
}

func (r *Reader) readSymbol(lead string) (Value, error) {
	var sb strings.Builder
	sb.WriteString(lead)
	for {
		b, err := r.peek()
		if err != nil || !isSymbolBody(b) {
			break
		}
		sb.WriteByte(b)
		r.advance()
	}
	name := sb.String()
	if name == "" {
		return Nil, r.syntaxErrorf("empty symbol")
	}
	return RefValue(r.heap.InternSymbol(name)), nil
}

func (r *Reader) readString() (Value, error) {
	r.advance() // opening quote
	var sb strings.Builder
	for {
		b, err := r.advance()
		if err != nil {
			return Nil, r.incompleteSyntaxErrorf("unterminated string literal")
		}
		switch b {
		case '"':
			return RefValue(r.heap.AllocString(sb.String())), nil
		case '\\':
			esc, err := r.advance()
			if err != nil {
				return Nil, r.incompleteSyntaxErrorf("unterminated string literal")
			}
			sb.WriteByte(esc)
		default:
			sb.WriteByte(b)
		}
	}
}

// isDotSeparator reports whether the reader is positioned at a bare
// "." token (a dotted-pair separator). A standalone dot is one not
// immediately followed by another symbol-body byte; a '.' that is so
// followed is not a separator, and Read rejects it as an unexpected
// character.
func (r *Reader) isDotSeparator() bool {
	b, err := r.peek()
	if err != nil || b != '.' {
		return false
	}
	two, err := r.br.Peek(2)
	if err != nil {
		return true // "." at end of stream: treat as separator, let the caller fail on what follows
	}
	return !isSymbolBody(two[1])
}

func (r *Reader) readList() (Value, error) {
	var elems []Value
	tail := Nil
	r.skipWhitespace()
	for {
		b, err := r.peek()
		if err != nil {
			return Nil, r.incompleteSyntaxErrorf("unterminated list")
		}
		if b == ')' {
			r.advance()
			break
		}
		if r.isDotSeparator() {
			r.advance()
			r.skipWhitespace()
			v, err := r.Read()
			if err != nil {
				return Nil, err
			}
			if r.atEOF {
				return Nil, r.incompleteSyntaxErrorf("unterminated list")
			}
			tail = v
			r.skipWhitespace()
			b, err := r.peek()
			if err != nil || b != ')' {
				return Nil, r.syntaxErrorf("expected ')' after dotted pair tail")
			}
			r.advance()
			break
		}
		v, err := r.Read()
		if err != nil {
			return Nil, err
		}
		if r.atEOF {
			return Nil, r.incompleteSyntaxErrorf("unterminated list")
		}
		elems = append(elems, v)
		r.skipWhitespace()
	}
	result := tail
	for idx := len(elems) - 1; idx >= 0; idx-- {
		result = RefValue(r.heap.AllocPair(elems[idx], result))
	}
	return result, nil
}

var namedChars = map[string]rune{
	"space":     ' ',
	"tab":       '\t',
	"newline":   '\n',
	"return":    '\r',
	"backspace": '\b',
}

func (r *Reader) readHash() (Value, error) {
	r.advance() // '#'
	b, err := r.peek()
	if err != nil {
		return Nil, r.incompleteSyntaxErrorf("unexpected end of input after '#'")
	}
	switch {
	case b == 't' || b == 'T':
		r.advance()
		return BoolValue(true), nil
	case b == 'f' || b == 'F':
		r.advance()
		return BoolValue(false), nil
	case b == 'b' || b == 'o' || b == 'd' || b == 'x':
		return r.readRadixInt(b)
	case b == '\\':
		r.advance()
		return r.readCharLiteral()
	default:
		r.advance()
		return Nil, r.syntaxErrorf("invalid hash sequence '#%c'", b)
	}
}

func (r *Reader) readRadixInt(radixChar byte) (Value, error) {
	r.advance() // radix letter
	base := map[byte]int{'b': 2, 'o': 8, 'd': 10, 'x': 16}[radixChar]
	var sb strings.Builder
	for {
		b, err := r.peek()
		if err != nil || !isSymbolBody(b) {
			break
		}
		sb.WriteByte(b)
		r.advance()
	}
	text := sb.String()
	n, err := strconv.ParseInt(text, base, 64)
	if err != nil {
		return Nil, r.syntaxErrorf("invalid #%c integer literal %q", radixChar, text)
	}
	return IntValue(n), nil
}

func (r *Reader) readCharLiteral() (Value, error) {
	var sb strings.Builder
	first, err := r.advance()
	if err != nil {
		return Nil, r.incompleteSyntaxErrorf("unexpected end of input in character literal")
	}
	sb.WriteByte(first)
	if isSymbolBody(first) {
		for {
			b, err := r.peek()
			if err != nil || !isSymbolBody(b) {
				break
			}
			sb.WriteByte(b)
			r.advance()
		}
	}
	text := sb.String()
	if len(text) == 1 {
		return CharValue(rune(text[0])), nil
	}
	if c, ok := namedChars[strings.ToLower(text)]; ok {
		return CharValue(c), nil
	}
	return Nil, r.syntaxErrorf("invalid character literal #\\%s", text)
}
