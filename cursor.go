package mathconsole

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// cursor is a read position in a single input line. Every grammar rule
// advances the same cursor; nothing scans ahead of it.
type cursor struct {
	src string
	pos int
}

// peek returns the rune at the cursor, or -1 at the end of input.
func (c *cursor) peek() rune {
	if c.pos >= len(c.src) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.pos:])
	return r
}

// advance moves past the rune at the cursor.
func (c *cursor) advance() {
	if c.pos >= len(c.src) {
		return
	}
	_, sz := utf8.DecodeRuneInString(c.src[c.pos:])
	c.pos += sz
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.src)
}

// rest returns the unscanned remainder of the line.
func (c *cursor) rest() string {
	return c.src[c.pos:]
}

// col returns the 1-based rune column of the cursor.
func (c *cursor) col() int {
	return utf8.RuneCountInString(c.src[:c.pos]) + 1
}

func (c *cursor) skipSpaces() {
	for !c.eof() && unicode.IsSpace(c.peek()) {
		c.advance()
	}
}

// scanNumber scans a decimal floating-point literal: digits with an optional
// point, then an optional exponent. An exponent marker that is not followed by
// digits is left unscanned, so "2e" is the number 2 followed by e. ok is false
// if the literal has no digits at all; the cursor is then unchanged.
func (c *cursor) scanNumber() (v float64, ok bool) {
	start := c.pos
	dig := false
	for !c.eof() && isDigit(c.src[c.pos]) {
		c.pos++
		dig = true
	}
	if !c.eof() && c.src[c.pos] == '.' {
		c.pos++
		for !c.eof() && isDigit(c.src[c.pos]) {
			c.pos++
			dig = true
		}
	}
	if !dig {
		c.pos = start
		return 0, false
	}
	if !c.eof() && (c.src[c.pos] == 'e' || c.src[c.pos] == 'E') {
		k := c.pos + 1
		if k < len(c.src) && (c.src[k] == '+' || c.src[k] == '-') {
			k++
		}
		if k < len(c.src) && isDigit(c.src[k]) {
			for k < len(c.src) && isDigit(c.src[k]) {
				k++
			}
			c.pos = k
		}
	}
	// Out-of-range literals still give ±Inf or 0, which is what we want.
	v, _ = strconv.ParseFloat(c.src[start:c.pos], 64)
	return v, true
}

// scanIdent scans an identifier. The result is empty if the cursor is not at
// the start of one.
func (c *cursor) scanIdent() string {
	start := c.pos
	if r := c.peek(); r != '_' && !unicode.IsLetter(r) {
		return ""
	}
	c.advance()
	for !c.eof() {
		r := c.peek()
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		c.advance()
	}
	return c.src[start:c.pos]
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// isIdent reports whether s is exactly one identifier.
func isIdent(s string) bool {
	c := cursor{src: s}
	return s != "" && c.scanIdent() == s
}
