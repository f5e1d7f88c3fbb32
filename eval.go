package mathconsole

import (
	"math"
)

// unary-op        = '+' | '-' | '#'
// primary         = unary-op primary | double | call | group
// call            = identifier | identifier primary | identifier primary primary
// group           = '(' sum ')' | '[' sum ']' | '{' sum '}' | '|' sum '|'
// infix           = primary { ':' identifier ':' primary }
// root            = infix [ '#' root ]
// power           = root [ '^' power ]
// product         = power { ('*' | '/' | '%') power }
// sum             = product { ('+' | '-') product }
//
// There is no syntax tree. Each rule computes its value as it parses.

// Eval evaluates an expression using the constants and functions in reg. The
// whole of src must be one expression. Arithmetic follows IEEE-754, so e.g.
// 1/0 is +Inf and ln(-1) is NaN; only syntax problems are errors, and every
// such error implements InputError.
func Eval(reg *Registry, src string) (float64, error) {
	p := parser{reg: reg, c: cursor{src: src}}
	v, err := p.sum()
	if err != nil {
		return 0, err
	}
	p.c.skipSpaces()
	if !p.c.eof() {
		return 0, &TrailingError{Col: p.c.col(), Rest: p.c.rest()}
	}
	return v, nil
}

// parser evaluates one expression. Each method consumes one rule from the
// shared cursor.
type parser struct {
	reg *Registry
	c   cursor
}

func (p *parser) sum() (float64, error) {
	sum, err := p.product()
	if err != nil {
		return 0, err
	}
	for {
		p.c.skipSpaces()
		switch p.c.peek() {
		case '+':
			p.c.advance()
			r, err := p.product()
			if err != nil {
				return 0, err
			}
			sum += r
		case '-':
			p.c.advance()
			r, err := p.product()
			if err != nil {
				return 0, err
			}
			sum -= r
		default:
			return sum, nil
		}
	}
}

func (p *parser) product() (float64, error) {
	prod, err := p.power()
	if err != nil {
		return 0, err
	}
	for {
		p.c.skipSpaces()
		op := p.c.peek()
		if op != '*' && op != '/' && op != '%' {
			return prod, nil
		}
		p.c.advance()
		r, err := p.power()
		if err != nil {
			return 0, err
		}
		switch op {
		case '*':
			prod *= r
		case '/':
			prod /= r
		case '%':
			prod = math.Mod(prod, r)
		}
	}
}

// power is right-associative: 2^3^2 is 2^(3^2).
func (p *parser) power() (float64, error) {
	base, err := p.root()
	if err != nil {
		return 0, err
	}
	p.c.skipSpaces()
	if p.c.peek() != '^' {
		return base, nil
	}
	p.c.advance()
	exp, err := p.power()
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

// root is right-associative with the degree on the left: n#x is x^(1/n).
func (p *parser) root() (float64, error) {
	deg, err := p.infix()
	if err != nil {
		return 0, err
	}
	p.c.skipSpaces()
	if p.c.peek() != '#' {
		return deg, nil
	}
	p.c.advance()
	x, err := p.root()
	if err != nil {
		return 0, err
	}
	return math.Pow(x, 1/deg), nil
}

// infix evaluates a left-associative chain of binary functions called as
// x :name: y.
func (p *parser) infix() (float64, error) {
	x, err := p.primary()
	if err != nil {
		return 0, err
	}
	for {
		p.c.skipSpaces()
		if p.c.peek() != ':' {
			return x, nil
		}
		p.c.advance()
		p.c.skipSpaces()
		col := p.c.col()
		name := p.c.scanIdent()
		p.c.skipSpaces()
		if p.c.peek() != ':' {
			return 0, &ColonError{Col: p.c.col(), Name: name}
		}
		f, ok := p.reg.entries[name].(Binary)
		if !ok {
			return 0, &InfixError{Col: col, Name: name}
		}
		p.c.advance()
		y, err := p.primary()
		if err != nil {
			return 0, err
		}
		x = f(x, y)
	}
}

func (p *parser) primary() (float64, error) {
	p.c.skipSpaces()
	switch p.c.peek() {
	case '+':
		p.c.advance()
		return p.primary()
	case '-':
		p.c.advance()
		x, err := p.primary()
		return -x, err
	case '#':
		p.c.advance()
		x, err := p.primary()
		return math.Sqrt(x), err
	case '(', '[', '{':
		return p.group()
	case '|':
		x, err := p.group()
		return math.Abs(x), err
	}
	if v, ok := p.c.scanNumber(); ok {
		return v, nil
	}
	col := p.c.col()
	if name := p.c.scanIdent(); name != "" {
		return p.call(name, col)
	}
	return 0, &ValueError{Col: col, Text: p.c.rest()}
}

// call resolves an identifier. Functions take their arguments from the
// primary expressions that follow the name.
func (p *parser) call(name string, col int) (float64, error) {
	e, ok := p.reg.entries[name]
	if !ok {
		return 0, &NameError{Col: col, Name: name}
	}
	switch f := e.(type) {
	case Constant:
		return float64(f), nil
	case Nullary:
		return f(), nil
	case Unary:
		x, err := p.primary()
		if err != nil {
			return 0, err
		}
		return f(x), nil
	case Binary:
		x, err := p.primary()
		if err != nil {
			return 0, err
		}
		y, err := p.primary()
		if err != nil {
			return 0, err
		}
		return f(x, y), nil
	default:
		panic("mathconsole: invalid registry entry for " + name)
	}
}

// group evaluates a delimited sum. The closing delimiter must come directly
// after the sum.
func (p *parser) group() (float64, error) {
	open := p.c.peek()
	var closer rune
	switch open {
	case '(':
		closer = ')'
	case '[':
		closer = ']'
	case '{':
		closer = '}'
	case '|':
		closer = '|'
	default:
		panic("mathconsole: group at " + string(open))
	}
	p.c.advance()
	v, err := p.sum()
	if err != nil {
		return 0, err
	}
	if p.c.peek() != closer {
		return 0, &GroupError{Col: p.c.col(), Open: string(open), Close: string(closer)}
	}
	p.c.advance()
	return v, nil
}
