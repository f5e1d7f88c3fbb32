package mathconsole

import (
	"math"
	"strconv"
	"strings"

	"fortio.org/log"
)

// Command verbs. A line containing one of these is a command rather than an
// expression.
const (
	VerbSetPrecision = "_setfloatPrec:"
	VerbPrecision    = "_floatPrec:"
	VerbDefine       = "_def:"
	VerbUndefine     = "_unDef:"
	VerbClear        = "_clear:"
	VerbBuiltins     = "_systConst:"
	VerbUserDefs     = "_userDefs:"
	VerbAllDefs      = "_allConstDefs:"
	VerbOutExp       = "_OUTtoExp:"
	VerbOutFloat     = "_OUTtoFloat:"
)

// verbs is the order in which lines are matched against verbs.
var verbs = []string{
	VerbSetPrecision,
	VerbPrecision,
	VerbDefine,
	VerbUndefine,
	VerbClear,
	VerbBuiltins,
	VerbUserDefs,
	VerbAllDefs,
	VerbOutExp,
	VerbOutFloat,
}

// Verbs returns the command verbs.
func Verbs() []string {
	return append([]string(nil), verbs...)
}

// findVerb finds the first verb in line and splits the line around it.
func findVerb(line string) (verb, lhs, rhs string, ok bool) {
	for _, v := range verbs {
		if k := strings.Index(line, v); k >= 0 {
			return v, line[:k], line[k+len(v):], true
		}
	}
	return "", "", "", false
}

// isVerb reports whether name is a verb, with or without its colon.
func isVerb(name string) bool {
	for _, v := range verbs {
		if name == v || name == strings.TrimSuffix(v, ":") {
			return true
		}
	}
	return false
}

// dispatch runs a command. lhs and rhs are the text before and after the
// verb.
func (c *Console) dispatch(verb, lhs, rhs string) (Result, error) {
	log.LogVf("command %s lhs=%q rhs=%q", verb, lhs, rhs)
	switch verb {
	case VerbDefine:
		return c.define(strings.TrimSpace(lhs), rhs)
	case VerbUndefine:
		if err := noOperand(verb, lhs); err != nil {
			return Result{}, err
		}
		name := strings.TrimSpace(rhs)
		if err := c.reg.Undefine(name); err != nil {
			return Result{}, err
		}
		return Result{Kind: ResultUndefined, Text: name + " removed"}, nil
	case VerbSetPrecision:
		if err := noOperand(verb, lhs); err != nil {
			return Result{}, err
		}
		return c.setPrecision(rhs)
	}

	// Remaining verbs take no operand.
	if err := noOperand(verb, lhs+rhs); err != nil {
		return Result{}, err
	}
	switch verb {
	case VerbPrecision:
		return Result{Kind: ResultPrecision, Text: strconv.Itoa(c.prec), Value: float64(c.prec)}, nil
	case VerbClear:
		return Result{Kind: ResultClear}, nil
	case VerbBuiltins:
		return c.list(ListBuiltins), nil
	case VerbUserDefs:
		return c.list(ListUser), nil
	case VerbAllDefs:
		return c.list(ListAll), nil
	case VerbOutExp:
		return Result{Kind: ResultValue, Text: strconv.FormatFloat(c.out, 'e', c.prec, 64), Value: c.out}, nil
	case VerbOutFloat:
		return Result{Kind: ResultValue, Text: strconv.FormatFloat(c.out, 'f', c.prec, 64), Value: c.out}, nil
	default:
		panic("mathconsole: unhandled verb " + verb)
	}
}

// define handles name_def:expr.
func (c *Console) define(name, expr string) (Result, error) {
	v, err := Eval(c.reg, expr)
	if err != nil {
		return Result{}, &DefinitionError{Name: name, Err: err}
	}
	if err := c.reg.Define(name, v); err != nil {
		return Result{}, err
	}
	def := Definition{Name: name, Value: v, User: true}
	return Result{Kind: ResultDefined, Text: name + " = " + c.Format(v), Value: v, Defs: []Definition{def}}, nil
}

// setPrecision handles _setfloatPrec:expr.
func (c *Console) setPrecision(expr string) (Result, error) {
	v, err := Eval(c.reg, expr)
	if err != nil {
		return Result{}, &PrecisionError{Text: strings.TrimSpace(expr), Err: err}
	}
	n := math.Abs(math.Round(v))
	if !(n <= MaxPrecision) {
		// Also catches NaN.
		return Result{}, &PrecisionError{Text: strings.TrimSpace(expr), Err: ErrPrecisionRange}
	}
	c.prec = int(n)
	return Result{Kind: ResultPrecision, Text: strconv.Itoa(c.prec), Value: n}, nil
}

func (c *Console) list(kind ListKind) Result {
	defs := c.reg.List(kind)
	var b strings.Builder
	for i, d := range defs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.Name)
		b.WriteString(" = ")
		b.WriteString(c.Format(d.Value))
		if d.Unit != "" {
			b.WriteString(" [" + d.Unit + "]")
		}
	}
	return Result{Kind: ResultList, Text: b.String(), Defs: defs}
}

func noOperand(verb, text string) error {
	if s := strings.TrimSpace(text); s != "" {
		return &CommandError{Verb: verb, Text: s}
	}
	return nil
}
