package mathconsole

import (
	"strconv"
	"strings"

	"fortio.org/log"
)

const (
	// DefaultPrecision is the number of significant digits in results of a
	// new Console.
	DefaultPrecision = 10
	// MaxPrecision is the largest precision a Console accepts.
	MaxPrecision = 100
)

// Console routes submitted lines to the command dispatcher or the evaluator
// and keeps the answer register. It is not safe to use a Console
// concurrently.
type Console struct {
	reg  *Registry
	out  float64
	prec int
}

// Option is an option used when creating a console.
type Option interface {
	consoleOption(*Console)
}

type (
	precopt int
	regopt  struct {
		reg *Registry
	}
)

func (o precopt) consoleOption(c *Console) {
	c.prec = int(o)
}

func (o regopt) consoleOption(c *Console) {
	c.reg = o.reg
}

// Prec sets the number of significant digits in formatted results. Panics if
// n is outside [0, MaxPrecision].
func Prec(n int) Option {
	if n < 0 || n > MaxPrecision {
		panic("mathconsole: precision " + strconv.Itoa(n) + " out of range")
	}
	return precopt(n)
}

// UseRegistry makes the console use an existing registry, e.g. one with
// extra functions registered. By default, a console creates its own.
func UseRegistry(reg *Registry) Option {
	return regopt{reg}
}

// New creates a console. OUT starts at 0.
func New(opts ...Option) *Console {
	c := Console{prec: DefaultPrecision}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.consoleOption(&c)
	}
	if c.reg == nil {
		c.reg = NewRegistry()
	}
	c.setOut(0)
	return &c
}

// ResultKind identifies what a submitted line did.
type ResultKind int

const (
	// ResultValue is a computed or echoed value.
	ResultValue ResultKind = iota
	// ResultDefined is a new or changed user constant.
	ResultDefined
	// ResultUndefined is a removed user constant.
	ResultUndefined
	// ResultPrecision is a set or queried precision.
	ResultPrecision
	// ResultList is a listing of constants.
	ResultList
	// ResultClear asks the host to clear its display.
	ResultClear
)

// Result is the outcome of a submitted line.
type Result struct {
	Kind ResultKind
	// Text is the formatted result for display.
	Text string
	// Value is the numeric result, if the line has one.
	Value float64
	// Defs is the constants that a definition or listing concerns.
	Defs []Definition
}

func (r Result) String() string {
	return r.Text
}

// Submit handles one line of input. A line containing a command verb runs
// that command; any other line is an expression whose value becomes OUT.
// Errors leave the registry and OUT unchanged.
func (c *Console) Submit(line string) (Result, error) {
	log.LogVf("submit %q", line)
	if verb, lhs, rhs, ok := findVerb(line); ok {
		return c.dispatch(verb, lhs, rhs)
	}
	v, err := Eval(c.reg, line)
	if err != nil {
		return Result{}, err
	}
	c.setOut(v)
	return Result{Kind: ResultValue, Text: c.Format(v), Value: v}, nil
}

// Eval evaluates an expression without changing OUT.
func (c *Console) Eval(expr string) (float64, error) {
	return Eval(c.reg, expr)
}

// Format formats a value with the console's precision. NaN and infinities
// are NaN, +Inf, and -Inf.
func (c *Console) Format(v float64) string {
	return strconv.FormatFloat(v, 'g', c.prec, 64)
}

// Out returns the answer register.
func (c *Console) Out() float64 {
	return c.out
}

// Precision returns the number of significant digits in formatted results.
func (c *Console) Precision() int {
	return c.prec
}

// SetPrecision sets the number of significant digits in formatted results.
// Errors are *PrecisionError.
func (c *Console) SetPrecision(n int) error {
	if n < 0 || n > MaxPrecision {
		return &PrecisionError{Text: strconv.Itoa(n), Err: ErrPrecisionRange}
	}
	c.prec = n
	return nil
}

// Registry returns the console's registry.
func (c *Console) Registry() *Registry {
	return c.reg
}

func (c *Console) setOut(v float64) {
	c.out = v
	c.reg.setOut(v)
}

// StripPrompt returns the part of a console line after its prompt, e.g.
// "1+2" from "[CAL] << 1+2". A line without a prompt is returned unchanged.
func StripPrompt(line string) string {
	if _, after, ok := strings.Cut(line, "<<"); ok {
		return after
	}
	return line
}
