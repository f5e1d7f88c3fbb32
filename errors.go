package mathconsole

import (
	"errors"
	"strconv"
)

// NameError is an error indicating an identifier that names no constant or
// function. It implements InputError.
type NameError struct {
	// Col is the position of the identifier.
	Col int
	// Name is the identifier that was not found.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "call to unknown function or constant "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// GroupError is an error indicating a group whose closing delimiter did not
// follow its contents. It implements InputError.
type GroupError struct {
	// Col is the position where the closing delimiter was expected.
	Col int
	// Open is the opening delimiter.
	Open string
	// Close is the expected closing delimiter.
	Close string
}

func (err *GroupError) Error() string {
	return errpos(err.Col, "terminating "+strconv.Quote(err.Close)+" missing for "+strconv.Quote(err.Open))
}

func (err *GroupError) Pos() int {
	return err.Col
}

// ColonError is an error indicating an infix call :name without the colon
// that ends it. It implements InputError.
type ColonError struct {
	// Col is the position where the colon was expected.
	Col int
	// Name is the function name of the infix call.
	Name string
}

func (err *ColonError) Error() string {
	return errpos(err.Col, "missing terminating ':' at infix call to "+strconv.Quote(err.Name))
}

func (err *ColonError) Pos() int {
	return err.Col
}

// InfixError is an error indicating an infix call to a name that is not a
// binary function. It implements InputError.
type InfixError struct {
	// Col is the position of the name.
	Col int
	// Name is the name between the colons.
	Name string
}

func (err *InfixError) Error() string {
	return errpos(err.Col, "infix call to unknown function "+strconv.Quote(err.Name))
}

func (err *InfixError) Pos() int {
	return err.Col
}

// ValueError is an error indicating input that cannot start a value. It
// implements InputError.
type ValueError struct {
	// Col is the position of the offending input.
	Col int
	// Text is the input from that position on. It is empty at end of input.
	Text string
}

func (err *ValueError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, "expected value at end of input")
	}
	return errpos(err.Col, "expected value here: "+err.Text)
}

func (err *ValueError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating input left over after a complete
// expression. It implements InputError.
type TrailingError struct {
	// Col is the position of the leftover input.
	Col int
	// Rest is the leftover input.
	Rest string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected input after expression: "+strconv.Quote(err.Rest))
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every syntax error from
// evaluating an expression implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column in the expression where the error
	// was detected.
	Pos() int
}

var (
	_ InputError = (*NameError)(nil)
	_ InputError = (*GroupError)(nil)
	_ InputError = (*ColonError)(nil)
	_ InputError = (*InfixError)(nil)
	_ InputError = (*ValueError)(nil)
	_ InputError = (*TrailingError)(nil)
)

// Reasons wrapped by definition and command errors.
var (
	// ErrReservedName means the name belongs to a built-in constant, a
	// function, or a command verb.
	ErrReservedName = errors.New("reserved name")
	// ErrInvalidName means the name is not an identifier.
	ErrInvalidName = errors.New("not a valid name")
	// ErrNotNumeric means a value is NaN or infinite where a number is needed.
	ErrNotNumeric = errors.New("value is not a finite number")
	// ErrNotUserDefined means the name is not a user-defined constant.
	ErrNotUserDefined = errors.New("not in user list")
	// ErrPrecisionRange means a precision is outside [0, MaxPrecision].
	ErrPrecisionRange = errors.New("precision out of range")
)

// DefinitionError is an error from defining a constant or registering a
// function. Err is either a reason sentinel or the error from evaluating the
// defining expression.
type DefinitionError struct {
	Name string
	Err  error
}

func (err *DefinitionError) Error() string {
	return "definition of " + strconv.Quote(err.Name) + " failed: " + err.Err.Error()
}

func (err *DefinitionError) Unwrap() error {
	return err.Err
}

// UndefineError is an error from removing a constant that is not
// user-defined. It unwraps to ErrNotUserDefined.
type UndefineError struct {
	Name string
}

func (err *UndefineError) Error() string {
	return strconv.Quote(err.Name) + " " + ErrNotUserDefined.Error()
}

func (err *UndefineError) Unwrap() error {
	return ErrNotUserDefined
}

// PrecisionError is an error from setting the output precision. Err is
// ErrPrecisionRange or the error from evaluating the operand.
type PrecisionError struct {
	// Text is the operand of the command.
	Text string
	Err  error
}

func (err *PrecisionError) Error() string {
	return "setting precision to " + strconv.Quote(err.Text) + " failed: " + err.Err.Error()
}

func (err *PrecisionError) Unwrap() error {
	return err.Err
}

// CommandError is an error indicating text around a command verb that does
// not take it.
type CommandError struct {
	Verb string
	Text string
}

func (err *CommandError) Error() string {
	return "command " + err.Verb + " does not take " + strconv.Quote(err.Text)
}
