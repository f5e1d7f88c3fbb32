package mathconsole

import (
	"math"
	"math/rand"
	"slices"
	"strings"
	"time"

	"fortio.org/log"
	"github.com/google/btree"
)

// Entry is a value in a Registry: a Constant, Nullary, Unary, or Binary.
type Entry interface {
	entry()
}

type (
	// Constant is a named value.
	Constant float64
	// Nullary is a function of no arguments.
	Nullary func() float64
	// Unary is a function of one argument. In an expression, it consumes the
	// primary expression that follows its name.
	Unary func(x float64) float64
	// Binary is a function of two arguments. In an expression, it consumes
	// the two primary expressions that follow its name, or it is called infix
	// as x :name: y.
	Binary func(x, y float64) float64
)

func (Constant) entry() {}
func (Nullary) entry()  {}
func (Unary) entry()    {}
func (Binary) entry()   {}

// OutName is the name under which the last answer is visible to expressions.
const OutName = "OUT"

// ListKind selects the constants returned by Registry.List.
type ListKind int

const (
	// ListBuiltins selects the built-in constants, including OUT.
	ListBuiltins ListKind = iota
	// ListUser selects user-defined constants.
	ListUser
	// ListAll selects built-in constants followed by user-defined ones.
	ListAll
)

// Definition is a constant as listed by Registry.List.
type Definition struct {
	Name  string
	Value float64
	// Unit is the physical unit of a built-in constant, if it has one.
	Unit string
	// User is whether the constant is user-defined.
	User bool
}

// Registry maps names to constants and functions. A Registry is not safe for
// concurrent use; hosts with several goroutines must serialize calls.
type Registry struct {
	entries map[string]Entry
	// builtin is the set of names that user definitions may not touch.
	builtin map[string]bool
	// consts is every constant name in listing order: built-ins as seeded,
	// then user definitions as first defined.
	consts []string
	units  map[string]string
	// index holds display names for completion.
	index *btree.BTree
	rng   *rand.Rand
}

// RegistryOption is an option used when creating a registry.
type RegistryOption interface {
	registryOption(*Registry)
}

type randopt struct {
	rng *rand.Rand
}

func (o randopt) registryOption(r *Registry) {
	r.rng = o.rng
}

// WithRand sets the source of randomness for the rnd function. The default is
// seeded from the clock.
func WithRand(rng *rand.Rand) RegistryOption {
	return randopt{rng}
}

// NewRegistry creates a registry seeded with the built-in constants and
// functions.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := Registry{
		entries: make(map[string]Entry, len(builtinConstants)+len(builtinUnary)+len(builtinBinary)+1),
		builtin: make(map[string]bool, len(builtinConstants)+len(builtinUnary)+len(builtinBinary)+1),
		consts:  make([]string, 0, len(builtinConstants)),
		units:   make(map[string]string, len(builtinConstants)),
		index:   btree.New(8),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.registryOption(&r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for _, c := range builtinConstants {
		r.seed(c.name, Constant(c.value))
		r.consts = append(r.consts, c.name)
		if c.unit != "" {
			r.units[c.name] = c.unit
		}
	}
	for name, f := range builtinUnary {
		r.seed(name, f)
	}
	r.seed("rnd", Unary(func(x float64) float64 { return x * r.rng.Float64() }))
	for name, f := range builtinBinary {
		r.seed(name, f)
	}
	return &r
}

func (r *Registry) seed(name string, e Entry) {
	r.entries[name] = e
	r.builtin[name] = true
	r.index.ReplaceOrInsert(displayName(name, e))
}

// Lookup returns the entry for a name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Constant returns the value of a constant. The result is false if name is
// not a constant.
func (r *Registry) Constant(name string) (float64, bool) {
	v, ok := r.entries[name].(Constant)
	return float64(v), ok
}

// Define sets a user-defined constant. The value is visible to every later
// evaluation. Errors are *DefinitionError, and the registry is unchanged on
// error.
func (r *Registry) Define(name string, value float64) error {
	switch {
	case r.reserved(name):
		return &DefinitionError{Name: name, Err: ErrReservedName}
	case !isIdent(name):
		return &DefinitionError{Name: name, Err: ErrInvalidName}
	case math.IsNaN(value) || math.IsInf(value, 0):
		return &DefinitionError{Name: name, Err: ErrNotNumeric}
	}
	if _, ok := r.entries[name]; !ok {
		r.consts = append(r.consts, name)
		r.index.ReplaceOrInsert(nameItem(name))
	}
	r.entries[name] = Constant(value)
	log.LogVf("define %s = %v", name, value)
	return nil
}

// Undefine removes a user-defined constant. Errors are *UndefineError.
func (r *Registry) Undefine(name string) error {
	if !r.IsUserDefined(name) {
		return &UndefineError{Name: name}
	}
	delete(r.entries, name)
	r.consts = slices.DeleteFunc(r.consts, func(s string) bool { return s == name })
	r.index.Delete(nameItem(name))
	log.LogVf("undefine %s", name)
	return nil
}

// Register adds a built-in function, e.g. a Binary function for infix calls.
// The name is reserved from then on. Errors are *DefinitionError. Panics if e
// is not a Nullary, Unary, or Binary function.
func (r *Registry) Register(name string, e Entry) error {
	var fn bool
	switch f := e.(type) {
	case Nullary:
		fn = f != nil
	case Unary:
		fn = f != nil
	case Binary:
		fn = f != nil
	}
	if !fn {
		panic("mathconsole: Register " + name + " with a non-function entry")
	}
	if !isIdent(name) {
		return &DefinitionError{Name: name, Err: ErrInvalidName}
	}
	if _, ok := r.entries[name]; ok || isVerb(name) {
		return &DefinitionError{Name: name, Err: ErrReservedName}
	}
	r.seed(name, e)
	log.LogVf("register function %s", name)
	return nil
}

// List returns constants with their values in listing order.
func (r *Registry) List(kind ListKind) []Definition {
	var defs []Definition
	for _, name := range r.consts {
		user := !r.builtin[name]
		if kind == ListBuiltins && user || kind == ListUser && !user {
			continue
		}
		v, _ := r.Constant(name)
		defs = append(defs, Definition{Name: name, Value: v, Unit: r.units[name], User: user})
	}
	return defs
}

// Names returns every name in the registry: constants in listing order, then
// functions in lexical order with a "()" suffix.
func (r *Registry) Names() []string {
	names := append([]string(nil), r.consts...)
	var fns []string
	for name, e := range r.entries {
		if _, ok := e.(Constant); !ok {
			fns = append(fns, name+"()")
		}
	}
	slices.Sort(fns)
	return append(names, fns...)
}

// Complete returns the display names beginning with prefix in lexical order.
// Function names carry a "()" suffix.
func (r *Registry) Complete(prefix string) []string {
	var names []string
	r.index.AscendGreaterOrEqual(nameItem(prefix), func(it btree.Item) bool {
		s := string(it.(nameItem))
		if !strings.HasPrefix(s, prefix) {
			return false
		}
		names = append(names, s)
		return true
	})
	return names
}

// IsUserDefined reports whether name is a user-defined constant.
func (r *Registry) IsUserDefined(name string) bool {
	_, ok := r.entries[name].(Constant)
	return ok && !r.builtin[name]
}

// IsBuiltinConstant reports whether name is a built-in constant, including
// OUT.
func (r *Registry) IsBuiltinConstant(name string) bool {
	_, ok := r.entries[name].(Constant)
	return ok && r.builtin[name]
}

// IsBuiltinFunction reports whether name, with or without a "()" suffix, is a
// function.
func (r *Registry) IsBuiltinFunction(name string) bool {
	e, ok := r.entries[strings.TrimSuffix(name, "()")]
	if !ok {
		return false
	}
	_, isConst := e.(Constant)
	return !isConst
}

// reserved reports whether user definitions may not use name.
func (r *Registry) reserved(name string) bool {
	return r.builtin[name] || r.builtin[strings.TrimSuffix(name, "()")] || isVerb(name)
}

// setOut mirrors the answer register.
func (r *Registry) setOut(v float64) {
	r.entries[OutName] = Constant(v)
}

// nameItem is a display name in the completion index.
type nameItem string

func (a nameItem) Less(than btree.Item) bool {
	return a < than.(nameItem)
}

func displayName(name string, e Entry) nameItem {
	if _, ok := e.(Constant); ok {
		return nameItem(name)
	}
	return nameItem(name + "()")
}
