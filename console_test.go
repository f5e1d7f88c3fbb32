package mathconsole_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/mathconsole"
)

// submit submits a line that must succeed.
func submit(t *testing.T, c *mathconsole.Console, line string) mathconsole.Result {
	t.Helper()
	r, err := c.Submit(line)
	require.NoError(t, err, line)
	return r
}

func TestNewConsole(t *testing.T) {
	c := mathconsole.New()
	assert.Equal(t, mathconsole.DefaultPrecision, c.Precision())
	assert.Equal(t, 0.0, c.Out())
	v, ok := c.Registry().Constant(mathconsole.OutName)
	require.True(t, ok)
	assert.Equal(t, 0.0, v)

	reg := mathconsole.NewRegistry()
	c = mathconsole.New(mathconsole.Prec(3), mathconsole.UseRegistry(reg), nil)
	assert.Equal(t, 3, c.Precision())
	assert.Same(t, reg, c.Registry())

	assert.Panics(t, func() { mathconsole.Prec(-1) })
	assert.Panics(t, func() { mathconsole.Prec(mathconsole.MaxPrecision + 1) })
}

func TestSubmitValue(t *testing.T) {
	c := mathconsole.New()
	r := submit(t, c, "1/3")
	assert.Equal(t, mathconsole.ResultValue, r.Kind)
	assert.Equal(t, "0.3333333333", r.Text)
	assert.Equal(t, "0.3333333333", r.String())
	assert.Equal(t, 1.0/3, r.Value)
	assert.Equal(t, 1.0/3, c.Out())

	assert.Equal(t, "6", submit(t, c, "OUT*18").Text)
	assert.Equal(t, "+Inf", submit(t, c, "1/0").Text)
	assert.Equal(t, "NaN", submit(t, c, "0/0").Text)
	assert.True(t, math.IsNaN(c.Out()))
	assert.Equal(t, "-Inf", submit(t, c, "-1/0").Text)
	assert.Equal(t, "1e+20", submit(t, c, "10^20").Text)
}

func TestOutIdempotent(t *testing.T) {
	c := mathconsole.New()
	for _, expr := range []string{"2^0.5", "PI*1e-7", "-123456.789012345", "1/7"} {
		first := submit(t, c, expr)
		again := submit(t, c, "OUT")
		assert.Equal(t, first.Text, again.Text, expr)
		assert.Equal(t, first.Value, again.Value, expr)
	}
}

func TestErrorsKeepOut(t *testing.T) {
	c := mathconsole.New()
	submit(t, c, "42")
	for _, line := range []string{"(1", "foo", "1 :bar: 2", "k_def:(", "_unDef:PI", "_setfloatPrec:1000", "_clear: x"} {
		_, err := c.Submit(line)
		assert.Error(t, err, line)
		assert.Equal(t, 42.0, c.Out(), line)
	}
	// Commands never change OUT.
	submit(t, c, "k_def:7")
	submit(t, c, "_setfloatPrec:5")
	submit(t, c, "_systConst:")
	assert.Equal(t, 42.0, c.Out())
	assert.Equal(t, "42", submit(t, c, "OUT").Text)
}

func TestDefineCommand(t *testing.T) {
	c := mathconsole.New()
	r := submit(t, c, "k_def:5")
	assert.Equal(t, mathconsole.ResultDefined, r.Kind)
	assert.Equal(t, "k = 5", r.Text)
	assert.Equal(t, 5.0, r.Value)
	assert.Equal(t, []mathconsole.Definition{{Name: "k", Value: 5, User: true}}, r.Defs)
	assert.Equal(t, "10", submit(t, c, "k*2").Text)

	r = submit(t, c, " twopi _def: 2*PI")
	assert.Equal(t, "twopi = 6.283185307", r.Text)
	assert.Equal(t, "1", submit(t, c, "twopi/(2*PI)").Text)

	// Definitions may use OUT and earlier definitions.
	submit(t, c, "3")
	assert.Equal(t, "k2 = 15", submit(t, c, "k2_def:OUT*k").Text)

	r = submit(t, c, "_unDef:k")
	assert.Equal(t, mathconsole.ResultUndefined, r.Kind)
	assert.Equal(t, "k removed", r.Text)
	_, err := c.Submit("k")
	var ne *mathconsole.NameError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "k", ne.Name)
	// k2 keeps the value it had when it was defined.
	assert.Equal(t, "15", submit(t, c, "k2").Text)
}

func TestDefineCommandErrors(t *testing.T) {
	cases := []struct {
		line   string
		reason error
	}{
		{"PI_def:3", mathconsole.ErrReservedName},
		{"sin_def:1", mathconsole.ErrReservedName},
		{"OUT_def:1", mathconsole.ErrReservedName},
		{"2_def:1", mathconsole.ErrInvalidName},
		{"_def:1", mathconsole.ErrInvalidName},
		{"x_def:1/0", mathconsole.ErrNotNumeric},
		{"x_def:0/0", mathconsole.ErrNotNumeric},
	}
	for _, tc := range cases {
		c := mathconsole.New()
		_, err := c.Submit(tc.line)
		var de *mathconsole.DefinitionError
		require.ErrorAs(t, err, &de, tc.line)
		assert.ErrorIs(t, err, tc.reason, tc.line)
		assert.Empty(t, c.Registry().List(mathconsole.ListUser), tc.line)
	}

	c := mathconsole.New()
	_, err := c.Submit("x_def:(1")
	var de *mathconsole.DefinitionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "x", de.Name)
	var ge *mathconsole.GroupError
	assert.ErrorAs(t, err, &ge)
	assert.False(t, c.Registry().IsUserDefined("x"))
}

func TestUndefineCommand(t *testing.T) {
	c := mathconsole.New()
	for _, line := range []string{"_unDef:PI", "_unDef:nothing", "_unDef:sin", "_unDef:OUT"} {
		_, err := c.Submit(line)
		var ue *mathconsole.UndefineError
		require.ErrorAs(t, err, &ue, line)
		assert.ErrorIs(t, err, mathconsole.ErrNotUserDefined, line)
	}
	_, err := c.Submit("k_unDef:PI")
	var ce *mathconsole.CommandError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, mathconsole.VerbUndefine, ce.Verb)
	assert.Equal(t, "k", ce.Text)
}

func TestPrecisionCommands(t *testing.T) {
	c := mathconsole.New()
	r := submit(t, c, "_floatPrec:")
	assert.Equal(t, mathconsole.ResultPrecision, r.Kind)
	assert.Equal(t, "10", r.Text)

	r = submit(t, c, "_setfloatPrec:4")
	assert.Equal(t, mathconsole.ResultPrecision, r.Kind)
	assert.Equal(t, "4", r.Text)
	assert.Equal(t, 4, c.Precision())
	assert.Equal(t, "0.3333", submit(t, c, "1/3").Text)
	assert.Equal(t, "4", submit(t, c, "_floatPrec:").Text)

	cases := map[string]int{
		"_setfloatPrec:2+2.4":   4,
		"_setfloatPrec:-3":      3,
		"_setfloatPrec: 2.5":    3,
		"_setfloatPrec:0":       0,
		"_setfloatPrec:100":     100,
		"_setfloatPrec:sqrt 49": 7,
	}
	for line, want := range cases {
		submit(t, c, line)
		assert.Equal(t, want, c.Precision(), line)
	}

	c = mathconsole.New()
	for _, line := range []string{"_setfloatPrec:101", "_setfloatPrec:1/0", "_setfloatPrec:0/0"} {
		_, err := c.Submit(line)
		var pe *mathconsole.PrecisionError
		require.ErrorAs(t, err, &pe, line)
		assert.ErrorIs(t, err, mathconsole.ErrPrecisionRange, line)
	}
	_, err := c.Submit("_setfloatPrec:foo")
	var pe *mathconsole.PrecisionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "foo", pe.Text)
	var ne *mathconsole.NameError
	assert.ErrorAs(t, err, &ne)
	assert.Equal(t, mathconsole.DefaultPrecision, c.Precision())

	require.NoError(t, c.SetPrecision(2))
	assert.Equal(t, "0.33", submit(t, c, "1/3").Text)
	assert.ErrorIs(t, c.SetPrecision(-1), mathconsole.ErrPrecisionRange)
	assert.Equal(t, 2, c.Precision())
}

func TestListCommands(t *testing.T) {
	c := mathconsole.New()
	r := submit(t, c, "_systConst:")
	assert.Equal(t, mathconsole.ResultList, r.Kind)
	builtins := c.Registry().List(mathconsole.ListBuiltins)
	assert.Equal(t, builtins, r.Defs)
	lines := strings.Split(r.Text, "\n")
	require.Len(t, lines, len(builtins))
	assert.Equal(t, "PI = 3.141592654", lines[0])
	assert.Equal(t, "PLANCK_H1 = 4.135667516e-15 [eV s]", lines[1])
	assert.Equal(t, "OUT = 0", lines[len(lines)-1])

	r = submit(t, c, "_userDefs:")
	assert.Equal(t, mathconsole.ResultList, r.Kind)
	assert.Empty(t, r.Defs)
	assert.Equal(t, "", r.Text)

	submit(t, c, "b_def:2")
	submit(t, c, "a_def:1")
	r = submit(t, c, "_userDefs:")
	assert.Equal(t, "b = 2\na = 1", r.Text)

	r = submit(t, c, "_allConstDefs:")
	require.Len(t, r.Defs, len(builtins)+2)
	assert.Equal(t, "PI", r.Defs[0].Name)
	assert.Equal(t, "b", r.Defs[len(builtins)].Name)
	assert.Equal(t, "a", r.Defs[len(builtins)+1].Name)
	assert.True(t, strings.HasSuffix(r.Text, "\nb = 2\na = 1"))

	// The listed OUT follows the answer register.
	submit(t, c, "9")
	r = submit(t, c, "_systConst:")
	assert.True(t, strings.HasSuffix(r.Text, "\nOUT = 9"))
}

func TestOutFormatCommands(t *testing.T) {
	c := mathconsole.New(mathconsole.Prec(3))
	submit(t, c, "1234.56")
	r := submit(t, c, "_OUTtoExp:")
	assert.Equal(t, mathconsole.ResultValue, r.Kind)
	assert.Equal(t, "1.235e+03", r.Text)
	assert.Equal(t, 1234.56, r.Value)
	r = submit(t, c, "_OUTtoFloat:")
	assert.Equal(t, "1234.560", r.Text)
	// The echo does not change later formatting.
	assert.Equal(t, "1.23e+03", submit(t, c, "OUT").Text)
}

func TestClearCommand(t *testing.T) {
	c := mathconsole.New()
	submit(t, c, "5")
	r := submit(t, c, "_clear:")
	assert.Equal(t, mathconsole.ResultClear, r.Kind)
	assert.Equal(t, 5.0, c.Out())
}

func TestOperandFreeVerbs(t *testing.T) {
	c := mathconsole.New()
	verbs := []string{
		mathconsole.VerbPrecision,
		mathconsole.VerbClear,
		mathconsole.VerbBuiltins,
		mathconsole.VerbUserDefs,
		mathconsole.VerbAllDefs,
		mathconsole.VerbOutExp,
		mathconsole.VerbOutFloat,
	}
	for _, v := range verbs {
		submit(t, c, "  "+v+" ")
		for _, line := range []string{"x" + v, v + "1"} {
			_, err := c.Submit(line)
			var ce *mathconsole.CommandError
			require.ErrorAs(t, err, &ce, line)
			assert.Equal(t, v, ce.Verb, line)
		}
	}
	_, err := c.Submit("3" + mathconsole.VerbSetPrecision + "4")
	var ce *mathconsole.CommandError
	assert.ErrorAs(t, err, &ce)
}

func TestVerbs(t *testing.T) {
	v := mathconsole.Verbs()
	require.Len(t, v, 10)
	assert.Equal(t, mathconsole.VerbSetPrecision, v[0])
	v[0] = "changed"
	assert.Equal(t, mathconsole.VerbSetPrecision, mathconsole.Verbs()[0])
}

func TestInfixWithRegisteredFunctions(t *testing.T) {
	reg := mathconsole.NewRegistry()
	require.NoError(t, reg.Register("add", mathconsole.Binary(func(x, y float64) float64 { return x + y })))
	require.NoError(t, reg.Register("mul", mathconsole.Binary(func(x, y float64) float64 { return x * y })))
	c := mathconsole.New(mathconsole.UseRegistry(reg))
	assert.Equal(t, "20", submit(t, c, "2 :add: 3 :mul: 4").Text)
	assert.Equal(t, "5", submit(t, c, "add 2 3").Text)
}

func TestStripPrompt(t *testing.T) {
	cases := map[string]string{
		"[CAL] << 1+2": " 1+2",
		"1+2":          "1+2",
		"<<":           "",
		"a << b << c":  " b << c",
	}
	for line, want := range cases {
		assert.Equal(t, want, mathconsole.StripPrompt(line), line)
	}
}
