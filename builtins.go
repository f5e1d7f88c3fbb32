package mathconsole

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// bigconst rounds a constant computed in extended precision to a double.
func bigconst(f func(out *big.Float) *big.Float) float64 {
	v, _ := f(new(big.Float).SetPrec(128)).Float64()
	return v
}

var (
	pi     = bigconst(bigfloat.Pi)
	napier = bigconst(func(out *big.Float) *big.Float {
		one := new(big.Float).SetPrec(out.Prec()).SetInt64(1)
		return bigfloat.Exp(out, one)
	})
	elementaryCharge = 1.602176565e-19
)

type constdef struct {
	name  string
	value float64
	unit  string
}

// builtinConstants is the built-in constant table in listing order. OUT is
// last; its value is replaced by the answer register.
var builtinConstants = []constdef{
	{"PI", pi, ""},
	{"PLANCK_H1", 4.135667516e-15, "eV s"},
	{"PLANCK_H2", 6.62606957e-34, "J s"},
	{"E", napier, ""},
	{"PLANCK_RH1", 6.58211928e-16, "eV s"},
	{"PLANCK_RH2", 1.054571726e-34, "J s"},
	{"K_BOLTZMANN_1", 8.6173324e-5, "eV/K"},
	{"K_BOLTZMANN_2", 1.3806488e-23, "J/K"},
	{"K_BOLTZMANN_3", 2.0836618e10, "Hz/K"},
	{"STEFAN_BOLTZMANN", 5.670373e-8, "W m^-2 K^-4"},
	{"GOLDENRATIO", (1 + math.Sqrt(5)) / 2, ""},
	{"ELECTRONM", 9.10938291e-31, "kg"},
	{"PROTONM", 1.67262e-27, "kg"},
	{"NEUTRONM", 1.674927351e-27, "kg"},
	{"MUONM", 1.88353130e-28, "kg"},
	{"ANTIMUONM", 1.88353130e-28, "kg"},
	{"PIONM", 2.488e-28, "kg"},
	{"ANTIPIONM", 2.488e-28, "kg"},
	{"NEUTRALPIONM", 2.406e-28, "kg"},
	{"ELECTRONG", -2.00231930436153, ""},
	{"PROTONG", 5.585694713, ""},
	{"NEUTRONG", -3.82608545, ""},
	{"MUONG", -2.0023318414, ""},
	{"ANTIMUONG", -2.0023318414, ""},
	{"ELECTRONC", elementaryCharge, "C"},
	{"PROTONC", elementaryCharge, "C"},
	{"MUONC", elementaryCharge, "C"},
	{"ANTIMUONC", elementaryCharge, "C"},
	{"NEUTRONC", 0, "C"},
	{"PIONC", elementaryCharge, "C"},
	{"ANTIPIONC", elementaryCharge, "C"},
	{"LIGHTSPEED", 299792458, "m/s"},
	{"GRAVITYACC", 9.80665, "m s^-2"},
	{"GRAVITYCONST", 6.67384e-11, "m^3 kg^-1 s^-2"},
	{"ATOMIC_UNIT", 1.660538921e-27, "kg"},
	{"KLITZING", 25812.8074434, "Ohm"},
	{"ATM_PRESSURE", 101325, "Pa"},
	{"COMPTON_0", 2.4263102389e-12, "m"},
	{"BOHR", 0.52917721092e-10, "m"},
	{"AVOGADRO", 6.02214129e23, "mol^-1"},
	{"ANGSTROM", 1e-10, "m"},
	{"GAS_CONST", 8.3144621, "J K^-1 mol^-1"},
	{"FARADAY", 9.64853399e4, "C/mol"},
	{"HUBBLE", 74.3, "km s^-1 Mpc^-1"},
	{"PERMVAC1", 8.85418781762e-12, "C V^-1 m^-1"},
	{"PERMVAC2", 4 * pi * 1e-7, "V s A^-1 m^-1"},
	{"ALPHAM", 6.6446616e-27, "kg"},
	{"ALPHAC", 2 * elementaryCharge, "C"},
	{"BOHRM_J", 9.27400968e-24, "J/T"},
	{"BOHRM_eV", 5.7883818066e-5, "eV/T"},
	{"BOHRM_Hz", 13.99624555e9, "Hz/T"},
	{"IMPEDANCE", 376.730313461, "Ohm"},
	{"COSMICV_1", 7.91, "km/s"},
	{"COSMICV_2", 11.2, "km/s"},
	{"COSMICV_3", 42.1, "km/s"},
	{"COSMICV_4", 320, "km/s"},
	{"RYDBERG", 1.0973731568539e7, "m^-1"},
	{"SOLAR", 1.36, "kW/m^2"},
	{"WIENSHIFT", 2.8977685e-3, "m K"},
	{"FINESTRUCT", 7.2973525698e-3, ""},
	{"MOLARVOL", 0.02241410, "m^3/mol"},
	{"LOSCHMIDT", 2.686763e25, "m^-3"},
	{"THOMSON", 0.66524616e-28, "m^2"},
	{"COREM_J", 5.0507866e-27, "J/T"},
	{"COREM_eV", 3.15245166e-8, "eV/T"},
	{"MAGNMOMENT_E", -928.47701e-26, "J/T"},
	{"MAGNMOMENT_P", 1.41060761e-26, "J/T"},
	{"MAGNMOMENT_N", -0.96623707e-26, "J/T"},
	{"MAGNMOMENT_M", -449.04478e-26, "J/T"},
	{"KELVIN", 273.15, "K"},
	{"EULER_CONST", 0.57721566490153286, ""},
	{"RYDBERG_ENERGY", 13.6056981, "eV"},
	{OutName, 0, ""},
}

// builtinUnary holds the unary functions other than rnd, which needs the
// registry's random source.
var builtinUnary = map[string]Unary{
	"sin": math.Sin,
	"cos": math.Cos,
	"tan": math.Tan,
	"cot": func(x float64) float64 { return 1 / math.Tan(x) },

	"sinh": math.Sinh,
	"cosh": math.Cosh,
	"tanh": math.Tanh,
	"coth": func(x float64) float64 { return 1 / math.Tanh(x) },

	"arcsin": math.Asin,
	"arccos": math.Acos,
	"arctan": math.Atan,
	"arccot": func(x float64) float64 { return math.Atan(1 / x) },

	"ln":  math.Log,
	"ld":  math.Log2,
	"lg":  math.Log10,
	"log": math.Log,
	"exp": math.Exp,

	"abs":   math.Abs,
	"sgn":   sgn,
	"floor": math.Floor,
	"ceil":  math.Ceil,
	"trunc": math.Trunc,

	"toDegree": func(x float64) float64 { return x * (180 / pi) },
	"toRadian": func(x float64) float64 { return x * pi / 180 },

	"square": func(x float64) float64 { return x * x },
	"cubic":  func(x float64) float64 { return x * x * x },
	"sqrt":   math.Sqrt,
	"cbrt":   math.Cbrt,
	"fac":    func(x float64) float64 { return math.Gamma(x + 1) },

	"sec":    func(x float64) float64 { return 1 / math.Cos(x) },
	"csc":    func(x float64) float64 { return 1 / math.Sin(x) },
	"sech":   func(x float64) float64 { return 1 / math.Cosh(x) },
	"csch":   func(x float64) float64 { return 1 / math.Sinh(x) },
	"arcsec": func(x float64) float64 { return math.Acos(1 / x) },
	"arccsc": func(x float64) float64 { return math.Asin(1 / x) },

	"arcsinh": math.Asinh,
	"arccosh": math.Acosh,
	"arctanh": math.Atanh,
	"arccoth": arcoth,

	// area functions in their logarithmic forms
	"arsinh": func(x float64) float64 { return math.Log(x + math.Sqrt(x*x+1)) },
	"arcosh": func(x float64) float64 { return math.Log(x + math.Sqrt(x*x-1)) },
	"artanh": func(x float64) float64 { return 0.5 * math.Log((1+x)/(1-x)) },
	"arcoth": arcoth,
	"arsech": func(x float64) float64 { return math.Log((1 + math.Sqrt(1-x*x)) / x) },
	"arcsch": func(x float64) float64 { return math.Log(1/x + math.Sqrt(1/(x*x)+1)) },

	"sinc":      sinc,
	"nsinc":     func(x float64) float64 { return sinc(pi * x) },
	"rect":      rect,
	"heavyside": heaviside,

	"sig1": func(x float64) float64 { return 1 / (math.Exp(-x) + 1) },
	"sig2": func(x float64) float64 { return x / math.Sqrt(x*x+1) },

	"gamma": math.Gamma,
	"lngamma": func(x float64) float64 {
		v, _ := math.Lgamma(x)
		return v
	},
	"erf":  math.Erf,
	"erfc": math.Erfc,
}

var builtinBinary = map[string]Binary{
	"min":   math.Min,
	"max":   math.Max,
	"hypot": math.Hypot,
	"atan2": math.Atan2,
	"pow":   math.Pow,
}

func sgn(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	// 0, -0, or NaN
	return x
}

func arcoth(x float64) float64 {
	return 0.5 * math.Log((x+1)/(x-1))
}

// sinc is sin(x)/x, with its limit 1 at 0.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

func rect(x float64) float64 {
	switch a := math.Abs(x); {
	case a > 0.5:
		return 0
	case a == 0.5:
		return 0.5
	case a < 0.5:
		return 1
	}
	return x
}

func heaviside(x float64) float64 {
	switch {
	case x >= 0:
		return 1
	case x < 0:
		return 0
	}
	return x
}
