package money

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCoerce(t *testing.T) {
	cases := []struct {
		name  string
		in    any
		want  string
		valid bool
	}{
		{"numeric string", "1234.5", "1234.5", true},
		{"padded string", "  42 ", "42", true},
		{"grouped string", "16,528.07", "16528.07", true},
		{"negative string", "-5221.19", "-5221.19", true},
		{"float", 603.82, "603.82", true},
		{"int", 403, "403", true},
		{"int64", int64(7), "7", true},
		{"int8", int8(5), "5", true},
		{"int16", int16(-5), "-5", true},
		{"int32", int32(5), "5", true},
		{"uint", uint(5), "5", true},
		{"uint8", uint8(5), "5", true},
		{"uint16", uint16(5), "5", true},
		{"uint32", uint32(5), "5", true},
		{"uint64", uint64(5), "5", true},
		{"uint64 above int64", uint64(math.MaxUint64), "18446744073709551615", true},
		{"grouped millions", "-1,234,567.5", "-1234567.5", true},
		{"comma decimal", "12,34", Placeholder, false},
		{"misplaced group", "1,2345", Placeholder, false},
		{"leading comma", ",123", Placeholder, false},
		{"json number", json.Number("30.75"), "30.75", true},
		{"decimal", decimal.RequireFromString("1.11"), "1.11", true},
		{"word", "abc", Placeholder, false},
		{"empty", "", Placeholder, false},
		{"nil", nil, Placeholder, false},
		{"nan", math.NaN(), Placeholder, false},
		{"inf", math.Inf(1), Placeholder, false},
		{"nan text", "NaN", Placeholder, false},
		{"bool", true, Placeholder, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Coerce(tc.in)
			assert.Equal(t, tc.valid, got.IsAvailable())
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestZeroValueIsUnavailable(t *testing.T) {
	var a Amount
	assert.False(t, a.IsAvailable())
	_, ok := a.Float64()
	assert.False(t, ok)
}

func TestArithmeticPropagatesUnavailable(t *testing.T) {
	x := FromInt(10)
	bad := Unavailable()

	assert.False(t, x.Add(bad).IsAvailable())
	assert.False(t, bad.Sub(x).IsAvailable())
	assert.False(t, x.Mul(bad).IsAvailable())
	assert.False(t, x.Div(FromInt(0)).IsAvailable(), "division by zero")
	assert.False(t, bad.Neg().IsAvailable())

	assert.True(t, x.Add(FromInt(5)).Equal(FromInt(15)))
	assert.True(t, x.Div(FromInt(4)).Equal(Parse("2.5")))
	assert.True(t, x.Neg().Equal(FromInt(-10)))
}

func TestSum(t *testing.T) {
	assert.Equal(t, "30.75", Sum(Parse("5.73"), Parse("4.90"), Parse("2.67"), Parse("12.16"), Parse("5.29")).String())
	assert.False(t, Sum(FromInt(1), Unavailable()).IsAvailable())
	assert.Equal(t, "0", Sum().String())
}

func TestInt(t *testing.T) {
	n, ok := FromInt(300).Int()
	require.True(t, ok)
	assert.Equal(t, int64(300), n)

	_, ok = Parse("1.5").Int()
	assert.False(t, ok)
	_, ok = Unavailable().Int()
	assert.False(t, ok)
}

func TestRound(t *testing.T) {
	assert.Equal(t, "43.41", Parse("43.4146").Round().String())
	assert.False(t, Unavailable().Round().IsAvailable())
}

func TestJSONRoundTripKeepsSentinel(t *testing.T) {
	var doc struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
		D Amount `json:"d"`
		E Amount `json:"e"`
	}
	err := json.Unmarshal([]byte(`{"a": 16598.07, "b": "70.0", "c": "n/a", "d": null}`), &doc)
	require.NoError(t, err)

	assert.Equal(t, "16598.07", doc.A.String())
	assert.Equal(t, "70", doc.B.String())
	assert.False(t, doc.C.IsAvailable())
	assert.False(t, doc.D.IsAvailable())
	assert.False(t, doc.E.IsAvailable(), "missing key")

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":16598.07,"b":70,"c":null,"d":null,"e":null}`, string(out))
}

func TestYAMLDecode(t *testing.T) {
	var doc struct {
		Units   Amount `yaml:"units"`
		Merch   Amount `yaml:"merch"`
		Broken  Amount `yaml:"broken"`
		List    Amount `yaml:"list"`
		Missing Amount `yaml:"missing"`
	}
	src := "units: 403\nmerch: \"16528.07\"\nbroken: twelve\nlist: [1, 2]\nmissing: ~\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	assert.Equal(t, "403", doc.Units.String())
	assert.Equal(t, "16528.07", doc.Merch.String())
	assert.False(t, doc.Broken.IsAvailable())
	assert.False(t, doc.List.IsAvailable())
	assert.False(t, doc.Missing.IsAvailable())

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "units: 403")
	assert.Contains(t, string(out), "merch: 16528.07")
	assert.Contains(t, string(out), "broken: null")
}
