package saynumber

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScaleNameLongScale(t *testing.T) {
	testcases := []struct {
		zeros    int
		plural   bool
		expected string
	}{
		{zeros: 3, expected: "tausend"},
		{zeros: 3, plural: true, expected: "tausend"},
		{zeros: 6, expected: "million"},
		{zeros: 6, plural: true, expected: "millionen"},
		{zeros: 9, expected: "milliarde"},
		{zeros: 9, plural: true, expected: "milliarden"},
		{zeros: 12, expected: "billion"},
		{zeros: 15, expected: "billiarde"},
		{zeros: 60, expected: "dezillion"},
		{zeros: 63, expected: "dezilliarde"},
		{zeros: 123, expected: "vigintilliarde"},
		{zeros: 180, expected: "trigintillion"},
		{zeros: 309, expected: "unquinquagintilliarde"},
		{zeros: 6000, expected: "millinillion"},
		{zeros: 6000000, expected: "millinillinillion"},
		{zeros: 6000003, expected: "millinillinilliarde"},
		{zeros: 59994, expected: "nonillinovenonagintanongentillion"},
	}
	for _, v := range testcases {
		got, err := ScaleName(v.zeros, v.plural, nil)
		require.Nil(t, err)
		require.Equalf(t, v.expected, got, "scale name of 10^%v", v.zeros)
	}
}

func TestScaleNameShortScale(t *testing.T) {
	cfg := &Config{ShortScale: true}
	testcases := []struct {
		zeros    int
		plural   bool
		expected string
	}{
		{zeros: 3, expected: "thousand"},
		{zeros: 6, expected: "million"},
		{zeros: 6, plural: true, expected: "millions"},
		{zeros: 9, expected: "billion"},
		{zeros: 12, expected: "trillion"},
		{zeros: 15, plural: true, expected: "quadrillions"},
		{zeros: 60, expected: "novendecillion"},
		{zeros: 303, expected: "centillion"},
		{zeros: 309, expected: "duocentillion"},
		{zeros: 3003, expected: "millinillion"},
	}
	for _, v := range testcases {
		got, err := ScaleName(v.zeros, v.plural, cfg)
		require.Nil(t, err)
		require.Equalf(t, v.expected, got, "short scale name of 10^%v", v.zeros)
	}
}

func TestScaleNameZC(t *testing.T) {
	short, err := ScaleName(309, false, &Config{ShortScale: true})
	require.Nil(t, err)
	shortZ, err := ScaleName(309, false, &Config{ShortScale: true, ForceZ: true})
	require.Nil(t, err)
	long, err := ScaleName(309, false, nil)
	require.Nil(t, err)
	longC, err := ScaleName(309, false, &Config{ForceC: true})
	require.Nil(t, err)

	require.Equal(t, "duocentillion", short)
	require.Equal(t, "duozentillion", shortZ)
	require.NotEqual(t, short, long)
	require.Equal(t, strings.ReplaceAll(shortZ, "z", "c"), short)
	require.Equal(t, strings.ReplaceAll(long, "z", "c"), longC)

	// only the spelling changes, not the magnitude
	longZ, err := ScaleName(60, false, nil)
	require.Nil(t, err)
	longZC, err := ScaleName(60, false, &Config{ForceC: true})
	require.Nil(t, err)
	require.Equal(t, "dezillion", longZ)
	require.Equal(t, "decillion", longZC)

	_, err = ScaleName(60, false, &Config{ForceC: true, ForceZ: true})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestScaleNameDelimiter(t *testing.T) {
	testcases := []struct {
		zeros    int
		cfg      *Config
		expected string
	}{
		{zeros: 6, cfg: &Config{Delimiter: "-"}, expected: "mi-llion"},
		{zeros: 9, cfg: &Config{Delimiter: "-"}, expected: "mi-lliarde"},
		{zeros: 309, cfg: &Config{Delimiter: "-"}, expected: "un-quinquaginti-lliarde"},
		{zeros: 6000, cfg: &Config{Delimiter: "-"}, expected: "mi-lli-ni-llion"},
		{zeros: 59994, cfg: &Config{Delimiter: "-"}, expected: "noni-lli-nove-nonaginta-nongenti-llion"},
		{zeros: 309, cfg: &Config{Delimiter: "-", ShortScale: true}, expected: "duo-centi-llion"},
	}
	for _, v := range testcases {
		got, err := ScaleName(v.zeros, false, v.cfg)
		require.Nil(t, err)
		require.Equal(t, v.expected, got)
	}
}

func TestScaleNameVariants(t *testing.T) {
	got, err := ScaleName(6*18, false, &Config{Chuquet: true})
	require.Nil(t, err)
	require.Equal(t, "duodevigintillion", got)

	got, err = ScaleName(6*16, true, &Config{Synonym: true})
	require.Nil(t, err)
	require.Equal(t, "sexdezillionen", got)
}

func TestScaleNameErrors(t *testing.T) {
	for _, zeros := range []int{-3, 0, 1, 2, 4, 7, 10} {
		_, err := ScaleName(zeros, false, nil)
		require.ErrorIsf(t, err, ErrOutOfRange, "zeros %v", zeros)
	}

	// biggest multiple of 3 an int can hold
	huge := math.MaxInt - math.MaxInt%3
	_, err := ScaleName(huge, false, &Config{ShortScale: true})
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = ScaleName(maxShortScaleZeros+3, true, &Config{ShortScale: true})
	require.ErrorIs(t, err, ErrOutOfRange)

	// the long scale has no such bound
	got, err := ScaleName(huge, false, nil)
	require.Nil(t, err)
	require.True(t, strings.HasSuffix(got, "llion") || strings.HasSuffix(got, "lliarde"))
	require.NotEqual(t, "llion", got)
	require.NotEqual(t, "lliarde", got)
}

func TestScaleNamesUnique(t *testing.T) {
	for _, cfg := range []*Config{nil, {ShortScale: true}} {
		seen := map[string]int{}
		for zeros := 3; zeros <= 3*999; zeros += 3 {
			got, err := ScaleName(zeros, false, cfg)
			require.Nil(t, err)
			prev, ok := seen[got]
			require.Falsef(t, ok, "%v already used by 10^%v [10^%v]", got, prev, zeros)
			seen[got] = zeros
		}
	}
}
