package saynumber

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLatinConsistence(t *testing.T) {
	seen := map[string]int{}
	for n := 1; n < 1000; n++ {
		name, err := LatinPrefix(n, nil)
		require.Nil(t, err)
		prev, ok := seen[name]
		require.Falsef(t, ok, "%v already used by %v [%v]", name, prev, n)
		seen[name] = n
	}
	require.Len(t, seen, 999)
}

func TestLatinOnes(t *testing.T) {
	expected := []string{"mi", "bi", "tri", "quadri", "quinti", "sexti", "septi", "okti", "noni"}
	for i, v := range expected {
		got, err := LatinPrefix(i+1, nil)
		require.Nil(t, err)
		require.Equal(t, v, got)
	}
}

func TestLatinTensAndHundreds(t *testing.T) {
	testcases := []struct {
		n        int
		expected string
	}{
		{n: 10, expected: "dezi"},
		{n: 20, expected: "viginti"},
		{n: 30, expected: "triginta"},
		{n: 40, expected: "quadraginta"},
		{n: 50, expected: "quinquaginta"},
		{n: 60, expected: "sexaginta"},
		{n: 70, expected: "septuaginta"},
		{n: 80, expected: "oktoginta"},
		{n: 90, expected: "nonaginta"},
		{n: 100, expected: "zenti"},
		{n: 200, expected: "duzenti"},
		{n: 300, expected: "trezenti"},
		{n: 400, expected: "quadringenti"},
		{n: 500, expected: "quingenti"},
		{n: 600, expected: "seszenti"},
		{n: 700, expected: "septingenti"},
		{n: 800, expected: "oktingenti"},
		{n: 900, expected: "nongenti"},
		{n: 110, expected: "dezizenti"},
	}
	for _, v := range testcases {
		got, err := LatinPrefix(v.n, nil)
		require.Nil(t, err)
		require.Equalf(t, v.expected, got, "latin prefix of %v", v.n)
	}
}

func TestLatinCombined(t *testing.T) {
	testcases := []struct {
		n        int
		expected string
	}{
		{n: 42, expected: "duoquadraginta"},
		{n: 26, expected: "sesviginti"},
		{n: 67, expected: "septensexaginta"},
		{n: 406, expected: "sesquadringenti"},
		{n: 666, expected: "sesexagintaseszenti"},
		{n: 113, expected: "tredezizenti"},
		{n: 999, expected: "novenonagintanongenti"},
		// exceptions
		{n: 15, expected: "quindezi"},
		{n: 103, expected: "treszenti"},
	}
	for _, v := range testcases {
		got, err := LatinPrefix(v.n, nil)
		require.Nil(t, err)
		require.Equalf(t, v.expected, got, "latin prefix of %v", v.n)
	}
}

func TestLatinDelimiter(t *testing.T) {
	cfg := &Config{Delimiter: "-"}
	got, err := LatinPrefix(666, cfg)
	require.Nil(t, err)
	require.Equal(t, "se-sexaginta-seszenti", got)

	got, err = LatinPrefix(103, cfg)
	require.Nil(t, err)
	require.Equal(t, "tres-zenti", got)

	for n := 1; n < 1000; n++ {
		plain, err := LatinPrefix(n, nil)
		require.Nil(t, err)
		delimited, err := LatinPrefix(n, cfg)
		require.Nil(t, err)
		require.Equal(t, plain, strings.Join(strings.Split(delimited, "-"), ""))
	}
}

func TestLatinVariants(t *testing.T) {
	testcases := []struct {
		n        int
		cfg      *Config
		expected string
	}{
		{n: 5, cfg: &Config{Synonym: true}, expected: "quinqui"},
		{n: 16, cfg: &Config{Synonym: true, Delimiter: "-"}, expected: "sex-dezi"},
		{n: 19, cfg: &Config{Synonym: true}, expected: "novemdezi"},
		{n: 18, cfg: &Config{Chuquet: true}, expected: "duodeviginti"},
		{n: 99, cfg: &Config{Chuquet: true, Delimiter: "|"}, expected: "un|de|centi"},
		// chuquet wins over synonym
		{n: 19, cfg: &Config{Chuquet: true, Synonym: true}, expected: "undeviginti"},
		{n: 5, cfg: &Config{Chuquet: true, Synonym: true}, expected: "quinqui"},
		// values without variant stay the same
		{n: 42, cfg: &Config{Chuquet: true, Synonym: true}, expected: "duoquadraginta"},
	}
	for _, v := range testcases {
		got, err := LatinPrefix(v.n, v.cfg)
		require.Nil(t, err)
		require.Equalf(t, v.expected, got, "latin prefix of %v", v.n)
	}
}

func TestLatinErrors(t *testing.T) {
	for _, n := range []int{0, -1, 1000} {
		_, err := LatinPrefix(n, nil)
		require.ErrorIs(t, err, ErrOutOfRange)
	}
	_, err := LatinPrefix(1, &Config{Delimiter: "x"})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPrefixTables(t *testing.T) {
	// one entry per digit 1-9
	require.Len(t, aloneOnes, 9)
	require.Len(t, combineOnes, 9)
	require.Len(t, tens, 9)
	require.Len(t, hundreds, 9)
	for n := range ChuquetPrefixes {
		require.Contains(t, []int{8, 9}, n%10, "chuquet prefix %v is not one or two below a ten", n)
	}
}
