package saynumber

import (
	"fmt"
	"strings"

	"github.com/projectdiscovery/gologger"
)

// LatinPrefix returns the latin name of n (1-999) as it is used to build
// scale names, e.g. 42 -> duoquadraginta.
// The morphemes are separated by cfg.Delimiter; a nil cfg uses DefaultConfig.
func LatinPrefix(n int, cfg *Config) (string, error) {
	cfg, err := resolve(cfg)
	if err != nil {
		return "", err
	}
	return latinPrefix(n, cfg)
}

func latinPrefix(n int, cfg *Config) (string, error) {
	if n < 1 || n > 999 {
		return "", fmt.Errorf("%w: latin prefix of %d, must be 1-999", ErrOutOfRange, n)
	}
	ret := buildLatin(n, cfg)
	gologger.Debug().Msgf("latin %d -> %s", n, ret)
	return ret, nil
}

func buildLatin(n int, cfg *Config) string {
	delimiter := cfg.Delimiter
	if cfg.Chuquet {
		if words, ok := ChuquetPrefixes[n]; ok {
			return strings.Join(words, delimiter)
		}
	}
	if cfg.Synonym {
		if words, ok := LatinSynonyms[n]; ok {
			return strings.Join(words, delimiter)
		}
	}

	one := n % 10
	ten := (n - one) % 100
	hundred := n - ten - one

	if ten == 0 && hundred == 0 {
		return aloneOnes[one-1]
	}

	var ret string
	switch {
	case one == 0 && ten == 0:
		return hundreds[hundred/100-1].word
	case one == 0:
		ret = tens[ten/10-1].word
	case ten == 0:
		// nothing left to append after merging with the hundred
		return combineOne(combineOnes[one-1], hundreds[hundred/100-1], delimiter)
	default:
		ret = combineOne(combineOnes[one-1], tens[ten/10-1], delimiter)
	}
	if hundred > 0 {
		ret += delimiter + hundreds[hundred/100-1].word
	}
	return ret
}

// combineOne merges a ones prefix with a ten or hundred prefix.
// If both share a linking letter, it is put between them.
func combineOne(one, other prefix, delimiter string) string {
	var link string
	for _, r := range one.linking {
		if strings.ContainsRune(other.linking, r) {
			link = string(r)
			break
		}
	}
	if exception, ok := combineExceptions[one.word+link+other.word]; ok {
		return strings.Join(exception, delimiter)
	}
	return one.word + link + delimiter + other.word
}
