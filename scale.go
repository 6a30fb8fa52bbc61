package saynumber

import (
	"fmt"
	"math"
	"strings"

	"github.com/projectdiscovery/gologger"
)

const (
	thousandLongScale  = "tausend"
	thousandShortScale = "thousand"
	// infix connects the latin prefixes of two thousand groups (millinillion)
	infix = "lli"
	// largest zero count whose long scale counterpart 2n-6 still fits an int
	maxShortScaleZeros = math.MaxInt/2 + 3
)

// ScaleName returns the name of the number starting with a 1 followed by
// zerosAfterOne zeros, e.g. 6 -> million, 9 -> milliarde (long scale) or
// billion (short scale). zerosAfterOne must be 3 or greater and a multiple of 3.
func ScaleName(zerosAfterOne int, plural bool, cfg *Config) (string, error) {
	cfg, err := resolve(cfg)
	if err != nil {
		return "", err
	}
	return scaleName(zerosAfterOne, plural, cfg)
}

func scaleName(zeros int, plural bool, cfg *Config) (string, error) {
	if zeros < 3 || zeros%3 != 0 {
		return "", fmt.Errorf("%w: scale name for %d zeros, must be 3 or greater and a multiple of 3", ErrOutOfRange, zeros)
	}
	if zeros == 3 {
		if cfg.ShortScale {
			return thousandShortScale, nil
		}
		return thousandLongScale, nil
	}

	var ret string
	if cfg.ShortScale {
		if zeros > maxShortScaleZeros {
			return "", fmt.Errorf("%w: short scale name for %d zeros, must not exceed %d", ErrOutOfRange, zeros, maxShortScaleZeros)
		}
		// the short scale name for n zeros is the long scale name for 2n-6 zeros
		ret = longScale(2*zeros-6, false, cfg)
		if !cfg.ForceZ {
			ret = strings.ReplaceAll(ret, "z", "c")
		}
		if plural {
			ret += "s"
		}
	} else {
		ret = longScale(zeros, plural, cfg)
		if cfg.ForceC {
			ret = strings.ReplaceAll(ret, "z", "c")
		}
	}
	gologger.Debug().Msgf("scale 10^%d -> %s", zeros, ret)
	return ret, nil
}

// longScale builds the long scale name; zeros must be 6 or greater and a multiple of 3.
func longScale(zeros int, plural bool, cfg *Config) string {
	delimiter := cfg.Delimiter
	sixes, lliarde := zeros/6, zeros%6 != 0

	ret := ""
	// one thousand group per iteration, starting with the lowest
	for first := true; sixes > 0; first = false {
		current := sixes % 1000
		var prefix string
		if current == 0 {
			prefix = nilPrefix
		} else {
			// current is 1-999, so this cannot fail
			prefix = buildLatin(current, cfg)
			// a ten without hundred changes its trailing a to i: trigintillion
			if current > 9 && current < 100 && strings.HasSuffix(prefix, "a") {
				prefix = prefix[:len(prefix)-1] + "i"
			}
		}
		prefix += delimiter
		if !first {
			prefix += infix + delimiter
		}
		ret = prefix + ret
		sixes /= 1000
	}

	if lliarde {
		ret += "lliarde"
		if plural {
			ret += "n"
		}
		return ret
	}
	ret += "llion"
	if plural {
		ret += "en"
	}
	return ret
}
