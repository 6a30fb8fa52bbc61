package saynumber

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/projectdiscovery/gologger"
)

// lineSeparator ends every component when Config.ByLine is set
const lineSeparator = "\n"

// Say returns the words for the given numeral (decimal digits only), e.g.
//
//	Say("2100000000", nil) = "zweimilliardeneinhundertmillionen"
//
// A nil cfg uses DefaultConfig.
func Say(numeral string, cfg *Config) (string, error) {
	cfg, err := resolve(cfg)
	if err != nil {
		return "", err
	}
	return say(numeral, cfg)
}

func say(numeral string, cfg *Config) (string, error) {
	if numeral == "" || !isDigits(numeral) {
		return "", fmt.Errorf("%w: %q is not a non-negative decimal number", ErrInvalidNumeral, numeral)
	}
	numeral = trimLeadingZeros(numeral)
	if !cfg.LatinOnly {
		if word, ok := smallNumbers[numeral]; ok {
			return word, nil
		}
	}
	template := cfg.Template
	if template == "" {
		template = defaultTemplate
	}

	blocks := SplitBlocks(numeral)
	var sb strings.Builder
	emitted := false
	for i, block := range blocks {
		blocksLeft := len(blocks) - i
		// a zero block has neither digits nor a scale word
		if block == "000" {
			continue
		}
		value := blockValue(block)
		var scale string
		if blocksLeft > 1 {
			var err error
			scale, err = scaleName((blocksLeft-1)*3, cfg.pluralFor(value > 1), cfg)
			if err != nil {
				return "", err
			}
		}

		if cfg.LatinOnly {
			if emitted && !cfg.ByLine {
				sb.WriteString(" ")
			}
			if scale == "" {
				sb.WriteString(strconv.Itoa(value))
			} else {
				sb.WriteString(Replace(template, map[string]interface{}{"value": value, "scale": scale}))
			}
		} else {
			sb.WriteString(spellBlock(block, blocksLeft))
			if scale != "" {
				sb.WriteString(cfg.Delimiter)
				sb.WriteString(scale)
			}
		}
		if cfg.ByLine {
			sb.WriteString(lineSeparator)
		}
		emitted = true
	}
	gologger.Debug().Msgf("said %d blocks of %v", len(blocks), numeral)
	return sb.String(), nil
}

// SayZeros returns the name of the number 1 followed by given zeros.
// If zeros is not a multiple of 3, the name is prefixed with 10 or 100:
//
//	SayZeros(10, nil) = "10 milliarden"
func SayZeros(zeros int, cfg *Config) (string, error) {
	cfg, err := resolve(cfg)
	if err != nil {
		return "", err
	}
	if zeros < 3 {
		return "", fmt.Errorf("%w: %d zeros, must be 3 or greater", ErrOutOfRange, zeros)
	}
	var ret string
	left := zeros % 3
	switch left {
	case 1:
		ret = "10 "
	case 2:
		ret = "100 "
	}
	scale, err := scaleName(zeros-left, cfg.pluralFor(left > 0), cfg)
	if err != nil {
		return "", err
	}
	return ret + scale, nil
}

func trimLeadingZeros(numeral string) string {
	trimmed := strings.TrimLeft(numeral, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
