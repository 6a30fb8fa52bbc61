package saynumber

import (
	"fmt"
)

// German has a lot of exceptions up to 19, so they are simply listed.
var smallNumbers = map[string]string{
	"0": "null", "1": "eins", "2": "zwei", "3": "drei", "4": "vier",
	"5": "fünf", "6": "sechs", "7": "sieben", "8": "acht", "9": "neun",
	"10": "zehn", "11": "elf", "12": "zwölf", "13": "dreizehn", "14": "vierzehn",
	"15": "fünfzehn", "16": "sechszehn", "17": "siebzehn", "18": "achtzehn", "19": "neunzehn",
}

// irregular stems of the tens, e.g. zwanzig instead of zweizig
var deziExceptions = map[byte]string{
	'2': "zwan",
	'6': "sech",
	'7': "sieb",
}

// SpellBlock returns the german word of a block of 1-3 digits.
// componentsLeft is the number of blocks left to say including this one;
// it decides between "ein" (ein|tausend) and "eine" (eine|million).
func SpellBlock(block string, componentsLeft int) (string, error) {
	if len(block) == 0 || len(block) > 3 || !isDigits(block) {
		return "", fmt.Errorf("%w: block %q must be 0-999", ErrOutOfRange, block)
	}
	return spellBlock(block, componentsLeft), nil
}

func spellBlock(number string, componentsLeft int) string {
	if _, ok := smallNumbers[number]; ok {
		return shortNumber(number, componentsLeft == 2)
	}
	if len(number) == 3 {
		ret := ""
		if number[0] != '0' {
			ret = shortNumber(number[:1], true) + "hundert"
		}
		return ret + spellBlock(number[1:], componentsLeft)
	}

	if number[0] == '0' {
		if number[1] == '0' {
			return ""
		}
		return smallNumbers[number[1:]]
	}
	ret := ""
	if number[1] != '0' {
		ret = shortNumber(number[1:], true) + "und"
	}
	if stem, ok := deziExceptions[number[0]]; ok {
		ret += stem
	} else {
		ret += smallNumbers[number[:1]]
	}
	return ret + "zig"
}

// shortNumber says a number below 20 that is followed by another part
// (neunzehn|millionen, eine|million, ein|tausend)
func shortNumber(number string, sayEin bool) string {
	if number == "1" {
		if sayEin {
			return "ein"
		}
		return "eine"
	}
	return smallNumbers[number]
}
