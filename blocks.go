package saynumber

// SplitBlocks splits a numeral into blocks of thousands, highest block first.
// Only the first block may be shorter than 3 digits: SplitBlocks("4221777") = [4 221 777].
func SplitBlocks(numeral string) []string {
	if numeral == "" {
		return nil
	}
	first := len(numeral) % 3
	if first == 0 {
		first = 3
	}
	blocks := make([]string, 0, (len(numeral)+2)/3)
	blocks = append(blocks, numeral[:first])
	for i := first; i < len(numeral); i += 3 {
		blocks = append(blocks, numeral[i:i+3])
	}
	return blocks
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// blockValue returns the integer value of a block of at most 3 digits
func blockValue(block string) int {
	value := 0
	for i := 0; i < len(block); i++ {
		value = value*10 + int(block[i]-'0')
	}
	return value
}
