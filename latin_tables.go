package saynumber

// prefix is a latin morpheme together with the letters it may share
// with a neighbouring morpheme when both get merged (se+viginti -> sesviginti).
type prefix struct {
	word    string
	linking string
}

// standalone ones (1-9) used when there is neither a ten nor a hundred
var aloneOnes = [9]string{"mi", "bi", "tri", "quadri", "quinti", "sexti", "septi", "okti", "noni"}

// ones that get merged with a ten or hundred prefix
var combineOnes = [9]prefix{
	{"un", ""}, {"duo", ""}, {"tre", "s"}, {"quattuor", ""}, {"quinqua", ""},
	{"se", "sx"}, {"septe", "mn"}, {"okto", ""}, {"nove", "mn"},
}

var tens = [9]prefix{
	{"dezi", "n"}, {"viginti", "ms"}, {"triginta", "ns"}, {"quadraginta", "ns"},
	{"quinquaginta", "ns"}, {"sexaginta", "n"}, {"septuaginta", "n"}, {"oktoginta", "mx"}, {"nonaginta", ""},
}

var hundreds = [9]prefix{
	{"zenti", "nx"}, {"duzenti", "n"}, {"trezenti", "ns"}, {"quadringenti", "ns"},
	{"quingenti", "ns"}, {"seszenti", "n"}, {"septingenti", "n"}, {"oktingenti", "mx"}, {"nongenti", ""},
}

// combineExceptions replaces merged names that would be wrong or ambiguous.
// trezenti is 300, so 103 becomes treszenti.
var combineExceptions = map[string][]string{
	"quinquadezi": {"quin", "dezi"},
	"trezenti":    {"tres", "zenti"},
}

// LatinSynonyms are accepted alternative names, used with Config.Synonym
var LatinSynonyms = map[int][]string{
	5:  {"quinqui"},
	16: {"sex", "dezi"},
	19: {"novem", "dezi"},
}

// ChuquetPrefixes are the subtractive names introduced by Nicolas Chuquet,
// used with Config.Chuquet
var ChuquetPrefixes = map[int][]string{
	18: {"duo", "de", "viginti"},
	19: {"un", "de", "viginti"},
	28: {"duo", "de", "triginta"},
	29: {"un", "de", "triginta"},
	38: {"duo", "de", "quadraginta"},
	39: {"un", "de", "quadraginta"},
	48: {"duo", "de", "quinquaginta"},
	49: {"un", "de", "quinquaginta"},
	58: {"duo", "de", "sexaginta"},
	59: {"un", "de", "sexaginta"},
	68: {"duo", "de", "septuaginta"},
	69: {"un", "de", "septuaginta"},
	78: {"duo", "de", "octoginta"},
	79: {"un", "de", "octoginta"},
	88: {"duo", "de", "nonaginta"},
	89: {"un", "de", "nonaginta"},
	98: {"duo", "de", "centi"},
	99: {"un", "de", "centi"},
}

// nilPrefix stands for a 000 group inside a scale name
const nilPrefix = "ni"
