package saynumber

import (
	"fmt"
	"io"
	"strings"

	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
	"gopkg.in/yaml.v3"
)

// tableDelimiter splits the morphemes while building a table
const tableDelimiter = "-"

// Table is a precomputed list of the latin names of 0-999, split into morphemes.
// It is an offline artifact; LatinPrefix never needs it.
type Table struct {
	Synonyms map[int][]string `yaml:"synonyms"`
	Chuquet  map[int][]string `yaml:"chuquet"`
	Numbers  map[int][]string `yaml:"numbers"`
}

// LatinTable builds the table for 0 (ni) to 999 and verifies that no two numbers share a name
func LatinTable() (*Table, error) {
	cfg := &Config{Delimiter: tableDelimiter}
	t := &Table{
		Synonyms: LatinSynonyms,
		Chuquet:  ChuquetPrefixes,
		Numbers:  make(map[int][]string, 1000),
	}
	t.Numbers[0] = []string{nilPrefix}
	names := make([]string, 0, 999)
	for n := 1; n < 1000; n++ {
		name, err := latinPrefix(n, cfg)
		if err != nil {
			return nil, err
		}
		t.Numbers[n] = strings.Split(name, tableDelimiter)
		names = append(names, strings.ReplaceAll(name, tableDelimiter, ""))
	}
	if unique := sliceutil.Dedupe(names); len(unique) != len(names) {
		return nil, errorutil.NewWithTag("saynumber", "%v latin names are not unique", len(names)-len(unique))
	}
	return t, nil
}

// LoadTable reads a table written by Table.Write
func LoadTable(r io.Reader) (*Table, error) {
	var t Table
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return nil, err
	}
	for n := 0; n < 1000; n++ {
		if len(t.Numbers[n]) == 0 {
			return nil, errorutil.NewWithTag("saynumber", "latin table has no entry for %v", n)
		}
	}
	return &t, nil
}

// Write writes the table as yaml
func (t *Table) Write(w io.Writer) error {
	if w == nil {
		return errorutil.NewWithTag("saynumber", "writer destination cannot be nil")
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return err
	}
	return enc.Close()
}

// Latin looks up the latin name of n (0-999) in the table, honoring the
// delimiter, synonym and chuquet settings of cfg
func (t *Table) Latin(n int, cfg *Config) (string, error) {
	cfg, err := resolve(cfg)
	if err != nil {
		return "", err
	}
	if n < 0 || n > 999 {
		return "", fmt.Errorf("%w: latin prefix of %d, must be 0-999", ErrOutOfRange, n)
	}
	target := t.Numbers[n]
	if words, ok := t.Synonyms[n]; ok && cfg.Synonym {
		target = words
	}
	if words, ok := t.Chuquet[n]; ok && cfg.Chuquet {
		target = words
	}
	return strings.Join(target, cfg.Delimiter), nil
}
