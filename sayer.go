package saynumber

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// Sayer Options
type Options struct {
	// list of numerals to say
	Numbers []string
	// Config used to say the numbers
	// if nil DefaultConfig is used
	Config *Config
	// Limits output results (0 = no limit)
	Limit int
	// MaxDigits rejects numerals with more digits (0 = no limit)
	MaxDigits int
	// Numeric also writes the numeral itself before its words
	Numeric bool
	// Locale groups the numeral written by Numeric in thousands (ex: de => 1.000.000)
	Locale string
}

// Result of saying a single numeral
type Result struct {
	Numeral string
	Words   string
	Error   error
}

// Sayer says a batch of numerals
type Sayer struct {
	Options *Options
	config  *Config
}

// New creates and returns new sayer instance from options
func New(opts *Options) (*Sayer, error) {
	if len(opts.Numbers) == 0 {
		return nil, fmt.Errorf("no input provided to say")
	}
	cfg, err := resolve(opts.Config)
	if err != nil {
		return nil, err
	}
	// purge duplicates if any
	dedupe := sliceutil.Dedupe(opts.Numbers)
	if len(dedupe) != len(opts.Numbers) {
		gologger.Warning().Msgf("%v duplicate numbers found. purging them..", len(opts.Numbers)-len(dedupe))
		opts.Numbers = dedupe
	}
	s := &Sayer{
		Options: opts,
		config:  cfg,
	}
	if err := s.validateNumbers(); err != nil {
		return nil, err
	}
	return s, nil
}

// Execute says all numbers and writes the results to a channel
func (s *Sayer) Execute(ctx context.Context) <-chan Result {
	results := make(chan Result, len(s.Options.Numbers))
	go func() {
		defer close(results)
		for _, numeral := range s.Options.Numbers {
			gologger.Verbose().Msgf("saying number with %v digits", len(numeral))
			words, err := say(numeral, s.config)
			select {
			case <-ctx.Done():
				return
			case results <- Result{Numeral: numeral, Words: words, Error: err}:
			}
		}
	}()
	return results
}

// ExecuteWithWriter executes Sayer and writes results directly to type that implements io.Writer interface
func (s *Sayer) ExecuteWithWriter(Writer io.Writer) error {
	if Writer == nil {
		return errorutil.NewWithTag("saynumber", "writer destination cannot be nil")
	}
	resChan := s.Execute(context.TODO())
	counter := 0
	for res := range resChan {
		if s.Options.Limit > 0 && counter == s.Options.Limit {
			continue
		}
		if res.Error != nil {
			return res.Error
		}
		if err := s.write(Writer, res); err != nil {
			return err
		}
		counter++
	}
	return nil
}

func (s *Sayer) write(w io.Writer, res Result) error {
	var sb strings.Builder
	if s.Options.Numeric {
		numeral := res.Numeral
		if s.Options.Locale != "" {
			grouped, err := GroupDigits(numeral, s.Options.Locale)
			if err != nil {
				return err
			}
			numeral = grouped
		}
		sb.WriteString(numeral + "\n===\n")
	}
	sb.WriteString(res.Words)
	if !strings.HasSuffix(res.Words, lineSeparator) {
		sb.WriteString(lineSeparator)
	}
	_, err := w.Write([]byte(sb.String()))
	return err
}

// validates all numbers before anything is said
func (s *Sayer) validateNumbers() error {
	errors := []string{}
	for _, v := range s.Options.Numbers {
		if v == "" || !isDigits(v) {
			errors = append(errors, fmt.Sprintf("%q is not a non-negative decimal number", v))
			continue
		}
		if s.Options.MaxDigits > 0 && len(v) > s.Options.MaxDigits {
			errors = append(errors, fmt.Sprintf("number with %v digits exceeds max-digits %v", len(v), s.Options.MaxDigits))
		}
	}
	if len(errors) > 0 {
		return errorutil.NewWithTag("saynumber", "%v", strings.Join(errors, " : "))
	}
	return nil
}
