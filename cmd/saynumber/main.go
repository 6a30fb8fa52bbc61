package main

import (
	"io"
	"os"
	"strings"

	"github.com/camillo/saynumber"
	"github.com/camillo/saynumber/internal/runner"
	"github.com/projectdiscovery/gologger"
)

func main() {
	run(runner.ParseFlags())
}

func run(cliOpts *runner.Options) {
	// Write the precomputed latin names and exit; -o is not touched
	if cliOpts.LatinTable != "" {
		writeLatinTable(cliOpts.LatinTable)
		return
	}

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	// Say 1 followed by given zeros; there is no numeral to batch here
	if cliOpts.Zeros > 0 {
		words, err := saynumber.SayZeros(cliOpts.Zeros, &cliOpts.Say)
		if err != nil {
			gologger.Fatal().Msgf("failed to say 10^%v got %v", cliOpts.Zeros, err)
		}
		if cliOpts.Numeric {
			writeNumeric(output, "1"+strings.Repeat("0", cliOpts.Zeros), cliOpts.Grouping)
		}
		if _, err := output.Write([]byte(words + "\n")); err != nil {
			gologger.Error().Msgf("failed to write output got %v", err)
		}
		return
	}

	numbers := cliOpts.Numbers
	if cliOpts.Random > 0 {
		numeral, err := saynumber.RandomNumeral(cliOpts.Random, nil)
		if err != nil {
			gologger.Fatal().Msgf("failed to create random number got %v", err)
		}
		numbers = []string{numeral}
	}

	s, err := saynumber.New(&saynumber.Options{
		Numbers:   numbers,
		Config:    &cliOpts.Say,
		Limit:     cliOpts.Limit,
		MaxDigits: cliOpts.MaxDigits,
		Numeric:   cliOpts.Numeric,
		Locale:    cliOpts.Grouping,
	})
	if err != nil {
		gologger.Fatal().Msgf("failed to parse input got %v", err)
	}
	if err = s.ExecuteWithWriter(output); err != nil {
		gologger.Error().Msgf("failed to write output got %v", err)
	}
}

// writeLatinTable builds the latin names of 0-999 and saves them as yaml
func writeLatinTable(path string) {
	table, err := saynumber.LatinTable()
	if err != nil {
		gologger.Fatal().Msgf("failed to build latin table got %v", err)
	}
	fs, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		gologger.Fatal().Msgf("failed to open latin table file %v got %v", path, err)
	}
	defer fs.Close()
	if err := table.Write(fs); err != nil {
		gologger.Fatal().Msgf("failed to write latin table got %v", err)
	}
	gologger.Info().Msgf("Saved latin names of 0-999 to %s", path)
}

// writeNumeric writes the numeral, optionally grouped, followed by a separator line
func writeNumeric(output io.Writer, numeral, locale string) {
	if locale != "" {
		grouped, err := saynumber.GroupDigits(numeral, locale)
		if err != nil {
			gologger.Fatal().Msgf("failed to group %v got %v", numeral, err)
		}
		numeral = grouped
	}
	if _, err := output.Write([]byte(numeral + "\n===\n")); err != nil {
		gologger.Error().Msgf("failed to write output got %v", err)
	}
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
