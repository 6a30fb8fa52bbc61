package runner

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/camillo/saynumber"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
)

type Options struct {
	Numbers    goflags.StringSlice // Numbers to say
	Zeros      int                 // say 1 followed by that many zeros instead
	Random     int                 // say a random number with that many digits instead
	Output     string
	Config     string
	SayConfig  string
	LatinTable string
	Numeric    bool
	Grouping   string
	Verbose    bool
	Silent     bool
	Debug      bool
	Limit      int
	MaxDigits  int
	// Say holds the options used to build the words
	Say saynumber.Config
}

func ParseFlags() *Options {
	opts := &Options{}
	defaults := saynumber.DefaultConfig
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Write german names of (very) big numbers.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Numbers, "number", "n", nil, "numbers to say (stdin, comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.IntVarP(&opts.Zeros, "zeros", "z", 0, "do not say given number, but the number with that many zeros"),
		flagSet.IntVarP(&opts.Random, "random", "r", 0, "do not say given number, but a random number with that many digits"),
	)

	flagSet.CreateGroup("format", "Format",
		flagSet.BoolVarP(&opts.Say.ByLine, "by-line", "b", defaults.ByLine, "write components line by line"),
		flagSet.BoolVarP(&opts.Say.LatinOnly, "latin-only", "lo", defaults.LatinOnly, `say "123 millionen" instead of "einhundertdreiundzwanzigmillionen"`),
		flagSet.StringVarP(&opts.Say.Template, "template", "t", defaults.Template, "template of a latin-only component (default '{{value}} {{scale}}')"),
		flagSet.StringVarP(&opts.Say.Delimiter, "delimiter", "d", defaults.Delimiter, "separate latin morphemes and scale words (must not contain a-z)"),
		flagSet.BoolVarP(&opts.Say.ShortScale, "short-scale", "ss", defaults.ShortScale, "use the short scale (billion = 10^9) instead of the long scale (milliarde)"),
		flagSet.BoolVarP(&opts.Say.Synonym, "synonym", "sy", defaults.Synonym, "use latin synonyms (quinqui, sexdezi, novemdezi)"),
		flagSet.BoolVarP(&opts.Say.Chuquet, "chuquet", "cq", defaults.Chuquet, "use the prefixes of nicolas chuquet (duodeviginti)"),
		flagSet.BoolVarP(&opts.Say.ForceSingular, "force-singular", "fs", defaults.ForceSingular, "always use the singular of scale words"),
		flagSet.BoolVarP(&opts.Say.ForcePlural, "force-plural", "fp", defaults.ForcePlural, "always use the plural of scale words"),
		flagSet.BoolVarP(&opts.Say.ForceZ, "force-z", "fz", defaults.ForceZ, "keep z in short scale names (zentillion)"),
		flagSet.BoolVarP(&opts.Say.ForceC, "force-c", "fc", defaults.ForceC, "use c in long scale names (centillion)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write the words"),
		flagSet.BoolVarP(&opts.Numeric, "numeric", "nu", false, "say the number also in numeric form"),
		flagSet.StringVarP(&opts.Grouping, "grouping", "g", "", "group the numeric form in thousands for given locale (ex: de, en); implies -numeric"),
		flagSet.StringVarP(&opts.LatinTable, "latin-table", "lt", "", "write the precomputed latin names of 0-999 to given file and exit"),
		flagSet.IntVar(&opts.Limit, "limit", 0, "limit the number of results to return (default 0)"),
		flagSet.IntVarP(&opts.MaxDigits, "max-digits", "md", 100000, "refuse numbers with more digits (0 = no limit)"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.BoolVar(&opts.Debug, "debug", false, "display how every latin prefix and scale word is built"),
		flagSet.CallbackVar(printVersion, "version", "display saynumber version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `saynumber cli config file (default '$HOME/.config/saynumber/config.yaml')`),
		flagSet.StringVarP(&opts.SayConfig, "say-config", "sc", "", `saynumber say config file (default '$HOME/.config/saynumber/say.yaml')`),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	switch {
	case opts.Silent:
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	case opts.Debug:
		gologger.DefaultLogger.SetMaxLevel(levels.LevelDebug)
	case opts.Verbose:
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if opts.SayConfig != "" {
		cfg, err := saynumber.NewConfig(opts.SayConfig)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", opts.SayConfig, err)
		}
		// flags given on the command line win over the file
		explicit := map[string]bool{}
		flagSet.CommandLine.Visit(func(f *flag.Flag) {
			explicit[f.Name] = true
		})
		opts.Say = mergeSayConfig(*cfg, opts.Say, explicit)
	}
	if opts.Grouping != "" {
		opts.Numeric = true
	}
	if err := opts.validate(); err != nil {
		gologger.Fatal().Msgf("%v", err)
	}

	// numbers given without flag
	opts.Numbers = append(opts.Numbers, flagSet.CommandLine.Args()...)

	// read from stdin
	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
		opts.Numbers = append(opts.Numbers, strings.Fields(string(bin))...)
	}

	if len(opts.Numbers) == 0 && opts.Zeros == 0 && opts.Random == 0 && opts.LatinTable == "" {
		gologger.Fatal().Msgf("saynumber: no input found")
	}

	return opts
}

func (o *Options) validate() error {
	if o.Zeros < 0 || o.Random < 0 {
		return errorutil.New("zeros and random cannot be negative")
	}
	if o.Zeros > 0 && o.Random > 0 {
		return errorutil.New("zeros and random are mutually exclusive")
	}
	if o.MaxDigits > 0 {
		if o.Numeric && o.Zeros >= o.MaxDigits {
			return errorutil.New("numeric form of 10^%v has more than %v digits", o.Zeros, o.MaxDigits)
		}
		if o.Random > o.MaxDigits {
			return errorutil.New("random number with %v digits has more than %v digits", o.Random, o.MaxDigits)
		}
	}
	return o.Say.Validate()
}

// sayFlags maps the long and short names of every format flag to the field it sets
var sayFlags = []struct {
	names []string
	apply func(dst *saynumber.Config, src saynumber.Config)
}{
	{[]string{"by-line", "b"}, func(dst *saynumber.Config, src saynumber.Config) { dst.ByLine = src.ByLine }},
	{[]string{"latin-only", "lo"}, func(dst *saynumber.Config, src saynumber.Config) { dst.LatinOnly = src.LatinOnly }},
	{[]string{"template", "t"}, func(dst *saynumber.Config, src saynumber.Config) { dst.Template = src.Template }},
	{[]string{"delimiter", "d"}, func(dst *saynumber.Config, src saynumber.Config) { dst.Delimiter = src.Delimiter }},
	{[]string{"short-scale", "ss"}, func(dst *saynumber.Config, src saynumber.Config) { dst.ShortScale = src.ShortScale }},
	{[]string{"synonym", "sy"}, func(dst *saynumber.Config, src saynumber.Config) { dst.Synonym = src.Synonym }},
	{[]string{"chuquet", "cq"}, func(dst *saynumber.Config, src saynumber.Config) { dst.Chuquet = src.Chuquet }},
	{[]string{"force-singular", "fs"}, func(dst *saynumber.Config, src saynumber.Config) { dst.ForceSingular = src.ForceSingular }},
	{[]string{"force-plural", "fp"}, func(dst *saynumber.Config, src saynumber.Config) { dst.ForcePlural = src.ForcePlural }},
	{[]string{"force-z", "fz"}, func(dst *saynumber.Config, src saynumber.Config) { dst.ForceZ = src.ForceZ }},
	{[]string{"force-c", "fc"}, func(dst *saynumber.Config, src saynumber.Config) { dst.ForceC = src.ForceC }},
}

// mergeSayConfig returns file with the fields of flags that were set explicitly
func mergeSayConfig(file, flags saynumber.Config, explicit map[string]bool) saynumber.Config {
	for _, v := range sayFlags {
		for _, name := range v.names {
			if explicit[name] {
				v.apply(&file, flags)
				break
			}
		}
	}
	return file
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
