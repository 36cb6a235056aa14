// Command strictjson decodes and validates JSON documents with the strictjson
// decoder.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/addrummond/strictjson"
)

func main() {
	app := kingpin.New("strictjson", "A strict JSON decoder.")
	flags := registerDecoderFlags(app)
	addDecodeCommand(app, flags)
	addValidateCommand(app, flags)

	kingpin.MustParse(app.Parse(os.Args[1:]))
}

// decoderFlags are the flags shared by all commands.
type decoderFlags struct {
	configFile           string
	lenientNumbers       bool
	maxDepth             int
	maxDepthSet          bool
	noPromote            bool
	rejectLoneSurrogates bool
	logLevel             string
}

func registerDecoderFlags(app *kingpin.Application) *decoderFlags {
	f := &decoderFlags{}
	app.Flag("config.file", "YAML file with the decoder configuration.").StringVar(&f.configFile)
	app.Flag("lenient-numbers", "Accept any number strconv can parse instead of only the JSON grammar.").BoolVar(&f.lenientNumbers)
	app.Flag("max-depth", "Maximum nesting depth, 0 for no limit.").IsSetByUser(&f.maxDepthSet).IntVar(&f.maxDepth)
	app.Flag("no-promote", "Keep arrays as plain sequences.").BoolVar(&f.noPromote)
	app.Flag("reject-lone-surrogates", "Fail on unpaired \\uD800-\\uDFFF escapes.").BoolVar(&f.rejectLoneSurrogates)
	app.Flag("log.level", "Only log messages with the given severity or above.").Default("info").EnumVar(&f.logLevel, "debug", "info", "warn", "error")
	return f
}

// config layers the command line flags over the config file, which is
// layered over the defaults.
func (f *decoderFlags) config() (strictjson.Config, error) {
	cfg := strictjson.DefaultConfig()
	if f.configFile != "" {
		data, err := os.ReadFile(f.configFile)
		if err != nil {
			return cfg, errors.Wrap(err, "reading config file")
		}
		if cfg, err = strictjson.LoadConfig(data); err != nil {
			return cfg, errors.Wrapf(err, "loading %s", f.configFile)
		}
	}
	if f.lenientNumbers {
		cfg.EnforceValidNumber = false
	}
	if f.maxDepthSet {
		cfg.MaxRecursionDepth = f.maxDepth
	}
	if f.noPromote {
		cfg.PromoteArrays = false
	}
	if f.rejectLoneSurrogates {
		cfg.RejectLoneSurrogates = true
	}
	return cfg, cfg.Validate()
}

func (f *decoderFlags) logger(w io.Writer) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	var allow level.Option
	switch f.logLevel {
	case "debug":
		allow = level.AllowDebug()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		allow = level.AllowInfo()
	}
	return log.With(level.NewFilter(logger, allow), "ts", log.DefaultTimestampUTC)
}

func (f *decoderFlags) decoder() (*strictjson.Decoder, log.Logger, error) {
	logger := f.logger(os.Stderr)
	cfg, err := f.config()
	if err != nil {
		return nil, logger, err
	}
	dec, err := strictjson.NewDecoder(cfg, logger)
	return dec, logger, err
}

// input is one document named on the command line, or stdin.
type input struct {
	name string
	data []byte
}

func readInputs(files []string) ([]input, error) {
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}
		return []input{{name: "<stdin>", data: data}}, nil
	}
	inputs := make([]input, 0, len(files))
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", name)
		}
		inputs = append(inputs, input{name: name, data: data})
	}
	return inputs, nil
}

func printDecodeError(w io.Writer, name string, err error) {
	red := color.New(color.FgRed)
	red.Fprintf(w, "%s: ", name)
	fmt.Fprintln(w, err)
	var e *strictjson.Error
	if errors.As(err, &e) {
		if p := e.Path(); p.Len() > 0 {
			fmt.Fprintf(w, "\tat %v\n", p)
		}
	}
}
