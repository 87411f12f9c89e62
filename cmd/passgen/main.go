// Command passgen generates passwords from the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/export"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

var errPresetWithLength = errors.New("-preset and -length cannot be combined")

// cliConfig holds the parsed command line.
type cliConfig struct {
	Request    model.GenerateRequest
	Output     string
	ConfigPath string
}

// parseFlags registers flags on fs and parses args. Class flags that are not
// given explicitly stay nil so the configured defaults apply.
func parseFlags(fs *flag.FlagSet, args []string) (cliConfig, error) {
	var cfg cliConfig
	var lower, upper, digits, symbols, noAmbiguous bool

	fs.IntVar(&cfg.Request.Length, "length", 0, "password length, 4-128 (default from config, else 16)")
	fs.IntVar(&cfg.Request.Length, "l", 0, "password length (shorthand)")
	fs.StringVar(&cfg.Request.Preset, "preset", "", "length preset: easy, normal, secure, very-secure (not with -length)")
	fs.IntVar(&cfg.Request.Count, "count", 1, "number of passwords to generate")
	fs.IntVar(&cfg.Request.Count, "c", 1, "number of passwords (shorthand)")

	fs.BoolVar(&lower, "lower", true, "include lowercase letters (a-z)")
	fs.BoolVar(&upper, "upper", true, "include uppercase letters (A-Z)")
	fs.BoolVar(&digits, "digits", true, "include digits (0-9)")
	fs.BoolVar(&symbols, "symbols", true, "include symbols (!@#...)")
	fs.BoolVar(&noAmbiguous, "exclude-ambiguous", false, "leave out the ambiguous characters Il1O0")

	fs.StringVar(&cfg.Output, "o", "", "also save the first password to this file")
	fs.StringVar(&cfg.ConfigPath, "config", os.Getenv("GENERATOR_CONFIG"), "TOML file with generator defaults")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	var lengthSet bool
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "length", "l":
			lengthSet = true
		case "lower":
			cfg.Request.Lowercase = &lower
		case "upper":
			cfg.Request.Uppercase = &upper
		case "digits":
			cfg.Request.Digits = &digits
		case "symbols":
			cfg.Request.Symbols = &symbols
		case "exclude-ambiguous":
			cfg.Request.ExcludeAmbiguous = &noAmbiguous
		}
	})

	if lengthSet && cfg.Request.Preset != "" {
		return cfg, errPresetWithLength
	}

	return cfg, nil
}

// run generates the passwords, prints one per line followed by the strength
// summary, and optionally saves the first one.
func run(cfg cliConfig, stdout, stderr io.Writer) error {
	defaults, err := config.LoadGeneratorDefaults(cfg.ConfigPath)
	if err != nil {
		return err
	}

	resp, err := service.NewGeneratorService(defaults).Generate(cfg.Request)
	if err != nil {
		return err
	}

	for _, pw := range resp.Passwords {
		fmt.Fprintln(stdout, pw)
	}
	fmt.Fprintln(stdout, resp.Summary)

	if resp.AmbiguousRemoved > 0 {
		fmt.Fprintf(stderr, "note: %d ambiguous characters excluded from the pool\n", resp.AmbiguousRemoved)
	}

	if cfg.Output != "" {
		if err := export.WritePassword(cfg.Output, resp.Password); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Password saved to: %s\n", cfg.Output)
	}

	return nil
}

func main() {
	fs := flag.NewFlagSet("passgen", flag.ContinueOnError)
	cfg, err := parseFlags(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
