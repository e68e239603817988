// Command embedval coerces documents into the built-in demo types.
//
//	embedval coerce --type user [--format yaml] [--strict] FILE
//	embedval schema --type user [--strict]
//	embedval types
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"

	"embedded-value/attribute"
	"embedded-value/composite"
	"embedded-value/internal/codec"
)

const usage = `Usage:
  embedval coerce --type NAME [--format FORMAT] [--strict] FILE
  embedval schema --type NAME [--strict]
  embedval types

FILE may be "-" to read standard input.
`

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}

		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var (
		typeName string
		format   = cfg.Format
		strict   = cfg.Strict
		logLevel = cfg.LogLevel
	)

	cmd := args[0]
	flagSet := pflag.NewFlagSet("embedval "+cmd, pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&typeName, "type", "t", "", "demo type name, see \"embedval types\"")
	flagSet.StringVarP(&format, "format", "f", format, "input format: yaml, json, jsonc or cbor")
	flagSet.BoolVar(&strict, "strict", strict, "reject unknown keys")
	flagSet.StringVar(&logLevel, "log-level", logLevel, "log level: debug, info, warn or error")

	if err := flagSet.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprint(stdout, usage)
			return nil
		}

		return fmt.Errorf("%w: %w", errUsage, err)
	}

	cfg.LogLevel = logLevel

	level, err := cfg.level()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	registry := attribute.NewRegistry(attribute.WithLogger(logger), attribute.WithStrict(strict))

	switch cmd {
	case "coerce":
		if flagSet.NArg() != 1 {
			return fmt.Errorf("%w: coerce expects one FILE argument", errUsage)
		}

		return runCoerce(registry, typeName, format, flagSet.Arg(0), stdin, stdout)
	case "schema":
		return runSchema(registry, typeName, stdout)
	case "types":
		return runTypes(registry, stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func runCoerce(registry *attribute.Registry, typeName, format, path string, stdin io.Reader, stdout io.Writer) error {
	t, err := lookupType(typeName)
	if err != nil {
		return err
	}

	f, err := inputFormat(format, path)
	if err != nil {
		return err
	}

	data, err := readInput(path, stdin)
	if err != nil {
		return err
	}

	raw, err := codec.Decode(f, data)
	if err != nil {
		return err
	}

	c, err := registry.Coercer(t)
	if err != nil {
		return err
	}

	out, err := c.Coerce(raw)
	if err != nil {
		return fmt.Errorf("failed to coerce %s: %w", typeName, err)
	}

	dumper := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	dumper.Fdump(stdout, out)

	return nil
}

func runSchema(registry *attribute.Registry, typeName string, stdout io.Writer) error {
	t, err := lookupType(typeName)
	if err != nil {
		return err
	}

	s, err := registry.Set(t)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(s.JSONSchema())
}

func runTypes(registry *attribute.Registry, stdout io.Writer) error {
	for _, name := range slices.Sorted(maps.Keys(catalog)) {
		t := catalog[name]

		c, err := registry.Coercer(t)
		if err != nil {
			return err
		}

		fmt.Fprintf(stdout, "%-10s %-20s %s\n", name, composite.Of(t), c.Strategy())
	}

	return nil
}

func inputFormat(format, path string) (codec.Format, error) {
	if format != "" {
		return codec.ParseFormat(format)
	}

	if path == "-" {
		return codec.FormatYAML, nil
	}

	return codec.FormatFromPath(path)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	return data, nil
}
