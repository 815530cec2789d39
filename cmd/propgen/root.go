package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	schema  string
	out     string
	pkg     string
	verbose bool
	check   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "propgen",
		Short:         "propgen generates typed CSS property constructors from a schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags)
		},
	}

	cmd.Flags().StringVar(&flags.schema, "schema", "properties.yaml", "Property schema (YAML)")
	cmd.Flags().StringVar(&flags.out, "out", "properties_gen.go", "Output file")
	cmd.Flags().StringVar(&flags.pkg, "package", "style", "Package name of the generated file")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&flags.check, "check", false, "Only verify that the output file is up to date")

	return cmd
}

func run(flags *rootFlags) error {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	log, err := newLogger(loggerOptions{Level: level, HumanReadable: flags.verbose, Writer: os.Stderr})
	if err != nil {
		return fmt.Errorf("propgen: failed to create logger: %w", err)
	}

	schema, err := LoadSchema(flags.schema)
	if err != nil {
		return err
	}
	log.Debug().Str("schema", flags.schema).Int("properties", len(schema.Properties)).Msg("schema loaded")

	src, err := Generate(schema, Options{Package: flags.pkg, SchemaName: filepath.Base(flags.schema)})
	if err != nil {
		return err
	}

	if flags.check {
		current, err := os.ReadFile(flags.out)
		if err != nil {
			return fmt.Errorf("propgen: %w", err)
		}
		if string(current) != string(src) {
			return fmt.Errorf("propgen: %s is out of date, re-run go generate", flags.out)
		}
		log.Info().Str("out", flags.out).Msg("generated file is up to date")
		return nil
	}

	if err := os.WriteFile(flags.out, src, 0o644); err != nil {
		return fmt.Errorf("propgen: %w", err)
	}
	log.Info().Str("out", flags.out).Int("bytes", len(src)).Msg("generated property constructors")
	return nil
}
