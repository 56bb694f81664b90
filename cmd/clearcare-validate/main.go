// Command clearcare-validate checks hospital price-transparency files
// against the machine-readable-file regulation.
//
// Usage:
//
//	clearcare-validate validate charges.csv
//	clearcare-validate validate --format json --out report.json rates.json
//	clearcare-validate validate --schema in-network-rates rates.json
//
// Exit codes: 0 when validation passed, 1 when error findings are
// present, 2 when the input could not be parsed at all.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	compliance "github.com/RichardJoy94/clearcare-compliance"
	"github.com/RichardJoy94/clearcare-compliance/config"
	"github.com/RichardJoy94/clearcare-compliance/engine"
	"github.com/RichardJoy94/clearcare-compliance/report"
	"github.com/RichardJoy94/clearcare-compliance/worker"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitFatal = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	code := exitOK
	root := newRootCmd(stdout, &code)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitFatal
	}
	return code
}

func newRootCmd(stdout io.Writer, code *int) *cobra.Command {
	root := &cobra.Command{
		Use:           "clearcare-validate",
		Short:         "Validate hospital price-transparency files",
		Version:       compliance.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateCmd(stdout, code))
	return root
}

func newValidateCmd(stdout io.Writer, code *int) *cobra.Command {
	var (
		format     string
		outPath    string
		configPath string
		schemaID   string
		strict     bool
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "validate <path>...",
		Short: "Validate one or more standard-charges files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := report.Format(format)
			if !f.Valid() {
				return fmt.Errorf("unknown format %q (choose human, json or csv)", format)
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if schemaID != "" {
				cfg.ForceSchema = schemaID
			}
			if strict {
				cfg.StrictMetadata = true
			}
			if workers > 0 {
				cfg.Workers = workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			out := stdout
			if outPath != "" {
				file, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outPath, err)
				}
				defer file.Close()
				out = file
			}

			v := engine.New(cfg.Options()...)
			if len(args) == 1 {
				return validateOne(v, args[0], out, f, code)
			}
			return validateBatch(cmd.Context(), v, cfg, args, out, f, code)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(report.FormatHuman), "output format: human, json or csv")
	cmd.Flags().StringVar(&outPath, "out", "", "write the report to a file instead of stdout")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a JSON configuration file")
	cmd.Flags().StringVar(&schemaID, "schema", "", "force a structured schema variant instead of detecting one")
	cmd.Flags().BoolVar(&strict, "strict-metadata", false, "treat informal metadata labels as an error")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers for multi-file validation (0 = one per CPU)")

	return cmd
}

func validateOne(v *engine.Validator, path string, out io.Writer, f report.Format, code *int) error {
	res, err := v.ValidateFile(path)
	if err != nil {
		return err
	}
	if err := report.Write(out, res, f); err != nil {
		return err
	}
	if !res.OK {
		*code = exitFail
	}
	return nil
}

func validateBatch(ctx context.Context, v *engine.Validator, cfg config.Config, paths []string, out io.Writer, f report.Format, code *int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	jobs := make([]worker.Job, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		jobs = append(jobs, worker.Job{ID: path, Filename: path, Data: data})
	}

	br := worker.NewPool(v, cfg.Workers).Run(ctx, jobs)
	for _, jr := range br.Results {
		if jr.Err != nil {
			var perr *compliance.ParseError
			if errors.As(jr.Err, &perr) {
				fmt.Fprintf(out, "%s: fatal: %v\n", jr.ID, jr.Err)
				*code = exitFatal
				continue
			}
			return fmt.Errorf("%s: %w", jr.ID, jr.Err)
		}
		if f == report.FormatHuman {
			fmt.Fprintf(out, "== %s\n", jr.ID)
		}
		if err := report.Write(out, jr.Result, f); err != nil {
			return err
		}
		if !jr.Result.OK && *code == exitOK {
			*code = exitFail
		}
	}
	return nil
}
