package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"deedles.dev/xgeom/scenario"
)

var errFailed = errors.New("scenarios failed")

func newRunCmd(opts *options) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Evaluate a scenario document",
		Long: `Evaluate every case in a scenario document and report the results.

Without a file, ~/.xgeom/scenarios.yaml and ./scenarios.yaml are tried
before falling back to the built-in acceptance scenarios. Fallback files
that exist but can't be parsed are skipped with a warning.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}

			doc, err := scenario.Load(path, opts.logger)
			if err != nil {
				return err
			}

			runner := scenario.Runner{Logger: opts.logger}
			results, err := runner.Run(doc)
			if err != nil {
				return err
			}

			s := opts.styles
			out := cmd.OutOrStdout()
			for _, res := range results {
				if quiet && res.Pass {
					continue
				}
				status := s.yes.Render("PASS")
				if !res.Pass {
					status = s.no.Render("FAIL")
				}
				fmt.Fprintf(out, "%s  %-12s %s\n", status, res.Case.Kind, res.Case.Name)
			}

			failed := scenario.Failed(results)
			fmt.Fprintln(out, s.rule())
			fmt.Fprintf(out, "%d passed, %d failed\n", len(results)-failed, failed)
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errFailed, failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only list failing cases")
	return cmd
}
