package main

import (
	"fmt"
	"io"
	"keyword-service/analyzer/adapters/export"
	"keyword-service/analyzer/core"

	"github.com/spf13/cobra"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var minOccurrences, minDocuments int
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "compare <url|@file>...",
		Short: "Find the keywords several videos or text files have in common",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(out.format)
			if err != nil {
				return err
			}
			if minOccurrences < 1 || minDocuments < 1 {
				return fmt.Errorf("thresholds must be at least 1, got %d occurrences and %d documents", minOccurrences, minDocuments)
			}
			sources := make([]core.Source, 0, len(args))
			for _, arg := range args {
				src, err := readSource(arg)
				if err != nil {
					return err
				}
				sources = append(sources, src)
			}

			analyzer, closeFn, err := ctx.analyzer(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			comparison, err := analyzer.Compare(cmd.Context(), sources, minOccurrences, minDocuments)
			if err != nil {
				return fmt.Errorf("failed to compare: %w", err)
			}

			err = out.write(cmd, func(w io.Writer, rounded bool) error {
				return export.WriteComparison(w, comparison, format, export.Options{Top: out.top, Rounded: rounded})
			})
			if err != nil {
				return err
			}
			if comparison.Analyzed() == 0 {
				if out.file != "" {
					fmt.Fprintln(cmd.ErrOrStderr(), "Error: no document could be analyzed")
				}
				return errAnalysisFailed
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&minOccurrences, "min-occurrences", "m", core.DefaultMinOccurrences, "Minimum occurrences of a keyword per document")
	cmd.Flags().IntVarP(&minDocuments, "min-documents", "d", core.DefaultMinDocuments, "Minimum documents sharing a keyword")
	out.register(cmd)
	return cmd
}
