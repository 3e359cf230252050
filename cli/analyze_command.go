package main

import (
	"fmt"
	"io"
	"keyword-service/analyzer/adapters/export"
	"keyword-service/analyzer/core"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// readSource loads "@path" arguments as pasted text labelled by the file name.
func readSource(arg string) (core.Source, error) {
	path, ok := strings.CutPrefix(arg, "@")
	if !ok {
		return core.Source{URL: arg}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Source{}, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return core.Source{Text: string(data), Label: filepath.Base(path)}, nil
}

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var minOccurrences int
	var label string
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "analyze <url|@file>",
		Short: "Analyze the keywords of a YouTube video or a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(out.format)
			if err != nil {
				return err
			}
			if minOccurrences < 1 {
				return fmt.Errorf("min occurrences must be at least 1, got %d", minOccurrences)
			}
			src, err := readSource(args[0])
			if err != nil {
				return err
			}

			analyzer, closeFn, err := ctx.analyzer(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			var report core.Report
			if src.URL != "" {
				report, err = analyzer.AnalyzeVideo(cmd.Context(), src.URL, minOccurrences)
			} else {
				if label != "" {
					src.Label = label
				}
				report, err = analyzer.AnalyzeText(cmd.Context(), src.Label, src.Text, minOccurrences)
			}
			if err != nil {
				return fmt.Errorf("failed to analyze: %w", err)
			}

			err = out.write(cmd, func(w io.Writer, rounded bool) error {
				return export.WriteReport(w, report, format, export.Options{Top: out.top, Rounded: rounded})
			})
			if err != nil {
				return err
			}
			if !report.Success {
				if out.file != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", report.Message)
				}
				return errAnalysisFailed
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&minOccurrences, "min-occurrences", "m", core.DefaultMinOccurrences, "Minimum occurrences for a keyword")
	cmd.Flags().StringVar(&label, "label", "", "Title of an analyzed text file")
	out.register(cmd)
	return cmd
}
