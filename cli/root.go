package main

import (
	"errors"
	"fmt"
	"io"
	"keyword-service/analyzer/core"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// errAnalysisFailed is returned after the output of a failed analysis has
// been written, so main only sets the exit status.
var errAnalysisFailed = errors.New("analysis failed")

type commandContext struct {
	factory serviceFactory

	languageTool string
	wordsAddress string
	corrected    bool
	verbose      bool
}

// analyzer builds the analyzer from the environment and the global flags.
func (c *commandContext) analyzer(cmd *cobra.Command) (core.Analyzer, func(), error) {
	s, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("languagetool") {
		s.LanguageToolURL = c.languageTool
	}
	if flags.Changed("words") {
		s.WordsAddress = c.wordsAddress
	}
	if flags.Changed("corrected") {
		s.AnalyzeCorrected = c.corrected
	}
	if c.verbose {
		s.LogLevel = "DEBUG"
	}
	log, err := makeLogger(s.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return c.factory(s, log)
}

func newRootCommand(factory serviceFactory) *cobra.Command {
	ctx := &commandContext{factory: factory}

	rootCmd := &cobra.Command{
		Use:           "keywords",
		Short:         "Find the keywords of YouTube videos and texts",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&ctx.languageTool, "languagetool", "", "LanguageTool server URL used to proofread transcripts")
	flags.StringVar(&ctx.wordsAddress, "words", "", "Words service address, words are counted in process when empty")
	flags.BoolVar(&ctx.corrected, "corrected", false, "Rank keywords of the proofread transcript")
	flags.BoolVarP(&ctx.verbose, "verbose", "v", false, "Log debug messages to stderr")

	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newCompareCommand(ctx))

	return rootCmd
}

type outputFlags struct {
	format string
	file   string
	top    int
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "output", "o", "text", "Output format: text, json, csv or table")
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "Save the results to a file")
	cmd.Flags().IntVar(&o.top, "top", 0, "Show only the first N keywords")
}

// write renders the results to the output file or to stdout. Tables get
// rounded borders on a terminal.
func (o *outputFlags) write(cmd *cobra.Command, render func(w io.Writer, rounded bool) error) error {
	if o.file == "" {
		return render(cmd.OutOrStdout(), isTerminal(cmd.OutOrStdout()))
	}
	f, err := os.Create(o.file)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	if err := render(f, false); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write output file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Results saved to %s\n", o.file)
	return nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
