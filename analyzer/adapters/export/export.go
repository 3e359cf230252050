package export

import (
	"encoding/json"
	"fmt"
	"io"
	"keyword-service/analyzer/core"
	"keyword-service/words/words"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatTable Format = "table"
)

const (
	MsgNoKeywords       = "No keywords found with the specified minimum occurrences."
	MsgNoCommonKeywords = "No common keywords found with the specified thresholds."
)

var Formats = []Format{FormatText, FormatJSON, FormatCSV, FormatTable}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown output format %q", core.ErrBadArguments, s)
}

type Options struct {
	// Top limits the keyword list to its first entries. Zero keeps all.
	Top int
	// Rounded draws tables with box characters, for terminals.
	Rounded bool
}

func WriteReport(w io.Writer, report core.Report, format Format, opts Options) error {
	report.Keywords = top(report.Keywords, opts.Top)
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatCSV:
		return writeString(w, keywordTable(report.Keywords, report.TotalWords).RenderCSV()+"\n")
	case FormatTable:
		return writeString(w, reportTable(report, opts))
	case FormatText, "":
		return writeString(w, reportText(report))
	}
	return fmt.Errorf("%w: unknown output format %q", core.ErrBadArguments, format)
}

func WriteComparison(w io.Writer, comparison core.Comparison, format Format, opts Options) error {
	comparison.Common = top(comparison.Common, opts.Top)
	total := comparisonWords(comparison)
	switch format {
	case FormatJSON:
		return writeJSON(w, comparison)
	case FormatCSV:
		return writeString(w, keywordTable(comparison.Common, total).RenderCSV()+"\n")
	case FormatTable:
		return writeString(w, comparisonTable(comparison, opts))
	case FormatText, "":
		return writeString(w, comparisonText(comparison))
	}
	return fmt.Errorf("%w: unknown output format %q", core.ErrBadArguments, format)
}

// Percent is the share of count in total, in percent.
func Percent(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) * 100 / float64(total)
}

func reportText(report core.Report) string {
	var b strings.Builder
	if !report.Success {
		fmt.Fprintf(&b, "Error: %s\n", report.Message)
		if report.URL != "" {
			fmt.Fprintf(&b, "URL: %s\n", report.URL)
		}
		return b.String()
	}
	transcript := core.Proofread{}
	if report.Transcript != nil {
		transcript = *report.Transcript
	}
	fmt.Fprintf(&b, "Title: %s\n", report.Title)
	fmt.Fprintf(&b, "URL: %s\n", report.URL)
	fmt.Fprintf(&b, "\n--- ORIGINAL TRANSCRIPT ---\n%s\n", transcript.Original)
	fmt.Fprintf(&b, "\n--- CORRECTED TRANSCRIPT ---\n%s\n", transcript.Corrected)
	fmt.Fprintf(&b, "\nCorrections made: %d\n", transcript.CorrectionCount)
	b.WriteString("\n--- KEYWORD ANALYSIS ---\n")
	writeKeywords(&b, report.Keywords, MsgNoKeywords)
	return b.String()
}

func comparisonText(comparison core.Comparison) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Documents analyzed: %d of %d\n", comparison.Analyzed(), len(comparison.Documents))
	for _, doc := range comparison.Documents {
		name := doc.Label
		if doc.URL != "" && doc.URL != doc.Label {
			name += " (" + doc.URL + ")"
		}
		if !doc.Success {
			fmt.Fprintf(&b, "- %s: %s\n", name, doc.Message)
			continue
		}
		fmt.Fprintf(&b, "- %s: %d words, %d keywords\n", name, doc.TotalWords, len(doc.Keywords))
	}
	fmt.Fprintf(&b, "\n--- COMMON KEYWORDS (at least %d occurrences in %d documents) ---\n",
		comparison.MinOccurrences, comparison.MinDocuments)
	writeKeywords(&b, comparison.Common, MsgNoCommonKeywords)
	return b.String()
}

func writeKeywords(b *strings.Builder, keywords []words.Keyword, empty string) {
	if len(keywords) == 0 {
		b.WriteString(empty + "\n")
		return
	}
	for _, kw := range keywords {
		fmt.Fprintf(b, "'%s': %d occurrences\n", kw.Word, kw.Count)
	}
}

func reportTable(report core.Report, opts Options) string {
	if !report.Success {
		return reportText(report)
	}
	tw := keywordTable(report.Keywords, report.TotalWords)
	tw.SetTitle(report.Title)
	tw.AppendFooter(table.Row{"Total words", report.TotalWords, ""})
	style(tw, opts)
	return tw.Render() + "\n"
}

func comparisonTable(comparison core.Comparison, opts Options) string {
	docs := table.NewWriter()
	docs.SetTitle("Documents")
	docs.AppendHeader(table.Row{"Document", "Status", "Words", "Keywords"})
	for _, doc := range comparison.Documents {
		if !doc.Success {
			docs.AppendRow(table.Row{doc.Label, doc.Message, "", ""})
			continue
		}
		docs.AppendRow(table.Row{doc.Label, "ok", doc.TotalWords, len(doc.Keywords)})
	}
	style(docs, opts)

	common := keywordTable(comparison.Common, comparisonWords(comparison))
	common.SetTitle(fmt.Sprintf("Common keywords (min %d occurrences, %d documents)",
		comparison.MinOccurrences, comparison.MinDocuments))
	style(common, opts)
	return docs.Render() + "\n" + common.Render() + "\n"
}

func keywordTable(keywords []words.Keyword, total int) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"keyword", "count", "percent"})
	for _, kw := range keywords {
		tw.AppendRow(table.Row{
			kw.Word,
			kw.Count,
			strconv.FormatFloat(Percent(kw.Count, total), 'f', 2, 64),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	return tw
}

func style(tw table.Writer, opts Options) {
	if opts.Rounded {
		tw.SetStyle(table.StyleRounded)
	}
}

func comparisonWords(comparison core.Comparison) int {
	var total int
	for _, doc := range comparison.Documents {
		if doc.Success {
			total += doc.TotalWords
		}
	}
	return total
}

func top(keywords []words.Keyword, n int) []words.Keyword {
	if n > 0 && len(keywords) > n {
		return keywords[:n]
	}
	return keywords
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
