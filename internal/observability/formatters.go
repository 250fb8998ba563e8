// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/openny/stylemind/internal/types"
)

const (
	// boxWidth is the display width of formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a titled box. Widths are display columns, so Hangul counts double.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", fitLine(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", fitLine(line, inner))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func fitLine(line string, width int) string {
	if runewidth.StringWidth(line) > width {
		line = runewidth.Truncate(line, width, "...")
	}
	return runewidth.FillRight(line, width)
}

// PrintStyleProfile outputs a human-readable summary of a style profile.
func (p *Printer) PrintStyleProfile(profile *types.StyleProfile) {
	if profile == nil {
		return
	}

	tone := "casual"
	if profile.IsPolite {
		tone = "polite"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Sentences:       %d\n", profile.SentenceCount))
	sb.WriteString(fmt.Sprintf("Average length:  %.1f chars\n", profile.AverageSentenceLength))
	sb.WriteString(fmt.Sprintf("Tone:            %s (%.0f%% honorific)\n", tone, profile.PoliteRatio*100))
	sb.WriteString("\n")

	if len(profile.TopEndings) > 0 {
		sb.WriteString("Top Endings:\n")
		for i, ending := range profile.TopEndings {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, ending))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Directive:\n")
	for _, line := range strings.Split(profile.StyleDirective, "\n") {
		sb.WriteString("  " + line + "\n")
	}

	p.printBox("STYLE PROFILE", strings.TrimRight(sb.String(), "\n"))
}

// PrintSources outputs per-URL retrieval results.
func (p *Printer) PrintSources(docs []types.SourceDocument) {
	if len(docs) == 0 {
		p.printBox("RETRIEVAL (0 URLs)", "No URLs retrieved")
		return
	}

	succeeded := 0
	var sb strings.Builder
	for i, doc := range docs {
		mark := "✗"
		if doc.Success {
			mark = "✓"
			succeeded++
		}
		sb.WriteString(fmt.Sprintf("%s [%s] %s\n", mark, doc.Platform, doc.URL))
		if doc.Success && i < maxItemsToShow {
			sb.WriteString(fmt.Sprintf("    %d chars: %s\n", len([]rune(doc.Text)), preview(doc.Text, 30)))
		}
	}

	title := fmt.Sprintf("RETRIEVAL (%d/%d succeeded)", succeeded, len(docs))
	p.printBox(title, strings.TrimRight(sb.String(), "\n"))
}

// preview returns the first line of text cut to width display columns.
func preview(text string, width int) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	return runewidth.Truncate(text, width, "...")
}
