package worksheet

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/exgen/internal/problemgen"
)

// Format selects how a worksheet is written.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatLaTeX Format = "latex"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatText, FormatJSON, FormatLaTeX}

// Write renders ws to w in the given format.
func Write(w io.Writer, ws *Worksheet, format Format) error {
	switch format {
	case FormatText:
		return writeText(w, ws)
	case FormatJSON:
		for _, it := range ws.Items {
			if err := problemgen.ValidateRecord(it.Record); err != nil {
				return fmt.Errorf("item %d: %w", it.Number, err)
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(ws)
	case FormatLaTeX:
		return writeLaTeX(w, ws)
	default:
		return fmt.Errorf("unknown worksheet format %q", format)
	}
}

func writeText(w io.Writer, ws *Worksheet) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Worksheet %s (%s, seed %d)\n\n", ws.ID, ws.Topic, ws.Seed)
	for _, it := range ws.Items {
		fmt.Fprintf(&b, "%2d. %s\n", it.Number, it.Record.Question)
	}
	b.WriteString("\nAnswers\n\n")
	for _, it := range ws.Items {
		fmt.Fprintf(&b, "%2d. %s\n", it.Number, it.Record.Solution)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeLaTeX(w io.Writer, ws *Worksheet) error {
	var b strings.Builder
	b.WriteString("\\documentclass{article}\n\\usepackage{amsmath}\n\\begin{document}\n")
	fmt.Fprintf(&b, "\\section*{%s}\n", strings.ReplaceAll(ws.Topic, "-", " "))
	b.WriteString("\\begin{enumerate}\n")
	for _, it := range ws.Items {
		fmt.Fprintf(&b, "  \\item $%s$\n", it.Record.QuestionLaTeX)
	}
	b.WriteString("\\end{enumerate}\n\\subsection*{Answers}\n\\begin{enumerate}\n")
	for _, it := range ws.Items {
		fmt.Fprintf(&b, "  \\item $%s$\n", it.Record.SolutionLaTeX)
	}
	b.WriteString("\\end{enumerate}\n\\end{document}\n")
	_, err := io.WriteString(w, b.String())
	return err
}
