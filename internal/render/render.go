package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"countvec/internal/domain"
)

// Report is the serializable view of a fitted corpus.
type Report struct {
	FeatureNames []string `json:"feature_names" yaml:"feature_names"`
	Matrix       [][]int  `json:"matrix" yaml:"matrix"`
	Documents    []string `json:"documents,omitempty" yaml:"documents,omitempty"`
}

// NewReport builds a report; document labels are taken from their paths.
func NewReport(featureNames []string, matrix [][]int, documents []domain.Document) Report {
	labels := make([]string, len(documents))
	for i, d := range documents {
		labels[i] = label(d, i)
	}
	if featureNames == nil {
		featureNames = []string{}
	}
	if matrix == nil {
		matrix = [][]int{}
	}
	return Report{FeatureNames: featureNames, Matrix: matrix, Documents: labels}
}

// Write renders the report in the named format: table, csv, json or yaml.
func Write(w io.Writer, format string, r Report) error {
	switch format {
	case "table", "":
		_, err := io.WriteString(w, Table(r)+"\n")
		return err
	case "csv":
		return writeCSV(w, r)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	zeroStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Table lays out the matrix with one column per vocabulary term.
func Table(r Report) string {
	if len(r.Matrix) == 0 {
		return "(empty corpus)"
	}
	rowLabels := make([]string, len(r.Matrix))
	labelWidth := 0
	for i := range r.Matrix {
		rowLabels[i] = "#" + strconv.Itoa(i)
		if i < len(r.Documents) {
			rowLabels[i] = r.Documents[i]
		}
		labelWidth = max(labelWidth, lipgloss.Width(rowLabels[i]))
	}
	widths := make([]int, len(r.FeatureNames))
	for j, name := range r.FeatureNames {
		widths[j] = lipgloss.Width(name)
		for _, row := range r.Matrix {
			widths[j] = max(widths[j], len(strconv.Itoa(row[j])))
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth))
	for j, name := range r.FeatureNames {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(pad(name, widths[j])))
	}
	for i, row := range r.Matrix {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(pad(rowLabels[i], labelWidth)))
		for j, c := range row {
			b.WriteString("  ")
			cell := padLeft(strconv.Itoa(c), widths[j])
			if c == 0 {
				cell = zeroStyle.Render(cell)
			}
			b.WriteString(cell)
		}
	}
	return b.String()
}

func writeCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	header := append([]string{"document"}, r.FeatureNames...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, row := range r.Matrix {
		rec := make([]string, 0, len(row)+1)
		if i < len(r.Documents) {
			rec = append(rec, r.Documents[i])
		} else {
			rec = append(rec, strconv.Itoa(i))
		}
		for _, c := range row {
			rec = append(rec, strconv.Itoa(c))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func label(d domain.Document, i int) string {
	if d.Path == "" {
		return "#" + strconv.Itoa(i)
	}
	return d.Path + "#" + strconv.Itoa(i)
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}
