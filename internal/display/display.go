// Package display renders command output: styled headers and tables for
// humans, pretty JSON for machines, and the shared success/warning/error
// message forms.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	underlineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	boldStyle       = lipgloss.NewStyle().Bold(true)
	headerCellStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle       = lipgloss.NewStyle().Padding(0, 1)
)

// SectionHeader returns a blank line, a highlighted title, and an underline
// sized to the title.
func SectionHeader(title string) string {
	return fmt.Sprintf("\n%s\n%s",
		titleStyle.Render(title),
		underlineStyle.Render(strings.Repeat("─", len(title))))
}

// Bold renders inline emphasized text for summary lines.
func Bold(s string) string {
	return boldStyle.Render(s)
}

// NewTable builds an empty bordered table with the given header row.
func NewTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// Success prints a check-marked message to stdout.
func Success(msg string) {
	fmt.Printf("%s %s\n", successStyle.Render("✓"), msg)
}

// Warn prints a non-fatal warning to stderr.
func Warn(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", warnStyle.Render("warning:"), msg)
}

// Error prints an error line to stderr.
func Error(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("error:"), msg)
}

// JSON writes v to w as two-space indented JSON.
func JSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// Output emits v as pretty JSON on stdout in JSON mode, and otherwise runs
// the human renderer. A serialization failure is reported but never aborts
// the run.
func Output(jsonMode bool, v any, render func()) {
	if !jsonMode {
		render()
		return
	}
	if err := JSON(os.Stdout, v); err != nil {
		Error(fmt.Sprintf("Failed to serialize JSON: %v", err))
	}
}
