package main

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// renderTable draws rows under header with left-aligned columns. Short rows
// are padded with empty cells.
func renderTable(header table.Row, rows []table.Row, colorize bool) string {
	if len(header) == 0 {
		return ""
	}

	style := table.StyleRounded
	if colorize {
		style.Color.Header = text.Colors{text.Bold, text.FgHiBlue}
	}
	tw := table.NewWriter()
	tw.SetStyle(style)
	tw.AppendHeader(header)
	for _, row := range rows {
		for len(row) < len(header) {
			row = append(row, "")
		}
		tw.AppendRow(row[:len(header)])
	}

	configs := make([]table.ColumnConfig, len(header))
	for i := range configs {
		configs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft}
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}

// colorValue paints boolean-looking cells green or red.
func colorValue(value string, colorize bool) string {
	if !colorize {
		return value
	}
	switch value {
	case "True", "yes":
		return text.FgGreen.Sprint(value)
	case "False", "no":
		return text.FgRed.Sprint(value)
	}
	return value
}

func shouldColorize(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
