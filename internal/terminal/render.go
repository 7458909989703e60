package terminal

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"termfolio/internal/model"
)

// StyleFunc decorates a cell after it has been laid out. Padding is
// computed from the plain text, so styles may add escape sequences.
type StyleFunc func(c model.Cell) string

// PlainStyle renders cells without decoration.
func PlainStyle(c model.Cell) string { return c.Text }

const flowGap = "  "

// Layout renders an output as terminal lines for the given width.
// Rows are aligned in columns; flow cells are wrapped at width
// (no wrapping when width <= 0).
func Layout(out model.Output, width int, style StyleFunc) []string {
	if style == nil {
		style = PlainStyle
	}

	var lines []string
	if out.Text != "" {
		lines = append(lines, strings.Split(out.Text, "\n")...)
	}
	lines = append(lines, layoutRows(out.Rows, style)...)
	lines = append(lines, layoutFlow(out.Flow, width, style)...)
	return lines
}

func layoutRows(rows [][]model.Cell, style StyleFunc) []string {
	var widths []int
	for _, row := range rows {
		for i, c := range row {
			w := runewidth.StringWidth(c.Text)
			if i >= len(widths) {
				widths = append(widths, w)
			} else if w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for i, c := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(style(c))
			// The last column is never padded.
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(c.Text)))
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}

func layoutFlow(cells []model.Cell, width int, style StyleFunc) []string {
	if len(cells) == 0 {
		return nil
	}

	var lines []string
	var b strings.Builder
	used := 0
	gap := runewidth.StringWidth(flowGap)
	for _, c := range cells {
		w := runewidth.StringWidth(c.Text)
		if used > 0 && width > 0 && used+gap+w > width {
			lines = append(lines, b.String())
			b.Reset()
			used = 0
		}
		if used > 0 {
			b.WriteString(flowGap)
			used += gap
		}
		b.WriteString(style(c))
		used += w
	}
	return append(lines, b.String())
}

// PromptText renders the prompt in front of the input line, without colour.
func PromptText(path []string) string {
	return model.IconPrompt + "  " + model.PathSymbol(path) + " "
}
