package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette used by the console and TUI renderers.
var (
	ColorText   = lipgloss.Color("#F5F5F5")
	ColorMuted  = lipgloss.Color("#A3A3A3")
	ColorDim    = lipgloss.Color("#525252")
	ColorBorder = lipgloss.Color("#262626")
	ColorGreen  = lipgloss.Color("#86EFAC")
	ColorAccent = lipgloss.Color("#4ADE80")
	ColorAmber  = lipgloss.Color("#FCD34D")
	ColorRed    = lipgloss.Color("#F87171")
)

// ChartColors cycles through categorical series (returns pie, bars).
var ChartColors = []lipgloss.Color{"#7ed957", "#17becf", "#ff7f0e", "#bcbd22", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f"}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorDim)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorAmber)
	barStyle    = lipgloss.NewStyle().Foreground(ColorAccent)
	negBarStyle = lipgloss.NewStyle().Foreground(ColorRed)
)

// Table is a bordered text table. The first column is left-aligned and the
// rest are right-aligned. A row of exactly {"---"} draws a separator.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title in a rounded box.
func RenderTitle(title, subtitle string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(60).
		Align(lipgloss.Center).
		Padding(0, 1)

	content := titleStyle.Render(title)
	if subtitle != "" {
		content += "\n" + mutedStyle.Render(subtitle)
	}
	return box.Render(content)
}

// RenderSection renders a section heading.
func RenderSection(name string) string {
	return headerStyle.Render(name)
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right) + "\n")
	}

	rule("╭", "┬", "╮")
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(" " + pad(h, widths[i], i > 0) + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│") + "\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(valueStyle.Render(" " + pad(cell, widths[i], i > 0) + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│") + "\n")
	}
	rule("╰", "┴", "╯")
	return b.String()
}

// pad pads s to width using display width, so "—" and "−" count as one cell.
func pad(s string, width int, right bool) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// RenderSparkline renders a unicode block sparkline of non-negative values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	hi := values[0]
	for _, v := range values[1:] {
		if v > hi {
			hi = v
		}
	}
	if hi <= 0 {
		hi = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / hi * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}
	return b.String()
}

// RenderBar renders a horizontal bar scaled against maxAbs. Negative values
// are drawn in red.
func RenderBar(value, maxAbs float64, maxWidth int) string {
	if maxAbs <= 0 || maxWidth <= 0 {
		return ""
	}
	v := value
	if v < 0 {
		v = -v
	}
	n := int(v / maxAbs * float64(maxWidth))
	if n > maxWidth {
		n = maxWidth
	}
	if v > 0 && n == 0 {
		n = 1
	}
	bar := strings.Repeat("█", n)
	if value < 0 {
		return negBarStyle.Render(bar)
	}
	return barStyle.Render(bar)
}

// RenderShareStrip renders parts as one bar of the given width, each part
// in its ChartColors color. Non-positive parts are skipped.
func RenderShareStrip(parts []float64, width int) string {
	total := 0.0
	for _, p := range parts {
		if p > 0 {
			total += p
		}
	}
	if total <= 0 || width <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	for i, p := range parts {
		if p <= 0 {
			continue
		}
		n := int(p / total * float64(width))
		if n == 0 {
			n = 1
		}
		if used+n > width {
			n = width - used
		}
		used += n
		b.WriteString(lipgloss.NewStyle().Foreground(ChartColors[i%len(ChartColors)]).Render(strings.Repeat("█", n)))
	}
	return b.String()
}

// RenderWarning renders a diagnostic line.
func RenderWarning(path, msg string) string {
	return warnStyle.Render(fmt.Sprintf("  ! %s: %s", path, msg))
}
