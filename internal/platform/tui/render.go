package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorSnakeHead: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorSnakeBody: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorFood:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorOverlay:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawOverlay draws a framed box of centered lines over the middle of s.
// The line at selected, if any, gets a cursor.
func drawOverlay(s *core.Screen, lines []string, selected int) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l))+2)
	}
	w, h := width+4, len(lines)+2
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	s.FillRect(x, y, w, h, ' ', core.ColorOverlay)
	s.DrawBox(x, y, w, h, core.ColorOverlay)
	for i, l := range lines {
		if i == selected {
			l = "> " + l
		}
		s.DrawTextCentered(y+1+i, l, core.ColorOverlay)
	}
}

// menuView renders a titled list with a cursor, centered in width.
func menuView(title string, items []string, cursor, width, height int, footer string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	for i, item := range items {
		if i == cursor {
			b.WriteString(selectedStyle.Render("> " + item))
		} else {
			b.WriteString(itemStyle.Render("  " + item))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(footer))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
