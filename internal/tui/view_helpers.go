package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(hintStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("  ctrl+c: quit"))

	return pageStyle.Render(b.String())
}

// fitText cuts v to max terminal cells, ending with "..." when cut.
func fitText(v string, max int) string {
	if max <= 0 || ansi.StringWidth(v) <= max {
		return v
	}
	if max <= 3 {
		return ansi.Truncate(v, max, "")
	}
	return ansi.Truncate(v, max, "...")
}
