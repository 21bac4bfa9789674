package ui

import (
	"fmt"
	"strings"

	"github.com/desertthunder/showcase/internal/formatter"
)

// renderSections renders the listing sections as styled lines.
func renderSections(sections []formatter.Section) []string {
	var lines []string
	for i, s := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, renderSection(s)...)
	}
	return lines
}

func renderSection(s formatter.Section) []string {
	lines := []string{styles.section.Render(s.Title), ""}

	if len(s.Websites) == 0 {
		return append(lines, styles.help.Render("No participants yet. Press a to add one."))
	}

	for i, w := range s.Websites {
		rank := fmt.Sprintf("%3d.", s.Rank(i))
		if s.ShowRank {
			rank = fmt.Sprintf("%4s", formatter.Badge(s.Rank(i)))
		}

		head := fmt.Sprintf("%s %s %s", rank, styles.name.Render(w.Name), styles.muted.Render(w.Host()))
		if w.Author != "" {
			head += styles.muted.Render(" · " + w.Author)
		}
		lines = append(lines, head)

		indent := strings.Repeat(" ", 5)
		if w.Description != "" {
			lines = append(lines, indent+w.Description)
		}
		if s.ShowDemoPreview && w.PreviewURL != "" {
			lines = append(lines, indent+styles.ok.Render("▶ demo ")+styles.muted.Render(w.PreviewURL))
		}
	}
	return lines
}
