// package formatter renders the website listing as sections and exports it to various formats (plain text, Markdown, JSON)
package formatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/desertthunder/showcase/internal/models"
	"github.com/desertthunder/showcase/internal/shared"
	"github.com/desertthunder/showcase/internal/showcase"
	"github.com/nao1215/markdown"
)

const (
	TopTitle    = "Top Participants"
	OthersTitle = "All Participants"
)

// Section is one rendered block of the listing: a run of websites starting at a rank offset.
type Section struct {
	Title           string
	Websites        []models.Website
	StartIndex      int
	ShowRank        bool
	ShowDemoPreview bool
}

// Sections splits websites into the top participants section and, when anything remains, the all participants section.
func Sections(websites []models.Website) []Section {
	top, rest := showcase.Split(websites)

	sections := []Section{{Title: TopTitle, Websites: top, StartIndex: 0, ShowRank: true}}
	if len(rest) > 0 {
		sections = append(sections, Section{
			Title:           OthersTitle,
			Websites:        rest,
			StartIndex:      len(top),
			ShowDemoPreview: true,
		})
	}
	return sections
}

// Rank returns the 1-based overall rank of the i-th website in s.
func (s Section) Rank(i int) int {
	return s.StartIndex + i + 1
}

// Badge returns a medal for the podium ranks and "#n" otherwise.
func Badge(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("#%d", rank)
	}
}

// Listing is the JSON shape of the split listing.
type Listing struct {
	Top    []models.Website `json:"top"`
	Others []models.Website `json:"others"`
}

// NewListing splits websites into a [Listing].
func NewListing(websites []models.Website) Listing {
	top, rest := showcase.Split(websites)
	if top == nil {
		top = []models.Website{}
	}
	if rest == nil {
		rest = []models.Website{}
	}
	return Listing{Top: top, Others: rest}
}

// ExportToText renders sections as plain text, one website per line with its rank.
func ExportToText(sections []Section) ([]byte, error) {
	var buf bytes.Buffer

	for i, s := range sections {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "%s\n%s\n", s.Title, strings.Repeat("=", len(s.Title)))

		if len(s.Websites) == 0 {
			buf.WriteString("(no participants yet)\n")
			continue
		}

		for j, w := range s.Websites {
			prefix := fmt.Sprintf("%d.", s.Rank(j))
			if s.ShowRank {
				prefix = Badge(s.Rank(j))
			}
			fmt.Fprintf(&buf, "%s %s <%s>", prefix, w.Name, w.URL)
			if w.Author != "" {
				fmt.Fprintf(&buf, " by %s", w.Author)
			}
			buf.WriteString("\n")

			if w.Description != "" {
				fmt.Fprintf(&buf, "   %s\n", w.Description)
			}
			if s.ShowDemoPreview && w.PreviewURL != "" {
				fmt.Fprintf(&buf, "   demo: %s\n", w.PreviewURL)
			}
		}
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders sections as a Markdown document titled title.
//
// Ranked sections become tables; the remaining section becomes a bullet list with demo links.
func ExportToMarkdown(title string, sections []Section) ([]byte, error) {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	md.H1(title)
	md.PlainText("")

	for _, s := range sections {
		md.H2(s.Title)
		md.PlainText("")

		if len(s.Websites) == 0 {
			md.PlainText("_No participants yet._")
			md.PlainText("")
			continue
		}

		if s.ShowRank {
			rows := make([][]string, len(s.Websites))
			for j, w := range s.Websites {
				rows[j] = []string{Badge(s.Rank(j)), mdLink(w.Name, w.URL), w.Author, w.Description}
			}
			md.Table(markdown.TableSet{
				Header: []string{"Rank", "Website", "Author", "Description"},
				Rows:   rows,
			})
			md.PlainText("")
			continue
		}

		items := make([]string, len(s.Websites))
		for j, w := range s.Websites {
			item := fmt.Sprintf("%d. %s", s.Rank(j), mdLink(w.Name, w.URL))
			if w.Author != "" {
				item += " by " + w.Author
			}
			if s.ShowDemoPreview && w.PreviewURL != "" {
				item += " (" + mdLink("demo", w.PreviewURL) + ")"
			}
			items[j] = item
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	if err := md.Build(); err != nil {
		return nil, fmt.Errorf("failed to build markdown: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToJSON renders websites as the split [Listing].
func ExportToJSON(websites []models.Website, pretty bool) ([]byte, error) {
	data, err := shared.MarshalJSON(NewListing(websites), pretty)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal listing: %w", err)
	}
	return data, nil
}

// linkTextEscaper escapes characters that would end link text or split a table cell.
var linkTextEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`, `|`, `\|`)

// mdLink renders a Markdown link whose text is safe inside list items and table cells.
func mdLink(text, url string) string {
	return markdown.Link(linkTextEscaper.Replace(text), strings.ReplaceAll(url, " ", "%20"))
}
