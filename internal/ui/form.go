package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/showcase/internal/models"
)

// formField indexes the admin form inputs.
type formField int

const (
	fieldName formField = iota
	fieldURL
	fieldDescription
	fieldAuthor
	fieldPreview
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldName:        "Name",
	fieldURL:         "URL",
	fieldDescription: "Description",
	fieldAuthor:      "Author",
	fieldPreview:     "Demo preview URL",
}

var fieldPlaceholders = [fieldCount]string{
	fieldName:        "My Project",
	fieldURL:         "https://example.com",
	fieldDescription: "What does it do?",
	fieldAuthor:      "Your name",
	fieldPreview:     "https://example.com/demo (optional)",
}

// adminForm collects the fields of a [models.Draft].
type adminForm struct {
	inputs [fieldCount]textinput.Model
	focus  formField
}

func newAdminForm() adminForm {
	var f adminForm
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.CharLimit = 256
		ti.Prompt = "› "
		f.inputs[i] = ti
	}
	f.inputs[fieldDescription].CharLimit = 512
	f.inputs[fieldName].Focus()
	return f
}

// draft reads the current input values.
func (f adminForm) draft() models.Draft {
	return models.Draft{
		Name:        f.inputs[fieldName].Value(),
		URL:         f.inputs[fieldURL].Value(),
		Description: f.inputs[fieldDescription].Value(),
		Author:      f.inputs[fieldAuthor].Value(),
		PreviewURL:  f.inputs[fieldPreview].Value(),
	}
}

// onLastField reports whether focus is on the final input.
func (f adminForm) onLastField() bool {
	return f.focus == fieldCount-1
}

// move shifts focus by delta, wrapping around.
func (f *adminForm) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = formField((int(f.focus) + delta + int(fieldCount)) % int(fieldCount))
	return f.inputs[f.focus].Focus()
}

// reset clears every input and focuses the first one.
func (f *adminForm) reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = fieldName
	return f.inputs[fieldName].Focus()
}

// update forwards msg to the focused input.
func (f *adminForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f adminForm) view() string {
	var b strings.Builder
	for i, in := range f.inputs {
		label := fieldLabels[i]
		if formField(i) == f.focus {
			label = styles.focused.Render(label)
		} else {
			label = styles.muted.Render(label)
		}
		fmt.Fprintf(&b, "%s\n%s\n\n", label, in.View())
	}
	return b.String()
}
