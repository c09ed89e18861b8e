package ui

import (
	"errors"
	"strconv"
	"strings"

	"notedeck/app/dto"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type errMsg error

var errInvalidUserID = errors.New("user id must be a positive number")

const (
	inputTitle = iota
	inputContent
	inputUserID
	inputImportant
)

// FormModel collects the fields of a new note.
type FormModel struct {
	Client   *Client
	Inputs   []textinput.Model
	FocusIdx int
	Err      error
}

type noteCreatedMsg struct{}

func NewFormModel(c *Client) FormModel {
	inputs := make([]textinput.Model, 4)

	inputs[inputTitle] = textinput.New()
	inputs[inputTitle].Placeholder = "Getting Started"
	inputs[inputTitle].Prompt = "Title: "
	inputs[inputTitle].Focus()

	inputs[inputContent] = textinput.New()
	inputs[inputContent].Placeholder = "what's on your mind"
	inputs[inputContent].Prompt = "Content: "

	inputs[inputUserID] = textinput.New()
	inputs[inputUserID].Placeholder = "1"
	inputs[inputUserID].Prompt = "User ID: "

	inputs[inputImportant] = textinput.New()
	inputs[inputImportant].Placeholder = "y/n"
	inputs[inputImportant].Prompt = "Important: "
	inputs[inputImportant].SetValue("n")

	return FormModel{Client: c, Inputs: inputs}
}

func (m FormModel) Init() tea.Cmd { return textinput.Blink }

func (m FormModel) submit() tea.Msg {
	title := strings.TrimSpace(m.Inputs[inputTitle].Value())
	content := m.Inputs[inputContent].Value()
	userID, err := strconv.Atoi(strings.TrimSpace(m.Inputs[inputUserID].Value()))
	if err != nil || userID <= 0 {
		return errMsg(errInvalidUserID)
	}
	important := strings.HasPrefix(strings.ToLower(m.Inputs[inputImportant].Value()), "y")

	_, err = m.Client.CreateNote(dto.CreateNoteRequest{
		Title:       title,
		Content:     content,
		IsImportant: important,
		UserID:      uint(userID),
	})
	if err != nil {
		return errMsg(err)
	}
	return noteCreatedMsg{}
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backToListMsg{} }
		case "tab", "down":
			m.FocusIdx = (m.FocusIdx + 1) % len(m.Inputs)
			return m.refocus()
		case "shift+tab", "up":
			m.FocusIdx = (m.FocusIdx - 1 + len(m.Inputs)) % len(m.Inputs)
			return m.refocus()
		case "enter":
			if m.FocusIdx == len(m.Inputs)-1 {
				return m, m.submit
			}
			m.FocusIdx++
			return m.refocus()
		}

	case errMsg:
		m.Err = msg
		return m, nil
	}

	var cmds []tea.Cmd
	for i := range m.Inputs {
		var cmd tea.Cmd
		m.Inputs[i], cmd = m.Inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m FormModel) refocus() (FormModel, tea.Cmd) {
	var cmds []tea.Cmd
	for i := range m.Inputs {
		if i == m.FocusIdx {
			cmds = append(cmds, m.Inputs[i].Focus())
			m.Inputs[i].PromptStyle = focusedStyle
			continue
		}
		m.Inputs[i].Blur()
		m.Inputs[i].PromptStyle = blurredStyle
	}
	return m, tea.Batch(cmds...)
}

func (m FormModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New note") + "\n\n")
	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View() + "\n")
	}
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("tab: next field • enter on last field: save • esc: cancel"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return docStyle.Render(b.String())
}
