package ui

import (
	"fmt"
	"strings"

	"notedeck/app/dto"

	tea "github.com/charmbracelet/bubbletea"
)

type DetailModel struct {
	Client *Client
	Note   dto.NoteWithUser
	Err    error
}

type backToListMsg struct{}

type noteUpdatedMsg struct {
	Note dto.NoteWithUser
}

type noteDeletedMsg struct{}

func NewDetailModel(c *Client, note dto.NoteWithUser) DetailModel {
	return DetailModel{Client: c, Note: note}
}

func (m DetailModel) Init() tea.Cmd { return nil }

func (m DetailModel) toggleImportant() tea.Msg {
	imp := !m.Note.Note.IsImportant
	updated, err := m.Client.UpdateNote(m.Note.Note.ID, dto.NotePatch{IsImportant: &imp})
	if err != nil {
		return errMsg(err)
	}
	next := m.Note
	next.Note = *updated
	return noteUpdatedMsg{Note: next}
}

func (m DetailModel) deleteNote() tea.Msg {
	if err := m.Client.DeleteNote(m.Note.Note.ID); err != nil {
		return errMsg(err)
	}
	return noteDeletedMsg{}
}

func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "i":
			return m, m.toggleImportant
		case "d":
			return m, m.deleteNote
		case "esc", "q":
			return m, func() tea.Msg { return backToListMsg{} }
		}

	case noteUpdatedMsg:
		m.Err = nil
		m.Note = msg.Note

	case errMsg:
		m.Err = msg
	}
	return m, nil
}

func (m DetailModel) View() string {
	n := m.Note.Note
	var b strings.Builder
	header := n.Title
	if n.IsImportant {
		header = importantStyle.Render("★ ") + header
	}
	b.WriteString(titleStyle.Render(header) + "\n\n")
	b.WriteString(n.Content + "\n\n")
	b.WriteString(blurredStyle.Render(fmt.Sprintf("by %s on %s (note #%d)",
		m.Note.User.Username, n.CreatedAt.Format("2006-01-02 15:04"), n.ID)))
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("i: toggle important • d: delete • esc: back"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return docStyle.Render(b.String())
}
