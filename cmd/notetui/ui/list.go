package ui

import (
	"fmt"
	"strings"

	"notedeck/app/dto"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type ListModel struct {
	Client *Client
	Table  table.Model
	Notes  []dto.NoteWithUser
	Err    error
}

type notesLoadedMsg struct {
	Notes []dto.NoteWithUser
}

type noteSelectedMsg struct {
	Note dto.NoteWithUser
}

type newNoteMsg struct{}

func NewListModel(c *Client, width, height int) ListModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Title", Width: 32},
		{Title: "Owner", Width: 16},
		{Title: "Important", Width: 10},
		{Title: "Created", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height-10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ListModel{Client: c, Table: t}
}

func (m ListModel) Refresh() tea.Msg {
	notes, err := m.Client.ListNotesWithUsers()
	if err != nil {
		return errMsg(err)
	}
	return notesLoadedMsg{Notes: notes}
}

func (m ListModel) Init() tea.Cmd {
	return m.Refresh
}

func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.Refresh
		case "n":
			return m, func() tea.Msg { return newNoteMsg{} }
		case "enter":
			if i := m.Table.Cursor(); i >= 0 && i < len(m.Notes) {
				note := m.Notes[i]
				return m, func() tea.Msg { return noteSelectedMsg{Note: note} }
			}
		case "q":
			return m, tea.Quit
		}

	case notesLoadedMsg:
		m.Err = nil
		m.Notes = msg.Notes
		rows := make([]table.Row, 0, len(msg.Notes))
		for _, nw := range msg.Notes {
			important := ""
			if nw.Note.IsImportant {
				important = "yes"
			}
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", nw.Note.ID),
				nw.Note.Title,
				nw.User.Username,
				important,
				nw.Note.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
		m.Table.SetRows(rows)

	case errMsg:
		m.Err = msg
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m ListModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Notes") + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("enter: open • n: new note • r: refresh • q: quit"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return docStyle.Render(b.String())
}
