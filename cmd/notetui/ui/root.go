package ui

import tea "github.com/charmbracelet/bubbletea"

type state int

const (
	stateList state = iota
	stateDetail
	stateForm
)

type RootModel struct {
	State    state
	Client   *Client
	List     ListModel
	Detail   DetailModel
	Form     FormModel
	Quitting bool
	width    int
	height   int
}

func NewRootModel(c *Client) RootModel {
	return RootModel{
		State:  stateList,
		Client: c,
		List:   NewListModel(c, 80, 24),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.List.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.List.Table.SetHeight(msg.Height - 10)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}
	}

	switch m.State {
	case stateList:
		switch msg := msg.(type) {
		case noteSelectedMsg:
			m.State = stateDetail
			m.Detail = NewDetailModel(m.Client, msg.Note)
			return m, m.Detail.Init()
		case newNoteMsg:
			m.State = stateForm
			m.Form = NewFormModel(m.Client)
			return m, m.Form.Init()
		}
		newList, cmd := m.List.Update(msg)
		m.List = newList
		cmds = append(cmds, cmd)

	case stateDetail:
		switch msg.(type) {
		case backToListMsg, noteDeletedMsg:
			m.State = stateList
			return m, m.List.Refresh
		}
		newDetail, cmd := m.Detail.Update(msg)
		m.Detail = newDetail
		cmds = append(cmds, cmd)

	case stateForm:
		switch msg.(type) {
		case backToListMsg, noteCreatedMsg:
			m.State = stateList
			return m, m.List.Refresh
		}
		newForm, cmd := m.Form.Update(msg)
		m.Form = newForm
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	switch m.State {
	case stateList:
		return m.List.View()
	case stateDetail:
		return m.Detail.View()
	case stateForm:
		return m.Form.View()
	}
	return "Unknown state"
}
