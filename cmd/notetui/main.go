package main

import (
	"flag"
	"fmt"
	"os"

	"notedeck/cmd/notetui/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	server := flag.String("server", "http://127.0.0.1:3001", "Base URL of the notedeck server")
	flag.Parse()

	client := ui.NewClient(*server)
	p := tea.NewProgram(ui.NewRootModel(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "notetui:", err)
		os.Exit(1)
	}
}
