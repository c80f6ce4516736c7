package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tricolor/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	p := tea.NewProgram(newApp(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
