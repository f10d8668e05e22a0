package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	viewer "github.com/ionut-t/gomotion/adapter-bubbletea"
	"github.com/ionut-t/gomotion/adapter-bubbletea/highlighter"
	"github.com/ionut-t/gomotion/config"
	"github.com/ionut-t/gomotion/core"
)

type Model struct {
	viewer viewer.Model
}

func (m Model) Init() tea.Cmd {
	return m.viewer.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		msg.Width -= 4
		msg.Height -= 2
		updated, cmd := m.viewer.Update(msg)
		m.viewer = updated.(viewer.Model)
		return m, cmd
	}

	updated, cmd := m.viewer.Update(msg)
	m.viewer = updated.(viewer.Model)
	return m, cmd
}

func (m Model) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(m.viewer.View())
}

func main() {
	defaultConfig, err := config.DefaultPath()
	if err != nil {
		defaultConfig = "config.toml"
	}
	configPath := flag.String("config", defaultConfig, "path to the config file")
	language := flag.String("lang", "", "syntax highlighting language (overrides config)")
	flag.Parse()

	// The alt screen owns stderr, so motion logs only go to a file.
	logger := log.New(io.Discard, "", 0)
	if logPath := os.Getenv("GOMOTION_LOG"); logPath != "" {
		f, err := tea.LogToFile(logPath, "gomotion")
		if err != nil {
			log.Fatalf("Error opening log file: %v", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	file := flag.Arg(0)
	if file == "" {
		log.Fatalf("usage: %s [-config path] [-lang language] file", filepath.Base(os.Args[0]))
	}

	content, err := os.ReadFile(file)
	if err != nil {
		log.Fatalf("Error reading %s: %v", file, err)
	}

	classifiers, err := cfg.Classifiers()
	if err != nil {
		log.Fatalf("Error in config: %v", err)
	}
	caret, err := cfg.CaretMode()
	if err != nil {
		log.Fatalf("Error in config: %v", err)
	}

	navigator, err := core.NewNavigator(
		core.NewBufferFromBytes(content),
		core.WithClassifiers(classifiers),
		core.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Error creating navigator: %v", err)
	}

	lang := cfg.Display.Language
	if *language != "" {
		lang = *language
	} else if ext := filepath.Ext(file); ext != "" {
		lang = ext[1:]
	}

	m := Model{
		viewer: viewer.New(navigator, 80, 20,
			viewer.WithCaretMode(caret),
			viewer.WithLineNumbers(cfg.Display.LineNumbers),
			viewer.WithHighlighter(highlighter.New(lang, cfg.Display.Theme)),
		),
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("Error running Bubble Tea program: %v", err)
	}
}
