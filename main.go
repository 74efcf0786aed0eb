package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"podo/pkg/cli"
	"podo/pkg/config"
	"podo/pkg/stats"
	"podo/pkg/storage"
	"podo/pkg/task"
	"podo/pkg/timer"
	"podo/pkg/ui"
	"podo/pkg/utils"
)

func main() {
	// Parse command line flags
	args := cli.ParseArgs()

	utils.InitLogger(args.Verbose)
	defer utils.CloseLogger()

	// Load configuration
	cfg, styles, err := config.Load(args.ConfigPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open the storage backend
	store, err := storage.Open(cfg.Storage.Driver, cfg.Storage.Path, cfg.Storage.DSN)
	if err != nil {
		fmt.Printf("Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Mirror settings so the stored data is self-contained
	if err := config.SaveSettings(store, cfg.Settings); err != nil {
		fmt.Printf("Error saving settings: %v\n", err)
		os.Exit(1)
	}

	tasks, err := task.NewStore(store)
	if err != nil {
		fmt.Printf("Error loading tasks: %v\n", err)
		os.Exit(1)
	}

	// Handle one-shot CLI commands before starting the UI
	if cli.HandleCommands(tasks, store, args) {
		return
	}

	sessions, err := timer.NewLog(store)
	if err != nil {
		fmt.Printf("Error loading sessions: %v\n", err)
		os.Exit(1)
	}

	engine := timer.NewEngine(func() timer.Settings {
		return timer.Settings{
			FocusMinutes:      cfg.Settings.FocusMinutes,
			ShortBreakMinutes: cfg.Settings.ShortBreakMinutes,
			LongBreakMinutes:  cfg.Settings.LongBreakMinutes,
		}
	}, sessions)

	statsEngine, err := stats.NewEngine(store)
	if err != nil {
		fmt.Printf("Error loading stats: %v\n", err)
		os.Exit(1)
	}

	// Create and run the Bubble Tea program
	p := tea.NewProgram(ui.NewModel(tasks, engine, sessions, statsEngine, store, cfg, styles), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
