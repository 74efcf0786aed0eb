package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"podo/pkg/task"
)

// HandleExportCommand processes --export commands
func HandleExportCommand(store *task.Store, filename, exportType string) {
	tasks := store.All()

	// Ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	var content []byte
	var err error

	switch exportType {
	case "json":
		content, err = json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling tasks to JSON: %v\n", err)
			os.Exit(1)
		}
	case "txt":
		var lines []string
		var lastQuadrant task.Category
		for _, c := range task.Categories() {
			for _, t := range store.ByCategory(c) {
				if t.Category != lastQuadrant || len(lines) == 0 {
					lines = append(lines, fmt.Sprintf("\n%s:", t.Category.Label()))
					lastQuadrant = t.Category
				}

				status := " "
				if t.Status == task.StatusCompleted {
					status = "x"
				}
				line := fmt.Sprintf("- [%s] %s", status, t.Title)
				if t.DueDate != nil {
					line += fmt.Sprintf(" (due %s)", t.DueDate.Format("2006-01-02"))
				}
				lines = append(lines, line)
			}
		}
		content = []byte(strings.TrimSpace(strings.Join(lines, "\n")))
	default:
		fmt.Printf("Unknown export type: %s\n", exportType)
		os.Exit(1)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully exported %d task(s) to %s\n", len(tasks), filename)
}
