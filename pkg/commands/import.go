package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"podo/pkg/task"
)

// HandleImportCommand processes --import commands. The file must hold
// a JSON array of tasks, as produced by --export -type json. Imported
// tasks get fresh ids; completed ones are toggled after creation so
// the completedAt invariant holds.
func HandleImportCommand(store *task.Store, filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	var incoming []task.Task
	if err := json.Unmarshal(content, &incoming); err != nil {
		fmt.Printf("Error parsing file: %v\n", err)
		os.Exit(1)
	}

	var tasksAdded int
	for _, t := range incoming {
		created, err := store.Create(task.Insert{
			Title:            t.Title,
			Description:      t.Description,
			Priority:         t.Priority,
			Category:         t.Category,
			DueDate:          t.DueDate,
			EstimatedMinutes: t.EstimatedMinutes,
		})
		if err != nil {
			fmt.Printf("Error adding task '%s': %v\n", t.Title, err)
			continue
		}

		if t.Status == task.StatusCompleted {
			if _, err := store.ToggleComplete(created.ID); err != nil {
				fmt.Printf("Error completing task '%s': %v\n", t.Title, err)
			}
		}
		tasksAdded++
	}

	fmt.Printf("Successfully imported %d task(s) from %s\n", tasksAdded, filename)
}
