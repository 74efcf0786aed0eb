package commands

import (
	"fmt"
	"os"
	"time"

	"podo/pkg/task"
)

// HandleAddTask processes the --add command
func HandleAddTask(store *task.Store, title, priorityStr, categoryStr, dateStr string, estimate int) {
	priority := task.PriorityMedium
	if priorityStr != "" {
		var err error
		priority, err = task.ParsePriority(priorityStr)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	category := task.CategoryNeither
	if categoryStr != "" {
		var err error
		category, err = task.ParseCategory(categoryStr)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	var dueDate *time.Time
	if dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			fmt.Printf("Error parsing date: %v\n", err)
			os.Exit(1)
		}
		dueDate = &parsed
	}

	created, err := store.Create(task.Insert{
		Title:            title,
		Priority:         priority,
		Category:         category,
		DueDate:          dueDate,
		EstimatedMinutes: estimate,
	})
	if err != nil {
		fmt.Printf("Error adding task: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Task added: %s\n", created.Title)
}
