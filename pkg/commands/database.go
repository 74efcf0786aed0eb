package commands

import (
	"fmt"
	"os"
	"strings"

	"podo/pkg/config"
	"podo/pkg/stats"
	"podo/pkg/storage"
	"podo/pkg/task"
	"podo/pkg/timer"
)

// HandleDatabaseCommand processes --database commands
func HandleDatabaseCommand(st storage.Store, cmd string, skipConfirm bool) {
	if cmd != "purge" {
		fmt.Printf("Unknown database command: %s\n", cmd)
		os.Exit(1)
	}

	// Show confirmation unless --yes flag is used
	if !skipConfirm {
		fmt.Print("Are you sure you want to delete all tasks, sessions and stats? (y/N): ")
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
			fmt.Println("Operation cancelled.")
			return
		}
	}

	keys := []string{
		task.StorageKey,
		timer.StorageKey,
		stats.StorageKey,
		config.SettingsStorageKey,
	}
	for _, key := range keys {
		if err := st.Delete(key); err != nil {
			fmt.Printf("Error purging %s: %v\n", key, err)
			os.Exit(1)
		}
	}

	fmt.Println("Successfully purged all stored data")
}
