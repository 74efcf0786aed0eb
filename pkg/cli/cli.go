package cli

import (
	"flag"

	"podo/pkg/commands"
	"podo/pkg/storage"
	"podo/pkg/task"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
	Verbose    bool

	// Task operations
	AddTask      string
	PriorityFlag string
	CategoryFlag string
	DateFlag     string
	EstimateFlag int

	// Database operations
	DatabaseCmd string
	YesFlag     bool

	// Import/Export operations
	ImportFile string
	ExportFile string
	TypeFlag   string
}

// ParseArgs parses command line arguments and returns Args struct
func ParseArgs() *Args {
	args := &Args{}

	// Define command line flags
	flag.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")

	// Task operations
	flag.StringVar(&args.AddTask, "add", "", "Add a new task")
	flag.StringVar(&args.PriorityFlag, "priority", "", "Task priority (low, medium, high, urgent)")
	flag.StringVar(&args.CategoryFlag, "category", "", "Eisenhower quadrant (urgent-important, important, urgent, neither)")
	flag.StringVar(&args.DateFlag, "due", "", "Due date for task (YYYY-MM-DD format)")
	flag.IntVar(&args.EstimateFlag, "estimate", 0, "Estimated minutes")

	// Database operations
	flag.StringVar(&args.DatabaseCmd, "database", "", "Database command (purge)")
	flag.BoolVar(&args.YesFlag, "yes", false, "Skip confirmation")

	// Import/Export operations
	flag.StringVar(&args.ImportFile, "import", "", "Import tasks from file")
	flag.StringVar(&args.ExportFile, "export", "", "Export tasks to file")
	flag.StringVar(&args.TypeFlag, "type", "json", "Export file type (json, txt)")

	flag.Parse()
	return args
}

// HandleCommands processes CLI commands and returns true if a command was handled
func HandleCommands(store *task.Store, st storage.Store, args *Args) bool {
	// Check for CLI commands
	if args.AddTask != "" {
		commands.HandleAddTask(store, args.AddTask, args.PriorityFlag, args.CategoryFlag, args.DateFlag, args.EstimateFlag)
		return true
	}

	if args.DatabaseCmd != "" {
		commands.HandleDatabaseCommand(st, args.DatabaseCmd, args.YesFlag)
		return true
	}

	if args.ImportFile != "" {
		commands.HandleImportCommand(store, args.ImportFile)
		return true
	}

	if args.ExportFile != "" {
		commands.HandleExportCommand(store, args.ExportFile, args.TypeFlag)
		return true
	}

	// No CLI command was handled
	return false
}
