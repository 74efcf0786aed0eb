package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":        {"ctrl+b", "show/hide help"},
	"QuitApp":         {"q", "quit"},
	"TasksView":       {"1", "tasks view"},
	"TimerView":       {"2", "timer view"},
	"StatsView":       {"3", "stats view"},
	"ToggleStatus":    {"space", "toggle task done"},
	"AddTask":         {"a", "add task"},
	"EditTask":        {"e", "edit task"},
	"DeleteTask":      {"d", "delete task"},
	"FocusTask":       {"f", "focus timer on task"},
	"ShowDoneTasks":   {"ctrl+d", "show only done tasks"},
	"ShowUndoneTasks": {"ctrl+u", "show only undone tasks"},
	"ShowAllTasks":    {"ctrl+a", "show all tasks"},
	"StartPauseTimer": {"space", "start/pause timer"},
	"ResetTimer":      {"r", "reset timer"},
	"FocusMode":       {"f", "switch to focus"},
	"ShortBreakMode":  {"s", "switch to short break"},
	"LongBreakMode":   {"l", "switch to long break"},
	"ToggleSound":     {"m", "toggle sound"},
}

type KeyMap struct {
	ShowHelp        key.Binding
	QuitApp         key.Binding
	TasksView       key.Binding
	TimerView       key.Binding
	StatsView       key.Binding
	ToggleStatus    key.Binding
	AddTask         key.Binding
	EditTask        key.Binding
	DeleteTask      key.Binding
	FocusTask       key.Binding
	ShowDoneTasks   key.Binding
	ShowUndoneTasks key.Binding
	ShowAllTasks    key.Binding
	StartPauseTimer key.Binding
	ResetTimer      key.Binding
	FocusMode       key.Binding
	ShortBreakMode  key.Binding
	LongBreakMode   key.Binding
	ToggleSound     key.Binding
}

func BuildKeyMap(configOverrides map[string]string) KeyMap {
	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := configOverrides[action]; exists && override != "" {
			keyStr = override
		}

		switch action {
		case "ShowHelp":
			km.ShowHelp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "QuitApp":
			km.QuitApp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "TasksView":
			km.TasksView = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "TimerView":
			km.TimerView = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "StatsView":
			km.StatsView = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ToggleStatus":
			km.ToggleStatus = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "AddTask":
			km.AddTask = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "EditTask":
			km.EditTask = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "DeleteTask":
			km.DeleteTask = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "FocusTask":
			km.FocusTask = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ShowDoneTasks":
			km.ShowDoneTasks = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ShowUndoneTasks":
			km.ShowUndoneTasks = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ShowAllTasks":
			km.ShowAllTasks = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "StartPauseTimer":
			km.StartPauseTimer = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ResetTimer":
			km.ResetTimer = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "FocusMode":
			km.FocusMode = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ShortBreakMode":
			km.ShortBreakMode = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "LongBreakMode":
			km.LongBreakMode = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ToggleSound":
			km.ToggleSound = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
