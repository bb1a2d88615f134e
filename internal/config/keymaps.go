package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	ChangeStatus string `yaml:"change_status"`
	EditTask     string `yaml:"edit_task"`
	DeleteTask   string `yaml:"delete_task"`
	ViewTask     string `yaml:"view_task"`
	Reload       string `yaml:"reload"`

	// Web pages
	AddTask      string `yaml:"add_task"`
	ManageTasks  string `yaml:"manage_tasks"`
	RegisterUser string `yaml:"register_user"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		ChangeStatus: "s",
		EditTask:     "e",
		DeleteTask:   "d",
		ViewTask:     "space",
		Reload:       "r",

		// Web pages
		AddTask:      "a",
		ManageTasks:  "M",
		RegisterUser: "U",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.ChangeStatus == "" {
		k.ChangeStatus = defaults.ChangeStatus
	}
	if k.EditTask == "" {
		k.EditTask = defaults.EditTask
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.ViewTask == "" {
		k.ViewTask = defaults.ViewTask
	}
	if k.Reload == "" {
		k.Reload = defaults.Reload
	}
	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.ManageTasks == "" {
		k.ManageTasks = defaults.ManageTasks
	}
	if k.RegisterUser == "" {
		k.RegisterUser = defaults.RegisterUser
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
