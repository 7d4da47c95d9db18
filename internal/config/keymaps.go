package config

// KeyMappings defines all configurable key bindings of the board view
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task"`
	EditTask      string `yaml:"edit_task"`
	DeleteTask    string `yaml:"delete_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`
	ViewTask      string `yaml:"view_task"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Boards
	CreateBoard string `yaml:"create_board"`
	NextBoard   string `yaml:"next_board"`
	PrevBoard   string `yaml:"prev_board"`

	// Filtering
	Search        string `yaml:"search"`
	CyclePriority string `yaml:"cycle_priority_filter"`
	CycleCategory string `yaml:"cycle_category_filter"`
	CycleSort     string `yaml:"cycle_sort"`
	ClearFilters  string `yaml:"clear_filters"`

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
		AddTask:       "a",
		EditTask:      "e",
		DeleteTask:    "d",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",
		ViewTask:      " ",
		SaveForm:      "ctrl+s",

		CreateBoard: "B",
		NextBoard:   "}",
		PrevBoard:   "{",

		Search:        "/",
		CyclePriority: "p",
		CycleCategory: "c",
		CycleSort:     "s",
		ClearFilters:  "x",

		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(field *string, def string) {
		if *field == "" {
			*field = def
		}
	}

	fill(&k.AddTask, defaults.AddTask)
	fill(&k.EditTask, defaults.EditTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.MoveTaskLeft, defaults.MoveTaskLeft)
	fill(&k.MoveTaskRight, defaults.MoveTaskRight)
	fill(&k.ViewTask, defaults.ViewTask)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.CreateBoard, defaults.CreateBoard)
	fill(&k.NextBoard, defaults.NextBoard)
	fill(&k.PrevBoard, defaults.PrevBoard)
	fill(&k.Search, defaults.Search)
	fill(&k.CyclePriority, defaults.CyclePriority)
	fill(&k.CycleCategory, defaults.CycleCategory)
	fill(&k.CycleSort, defaults.CycleSort)
	fill(&k.ClearFilters, defaults.ClearFilters)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
