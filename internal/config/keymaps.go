package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task" mapstructure:"add_task"`
	EditTask      string `yaml:"edit_task" mapstructure:"edit_task"`
	ViewTask      string `yaml:"view_task" mapstructure:"view_task"`
	DeleteTask    string `yaml:"delete_task" mapstructure:"delete_task"`
	MoveTaskLeft  string `yaml:"move_task_left" mapstructure:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right" mapstructure:"move_task_right"`
	MoveTaskUp    string `yaml:"move_task_up" mapstructure:"move_task_up"`
	MoveTaskDown  string `yaml:"move_task_down" mapstructure:"move_task_down"`

	// Columns
	CreateColumn    string `yaml:"create_column" mapstructure:"create_column"`
	RenameColumn    string `yaml:"rename_column" mapstructure:"rename_column"`
	DeleteColumn    string `yaml:"delete_column" mapstructure:"delete_column"`
	MoveColumnLeft  string `yaml:"move_column_left" mapstructure:"move_column_left"`
	MoveColumnRight string `yaml:"move_column_right" mapstructure:"move_column_right"`

	// Boards
	CreateBoard string `yaml:"create_board" mapstructure:"create_board"`
	RenameBoard string `yaml:"rename_board" mapstructure:"rename_board"`
	DeleteBoard string `yaml:"delete_board" mapstructure:"delete_board"`
	PrevBoard   string `yaml:"prev_board" mapstructure:"prev_board"`
	NextBoard   string `yaml:"next_board" mapstructure:"next_board"`

	// Navigation
	PrevColumn string `yaml:"prev_column" mapstructure:"prev_column"`
	NextColumn string `yaml:"next_column" mapstructure:"next_column"`
	PrevTask   string `yaml:"prev_task" mapstructure:"prev_task"`
	NextTask   string `yaml:"next_task" mapstructure:"next_task"`

	// Other
	ShowHelp string `yaml:"show_help" mapstructure:"show_help"`
	Quit     string `yaml:"quit" mapstructure:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:       "a",
		EditTask:      "e",
		ViewTask:      " ",
		DeleteTask:    "d",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",
		MoveTaskUp:    "K",
		MoveTaskDown:  "J",

		// Columns
		CreateColumn:    "C",
		RenameColumn:    "R",
		DeleteColumn:    "X",
		MoveColumnLeft:  "<",
		MoveColumnRight: ">",

		// Boards
		CreateBoard: "B",
		RenameBoard: "E",
		DeleteBoard: "D",
		PrevBoard:   "{",
		NextBoard:   "}",

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

func (k *KeyMappings) fields() []*string {
	return []*string{
		&k.AddTask, &k.EditTask, &k.ViewTask, &k.DeleteTask,
		&k.MoveTaskLeft, &k.MoveTaskRight, &k.MoveTaskUp, &k.MoveTaskDown,
		&k.CreateColumn, &k.RenameColumn, &k.DeleteColumn, &k.MoveColumnLeft, &k.MoveColumnRight,
		&k.CreateBoard, &k.RenameBoard, &k.DeleteBoard, &k.PrevBoard, &k.NextBoard,
		&k.PrevColumn, &k.NextColumn, &k.PrevTask, &k.NextTask,
		&k.ShowHelp, &k.Quit,
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	dst, src := k.fields(), defaults.fields()
	for i := range dst {
		if *dst[i] == "" {
			*dst[i] = *src[i]
		}
	}
}
