package models

// State is everything the store holds and everything that gets persisted
type State struct {
	Boards      []Board `json:"boards"`
	ActiveBoard string  `json:"activeBoard"`
}

// NewState returns an empty state with a non-nil board list
func NewState() State {
	return State{Boards: []Board{}}
}

// Clone returns a deep copy of the state
func (s State) Clone() State {
	cp := State{
		Boards:      make([]Board, len(s.Boards)),
		ActiveBoard: s.ActiveBoard,
	}
	for i, b := range s.Boards {
		cp.Boards[i] = b.Clone()
	}
	return cp
}

// BoardIndex returns the position of the board with the given ID, or -1
func (s *State) BoardIndex(boardID string) int {
	for i := range s.Boards {
		if s.Boards[i].ID == boardID {
			return i
		}
	}
	return -1
}

// Board returns the board with the given ID
func (s *State) Board(boardID string) (*Board, bool) {
	if i := s.BoardIndex(boardID); i >= 0 {
		return &s.Boards[i], true
	}
	return nil, false
}

// Active returns the active board, if any
func (s *State) Active() (*Board, bool) {
	if s.ActiveBoard == "" {
		return nil, false
	}
	return s.Board(s.ActiveBoard)
}

// Normalize replaces nil slices with empty ones so that persisted JSON uses [] and
// renders match a freshly created state. An active board that no longer exists is cleared.
func (s *State) Normalize() {
	if s.Boards == nil {
		s.Boards = []Board{}
	}
	for i := range s.Boards {
		b := &s.Boards[i]
		if b.Columns == nil {
			b.Columns = []Column{}
		}
		for j := range b.Columns {
			c := &b.Columns[j]
			if c.Tasks == nil {
				c.Tasks = []Task{}
			}
			for k := range c.Tasks {
				t := &c.Tasks[k]
				if t.Tags == nil {
					t.Tags = []string{}
				}
				if t.Priority == "" {
					t.Priority = DefaultPriority
				}
			}
		}
	}
	if s.ActiveBoard != "" && s.BoardIndex(s.ActiveBoard) < 0 {
		s.ActiveBoard = ""
	}
}
