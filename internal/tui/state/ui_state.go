package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode     Mode = iota // Default navigation mode
	TaskFormMode               // Adding or editing a task with huh
	ColumnFormMode             // Adding or editing a column with huh
	BoardFormMode              // Creating or renaming a board with huh
	ConfirmMode                // Confirming a deletion
	TaskViewMode               // Task detail popup
	HelpMode                   // Displaying help screen
)

// Column layout. ColumnWidth is content, padding, border and spacing.
const (
	ColumnWidth   = 46
	reservedWidth = 4
	tabBarHeight  = 3
	statusHeight  = 2
	minContent    = 5
)

// UIState manages the user interface state.
// This includes navigation (column/task selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	selectedColumn int
	selectedTask   int
	width          int
	height         int
	mode           Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int
	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// taskScrollOffsets maps a column ID to the index of its first visible task
	taskScrollOffsets map[string]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      1,
		taskScrollOffsets: make(map[string]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = max(index, 0)
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = max(index, 0)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the height left for columns once the tab bar and
// status bar are drawn, never less than 5.
func (s *UIState) ContentHeight() int {
	return max(s.height-tabBarHeight-statusHeight, minContent)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = max(offset, 0)
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}
	s.viewportSize = max(1, (s.width-reservedWidth)/ColumnWidth)
}

// EnsureSelectionVisible scrolls the viewport so the selected column is on screen.
func (s *UIState) EnsureSelectionVisible(selectedColumn int) {
	if selectedColumn < s.viewportOffset {
		s.viewportOffset = selectedColumn
	}
	if selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedColumn - s.viewportSize + 1
	}
}

// ClampViewport keeps the viewport within columnsLen after columns were removed
// or the board changed.
func (s *UIState) ClampViewport(columnsLen int) {
	if columnsLen == 0 {
		s.viewportOffset = 0
		return
	}
	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
	s.EnsureSelectionVisible(s.selectedColumn)
}

// ResetSelection resets column and task selection and scrolling.
// Called when switching boards.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedTask = 0
	s.viewportOffset = 0
	clear(s.taskScrollOffsets)
}

// TaskScrollOffset returns the vertical scroll offset for a given column.
func (s *UIState) TaskScrollOffset(columnID string) int {
	return s.taskScrollOffsets[columnID]
}

// SetTaskScrollOffset updates the vertical scroll offset for a given column.
func (s *UIState) SetTaskScrollOffset(columnID string, offset int) {
	s.taskScrollOffsets[columnID] = max(0, offset)
}

// EnsureTaskVisible adjusts the scroll offset of a column so the selected
// task lies within the visibleCount tasks drawn.
func (s *UIState) EnsureTaskVisible(columnID string, selectedTaskIdx int, visibleCount int) {
	visibleCount = max(visibleCount, 1)
	offset := s.TaskScrollOffset(columnID)

	if selectedTaskIdx < offset {
		s.taskScrollOffsets[columnID] = selectedTaskIdx
	}
	if selectedTaskIdx >= offset+visibleCount {
		s.taskScrollOffsets[columnID] = selectedTaskIdx - visibleCount + 1
	}
}
