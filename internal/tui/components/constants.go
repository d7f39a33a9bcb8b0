package components

const (
	TaskCardHeight     = 6  // TaskCardHeight is the fixed height of a task card, borders included
	columnContentWidth = 40 // column width inside its border
	taskCardWidth      = 36 // card width inside its border
	taskTextWidth      = 34 // card text width after the one cell gutter on both sides
	columnOverhead     = 5  // top border + header + top indicator + bottom padding + bottom border

	// ConfirmFooter is shown under every confirmation dialog
	ConfirmFooter = "[y] confirm  [n/Esc] cancel"
	// FormFooter is shown under every form
	FormFooter = "Enter: next/submit  Shift+Tab: back  Esc: cancel"
)
