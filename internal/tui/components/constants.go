package components

const (
	TaskCardHeight       = 6 // border(2) + title + metadata + due + description preview
	columnBorderOverhead = 3 // top border + bottom padding + bottom border
	descriptionPreview   = 40

	// Dialog footer/help text strings
	FormFooter    = "Tab: next field  ←/→: change choice  Enter/Ctrl+S: save  Esc: cancel"
	ConfirmFooter = "y: delete  n/Esc: cancel"
	InputFooter   = "Enter: create  Esc: cancel"
)
