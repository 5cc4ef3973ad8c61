package components

type toolbarButton struct {
	Command string
	Value   string
	Label   string
	Title   string
}

// Commands map onto document.execCommand in editor.js
var toolbarButtons = []toolbarButton{
	{Command: "bold", Label: "B", Title: "Bold"},
	{Command: "italic", Label: "I", Title: "Italic"},
	{Command: "underline", Label: "U", Title: "Underline"},
	{Command: "formatBlock", Value: "h2", Label: "H", Title: "Heading"},
	{Command: "insertUnorderedList", Label: "•", Title: "Bulleted list"},
	{Command: "insertOrderedList", Label: "1.", Title: "Numbered list"},
	{Command: "subscript", Label: "x₂", Title: "Subscript"},
	{Command: "superscript", Label: "x²", Title: "Superscript"},
	{Command: "undo", Label: "↶", Title: "Undo"},
	{Command: "redo", Label: "↷", Title: "Redo"},
}
