package controller

import "github.com/Raj-Mandhyan/EduGenie3/internal/lesson"

// Port is the controller's view of the form and its results region.
// Implementations own rendering; the controller only decides what to show.
type Port interface {
	// Topic returns the topic field's current text, untrimmed.
	Topic() string

	// Difficulty returns the selected difficulty option value.
	Difficulty() string

	// FormatChecked reports whether the checkbox for f is checked.
	FormatChecked(f lesson.Format) bool

	// SetBusy shows or hides the busy indicator.
	SetBusy(busy bool)

	// SetSubmitEnabled enables or disables the submit control.
	SetSubmitEnabled(enabled bool)

	// ClearResults empties the results region.
	ClearResults()

	// AppendText adds a plain-text paragraph. text is never interpreted
	// as markup.
	AppendText(text string)

	// AppendImage adds an image with the given source and alt text.
	AppendImage(src, alt string)

	// AppendAudio adds an audio player for src.
	AppendAudio(src string, controls bool)

	// ShowError adds a visually distinct alert message.
	ShowError(message string)
}
