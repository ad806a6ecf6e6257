package generate

import (
	"github.com/Raj-Mandhyan/EduGenie3/internal/controller"
	"github.com/Raj-Mandhyan/EduGenie3/internal/lesson"
)

type fragmentKind int

const (
	fragmentText fragmentKind = iota
	fragmentImage
	fragmentAudio
	fragmentError
)

// fragment is one element of the results region.
type fragment struct {
	kind     fragmentKind
	content  string // text, source URL, or error message
	alt      string
	controls bool
}

var _ controller.Port = (*Screen)(nil)

func (s *Screen) Topic() string {
	return s.topic.Value()
}

func (s *Screen) Difficulty() string {
	return s.difficulty.Value()
}

func (s *Screen) FormatChecked(f lesson.Format) bool {
	for i, lf := range lesson.AllFormats {
		if lf == f {
			return s.formats[i].Checked
		}
	}
	return false
}

func (s *Screen) SetBusy(busy bool) {
	s.busy = busy
}

func (s *Screen) SetSubmitEnabled(enabled bool) {
	s.submit.Enabled = enabled
}

func (s *Screen) ClearResults() {
	s.results = nil
}

func (s *Screen) AppendText(text string) {
	s.results = append(s.results, fragment{kind: fragmentText, content: text})
}

func (s *Screen) AppendImage(src, alt string) {
	s.results = append(s.results, fragment{kind: fragmentImage, content: src, alt: alt})
}

func (s *Screen) AppendAudio(src string, controls bool) {
	s.results = append(s.results, fragment{kind: fragmentAudio, content: src, controls: controls})
}

func (s *Screen) ShowError(message string) {
	s.results = append(s.results, fragment{kind: fragmentError, content: message})
}
