package lesson

import (
	"bytes"
	"encoding/json"
)

// Format is a requested output modality.
type Format string

const (
	FormatDiagram Format = "diagram"
	FormatAudio   Format = "audio"
	FormatVideo   Format = "video"
)

// AllFormats lists every format in declaration order. Request.Formats is
// always a subsequence of this slice.
var AllFormats = []Format{FormatDiagram, FormatAudio, FormatVideo}

// Difficulty is one of the difficulty selector's option values.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties returns the selector options in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// Request is the JSON body POSTed to the generate endpoint.
type Request struct {
	Topic      string   `json:"topic"`
	Difficulty string   `json:"difficulty"`
	Formats    []Format `json:"formats"`
}

// NewRequest builds a Request, keeping only the formats for which checked
// reports true. The result never has a nil Formats slice so it always
// serializes as a JSON array.
func NewRequest(topic, difficulty string, checked func(Format) bool) Request {
	formats := make([]Format, 0, len(AllFormats))
	for _, f := range AllFormats {
		if checked(f) {
			formats = append(formats, f)
		}
	}
	return Request{
		Topic:      topic,
		Difficulty: difficulty,
		Formats:    formats,
	}
}

// Result is the backend's response. Every field is optional; a nil field
// was absent from the JSON body.
type Result struct {
	Text     *string `json:"text,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	AudioURL *string `json:"audioUrl,omitempty"`

	// VideoURL is accepted but nothing renders it yet.
	VideoURL *string `json:"videoUrl,omitempty"`
}

// HasText reports whether the text fragment should be rendered.
func (r *Result) HasText() bool { return present(r.Text) }

// HasImage reports whether the image fragment should be rendered.
func (r *Result) HasImage() bool { return present(r.ImageURL) }

// HasAudio reports whether the audio fragment should be rendered.
func (r *Result) HasAudio() bool { return present(r.AudioURL) }

// HasVideo reports whether the response carried a video URL.
func (r *Result) HasVideo() bool { return present(r.VideoURL) }

// IsEmpty reports whether no renderable fragment is present.
func (r *Result) IsEmpty() bool {
	return !r.HasText() && !r.HasImage() && !r.HasAudio()
}

func present(s *string) bool {
	return s != nil && *s != ""
}

// UnmarshalJSON decodes each field on its own. A string is kept as is. Any
// other truthy value (true, a non-zero number, an object or array) is kept as
// its JSON text, and false, 0 and null leave the field nil. A body that is
// not an object decodes to an empty Result; null is a no-op.
func (r *Result) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		var v any
		if json.Unmarshal(data, &v) == nil {
			return nil
		}
		return err
	}

	r.Text = resultField(fields["text"])
	r.ImageURL = resultField(fields["imageUrl"])
	r.AudioURL = resultField(fields["audioUrl"])
	r.VideoURL = resultField(fields["videoUrl"])
	return nil
}

func resultField(raw json.RawMessage) *string {
	if raw == nil {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil || !truthy(v) {
		return nil
	}
	text := string(bytes.TrimSpace(raw))
	return &text
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}
