package generate

import "github.com/Raj-Mandhyan/EduGenie3/internal/lesson"

// lessonDoneMsg carries the outcome of the in-flight lesson request.
type lessonDoneMsg struct {
	Result *lesson.Result
	Err    error
}
