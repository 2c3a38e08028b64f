package tuitest

import "time"

// Raw byte sequences a terminal sends for special keys.
var (
	KeyEnter     = []byte{'\r'}
	KeyCtrlC     = []byte{3}
	KeyEsc       = []byte{27}
	KeyBackspace = []byte{127}
	KeyUp        = []byte("\x1b[A")
	KeyDown      = []byte("\x1b[B")
)

// Press sends key after delay.
func Press(key []byte, delay time.Duration) Step {
	return Step{Delay: delay, Input: key}
}

// Type sends each rune of text as its own keystroke, pausing between them so
// the program sees separate key events.
func Type(text string, pause time.Duration) []Step {
	steps := make([]Step, 0, len(text))
	for _, r := range text {
		steps = append(steps, Step{Delay: pause, Input: []byte(string(r))})
	}
	return steps
}

// Repeat sends key n times.
func Repeat(key []byte, n int, pause time.Duration) []Step {
	steps := make([]Step, n)
	for i := range steps {
		steps[i] = Step{Delay: pause, Input: key}
	}
	return steps
}
