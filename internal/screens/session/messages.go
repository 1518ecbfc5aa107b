package session

// feedbackDoneMsg is sent when the answer feedback display period ends.
type feedbackDoneMsg struct{}

// speechDoneMsg is sent when a pronunciation request finishes.
type speechDoneMsg struct {
	Err error
}
