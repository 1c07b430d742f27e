package quiz

// timerTickMsg is sent once per second while a question is open. It carries
// the identity of the question it was scheduled against so ticks that
// outlive their question (answered, advanced, or session replaced) are
// dropped instead of expiring the wrong one.
type timerTickMsg struct {
	SessionID string
	Index     int
}

// feedbackDoneMsg dismisses the post-answer feedback overlay.
type feedbackDoneMsg struct{}
