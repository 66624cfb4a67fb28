package exam

import "time"

// timerTickMsg is sent every second to advance the active countdown.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the feedback display is dismissed.
type feedbackDoneMsg struct{}
