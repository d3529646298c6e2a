package tui

import "time"

type loadedMsg struct {
	err error
}

// refreshedMsg reports a finished refresh; auto is set when the scheduler ran it.
type refreshedMsg struct {
	err  error
	auto bool
}

type summariesDoneMsg struct{}

type translatedMsg struct {
	articleID string
	err       error
}

type translateAllMsg struct {
	count int
	err   error
}

type browserErrMsg struct {
	err error
}

type clockMsg time.Time
