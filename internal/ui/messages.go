package ui

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// statusClearMsg clears a transient status message
type statusClearMsg struct {
	seq int
}
