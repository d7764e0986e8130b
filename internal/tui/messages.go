package tui

// clearNoticeMsg clears the notice with the given sequence number. Newer
// notices bump the sequence so a stale timer leaves them alone.
type clearNoticeMsg struct {
	seq int
}
