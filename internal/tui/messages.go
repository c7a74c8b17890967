package tui

// Message types for Bubble Tea update loop.

// fireMsg is delivered when a scheduled tick comes due. Owner routes it to the
// panel whose scheduler armed it.
type fireMsg struct {
	Owner string
	Seq   uint64
}
