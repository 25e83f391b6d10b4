package tui

// TeardownMsg tells the screen that the host is about to destroy it. The
// screen quits and reports [ExitTeardown] so the host saves its snapshot.
type TeardownMsg struct{}

type clearStatusMsg struct {
	seq int
}
