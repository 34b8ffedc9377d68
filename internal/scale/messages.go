package scale

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

// Controllers tag their timer messages with an instance id plus a
// generation tag. A message whose tag no longer matches the controller's
// current generation is stale and dropped; that is the whole cancellation
// story, there are no shared timers to stop.
type (
	// attachMsg drives the bounded initial-positioning retry loop,
	// one attempt per frame.
	attachMsg struct {
		id int64
	}

	// settleMsg fires when the debounce quiet period elapses
	settleMsg struct {
		id  int64
		tag int
	}

	// frameMsg paces one animation step
	frameMsg struct {
		id  int64
		tag int
	}
)

var lastControllerID atomic.Int64

func nextControllerID() int64 {
	return lastControllerID.Add(1)
}

func (c *Controller) attachCmd() tea.Cmd {
	id := c.id
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return attachMsg{id: id}
	})
}

func (c *Controller) settleCmd(tag int) tea.Cmd {
	id := c.id
	return tea.Tick(DebounceDelay, func(time.Time) tea.Msg {
		return settleMsg{id: id, tag: tag}
	})
}

func (c *Controller) frameCmd(tag int) tea.Cmd {
	id := c.id
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id, tag: tag}
	})
}
