// Package visibility owns the reversible toggle for the statistics panel.
package visibility

import "dashd/internal/state"

// Notification is handed to the presenter when the panel is hidden. Undo
// restores the setting to its value before the hide; how long the undo
// stays offered is the presenter's policy, not ours.
type Notification struct {
	Message string
	Undo    func()
}

type Notifier interface {
	Notify(Notification)
}

type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Controller flips Settings.ShowProgressBar through the shared state store.
// It holds no lock of its own: the store's atomic whole-snapshot replacement
// keeps readers consistent.
type Controller struct {
	store    *state.Store
	notifier Notifier
}

func NewController(store *state.Store, notifier Notifier) *Controller {
	return &Controller{store: store, notifier: notifier}
}

// Hide turns the statistics panel off and fires a notification carrying an
// undo action that restores the prior value exactly.
func (c *Controller) Hide() {
	prior := c.set(false)
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(Notification{
		Message: "Progress panel hidden. You can turn it back on anytime.",
		Undo: func() {
			c.set(prior)
		},
	})
}

// Show turns the statistics panel on. Reachable from direct user action and
// as the undo of the most recent Hide.
func (c *Controller) Show() {
	c.set(true)
}

func (c *Controller) set(value bool) (prior bool) {
	c.store.Apply(func(s state.Snapshot) state.Snapshot {
		prior = s.Settings.ShowProgressBar
		s.Settings.ShowProgressBar = value
		return s
	})
	return prior
}
