// Package input carries the player's single action from whatever device
// produced it to the game. Front ends call Trigger; the game attaches its
// handler through Attach and detaches it by closing the Subscription.
package input

// Handler reacts to one impulse.
type Handler func()

// Controls delivers impulses to at most one attached handler.
// It is driven from the front end's update goroutine and is not locked.
type Controls struct {
	sub *Subscription
}

// Subscription is a disposable attachment to Controls.
type Subscription struct {
	owner   *Controls
	handler Handler
}

// New creates detached controls.
func New() *Controls {
	return &Controls{}
}

// Attach registers h and returns a handle that detaches it.
// While a subscription is live, Attach returns that same handle and h is
// not registered. A nil handler is not attached but still gets a closable
// handle.
func (c *Controls) Attach(h Handler) *Subscription {
	if c.sub != nil {
		return c.sub
	}
	s := &Subscription{owner: c, handler: h}
	if h != nil {
		c.sub = s
	}
	return s
}

// Attached reports whether a handler is listening.
func (c *Controls) Attached() bool {
	return c.sub != nil
}

// Trigger delivers one impulse to the attached handler.
// It reports whether anyone was listening.
func (c *Controls) Trigger() bool {
	s := c.sub
	if s == nil || s.handler == nil {
		return false
	}
	s.handler()
	return true
}

// Close detaches the handler. Closing twice is a no-op.
func (s *Subscription) Close() {
	if s == nil || s.owner == nil {
		return
	}
	if s.owner.sub == s {
		s.owner.sub = nil
	}
	s.owner = nil
	s.handler = nil
}
