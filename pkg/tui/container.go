// ABOUTME: Container is an ordered collection of child Components
// ABOUTME: Propagates window attach/detach to Attacher children; RWMutex guards render vs mutation

package tui

import "sync"

// Container holds an ordered list of child components.
// It is safe for concurrent access: mutations acquire a write lock,
// rendering acquires a read lock.
type Container struct {
	mu       sync.RWMutex
	children []Component
	window   Window
}

// NewContainer creates an empty Container.
func NewContainer() *Container {
	return &Container{}
}

// Add appends a component to the container. If the container is attached,
// the component is attached to the same window.
func (c *Container) Add(comp Component) {
	c.mu.Lock()
	c.children = append(c.children, comp)
	w := c.window
	c.mu.Unlock()

	if a, ok := comp.(Attacher); ok && w != nil {
		a.AttachWindow(w)
	}
}

// Remove removes a component from the container, detaching it.
// Returns true if the component was found and removed.
func (c *Container) Remove(comp Component) bool {
	c.mu.Lock()
	found := false
	for i, child := range c.children {
		if child == comp {
			c.children = append(c.children[:i], c.children[i+1:]...)
			found = true
			break
		}
	}
	attached := c.window != nil
	c.mu.Unlock()

	if a, ok := comp.(Attacher); ok && found && attached {
		a.DetachWindow()
	}
	return found
}

// Clear removes and detaches all children.
func (c *Container) Clear() {
	c.mu.Lock()
	removed := c.children
	c.children = nil
	attached := c.window != nil
	c.mu.Unlock()

	if !attached {
		return
	}
	for _, child := range removed {
		if a, ok := child.(Attacher); ok {
			a.DetachWindow()
		}
	}
}

// Children returns a snapshot of the current children.
func (c *Container) Children() []Component {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Component, len(c.children))
	copy(out, c.children)
	return out
}

// Render renders all children sequentially into the buffer.
func (c *Container) Render(out *RenderBuffer, width int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, child := range c.children {
		child.Render(out, width)
	}
}

// Invalidate invalidates all children.
func (c *Container) Invalidate() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, child := range c.children {
		child.Invalidate()
	}
}

// AttachWindow attaches the container and every Attacher child to w.
func (c *Container) AttachWindow(w Window) {
	c.mu.Lock()
	c.window = w
	children := make([]Component, len(c.children))
	copy(children, c.children)
	c.mu.Unlock()

	for _, child := range children {
		if a, ok := child.(Attacher); ok {
			a.AttachWindow(w)
		}
	}
}

// DetachWindow detaches the container and every Attacher child.
func (c *Container) DetachWindow() {
	c.mu.Lock()
	if c.window == nil {
		c.mu.Unlock()
		return
	}
	c.window = nil
	children := make([]Component, len(c.children))
	copy(children, c.children)
	c.mu.Unlock()

	for _, child := range children {
		if a, ok := child.(Attacher); ok {
			a.DetachWindow()
		}
	}
}
