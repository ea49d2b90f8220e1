package node

// Script is client side code collected by a ScriptContainer.
// Scripts with equal keys are considered the same script.
type Script interface {
	ScriptKey() string
	Source() string
}

// JS is literal script text.
type JS string

func (s JS) ScriptKey() string { return string(s) }
func (s JS) Source() string    { return string(s) }

// Callback produces script text at render time.
type Callback struct {
	Key string
	Fn  func() string
}

func (c Callback) ScriptKey() string { return c.Key }
func (c Callback) Source() string    { return c.Fn() }

// ScriptContainer collects scripts for a whole tree.
type ScriptContainer interface {
	AddScript(Script)
	RemoveScript(Script)
}

// ScriptContainer returns the container set on the root of the tree.
func (e *Element) ScriptContainer() ScriptContainer {
	if e.parent != nil {
		return e.parent.Base().ScriptContainer()
	}
	return e.scriptContainer
}

// SetScriptContainer sets the container on the root of the tree and flushes
// scripts queued before a container existed.
func (e *Element) SetScriptContainer(c ScriptContainer) {
	if e.parent != nil {
		e.parent.Base().SetScriptContainer(c)
		return
	}
	e.scriptContainer = c
	if c == nil {
		return
	}
	pending := e.pendingScripts
	e.pendingScripts = nil
	for _, s := range pending {
		c.AddScript(s)
	}
}

// AddScript routes s to the tree's container. Without one, s is queued on the
// root (once per key) until the root is attached or a container is set.
func (e *Element) AddScript(s Script) {
	if c := e.ScriptContainer(); c != nil {
		c.AddScript(s)
		return
	}
	if e.parent != nil {
		e.parent.Base().AddScript(s)
		return
	}
	for _, queued := range e.pendingScripts {
		if queued.ScriptKey() == s.ScriptKey() {
			return
		}
	}
	e.pendingScripts = append(e.pendingScripts, s)
}

// RemoveScript removes s from the container or the root queue.
func (e *Element) RemoveScript(s Script) {
	if c := e.ScriptContainer(); c != nil {
		c.RemoveScript(s)
		return
	}
	if e.parent != nil {
		e.parent.Base().RemoveScript(s)
		return
	}
	for i, queued := range e.pendingScripts {
		if queued.ScriptKey() == s.ScriptKey() {
			e.pendingScripts = append(e.pendingScripts[:i], e.pendingScripts[i+1:]...)
			return
		}
	}
}

// PendingScripts returns scripts queued on this element.
func (e *Element) PendingScripts() []Script { return e.pendingScripts }
