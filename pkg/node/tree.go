package node

// Parent returns the node this element is attached to, or nil.
func (e *Element) Parent() Node { return e.parent }

// Root returns the topmost ancestor, or the element itself.
func (e *Element) Root() Node {
	var n Node = e.node()
	for n.Base().parent != nil {
		n = n.Base().parent
	}
	return n
}

// SetChildTarget redirects AddChild to another node, typically an inner
// container of a composite widget. nil restores the element itself.
func (e *Element) SetChildTarget(n Node) { e.childTarget = n }

// ChildTarget returns the node AddChild appends to.
func (e *Element) ChildTarget() Node {
	if e.childTarget != nil {
		return e.childTarget
	}
	return e.node()
}

// Children returns the direct children in render order.
func (e *Element) Children() []Node { return e.children }

// Count returns the number of direct children.
func (e *Element) Count() int { return len(e.children) }

// ChildAt returns the child at index, or nil when out of range.
func (e *Element) ChildAt(index int) Node {
	if index < 0 || index >= len(e.children) {
		return nil
	}
	return e.children[index]
}

// Contains reports whether n is a direct child.
func (e *Element) Contains(n Node) bool {
	return e.indexOf(n) >= 0
}

func (e *Element) indexOf(n Node) int {
	if n == nil {
		return -1
	}
	target := n.Base()
	for i, c := range e.children {
		if c.Base() == target {
			return i
		}
	}
	return -1
}

// AddChild appends child to the child target, detaching it from any
// previous parent first. Scripts queued on the child move up to this tree.
func (e *Element) AddChild(child Node) error {
	target := e.ChildTarget()
	return target.Base().insert(len(target.Base().children), child)
}

// AddChildren appends several children, stopping at the first error.
func (e *Element) AddChildren(children ...Node) error {
	for _, c := range children {
		if err := e.node().AddChild(c); err != nil {
			return err
		}
	}
	return nil
}

// InsertChild places child at index within the child target.
func (e *Element) InsertChild(index int, child Node) error {
	return e.ChildTarget().Base().insert(index, child)
}

func (e *Element) insert(index int, child Node) error {
	if child == nil {
		return ErrNilNode
	}
	if e.childless {
		return ErrChildrenNotAllowed
	}
	cb := child.Base()
	for n := Node(e.node()); n != nil; n = n.Base().parent {
		if n.Base() == cb {
			return ErrCycle
		}
	}
	if cb.parent != nil {
		old := cb.parent.Base()
		if old == e {
			if i := e.indexOf(child); i >= 0 && i < index {
				index--
			}
		}
		old.RemoveChild(child)
	}
	if index < 0 {
		index = 0
	}
	if index > len(e.children) {
		index = len(e.children)
	}
	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = child
	cb.parent = e.node()

	e.Emit(SignalChildAdded, child)

	if pending := cb.pendingScripts; len(pending) > 0 {
		cb.pendingScripts = nil
		for _, s := range pending {
			e.AddScript(s)
		}
	}
	return nil
}

// RemoveChild detaches child. It reports whether child was a direct child.
func (e *Element) RemoveChild(child Node) bool {
	i := e.indexOf(child)
	if i < 0 {
		return false
	}
	e.children = append(e.children[:i], e.children[i+1:]...)
	child.Base().parent = nil
	return true
}

// Remove detaches the element from its parent.
func (e *Element) Remove() bool {
	if e.parent == nil {
		return false
	}
	return e.parent.Base().RemoveChild(e.node())
}

// ReplaceWith puts replacement at this element's position and detaches the
// element. Without a parent it returns an Invalid placeholder and ErrNoParent.
func (e *Element) ReplaceWith(replacement Node) (Node, error) {
	if replacement == nil {
		return nil, ErrNilNode
	}
	if e.parent == nil {
		return NewInvalid(), ErrNoParent
	}
	parent := e.parent.Base()
	rb := replacement.Base()
	if rb == e {
		return replacement, nil
	}
	for n := e.parent; n != nil; n = n.Base().parent {
		if n.Base() == rb {
			return nil, ErrCycle
		}
	}
	if rp := replacement.Base().parent; rp != nil {
		rp.Base().RemoveChild(replacement)
	}
	index := parent.indexOf(e.node())
	parent.children[index] = replacement
	replacement.Base().parent = e.parent
	e.parent = nil
	return replacement, nil
}

// MoveChild moves child directly after another child. A nil after moves it first.
func (e *Element) MoveChild(child, after Node) error {
	if !e.Contains(child) {
		return ErrNotChild
	}
	if after != nil && !e.Contains(after) {
		return ErrNotChild
	}
	i := e.indexOf(child)
	e.children = append(e.children[:i], e.children[i+1:]...)
	index := 0
	if after != nil {
		index = e.indexOf(after) + 1
	}
	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = child
	return nil
}

// Reset detaches every child.
func (e *Element) Reset() {
	for _, c := range e.children {
		c.Base().parent = nil
	}
	e.children = nil
}

// IndentationLevel returns the number of ancestors.
func (e *Element) IndentationLevel() int {
	if e.parent == nil {
		return 0
	}
	return e.parent.Base().IndentationLevel() + 1
}

// AllChildren returns every descendant in depth-first pre-order.
func (e *Element) AllChildren() []Node {
	var out []Node
	for _, c := range e.children {
		out = append(out, c)
		out = append(out, c.Base().AllChildren()...)
	}
	return out
}

// Query returns every descendant matching pred.
func (e *Element) Query(pred func(Node) bool) []Node {
	var out []Node
	for _, c := range e.AllChildren() {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

// ChildrenWithClass returns descendants carrying class.
func (e *Element) ChildrenWithClass(class string) []Node {
	return e.Query(func(n Node) bool { return n.Base().HasClass(class) })
}

// ChildrenWithName returns descendants named name.
func (e *Element) ChildrenWithName(name string) []Node {
	return e.Query(func(n Node) bool { return n.Base().name == name })
}

// ChildrenWithTagName returns descendants rendered as tag.
func (e *Element) ChildrenWithTagName(tag string) []Node {
	return e.Query(func(n Node) bool { return n.Base().tagName == tag })
}

// ChildWithID returns the first descendant with the given id, or nil.
func (e *Element) ChildWithID(id string) Node {
	for _, c := range e.children {
		if c.Base().id == id {
			return c
		}
		if found := c.Base().ChildWithID(id); found != nil {
			return found
		}
	}
	return nil
}
