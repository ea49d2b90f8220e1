package node

// InsertVariables passes vars to every child. Value elements override it to
// consume their own entry.
func (e *Element) InsertVariables(vars map[string]any) {
	for _, c := range e.children {
		c.InsertVariables(vars)
	}
}

// ExportVariables collects the values of every value element in the subtree into out.
func (e *Element) ExportVariables(out map[string]any, flat bool) {
	for _, c := range e.children {
		c.ExportVariables(out, flat)
	}
}

// Export is a convenience wrapper returning a fresh dictionary.
func Export(n Node, flat bool) map[string]any {
	out := make(map[string]any)
	n.ExportVariables(out, flat)
	return out
}

// ClearFromRequest deletes the entries of vars addressing this element or
// any descendant by id, full id, name or full name.
func (e *Element) ClearFromRequest(vars map[string]any) {
	if e.id != "" {
		delete(vars, e.id)
		delete(vars, e.FullID())
	}
	if e.name != "" {
		delete(vars, e.name)
		delete(vars, e.FullName())
	}
	for _, c := range e.children {
		c.Base().ClearFromRequest(vars)
	}
}

// Validators returns the validator of every editable element in the subtree,
// keyed by full id (or id), falling back to full name (or name).
func (e *Element) Validators(useFullID bool) map[string]string {
	out := make(map[string]string)
	e.collectValidators(out, useFullID)
	return out
}

func (e *Element) collectValidators(out map[string]string, useFullID bool) {
	if e.validator != "" && e.Editable() {
		key := e.id
		if useFullID {
			key = e.FullID()
		}
		if key == "" && e.name != "" {
			key = e.name
			if useFullID {
				key = e.FullName()
			}
		}
		out[key] = e.validator
	}
	for _, c := range e.children {
		if v, ok := c.(interface {
			Validators(bool) map[string]string
		}); ok {
			for k, val := range v.Validators(useFullID) {
				out[k] = val
			}
			continue
		}
		c.Base().collectValidators(out, useFullID)
	}
}
