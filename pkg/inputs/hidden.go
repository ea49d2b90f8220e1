package inputs

import "github.com/BigRLab/thedom/pkg/node"

// HiddenValue is an <input type="hidden"> carrying a value through a form.
type HiddenValue struct {
	InputElement
}

// NewHiddenValue creates an empty hidden input.
func NewHiddenValue(id, name string) *HiddenValue {
	h := &HiddenValue{}
	h.InitInput(h, id, name)
	h.SetAttribute("type", "hidden")
	return h
}

// Shown is always false.
func (h *HiddenValue) Shown() bool { return false }

var _ node.Valued = (*HiddenValue)(nil)
