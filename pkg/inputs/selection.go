package inputs

import (
	"slices"

	"github.com/BigRLab/thedom/pkg/dictutil"
	"github.com/BigRLab/thedom/pkg/node"
)

// Signals emitted by options and selects.
const (
	SignalSelected         = "selected"
	SignalUnselected       = "unselected"
	SignalSelectionChanged = "selectionChanged"
)

// Option is one <option> of a select.
type Option struct {
	node.ValueElement
	selected bool
	text     *node.TextNode
}

var optionProperties = node.ValueProperties().
	Call("select", func(n node.Node) { n.(*Option).Select() }).
	Flag("selected", func(n node.Node, v bool) { n.(*Option).SetSelected(v) }).
	Text("text", func(n node.Node, v string) { n.(*Option).SetText(v) })

// NewOption creates an unselected option with empty text.
func NewOption(id, name string) *Option {
	o := &Option{text: node.NewTextNode("")}
	o.InitValue(o, "option", id, name)
	o.Declare(SignalSelected, SignalUnselected)
	o.UseProperties(optionProperties)
	_ = o.AddChild(o.text)
	return o
}

// Selected reports whether the option is selected.
func (o *Option) Selected() bool { return o.selected }

// SetSelected selects or unselects the option.
func (o *Option) SetSelected(selected bool) {
	if selected {
		o.Select()
	} else {
		o.Unselect()
	}
}

// Select marks the option selected and emits selected.
func (o *Option) Select() {
	o.selected = true
	o.SetAttribute("selected", "selected")
	o.Emit(SignalSelected)
}

// Unselect clears the selection and emits unselected.
func (o *Option) Unselect() {
	o.selected = false
	o.SetAttribute("selected", nil)
	o.Emit(SignalUnselected)
}

// Text returns the displayed text.
func (o *Option) Text() string { return o.text.Text() }

// SetText replaces the displayed text.
func (o *Option) SetText(text string) { o.text.SetText(text) }

// OptionPair is a value/text pair for Select.AddOptions.
type OptionPair struct {
	Value string
	Text  string
}

// Select lets the user choose one of its options.
type Select struct {
	node.ValueElement
	valued node.Valued
}

var selectProperties = node.ValueProperties().
	Attribute("multiple", nil)

// NewSelect creates an empty <select>.
func NewSelect(id, name string) *Select {
	s := &Select{}
	s.initSelect(s, id, name)
	return s
}

func (s *Select) initSelect(self node.Valued, id, name string) {
	s.InitValue(self, "select", id, name)
	s.valued = self
	s.Declare(SignalSelectionChanged)
	s.RemoveAttribute("value")
	s.UseProperties(selectProperties)
	s.On(node.SignalBeforeToHTML, func(...any) {
		if !s.Editable() {
			s.SetAttribute("disabled", "disabled")
		}
	})
}

// AddOption appends an option showing text and submitting value. An empty
// value submits the text.
func (s *Select) AddOption(text, value string) *Option {
	if value == "" {
		value = text
	}
	o := NewOption("", "")
	o.SetValue(value)
	o.SetText(text)
	o.On(SignalSelected, func(...any) { s.Emit(SignalSelectionChanged) })
	_ = s.AddChild(o)
	return o
}

// AddOptions appends options whose value equals their text.
func (s *Select) AddOptions(texts ...string) {
	for _, t := range texts {
		s.AddOption(t, "")
	}
}

// AddOptionPairs appends options in order.
func (s *Select) AddOptionPairs(pairs ...OptionPair) {
	for _, p := range pairs {
		s.AddOption(p.Text, p.Value)
	}
}

// Options returns the option children.
func (s *Select) Options() []*Option {
	var out []*Option
	for _, c := range s.Children() {
		if o, ok := c.(*Option); ok {
			out = append(out, o)
		}
	}
	return out
}

// OptionTexts maps each option value to its text.
func (s *Select) OptionTexts() map[string]string {
	out := make(map[string]string)
	for _, o := range s.Options() {
		out[node.Stringify(o.Value())] = o.Text()
	}
	return out
}

// Selected returns the first selected option, or nil.
func (s *Select) Selected() *Option {
	for _, o := range s.Options() {
		if o.Selected() {
			return o
		}
	}
	return nil
}

func (o *Option) matches(value string) bool {
	return o.FullID() == value || node.Stringify(o.Value()) == value || o.Text() == value
}

// SetValue selects every option whose full id, value or text equals value
// and unselects the rest.
func (s *Select) SetValue(value any) {
	str := node.Stringify(value)
	for _, o := range s.Options() {
		o.SetSelected(str != "" && o.matches(str))
	}
	s.ValueElement.SetValue(s.valued.Value())
}

// Value returns the selected option's value, or the first option's when
// nothing is selected.
func (s *Select) Value() any {
	if o := s.Selected(); o != nil {
		return o.Value()
	}
	if opts := s.Options(); len(opts) > 0 {
		return opts[0].Value()
	}
	return nil
}

// MultiSelect allows several options to be selected.
type MultiSelect struct {
	Select
}

// NewMultiSelect creates a <select multiple>.
func NewMultiSelect(id, name string) *MultiSelect {
	m := &MultiSelect{}
	m.initSelect(m, id, name)
	m.SetAttribute("multiple", "multiple")
	return m
}

// SelectedOptions returns every selected option.
func (m *MultiSelect) SelectedOptions() []*Option {
	var out []*Option
	for _, o := range m.Options() {
		if o.Selected() {
			out = append(out, o)
		}
	}
	return out
}

// Value returns the values of the selected options.
func (m *MultiSelect) Value() any {
	values := []any{}
	for _, o := range m.SelectedOptions() {
		values = append(values, o.Value())
	}
	return values
}

// SetValue selects the options matching any of the given values. A single
// string selects one.
func (m *MultiSelect) SetValue(value any) {
	var wanted []string
	switch v := value.(type) {
	case []string:
		wanted = v
	case []any:
		for _, item := range v {
			wanted = append(wanted, node.Stringify(item))
		}
	default:
		wanted = []string{node.Stringify(v)}
	}
	for _, o := range m.Options() {
		o.SetSelected(slices.ContainsFunc(wanted, o.matches))
	}
	m.ValueElement.SetValue(m.Value())
}

// InsertVariables takes the whole list addressed to the select.
func (m *MultiSelect) InsertVariables(vars map[string]any) {
	var value any
	if k := m.Key(); k != "" {
		value = dictutil.GetNested(vars, k, nil)
	}
	for _, k := range []string{m.FullID(), m.ID(), m.FullName()} {
		if value != nil || k == "" {
			continue
		}
		value = vars[k]
	}
	if value != nil {
		m.SetValue(value)
	}
	m.RemoveFromRequest(vars)
}
