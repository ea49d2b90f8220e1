// Package clientside builds small JavaScript snippets for event handlers.
// String arguments are encoded as JSON literals, so quotes in user text
// cannot break out of the generated code.
package clientside

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Literal encodes v as a JavaScript literal. Values JSON cannot encode
// become null.
func Literal(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}

// Confirm runs action only if the user accepts message.
func Confirm(message, action string) string {
	return fmt.Sprintf("if(window.confirm(%s)){%s}", Literal(message), action)
}

// CallOpener runs call on the window that opened this one, ignoring errors.
func CallOpener(call string) string {
	return fmt.Sprintf("if(opener && !opener.closed){try{opener.%s;}catch(err){}}", call)
}

// UpdateParent tells the opener window it was updated from a child.
func UpdateParent() string {
	return CallOpener("updatedFromChild()")
}

// UpdateMultiple refreshes several controls at once.
func UpdateMultiple(controls ...string) string {
	switch len(controls) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("ajaxUpdate(%s);", Literal(controls[0]))
	default:
		return fmt.Sprintf("ajaxUpdate(%s);", Literal(controls))
	}
}

// Focus moves focus to the element, optionally selecting its text.
func Focus(id string, selectText bool) string {
	if !selectText {
		return fmt.Sprintf("JUGetElement(%s).focus();", Literal(id))
	}
	return fmt.Sprintf("var inputElement = JUGetElement(%s);inputElement.focus();inputElement.select();", Literal(id))
}

// Popup configures OpenPopup.
type Popup struct {
	// URL to open. Empty opens the href of the clicked element.
	URL            string
	Width          int
	Height         int
	Normal         bool
	SeparateWindow bool
	// Name of the target window; defaults to _blank.
	Name string
}

// OpenPopup opens a popup window. Zero sizes default to 700.
func OpenPopup(p Popup) string {
	url := "this.href"
	if p.URL != "" {
		url = Literal(p.URL)
	}
	if p.Width == 0 {
		p.Width = 700
	}
	if p.Height == 0 {
		p.Height = 700
	}
	if p.Name == "" {
		p.Name = "_blank"
	}
	return fmt.Sprintf("Popup.open({url:%s, height:%d, width:%d, normal:%t, separateWindow:%t, name:%s});",
		url, p.Height, p.Width, p.Normal, p.SeparateWindow, Literal(p.Name))
}

// SetValue assigns value to the element's value property.
func SetValue(id string, value any) string {
	return fmt.Sprintf("JUGetElement(%s).value = %s;", Literal(id), Literal(value))
}

// Redirect sends the page to url.
func Redirect(url string) string {
	return fmt.Sprintf("window.location = %s;", Literal(url))
}

// ShowIfSelected shows the element while option is the selected value and
// hides it otherwise.
func ShowIfSelected(option, id string) string {
	target := Literal(id)
	return fmt.Sprintf("if(this.value == %s){JUShowElement(%s);}else{JUHideElement(%s);}",
		Literal(option), target, target)
}

// ShowIfChecked enables the element while the checkbox is checked.
func ShowIfChecked(id string) string {
	target := Literal(id)
	return fmt.Sprintf("if(this.checked){JUGetElement(%s).disabled = '';}else{JUGetElement(%s).disabled = 'true';}",
		target, target)
}

// Join concatenates statements, adding a trailing semicolon where missing.
func Join(statements ...string) string {
	var sb strings.Builder
	for _, s := range statements {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		sb.WriteString(s)
		if !strings.HasSuffix(s, ";") && !strings.HasSuffix(s, "}") {
			sb.WriteString(";")
		}
	}
	return sb.String()
}
