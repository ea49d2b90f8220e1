// Package resources renders the scripts and static files a page depends on.
package resources

import (
	"path"
	"strings"

	"github.com/BigRLab/thedom/pkg/node"
	"github.com/BigRLab/thedom/pkg/settings"
)

// ScriptContainer collects the scripts of a tree and renders them inside a
// single script tag. It renders nothing while empty.
type ScriptContainer struct {
	node.Element
	scripts []node.Script
}

// NewScriptContainer creates an empty container.
func NewScriptContainer(id, name string) *ScriptContainer {
	s := &ScriptContainer{}
	s.Init(s, "script", id, name)
	s.SetAllowsChildren(false)
	s.SetAttribute("type", "text/javascript")
	return s
}

// AddScript appends script unless one with the same key is already held.
func (s *ScriptContainer) AddScript(script node.Script) {
	for _, held := range s.scripts {
		if held.ScriptKey() == script.ScriptKey() {
			return
		}
	}
	s.scripts = append(s.scripts, script)
}

// RemoveScript drops the script with the same key.
func (s *ScriptContainer) RemoveScript(script node.Script) {
	for i, held := range s.scripts {
		if held.ScriptKey() == script.ScriptKey() {
			s.scripts = append(s.scripts[:i], s.scripts[i+1:]...)
			return
		}
	}
}

// Scripts returns the held scripts in insertion order.
func (s *ScriptContainer) Scripts() []node.Script { return s.scripts }

// Content joins the script sources, one per line.
func (s *ScriptContainer) Content(bool) string {
	sources := make([]string, 0, len(s.scripts))
	for _, script := range s.scripts {
		if src := strings.TrimSpace(script.Source()); src != "" {
			sources = append(sources, src)
		}
	}
	return strings.Join(sources, "\n")
}

// ToHTML renders the script tag, or "" when there is nothing to run.
func (s *ScriptContainer) ToHTML(formatted bool) string {
	if len(s.scripts) == 0 {
		return ""
	}
	return s.Element.ToHTML(formatted)
}

// Shown is false; scripts are never displayed.
func (s *ScriptContainer) Shown() bool { return false }

// ResourceFile links a stylesheet or script by file extension. Other
// extensions render nothing.
type ResourceFile struct {
	node.Element
	settings settings.Settings
	file     string
}

var resourceProperties = node.BaseProperties().
	Text("file", func(n node.Node, v string) { n.(*ResourceFile).SetFile(v) }).
	Attribute("media", nil)

// NewResourceFile creates an empty resource using the default settings.
func NewResourceFile(id, name string) *ResourceFile {
	return newResourceFile(settings.Default(), id, name)
}

func newResourceFile(s settings.Settings, id, name string) *ResourceFile {
	r := &ResourceFile{settings: s}
	r.Init(r, "", id, name)
	r.SetAllowsChildren(false)
	r.UseProperties(resourceProperties)
	return r
}

// File returns the path as given, without the static prefix.
func (r *ResourceFile) File() string { return r.file }

// ResourceType returns "css", "javascript" or "" when unsupported.
func (r *ResourceFile) ResourceType() string {
	switch strings.ToLower(path.Ext(r.file)) {
	case ".css":
		return "css"
	case ".js":
		return "javascript"
	default:
		return ""
	}
}

// SetFile points the resource at file, prefixed by the static URL, and picks
// the tag from its extension.
func (r *ResourceFile) SetFile(file string) {
	r.file = file
	url := r.settings.Static(file)
	r.RemoveAttribute("href")
	r.RemoveAttribute("src")
	r.RemoveAttribute("rel")
	r.RemoveAttribute("type")
	switch r.ResourceType() {
	case "css":
		r.SetTagName("link")
		r.SetSelfCloses(true)
		r.SetAttribute("rel", "stylesheet")
		r.SetAttribute("type", "text/css")
		r.SetAttribute("href", url)
	case "javascript":
		r.SetTagName("script")
		r.SetSelfCloses(false)
		r.SetAttribute("type", "text/javascript")
		r.SetAttribute("src", url)
	default:
		r.SetTagName("")
		r.SetSelfCloses(false)
	}
}

// Shown is false; resources are never displayed.
func (r *ResourceFile) Shown() bool { return false }
