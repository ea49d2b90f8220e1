// Package node implements the element tree every widget is built on.
//
// An Element models one markup tag: identity (id, name and an inherited
// prefix), lazily allocated class/style/attribute containers, an ordered list
// of children, lifecycle signals and a declarative property table. Widgets
// embed Element and register themselves with Init so that tree operations
// dispatch to their overrides:
//
//	type Badge struct {
//	    node.Element
//	}
//
//	func NewBadge(id string) *Badge {
//	    b := &Badge{}
//	    b.Init(b, "span", id, "")
//	    b.AddClass("badge")
//	    return b
//	}
//
// Rendering walks the tree and produces markup with StartTag, Content and
// EndTag; ToHTML(true) produces one line per tag with nested content indented.
//
// Request binding moves values between a request dictionary and the value
// elements of a tree: InsertVariables consumes values by key, full id, id,
// full name and name; ExportVariables collects them back, either flat (keyed
// by name or id) or nested (keyed by the element's dot path key).
package node
