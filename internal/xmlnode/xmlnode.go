// Package xmlnode holds the small set of tree operations the controller
// options use on the shared settings document.
package xmlnode

import (
	"errors"
	"strings"

	"github.com/beevik/etree"
)

// ErrMissing reports that a child element does not exist.
var ErrMissing = errors.New("element missing")

// ErrNotBool reports text that is not a boolean literal.
var ErrNotBool = errors.New("not a boolean")

// Child returns the first child element of parent named tag, or nil.
func Child(parent *etree.Element, tag string) *etree.Element {
	if parent == nil {
		return nil
	}
	return parent.SelectElement(tag)
}

// ChildText returns the text of the child element named tag.
func ChildText(parent *etree.Element, tag string) (string, error) {
	child := Child(parent, tag)
	if child == nil {
		return "", ErrMissing
	}
	return child.Text(), nil
}

// Replace swaps any existing child of parent named el.Tag for el. The
// replacement keeps the old child's position; without an existing child el is
// appended. Only the first matching child is replaced.
func Replace(parent, el *etree.Element) {
	if existing := Child(parent, el.Tag); existing != nil {
		index := existing.Index()
		parent.RemoveChild(existing)
		parent.InsertChildAt(index, el)
		return
	}
	parent.AddChild(el)
}

// AddText appends a child element named tag holding text.
func AddText(parent *etree.Element, tag, text string) *etree.Element {
	child := parent.CreateElement(tag)
	child.SetText(text)
	return child
}

// FormatBool renders b the way the settings files have always stored it.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// ParseBool accepts "true" or "false" in any letter case, ignoring
// surrounding whitespace.
func ParseBool(text string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, ErrNotBool
	}
}

// StripNamespaces removes default and prefixed namespace declarations from
// el and its descendants.
func StripNamespaces(el *etree.Element) {
	if el == nil {
		return
	}
	kept := el.Attr[:0]
	for _, attr := range el.Attr {
		if attr.Space == "xmlns" || (attr.Space == "" && attr.Key == "xmlns") {
			continue
		}
		kept = append(kept, attr)
	}
	el.Attr = kept
	el.Space = ""
	for _, child := range el.ChildElements() {
		StripNamespaces(child)
	}
}

// ParseFragment parses a single-element XML fragment and returns its root
// detached from the temporary document.
func ParseFragment(fragment string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(fragment); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrMissing
	}
	doc.RemoveChild(root)
	return root, nil
}

// OuterXML serializes el and its descendants without a prolog.
func OuterXML(el *etree.Element) (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	return doc.WriteToString()
}
