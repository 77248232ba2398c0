package deviceopts_test

import (
	"testing"

	"github.com/beevik/etree"
)

// newControllerRoot returns a document with an empty <ControllerOptions>
// element to persist into.
func newControllerRoot() (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	root := doc.CreateElement("Profile")
	node := root.CreateElement("ControllerOptions")
	return doc, node
}

// parseControllerRoot parses xml and returns its root element.
func parseControllerRoot(t *testing.T, xml string) (*etree.Document, *etree.Element) {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc, doc.Root()
}

func writeDoc(t *testing.T, doc *etree.Document) string {
	t.Helper()
	out, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("serialize document: %v", err)
	}
	return out
}
