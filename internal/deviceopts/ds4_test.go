package deviceopts_test

import (
	"strings"
	"testing"

	"padhost/internal/deviceopts"
	"padhost/internal/notify"
)

func TestDS4RoundTrip(t *testing.T) {
	doc, node := newControllerRoot()
	src := deviceopts.NewDS4ControllerOptions(deviceopts.DS4, nil)
	if src.IsCopyCat() {
		t.Fatal("expected copycat false by default")
	}
	src.SetIsCopyCat(true)
	src.PersistSettings(doc, node)

	out := writeDoc(t, doc)
	if !strings.Contains(out, "<DS4SupportSettings><Copycat>true</Copycat></DS4SupportSettings>") {
		t.Fatalf("unexpected document %s", out)
	}

	dst := deviceopts.NewDS4ControllerOptions(deviceopts.DS4, nil)
	dst.LoadSettings(doc, node)
	if !dst.IsCopyCat() {
		t.Fatal("expected copycat true after load")
	}
}

func TestDS4PersistIsIdempotent(t *testing.T) {
	doc, node := newControllerRoot()
	src := deviceopts.NewDS4ControllerOptions(deviceopts.DS4, nil)
	src.PersistSettings(doc, node)
	first := writeDoc(t, doc)
	src.PersistSettings(doc, node)
	second := writeDoc(t, doc)
	if first != second {
		t.Fatalf("persist not idempotent:\n%s\n%s", first, second)
	}
	if n := len(node.SelectElements(deviceopts.DS4ElementName)); n != 1 {
		t.Fatalf("expected one subtree, found %d", n)
	}
}

func TestDS4LoadStripsNamespacesOnRewrite(t *testing.T) {
	doc, node := parseControllerRoot(t, `<ControllerOptions><DS4SupportSettings xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema"><Copycat>true</Copycat></DS4SupportSettings></ControllerOptions>`)

	opts := deviceopts.NewDS4ControllerOptions(deviceopts.DS4, nil)
	opts.LoadSettings(doc, node)
	if !opts.IsCopyCat() {
		t.Fatal("expected copycat true from namespaced subtree")
	}

	opts.PersistSettings(doc, node)
	out := writeDoc(t, doc)
	if strings.Contains(out, "xmlns") || strings.Contains(out, "<?xml") {
		t.Fatalf("expected bare subtree, got %s", out)
	}
}

func TestDS4MalformedSubtreeIgnoredAsWhole(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{name: "not xsd boolean", xml: `<ControllerOptions><DS4SupportSettings><Copycat>yes</Copycat></DS4SupportSettings></ControllerOptions>`},
		{name: "title case", xml: `<ControllerOptions><DS4SupportSettings><Copycat>True</Copycat></DS4SupportSettings></ControllerOptions>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, node := parseControllerRoot(t, tt.xml)
			opts := deviceopts.NewDS4ControllerOptions(deviceopts.DS4, nil)
			calls := 0
			opts.CopyCat.Subscribe(func(notify.Change[bool]) { calls++ })

			opts.LoadSettings(doc, node)
			if opts.IsCopyCat() {
				t.Fatal("expected copycat to keep its default")
			}
			if calls != 0 {
				t.Fatalf("expected no notification, got %d", calls)
			}
		})
	}
}

func TestDS4LoadAcceptsNumericBoolean(t *testing.T) {
	doc, node := parseControllerRoot(t, `<ControllerOptions><DS4SupportSettings><Copycat>1</Copycat></DS4SupportSettings></ControllerOptions>`)
	opts := deviceopts.NewDS4ControllerOptions(deviceopts.DS4, nil)
	opts.LoadSettings(doc, node)
	if !opts.IsCopyCat() {
		t.Fatal("expected \"1\" to decode as true")
	}
}

func TestDS4MissingElementKeepsCurrentValue(t *testing.T) {
	doc, node := parseControllerRoot(t, `<ControllerOptions><DS4SupportSettings/></ControllerOptions>`)
	opts := deviceopts.NewDS4ControllerOptions(deviceopts.DS4, nil)
	opts.SetIsCopyCat(true)

	opts.LoadSettings(doc, node)
	if !opts.IsCopyCat() {
		t.Fatal("expected copycat to stay true")
	}
}

func TestDS4MissingSubtreeKeepsValues(t *testing.T) {
	doc, node := newControllerRoot()
	opts := deviceopts.NewDS4ControllerOptions(deviceopts.DS4, nil)
	opts.SetIsCopyCat(true)
	opts.LoadSettings(doc, node)
	if !opts.IsCopyCat() {
		t.Fatal("expected copycat to stay true")
	}
}
