package deviceopts

import (
	"fmt"
	"strings"

	"padhost/internal/notify"
	"padhost/internal/xmlnode"
)

// Tunable is a name-addressed, text-valued view of one setting. It lets
// callers list and edit any family's fields without knowing their Go types.
type Tunable struct {
	Name string
	// Persisted is false for session-only settings that are never written to
	// the settings document.
	Persisted bool
	// Choices lists the accepted values for enumerations and booleans.
	Choices []string

	get   func() string
	set   func(text string) error
	watch func(fn func(before, after string)) func()
}

// Get returns the current value in its document text form.
func (t Tunable) Get() string {
	return t.get()
}

// Set parses text with the same rules the settings loader uses and assigns
// the result. Unparseable text leaves the value unchanged and returns an
// error wrapping ErrInvalidValue.
func (t Tunable) Set(text string) error {
	return t.set(text)
}

// Watch calls fn with the text form of every value transition until the
// returned cancel function is called.
func (t Tunable) Watch(fn func(before, after string)) (cancel func()) {
	return t.watch(fn)
}

// FindTunable returns the tunable whose name matches name, ignoring case.
func FindTunable(tunables []Tunable, name string) (Tunable, error) {
	trimmed := strings.TrimSpace(name)
	for _, t := range tunables {
		if strings.EqualFold(t.Name, trimmed) {
			return t, nil
		}
	}
	return Tunable{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

var boolChoices = []string{"True", "False"}

func boolTunable(s *notify.Setting[bool], persisted bool) Tunable {
	return Tunable{
		Name:      s.Name(),
		Persisted: persisted,
		Choices:   boolChoices,
		get:       func() string { return xmlnode.FormatBool(s.Get()) },
		set: func(text string) error {
			v, err := xmlnode.ParseBool(text)
			if err != nil {
				return fmt.Errorf("%w: %s: %q is not a boolean", ErrInvalidValue, s.Name(), text)
			}
			s.Set(v)
			return nil
		},
		watch: func(fn func(before, after string)) func() {
			return s.Subscribe(func(c notify.Change[bool]) {
				fn(xmlnode.FormatBool(c.Old), xmlnode.FormatBool(c.New))
			})
		},
	}
}

func enumTunable[E ~uint16](s *notify.Setting[E], names []string, persisted bool) Tunable {
	return Tunable{
		Name:      s.Name(),
		Persisted: persisted,
		Choices:   names,
		get:       func() string { return enumString(names, int(s.Get())) },
		set: func(text string) error {
			v, ok := parseEnum[E](names, text)
			if !ok {
				return fmt.Errorf("%w: %s: %q is not one of %s", ErrInvalidValue, s.Name(), text, strings.Join(names, ", "))
			}
			s.Set(v)
			return nil
		},
		watch: func(fn func(before, after string)) func() {
			return s.Subscribe(func(c notify.Change[E]) {
				fn(enumString(names, int(c.Old)), enumString(names, int(c.New)))
			})
		},
	}
}
