package deviceopts

import (
	"fmt"
	"log/slog"

	"github.com/beevik/etree"

	"padhost/internal/logging"
	"padhost/internal/notify"
	"padhost/internal/xmlnode"
)

// ControllerOptionsStore is a family's settings group. PersistSettings
// replaces the family's child of node with the current values;
// LoadSettings restores values from that child when it exists. Neither
// reports errors: unreadable data keeps the current values.
type ControllerOptionsStore interface {
	DeviceType() DeviceType
	Family() Family
	PersistSettings(doc *etree.Document, node *etree.Element)
	LoadSettings(doc *etree.Document, node *etree.Element)
	Tunables() []Tunable
}

// NewControllerOptions creates the settings group variant for deviceType
// with compiled-in defaults. It returns nil for an unknown device type.
func NewControllerOptions(deviceType DeviceType, logger *slog.Logger) ControllerOptionsStore {
	switch deviceType.Family() {
	case FamilyDS4:
		return NewDS4ControllerOptions(deviceType, logger)
	case FamilyDualSense:
		return NewDualSenseControllerOptions(deviceType, logger)
	case FamilySwitchPro:
		return NewSwitchProControllerOptions(deviceType, logger)
	case FamilyJoyCon:
		return NewJoyConControllerOptions(deviceType, logger)
	default:
		return nil
	}
}

// storeBase carries what every settings group variant shares.
type storeBase struct {
	deviceType DeviceType
	logger     *slog.Logger
}

func newStoreBase(deviceType DeviceType, logger *slog.Logger) storeBase {
	return storeBase{
		deviceType: deviceType,
		logger: logging.NewComponentLogger(logger, "deviceopts").With(
			logging.String(logging.FieldFamily, deviceType.Family().String()),
			logging.String(logging.FieldDeviceType, deviceType.String()),
		),
	}
}

// DeviceType returns the device type the group was created for.
func (b *storeBase) DeviceType() DeviceType { return b.deviceType }

// Family returns the controller family of the group.
func (b *storeBase) Family() Family { return b.deviceType.Family() }

func (b *storeBase) skipField(field, value string, err error) {
	b.logger.Debug("settings field not applied; keeping current value",
		logging.String(logging.FieldField, field),
		logging.String(logging.FieldValue, value),
		logging.Error(err),
	)
}

// replaceSubtree builds a fresh element named tag, lets fill populate it and
// swaps it in for any existing child of node with the same name.
func replaceSubtree(node *etree.Element, tag string, fill func(el *etree.Element)) {
	el := etree.NewElement(tag)
	fill(el)
	xmlnode.Replace(node, el)
}

func writeBool(parent *etree.Element, s *notify.Setting[bool]) {
	xmlnode.AddText(parent, s.Name(), xmlnode.FormatBool(s.Get()))
}

func writeEnum[E ~uint16](parent *etree.Element, s *notify.Setting[E], names []string) {
	xmlnode.AddText(parent, s.Name(), enumString(names, int(s.Get())))
}

func (b *storeBase) readBool(parent *etree.Element, s *notify.Setting[bool]) {
	text, err := xmlnode.ChildText(parent, s.Name())
	if err != nil {
		b.skipField(s.Name(), "", err)
		return
	}
	v, err := xmlnode.ParseBool(text)
	if err != nil {
		b.skipField(s.Name(), text, err)
		return
	}
	s.Set(v)
}

func readEnum[E ~uint16](b *storeBase, parent *etree.Element, s *notify.Setting[E], names []string) {
	text, err := xmlnode.ChildText(parent, s.Name())
	if err != nil {
		b.skipField(s.Name(), "", err)
		return
	}
	v, ok := parseEnum[E](names, text)
	if !ok {
		b.skipField(s.Name(), text, fmt.Errorf("unknown enumerator %q", text))
		return
	}
	s.Set(v)
}
