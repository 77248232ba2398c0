package deviceopts

import (
	"log/slog"

	"github.com/beevik/etree"

	"padhost/internal/notify"
	"padhost/internal/xmlnode"
)

// DefaultEnableHomeLED is the home LED default of the Nintendo families.
const DefaultEnableHomeLED = true

// homeLEDOptions is the schema shared by the Switch Pro and JoyCon groups: a
// single home LED toggle under the family element.
type homeLEDOptions struct {
	storeBase
	element       string
	EnableHomeLED *notify.Setting[bool]
}

func newHomeLEDOptions(deviceType DeviceType, element string, logger *slog.Logger) homeLEDOptions {
	return homeLEDOptions{
		storeBase:     newStoreBase(deviceType, logger),
		element:       element,
		EnableHomeLED: notify.NewSetting("EnableHomeLED", DefaultEnableHomeLED),
	}
}

// PersistSettings writes the home LED toggle.
func (o *homeLEDOptions) PersistSettings(doc *etree.Document, node *etree.Element) {
	replaceSubtree(node, o.element, func(el *etree.Element) {
		writeBool(el, o.EnableHomeLED)
	})
}

// LoadSettings restores the home LED toggle when it parses.
func (o *homeLEDOptions) LoadSettings(doc *etree.Document, node *etree.Element) {
	base := xmlnode.Child(node, o.element)
	if base == nil {
		return
	}
	o.readBool(base, o.EnableHomeLED)
}

// Tunables lists the group's fields.
func (o *homeLEDOptions) Tunables() []Tunable {
	return []Tunable{boolTunable(o.EnableHomeLED, true)}
}

// SwitchProControllerOptions is the Switch Pro settings group.
type SwitchProControllerOptions struct {
	homeLEDOptions
}

// NewSwitchProControllerOptions returns a Switch Pro settings group with
// defaults.
func NewSwitchProControllerOptions(deviceType DeviceType, logger *slog.Logger) *SwitchProControllerOptions {
	return &SwitchProControllerOptions{
		homeLEDOptions: newHomeLEDOptions(deviceType, SwitchProElementName, logger),
	}
}

// JoyConControllerOptions is the JoyCon settings group. One group serves
// both halves; the device type records which half it was created for.
type JoyConControllerOptions struct {
	homeLEDOptions
}

// NewJoyConControllerOptions returns a JoyCon settings group with defaults.
func NewJoyConControllerOptions(deviceType DeviceType, logger *slog.Logger) *JoyConControllerOptions {
	return &JoyConControllerOptions{
		homeLEDOptions: newHomeLEDOptions(deviceType, JoyConElementName, logger),
	}
}
