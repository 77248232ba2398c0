package deviceopts

import (
	"log/slog"

	"github.com/beevik/etree"

	"padhost/internal/notify"
	"padhost/internal/xmlnode"
)

// DualSense defaults.
const (
	DefaultEnableRumble    = true
	DefaultHapticIntensity = HapticMedium
	DefaultLEDBarMode      = LEDBarMultipleControllers
	DefaultMuteLEDMode     = MuteLEDOff
)

// DualSenseControllerOptions is the DualSense settings group: rumble,
// haptic strength, light bar and mute LED behaviour.
type DualSenseControllerOptions struct {
	storeBase
	EnableRumble    *notify.Setting[bool]
	HapticIntensity *notify.Setting[HapticIntensity]
	LEDMode         *notify.Setting[LEDBarMode]
	MuteLEDMode     *notify.Setting[MuteLEDMode]
}

// NewDualSenseControllerOptions returns a DualSense settings group with
// defaults.
func NewDualSenseControllerOptions(deviceType DeviceType, logger *slog.Logger) *DualSenseControllerOptions {
	return &DualSenseControllerOptions{
		storeBase:       newStoreBase(deviceType, logger),
		EnableRumble:    notify.NewSetting("EnableRumble", DefaultEnableRumble),
		HapticIntensity: notify.NewSetting("RumbleStrength", DefaultHapticIntensity),
		LEDMode:         notify.NewSetting("LEDBarMode", DefaultLEDBarMode),
		MuteLEDMode:     notify.NewSetting("MuteLEDMode", DefaultMuteLEDMode),
	}
}

// PersistSettings writes one child element per field.
func (o *DualSenseControllerOptions) PersistSettings(doc *etree.Document, node *etree.Element) {
	replaceSubtree(node, DualSenseElementName, func(el *etree.Element) {
		writeBool(el, o.EnableRumble)
		writeEnum(el, o.HapticIntensity, hapticIntensityNames)
		writeEnum(el, o.LEDMode, ledBarModeNames)
		writeEnum(el, o.MuteLEDMode, muteLEDModeNames)
	})
}

// LoadSettings applies every field that parses and keeps the rest.
func (o *DualSenseControllerOptions) LoadSettings(doc *etree.Document, node *etree.Element) {
	base := xmlnode.Child(node, DualSenseElementName)
	if base == nil {
		return
	}
	o.readBool(base, o.EnableRumble)
	readEnum(&o.storeBase, base, o.HapticIntensity, hapticIntensityNames)
	readEnum(&o.storeBase, base, o.LEDMode, ledBarModeNames)
	readEnum(&o.storeBase, base, o.MuteLEDMode, muteLEDModeNames)
}

// Tunables lists the group's fields.
func (o *DualSenseControllerOptions) Tunables() []Tunable {
	return []Tunable{
		boolTunable(o.EnableRumble, true),
		enumTunable(o.HapticIntensity, hapticIntensityNames, true),
		enumTunable(o.LEDMode, ledBarModeNames, true),
		enumTunable(o.MuteLEDMode, muteLEDModeNames, true),
	}
}
