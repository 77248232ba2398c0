package deviceopts

import (
	"fmt"
	"strings"
)

// DeviceType identifies the kind of input device a settings group was
// created for.
type DeviceType uint16

const (
	DS4 DeviceType = iota
	SwitchPro
	JoyConL
	JoyConR
	DualSense
)

var deviceTypeNames = []string{"DS4", "SwitchPro", "JoyConL", "JoyConR", "DualSense"}

func (d DeviceType) String() string {
	return enumString(deviceTypeNames, int(d))
}

// Family returns the controller family the device type belongs to.
func (d DeviceType) Family() Family {
	switch d {
	case DS4:
		return FamilyDS4
	case DualSense:
		return FamilyDualSense
	case SwitchPro:
		return FamilySwitchPro
	case JoyConL, JoyConR:
		return FamilyJoyCon
	default:
		return FamilyUnknown
	}
}

// Family is a supported controller protocol or hardware class.
type Family int

const (
	FamilyUnknown Family = iota - 1
	FamilyDS4
	FamilyDualSense
	FamilySwitchPro
	FamilyJoyCon
)

// Families lists every supported family in registry order.
func Families() []Family {
	return []Family{FamilyDS4, FamilyDualSense, FamilySwitchPro, FamilyJoyCon}
}

// Element names of each family's subtree. They match settings files written
// by earlier releases and must not change.
const (
	DS4ElementName       = "DS4SupportSettings"
	DualSenseElementName = "DualSenseSupportSettings"
	SwitchProElementName = "SwitchProSupportSettings"
	JoyConElementName    = "JoyConSupportSettings"
)

var familyNames = map[Family]string{
	FamilyDS4:       "ds4",
	FamilyDualSense: "dualsense",
	FamilySwitchPro: "switchpro",
	FamilyJoyCon:    "joycon",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return "unknown"
}

// ElementName returns the element name of the family's subtree.
func (f Family) ElementName() string {
	switch f {
	case FamilyDS4:
		return DS4ElementName
	case FamilyDualSense:
		return DualSenseElementName
	case FamilySwitchPro:
		return SwitchProElementName
	case FamilyJoyCon:
		return JoyConElementName
	default:
		return ""
	}
}

// DeviceType returns the device type the aggregate uses for the family's
// settings group.
func (f Family) DeviceType() DeviceType {
	switch f {
	case FamilyDualSense:
		return DualSense
	case FamilySwitchPro:
		return SwitchPro
	case FamilyJoyCon:
		return JoyConL
	default:
		return DS4
	}
}

// ParseFamily resolves a family from its short name ("ds4", "dualsense",
// "switchpro", "joycon") or its subtree element name. Matching ignores case.
func ParseFamily(text string) (Family, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, f := range Families() {
		if normalized == f.String() || normalized == strings.ToLower(f.ElementName()) {
			return f, nil
		}
	}
	return FamilyUnknown, fmt.Errorf("%w: %q", ErrUnknownFamily, text)
}
