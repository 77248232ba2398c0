package deviceopts

import (
	"strconv"
	"strings"
)

// HapticIntensity is the DualSense rumble strength.
type HapticIntensity uint16

const (
	HapticLow HapticIntensity = iota
	HapticMedium
	HapticHigh
)

var hapticIntensityNames = []string{"Low", "Medium", "High"}

func (h HapticIntensity) String() string { return enumString(hapticIntensityNames, int(h)) }

// ParseHapticIntensity parses the enumerator identifier of a HapticIntensity.
func ParseHapticIntensity(text string) (HapticIntensity, bool) {
	return parseEnum[HapticIntensity](hapticIntensityNames, text)
}

// LEDBarMode controls the DualSense light bar.
type LEDBarMode uint16

const (
	LEDBarOff LEDBarMode = iota
	LEDBarMultipleControllers
	LEDBarBatteryPercentage
	LEDBarOn
)

var ledBarModeNames = []string{"Off", "MultipleControllers", "BatteryPercentage", "On"}

func (m LEDBarMode) String() string { return enumString(ledBarModeNames, int(m)) }

// ParseLEDBarMode parses the enumerator identifier of a LEDBarMode.
func ParseLEDBarMode(text string) (LEDBarMode, bool) {
	return parseEnum[LEDBarMode](ledBarModeNames, text)
}

// MuteLEDMode controls the DualSense microphone mute LED.
type MuteLEDMode uint16

const (
	MuteLEDOff MuteLEDMode = iota
	MuteLEDOn
	MuteLEDPulse
)

var muteLEDModeNames = []string{"Off", "On", "Pulse"}

func (m MuteLEDMode) String() string { return enumString(muteLEDModeNames, int(m)) }

// ParseMuteLEDMode parses the enumerator identifier of a MuteLEDMode.
func ParseMuteLEDMode(text string) (MuteLEDMode, bool) {
	return parseEnum[MuteLEDMode](muteLEDModeNames, text)
}

// LinkMode selects whether a JoyCon pair acts as one controller or two.
type LinkMode uint16

const (
	LinkSplit LinkMode = iota
	LinkJoined
)

var linkModeNames = []string{"Split", "Joined"}

func (m LinkMode) String() string { return enumString(linkModeNames, int(m)) }

// ParseLinkMode parses the enumerator identifier of a LinkMode.
func ParseLinkMode(text string) (LinkMode, bool) {
	return parseEnum[LinkMode](linkModeNames, text)
}

// JoinedGyroProvider selects which half of a joined JoyCon pair supplies
// gyroscope data.
type JoinedGyroProvider uint16

const (
	GyroJoyConL JoinedGyroProvider = iota
	GyroJoyConR
)

var joinedGyroProviderNames = []string{"JoyConL", "JoyConR"}

func (p JoinedGyroProvider) String() string { return enumString(joinedGyroProviderNames, int(p)) }

// ParseJoinedGyroProvider parses the enumerator identifier of a
// JoinedGyroProvider.
func ParseJoinedGyroProvider(text string) (JoinedGyroProvider, bool) {
	return parseEnum[JoinedGyroProvider](joinedGyroProviderNames, text)
}

// parseEnum matches text against the enumerator identifiers exactly, after
// trimming surrounding whitespace. Numeric codes are not accepted.
func parseEnum[E ~uint16](names []string, text string) (E, bool) {
	trimmed := strings.TrimSpace(text)
	for i, name := range names {
		if name == trimmed {
			return E(i), true
		}
	}
	return 0, false
}

func enumString(names []string, value int) string {
	if value >= 0 && value < len(names) {
		return names[value]
	}
	return strconv.Itoa(value)
}
