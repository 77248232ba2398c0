package deviceopts

import "padhost/internal/notify"

// DefaultEnabled is the enablement state of every family on first run.
const DefaultEnabled = true

// EnabledElementName is the element holding an enablement flag.
const EnabledElementName = "Enabled"

// EnablementRecord is the family-wide on/off gate. It is independent of the
// family's settings group and is never persisted alongside it.
type EnablementRecord interface {
	Family() Family
	EnabledSetting() *notify.Setting[bool]
	Tunables() []Tunable
}

type enablement struct {
	family Family
	// Enabled reports whether the host should drive controllers of the family.
	Enabled *notify.Setting[bool]
}

func newEnablement(family Family) enablement {
	return enablement{
		family:  family,
		Enabled: notify.NewSetting(EnabledElementName, DefaultEnabled),
	}
}

func (e *enablement) Family() Family                        { return e.family }
func (e *enablement) EnabledSetting() *notify.Setting[bool] { return e.Enabled }

func (e *enablement) Tunables() []Tunable {
	return []Tunable{boolTunable(e.Enabled, true)}
}

// DS4DeviceOptions gates DS4 support.
type DS4DeviceOptions struct {
	enablement
}

// NewDS4DeviceOptions returns an enabled DS4 record.
func NewDS4DeviceOptions() *DS4DeviceOptions {
	return &DS4DeviceOptions{enablement: newEnablement(FamilyDS4)}
}

// DualSenseDeviceOptions gates DualSense support.
type DualSenseDeviceOptions struct {
	enablement
}

// NewDualSenseDeviceOptions returns an enabled DualSense record.
func NewDualSenseDeviceOptions() *DualSenseDeviceOptions {
	return &DualSenseDeviceOptions{enablement: newEnablement(FamilyDualSense)}
}

// SwitchProDeviceOptions gates Switch Pro support.
type SwitchProDeviceOptions struct {
	enablement
}

// NewSwitchProDeviceOptions returns an enabled Switch Pro record.
func NewSwitchProDeviceOptions() *SwitchProDeviceOptions {
	return &SwitchProDeviceOptions{enablement: newEnablement(FamilySwitchPro)}
}

// Defaults of the session-only JoyCon pairing settings.
const (
	DefaultLinkMode     = LinkJoined
	DefaultJoinGyroProv = GyroJoyConR
)

// JoyConDeviceOptions gates JoyCon support and holds how JoyCon pairs are
// combined.
//
// LinkedMode and JoinGyroProv live for the session only. They notify on
// change but have no element in the settings document.
type JoyConDeviceOptions struct {
	enablement
	LinkedMode   *notify.Setting[LinkMode]
	JoinGyroProv *notify.Setting[JoinedGyroProvider]
}

// NewJoyConDeviceOptions returns an enabled JoyCon record in joined mode
// taking gyro data from the right JoyCon.
func NewJoyConDeviceOptions() *JoyConDeviceOptions {
	return &JoyConDeviceOptions{
		enablement:   newEnablement(FamilyJoyCon),
		LinkedMode:   notify.NewSetting("LinkedMode", DefaultLinkMode),
		JoinGyroProv: notify.NewSetting("JoinGyroProv", DefaultJoinGyroProv),
	}
}

// Tunables lists the enablement flag followed by the session-only pairing
// settings.
func (o *JoyConDeviceOptions) Tunables() []Tunable {
	return []Tunable{
		boolTunable(o.Enabled, true),
		enumTunable(o.LinkedMode, linkModeNames, false),
		enumTunable(o.JoinGyroProv, joinedGyroProviderNames, false),
	}
}
