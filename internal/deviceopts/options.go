package deviceopts

import (
	"fmt"
	"log/slog"
)

// DeviceOptions owns the enablement record and settings group of every
// supported family. It is created once per session and is the only way the
// rest of the host reads or changes controller options.
type DeviceOptions struct {
	ds4Device       *DS4DeviceOptions
	dualSenseDevice *DualSenseDeviceOptions
	switchProDevice *SwitchProDeviceOptions
	joyConDevice    *JoyConDeviceOptions

	ds4Controller       *DS4ControllerOptions
	dualSenseController *DualSenseControllerOptions
	switchProController *SwitchProControllerOptions
	joyConController    *JoyConControllerOptions

	// VerboseLogMessages enables extra diagnostics when a controller
	// connects. It lasts for the session only and always starts false.
	VerboseLogMessages bool
}

// New creates the options of every family with compiled-in defaults.
func New(logger *slog.Logger) *DeviceOptions {
	return &DeviceOptions{
		ds4Device:       NewDS4DeviceOptions(),
		dualSenseDevice: NewDualSenseDeviceOptions(),
		switchProDevice: NewSwitchProDeviceOptions(),
		joyConDevice:    NewJoyConDeviceOptions(),

		ds4Controller:       NewDS4ControllerOptions(FamilyDS4.DeviceType(), logger),
		dualSenseController: NewDualSenseControllerOptions(FamilyDualSense.DeviceType(), logger),
		switchProController: NewSwitchProControllerOptions(FamilySwitchPro.DeviceType(), logger),
		joyConController:    NewJoyConControllerOptions(FamilyJoyCon.DeviceType(), logger),

		VerboseLogMessages: false,
	}
}

func (o *DeviceOptions) DS4DeviceOpts() *DS4DeviceOptions             { return o.ds4Device }
func (o *DeviceOptions) DualSenseOpts() *DualSenseDeviceOptions       { return o.dualSenseDevice }
func (o *DeviceOptions) SwitchProDeviceOpts() *SwitchProDeviceOptions { return o.switchProDevice }
func (o *DeviceOptions) JoyConDeviceOpts() *JoyConDeviceOptions       { return o.joyConDevice }

func (o *DeviceOptions) DS4ControllerOpts() *DS4ControllerOptions { return o.ds4Controller }
func (o *DeviceOptions) DualSenseControllerOpts() *DualSenseControllerOptions {
	return o.dualSenseController
}
func (o *DeviceOptions) SwitchProControllerOpts() *SwitchProControllerOptions {
	return o.switchProController
}
func (o *DeviceOptions) JoyConControllerOpts() *JoyConControllerOptions { return o.joyConController }

// Stores returns every settings group in family order.
func (o *DeviceOptions) Stores() []ControllerOptionsStore {
	return []ControllerOptionsStore{
		o.ds4Controller,
		o.dualSenseController,
		o.switchProController,
		o.joyConController,
	}
}

// Enablements returns every enablement record in family order.
func (o *DeviceOptions) Enablements() []EnablementRecord {
	return []EnablementRecord{
		o.ds4Device,
		o.dualSenseDevice,
		o.switchProDevice,
		o.joyConDevice,
	}
}

// Store returns the settings group of family.
func (o *DeviceOptions) Store(family Family) (ControllerOptionsStore, error) {
	for _, store := range o.Stores() {
		if store.Family() == family {
			return store, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFamily, family)
}

// Enablement returns the enablement record of family.
func (o *DeviceOptions) Enablement(family Family) (EnablementRecord, error) {
	for _, record := range o.Enablements() {
		if record.Family() == family {
			return record, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFamily, family)
}

// ResetFamily restores the compiled-in defaults of family's persisted
// settings. Fields already at their default do not notify.
func (o *DeviceOptions) ResetFamily(family Family) error {
	store, err := o.Store(family)
	if err != nil {
		return err
	}
	defaults := NewControllerOptions(store.DeviceType(), nil)
	current := store.Tunables()
	for _, want := range defaults.Tunables() {
		have, err := FindTunable(current, want.Name)
		if err != nil {
			return err
		}
		if err := have.Set(want.Get()); err != nil {
			return fmt.Errorf("reset %s: %w", family, err)
		}
	}
	return nil
}
