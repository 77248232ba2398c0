package deviceopts_test

import (
	"strings"
	"testing"

	"padhost/internal/deviceopts"
	"padhost/internal/notify"
)

func TestDualSenseDefaults(t *testing.T) {
	opts := deviceopts.NewDualSenseControllerOptions(deviceopts.DualSense, nil)
	if !opts.EnableRumble.Get() {
		t.Fatal("expected rumble enabled by default")
	}
	if opts.HapticIntensity.Get() != deviceopts.HapticMedium {
		t.Fatalf("haptic intensity: got %v", opts.HapticIntensity.Get())
	}
	if opts.LEDMode.Get() != deviceopts.LEDBarMultipleControllers {
		t.Fatalf("LED mode: got %v", opts.LEDMode.Get())
	}
	if opts.MuteLEDMode.Get() != deviceopts.MuteLEDOff {
		t.Fatalf("mute LED mode: got %v", opts.MuteLEDMode.Get())
	}
	if opts.Family() != deviceopts.FamilyDualSense || opts.DeviceType() != deviceopts.DualSense {
		t.Fatalf("unexpected tag %v/%v", opts.Family(), opts.DeviceType())
	}
}

func TestDualSenseBatteryLEDRoundTrip(t *testing.T) {
	doc, node := newControllerRoot()
	src := deviceopts.NewDualSenseControllerOptions(deviceopts.DualSense, nil)
	src.LEDMode.Set(deviceopts.LEDBarBatteryPercentage)
	src.PersistSettings(doc, node)

	dst := deviceopts.NewDualSenseControllerOptions(deviceopts.DualSense, nil)
	dst.LoadSettings(doc, node)

	if !dst.EnableRumble.Get() {
		t.Fatal("expected rumble true")
	}
	if dst.HapticIntensity.Get() != deviceopts.HapticMedium {
		t.Fatalf("haptic intensity: got %v want Medium", dst.HapticIntensity.Get())
	}
	if dst.LEDMode.Get() != deviceopts.LEDBarBatteryPercentage {
		t.Fatalf("LED mode: got %v want BatteryPercentage", dst.LEDMode.Get())
	}
	if dst.MuteLEDMode.Get() != deviceopts.MuteLEDOff {
		t.Fatalf("mute LED mode: got %v want Off", dst.MuteLEDMode.Get())
	}
}

func TestDualSenseRoundTripAllFields(t *testing.T) {
	doc, node := newControllerRoot()
	src := deviceopts.NewDualSenseControllerOptions(deviceopts.DualSense, nil)
	src.EnableRumble.Set(false)
	src.HapticIntensity.Set(deviceopts.HapticLow)
	src.LEDMode.Set(deviceopts.LEDBarOn)
	src.MuteLEDMode.Set(deviceopts.MuteLEDPulse)
	src.PersistSettings(doc, node)

	dst := deviceopts.NewDualSenseControllerOptions(deviceopts.DualSense, nil)
	dst.LoadSettings(doc, node)

	for _, tunable := range src.Tunables() {
		got, err := deviceopts.FindTunable(dst.Tunables(), tunable.Name)
		if err != nil {
			t.Fatal(err)
		}
		if got.Get() != tunable.Get() {
			t.Fatalf("%s: got %q want %q", tunable.Name, got.Get(), tunable.Get())
		}
	}
}

func TestDualSensePersistWritesEnumIdentifiers(t *testing.T) {
	doc, node := newControllerRoot()
	src := deviceopts.NewDualSenseControllerOptions(deviceopts.DualSense, nil)
	src.HapticIntensity.Set(deviceopts.HapticHigh)
	src.PersistSettings(doc, node)

	out := writeDoc(t, doc)
	for _, want := range []string{
		"<DualSenseSupportSettings>",
		"<EnableRumble>True</EnableRumble>",
		"<RumbleStrength>High</RumbleStrength>",
		"<LEDBarMode>MultipleControllers</LEDBarMode>",
		"<MuteLEDMode>Off</MuteLEDMode>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %s", want, out)
		}
	}
}

func TestDualSensePersistIsIdempotent(t *testing.T) {
	doc, node := newControllerRoot()
	src := deviceopts.NewDualSenseControllerOptions(deviceopts.DualSense, nil)

	src.PersistSettings(doc, node)
	first := writeDoc(t, doc)
	src.PersistSettings(doc, node)
	second := writeDoc(t, doc)

	if first != second {
		t.Fatalf("persist not idempotent:\n%s\n%s", first, second)
	}
	if n := len(node.SelectElements(deviceopts.DualSenseElementName)); n != 1 {
		t.Fatalf("expected one subtree, found %d", n)
	}
}

func TestDualSenseMissingSubtreeKeepsValues(t *testing.T) {
	_, node := newControllerRoot()
	opts := deviceopts.NewDualSenseControllerOptions(deviceopts.DualSense, nil)
	opts.MuteLEDMode.Set(deviceopts.MuteLEDOn)

	calls := 0
	opts.MuteLEDMode.Subscribe(func(notify.Change[deviceopts.MuteLEDMode]) { calls++ })
	opts.LoadSettings(nil, node)

	if opts.MuteLEDMode.Get() != deviceopts.MuteLEDOn {
		t.Fatalf("expected value kept, got %v", opts.MuteLEDMode.Get())
	}
	if calls != 0 {
		t.Fatalf("expected no notification, got %d", calls)
	}
}

func TestDualSenseMalformedFieldsAreIsolated(t *testing.T) {
	doc, node := parseControllerRoot(t, `<ControllerOptions>
  <DualSenseSupportSettings>
    <EnableRumble>nope</EnableRumble>
    <RumbleStrength>2</RumbleStrength>
    <LEDBarMode> On </LEDBarMode>
    <MuteLEDMode>pulse</MuteLEDMode>
  </DualSenseSupportSettings>
</ControllerOptions>`)

	opts := deviceopts.NewDualSenseControllerOptions(deviceopts.DualSense, nil)
	opts.LoadSettings(doc, node)

	if !opts.EnableRumble.Get() {
		t.Fatal("expected unparseable rumble to keep default")
	}
	if opts.HapticIntensity.Get() != deviceopts.HapticMedium {
		t.Fatalf("expected numeric strength to be rejected, got %v", opts.HapticIntensity.Get())
	}
	if opts.LEDMode.Get() != deviceopts.LEDBarOn {
		t.Fatalf("expected trimmed enumerator to load, got %v", opts.LEDMode.Get())
	}
	if opts.MuteLEDMode.Get() != deviceopts.MuteLEDOff {
		t.Fatalf("expected wrong-case enumerator to be rejected, got %v", opts.MuteLEDMode.Get())
	}
}

func TestDualSenseLoadAcceptsAnyBoolCase(t *testing.T) {
	doc, node := parseControllerRoot(t, `<ControllerOptions><DualSenseSupportSettings><EnableRumble> FALSE </EnableRumble></DualSenseSupportSettings></ControllerOptions>`)

	opts := deviceopts.NewDualSenseControllerOptions(deviceopts.DualSense, nil)
	opts.LoadSettings(doc, node)
	if opts.EnableRumble.Get() {
		t.Fatal("expected rumble false")
	}
}

func TestDualSenseLoadNotifiesOnlyOnChange(t *testing.T) {
	doc, node := parseControllerRoot(t, `<ControllerOptions><DualSenseSupportSettings><LEDBarMode>BatteryPercentage</LEDBarMode></DualSenseSupportSettings></ControllerOptions>`)

	opts := deviceopts.NewDualSenseControllerOptions(deviceopts.DualSense, nil)
	var changes []notify.Change[deviceopts.LEDBarMode]
	opts.LEDMode.Subscribe(func(c notify.Change[deviceopts.LEDBarMode]) { changes = append(changes, c) })
	rumbleCalls := 0
	opts.EnableRumble.Subscribe(func(notify.Change[bool]) { rumbleCalls++ })

	opts.LoadSettings(doc, node)
	opts.LoadSettings(doc, node)

	if len(changes) != 1 {
		t.Fatalf("expected one LED notification, got %d", len(changes))
	}
	if changes[0].Old != deviceopts.LEDBarMultipleControllers || changes[0].New != deviceopts.LEDBarBatteryPercentage {
		t.Fatalf("unexpected change %+v", changes[0])
	}
	if rumbleCalls != 0 {
		t.Fatalf("expected no rumble notification, got %d", rumbleCalls)
	}
}
