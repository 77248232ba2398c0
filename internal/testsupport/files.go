package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteProfile writes a profile document to path, creating parent
// directories as needed.
func WriteProfile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// DualSenseProfile returns a minimal profile document with the given
// DualSense light bar mode and the DS4 family disabled.
func DualSenseProfile(ledMode string) string {
	return `<?xml version="1.0" encoding="utf-8"?>
<Profile>
  <DeviceOptions>
    <DS4SupportSettings>
      <Enabled>False</Enabled>
    </DS4SupportSettings>
  </DeviceOptions>
  <ControllerOptions>
    <DualSenseSupportSettings>
      <LEDBarMode>` + ledMode + `</LEDBarMode>
    </DualSenseSupportSettings>
  </ControllerOptions>
</Profile>
`
}
