package deviceinfo

import "testing"

// fakeProvider returns controllable readings
type fakeProvider struct {
	batteryOK bool
	memoryOK  bool
}

func (fakeProvider) Model() string          { return "pixel-9" }
func (fakeProvider) OSVersion() string      { return "15" }
func (fakeProvider) AppVersion() string     { return "3.1.4" }
func (fakeProvider) ScreenSize() (int, int) { return 1080, 2400 }
func (fakeProvider) Locale() string         { return "de_DE" }

func (f fakeProvider) FreeMemoryBytes() (uint64, bool) {
	return 512 * 1024 * 1024, f.memoryOK
}

func (f fakeProvider) BatteryLevel() (float64, bool) {
	return 0.42, f.batteryOK
}

func (fakeProvider) NetworkType() NetworkType { return NetworkCellular }

func TestCaptureBasic(t *testing.T) {
	snap := Capture(fakeProvider{batteryOK: true, memoryOK: true}, false)

	if snap.Model != "pixel-9" || snap.OSVersion != "15" || snap.AppVersion != "3.1.4" {
		t.Errorf("basic fields = %+v", snap)
	}
	if snap.ScreenResolution != "1080x2400" {
		t.Errorf("ScreenResolution = %q, want 1080x2400", snap.ScreenResolution)
	}
	if snap.Locale != "de_DE" {
		t.Errorf("Locale = %q, want de_DE", snap.Locale)
	}

	// Extended readings are gated behind the flag
	if snap.FreeMemory != "" || snap.BatteryLevel != nil || snap.NetworkType != "" {
		t.Errorf("basic capture has extended fields: %+v", snap)
	}
}

func TestCaptureExtended(t *testing.T) {
	snap := Capture(fakeProvider{batteryOK: true, memoryOK: true}, true)

	if snap.FreeMemory != "512MB" {
		t.Errorf("FreeMemory = %q, want 512MB", snap.FreeMemory)
	}
	if snap.BatteryLevel == nil || *snap.BatteryLevel != 0.42 {
		t.Errorf("BatteryLevel = %v, want 0.42", snap.BatteryLevel)
	}
	if snap.NetworkType != "cellular" {
		t.Errorf("NetworkType = %q, want cellular", snap.NetworkType)
	}
}

func TestCaptureUnavailableReadingsAreAbsent(t *testing.T) {
	snap := Capture(fakeProvider{batteryOK: false, memoryOK: false}, true)

	if snap.FreeMemory != "" {
		t.Errorf("FreeMemory = %q, want absent", snap.FreeMemory)
	}
	if snap.BatteryLevel != nil {
		t.Errorf("BatteryLevel = %v, want absent", snap.BatteryLevel)
	}
	// Capture itself must still have succeeded
	if snap.Model != "pixel-9" {
		t.Errorf("Model = %q, capture should not fail on missing readings", snap.Model)
	}
}

func TestFormatFreeMemory(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  string
	}{
		{512 * 1024 * 1024, "512MB"},
		{0, "0MB"},
		{1536 * 1024 * 1024, "1536MB"},
		{1024*1024 - 1, "0MB"},
	}

	for _, tt := range tests {
		if got := formatFreeMemory(tt.bytes); got != tt.want {
			t.Errorf("formatFreeMemory(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestHostProviderNeverPanics(t *testing.T) {
	// Readings vary by platform; the contract is that capture always succeeds
	snap := Capture(HostProvider{}, true)

	if snap.Model == "" {
		t.Error("HostProvider model should never be empty")
	}
	if snap.Locale == "" {
		t.Error("HostProvider locale should never be empty")
	}
}
