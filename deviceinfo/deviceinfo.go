package deviceinfo

import "fmt"

// NetworkType is the connectivity class reported with bug reports
type NetworkType string

// Network types on the wire
const (
	NetworkWiFi     NetworkType = "wifi"
	NetworkCellular NetworkType = "cellular"
	NetworkNone     NetworkType = "none"
)

// Snapshot is a point-in-time description of the device, app, and
// environment, attached to feedback and bug submissions. It carries no
// identity and is never mutated after construction.
type Snapshot struct {
	Model            string   `json:"model"`
	OSVersion        string   `json:"os_version"`
	AppVersion       string   `json:"app_version"`
	ScreenResolution string   `json:"screen_resolution"`
	Locale           string   `json:"locale"`
	FreeMemory       string   `json:"free_memory,omitempty"`
	BatteryLevel     *float64 `json:"battery_level,omitempty"`
	NetworkType      string   `json:"network_type,omitempty"`
}

// Provider supplies the raw device readings a Snapshot is built from.
// Host applications embed the SDK and implement this for their platform;
// HostProvider is a best-effort default for plain Go hosts.
type Provider interface {
	// Model is the hardware or platform model string
	Model() string
	// OSVersion is the operating system version
	OSVersion() string
	// AppVersion is the embedding application's version
	AppVersion() string
	// ScreenSize returns the display size in pixels; (0, 0) when unknown
	ScreenSize() (width, height int)
	// Locale is the user's locale identifier (e.g. "en_US")
	Locale() string
	// FreeMemoryBytes returns available memory; ok is false when unreadable
	FreeMemoryBytes() (bytes uint64, ok bool)
	// BatteryLevel returns the charge fraction 0.0-1.0; ok is false when
	// the device has no readable battery
	BatteryLevel() (level float64, ok bool)
	// NetworkType classifies the current connectivity
	NetworkType() NetworkType
}

// Capture builds a Snapshot from the provider's current readings. It always
// succeeds: readings that cannot be taken leave their field absent rather
// than failing the capture. The extended fields (free memory, battery,
// network type) are only read when requested, which keeps feedback payloads
// small and avoids permission-sensitive reads outside bug reports.
func Capture(p Provider, includeExtended bool) Snapshot {
	w, h := p.ScreenSize()

	snap := Snapshot{
		Model:            p.Model(),
		OSVersion:        p.OSVersion(),
		AppVersion:       p.AppVersion(),
		ScreenResolution: fmt.Sprintf("%dx%d", w, h),
		Locale:           p.Locale(),
	}

	if includeExtended {
		if bytes, ok := p.FreeMemoryBytes(); ok {
			snap.FreeMemory = formatFreeMemory(bytes)
		}
		if level, ok := p.BatteryLevel(); ok && level >= 0 {
			snap.BatteryLevel = &level
		}
		snap.NetworkType = string(p.NetworkType())
	}

	return snap
}

// formatFreeMemory renders bytes as the wire's whole-megabyte form, e.g.
// "512MB". The server parses this exact shape.
func formatFreeMemory(bytes uint64) string {
	return fmt.Sprintf("%dMB", bytes/(1024*1024))
}
