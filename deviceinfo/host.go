package deviceinfo

import (
	"net"
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/northlight/northlight-go/internal/version"
)

// HostProvider reads device attributes from the machine the process runs on.
// It is the default provider for CLI and server-side Go hosts; applications
// with richer platform access should supply their own Provider.
//
// Every read is best-effort. Files that don't exist on the current platform
// simply leave the corresponding Snapshot field absent.
type HostProvider struct {
	// AppVersionOverride replaces the binary's build version when set
	AppVersionOverride string
}

// Model returns the platform identifier for the host, e.g. "linux/amd64"
func (HostProvider) Model() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// OSVersion returns the kernel release on Linux, falling back to the
// bare OS name elsewhere
func (HostProvider) OSVersion() string {
	if data, err := os.ReadFile("/proc/sys/kernel/osrelease"); err == nil {
		if v := strings.TrimSpace(string(data)); v != "" {
			return v
		}
	}
	return runtime.GOOS
}

// AppVersion returns the embedding binary's version
func (p HostProvider) AppVersion() string {
	if p.AppVersionOverride != "" {
		return p.AppVersionOverride
	}
	return version.Version
}

// ScreenSize returns the terminal size in character cells when attached to
// a terminal; (0, 0) otherwise. A headless host has no display to measure.
func (HostProvider) ScreenSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 0, 0
}

// Locale derives the locale identifier from the standard environment
// variables, stripping any codeset suffix ("en_US.UTF-8" -> "en_US")
func (HostProvider) Locale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" && v != "C" && v != "POSIX" {
			if i := strings.IndexByte(v, '.'); i > 0 {
				v = v[:i]
			}
			return v
		}
	}
	return "en_US"
}

// FreeMemoryBytes reads MemAvailable from /proc/meminfo on Linux
func (HostProvider) FreeMemoryBytes() (uint64, bool) {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return 0, false
	}
	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "MemAvailable:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, false
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0, false
		}
		return kb * 1024, true
	}
	return 0, false
}

// BatteryLevel reads the first battery's charge via sysfs on Linux
func (HostProvider) BatteryLevel() (float64, bool) {
	matches, err := os.ReadDir("/sys/class/power_supply")
	if err != nil {
		return 0, false
	}
	for _, entry := range matches {
		if !strings.HasPrefix(entry.Name(), "BAT") {
			continue
		}
		data, err := os.ReadFile("/sys/class/power_supply/" + entry.Name() + "/capacity")
		if err != nil {
			continue
		}
		pct, err := strconv.Atoi(strings.TrimSpace(string(data)))
		if err != nil {
			continue
		}
		return float64(pct) / 100.0, true
	}
	return 0, false
}

// NetworkType classifies connectivity from the host's network interfaces.
// Any usable non-loopback interface counts as wifi unless its name marks it
// as a mobile broadband link.
func (HostProvider) NetworkType() NetworkType {
	ifaces, err := net.Interfaces()
	if err != nil {
		return NetworkNone
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil || len(addrs) == 0 {
			continue
		}
		name := strings.ToLower(iface.Name)
		if strings.HasPrefix(name, "wwan") || strings.HasPrefix(name, "ppp") {
			return NetworkCellular
		}
		return NetworkWiFi
	}
	return NetworkNone
}
