package sysinfo

import (
	"runtime"
	"strings"
)

// Environment reports the OS name and release, the user's shell, the Go
// runtime version and the home directory. Unset variables fall back to
// "Unknown" (SHELL) and "?" (HOME).
func (c *Collector) Environment() EnvironmentSnapshot {
	return EnvironmentSnapshot{
		OSName:         c.osName(),
		ShellPath:      envOr(c.Getenv, "SHELL", FallbackUnknown),
		RuntimeVersion: strings.TrimPrefix(runtime.Version(), "go"),
		HomeDir:        envOr(c.Getenv, "HOME", FallbackHome),
	}
}

func (c *Collector) osName() string {
	name := platformName(c.GOOS, c.Getenv)
	release := ""
	if c.Release != nil {
		release = strings.TrimSpace(c.Release())
	}

	switch {
	case name == "" && release == "":
		return FallbackUnknown
	case release == "":
		return name
	case name == "":
		return release
	default:
		return name + " " + release
	}
}

// platformName names the OS. Termux reports GOOS linux for binaries built for
// Linux, so the Android runtime is also recognised from its environment.
func platformName(goos string, getenv func(string) string) string {
	if goos == "android" || getenv("ANDROID_ROOT") != "" || strings.Contains(getenv("PREFIX"), "com.termux") {
		return "Android"
	}

	switch goos {
	case "linux":
		return "Linux"
	case "darwin":
		return "macOS"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	default:
		return goos
	}
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return fallback
}
