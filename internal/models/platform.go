package models

import "strings"

// Platform buckets used for click attribution and the trafficByDevice
// breakdown.
const (
	PlatformLinux   = "Linux"
	PlatformMac     = "Mac"
	PlatformIOS     = "iOS"
	PlatformWindows = "Windows"
	PlatformAndroid = "Android"
	PlatformOthers  = "Others"
)

// AllPlatforms lists every bucket the analytics report keys on. The report
// always carries all of them, zeroes included.
var AllPlatforms = []string{
	PlatformLinux,
	PlatformMac,
	PlatformIOS,
	PlatformWindows,
	PlatformAndroid,
	PlatformOthers,
}

// DerivePlatform maps a raw user-agent string to a platform bucket using
// ordered, case-sensitive substring matching. The first match wins, so a
// user agent containing both "Mac" and "iPhone" counts as Mac.
func DerivePlatform(userAgent string) string {
	switch {
	case strings.Contains(userAgent, "Win"):
		return PlatformWindows
	case strings.Contains(userAgent, "Mac"):
		return PlatformMac
	case strings.Contains(userAgent, "Linux"):
		return PlatformLinux
	case strings.Contains(userAgent, "Android"):
		return PlatformAndroid
	case strings.Contains(userAgent, "iPhone"), strings.Contains(userAgent, "iPad"):
		return PlatformIOS
	default:
		return PlatformOthers
	}
}
