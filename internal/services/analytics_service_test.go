package services_test

import (
	"testing"
	"time"

	"linkbio/internal/models"
	"linkbio/internal/repositories"
	"linkbio/internal/services"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func newAnalyticsFixture() (*services.AnalyticsService, *repositories.MockLinkRepository, *repositories.MockCTARepository) {
	linkRepo := repositories.NewMockLinkRepository()
	ctaRepo := repositories.NewMockCTARepository()
	return services.NewAnalyticsService(linkRepo, ctaRepo), linkRepo, ctaRepo
}

func TestAnalyticsService_Totals(t *testing.T) {
	service, linkRepo, _ := newAnalyticsFixture()

	assert.NoError(t, linkRepo.Create(&models.Link{
		UserID: "user-1", Type: models.LinkTypeLink, Title: "Blog", URL: "https://example.com", Clicks: 5,
	}))
	assert.NoError(t, linkRepo.Create(&models.Link{
		UserID: "user-1", Type: models.LinkTypeShop, Title: "Store", URL: "https://shop.example.com", Clicks: 3,
	}))
	// Another user's links must not leak into the report.
	assert.NoError(t, linkRepo.Create(&models.Link{
		UserID: "user-2", Type: models.LinkTypeLink, Title: "Other", URL: "https://other.example.com", Clicks: 9,
	}))

	report, err := service.ComputeAnalytics("user-1", nil)
	assert.NoError(t, err)
	assert.Equal(t, 5, report.LinkClicks)
	assert.Equal(t, 3, report.ShopClicks)
	assert.Equal(t, 0, report.CTAClicks)
	assert.Len(t, report.ClicksByLink, 2)
}

func TestAnalyticsService_ZeroState(t *testing.T) {
	service, _, _ := newAnalyticsFixture()

	report, err := service.ComputeAnalytics("brand-new-user", nil)
	assert.NoError(t, err)

	assert.Equal(t, 0, report.LinkClicks)
	assert.Equal(t, 0, report.ShopClicks)
	assert.Equal(t, 0, report.CTAClicks)

	// Every device bucket is present at zero; nothing is omitted.
	assert.Len(t, report.TrafficByDevice, 6)
	for _, platform := range models.AllPlatforms {
		count, ok := report.TrafficByDevice[platform]
		assert.True(t, ok, "missing bucket %s", platform)
		assert.Equal(t, 0, count)
	}

	assert.Empty(t, report.Sites)
	assert.Empty(t, report.FilteredSites)
	assert.Empty(t, report.ClicksByLink)
	assert.Empty(t, report.LinkClicksOverTime)
	assert.Empty(t, report.ShopClicksOverTime)
	assert.Empty(t, report.CTAClicksOverTime)
}

func TestAnalyticsService_TrafficByDeviceAndSites(t *testing.T) {
	service, linkRepo, _ := newAnalyticsFixture()

	assert.NoError(t, linkRepo.Create(&models.Link{
		UserID: "user-1", Type: models.LinkTypeLink, Title: "Blog", URL: "https://example.com", Clicks: 2,
		ClickHistory: []models.ClickEvent{
			{VisitorID: "v1", Date: date(2024, time.January, 5), Platform: models.PlatformWindows, App: "Other"},
			{VisitorID: "v2", Date: date(2024, time.January, 6), Platform: models.PlatformIOS, App: "Other"},
		},
	}))
	// A shop link sharing the title "Blog" merges into the same sites key.
	assert.NoError(t, linkRepo.Create(&models.Link{
		UserID: "user-1", Type: models.LinkTypeShop, Title: "Blog", URL: "https://shop.example.com", Clicks: 1,
		ClickHistory: []models.ClickEvent{
			{VisitorID: "v1", Date: date(2024, time.February, 1), Platform: models.PlatformWindows, App: "Other"},
		},
	}))

	report, err := service.ComputeAnalytics("user-1", nil)
	assert.NoError(t, err)

	assert.Equal(t, 2, report.TrafficByDevice[models.PlatformWindows])
	assert.Equal(t, 1, report.TrafficByDevice[models.PlatformIOS])
	assert.Equal(t, 0, report.TrafficByDevice[models.PlatformAndroid])

	assert.Equal(t, map[string]int{"Blog": 3}, report.Sites)
	assert.Equal(t, report.Sites, report.FilteredSites)

	assert.Equal(t, map[string]int{"Jan": 2}, report.LinkClicksOverTime)
	assert.Equal(t, map[string]int{"Feb": 1}, report.ShopClicksOverTime)
	assert.Equal(t, report.LinkClicksOverTime, report.ClicksOverTime)
}

func TestAnalyticsService_DateFiltering(t *testing.T) {
	service, linkRepo, _ := newAnalyticsFixture()

	assert.NoError(t, linkRepo.Create(&models.Link{
		UserID: "user-1", Type: models.LinkTypeLink, Title: "A", URL: "https://a.example.com", Clicks: 2,
		ClickHistory: []models.ClickEvent{
			{VisitorID: "v1", Date: date(2024, time.January, 5), Platform: models.PlatformWindows, App: "Other"},
			{VisitorID: "v2", Date: date(2024, time.March, 5), Platform: models.PlatformLinux, App: "Other"},
		},
	}))

	dateRange := &services.DateRange{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC),
	}
	report, err := service.ComputeAnalytics("user-1", dateRange)
	assert.NoError(t, err)

	// Only filteredSites honors the range; everything else stays all-time.
	assert.Equal(t, map[string]int{"A": 1}, report.FilteredSites)
	assert.Equal(t, map[string]int{"A": 2}, report.Sites)
	assert.Equal(t, 2, report.LinkClicks)
	assert.Equal(t, 1, report.TrafficByDevice[models.PlatformWindows])
	assert.Equal(t, 1, report.TrafficByDevice[models.PlatformLinux])
}

func TestAnalyticsService_MonthBucketsMergeAcrossYears(t *testing.T) {
	service, linkRepo, ctaRepo := newAnalyticsFixture()

	assert.NoError(t, linkRepo.Create(&models.Link{
		UserID: "user-1", Type: models.LinkTypeLink, Title: "Blog", URL: "https://example.com", Clicks: 2,
		ClickHistory: []models.ClickEvent{
			{VisitorID: "v1", Date: date(2023, time.June, 1), Platform: models.PlatformWindows, App: "Other"},
			{VisitorID: "v2", Date: date(2024, time.June, 1), Platform: models.PlatformWindows, App: "Other"},
		},
	}))

	_, err := ctaRepo.RecordClick(&models.CTAClick{
		UserID: "user-1", VisitorID: "v1", Date: date(2023, time.June, 2), Platform: models.PlatformMac,
	})
	assert.NoError(t, err)
	_, err = ctaRepo.RecordClick(&models.CTAClick{
		UserID: "user-1", VisitorID: "v2", Date: date(2024, time.June, 2), Platform: models.PlatformMac,
	})
	assert.NoError(t, err)

	report, err := service.ComputeAnalytics("user-1", nil)
	assert.NoError(t, err)

	// Buckets key on month name only, so different years merge.
	assert.Equal(t, map[string]int{"Jun": 2}, report.LinkClicksOverTime)
	assert.Equal(t, map[string]int{"Jun": 2}, report.CTAClicksOverTime)
}
