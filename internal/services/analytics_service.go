package services

import (
	"time"

	"linkbio/internal/models"
	"linkbio/internal/repositories"
)

// LinkClickCount is one row of the per-link click breakdown.
type LinkClickCount struct {
	Title  string `json:"title"`
	Clicks int    `json:"clicks"`
}

// AnalyticsReport is the fixed response schema of the analytics endpoint.
// Every field is always present: maps are empty rather than nil-omitted,
// and trafficByDevice carries all six platform buckets even at zero.
type AnalyticsReport struct {
	LinkClicks         int              `json:"linkClicks"`
	ShopClicks         int              `json:"shopClicks"`
	CTAClicks          int              `json:"ctaClicks"`
	TrafficByDevice    map[string]int   `json:"trafficByDevice"`
	Sites              map[string]int   `json:"sites"`
	ClicksByLink       []LinkClickCount `json:"clicksByLink"`
	ClicksOverTime     map[string]int   `json:"clicksOverTime"`
	FilteredSites      map[string]int   `json:"filteredSites"`
	LinkClicksOverTime map[string]int   `json:"linkClicksOverTime"`
	ShopClicksOverTime map[string]int   `json:"shopClicksOverTime"`
	CTAClicksOverTime  map[string]int   `json:"ctaClicksOverTime"`
}

// DateRange bounds the filteredSites computation. Both ends are inclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the range, ends included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// AnalyticsService computes a user's click statistics as a pure read-side
// fold over their links' ledgers and CTA clicks. Nothing is cached or
// persisted; every call recomputes from stored state.
type AnalyticsService struct {
	linkRepo repositories.LinkRepository
	ctaRepo  repositories.CTARepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(linkRepo repositories.LinkRepository, ctaRepo repositories.CTARepository) *AnalyticsService {
	return &AnalyticsService{
		linkRepo: linkRepo,
		ctaRepo:  ctaRepo,
	}
}

// monthBucket returns the abbreviated en-US month name for the timestamp.
// Buckets deliberately ignore the year, so events from different years
// land in the same bucket. Known product quirk, kept as is.
func monthBucket(t time.Time) string {
	return t.Format("Jan")
}

// ComputeAnalytics builds the full report for the user. A nil dateRange
// leaves filteredSites equal to sites; a supplied range restricts only
// filteredSites, never the totals or the device/month breakdowns.
func (s *AnalyticsService) ComputeAnalytics(userID string, dateRange *DateRange) (*AnalyticsReport, error) {
	links, err := s.linkRepo.GetAllByUser(userID)
	if err != nil {
		return nil, err
	}
	ctaClicks, err := s.ctaRepo.GetAllByUser(userID)
	if err != nil {
		return nil, err
	}

	report := &AnalyticsReport{
		TrafficByDevice:    make(map[string]int, len(models.AllPlatforms)),
		Sites:              make(map[string]int),
		ClicksByLink:       make([]LinkClickCount, 0, len(links)),
		LinkClicksOverTime: make(map[string]int),
		ShopClicksOverTime: make(map[string]int),
		CTAClicksOverTime:  make(map[string]int),
	}
	for _, platform := range models.AllPlatforms {
		report.TrafficByDevice[platform] = 0
	}

	for _, link := range links {
		switch link.Type {
		case models.LinkTypeLink:
			report.LinkClicks += link.Clicks
		case models.LinkTypeShop:
			report.ShopClicks += link.Clicks
		}
		report.ClicksByLink = append(report.ClicksByLink, LinkClickCount{
			Title:  link.Title,
			Clicks: link.Clicks,
		})

		for _, click := range link.ClickHistory {
			report.TrafficByDevice[click.Platform]++
			// Sites group by title, so same-titled links merge here.
			report.Sites[link.Title]++
			switch link.Type {
			case models.LinkTypeLink:
				report.LinkClicksOverTime[monthBucket(click.Date)]++
			case models.LinkTypeShop:
				report.ShopClicksOverTime[monthBucket(click.Date)]++
			}
		}
	}

	report.CTAClicks = len(ctaClicks)
	for _, click := range ctaClicks {
		report.CTAClicksOverTime[monthBucket(click.Date)]++
	}

	// The response historically exposed the link series under both names.
	report.ClicksOverTime = report.LinkClicksOverTime

	report.FilteredSites = report.Sites
	if dateRange != nil {
		filtered := make(map[string]int)
		for _, link := range links {
			for _, click := range link.ClickHistory {
				if dateRange.Contains(click.Date) {
					filtered[link.Title]++
				}
			}
		}
		report.FilteredSites = filtered
	}

	return report, nil
}
