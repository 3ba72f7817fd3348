package services_test

import (
	"testing"

	"linkbio/internal/models"
	"linkbio/internal/repositories"
	"linkbio/internal/services"

	"github.com/stretchr/testify/assert"
)

const (
	windowsAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	linuxAgent   = "Mozilla/5.0 (X11; Linux x86_64)"
	androidAgent = "Mozilla/5.0 (Android 14; Mobile)"
)

// recordingPublisher captures published click events for assertions.
type recordingPublisher struct {
	published []string
}

func (p *recordingPublisher) Publish(routingKey string, body []byte) error {
	p.published = append(p.published, routingKey)
	return nil
}

func newClickFixture() (*services.ClickService, *repositories.MockLinkRepository, *recordingPublisher) {
	linkRepo := repositories.NewMockLinkRepository()
	ctaRepo := repositories.NewMockCTARepository()
	publisher := &recordingPublisher{}
	return services.NewClickService(linkRepo, ctaRepo, publisher), linkRepo, publisher
}

func TestClickService_RecordLinkClick_DedupIdempotence(t *testing.T) {
	service, linkRepo, publisher := newClickFixture()

	link := &models.Link{UserID: "user-1", Type: models.LinkTypeLink, Title: "Blog", URL: "https://example.com"}
	assert.NoError(t, linkRepo.Create(link))

	// Repeated clicks from the same (visitor, platform) pair count once.
	for i := 0; i < 5; i++ {
		updated, err := service.RecordLinkClick(link.ID, "visitor-1", windowsAgent, "")
		assert.NoError(t, err)
		assert.Equal(t, 1, updated.Clicks)
		assert.Len(t, updated.ClickHistory, 1)
	}
	assert.Len(t, publisher.published, 1)

	// Same visitor on a different platform counts again.
	updated, err := service.RecordLinkClick(link.ID, "visitor-1", linuxAgent, "")
	assert.NoError(t, err)
	assert.Equal(t, 2, updated.Clicks)

	// A different visitor on an already-seen platform counts too.
	updated, err = service.RecordLinkClick(link.ID, "visitor-2", windowsAgent, "")
	assert.NoError(t, err)
	assert.Equal(t, 3, updated.Clicks)
	assert.Len(t, publisher.published, 3)
}

func TestClickService_RecordLinkClick_Defaults(t *testing.T) {
	service, linkRepo, _ := newClickFixture()

	link := &models.Link{UserID: "user-1", Type: models.LinkTypeLink, Title: "Blog", URL: "https://example.com"}
	assert.NoError(t, linkRepo.Create(link))

	// Missing fingerprint and app name fall back to the documented
	// defaults; unknown agent lands in Others.
	updated, err := service.RecordLinkClick(link.ID, "", "curl/8.4.0", "")
	assert.NoError(t, err)
	assert.Len(t, updated.ClickHistory, 1)
	event := updated.ClickHistory[0]
	assert.Equal(t, "anonymous", event.VisitorID)
	assert.Equal(t, models.PlatformOthers, event.Platform)
	assert.Equal(t, "Other", event.App)
}

func TestClickService_RecordLinkClick_NotFound(t *testing.T) {
	service, _, publisher := newClickFixture()

	link, err := service.RecordLinkClick("missing-id", "visitor-1", windowsAgent, "")
	assert.Error(t, err)
	assert.Nil(t, link)
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, publisher.published)
}

func TestClickService_RecordCTAClick_TripleUniqueness(t *testing.T) {
	linkRepo := repositories.NewMockLinkRepository()
	ctaRepo := repositories.NewMockCTARepository()
	service := services.NewClickService(linkRepo, ctaRepo, nil) // nil publisher must be safe

	// Two identical recordings store exactly one CTA click.
	recorded, err := service.RecordCTAClick("user-1", "visitor-1", androidAgent)
	assert.NoError(t, err)
	assert.True(t, recorded)

	recorded, err = service.RecordCTAClick("user-1", "visitor-1", androidAgent)
	assert.NoError(t, err)
	assert.False(t, recorded)

	clicks, err := ctaRepo.GetAllByUser("user-1")
	assert.NoError(t, err)
	assert.Len(t, clicks, 1)

	// A different platform from the same visitor stores a second one.
	recorded, err = service.RecordCTAClick("user-1", "visitor-1", windowsAgent)
	assert.NoError(t, err)
	assert.True(t, recorded)

	clicks, err = ctaRepo.GetAllByUser("user-1")
	assert.NoError(t, err)
	assert.Len(t, clicks, 2)
}
