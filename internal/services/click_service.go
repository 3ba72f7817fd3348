package services

import (
	"encoding/json"
	"log"
	"time"

	"linkbio/internal/models"
	"linkbio/internal/repositories"
)

// EventPublisher publishes accepted click events for downstream consumers.
// It is satisfied by the RabbitMQ client; a nil publisher disables the
// stream.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// ClickService records visitor clicks against links and CTA clicks against
// user pages. Recording is deduplicated: a (visitor, platform) pair counts
// at most once per link, and a (user, visitor, platform) triple at most
// once for CTA.
type ClickService struct {
	linkRepo  repositories.LinkRepository
	ctaRepo   repositories.CTARepository
	publisher EventPublisher
}

// NewClickService creates a new ClickService.
func NewClickService(linkRepo repositories.LinkRepository, ctaRepo repositories.CTARepository, publisher EventPublisher) *ClickService {
	return &ClickService{
		linkRepo:  linkRepo,
		ctaRepo:   ctaRepo,
		publisher: publisher,
	}
}

// RecordLinkClick records a visit to a link. Visitors without a fingerprint
// share the "anonymous" identity; the platform is derived from the caller's
// user-agent string. The returned link reflects the post-recording state
// whether or not the click was accepted.
func (s *ClickService) RecordLinkClick(linkID, visitorID, userAgent, appName string) (*models.Link, error) {
	if visitorID == "" {
		visitorID = "anonymous"
	}
	if appName == "" {
		appName = "Other"
	}

	event := models.ClickEvent{
		VisitorID: visitorID,
		Date:      time.Now(),
		Platform:  models.DerivePlatform(userAgent),
		App:       appName,
	}

	link, recorded, err := s.linkRepo.RecordClick(linkID, event)
	if err != nil {
		return nil, err
	}

	if recorded {
		s.publishEvent("click.link", map[string]interface{}{
			"linkID":    link.ID,
			"userID":    link.UserID,
			"visitorID": event.VisitorID,
			"platform":  event.Platform,
			"app":       event.App,
			"date":      event.Date,
		})
	}
	return link, nil
}

// RecordCTAClick records a "connect" action on a user's public page. It
// returns whether a new CTA click was stored.
func (s *ClickService) RecordCTAClick(userID, visitorID, userAgent string) (bool, error) {
	if visitorID == "" {
		visitorID = "anonymous"
	}

	click := &models.CTAClick{
		UserID:    userID,
		VisitorID: visitorID,
		Date:      time.Now(),
		Platform:  models.DerivePlatform(userAgent),
	}

	recorded, err := s.ctaRepo.RecordClick(click)
	if err != nil {
		return false, err
	}

	if recorded {
		s.publishEvent("click.cta", map[string]interface{}{
			"userID":    click.UserID,
			"visitorID": click.VisitorID,
			"platform":  click.Platform,
			"date":      click.Date,
		})
	}
	return recorded, nil
}

// publishEvent sends the event to the click stream. Publishing is best
// effort; a failure never fails the recording request.
func (s *ClickService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish(routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}
