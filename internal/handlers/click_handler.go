package handlers

import (
	"log"
	"strings"

	"linkbio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ClickHandler handles the anonymous visitor endpoints that record link and
// CTA clicks. No authentication: these are invoked from public pages.
type ClickHandler struct {
	service *services.ClickService
}

// NewClickHandler creates a new ClickHandler.
func NewClickHandler(service *services.ClickService) *ClickHandler {
	return &ClickHandler{
		service: service,
	}
}

// RegisterRoutes registers the public click recording routes.
func (h *ClickHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/links/:id/click", h.HandleLinkClick)
	router.Post("/cta/click/:userId", h.HandleCTAClick)
}

// clickRequest is the optional body of a link click, carrying the
// originating app name.
type clickRequest struct {
	App string `json:"app"`
}

// HandleLinkClick records a visit to a link and returns the link's current
// state. Repeat clicks from the same (visitor, platform) pair are accepted
// but not counted.
func (h *ClickHandler) HandleLinkClick(c *fiber.Ctx) error {
	linkID := c.Params("id")

	var req clickRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			log.Printf("Error parsing click request body: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}
	}

	link, err := h.service.RecordLinkClick(linkID, visitorIDFromRequest(c), c.Get("User-Agent"), req.App)
	if err != nil {
		log.Printf("Error recording click for link %s: %v", linkID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Link not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not record click",
			"error":   err.Error(),
		})
	}
	return c.JSON(link)
}

// HandleCTAClick records a "connect" action against a user's page.
func (h *ClickHandler) HandleCTAClick(c *fiber.Ctx) error {
	userID := c.Params("userId")

	if _, err := h.service.RecordCTAClick(userID, visitorIDFromRequest(c), c.Get("User-Agent")); err != nil {
		log.Printf("Error recording CTA click for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not record CTA click",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "CTA click recorded",
	})
}
