package handlers

import (
	"log"
	"strings"

	"linkbio/internal/models"
	"linkbio/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// LinkHandler handles HTTP requests for the owner's links.
type LinkHandler struct {
	service  *services.LinkService
	validate *validator.Validate
}

// NewLinkHandler creates a new LinkHandler.
func NewLinkHandler(service *services.LinkService) *LinkHandler {
	return &LinkHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the link management routes. All of them require
// authentication.
func (h *LinkHandler) RegisterRoutes(router fiber.Router) {
	linkRoutes := router.Group("/links")
	linkRoutes.Get("/", h.HandleGetLinks)
	linkRoutes.Post("/", h.HandleCreateLink)
	linkRoutes.Put("/:id", h.HandleUpdateLink)
	linkRoutes.Delete("/:id", h.HandleDeleteLink)
}

// HandleGetLinks retrieves all links owned by the caller.
func (h *LinkHandler) HandleGetLinks(c *fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing authenticated user",
		})
	}

	links, err := h.service.GetUserLinks(userID)
	if err != nil {
		log.Printf("Error getting links for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve links",
			"error":   err.Error(),
		})
	}
	return c.JSON(links)
}

// CreateLinkRequest represents the request body for link creation. Only
// these fields are client-settable; the ID, the click counter and the click
// ledger are server-managed.
type CreateLinkRequest struct {
	Type     string `json:"type" validate:"required,oneof=link shop"`
	Title    string `json:"title" validate:"required,max=200"`
	URL      string `json:"url" validate:"required,url"`
	IsActive bool   `json:"is_active"`
}

// HandleCreateLink creates a new link for the caller.
func (h *LinkHandler) HandleCreateLink(c *fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing authenticated user",
		})
	}

	var req CreateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing link request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	link := models.Link{
		UserID:   userID,
		Type:     req.Type,
		Title:    req.Title,
		URL:      req.URL,
		IsActive: req.IsActive,
	}

	if err := h.service.CreateLink(&link); err != nil {
		log.Printf("Error creating link for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create link",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(link)
}

// UpdateLinkRequest represents the request body for link updates.
type UpdateLinkRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	URL   string `json:"url" validate:"required,url"`
}

// HandleUpdateLink changes a link's title and URL.
func (h *LinkHandler) HandleUpdateLink(c *fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing authenticated user",
		})
	}
	linkID := c.Params("id")

	var req UpdateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing link update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	link, err := h.service.UpdateLink(linkID, userID, req.Title, req.URL)
	if err != nil {
		log.Printf("Error updating link %s: %v", linkID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Link not found or not authorized",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update link",
			"error":   err.Error(),
		})
	}
	return c.JSON(link)
}

// HandleDeleteLink removes a link owned by the caller.
func (h *LinkHandler) HandleDeleteLink(c *fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing authenticated user",
		})
	}
	linkID := c.Params("id")

	if err := h.service.DeleteLink(linkID, userID); err != nil {
		log.Printf("Error deleting link %s: %v", linkID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Link not found or not authorized",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete link",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Link deleted",
	})
}
