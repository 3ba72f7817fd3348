package handlers

import (
	"io"
	"log"
	"strings"

	"linkbio/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// maxImageSize caps uploaded profile images at 50MB.
const maxImageSize = 50 * 1024 * 1024

// ProfileHandler handles profile appearance, username onboarding and the
// public page view.
type ProfileHandler struct {
	service  *services.ProfileService
	validate *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public profile route.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/public/:userId", h.HandleGetPublicProfile)
}

// RegisterProtectedRoutes registers the owner-facing profile routes.
func (h *ProfileHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Get("/profile", h.HandleGetProfile)
	router.Put("/profile", h.HandleUpdateProfile)
	router.Post("/username", h.HandleSaveUsername)
}

// HandleGetProfile returns the caller's profile, creating it with defaults
// on first access.
func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing authenticated user",
		})
	}

	view, err := h.service.GetProfile(userID)
	if err != nil {
		log.Printf("Error getting profile for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(view)
}

// HandleUpdateProfile applies appearance changes from a multipart form. An
// "image" file part uploads a new profile image; removeImage=true clears
// the current one.
func (h *ProfileHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing authenticated user",
		})
	}

	update := services.ProfileUpdate{
		Username:        c.FormValue("username"),
		Bio:             c.FormValue("bio"),
		BackgroundColor: c.FormValue("backgroundColor"),
		Theme:           c.FormValue("theme"),
		ButtonStyle:     c.FormValue("buttonStyle"),
		ButtonColor:     c.FormValue("buttonColor"),
		ButtonFontColor: c.FormValue("buttonFontColor"),
		Layout:          c.FormValue("layout"),
		Font:            c.FormValue("font"),
		RemoveImage:     c.FormValue("removeImage") == "true",
	}

	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		if fileHeader.Size > maxImageSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Image exceeds the 50MB size limit",
			})
		}
		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Could not read uploaded image",
				"error":   err.Error(),
			})
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Could not read uploaded image",
				"error":   err.Error(),
			})
		}
		update.Image = data
		update.ImageMime = fileHeader.Header.Get("Content-Type")
	}

	view, err := h.service.UpdateProfile(userID, update)
	if err != nil {
		log.Printf("Error updating profile for user %s: %v", userID, err)
		if strings.Contains(err.Error(), "already exists") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Username already exists",
			})
		}
		if strings.Contains(err.Error(), "unsupported content type") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Only images (jpeg, jpg, png) are allowed",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update profile",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Profile updated",
		"username": view.Username,
		"profile":  view.Profile,
	})
}

// SaveUsernameRequest represents the onboarding request body.
type SaveUsernameRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Category string `json:"category" validate:"required,max=100"`
}

// HandleSaveUsername claims a username and category for the caller.
func (h *ProfileHandler) HandleSaveUsername(c *fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing authenticated user",
		})
	}

	var req SaveUsernameRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing username request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.SaveUsername(userID, req.Username, req.Category); err != nil {
		log.Printf("Error saving username for user %s: %v", userID, err)
		if strings.Contains(err.Error(), "already exists") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Username already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error saving user",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "User saved successfully",
	})
}

// HandleGetPublicProfile returns the anonymous visitor view of a user's
// page.
func (h *ProfileHandler) HandleGetPublicProfile(c *fiber.Ctx) error {
	userID := c.Params("userId")

	profile, err := h.service.GetPublicProfile(userID)
	if err != nil {
		log.Printf("Error getting public profile for user %s: %v", userID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve public profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(profile)
}
