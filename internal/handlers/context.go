package handlers

import "github.com/gofiber/fiber/v2"

// userIDFromContext pulls the authenticated user ID stored by the JWT
// middleware.
func userIDFromContext(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals("user_id").(string)
	return userID, ok && userID != ""
}

// visitorIDFromRequest extracts the caller-supplied visitor fingerprint:
// header first, cookie second, empty otherwise (the recorder substitutes
// "anonymous").
func visitorIDFromRequest(c *fiber.Ctx) string {
	if visitorID := c.Get("X-Visitor-Id"); visitorID != "" {
		return visitorID
	}
	return c.Cookies("visitorId")
}
