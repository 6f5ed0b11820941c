package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionCookie is the cookie carrying the opaque per-client session id.
const SessionCookie = "session_id"

// SessionLocal is the fiber.Ctx locals key the session id is exposed
// under for downstream handlers.
const SessionLocal = "session_id"

// Session is a Fiber middleware that guarantees every request has a
// session id: it reads the session cookie, minting and setting a fresh
// uuid when missing, and exposes the id via c.Locals. The id only keys
// the edit-mode marker, so there is nothing to sign or verify.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(SessionCookie)
		if sessionID == "" {
			sessionID = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    sessionID,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(SessionLocal, sessionID)
		return c.Next()
	}
}

// SessionID extracts the session id placed in locals by Session.
func SessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(SessionLocal).(string); ok {
		return id
	}
	return ""
}
