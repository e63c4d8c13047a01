package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Session states reported to the client so the login screen can pick the
// right sub-view (credentials form, access denied, or OTP form).
const (
	StateAnonymous   = "anonymous"
	StateNonAdmin    = "non_admin"
	StateOTPRequired = "otp_required"
	StateVerified    = "verified"
)

// EmailFromCtx extracts the account email from the JWT placed in locals by
// the jwt middleware.
func EmailFromCtx(c *fiber.Ctx) (string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", errors.New("missing token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("unexpected claims type")
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", errors.New("token has no email claim")
	}
	return email, nil
}

// RequireVerifiedAdmin rejects every session that is not a fully OTP-verified
// admin. Pending-OTP and non-admin sessions get the state back so the client
// can route to the matching login sub-view.
func RequireVerifiedAdmin(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "state": StateAnonymous})
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "state": StateAnonymous})
	}

	admin, _ := claims["admin"].(bool)
	if !admin {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "access denied", "state": StateNonAdmin})
	}
	verified, _ := claims["otp_verified"].(bool)
	if !verified {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "otp verification required", "state": StateOTPRequired})
	}
	return c.Next()
}
