package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
	// exposeOTP echoes the generated code in responses for local development
	// without a mail channel. The original demo showed the code on screen.
	exposeOTP bool
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyRequest struct {
	Code string `json:"code"`
}

func NewHandler(service *Service, exposeOTP bool) *Handler {
	return &Handler{service: service, exposeOTP: exposeOTP}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/auth/sign-in", h.signIn)
}

// RegisterAuthenticatedRoutes need a valid token but not a completed OTP:
// these are the transitions out of the pending state.
func (h *Handler) RegisterAuthenticatedRoutes(app *fiber.App) {
	app.Post("/api/auth/verify-otp", h.verifyOTP)
	app.Post("/api/auth/resend-otp", h.resendOTP)
	app.Post("/api/auth/sign-out", h.signOut)
}

func (h *Handler) signIn(c *fiber.Ctx) error {
	payload := new(signInRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.service.SignIn(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	resp := fiber.Map{
		"token":       result.Token,
		"isAdmin":     result.IsAdmin,
		"otpRequired": result.OTPRequired,
	}
	if result.OTPRequired {
		resp["challengeId"] = result.ChallengeID
		if h.exposeOTP {
			resp["devOtp"] = result.Code
		}
	}
	return c.JSON(resp)
}

func (h *Handler) verifyOTP(c *fiber.Ctx) error {
	email, err := EmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	payload := new(verifyRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	token, err := h.service.VerifyOTP(email, payload.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrOTPExpired):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "expired"})
		case errors.Is(err, ErrOTPInvalid):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid"})
		default:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"token": token, "verified": true})
}

func (h *Handler) resendOTP(c *fiber.Ctx) error {
	email, err := EmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	result, err := h.service.ResendOTP(email)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resp := fiber.Map{"otpRequired": true, "challengeId": result.ChallengeID}
	if h.exposeOTP {
		resp["devOtp"] = result.Code
	}
	return c.JSON(resp)
}

func (h *Handler) signOut(c *fiber.Ctx) error {
	email, err := EmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	h.service.SignOut(email)
	return c.JSON(fiber.Map{"success": true})
}
