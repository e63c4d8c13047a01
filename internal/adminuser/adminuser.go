package adminuser

// AdminUser is an allow-list entry. A session whose email appears here may
// proceed to the OTP step of admin login.
type AdminUser struct {
	ID        int     `json:"id"`
	Email     string  `json:"email" validate:"required,email"`
	CreatedAt *string `json:"created_at,omitempty"`
}
