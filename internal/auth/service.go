package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/imc-metrology/catalog-backend/internal/adminuser"
)

const tokenTTL = 72 * time.Hour

// SignInResult describes the state reached after a successful credential
// check. Code is the plaintext OTP for delivery-simulation purposes only; the
// handler decides whether it ever leaves the process.
type SignInResult struct {
	Token       string
	IsAdmin     bool
	OTPRequired bool
	ChallengeID string
	Code        string
}

type Service struct {
	accounts  AccountRepository
	admins    *adminuser.Service
	otp       *OTPStore
	mailer    Sender
	jwtSecret []byte
}

func NewService(accounts AccountRepository, admins *adminuser.Service, otp *OTPStore, mailer Sender, jwtSecret []byte) *Service {
	return &Service{accounts: accounts, admins: admins, otp: otp, mailer: mailer, jwtSecret: jwtSecret}
}

// SignIn validates credentials, checks the allow-list, and for admins starts
// the OTP challenge. Failed credentials leave no state behind.
func (s *Service) SignIn(email, password string) (SignInResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := s.accounts.GetByEmail(email)
	if err != nil {
		return SignInResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return SignInResult{}, ErrInvalidCredentials
	}

	if !s.admins.IsAdmin(email) {
		token, err := s.issueToken(email, false, false)
		if err != nil {
			return SignInResult{}, err
		}
		return SignInResult{Token: token, IsAdmin: false}, nil
	}

	code, challengeID, err := s.otp.Generate(email)
	if err != nil {
		return SignInResult{}, err
	}
	if err := s.mailer.SendOTP(email, code); err != nil {
		// keep the challenge alive; the operator can resend
		return SignInResult{}, err
	}

	token, err := s.issueToken(email, true, false)
	if err != nil {
		return SignInResult{}, err
	}
	return SignInResult{Token: token, IsAdmin: true, OTPRequired: true, ChallengeID: challengeID, Code: code}, nil
}

// VerifyOTP exchanges a pending admin token plus a correct, unexpired code
// for a fully verified token.
func (s *Service) VerifyOTP(email, code string) (string, error) {
	if err := s.otp.Verify(email, code); err != nil {
		return "", err
	}
	return s.issueToken(email, true, true)
}

// ResendOTP regenerates the code and restarts the 5-minute window.
func (s *Service) ResendOTP(email string) (SignInResult, error) {
	if !s.admins.IsAdmin(email) {
		return SignInResult{}, ErrNotFound
	}
	code, challengeID, err := s.otp.Generate(email)
	if err != nil {
		return SignInResult{}, err
	}
	if err := s.mailer.SendOTP(email, code); err != nil {
		return SignInResult{}, err
	}
	return SignInResult{IsAdmin: true, OTPRequired: true, ChallengeID: challengeID, Code: code}, nil
}

// SignOut drops any pending OTP state. Tokens are stateless and simply get
// discarded by the client.
func (s *Service) SignOut(email string) {
	s.otp.Clear(email)
}

func (s *Service) issueToken(email string, admin, otpVerified bool) (string, error) {
	claims := jwt.MapClaims{
		"email":        email,
		"admin":        admin,
		"otp_verified": otpVerified,
		"exp":          time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
