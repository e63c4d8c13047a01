package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrOTPExpired  = errors.New("otp expired")
	ErrOTPInvalid  = errors.New("otp invalid")
	ErrOTPNotFound = errors.New("no otp pending")
)

// OTPTTL is the verification window measured from generation.
const OTPTTL = 5 * time.Minute

type otpEntry struct {
	hash        []byte
	createdAt   time.Time
	challengeID string
}

// OTPStore keeps pending second-factor codes server-side, bcrypt-hashed,
// keyed by account email. A process restart drops all pending codes, which
// just forces a fresh sign-in.
type OTPStore struct {
	mu      sync.Mutex
	entries map[string]otpEntry
	now     func() time.Time
}

func NewOTPStore() *OTPStore {
	return &OTPStore{entries: make(map[string]otpEntry), now: time.Now}
}

// Generate creates a fresh 6-digit code for the email, replacing any pending
// one and restarting the expiry window. The plaintext code is returned once,
// for delivery; only its hash is retained.
func (s *OTPStore) Generate(email string) (code, challengeID string, err error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", "", err
	}
	code = fmt.Sprintf("%06d", n.Int64()+100000)

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}

	challengeID = uuid.NewString()
	s.mu.Lock()
	s.entries[email] = otpEntry{hash: hash, createdAt: s.now(), challengeID: challengeID}
	s.mu.Unlock()
	return code, challengeID, nil
}

// Verify checks the submitted code. Expiry is checked before correctness so
// a stale-but-right code reports "expired", not "invalid". A successful
// verification consumes the entry.
func (s *OTPStore) Verify(email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[email]
	if !ok {
		return ErrOTPNotFound
	}
	if s.now().Sub(entry.createdAt) > OTPTTL {
		return ErrOTPExpired
	}
	if bcrypt.CompareHashAndPassword(entry.hash, []byte(code)) != nil {
		return ErrOTPInvalid
	}
	delete(s.entries, email)
	return nil
}

// Clear drops any pending code for the email (sign-out path).
func (s *OTPStore) Clear(email string) {
	s.mu.Lock()
	delete(s.entries, email)
	s.mu.Unlock()
}
