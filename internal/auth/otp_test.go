package auth

import (
	"testing"
	"time"
)

func TestOTPGenerateAndVerify(t *testing.T) {
	s := NewOTPStore()

	code, challengeID, err := s.Generate("admin@imc.co.th")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", code)
	}
	if challengeID == "" {
		t.Fatalf("expected a challenge id")
	}

	if err := s.Verify("admin@imc.co.th", code); err != nil {
		t.Fatalf("correct code rejected: %v", err)
	}
	// a successful verification consumes the entry
	if err := s.Verify("admin@imc.co.th", code); err != ErrOTPNotFound {
		t.Fatalf("expected ErrOTPNotFound on reuse, got %v", err)
	}
}

func TestOTPWrongCode(t *testing.T) {
	s := NewOTPStore()

	code, _, err := s.Generate("admin@imc.co.th")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	if err := s.Verify("admin@imc.co.th", wrong); err != ErrOTPInvalid {
		t.Fatalf("expected ErrOTPInvalid, got %v", err)
	}
	// a wrong attempt does not consume the pending code
	if err := s.Verify("admin@imc.co.th", code); err != nil {
		t.Fatalf("correct code rejected after wrong attempt: %v", err)
	}
}

func TestOTPExpiry(t *testing.T) {
	s := NewOTPStore()
	base := time.Now()
	s.now = func() time.Time { return base }

	code, _, err := s.Generate("admin@imc.co.th")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	// expiry is checked before correctness: a right-but-stale code says expired
	s.now = func() time.Time { return base.Add(OTPTTL + time.Second) }
	if err := s.Verify("admin@imc.co.th", code); err != ErrOTPExpired {
		t.Fatalf("expected ErrOTPExpired, got %v", err)
	}
}

func TestOTPRegenerateRestartsWindow(t *testing.T) {
	s := NewOTPStore()
	base := time.Now()
	s.now = func() time.Time { return base }

	first, firstChallenge, err := s.Generate("admin@imc.co.th")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	s.now = func() time.Time { return base.Add(4 * time.Minute) }
	second, secondChallenge, err := s.Generate("admin@imc.co.th")
	if err != nil {
		t.Fatalf("regenerate failed: %v", err)
	}
	if firstChallenge == secondChallenge {
		t.Fatalf("expected a fresh challenge id on regenerate")
	}

	// 6 minutes after the first code but within the second code's window
	s.now = func() time.Time { return base.Add(6 * time.Minute) }
	if first != second {
		if err := s.Verify("admin@imc.co.th", first); err != ErrOTPInvalid {
			t.Fatalf("replaced code should be invalid, got %v", err)
		}
	}
	if err := s.Verify("admin@imc.co.th", second); err != nil {
		t.Fatalf("fresh code rejected: %v", err)
	}
}

func TestOTPClear(t *testing.T) {
	s := NewOTPStore()

	code, _, err := s.Generate("admin@imc.co.th")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	s.Clear("admin@imc.co.th")
	if err := s.Verify("admin@imc.co.th", code); err != ErrOTPNotFound {
		t.Fatalf("expected ErrOTPNotFound after clear, got %v", err)
	}
}
