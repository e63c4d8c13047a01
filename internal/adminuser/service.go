package adminuser

import "strings"

// Service answers the single question the auth flow cares about: is this
// email allowed into the admin area. When the allow-list cannot be read (or
// reads empty on a fresh install) the configured fallback emails apply.
type Service struct {
	repo           Repository
	fallbackEmails []string
}

func NewService(repo Repository, fallbackEmails []string) *Service {
	return &Service{repo: repo, fallbackEmails: fallbackEmails}
}

func (s *Service) List() ([]AdminUser, error) {
	return s.repo.List()
}

func (s *Service) Create(email string) (AdminUser, error) {
	return s.repo.Create(email)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *Service) IsAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}

	users, err := s.repo.List()
	if err == nil && len(users) > 0 {
		for _, u := range users {
			if strings.ToLower(u.Email) == email {
				return true
			}
		}
		return false
	}

	for _, fallback := range s.fallbackEmails {
		if fallback == email {
			return true
		}
	}
	return false
}
