package brand

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Brand, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Brand, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(b Brand) (Brand, error) {
	return s.repo.Create(b)
}

func (s *Service) Update(id string, b Brand) (Brand, error) {
	return s.repo.Update(id, b)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *Service) Upsert(b Brand) error {
	return s.repo.Upsert(b)
}
