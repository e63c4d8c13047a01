package product

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Product, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByCategoryID(categoryID int) ([]Product, error) {
	return s.repo.ListByCategoryID(categoryID)
}

func (s *Service) ListByCategoryIDs(ids []int) ([]Product, error) {
	return s.repo.ListByCategoryIDs(ids)
}

func (s *Service) Create(p Product) (Product, error) {
	normalize(&p)
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	normalize(&p)
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *Service) Upsert(p Product) error {
	normalize(&p)
	return s.repo.Upsert(p)
}

func normalize(p *Product) {
	if p.Price != nil {
		n := NormalizePrice(*p.Price)
		p.Price = &n
	}
}
