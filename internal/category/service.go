package category

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByBrand(brandID string) ([]Category, error) {
	return s.repo.ListByBrand(brandID)
}

func (s *Service) GetByID(id int) (Category, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(cat Category) (Category, error) {
	normalizeItems(&cat)
	return s.repo.Create(cat)
}

func (s *Service) Update(id int, cat Category) (Category, error) {
	normalizeItems(&cat)
	return s.repo.Update(id, cat)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

// normalizeItems rewrites the stored item strings as the canonical
// ", "-joined form so that SplitItems/JoinItems round-trip is the identity.
func normalizeItems(cat *Category) {
	for _, items := range []*string{cat.ItemsEN, cat.ItemsTH} {
		if items == nil || *items == "" {
			continue
		}
		*items = JoinItems(SplitItems(*items))
	}
}
