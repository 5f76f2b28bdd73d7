package serviceImp

import (
	"context"
	"unicode/utf8"

	"growlog/entities"
	"growlog/pkg/apperr"
	"growlog/pkg/nutrient/importer"
	repo "growlog/pkg/nutrient/repository"
	"growlog/pkg/nutrient/service"
)

// PageFetcher reads a product page.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*importer.Page, error)
}

type nutrientSvc struct {
	r     repo.NutrientRepository
	pages PageFetcher
}

func NewNutrientService(r repo.NutrientRepository, pages PageFetcher) service.NutrientService {
	return &nutrientSvc{r: r, pages: pages}
}

func (s *nutrientSvc) Create(n *entities.Nutrient) (*entities.Nutrient, error) {
	n.ID = 0
	n.ApplyDefaults()
	if err := entities.Validate(n); err != nil {
		return nil, err
	}
	if err := s.r.Create(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *nutrientSvc) Get(id uint) (*entities.Nutrient, error) { return s.r.FindByID(id) }

func (s *nutrientSvc) List() ([]entities.Nutrient, error) { return s.r.List() }

func (s *nutrientSvc) Update(id uint, p service.NutrientPatch) (*entities.Nutrient, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	p.Apply(cur)
	if err := entities.Validate(cur); err != nil {
		return nil, err
	}
	return cur, s.r.Update(cur)
}

// SetImage points the nutrient at a stored image; an empty key restores
// the placeholder.
func (s *nutrientSvc) SetImage(id uint, key string) (*entities.Nutrient, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	cur.FeaturedImage = key
	cur.ApplyDefaults()
	return cur, s.r.Update(cur)
}

func (s *nutrientSvc) Delete(id uint) error { return s.r.Delete(id) }

func (s *nutrientSvc) Import(ctx context.Context, req service.ImportRequest) (*entities.Nutrient, error) {
	if req.URL == "" {
		return nil, apperr.NewValidation("url", "this field is required")
	}
	page, err := s.pages.Fetch(ctx, req.URL)
	if err != nil {
		return nil, err
	}
	return s.Create(&entities.Nutrient{
		Name:         truncate(page.Name, 80),
		Brand:        req.Brand,
		NutrientType: req.NutrientType,
		Detail:       page.Detail,
	})
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
