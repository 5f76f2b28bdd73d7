package serviceImp

import (
	"growlog/entities"
	repo "growlog/pkg/cycle/repository"
	"growlog/pkg/cycle/service"
	logrepo "growlog/pkg/dailylog/repository"
)

type cycleSvc struct {
	r    repo.CycleRepository
	logs logrepo.LogRepository
}

func NewCycleService(r repo.CycleRepository, logs logrepo.LogRepository) service.CycleService {
	return &cycleSvc{r: r, logs: logs}
}

func (s *cycleSvc) Create(c *entities.Cycle) (*entities.Cycle, error) {
	c.ApplyDefaults()
	if err := entities.Validate(c); err != nil {
		return nil, err
	}
	if err := s.r.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *cycleSvc) Get(id string) (*entities.Cycle, error) { return s.r.FindByID(id) }

func (s *cycleSvc) List() ([]entities.Cycle, error) { return s.r.List() }

func (s *cycleSvc) Update(id string, p service.CyclePatch) (*entities.Cycle, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := p.Apply(cur); err != nil {
		return nil, err
	}
	if err := entities.Validate(cur); err != nil {
		return nil, err
	}
	return cur, s.r.Update(cur)
}

func (s *cycleSvc) Delete(id string) error { return s.r.Delete(id) }

func (s *cycleSvc) Summary(id string) (*service.Summary, error) {
	c, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	avg, err := s.logs.AverageVegDayTemp(id)
	if err != nil {
		return nil, err
	}
	return &service.Summary{Cycle: c, Label: c.Label(), AvgVegDayTemp: avg}, nil
}
