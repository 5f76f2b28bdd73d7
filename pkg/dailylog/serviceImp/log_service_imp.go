package serviceImp

import (
	"log"

	"growlog/entities"
	cyclerepo "growlog/pkg/cycle/repository"
	repo "growlog/pkg/dailylog/repository"
	"growlog/pkg/dailylog/service"
	"growlog/pkg/derived"
	"growlog/pkg/monitor"
)

type logSvc struct {
	r      repo.LogRepository
	cycles cyclerepo.CycleRepository
}

func NewLogService(r repo.LogRepository, cycles cyclerepo.CycleRepository) service.LogService {
	return &logSvc{r: r, cycles: cycles}
}

func (s *logSvc) Create(cycleID string, l *entities.Log) (*entities.Log, error) {
	if _, err := s.cycles.FindByID(cycleID); err != nil {
		return nil, err
	}
	l.ID = 0
	l.CycleID = cycleID
	l.ApplyDefaults()
	if err := entities.Validate(l); err != nil {
		return nil, err
	}
	if err := s.r.Create(l); err != nil {
		return nil, err
	}
	return l, nil
}

// CreateFromPrevious saves a new log pre-filled from the cycle's last log.
func (s *logSvc) CreateFromPrevious(cycleID string) (*entities.Log, error) {
	if _, err := s.cycles.FindByID(cycleID); err != nil {
		return nil, err
	}
	last, err := s.r.Last(cycleID)
	if err != nil {
		return nil, err
	}
	return s.Create(cycleID, last.CopyReadings())
}

func (s *logSvc) Get(cycleID string, logID uint) (*service.LogView, error) {
	c, err := s.cycles.FindByID(cycleID)
	if err != nil {
		return nil, err
	}
	l, err := s.r.FindByID(cycleID, logID)
	if err != nil {
		return nil, err
	}
	logs, err := s.r.ListByCycle(cycleID)
	if err != nil {
		return nil, err
	}
	v := annotate(c, logs, *l)
	return &v, nil
}

func (s *logSvc) ListByCycle(cycleID string) ([]service.LogView, error) {
	c, err := s.cycles.FindByID(cycleID)
	if err != nil {
		return nil, err
	}
	logs, err := s.r.ListByCycle(cycleID)
	if err != nil {
		return nil, err
	}
	out := make([]service.LogView, 0, len(logs))
	for _, l := range logs {
		out = append(out, annotate(c, logs, l))
	}
	return out, nil
}

// annotate never fails: a figure that cannot be computed is left null.
func annotate(c *entities.Cycle, logs []entities.Log, l entities.Log) service.LogView {
	v := service.LogView{Log: l}
	if n, err := derived.DayInCycle(logs, l); err != nil {
		log.Printf("[derived] %v", err)
		monitor.Degraded("day_in_cycle")
	} else {
		v.DayInCycle = &n
	}
	v.DayInPhase = derived.DayInPhase(logs, l)
	if prev := derived.PreviousLog(logs, l); prev != nil {
		id := prev.ID
		v.PreviousLogID = &id
	}
	v.CalibrationStreak = derived.CalibrationStreak(logs, l)
	v.Label = derived.LogLabel(c, v.DayInCycle)
	return v
}

func (s *logSvc) Update(cycleID string, logID uint, p service.LogPatch) (*entities.Log, error) {
	cur, err := s.r.FindByID(cycleID, logID)
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

func (s *logSvc) SetImage(cycleID string, logID uint, key string) (*entities.Log, error) {
	cur, err := s.r.FindByID(cycleID, logID)
	if err != nil {
		return nil, err
	}
	cur.FeaturedImage = key
	return cur, s.r.Update(cur)
}

func (s *logSvc) Delete(cycleID string, logID uint) error { return s.r.Delete(cycleID, logID) }
