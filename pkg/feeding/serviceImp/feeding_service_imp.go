package serviceImp

import (
	"fmt"
	"log"

	"growlog/entities"
	"growlog/pkg/apperr"
	logrepo "growlog/pkg/dailylog/repository"
	"growlog/pkg/derived"
	repo "growlog/pkg/feeding/repository"
	"growlog/pkg/feeding/service"
	"growlog/pkg/monitor"
	nutrientrepo "growlog/pkg/nutrient/repository"
	resrepo "growlog/pkg/reservoir/repository"
)

type feedingSvc struct {
	r         repo.FeedingRepository
	logs      logrepo.LogRepository
	nutrients nutrientrepo.NutrientRepository
	reservoir resrepo.ReservoirRepository
}

func NewFeedingService(
	r repo.FeedingRepository,
	logs logrepo.LogRepository,
	nutrients nutrientrepo.NutrientRepository,
	reservoir resrepo.ReservoirRepository,
) service.FeedingService {
	return &feedingSvc{r: r, logs: logs, nutrients: nutrients, reservoir: reservoir}
}

func (s *feedingSvc) Upsert(cycleID string, logID, nutrientID uint, concentration int) (*entities.NutrientLog, bool, error) {
	if _, err := s.logs.FindByID(cycleID, logID); err != nil {
		return nil, false, err
	}
	if nutrientID == 0 {
		return nil, false, apperr.NewValidation("nutrient_id", "this field is required")
	}
	n, err := s.nutrients.FindByID(nutrientID)
	if err != nil {
		return nil, false, err
	}
	candidate := &entities.NutrientLog{LogID: logID, NutrientID: nutrientID, Concentration: concentration}
	if err := entities.Validate(candidate); err != nil {
		return nil, false, err
	}

	var merged bool
	err = s.r.WithTx(func(r repo.FeedingRepository) error {
		existing, err := r.FindByPair(logID, nutrientID)
		if err != nil {
			return err
		}
		ids := make([]uint, 0, len(existing))
		for _, e := range existing {
			candidate.Concentration += e.Concentration
			ids = append(ids, e.ID)
		}
		merged = len(ids) > 0
		if err := r.DeleteIDs(ids); err != nil {
			return err
		}
		return r.Create(candidate)
	})
	if err != nil {
		log.Printf("[feeding] upsert for log %d nutrient %d aborted: %v", logID, nutrientID, err)
		monitor.Upsert(monitor.KindNutrientLog, monitor.ResultFailed)
		return nil, false, fmt.Errorf("%w: nutrient log %d/%d: %w", apperr.ErrUpsertFailed, logID, nutrientID, err)
	}
	if merged {
		monitor.Upsert(monitor.KindNutrientLog, monitor.ResultMerged)
	} else {
		monitor.Upsert(monitor.KindNutrientLog, monitor.ResultInserted)
	}
	candidate.Nutrient = n
	return candidate, merged, nil
}

func (s *feedingSvc) ListByLog(cycleID string, logID uint) ([]service.Entry, error) {
	if _, err := s.logs.FindByID(cycleID, logID); err != nil {
		return nil, err
	}
	rows, err := s.r.ListByLog(logID)
	if err != nil {
		return nil, err
	}
	res, err := s.reservoir.FirstByLog(logID)
	if err != nil {
		return nil, err
	}
	out := make([]service.Entry, 0, len(rows))
	for _, nl := range rows {
		out = append(out, service.Entry{
			NutrientLog:   nl,
			Label:         nl.String(),
			UsagePerLiter: derived.NutrientUsagePerLiter(nl.Concentration, res),
		})
	}
	return out, nil
}

func (s *feedingSvc) Delete(cycleID string, logID, id uint) error {
	if _, err := s.logs.FindByID(cycleID, logID); err != nil {
		return err
	}
	return s.r.Delete(logID, id)
}
