package serviceImp

import (
	"fmt"
	"log"

	"growlog/entities"
	"growlog/pkg/apperr"
	logrepo "growlog/pkg/dailylog/repository"
	"growlog/pkg/derived"
	"growlog/pkg/monitor"
	repo "growlog/pkg/reservoir/repository"
	"growlog/pkg/reservoir/service"
)

type reservoirSvc struct {
	r    repo.ReservoirRepository
	logs logrepo.LogRepository
}

func NewReservoirService(r repo.ReservoirRepository, logs logrepo.LogRepository) service.ReservoirService {
	return &reservoirSvc{r: r, logs: logs}
}

func (s *reservoirSvc) Upsert(cycleID string, logID uint, in *entities.ReservoirLog) (*entities.ReservoirLog, bool, error) {
	if _, err := s.logs.FindByID(cycleID, logID); err != nil {
		return nil, false, err
	}
	in.ID = 0
	in.LogID = logID
	in.Status = ""
	in.RoAmount = nil
	in.ApplyDefaults()
	if err := entities.Validate(in); err != nil {
		return nil, false, err
	}
	prepare(in)

	var (
		out    *entities.ReservoirLog
		merged bool
	)
	err := s.r.WithTx(func(r repo.ReservoirRepository) error {
		cur, err := r.FirstByLog(logID)
		if err != nil {
			return err
		}
		if cur == nil {
			out = in
			return r.Create(in)
		}
		merge(cur, in)
		out, merged = cur, true
		return r.Save(cur)
	})
	if err != nil {
		log.Printf("[reservoir] upsert for log %d aborted: %v", logID, err)
		monitor.Upsert(monitor.KindReservoirLog, monitor.ResultFailed)
		return nil, false, fmt.Errorf("%w: reservoir log %d: %w", apperr.ErrUpsertFailed, logID, err)
	}
	if merged {
		monitor.Upsert(monitor.KindReservoirLog, monitor.ResultMerged)
	} else {
		monitor.Upsert(monitor.KindReservoirLog, monitor.ResultInserted)
	}
	return out, merged, nil
}

// prepare fills the system-assigned fields of a fresh candidate.
func prepare(c *entities.ReservoirLog) {
	if c.ReverseOsmosis == entities.ROYes {
		water := c.Water
		c.RoAmount = &water
	} else {
		c.RoAmount = nil
	}
	if c.WasteWater != nil {
		c.Status = entities.StatusRefresh
	}
}

// merge adds the candidate's volumes to the existing row. With reverse
// osmosis off the existing ro_amount is left as it was.
func merge(cur, c *entities.ReservoirLog) {
	cur.Water += c.Water
	if c.ReverseOsmosis == entities.ROYes {
		ro := c.Water
		if cur.RoAmount != nil {
			ro += *cur.RoAmount
		}
		cur.RoAmount = &ro
	}
	if c.WasteWater != nil {
		waste := *c.WasteWater
		if cur.WasteWater != nil {
			waste += *cur.WasteWater
		}
		cur.WasteWater = &waste
		if waste != 0 {
			cur.Status = entities.StatusRefresh
		} else {
			cur.Status = entities.StatusRefill
		}
	}
}

func (s *reservoirSvc) Get(cycleID string, logID uint) (*service.ReservoirView, error) {
	if _, err := s.logs.FindByID(cycleID, logID); err != nil {
		return nil, err
	}
	r, err := s.r.FirstByLog(logID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperr.NotFound("reservoir log of log", logID)
	}
	return &service.ReservoirView{ReservoirLog: *r, PercentRo: derived.PercentRoRatio(r)}, nil
}

func (s *reservoirSvc) Delete(cycleID string, logID uint) error {
	if _, err := s.logs.FindByID(cycleID, logID); err != nil {
		return err
	}
	return s.r.DeleteByLog(logID)
}
