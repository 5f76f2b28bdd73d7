package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"growlog/entities"
	"growlog/pkg/apperr"
	"growlog/pkg/reservoir/service"
)

type ReservoirCtrl struct{ s service.ReservoirService }

func New(s service.ReservoirService) *ReservoirCtrl { return &ReservoirCtrl{s} }

type upsertReq struct {
	ReverseOsmosis entities.ReverseOsmosis `json:"reverse_osmosis"`
	Water          int                     `json:"water"`
	WasteWater     *int                    `json:"waste_water"`
}

func (h *ReservoirCtrl) Upsert(c echo.Context) error {
	logID, err := strconv.ParseUint(c.Param("log_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid log_id"})
	}
	var req upsertReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	in := &entities.ReservoirLog{ReverseOsmosis: req.ReverseOsmosis, Water: req.Water, WasteWater: req.WasteWater}
	out, merged, err := h.s.Upsert(c.Param("id"), uint(logID), in)
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	status := http.StatusCreated
	if merged {
		status = http.StatusOK
	}
	return c.JSON(status, out)
}

func (h *ReservoirCtrl) Get(c echo.Context) error {
	logID, err := strconv.ParseUint(c.Param("log_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid log_id"})
	}
	v, err := h.s.Get(c.Param("id"), uint(logID))
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, v)
}

func (h *ReservoirCtrl) Delete(c echo.Context) error {
	logID, err := strconv.ParseUint(c.Param("log_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid log_id"})
	}
	if err := h.s.Delete(c.Param("id"), uint(logID)); err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.NoContent(http.StatusNoContent)
}
