package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"growlog/pkg/apperr"
	"growlog/pkg/feeding/service"
)

type FeedingCtrl struct{ s service.FeedingService }

func New(s service.FeedingService) *FeedingCtrl { return &FeedingCtrl{s} }

type upsertReq struct {
	NutrientID    uint `json:"nutrient_id"`
	Concentration int  `json:"concentration"`
}

func (h *FeedingCtrl) List(c echo.Context) error {
	logID, err := parseUint(c.Param("log_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid log_id"})
	}
	list, err := h.s.ListByLog(c.Param("id"), uint(logID))
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, list)
}

func (h *FeedingCtrl) Upsert(c echo.Context) error {
	logID, err := parseUint(c.Param("log_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid log_id"})
	}
	var req upsertReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, merged, err := h.s.Upsert(c.Param("id"), uint(logID), req.NutrientID, req.Concentration)
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	status := http.StatusCreated
	if merged {
		status = http.StatusOK
	}
	return c.JSON(status, out)
}

func (h *FeedingCtrl) Delete(c echo.Context) error {
	logID, err := parseUint(c.Param("log_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid log_id"})
	}
	id, err := parseUint(c.Param("nutrient_log_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid nutrient_log_id"})
	}
	if err := h.s.Delete(c.Param("id"), uint(logID), uint(id)); err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.NoContent(http.StatusNoContent)
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
