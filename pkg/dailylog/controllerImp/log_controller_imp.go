package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"growlog/entities"
	"growlog/pkg/apperr"
	"growlog/pkg/dailylog/service"
)

type LogCtrl struct{ s service.LogService }

func New(s service.LogService) *LogCtrl { return &LogCtrl{s} }

func (h *LogCtrl) List(c echo.Context) error {
	list, err := h.s.ListByCycle(c.Param("id"))
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, list)
}

func (h *LogCtrl) Create(c echo.Context) error {
	var p service.LogPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	var l entities.Log
	if err := p.Apply(&l); err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	out, err := h.s.Create(c.Param("id"), &l)
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusCreated, out)
}

// Prefill creates a log carrying over the previous log's readings.
func (h *LogCtrl) Prefill(c echo.Context) error {
	out, err := h.s.CreateFromPrevious(c.Param("id"))
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *LogCtrl) Get(c echo.Context) error {
	id, err := parseUint(c.Param("log_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid log_id"})
	}
	v, err := h.s.Get(c.Param("id"), uint(id))
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, v)
}

func (h *LogCtrl) Update(c echo.Context) error {
	id, err := parseUint(c.Param("log_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid log_id"})
	}
	var p service.LogPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.s.Update(c.Param("id"), uint(id), p)
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LogCtrl) Delete(c echo.Context) error {
	id, err := parseUint(c.Param("log_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid log_id"})
	}
	if err := h.s.Delete(c.Param("id"), uint(id)); err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.NoContent(http.StatusNoContent)
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
