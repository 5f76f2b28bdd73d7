package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"growlog/entities"
	"growlog/pkg/apperr"
	"growlog/pkg/cycle/service"
	logsvc "growlog/pkg/dailylog/service"
)

type CycleCtrl struct {
	s    service.CycleService
	logs logsvc.LogService
}

func New(s service.CycleService, logs logsvc.LogService) *CycleCtrl {
	return &CycleCtrl{s: s, logs: logs}
}

type detail struct {
	*entities.Cycle
	Label string           `json:"label"`
	Logs  []logsvc.LogView `json:"logs"`
}

func (h *CycleCtrl) List(c echo.Context) error {
	list, err := h.s.List()
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CycleCtrl) Create(c echo.Context) error {
	var p service.CyclePatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	cy := &entities.Cycle{}
	if err := p.Apply(cy); err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	out, err := h.s.Create(cy)
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CycleCtrl) Get(c echo.Context) error {
	cy, err := h.s.Get(c.Param("id"))
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	logs, err := h.logs.ListByCycle(cy.ID)
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, detail{Cycle: cy, Label: cy.Label(), Logs: logs})
}

func (h *CycleCtrl) Update(c echo.Context) error {
	var p service.CyclePatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.s.Update(c.Param("id"), p)
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CycleCtrl) Delete(c echo.Context) error {
	if err := h.s.Delete(c.Param("id")); err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CycleCtrl) Summary(c echo.Context) error {
	sum, err := h.s.Summary(c.Param("id"))
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, sum)
}
