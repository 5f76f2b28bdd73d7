package controllerImp

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"growlog/entities"
	"growlog/pkg/apperr"
	"growlog/pkg/nutrient/importer"
	"growlog/pkg/nutrient/service"
)

type NutrientCtrl struct{ s service.NutrientService }

func New(s service.NutrientService) *NutrientCtrl { return &NutrientCtrl{s} }

func (h *NutrientCtrl) List(c echo.Context) error {
	list, err := h.s.List()
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, list)
}

func (h *NutrientCtrl) Create(c echo.Context) error {
	var p service.NutrientPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	var n entities.Nutrient
	p.Apply(&n)
	out, err := h.s.Create(&n)
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *NutrientCtrl) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	n, err := h.s.Get(uint(id))
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, n)
}

func (h *NutrientCtrl) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var p service.NutrientPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.s.Update(uint(id), p)
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *NutrientCtrl) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.s.Delete(uint(id)); err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *NutrientCtrl) Import(c echo.Context) error {
	var req service.ImportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.s.Import(c.Request().Context(), req)
	switch {
	case errors.Is(err, importer.ErrDomainNotAllowed):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "domain not allowed"})
	case errors.Is(err, importer.ErrFetchFailed):
		log.Printf("[import] %s: %v", req.URL, err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "fetch failed"})
	case err != nil:
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusCreated, out)
}
