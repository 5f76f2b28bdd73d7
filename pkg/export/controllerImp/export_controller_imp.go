package controllerImp

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"growlog/pkg/apperr"
	"growlog/pkg/export/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportCtrl struct{ s service.ExportService }

func New(s service.ExportService) *ExportCtrl { return &ExportCtrl{s} }

func (h *ExportCtrl) Export(c echo.Context) error {
	var buf bytes.Buffer
	name, err := h.s.Workbook(c.Param("id"), &buf)
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
