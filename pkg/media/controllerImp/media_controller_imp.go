package controllerImp

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"growlog/entities"
	"growlog/pkg/apperr"
	logsvc "growlog/pkg/dailylog/service"
	"growlog/pkg/media"
	nutrientsvc "growlog/pkg/nutrient/service"
)

const maxImageBytes = 10 << 20

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type MediaCtrl struct {
	store     media.Store
	logs      logsvc.LogService
	nutrients nutrientsvc.NutrientService
}

func New(store media.Store, logs logsvc.LogService, nutrients nutrientsvc.NutrientService) *MediaCtrl {
	return &MediaCtrl{store: store, logs: logs, nutrients: nutrients}
}

func (h *MediaCtrl) UploadLogImage(c echo.Context) error {
	logID, err := strconv.ParseUint(c.Param("log_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid log_id"})
	}
	cycleID := c.Param("id")
	cur, err := h.logs.Get(cycleID, uint(logID))
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	key, err := h.saveUpload(c, "logs", logID)
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	out, err := h.logs.SetImage(cycleID, uint(logID), key)
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	h.discard(c.Request().Context(), cur.FeaturedImage)
	return c.JSON(http.StatusOK, out)
}

func (h *MediaCtrl) UploadNutrientImage(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	cur, err := h.nutrients.Get(uint(id))
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	key, err := h.saveUpload(c, "nutrients", id)
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	out, err := h.nutrients.SetImage(uint(id), key)
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	h.discard(c.Request().Context(), cur.FeaturedImage)
	return c.JSON(http.StatusOK, out)
}

// Serve streams a stored image; the route is /media/*.
func (h *MediaCtrl) Serve(c echo.Context) error {
	rc, ct, err := h.store.Get(c.Request().Context(), c.Param("*"))
	if err != nil {
		if errors.Is(err, media.ErrInvalidKey) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid media key"})
		}
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	defer rc.Close()
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Stream(http.StatusOK, ct, rc)
}

// saveUpload reads the multipart "image" field, checks it is an image and
// writes it under a fresh key.
func (h *MediaCtrl) saveUpload(c echo.Context, kind string, id uint64) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", apperr.NewValidation("image", "no file was submitted")
	}
	if fh.Size > maxImageBytes {
		return "", apperr.NewValidation("image", "file is too large")
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return "", apperr.NewValidation("image", "upload a valid image")
	}
	ct := http.DetectContentType(head[:n])
	if !imageTypes[ct] {
		return "", apperr.NewValidation("image", "upload a valid image")
	}
	key := media.NewKey(kind, id, fh.Filename)
	body := io.MultiReader(bytes.NewReader(head[:n]), f)
	if err := h.store.Put(c.Request().Context(), key, body, ct); err != nil {
		log.Printf("[media] put %s: %v", key, err)
		return "", err
	}
	return key, nil
}

func (h *MediaCtrl) discard(ctx context.Context, key string) {
	if key == "" || key == entities.DefaultNutrientImage {
		return
	}
	if err := h.store.Delete(ctx, key); err != nil {
		log.Printf("[media] delete %s: %v", key, err)
	}
}
