package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUpsertFailed = errors.New("upsert failed")
)

// ValidationError lists per-field problems keyed by json field name.
type ValidationError struct {
	Fields map[string]string
}

func NewValidation(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NotFound wraps ErrNotFound with the entity kind and id.
func NotFound(kind string, id any) error {
	return fmt.Errorf("%s %v: %w", kind, id, ErrNotFound)
}

// FromDB maps gorm.ErrRecordNotFound to ErrNotFound and passes anything else through.
func FromDB(err error, kind string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(kind, id)
	}
	return err
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Status picks the HTTP status for an error returned by a service.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUpsertFailed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Body is the JSON error payload controllers respond with.
func Body(err error) map[string]any {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return map[string]any{"error": "validation failed", "fields": ve.Fields}
	}
	return map[string]any{"error": err.Error()}
}
