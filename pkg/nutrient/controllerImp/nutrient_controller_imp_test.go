package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growlog/database"
	"growlog/pkg/nutrient/importer"
	nutrientrepo "growlog/pkg/nutrient/repositoryImp"
	nutrientsvc "growlog/pkg/nutrient/serviceImp"
)

func importBody(t *testing.T, h *NutrientCtrl, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/nutrients/import", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Import(echo.New().NewContext(req, rec)))
	return rec
}

func TestImportStatuses(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bloom-a" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>Bloom A</title></head><body><p>Base</p></body></html>`))
	}))
	t.Cleanup(upstream.Close)

	h := New(nutrientsvc.NewNutrientService(nutrientrepo.New(db), importer.New([]string{"127.0.0.1"}, 1<<20)))

	cases := []struct {
		name string
		url  string
		want int
	}{
		{"created", upstream.URL + "/bloom-a", http.StatusCreated},
		{"upstream 404", upstream.URL + "/gone", http.StatusBadGateway},
		{"malformed", "ftp://127.0.0.1/x", http.StatusBadRequest},
		{"not allowed", "https://acme.test/x", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := importBody(t, h, `{"url":"`+tc.url+`","brand":"Acme"}`)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}
