package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growlog/database"
	cyclerepo "growlog/pkg/cycle/repositoryImp"
	cyclesvc "growlog/pkg/cycle/serviceImp"
	logrepo "growlog/pkg/dailylog/repositoryImp"
	logsvc "growlog/pkg/dailylog/serviceImp"
)

func newCtrl(t *testing.T) *CycleCtrl {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	cycles, logs := cyclerepo.New(db), logrepo.New(db)
	return New(cyclesvc.NewCycleService(cycles, logs), logsvc.NewLogService(logs, cycles))
}

func call(t *testing.T, h echo.HandlerFunc, method, body, id string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	require.NoError(t, h(c))
	return rec
}

func TestCreateGetDelete(t *testing.T) {
	h := newCtrl(t)

	rec := call(t, h.Create, http.MethodPost, `{"name":"Cycle 1","genetics":"Test Genetics","fixture":"LED 240W","date":"2023-01-15"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = call(t, h.Get, http.MethodGet, "", created.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Label string            `json:"label"`
		Logs  []json.RawMessage `json:"logs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Cycle 1 - Q1/2023", got.Label)
	assert.Empty(t, got.Logs)

	rec = call(t, h.Delete, http.MethodDelete, "", created.ID)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = call(t, h.Get, http.MethodGet, "", created.ID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateErrors(t *testing.T) {
	h := newCtrl(t)

	rec := call(t, h.Create, http.MethodPost, `{"fixture":"F"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"genetics"`)

	rec = call(t, h.Create, http.MethodPost, `{"genetics":"G","fixture":"F","date":"15/01/2023"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
