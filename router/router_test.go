package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gardenCtrlImp "garden/pkg/garden/controllerImp"
	"garden/pkg/garden/repositoryImp"
	healthCtrlImp "garden/pkg/health/controllerImp"
	schedCtrlImp "garden/pkg/schedule/controllerImp"
)

func newApp(mem *repositoryImp.Memory) *echo.Echo {
	return New(echo.New(), gardenCtrlImp.New(mem), schedCtrlImp.New(mem), healthCtrlImp.NewHealthCtrl(mem))
}

func request(e *echo.Echo, method, target string, form url.Values) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_AddLogList(t *testing.T) {
	mem := repositoryImp.NewMemory()
	e := newApp(mem)

	rec := request(e, http.MethodPost, "/plants", url.Values{"name": {"Basil"}, "watering_interval": {"3"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"id":1}`, rec.Body.String())

	rec = request(e, http.MethodPost, "/garden", url.Values{"action": {"add"}, "name": {"Mint"}})
	assert.JSONEq(t, `{"ok":true,"id":2}`, rec.Body.String())

	rec = request(e, http.MethodPost, "/plants/1/events", url.Values{"type": {"water"}, "date": {"2024-03-01"}})
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	assert.Equal(t, "PLANT|1|Basil|||0||3|0\nEVENT|water|2024-03-01|\nPLANT|2|Mint|||0||0|0\n", mem.String())

	rec = request(e, http.MethodGet, "/garden?action=list", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"next_water":"2024-03-04"`)

	rec = request(e, http.MethodGet, "/plants/1/schedule?today=2024-03-04", nil)
	assert.Contains(t, rec.Body.String(), `"water_due":true`)

	rec = request(e, http.MethodGet, "/plants/due?today=2024-03-02", nil)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRoutes_Infrastructure(t *testing.T) {
	e := newApp(repositoryImp.NewMemory())

	assert.Equal(t, http.StatusOK, request(e, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, request(e, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusOK, request(e, http.MethodGet, "/plants/export.xlsx", nil).Code)

	request(e, http.MethodGet, "/plants", nil)
	rec := request(e, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "garden_http_requests_total")
	assert.Contains(t, rec.Body.String(), "garden_store_operations_total")
}
