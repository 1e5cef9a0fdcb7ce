package controllerImp

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"garden/pkg/codec"
	"garden/pkg/datemath"
	"garden/pkg/garden/repository"
	svc "garden/pkg/garden/serviceImp"
	"garden/pkg/garden/types"
	"garden/pkg/report"
)

const readyMessage = "Smart Garden interface ready. Use /plants or /garden?action=list."

// GardenCtrl serves the garden over HTTP. Every request loads the whole
// document, applies at most one change and saves it back; nothing is kept
// between requests and nothing is locked, so the last writer wins.
type GardenCtrl struct {
	backing repository.Backing
	now     func() time.Time
}

func New(b repository.Backing) *GardenCtrl { return &GardenCtrl{backing: b, now: time.Now} }

func (h *GardenCtrl) List(c echo.Context) error {
	g := svc.LoadGarden(c.Request().Context(), h.backing)
	return c.JSON(http.StatusOK, types.NewListResponse(g.Plants()))
}

func (h *GardenCtrl) Create(c echo.Context) error {
	var req gardenForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad request"})
	}
	return h.add(c, req)
}

func (h *GardenCtrl) LogCare(c echo.Context) error {
	var req gardenForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad request"})
	}
	req.ID = looseInt(codec.ParseIntOr(c.Param("id"), 0))
	return h.log(c, req)
}

// Legacy keeps the single-endpoint action protocol: ?action=list, or a POST
// body with action=add or action=log.
func (h *GardenCtrl) Legacy(c echo.Context) error {
	if c.QueryParam("action") == "list" {
		return h.List(c)
	}
	if c.Request().Method == http.MethodPost {
		var req gardenForm
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad request"})
		}
		switch req.Action {
		case "add":
			return h.add(c, req)
		case "log":
			return h.log(c, req)
		}
	}
	return c.String(http.StatusOK, readyMessage)
}

func (h *GardenCtrl) Export(c echo.Context) error {
	g := svc.LoadGarden(c.Request().Context(), h.backing)
	var buf bytes.Buffer
	if err := report.WriteWorkbook(&buf, types.NewListResponse(g.Plants()).Plants); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="garden.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *GardenCtrl) add(c echo.Context, req gardenForm) error {
	ctx := c.Request().Context()
	g := svc.LoadGarden(ctx, h.backing)
	id := g.Add(req.plant())
	svc.SaveGarden(ctx, g, h.backing)
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "id": id})
}

// log appends a care event. An unknown id changes nothing, but the garden is
// still saved and the response is still ok.
func (h *GardenCtrl) log(c echo.Context, req gardenForm) error {
	ctx := c.Request().Context()
	g := svc.LoadGarden(ctx, h.backing)
	g.Log(int(req.ID), req.event())
	svc.SaveGarden(ctx, g, h.backing)
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (h *GardenCtrl) today() string { return h.now().Format(datemath.Layout) }
