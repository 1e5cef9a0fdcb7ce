package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"garden/pkg/datemath"
	"garden/pkg/garden/repository"
	svc "garden/pkg/garden/serviceImp"
	"garden/pkg/garden/types"
)

type SchedCtrl struct {
	backing repository.Backing
	now     func() time.Time
}

func New(b repository.Backing) *SchedCtrl { return &SchedCtrl{backing: b, now: time.Now} }

// Get reports the next due dates of one plant and whether they are due on
// ?today= (default: the server's current date).
func (h *SchedCtrl) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	today := c.QueryParam("today")
	if today == "" {
		today = h.now().Format(datemath.Layout)
	} else if _, ok := datemath.Parse(today); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid today"})
	}

	g := svc.LoadGarden(c.Request().Context(), h.backing)
	p, ok := g.Find(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, types.NewScheduleView(*p, today))
}

// Due lists every plant with watering or fertilizing due on ?today=.
func (h *SchedCtrl) Due(c echo.Context) error {
	today := c.QueryParam("today")
	if today == "" {
		today = h.now().Format(datemath.Layout)
	} else if _, ok := datemath.Parse(today); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid today"})
	}

	g := svc.LoadGarden(c.Request().Context(), h.backing)
	out := make([]types.ScheduleView, 0)
	for _, p := range g.Plants() {
		v := types.NewScheduleView(p, today)
		if v.WaterDue || v.FertilizeDue {
			out = append(out, v)
		}
	}
	return c.JSON(http.StatusOK, out)
}
