package controllerImp

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	svc "garden/pkg/garden/serviceImp"
	"garden/pkg/garden/types"
	"garden/pkg/schedule"
)

var dashboardTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"due": schedule.IsDue,
}).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Smart Garden</title></head>
<body>
<h1>Smart Garden</h1>
<p class="today">{{.Today}}</p>
{{if .Plants}}
<table id="plants">
<thead><tr><th>ID</th><th>Name</th><th>Species</th><th>Sunlight</th><th>Next water</th><th>Next fertilize</th><th>Events</th></tr></thead>
<tbody>
{{range .Plants}}<tr data-id="{{.ID}}">
<td>{{.ID}}</td><td class="name">{{.Name}}</td><td>{{.Species}}</td><td>{{.Sunlight}}</td>
<td class="next-water{{if due .NextWater $.Today}} due{{end}}">{{.NextWater}}</td>
<td class="next-fertilize{{if due .NextFertilize $.Today}} due{{end}}">{{.NextFertilize}}</td>
<td class="events">{{len .History}}</td>
</tr>
{{end}}</tbody>
</table>
{{else}}
<p class="empty">No plants yet.</p>
{{end}}
<p><a href="/plants/export.xlsx">Download spreadsheet</a></p>
</body>
</html>
`))

type dashboardData struct {
	Today  string
	Plants []types.PlantView
}

// Dashboard renders the plant list with overdue care highlighted.
func (h *GardenCtrl) Dashboard(c echo.Context) error {
	g := svc.LoadGarden(c.Request().Context(), h.backing)
	data := dashboardData{Today: h.today(), Plants: types.NewListResponse(g.Plants()).Plants}
	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, data); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
