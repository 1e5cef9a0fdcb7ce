package controllerImp

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"garden/pkg/garden/repository"
)

var appStart = time.Now()

type HealthCtrl struct {
	backing repository.Backing
}

func NewHealthCtrl(b repository.Backing) *HealthCtrl { return &HealthCtrl{backing: b} }

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	storeOK := true
	storeErr := ""
	if h.backing != nil {
		err := ping(ctx, h.backing)
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist):
			// nothing saved yet
		default:
			storeOK = false
			storeErr = err.Error()
		}
	} else {
		storeOK = false
		storeErr = "backing is nil"
	}

	status := http.StatusOK
	if !storeOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK      bool   `json:"ok"`
		Backing string `json:"backing,omitempty"`
		Err     string `json:"err,omitempty"`
	}
	name := ""
	if h.backing != nil {
		name = h.backing.Name()
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": storeOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"store": sub{OK: storeOK, Backing: name, Err: storeErr},
		},
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}

// ping prefers a backing's own cheap check and otherwise opens and closes the
// document.
func ping(ctx context.Context, b repository.Backing) error {
	if p, ok := b.(repository.Pinger); ok {
		return p.Ping(ctx)
	}
	r, err := b.Open(ctx)
	if err != nil {
		return err
	}
	return r.Close()
}
