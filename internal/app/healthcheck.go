package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/metinatakli/cinema-ticket-service/api"
	"github.com/metinatakli/cinema-ticket-service/internal/vcs"
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	err := app.pingDependencies(r.Context())
	if err != nil {
		app.serviceUnavailableResponse(w, r, err)
		return
	}

	systemInfo := api.SystemInfo{
		Version:     vcs.Version(),
		Environment: app.config.Env,
	}

	resp := api.HealthcheckResponse{
		Status:     "UP",
		SystemInfo: systemInfo,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) pingDependencies(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if app.db != nil {
		err := app.db.Ping(ctx)
		if err != nil {
			return fmt.Errorf("database is unreachable: %w", err)
		}
	}

	if app.redis != nil {
		err := app.redis.Ping(ctx).Err()
		if err != nil {
			return fmt.Errorf("redis is unreachable: %w", err)
		}
	}

	return nil
}
