package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/cinema-ticket-service/api"
)

// GetOpenApiSpec serves the API description embedded in the api package.
func (app *Application) GetOpenApiSpec(w http.ResponseWriter, r *http.Request) {
	swagger, err := api.GetSwagger()
	if err != nil {
		app.serverErrorResponse(w, r, fmt.Errorf("cannot load openapi spec: %w", err))
		return
	}

	err = app.writeJSON(w, http.StatusOK, swagger, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
