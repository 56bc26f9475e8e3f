package main

import "net/http"

// healthCheckHandler godoc
//
//	@Summary		Health Check
//	@Description	Reports service status, environment and version.
//	@Tags			Ops
//	@Produce		json
//	@Success		200	{object}	map[string]string	"Service status"
//	@Failure		401	{object}	error				"Unauthorized"
//	@Security		BasicAuth
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]string{
		"status":  "ok",
		"env":     app.config.env,
		"version": version,
	}

	if err := writeJSON(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
