package http

import (
	"net/http"
	"time"

	"github.com/rdmapp/rdm-server/internal/store"
	"github.com/rdmapp/rdm-server/pkg/httpx"
	"github.com/rdmapp/rdm-server/pkg/rdmclient"
)

// LivezHandler godoc
//
//	@Summary		Liveness Probe
//	@Description	Returns 200 with uptime and version whenever the process is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	rdmclient.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, rdmclient.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Probe
//	@Description	Checks critical dependencies; returns 503 when the database
//	@Description	is unreachable.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	rdmclient.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	rdmclient.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &rdmclient.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, rdmclient.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
