package controllers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/shopease/shopease-backend/api/responses"
	"github.com/shopease/shopease-backend/pkg/config"
	"github.com/shopease/shopease-backend/pkg/db"
	pkgerrors "github.com/shopease/shopease-backend/pkg/errors"
	"github.com/shopease/shopease-backend/pkg/logger"
	"github.com/shopease/shopease-backend/pkg/types"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, types.HealthResponse{
			Status:      "OK",
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			Environment: cfg.App.Env,
			Platform:    runtime.GOOS,
		})
	}
}

// HealthReady reports readiness: the process is up and the storage engine
// answers a ping.
func HealthReady(pinger db.Pinger, logg *logger.Logger, opts responses.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pinger == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storage unavailable"), opts)
			return
		}

		if err := pinger.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "readiness ping failed"), opts)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
