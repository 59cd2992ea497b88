package handler

import (
	"context"
	"log/slog"
	"net/http"
)

// HealthCheck returns the GET / handler. It pings the store and reports
// whether the server and database are both reachable, without leaking the
// driver's error text to the client.
func HealthCheck(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ping(r.Context()); err != nil {
			slog.Error("health check ping failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, messageResponse(msgStoreDown))
			return
		}

		writeJSON(w, http.StatusOK, messageResponse(msgStoreActive))
	}
}
