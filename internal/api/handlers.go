package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	errorvalues "github.com/limbo/devhabit/internal/error_values"
	"github.com/limbo/devhabit/pkg/httputil"
)

type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	habits, err := s.habitsService.GetHabits(ctx)
	if err != nil {
		logger.Error("getting habits list error", slog.String("error", err.Error()))
		s.writeError(w, r, http.StatusInternalServerError, "error while getting habits list")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habits)
	logger.Info("habits provided", slog.Int("count", len(habits)))
}

func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	habit, err := s.habitsService.GetHabit(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound):
			logger.Error("get habit error: unexist habit", slog.String("habit_id", id))
			s.writeError(w, r, http.StatusNotFound, "habit doesn't exist")
		default:
			logger.Error("get habit error: service error", slog.String("error", err.Error()))
			s.writeError(w, r, http.StatusInternalServerError, "internal error while getting habit")
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.Info("habit provided", slog.String("habit_id", id))
}

// Health reports readiness: not ready until startup finished, unavailable when the store is unreachable.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if !s.IsReady() {
		logger.Warn("health check: " + errorvalues.ErrNotReady.Error())
		httputil.WriteJSONResponse(w, http.StatusServiceUnavailable, HealthResponse{Status: "starting"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	if err := s.habitsService.Ping(ctx); err != nil {
		logger.Error("health check: store unreachable", slog.String("error", err.Error()))
		httputil.WriteJSONResponse(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// writeError attaches the request id to the error envelope so clients can quote it.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	var details error
	if reqID := GetRequestIDFromCtx(r.Context()); reqID != "" {
		details = fmt.Errorf("request id: %s", reqID)
	}
	httputil.WriteErrorResponse(w, statusCode, message, details)
}
