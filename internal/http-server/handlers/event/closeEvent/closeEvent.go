package closeEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"clubFinance/internal/lib/api/response"
	"clubFinance/internal/lib/logger/sl"
	"clubFinance/internal/lifecycle"
	"clubFinance/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type CloseResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCloser
type EventCloser interface {
	CloseEvent(eventID int) error
}

func New(log *slog.Logger, event EventCloser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.closeEvent.New"

		log = log.With(slog.String("op", op))

		eventIdStr := chi.URLParam(r, "id")
		if eventIdStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.Atoi(eventIdStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		err = event.CloseEvent(eventID)
		if err != nil {
			log.Error("failed to close event", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, lifecycle.ErrGuardViolation):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to close event"))
			}
			return
		}

		log.Info("event closed")

		render.JSON(w, r, CloseResponse{Response: response.OK()})
	}
}
