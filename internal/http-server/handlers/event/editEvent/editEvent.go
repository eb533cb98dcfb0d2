package editEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"clubFinance/internal/lib/api/response"
	"clubFinance/internal/lib/logger/sl"
	"clubFinance/internal/lifecycle"
	"clubFinance/internal/models"
	"clubFinance/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EditRequest struct {
	Actor           string  `json:"actor" validate:"required"`
	Title           *string `json:"title,omitempty"`
	TotalCost       *int64  `json:"total_cost,omitempty" validate:"omitempty,gt=0"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" validate:"omitempty,gt=0"`
}

type EditResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventEditor
type EventEditor interface {
	EditEvent(eventID int, upd models.EventUpdate, actor string) error
}

func New(log *slog.Logger, event EventEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.editEvent.New"

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

		var req EditRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		if req.Title == nil && req.TotalCost == nil && req.DurationMinutes == nil {
			log.Error("no fields to edit")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("at least one field must be edited"))
			return
		}

		upd := models.EventUpdate{
			Title:           req.Title,
			TotalCost:       req.TotalCost,
			DurationMinutes: req.DurationMinutes,
		}

		err = event.EditEvent(eventID, upd, req.Actor)
		if err != nil {
			log.Error("failed to edit event", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, lifecycle.ErrGuardViolation):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to edit event"))
			}
			return
		}

		log.Info("event edited")

		render.JSON(w, r, EditResponse{Response: response.OK()})
	}
}
