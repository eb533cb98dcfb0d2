package joinEvent

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
	"github.com/go-playground/validator/v10"
)

type JoinRequest struct {
	ParticipantId string `json:"participant_id" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
}

type JoinResponse struct {
	response.Response
	ParticipationId int `json:"participation_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventJoiner
type EventJoiner interface {
	JoinEvent(eventID int, participantID, name, email string) (int, error)
}

func New(log *slog.Logger, event EventJoiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.joinEvent.New"

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

		var req JoinRequest

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

		participationId, err := event.JoinEvent(eventID, req.ParticipantId, req.Name, req.Email)
		if err != nil {
			log.Error("failed to join event", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrAlreadyJoined):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("participant already joined this event"))
			case errors.Is(err, lifecycle.ErrGuardViolation):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to join event"))
			}
			return
		}

		log.Info("event joined", slog.String("participant_id", req.ParticipantId))

		responseOK(w, r, participationId)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, participationId int) {
	render.JSON(w, r, JoinResponse{
		Response:        response.OK(),
		ParticipationId: participationId,
	})
}
