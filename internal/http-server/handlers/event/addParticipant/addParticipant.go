package addParticipant

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
	"github.com/google/uuid"
)

// ParticipantId is optional: guests without an account get a generated id.
type AddRequest struct {
	ParticipantId string `json:"participant_id,omitempty"`
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Actor         string `json:"actor" validate:"required"`
	Role          string `json:"role,omitempty"`
}

type AddResponse struct {
	response.Response
	ParticipationId int    `json:"participation_id"`
	ParticipantId   string `json:"participant_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ParticipantAdder
type ParticipantAdder interface {
	AddParticipantAfterClose(eventID int, participantID, name, email, actor, role string) (int, error)
}

func New(log *slog.Logger, event ParticipantAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.addParticipant.New"

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

		var req AddRequest

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

		participantID := req.ParticipantId
		if participantID == "" {
			participantID = uuid.NewString()
		}

		participationId, err := event.AddParticipantAfterClose(eventID, participantID, req.Name, req.Email, req.Actor, req.Role)
		if err != nil {
			log.Error("failed to add participant", sl.Err(err))

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
				render.JSON(w, r, response.Error("failed to add participant"))
			}
			return
		}

		log.Info("participant added", slog.String("participant_id", participantID))

		render.JSON(w, r, AddResponse{
			Response:        response.OK(),
			ParticipationId: participationId,
			ParticipantId:   participantID,
		})
	}
}
