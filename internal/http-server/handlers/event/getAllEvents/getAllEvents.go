package getAllEvents

import (
	"log/slog"
	"net/http"
	"time"

	"clubFinance/internal/lib/api/response"
	"clubFinance/internal/lib/logger/sl"
	"clubFinance/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	GetAllEvents() ([]models.Event, error)
	SweepEvents(now time.Time) error
}

func New(log *slog.Logger, events EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log = log.With(slog.String("op", op))

		// advance overdue events before serving the list, so clients never
		// see an open event whose deadline is in the past
		if err := events.SweepEvents(time.Now()); err != nil {
			log.Error("failed to sweep events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		list, err := events.GetAllEvents()
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		log.Info("events listed", slog.Int("count", len(list)))

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Events:   list,
		})
	}
}
