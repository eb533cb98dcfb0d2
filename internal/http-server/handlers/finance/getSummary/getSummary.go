package getSummary

import (
	"log/slog"
	"net/http"

	"clubFinance/internal/lib/api/response"
	"clubFinance/internal/lib/logger/sl"
	"clubFinance/internal/models"

	"github.com/go-chi/render"
)

type SummaryResponse struct {
	response.Response
	Summary *models.Summary `json:"summary"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Summarizer
type Summarizer interface {
	Summary() (*models.Summary, error)
}

func New(log *slog.Logger, finance Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.finance.getSummary.New"

		log = log.With(slog.String("op", op))

		summary, err := finance.Summary()
		if err != nil {
			log.Error("failed to build financial summary", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to build financial summary"))
			return
		}

		log.Info("financial summary built")

		render.JSON(w, r, SummaryResponse{
			Response: response.OK(),
			Summary:  summary,
		})
	}
}
