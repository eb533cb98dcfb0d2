package addIncome

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"clubFinance/internal/lib/api/response"
	"clubFinance/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type IncomeRequest struct {
	Amount      int64     `json:"amount" validate:"required,gt=0"`
	Date        time.Time `json:"date" validate:"required"`
	Source      string    `json:"source" validate:"required"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"created_by" validate:"required"`
}

type IncomeResponse struct {
	response.Response
	IncomeId int `json:"income_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=IncomeCreator
type IncomeCreator interface {
	CreateIncome(amount int64, date time.Time, source, description, createdBy string) (int, error)
}

func New(log *slog.Logger, income IncomeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.finance.addIncome.New"

		log = log.With(slog.String("op", op))

		var req IncomeRequest

		err := render.DecodeJSON(r.Body, &req)
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

		incomeId, err := income.CreateIncome(req.Amount, req.Date, req.Source, req.Description, req.CreatedBy)
		if err != nil {
			log.Error("failed to add income", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add income"))
			return
		}

		log.Info("income added", slog.Int("id", incomeId))

		render.JSON(w, r, IncomeResponse{
			Response: response.OK(),
			IncomeId: incomeId,
		})
	}
}
