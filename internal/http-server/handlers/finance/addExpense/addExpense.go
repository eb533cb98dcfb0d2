package addExpense

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"clubFinance/internal/lib/api/response"
	"clubFinance/internal/lib/logger/sl"
	"clubFinance/internal/models"
	"clubFinance/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type ExpenseRequest struct {
	Amount      int64     `json:"amount" validate:"required,gt=0"`
	Date        time.Time `json:"date" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Description string    `json:"description,omitempty"`
	EventId     *int      `json:"event_id,omitempty"`
	CreatedBy   string    `json:"created_by" validate:"required"`
}

type ExpenseResponse struct {
	response.Response
	ExpenseId int `json:"expense_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ExpenseCreator
type ExpenseCreator interface {
	CreateExpense(amount int64, date time.Time, category, description string, eventID *int, createdBy string) (int, error)
}

func New(log *slog.Logger, expense ExpenseCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.finance.addExpense.New"

		log = log.With(slog.String("op", op))

		var req ExpenseRequest

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

		if req.Category == models.ExpenseEventPayment && req.EventId == nil {
			log.Error("event_payment expense without event id")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event_payment expense requires event_id"))
			return
		}

		expenseId, err := expense.CreateExpense(req.Amount, req.Date, req.Category, req.Description, req.EventId, req.CreatedBy)
		if err != nil {
			log.Error("failed to add expense", sl.Err(err))

			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add expense"))
			return
		}

		log.Info("expense added", slog.Int("id", expenseId))

		render.JSON(w, r, ExpenseResponse{
			Response:  response.OK(),
			ExpenseId: expenseId,
		})
	}
}
