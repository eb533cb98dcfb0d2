package markPaid

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"clubFinance/internal/lib/api/response"
	"clubFinance/internal/lib/logger/sl"
	"clubFinance/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type MarkPaidRequest struct {
	Actor string `json:"actor" validate:"required"`
}

type MarkPaidResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentMarker
type PaymentMarker interface {
	MarkPaid(paymentID int, actor string) error
}

func New(log *slog.Logger, payment PaymentMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.markPaid.New"

		log = log.With(slog.String("op", op))

		paymentIdStr := chi.URLParam(r, "id")
		if paymentIdStr == "" {
			log.Error("payment id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("payment id is required"))
			return
		}

		paymentID, err := strconv.Atoi(paymentIdStr)
		if err != nil {
			log.Error("invalid payment id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid payment id format"))
			return
		}

		log = log.With(slog.Int("payment_id", paymentID))

		var req MarkPaidRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		err = payment.MarkPaid(paymentID, req.Actor)
		if err != nil {
			log.Error("failed to mark payment paid", sl.Err(err))

			if errors.Is(err, storage.ErrPaymentNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("payment not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to mark payment paid"))
			return
		}

		log.Info("payment marked paid", slog.String("actor", req.Actor))

		render.JSON(w, r, MarkPaidResponse{Response: response.OK()})
	}
}
