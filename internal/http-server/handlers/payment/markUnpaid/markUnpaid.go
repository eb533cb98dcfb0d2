package markUnpaid

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
)

type MarkUnpaidResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentUnmarker
type PaymentUnmarker interface {
	MarkUnpaid(paymentID int) error
}

func New(log *slog.Logger, payment PaymentUnmarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.markUnpaid.New"

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

		err = payment.MarkUnpaid(paymentID)
		if err != nil {
			log.Error("failed to mark payment unpaid", sl.Err(err))

			if errors.Is(err, storage.ErrPaymentNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("payment not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to mark payment unpaid"))
			return
		}

		log.Info("payment marked unpaid")

		render.JSON(w, r, MarkUnpaidResponse{Response: response.OK()})
	}
}
