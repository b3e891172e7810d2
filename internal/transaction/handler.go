package transaction

import (
	"errors"
	"fmt"
	"time"

	"adisyon-backend/internal/auth"
	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UpdateTotalRequest struct {
	TotalAmount *float64 `json:"total_amount"`
}

// Tarih parametresi hem "2025-12-09" hem RFC3339 kabul eder.
func parseDateParam(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}

// GET /api/transactions?start=2025-06-01&end=2025-06-30
func ListTransactionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Transaction{})

		startStr := c.Query("start")
		endStr := c.Query("end")
		if startStr != "" && endStr != "" {
			start, err := parseDateParam(startStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz başlangıç tarihi")
			}
			end, err := parseDateParam(endStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz bitiş tarihi")
			}
			// Tarih girilmişse gün sonuna kadar dahil et
			if end.Hour() == 0 && end.Minute() == 0 && end.Second() == 0 {
				end = end.Add(24*time.Hour - time.Second)
			}
			dbq = dbq.Where("completed_at >= ? AND completed_at <= ?", start, end)
		}

		var txs []models.Transaction
		if err := dbq.Order("completed_at DESC").Find(&txs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transaction'lar listelenemedi")
		}

		return c.JSON(txs)
	}
}

// DELETE /api/transactions/:id/items/:index
func DeleteItemHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		txID := c.Params("id")

		var index int
		if _, err := fmt.Sscan(c.Params("index"), &index); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz kalem index'i")
		}

		tx, err := svc.DeleteItem(txID, index, auth.CurrentUsername(c))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			case errors.Is(err, ErrIndexOutOfRange), errors.Is(err, ErrLastItem):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
		}

		return c.JSON(tx)
	}
}

// PUT /api/transactions/:id/total
func UpdateTotalHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		txID := c.Params("id")

		var body UpdateTotalRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.TotalAmount == nil {
			return fiber.NewError(fiber.StatusBadRequest, "total_amount zorunlu")
		}

		tx, err := svc.UpdateTotal(txID, *body.TotalAmount, auth.CurrentUsername(c))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			case errors.Is(err, ErrNegativeTotal):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
		}

		return c.JSON(tx)
	}
}

// DELETE /api/transactions/:id
func DeleteTransactionHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		txID := c.Params("id")

		if err := svc.Delete(txID, auth.CurrentUsername(c)); err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
