package order

import (
	"errors"
	"fmt"

	"adisyon-backend/internal/auth"
	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	// Fiyatsız ürünler için sipariş anında girilen fiyat
	CustomPrice *float64 `json:"custom_price"`
}

type TableDetailResponse struct {
	Table models.Table       `json:"table"`
	Items []models.TableItem `json:"items"`
	Total float64            `json:"total"`
}

func parseTableID(c *fiber.Ctx) (int, error) {
	var tableID int
	if _, err := fmt.Sscan(c.Params("id"), &tableID); err != nil || tableID <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa ID")
	}
	return tableID, nil
}

// GET /api/tables/:id/detail
// Masa kaydı ve adisyon satırları tek cevapta; ekran açılışında iki ayrı
// istek yerine.
func TableDetailHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tableID, err := parseTableID(c)
		if err != nil {
			return err
		}

		var table models.Table
		if err := database.DB.First(&table, "id = ?", tableID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
		}

		items, err := svc.ListItems(tableID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Adisyon satırları listelenemedi")
		}

		return c.JSON(TableDetailResponse{
			Table: table,
			Items: items,
			Total: Total(items),
		})
	}
}

// GET /api/tables/:id/items
func ListTableItemsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tableID, err := parseTableID(c)
		if err != nil {
			return err
		}

		items, err := svc.ListItems(tableID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Adisyon satırları listelenemedi")
		}
		return c.JSON(items)
	}
}

// POST /api/tables/:id/items
func AddItemHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tableID, err := parseTableID(c)
		if err != nil {
			return err
		}

		var body AddItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Quantity == 0 {
			body.Quantity = 1
		}

		item, err := svc.AddItem(tableID, body.ProductID, body.Quantity, body.CustomPrice, auth.CurrentUsername(c))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidQuantity), errors.Is(err, ErrPriceRequired), errors.Is(err, ErrProductInactive):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			case errors.Is(err, ErrProductNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
		}

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// DELETE /api/table-items/:id
func RemoveItemHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID := c.Params("id")
		if itemID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz satır ID")
		}

		if err := svc.RemoveItem(itemID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/tables/:id/close
// Üç adım sırayla koşar; hata mesajı hangi adımın yarım kaldığını söyler.
func CloseTableHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tableID, err := parseTableID(c)
		if err != nil {
			return err
		}

		var table models.Table
		if err := database.DB.First(&table, "id = ?", tableID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
		}

		items, err := svc.ListItems(tableID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Adisyon satırları okunamadı")
		}

		tx, err := svc.CloseTable(tableID, table.Name, items, auth.CurrentUsername(c))
		if err != nil {
			switch {
			case errors.Is(err, ErrCreateTransaction):
				return fiber.NewError(fiber.StatusInternalServerError, "Transaction oluşturulamadı: "+err.Error())
			case errors.Is(err, ErrClearItems):
				return fiber.NewError(fiber.StatusInternalServerError, "Table items silinemedi: "+err.Error())
			case errors.Is(err, ErrUpdateTable):
				return fiber.NewError(fiber.StatusInternalServerError, "Masa durumu güncellenemedi: "+err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Masa kapatılamadı: "+err.Error())
			}
		}

		resp := fiber.Map{"message": "Masa kapatıldı"}
		if tx != nil {
			resp["transaction"] = tx
		}
		return c.JSON(resp)
	}
}
