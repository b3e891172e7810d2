package catalog

import (
	"strings"

	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateProductRequest struct {
	Name    string   `json:"name"`
	Price   *float64 `json:"price"` // nil = fiyat sipariş anında girilir
	GroupID string   `json:"group_id"`
}

type UpdateProductRequest struct {
	Name       *string  `json:"name"`
	Price      *float64 `json:"price"`
	ClearPrice bool     `json:"clear_price"` // true ise fiyat null'a çekilir
	GroupID    *string  `json:"group_id"`
	IsActive   *bool    `json:"is_active"`
}

// GET /api/products?group_id=...
// Varsayılan olarak sadece aktif ürünleri döndürür; admin ekranı için
// ?include_inactive=true ile tamamı gelir.
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Product{})

		if c.Query("include_inactive") != "true" {
			dbq = dbq.Where("is_active = ?", true)
		}
		if groupID := c.Query("group_id"); groupID != "" {
			dbq = dbq.Where("group_id = ?", groupID)
		}

		var products []models.Product
		if err := dbq.Order("name asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}
		return c.JSON(products)
	}
}

// POST /api/admin/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.GroupID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ürün adı ve grup zorunlu")
		}
		if body.Price != nil && *body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Fiyat negatif olamaz")
		}

		var group models.ProductGroup
		if err := database.DB.First(&group, "id = ?", body.GroupID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Grup bulunamadı")
		}

		product := models.Product{
			ID:       uuid.NewString(),
			Name:     body.Name,
			Price:    body.Price,
			GroupID:  body.GroupID,
			IsActive: true,
		}

		if err := database.DB.Create(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(product)
	}
}

// PUT /api/admin/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var product models.Product
		if err := database.DB.First(&product, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Ürün adı boş olamaz")
			}
			product.Name = name
		}
		if body.ClearPrice {
			product.Price = nil
		} else if body.Price != nil {
			if *body.Price < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Fiyat negatif olamaz")
			}
			product.Price = body.Price
		}
		if body.GroupID != nil {
			var group models.ProductGroup
			if err := database.DB.First(&group, "id = ?", *body.GroupID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Grup bulunamadı")
			}
			product.GroupID = *body.GroupID
		}
		if body.IsActive != nil {
			product.IsActive = *body.IsActive
		}

		if err := database.DB.Save(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}

		return c.JSON(product)
	}
}

// DELETE /api/admin/products/:id
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
