package catalog

import (
	"strings"

	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateGroupRequest struct {
	Name       string  `json:"name"`
	ImageURL   *string `json:"image_url"` // Opsiyonel
	OrderIndex int     `json:"order_index"`
}

type UpdateGroupRequest struct {
	Name       *string `json:"name"`
	ImageURL   *string `json:"image_url"`
	OrderIndex *int    `json:"order_index"`
}

// GET /api/product-groups (tüm authenticated kullanıcılar görebilir)
func ListGroupsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var groups []models.ProductGroup
		if err := database.DB.Order("order_index asc").Find(&groups).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gruplar listelenemedi")
		}
		return c.JSON(groups)
	}
}

// POST /api/admin/product-groups
func CreateGroupHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateGroupRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Grup adı boş olamaz")
		}

		group := models.ProductGroup{
			ID:         uuid.NewString(),
			Name:       body.Name,
			ImageURL:   body.ImageURL,
			OrderIndex: body.OrderIndex,
		}

		if err := database.DB.Create(&group).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Grup oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(group)
	}
}

// PUT /api/admin/product-groups/:id
func UpdateGroupHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var group models.ProductGroup
		if err := database.DB.First(&group, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Grup bulunamadı")
		}

		var body UpdateGroupRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Grup adı boş olamaz")
			}
			group.Name = name
		}
		if body.ImageURL != nil {
			group.ImageURL = body.ImageURL
		}
		if body.OrderIndex != nil {
			group.OrderIndex = *body.OrderIndex
		}

		if err := database.DB.Save(&group).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Grup güncellenemedi")
		}

		return c.JSON(group)
	}
}

// DELETE /api/admin/product-groups/:id
// Grubun ürünleri veritabanı seviyesinde cascade silinir.
func DeleteGroupHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.ProductGroup{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Grup silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
