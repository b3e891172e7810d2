package table

import (
	"fmt"
	"strings"

	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateTableRequest struct {
	ID   int    `json:"id"` // Masa numarası admin tarafından verilir
	Name string `json:"name"`
}

type UpdateTableRequest struct {
	Name string `json:"name"`
}

// GET /api/tables
// Masa grid'i bu endpoint'i ~3 saniyede bir poll ederek doluluk
// durumunu tazeler.
func ListTablesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tables []models.Table
		if err := database.DB.Order("id").Find(&tables).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masalar listelenemedi")
		}
		return c.JSON(tables)
	}
}

// GET /api/tables/:id
func GetTableHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tableID int
		if _, err := fmt.Sscan(c.Params("id"), &tableID); err != nil || tableID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa ID")
		}

		var table models.Table
		if err := database.DB.First(&table, "id = ?", tableID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
		}
		return c.JSON(table)
	}
}

// POST /api/admin/tables
func CreateTableHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTableRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.ID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Masa numarası 0'dan büyük olmalı")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Masa adı boş olamaz")
		}

		var existing models.Table
		if err := database.DB.First(&existing, "id = ?", body.ID).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bu numarada bir masa zaten var")
		}

		table := models.Table{
			ID:         body.ID,
			Name:       body.Name,
			IsOccupied: false,
		}

		if err := database.DB.Create(&table).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masa oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(table)
	}
}

// PUT /api/admin/tables/:id
func UpdateTableHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tableID int
		if _, err := fmt.Sscan(c.Params("id"), &tableID); err != nil || tableID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa ID")
		}

		var table models.Table
		if err := database.DB.First(&table, "id = ?", tableID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
		}

		var body UpdateTableRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Masa adı boş olamaz")
		}

		table.Name = body.Name
		if err := database.DB.Save(&table).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masa güncellenemedi")
		}

		return c.JSON(table)
	}
}

// DELETE /api/admin/tables/:id
// Dolu masa silinemez; kontrol client'a bırakılmaz.
func DeleteTableHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tableID int
		if _, err := fmt.Sscan(c.Params("id"), &tableID); err != nil || tableID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa ID")
		}

		var table models.Table
		if err := database.DB.First(&table, "id = ?", tableID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
		}
		if table.IsOccupied {
			return fiber.NewError(fiber.StatusBadRequest, "Dolu masa silinemez, önce masayı kapatın")
		}

		if err := database.DB.Delete(&models.Table{}, "id = ?", tableID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masa silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
