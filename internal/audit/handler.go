package audit

import (
	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs?edit_type=delete_item
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.AuditLog{})

		if editType := c.Query("edit_type"); editType != "" {
			dbq = dbq.Where("edit_type = ?", editType)
		}

		var logs []models.AuditLog
		if err := dbq.Order("created_at DESC").Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Loglar listelenemedi")
		}

		return c.JSON(logs)
	}
}
