package media

import (
	"fmt"
	"path/filepath"

	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GET /api/admin/media
func ListMediaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var files []models.MediaFile
		if err := database.DB.Order("created_at DESC").Find(&files).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Medya dosyaları listelenemedi")
		}
		return c.JSON(files)
	}
}

// POST /api/admin/media (multipart, "file" alanı)
func UploadMediaHandler(storage Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya bulunamadı ('file' alanı zorunlu)")
		}

		src, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya açılamadı")
		}
		defer src.Close()

		// Orijinal ad saklanır ama diskte rastgele bir adla tutulur
		ext := filepath.Ext(fileHeader.Filename)
		storagePath := fmt.Sprintf("uploads/%s%s", uuid.NewString(), ext)

		publicURL, err := storage.Save(storagePath, src)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya yüklenemedi: "+err.Error())
		}

		file := models.MediaFile{
			ID:       uuid.NewString(),
			FileName: fileHeader.Filename,
			FileURL:  publicURL,
			FilePath: storagePath,
			FileSize: fileHeader.Size,
			MimeType: fileHeader.Header.Get("Content-Type"),
		}

		if err := database.DB.Create(&file).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Medya kaydı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(file)
	}
}

// DELETE /api/admin/media/:id
// Önce storage'daki dosya, sonra veritabanı kaydı silinir.
func DeleteMediaHandler(storage Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var file models.MediaFile
		if err := database.DB.First(&file, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Medya kaydı bulunamadı")
		}

		if err := storage.Delete(file.FilePath); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya silinemedi: "+err.Error())
		}

		if err := database.DB.Delete(&models.MediaFile{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Medya kaydı silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
