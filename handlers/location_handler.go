package handlers

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Absensi-Karyawan/models"
	util "Sistem-Absensi-Karyawan/pkg/utils"
	"Sistem-Absensi-Karyawan/repository"
)

type LocationHandler struct {
	locationRepo *repository.LocationRepository
}

func NewLocationHandler(locationRepo *repository.LocationRepository) *LocationHandler {
	return &LocationHandler{locationRepo: locationRepo}
}

// CreateLocation godoc
// @Summary Create Location
// @Description Mendaftarkan lokasi kerja baru beserta QR Code-nya (admin only)
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.LocationPayload true "Data lokasi"
// @Success 201 {object} object{message=string,location=models.Location}
// @Failure 400 {object} object{error=string,errors=array}
// @Router /admin/locations [post]
func (h *LocationHandler) CreateLocation(c *fiber.Ctx) error {
	var payload models.LocationPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	location := models.Location{
		Name:      payload.Name,
		Address:   payload.Address,
		Latitude:  *payload.Latitude,
		Longitude: *payload.Longitude,
		RadiusM:   payload.RadiusM,
		QRCode:    util.GenerateQRValue(),
	}

	created, err := h.locationRepo.Create(ctx, &location)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat lokasi"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Lokasi berhasil dibuat",
		"location": created,
	})
}

// GetAllLocations godoc
// @Summary Get All Locations
// @Description Mengambil daftar semua lokasi kerja
// @Tags Location
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Location
// @Router /locations [get]
func (h *LocationHandler) GetAllLocations(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	locations, err := h.locationRepo.FindAll(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil daftar lokasi"})
	}

	return c.Status(fiber.StatusOK).JSON(locations)
}

func (h *LocationHandler) GetLocationByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID lokasi tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	location, err := h.locationRepo.FindByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil lokasi"})
	}
	if location == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lokasi tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(location)
}

// UpdateLocation godoc
// @Summary Update Location
// @Description Memperbarui data lokasi kerja (admin only)
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Param payload body models.LocationPayload true "Data lokasi"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/locations/{id} [put]
func (h *LocationHandler) UpdateLocation(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID lokasi tidak valid"})
	}

	var payload models.LocationPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.locationRepo.UpdateByID(ctx, id, &payload); err != nil {
		if err.Error() == "lokasi tidak ditemukan" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lokasi tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal update lokasi: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Lokasi berhasil diperbarui"})
}

// GenerateLocationQR godoc
// @Summary Generate Location QR
// @Description Membuat ulang nilai QR lokasi dan mengembalikan gambarnya dalam base64. QR lama langsung tidak berlaku.
// @Tags Location
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} object{message=string,qr_code_image=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/locations/{id}/qr [post]
func (h *LocationHandler) GenerateLocationQR(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID lokasi tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	location, err := h.locationRepo.FindByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil lokasi"})
	}
	if location == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lokasi tidak ditemukan"})
	}

	uniqueCode := util.GenerateQRValue()
	if err := h.locationRepo.UpdateQRCode(ctx, id, uniqueCode); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan data QR Code."})
	}

	png, err := qrcode.Encode(uniqueCode, qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat gambar QR Code."})
	}

	encodedString := base64.StdEncoding.EncodeToString(png)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "QR Code lokasi berhasil dibuat ulang",
		"qr_code_image": "data:image/png;base64," + encodedString,
	})
}

// DeleteLocation godoc
// @Summary Delete Location
// @Description Menghapus lokasi kerja (admin only)
// @Tags Location
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID lokasi tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.locationRepo.DeleteByID(ctx, id); err != nil {
		if err.Error() == "lokasi tidak ditemukan" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lokasi tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus lokasi"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Lokasi berhasil dihapus"})
}
