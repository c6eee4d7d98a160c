package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Absensi-Karyawan/models"
	"Sistem-Absensi-Karyawan/pkg/paseto"
	util "Sistem-Absensi-Karyawan/pkg/utils"
	"Sistem-Absensi-Karyawan/repository"
)

type DeviceHandler struct {
	deviceRepo   *repository.DeviceRepository
	locationRepo *repository.LocationRepository
}

func NewDeviceHandler(deviceRepo *repository.DeviceRepository, locationRepo *repository.LocationRepository) *DeviceHandler {
	return &DeviceHandler{deviceRepo: deviceRepo, locationRepo: locationRepo}
}

// RegisterDevice godoc
// @Summary Register Device
// @Description Mendaftarkan perangkat absensi pada sebuah lokasi (admin only). Perangkat baru langsung aktif.
// @Tags Device
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.DevicePayload true "Data perangkat"
// @Success 201 {object} object{message=string,device=models.Device}
// @Failure 400 {object} object{error=string,errors=array}
// @Failure 409 {object} models.ErrorResponse "Serial sudah terdaftar"
// @Router /admin/devices [post]
func (h *DeviceHandler) RegisterDevice(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	var payload models.DevicePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	locationID, err := primitive.ObjectIDFromHex(payload.LocationID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID lokasi tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	location, err := h.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa lokasi"})
	}
	if location == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lokasi tidak ditemukan"})
	}

	device := models.Device{
		Name:         payload.Name,
		Serial:       payload.Serial,
		LocationID:   location.ID,
		RegisteredBy: claims.UserID,
		Active:       true,
	}

	created, err := h.deviceRepo.Create(ctx, &device)
	if err != nil {
		if err.Error() == "serial perangkat sudah terdaftar" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Serial perangkat sudah terdaftar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mendaftarkan perangkat"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Perangkat berhasil didaftarkan",
		"device":  created,
	})
}

// GetAllDevices godoc
// @Summary Get All Devices
// @Description Mengambil daftar semua perangkat absensi (admin only)
// @Tags Device
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Device
// @Router /admin/devices [get]
func (h *DeviceHandler) GetAllDevices(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	devices, err := h.deviceRepo.FindAll(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil daftar perangkat"})
	}

	return c.Status(fiber.StatusOK).JSON(devices)
}

// SetDeviceActive godoc
// @Summary Activate / Deactivate Device
// @Description Mengaktifkan atau menonaktifkan perangkat absensi (admin only). Perangkat nonaktif ditolak saat check-in.
// @Tags Device
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Device ID"
// @Param payload body models.DeviceActivePayload true "Status aktif"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/devices/{id}/active [put]
func (h *DeviceHandler) SetDeviceActive(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID perangkat tidak valid"})
	}

	var payload models.DeviceActivePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.deviceRepo.SetActive(ctx, id, *payload.Active); err != nil {
		if err.Error() == "perangkat tidak ditemukan" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Perangkat tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengubah status perangkat"})
	}

	message := "Perangkat berhasil diaktifkan"
	if !*payload.Active {
		message = "Perangkat berhasil dinonaktifkan"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}

// DeleteDevice godoc
// @Summary Delete Device
// @Description Menghapus perangkat absensi (admin only)
// @Tags Device
// @Produce json
// @Security BearerAuth
// @Param id path string true "Device ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/devices/{id} [delete]
func (h *DeviceHandler) DeleteDevice(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID perangkat tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.deviceRepo.DeleteByID(ctx, id); err != nil {
		if err.Error() == "perangkat tidak ditemukan" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Perangkat tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus perangkat"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Perangkat berhasil dihapus"})
}
