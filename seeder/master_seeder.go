package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"Sistem-Absensi-Karyawan/models"
	util "Sistem-Absensi-Karyawan/pkg/utils"
	"Sistem-Absensi-Karyawan/repository"
)

// SeedShifts memasukkan tiga shift standar. Shift Malam melewati tengah malam.
func SeedShifts(shiftRepo *repository.ShiftRepository) {
	log.Println("🌱 Memulai seeding shift...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	shiftsData := []models.Shift{
		{Name: "Shift Pagi", StartTime: "08:00", EndTime: "16:00"},
		{Name: "Shift Siang", StartTime: "14:00", EndTime: "22:00"},
		{Name: "Shift Malam", StartTime: "22:00", EndTime: "06:00"},
	}

	for _, data := range shiftsData {
		existing, err := shiftRepo.FindByName(ctx, data.Name)
		if err == nil && existing != nil {
			fmt.Printf("Skipping: Shift '%s' sudah ada.\n", data.Name)
			continue
		}

		shift := data
		if _, err := shiftRepo.Create(ctx, &shift); err != nil {
			log.Printf("❌ Gagal menyimpan shift '%s': %v\n", data.Name, err)
		} else {
			fmt.Printf("✔ Shift '%s' (%s - %s) berhasil ditambahkan.\n", shift.Name, shift.StartTime, shift.EndTime)
		}
	}

	log.Println("✅ Seeding shift selesai.")
}

// SeedLocationsAndDevices memasukkan lokasi kantor pusat beserta satu
// perangkat absensi aktif di lokasi itu.
func SeedLocationsAndDevices(
	locationRepo *repository.LocationRepository,
	deviceRepo *repository.DeviceRepository,
	userRepo *repository.UserRepository,
) {
	log.Println("🌱 Memulai seeding lokasi dan perangkat...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := userRepo.FindUserByEmail(ctx, "admin.utama@gmail.com")
	if err != nil || admin == nil {
		log.Println("⚠️ User admin belum ada. Jalankan SeedUsers terlebih dahulu.")
		return
	}

	locationName := "Kantor Pusat Jakarta"
	location, err := locationRepo.FindByName(ctx, locationName)
	if err == nil && location != nil {
		fmt.Printf("Skipping: Lokasi '%s' sudah ada.\n", locationName)
	} else {
		newLocation := &models.Location{
			Name:      locationName,
			Address:   "Jl. Jend. Sudirman No. 1, Jakarta Pusat",
			Latitude:  -6.208763,
			Longitude: 106.845599,
			RadiusM:   100,
			QRCode:    util.GenerateQRValue(),
		}
		location, err = locationRepo.Create(ctx, newLocation)
		if err != nil {
			log.Printf("❌ Gagal menyimpan lokasi '%s': %v\n", locationName, err)
			return
		}
		fmt.Printf("✔ Lokasi '%s' berhasil ditambahkan.\n", location.Name)
	}

	deviceSerial := "TAB-LOBBY-001"
	existingDevice, err := deviceRepo.FindBySerial(ctx, deviceSerial)
	if err == nil && existingDevice != nil {
		fmt.Printf("Skipping: Perangkat '%s' sudah ada.\n", deviceSerial)
	} else {
		newDevice := &models.Device{
			Name:         "Tablet Lobby Utama",
			Serial:       deviceSerial,
			LocationID:   location.ID,
			RegisteredBy: admin.ID,
			Active:       true,
		}
		if _, err := deviceRepo.Create(ctx, newDevice); err != nil {
			log.Printf("❌ Gagal menyimpan perangkat '%s': %v\n", deviceSerial, err)
		} else {
			fmt.Printf("✔ Perangkat '%s' berhasil ditambahkan.\n", deviceSerial)
		}
	}

	log.Println("✅ Seeding lokasi dan perangkat selesai.")
}
