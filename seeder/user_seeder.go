package seeder

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"Sistem-Absensi-Karyawan/models"
	"Sistem-Absensi-Karyawan/repository"
)

// SeedUsers memasukkan satu admin dan 20 karyawan dummy ke database.
func SeedUsers(userRepo *repository.UserRepository) {
	log.Println("🌱 Memulai seeding user...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Gagal hash password: %v", err)
	}

	adminEmail := "admin.utama@gmail.com"
	adminUser, err := userRepo.FindUserByEmail(ctx, adminEmail)
	if err == nil && adminUser != nil {
		log.Println("✅ User admin sudah ada, seeding user admin dilewati.")
	} else {
		log.Println("🔄 Menambahkan user Admin...")
		newAdmin := &models.User{
			ID:         primitive.NewObjectID(),
			Name:       "Admin Utama",
			Email:      adminEmail,
			Password:   string(hashedPassword),
			Role:       "admin",
			Position:   "Manajer Umum",
			Department: "Manajemen",
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		if _, err := userRepo.CreateUser(ctx, newAdmin); err != nil {
			log.Printf("❌ Gagal menyimpan user admin: %v\n", err)
		} else {
			fmt.Printf("✔ User Admin (%s) berhasil ditambahkan.\n", newAdmin.Email)
		}
	}

	departmentPositions := map[string][]string{
		"Keuangan":                  {"Akuntan Senior", "Akuntan Junior", "Analis Keuangan", "Kasir"},
		"Sumber Daya Manusia (HRD)": {"HR Specialist", "Recruitment Officer", "Payroll Administrator"},
		"Teknologi Informasi (IT)":  {"Software Engineer", "Frontend Developer", "Backend Developer", "IT Support"},
		"Produksi":                  {"Supervisor Produksi", "Operator Produksi", "Quality Control"},
		"Layanan Pelanggan":         {"Customer Service Representative", "Call Center Agent", "Support Specialist"},
		"Logistik":                  {"Supply Chain Officer", "Warehouse Staff", "Delivery Coordinator"},
	}

	departmentNames := make([]string, 0, len(departmentPositions))
	for name := range departmentPositions {
		departmentNames = append(departmentNames, name)
	}

	firstNames := []string{"Budi", "Siti", "Agus", "Dewi", "Joko", "Sri", "Rina", "Andi", "Nur", "Hadi", "Kartika", "Eko", "Maya", "Dian", "Fajar", "Indra", "Putri", "Rizky", "Tia", "Wisnu"}
	lastNames := []string{"Santoso", "Wijaya", "Putra", "Utami", "Nugroho", "Rahayu", "Kusumo", "Handayani", "Pratama", "Saputra", "Lestari", "Setiawan", "Aditya", "Wulandari", "Maulana"}

	log.Println("🔄 Menambahkan 20 user Karyawan...")
	for i := 1; i <= 20; i++ {
		email := fmt.Sprintf("karyawan%02d@gmail.com", i)
		existingUser, err := userRepo.FindUserByEmail(ctx, email)
		if err == nil && existingUser != nil {
			fmt.Printf("Skipping: User %s sudah ada.\n", email)
			continue
		}

		fullName := fmt.Sprintf("%s %s", firstNames[rand.Intn(len(firstNames))], lastNames[rand.Intn(len(lastNames))])
		selectedDepartment := departmentNames[rand.Intn(len(departmentNames))]
		possiblePositions := departmentPositions[selectedDepartment]
		selectedPosition := possiblePositions[rand.Intn(len(possiblePositions))]

		newKaryawan := &models.User{
			ID:         primitive.NewObjectID(),
			Name:       fullName,
			Email:      email,
			Password:   string(hashedPassword),
			Role:       "karyawan",
			Position:   selectedPosition,
			Department: selectedDepartment,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}

		if _, err := userRepo.CreateUser(ctx, newKaryawan); err != nil {
			log.Printf("❌ Gagal menyimpan user %s: %v\n", newKaryawan.Name, err)
		} else {
			fmt.Printf("✔ User %s (%s - %s) berhasil ditambahkan.\n", newKaryawan.Name, newKaryawan.Position, newKaryawan.Department)
		}
	}

	log.Println("✅ Seeding user selesai.")
}
