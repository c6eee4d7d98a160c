package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Sistem-Absensi-Karyawan/config"
	"Sistem-Absensi-Karyawan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DeviceRepository struct {
	collection *mongo.Collection
}

func NewDeviceRepository() *DeviceRepository {
	return &DeviceRepository{
		collection: config.GetCollection(config.DeviceCollection),
	}
}

func (r *DeviceRepository) Create(ctx context.Context, device *models.Device) (*models.Device, error) {
	device.ID = primitive.NewObjectID()
	device.CreatedAt = time.Now()
	device.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, device)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("serial perangkat sudah terdaftar")
		}
		return nil, fmt.Errorf("gagal mendaftarkan perangkat: %w", err)
	}
	return device, nil
}

func (r *DeviceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Device, error) {
	var device models.Device
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&device)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan perangkat berdasarkan ID: %w", err)
	}
	return &device, nil
}

// FindBySerial mencari perangkat dari serial yang dikirim saat absen masuk.
func (r *DeviceRepository) FindBySerial(ctx context.Context, serial string) (*models.Device, error) {
	var device models.Device
	err := r.collection.FindOne(ctx, bson.M{"serial": serial}).Decode(&device)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan perangkat berdasarkan serial: %w", err)
	}
	return &device, nil
}

func (r *DeviceRepository) FindAll(ctx context.Context) ([]models.Device, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil daftar perangkat: %w", err)
	}
	defer cursor.Close(ctx)

	var devices []models.Device
	if err = cursor.All(ctx, &devices); err != nil {
		return nil, fmt.Errorf("gagal mendecode daftar perangkat: %w", err)
	}

	if len(devices) == 0 {
		return []models.Device{}, nil
	}
	return devices, nil
}

// SetActive mengaktifkan atau menonaktifkan perangkat. Perangkat nonaktif
// ditolak saat absen masuk.
func (r *DeviceRepository) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	update := bson.M{
		"$set": bson.M{
			"active":     active,
			"updated_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("gagal mengubah status perangkat: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("perangkat tidak ditemukan")
	}
	return nil
}

func (r *DeviceRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("gagal menghapus perangkat: %w", err)
	}
	if res.DeletedCount == 0 {
		return errors.New("perangkat tidak ditemukan")
	}
	return nil
}
