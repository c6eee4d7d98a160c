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

type LocationRepository struct {
	collection *mongo.Collection
}

func NewLocationRepository() *LocationRepository {
	return &LocationRepository{
		collection: config.GetCollection(config.LocationCollection),
	}
}

func (r *LocationRepository) Create(ctx context.Context, location *models.Location) (*models.Location, error) {
	location.ID = primitive.NewObjectID()
	location.CreatedAt = time.Now()
	location.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat lokasi: %w", err)
	}
	return location, nil
}

func (r *LocationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Location, error) {
	var location models.Location
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&location)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan lokasi berdasarkan ID: %w", err)
	}
	return &location, nil
}

func (r *LocationRepository) FindByName(ctx context.Context, name string) (*models.Location, error) {
	var location models.Location
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&location)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan lokasi berdasarkan nama: %w", err)
	}
	return &location, nil
}

// FindByQRValue mencari lokasi dari nilai QR yang dipindai saat absen masuk.
func (r *LocationRepository) FindByQRValue(ctx context.Context, qrValue string) (*models.Location, error) {
	var location models.Location
	err := r.collection.FindOne(ctx, bson.M{"qr_code": qrValue}).Decode(&location)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan lokasi berdasarkan QR: %w", err)
	}
	return &location, nil
}

func (r *LocationRepository) FindAll(ctx context.Context) ([]models.Location, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil daftar lokasi: %w", err)
	}
	defer cursor.Close(ctx)

	var locations []models.Location
	if err = cursor.All(ctx, &locations); err != nil {
		return nil, fmt.Errorf("gagal mendecode daftar lokasi: %w", err)
	}

	if len(locations) == 0 {
		return []models.Location{}, nil
	}
	return locations, nil
}

func (r *LocationRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, payload *models.LocationPayload) error {
	update := bson.M{
		"$set": bson.M{
			"name":       payload.Name,
			"address":    payload.Address,
			"latitude":   *payload.Latitude,
			"longitude":  *payload.Longitude,
			"radius_m":   payload.RadiusM,
			"updated_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("gagal mengupdate lokasi: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("lokasi tidak ditemukan")
	}
	return nil
}

// UpdateQRCode menyimpan nilai QR baru hasil generate ulang.
func (r *LocationRepository) UpdateQRCode(ctx context.Context, id primitive.ObjectID, qrValue string) error {
	update := bson.M{
		"$set": bson.M{
			"qr_code":    qrValue,
			"updated_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("gagal mengupdate QR lokasi: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("lokasi tidak ditemukan")
	}
	return nil
}

func (r *LocationRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("gagal menghapus lokasi: %w", err)
	}
	if res.DeletedCount == 0 {
		return errors.New("lokasi tidak ditemukan")
	}
	return nil
}
