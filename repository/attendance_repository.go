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

type AttendanceRepository interface {
	CreateAttendance(ctx context.Context, attendance *models.Attendance) (*mongo.InsertOneResult, error)
	FindAttendancesByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) ([]models.Attendance, error)
	FindOpenSession(ctx context.Context, userID primitive.ObjectID, date string) (*models.Attendance, error)
	UpdateAttendanceCheckout(ctx context.Context, attendanceID primitive.ObjectID, checkOutTime string) (*mongo.UpdateResult, error)
	UpdateAttendance(ctx context.Context, id primitive.ObjectID, payload *models.AttendanceUpdatePayload) (*mongo.UpdateResult, error)
	FindAttendanceByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Attendance, error)
	GetAllAttendancesWithUserDetails(ctx context.Context, filter bson.M, page, limit int64) ([]models.AttendanceWithUser, int64, error)
	FindRangeWithShift(ctx context.Context, startDate, endDate string) ([]models.AttendanceWithShift, error)
	FindUserRangeWithShift(ctx context.Context, userID primitive.ObjectID, startDate, endDate string) ([]models.AttendanceWithShift, error)
	CountByStatusOnDate(ctx context.Context, date, status string) (int64, error)
	CountOpenSessionsOnDate(ctx context.Context, date string) (int64, error)
}

type attendanceRepository struct {
	attendanceCollection *mongo.Collection
}

func NewAttendanceRepository() AttendanceRepository {
	return &attendanceRepository{
		attendanceCollection: config.GetCollection(config.AttendanceCollection),
	}
}

func (r *attendanceRepository) CreateAttendance(ctx context.Context, attendance *models.Attendance) (*mongo.InsertOneResult, error) {
	res, err := r.attendanceCollection.InsertOne(ctx, attendance)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat absensi: %w", err)
	}
	return res, nil
}

// FindAttendancesByUserAndDate mengembalikan semua record pada satu tanggal.
// Satu karyawan boleh punya lebih dari satu record per hari (shift ganda).
func (r *attendanceRepository) FindAttendancesByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) ([]models.Attendance, error) {
	filter := bson.M{"user_id": userID, "date": date}
	opts := options.Find().SetSort(bson.D{{Key: "waktu", Value: 1}})

	cursor, err := r.attendanceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari absensi berdasarkan user dan tanggal: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Attendance
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode absensi: %w", err)
	}

	if len(results) == 0 {
		return []models.Attendance{}, nil
	}
	return results, nil
}

// FindOpenSession mencari record hari itu yang belum absen keluar.
// Record susulan tidak punya jam masuk-keluar, jadi bukan sesi terbuka.
func (r *attendanceRepository) FindOpenSession(ctx context.Context, userID primitive.ObjectID, date string) (*models.Attendance, error) {
	var attendance models.Attendance
	filter := bson.M{
		"user_id": userID,
		"date":    date,
		"method":  models.MethodReguler,
		"$or": []bson.M{
			{"waktu_keluar": ""},
			{"waktu_keluar": bson.M{"$exists": false}},
		},
	}

	err := r.attendanceCollection.FindOne(ctx, filter).Decode(&attendance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mencari sesi absensi terbuka: %w", err)
	}
	return &attendance, nil
}

func (r *attendanceRepository) UpdateAttendanceCheckout(ctx context.Context, attendanceID primitive.ObjectID, checkOutTime string) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"waktu_keluar": checkOutTime,
			"updated_at":   time.Now(),
		},
	}
	res, err := r.attendanceCollection.UpdateByID(ctx, attendanceID, update)
	if err != nil {
		return nil, fmt.Errorf("gagal update absen keluar: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) UpdateAttendance(ctx context.Context, id primitive.ObjectID, payload *models.AttendanceUpdatePayload) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{}}
	if payload.Waktu != "" {
		update["$set"].(bson.M)["waktu"] = payload.Waktu
	}
	if payload.WaktuKeluar != "" {
		update["$set"].(bson.M)["waktu_keluar"] = payload.WaktuKeluar
	}
	if payload.Status != "" {
		update["$set"].(bson.M)["status"] = payload.Status
	}
	if payload.Lokasi != "" {
		update["$set"].(bson.M)["lokasi"] = payload.Lokasi
	}
	if payload.Reason != "" {
		update["$set"].(bson.M)["reason"] = payload.Reason
	}
	update["$set"].(bson.M)["updated_at"] = time.Now()

	res, err := r.attendanceCollection.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *attendanceRepository) FindAttendanceByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Attendance, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "waktu", Value: -1}})

	cursor, err := r.attendanceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari riwayat absensi user: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Attendance
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode riwayat absensi: %w", err)
	}

	if len(results) == 0 {
		return []models.Attendance{}, nil
	}
	return results, nil
}

func (r *attendanceRepository) GetAllAttendancesWithUserDetails(ctx context.Context, filter bson.M, page, limit int64) ([]models.AttendanceWithUser, int64, error) {

	total, err := r.attendanceCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menghitung total dokumen absensi: %w", err)
	}

	pipeline := mongo.Pipeline{

		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}, {Key: "waktu", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDetails"},
		}}},
		{{Key: "$unwind", Value: "$userDetails"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.ShiftCollection},
			{Key: "localField", Value: "shift_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "shiftDetails"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$shiftDetails"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: "$_id"},
			{Key: "user_id", Value: 1},
			{Key: "date", Value: 1},
			{Key: "waktu", Value: 1},
			{Key: "waktu_keluar", Value: 1},
			{Key: "status", Value: 1},
			{Key: "method", Value: 1},
			{Key: "lokasi", Value: 1},
			{Key: "reason", Value: 1},
			{Key: "name", Value: "$userDetails.name"},
			{Key: "email", Value: "$userDetails.email"},
			{Key: "shift_name", Value: "$shiftDetails.name"},
		}}},
	}

	cursor, err := r.attendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal aggregation untuk riwayat kehadiran admin: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.AttendanceWithUser
	if err = cursor.All(ctx, &results); err != nil {
		return nil, 0, fmt.Errorf("gagal decode hasil aggregation riwayat kehadiran: %w", err)
	}

	if len(results) == 0 {
		return []models.AttendanceWithUser{}, total, nil
	}
	return results, total, nil
}

// rangeWithShiftPipeline membangun pipeline join attendances->shifts untuk
// satu rentang tanggal inklusif. Record tanpa shift tetap ikut (shift nil).
func rangeWithShiftPipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}, {Key: "waktu", Value: 1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.ShiftCollection},
			{Key: "localField", Value: "shift_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "shift"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$shift"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

func (r *attendanceRepository) FindRangeWithShift(ctx context.Context, startDate, endDate string) ([]models.AttendanceWithShift, error) {
	match := bson.M{"date": bson.M{"$gte": startDate, "$lte": endDate}}

	cursor, err := r.attendanceCollection.Aggregate(ctx, rangeWithShiftPipeline(match))
	if err != nil {
		return nil, fmt.Errorf("gagal aggregation absensi per rentang tanggal: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.AttendanceWithShift
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode absensi per rentang tanggal: %w", err)
	}

	if len(results) == 0 {
		return []models.AttendanceWithShift{}, nil
	}
	return results, nil
}

func (r *attendanceRepository) FindUserRangeWithShift(ctx context.Context, userID primitive.ObjectID, startDate, endDate string) ([]models.AttendanceWithShift, error) {
	match := bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": startDate, "$lte": endDate},
	}

	cursor, err := r.attendanceCollection.Aggregate(ctx, rangeWithShiftPipeline(match))
	if err != nil {
		return nil, fmt.Errorf("gagal aggregation absensi user per rentang tanggal: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.AttendanceWithShift
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode absensi user per rentang tanggal: %w", err)
	}

	if len(results) == 0 {
		return []models.AttendanceWithShift{}, nil
	}
	return results, nil
}

func (r *attendanceRepository) CountByStatusOnDate(ctx context.Context, date, status string) (int64, error) {
	count, err := r.attendanceCollection.CountDocuments(ctx, bson.M{"date": date, "status": status})
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung absensi status %s: %w", status, err)
	}
	return count, nil
}

func (r *attendanceRepository) CountOpenSessionsOnDate(ctx context.Context, date string) (int64, error) {
	filter := bson.M{
		"date": date,
		"$or": []bson.M{
			{"waktu_keluar": ""},
			{"waktu_keluar": bson.M{"$exists": false}},
		},
	}
	count, err := r.attendanceCollection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung sesi absensi terbuka: %w", err)
	}
	return count, nil
}
