package service

import (
	"context"
	"errors"
	"testing"

	"Sistem-Absensi-Karyawan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardCacheRefresh(t *testing.T) {
	t.Run("stores first successful snapshot", func(t *testing.T) {
		cache := NewDashboardCache()
		stats := &models.DashboardStats{TotalKaryawan: 7}

		got, err := cache.Refresh(context.Background(), func(ctx context.Context) (*models.DashboardStats, error) {
			return stats, nil
		})
		require.NoError(t, err)
		assert.Equal(t, stats, got)
		assert.Equal(t, stats, cache.Snapshot())
	})

	t.Run("stale response does not overwrite fresher one", func(t *testing.T) {
		cache := NewDashboardCache()

		slowStarted := make(chan struct{})
		release := make(chan struct{})
		done := make(chan *models.DashboardStats, 1)

		slowStats := &models.DashboardStats{TotalKaryawan: 1}
		freshStats := &models.DashboardStats{TotalKaryawan: 2}

		go func() {
			got, _ := cache.Refresh(context.Background(), func(ctx context.Context) (*models.DashboardStats, error) {
				close(slowStarted)
				<-release
				return slowStats, nil
			})
			done <- got
		}()

		<-slowStarted

		// Permintaan kedua lebih baru dan selesai lebih dulu.
		got, err := cache.Refresh(context.Background(), func(ctx context.Context) (*models.DashboardStats, error) {
			return freshStats, nil
		})
		require.NoError(t, err)
		assert.Equal(t, freshStats, got)

		// Permintaan pertama baru selesai sekarang: hasilnya basi dan
		// harus dibuang, bukan menimpa snapshot yang lebih segar.
		close(release)
		assert.Equal(t, freshStats, <-done)
		assert.Equal(t, freshStats, cache.Snapshot())
	})

	t.Run("failed refresh keeps previous snapshot", func(t *testing.T) {
		cache := NewDashboardCache()
		first := &models.DashboardStats{TotalKaryawan: 5}

		_, err := cache.Refresh(context.Background(), func(ctx context.Context) (*models.DashboardStats, error) {
			return first, nil
		})
		require.NoError(t, err)

		got, err := cache.Refresh(context.Background(), func(ctx context.Context) (*models.DashboardStats, error) {
			return nil, errors.New("backend tidak terjangkau")
		})
		assert.Error(t, err)
		assert.Equal(t, first, got)
		assert.Equal(t, first, cache.Snapshot())
	})

	t.Run("failed refresh before any success returns nil", func(t *testing.T) {
		cache := NewDashboardCache()

		got, err := cache.Refresh(context.Background(), func(ctx context.Context) (*models.DashboardStats, error) {
			return nil, errors.New("backend tidak terjangkau")
		})
		assert.Error(t, err)
		assert.Nil(t, got)
		assert.Nil(t, cache.Snapshot())
	})
}
