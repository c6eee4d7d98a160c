package service

import (
	"context"
	"sync"

	"Sistem-Absensi-Karyawan/models"
)

// DashboardCache menyimpan snapshot statistik dashboard terakhir yang
// berhasil diambil. Setiap refresh diberi nomor urut monoton sehingga hasil
// dari permintaan yang sudah tersusul permintaan lebih baru dibuang, bukan
// menimpa data yang lebih segar.
type DashboardCache struct {
	mu       sync.Mutex
	seq      uint64
	applied  uint64
	snapshot *models.DashboardStats
}

func NewDashboardCache() *DashboardCache {
	return &DashboardCache{}
}

// Refresh menjalankan fetch lalu menerapkan hasilnya dengan aturan
// last-request-wins. Bila fetch gagal, snapshot lama dipertahankan dan ikut
// dikembalikan bersama error supaya pemanggil bisa tetap menampilkannya.
func (c *DashboardCache) Refresh(ctx context.Context, fetch func(context.Context) (*models.DashboardStats, error)) (*models.DashboardStats, error) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	stats, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		return c.snapshot, err
	}
	if seq < c.applied {
		// Hasil basi: permintaan yang lebih baru sudah diterapkan
		return c.snapshot, nil
	}

	c.applied = seq
	c.snapshot = stats
	return stats, nil
}

// Snapshot mengembalikan hasil refresh terakhir yang berhasil, nil bila
// belum pernah ada.
func (c *DashboardCache) Snapshot() *models.DashboardStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}
