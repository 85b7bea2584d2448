// Package storage adalah implementasi Persistence di atas database lewat
// GORM. Pengganti localStorage browser: satu baris blob per key, tanpa
// partial update. Driver dipilih dari konfigurasi (mysql untuk produksi,
// sqlite untuk lokal/test).
package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/restaurant-reservation/config"
	"github.com/yeremiapane/restaurant-reservation/store"
)

type Entry struct {
	Key       string `gorm:"primaryKey;type:varchar(191)"`
	Value     []byte `gorm:"type:blob"`
	UpdatedAt time.Time
}

func (Entry) TableName() string { return "kv_entries" }

type GormStore struct {
	db *gorm.DB
}

// Open membuka koneksi sesuai config dan menyiapkan tabel blob.
func Open(cfg config.Config) (*GormStore, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DBDSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return New(db)
}

// New membungkus koneksi GORM yang sudah ada (dipakai test).
func New(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (g *GormStore) Get(key string) ([]byte, error) {
	var entry Entry
	if err := g.db.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrKeyNotFound
		}
		return nil, err
	}
	return entry.Value, nil
}

func (g *GormStore) Set(key string, value []byte) error {
	entry := Entry{Key: key, Value: value}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
