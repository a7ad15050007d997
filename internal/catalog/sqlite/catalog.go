// Package sqlite хранит каталог товаров во встроенной SQLite через gorm.
package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// productRow — строка таблицы products. Маска размеров хранится как int64:
// драйвер SQLite не принимает uint64 со старшим битом.
type productRow struct {
	ID         int64  `gorm:"primaryKey;autoIncrement:false"`
	Name       string `gorm:"not null"`
	PriceMinor int64  `gorm:"not null;check:price_minor >= 0"`
	ImagePath  string
	SizeBits   int64 `gorm:"column:size_bits;not null"`
}

func (productRow) TableName() string { return "products" }

func toRow(p domain.Product) productRow {
	return productRow{
		ID:         p.ID,
		Name:       p.Name,
		PriceMinor: p.PriceMinor,
		ImagePath:  p.ImagePath,
		SizeBits:   int64(p.Sizes.Bits()),
	}
}

func (r productRow) toDomain() domain.Product {
	return domain.Product{
		ID:         r.ID,
		Name:       r.Name,
		PriceMinor: r.PriceMinor,
		ImagePath:  r.ImagePath,
		Sizes:      domain.SizeSetFromBits(uint64(r.SizeBits)),
	}
}

// Catalog — каталог товаров поверх gorm.
type Catalog struct {
	db *gorm.DB
}

// Open открывает файл SQLite и создаёт таблицу при необходимости.
func Open(path string) (*Catalog, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite catalog: %w", err)
	}
	if err := db.AutoMigrate(&productRow{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite catalog: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Product возвращает карточку или ErrProductNotFound.
func (c *Catalog) Product(ctx context.Context, id int64) (domain.Product, error) {
	var row productRow
	err := c.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("select product %d: %w", id, err)
	}
	return row.toDomain(), nil
}

// Put добавляет или заменяет карточку товара.
func (c *Catalog) Put(ctx context.Context, p domain.Product) error {
	if p.PriceMinor < 0 {
		return domain.ErrInvalidAmount
	}
	row := toRow(p)
	err := c.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert product %d: %w", p.ID, err)
	}
	return nil
}

// List возвращает все товары по возрастанию id.
func (c *Catalog) List(ctx context.Context) ([]domain.Product, error) {
	var rows []productRow
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]domain.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// Close закрывает соединение с файлом.
func (c *Catalog) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ domain.Catalog = (*Catalog)(nil)
