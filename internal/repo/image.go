package repo

import (
	"MachCatalog/internal/model"
	"context"

	"gorm.io/gorm"
)

// ImageRepository — контракт доступа к строкам изображений.
type ImageRepository interface {
	// Create вставляет метаданные загруженного изображения.
	Create(ctx context.Context, img *model.Image) error

	// ListByMachine возвращает изображения машины в порядке вставки.
	ListByMachine(ctx context.Context, machineID int64) ([]model.Image, error)

	// GetByID возвращает изображение машины или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, machineID, id int64) (*model.Image, error)

	// Delete удаляет одну строку изображения.
	Delete(ctx context.Context, machineID, id int64) error
}

type imageRepo struct {
	db *gorm.DB
}

// NewImageRepository создаёт реализацию репозитория для Image.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepo{db: db}
}

func (r *imageRepo) Create(ctx context.Context, img *model.Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *imageRepo) ListByMachine(ctx context.Context, machineID int64) ([]model.Image, error) {
	var images []model.Image
	if err := r.db.WithContext(ctx).Where("machine_id = ?", machineID).Order("id").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *imageRepo) GetByID(ctx context.Context, machineID, id int64) (*model.Image, error) {
	var img model.Image
	if err := r.db.WithContext(ctx).Where("machine_id = ? AND id = ?", machineID, id).First(&img).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *imageRepo) Delete(ctx context.Context, machineID, id int64) error {
	tx := r.db.WithContext(ctx).Where("machine_id = ? AND id = ?", machineID, id).Delete(&model.Image{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
