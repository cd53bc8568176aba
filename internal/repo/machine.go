package repo

import (
	"MachCatalog/internal/model"
	"context"

	"gorm.io/gorm"
)

// MachineRepository определяет контракт доступа к Machine для слоя сервиса.
type MachineRepository interface {
	// List возвращает все машины без изображений (их грузим отдельным запросом).
	List(ctx context.Context) ([]model.Machine, error)

	// GetByID возвращает машину или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (*model.Machine, error)

	// Create вставляет новую машину и заполняет её ID.
	Create(ctx context.Context, m *model.Machine) error

	// Update применяет частичное обновление по карте колонок.
	Update(ctx context.Context, id int64, updates map[string]any) error

	// DeleteWithImages удаляет машину и все её строки изображений в одной
	// транзакции и возвращает удалённые изображения для очистки хранилища.
	// gorm.ErrRecordNotFound, если машины нет.
	DeleteWithImages(ctx context.Context, id int64) ([]model.Image, error)
}

type machineRepo struct {
	db *gorm.DB
}

// NewMachineRepository создаёт реализацию репозитория для Machine.
func NewMachineRepository(db *gorm.DB) MachineRepository {
	return &machineRepo{db: db}
}

func (r *machineRepo) List(ctx context.Context) ([]model.Machine, error) {
	var machines []model.Machine
	if err := r.db.WithContext(ctx).Order("id").Find(&machines).Error; err != nil {
		return nil, err
	}
	return machines, nil
}

func (r *machineRepo) GetByID(ctx context.Context, id int64) (*model.Machine, error) {
	var m model.Machine
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *machineRepo) Create(ctx context.Context, m *model.Machine) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *machineRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&model.Machine{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *machineRepo) DeleteWithImages(ctx context.Context, id int64) ([]model.Image, error) {
	var images []model.Image
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("machine_id = ?", id).Find(&images).Error; err != nil {
			return err
		}
		if err := tx.Where("machine_id = ?", id).Delete(&model.Image{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Machine{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}
