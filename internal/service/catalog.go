package service

import (
	"MachCatalog/internal/model"
	"MachCatalog/internal/repo"
	"MachCatalog/internal/storage"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PublicMachine — публичное представление машины: без полного списка
// изображений, только обложка.
type PublicMachine struct {
	ID          int64
	Name        string
	Description string
	ImageURL    string // первое изображение; пусто, если изображений нет
}

// AdminMachine — административное представление с полным списком URL.
type AdminMachine struct {
	ID          int64
	Name        string
	Description string
	ImageURLs   []string
}

// CatalogService инкапсулирует CRUD по машинам. Изображения грузятся явным
// запросом при сборке ответа, никакого lazy-load за кулисами.
type CatalogService struct {
	machines repo.MachineRepository
	images   repo.ImageRepository
	store    storage.ImageStore
	logger   *zap.SugaredLogger
}

func NewCatalogService(machines repo.MachineRepository, images repo.ImageRepository, store storage.ImageStore, logger *zap.SugaredLogger) *CatalogService {
	return &CatalogService{machines: machines, images: images, store: store, logger: logger}
}

// ListPublic возвращает все машины для публичной витрины.
func (s *CatalogService) ListPublic(ctx context.Context) ([]PublicMachine, error) {
	machines, err := s.machines.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]PublicMachine, 0, len(machines))
	for _, m := range machines {
		pm := PublicMachine{ID: m.ID, Name: m.Name, Description: m.Description}
		images, err := s.images.ListByMachine(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		if len(images) > 0 {
			pm.ImageURL = images[0].URL
		}
		result = append(result, pm)
	}
	return result, nil
}

// ListAdmin возвращает все машины с полными списками изображений.
func (s *CatalogService) ListAdmin(ctx context.Context) ([]AdminMachine, error) {
	machines, err := s.machines.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]AdminMachine, 0, len(machines))
	for _, m := range machines {
		images, err := s.images.ListByMachine(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		urls := make([]string, 0, len(images))
		for _, img := range images {
			urls = append(urls, img.URL)
		}
		result = append(result, AdminMachine{ID: m.ID, Name: m.Name, Description: m.Description, ImageURLs: urls})
	}
	return result, nil
}

// Create заводит новую машину без изображений.
func (s *CatalogService) Create(ctx context.Context, name, description string) (*model.Machine, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, fmt.Errorf("%w: name and description are required", ErrValidation)
	}

	m := &model.Machine{Name: name, Description: description}
	if err := s.machines.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update — частичное обновление: меняются только переданные поля.
func (s *CatalogService) Update(ctx context.Context, id int64, name, description *string) (*model.Machine, error) {
	updates := map[string]any{}
	if name != nil {
		v := strings.TrimSpace(*name)
		if v == "" {
			return nil, fmt.Errorf("%w: name must not be blank", ErrValidation)
		}
		updates["name"] = v
	}
	if description != nil {
		v := strings.TrimSpace(*description)
		if v == "" {
			return nil, fmt.Errorf("%w: description must not be blank", ErrValidation)
		}
		updates["description"] = v
	}

	if len(updates) > 0 {
		if err := s.machines.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	m, err := s.machines.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// Delete удаляет машину вместе со строками изображений (одна транзакция),
// затем best-effort чистит ассеты во внешнем хранилище. Ошибки очистки
// только логируются — локальное удаление уже состоялось.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	images, err := s.machines.DeleteWithImages(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	for _, img := range images {
		if img.AssetID == "" {
			continue
		}
		if err := s.store.Delete(ctx, img.AssetID); err != nil {
			s.logger.Warnw("failed to delete remote asset", "machine_id", id, "asset_id", img.AssetID, "error", err)
		}
	}
	return nil
}
