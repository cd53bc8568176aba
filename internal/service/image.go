package service

import (
	"MachCatalog/internal/model"
	"MachCatalog/internal/repo"
	"MachCatalog/internal/storage"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// allowedExtensions — единственные расширения, которые принимает загрузка.
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// ImageService связывает загруженные файлы с машинами: файл уходит во
// внешнее хранилище, локально остаются только URL и ключ объекта.
type ImageService struct {
	machines repo.MachineRepository
	images   repo.ImageRepository
	store    storage.ImageStore
	logger   *zap.SugaredLogger
}

func NewImageService(machines repo.MachineRepository, images repo.ImageRepository, store storage.ImageStore, logger *zap.SugaredLogger) *ImageService {
	return &ImageService{machines: machines, images: images, store: store, logger: logger}
}

// Attach загружает файл в хранилище под ключом machines/<id>/<uuid><ext>
// и записывает метаданные. Имя файла клиента в ключ не попадает.
//
// Порядок «сначала удалённая загрузка, потом локальная запись» означает, что
// при падении вставки в БД ассет может остаться в хранилище — это принятое
// ограничение, случай логируется.
func (s *ImageService) Attach(ctx context.Context, machineID int64, filename string, file io.Reader) (*model.Image, error) {
	if _, err := s.machines.GetByID(ctx, machineID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, fmt.Errorf("%w: file extension %q is not allowed", ErrValidation, ext)
	}

	contentType := mime.TypeByExtension(ext)
	key := fmt.Sprintf("machines/%d/%s%s", machineID, uuid.NewString(), ext)

	url, err := s.store.Upload(ctx, key, contentType, file)
	if err != nil {
		s.logger.Errorw("image upload failed", "machine_id", machineID, "key", key, "error", err)
		return nil, ErrUnavailable
	}
	if url == "" {
		s.logger.Errorw("image host returned no URL", "machine_id", machineID, "key", key)
		return nil, ErrUnavailable
	}

	img := &model.Image{URL: url, AssetID: key, MachineID: machineID}
	if err := s.images.Create(ctx, img); err != nil {
		// ассет уже загружен; строка не создана — возможен осиротевший объект
		s.logger.Errorw("image row insert failed after upload, remote asset may be orphaned",
			"machine_id", machineID, "key", key, "error", err)
		return nil, err
	}
	return img, nil
}

// Detach удаляет одну строку изображения и best-effort чистит ассет.
func (s *ImageService) Detach(ctx context.Context, machineID, imageID int64) error {
	img, err := s.images.GetByID(ctx, machineID, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.images.Delete(ctx, machineID, imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if img.AssetID != "" {
		if err := s.store.Delete(ctx, img.AssetID); err != nil {
			s.logger.Warnw("failed to delete remote asset", "machine_id", machineID, "asset_id", img.AssetID, "error", err)
		}
	}
	return nil
}
