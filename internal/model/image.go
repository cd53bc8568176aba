package model

// Image — метаданные изображения машины. Сам файл живёт во внешнем
// S3-хранилище, локально храним только URL и ключ объекта.
type Image struct {
	ID  int64  `gorm:"primaryKey"`
	URL string `gorm:"size:500;not null"`

	// Ключ объекта в хранилище; нужен для удаления ассета. Может быть пустым.
	AssetID string `gorm:"size:255"`

	MachineID int64 `gorm:"not null;index"` // ссылка на machines.id
}
