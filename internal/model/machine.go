package model

import "time"

// Machine — запись каталога: единица техники на витрине.
type Machine struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text;not null"`

	// Связь с изображениями; выборка всегда явным запросом, не lazy-load
	Images []Image `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
