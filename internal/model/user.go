package model

// User — учётная запись администратора. Практически всегда одна строка,
// но схема этого не запрещает.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Login    string `gorm:"size:80;uniqueIndex;not null"`
	Password string `gorm:"size:120;not null"` // bcrypt-хеш, никогда не в открытом виде
}
