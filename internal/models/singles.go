package models

import "time"

// SingleValue — строка таблицы синглтонов: (doctype, fieldname) → value.
// Синглтон "существует", если у него есть хотя бы одна строка.
type SingleValue struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DocTypeName string `gorm:"uniqueIndex:singles_key;size:140;not null;column:doctype" json:"doctype"`
	Fieldname   string `gorm:"uniqueIndex:singles_key;size:140;not null" json:"fieldname"`
	Value       string `gorm:"type:text" json:"value"`
}

func (SingleValue) TableName() string { return "tab_singles" }

// InternalIPRange — дочерняя строка настроек: диапазон в CIDR-нотации.
type InternalIPRange struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Parent      string `gorm:"index;size:140;not null" json:"parent"` // "TrackFlow Settings"
	ParentField string `gorm:"size:140" json:"parentfield"`           // "internal_ip_ranges"
	Idx         int    `json:"idx"`
	IPRange     string `gorm:"size:64;not null" json:"ip_range"`
	Description string `gorm:"size:140" json:"description"`
}

func (InternalIPRange) TableName() string { return "tab_internal_ip_range" }
