package models

import (
	"time"

	"gorm.io/datatypes"
)

// Workspace — документ рабочей области хоста с упорядоченным списком ссылок.
type Workspace struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name    string         `gorm:"uniqueIndex;size:140;not null" json:"name"`
	Module  string         `gorm:"size:140" json:"module"`
	Public  bool           `json:"public"`
	Content datatypes.JSON `gorm:"type:jsonb" json:"content"` // раскладка блоков, нам не нужна — не трогаем
}

func (Workspace) TableName() string { return "tab_workspace" }

// WorkspaceLink — строка списка ссылок; Type "Card Break" открывает секцию.
type WorkspaceLink struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Workspace string `gorm:"index;size:140;not null" json:"workspace"`
	Idx       int    `json:"idx"`
	Type      string `gorm:"size:32;not null" json:"type"` // "Link" | "Card Break"
	Label     string `gorm:"size:140" json:"label"`
	LinkType  string `gorm:"size:32" json:"link_type"` // "DocType" для наших ссылок
	LinkTo    string `gorm:"size:140" json:"link_to"`
	Hidden    bool   `json:"hidden"`
	Onboard   bool   `json:"onboard"`
}

func (WorkspaceLink) TableName() string { return "tab_workspace_link" }
