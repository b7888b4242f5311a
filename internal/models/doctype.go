package models

import (
	"time"
)

// DocType — запись реестра типов документов хост-стора.
// Для дочерних (табличных) типов IsTable=1.
type DocType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name                   string `gorm:"uniqueIndex;size:140;not null" json:"name"`
	Module                 string `gorm:"size:140" json:"module"`
	IsTable                bool   `json:"istable"`
	IsSingle               bool   `json:"issingle"`
	IsSubmittable          bool   `json:"is_submittable"`
	AllowRename            bool   `json:"allow_rename"`
	IndexWebPagesForSearch bool   `json:"index_web_pages_for_search"`
	Engine                 string `gorm:"size:20" json:"engine"`
	SortField              string `gorm:"size:64" json:"sort_field"`
	SortOrder              string `gorm:"size:8" json:"sort_order"`

	Fields []DocField `gorm:"foreignKey:DocTypeID" json:"fields"`
}

func (DocType) TableName() string { return "tab_doc_type" }

// DocField — поле внутри определения DocType.
type DocField struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	DocTypeID uint `gorm:"index;not null" json:"-"`

	Fieldname   string `gorm:"size:140;not null" json:"fieldname"`
	Fieldtype   string `gorm:"size:64;not null" json:"fieldtype"`
	Label       string `gorm:"size:140" json:"label"`
	Reqd        bool   `json:"reqd"`
	InListView  bool   `json:"in_list_view"`
	Description string `gorm:"size:255" json:"description"`
	Idx         int    `json:"idx"`
}

func (DocField) TableName() string { return "tab_doc_field" }

// DocPerm — правило доступа (роль × DocType).
type DocPerm struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name        string `gorm:"uniqueIndex;size:140;not null" json:"name"`
	Parent      string `gorm:"index;size:140;not null" json:"parent"` // имя DocType
	ParentType  string `gorm:"size:140" json:"parenttype"`            // всегда "DocType"
	ParentField string `gorm:"size:140" json:"parentfield"`           // всегда "permissions"
	Role        string `gorm:"index;size:140;not null" json:"role"`

	Read   bool `json:"read"`
	Write  bool `json:"write"`
	Create bool `json:"create"`
	Delete bool `json:"delete"`
	Submit bool `json:"submit"`
	Cancel bool `json:"cancel"`
}

func (DocPerm) TableName() string { return "tab_doc_perm" }
