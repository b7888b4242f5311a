package models

import (
	"fmt"
	"time"
)

// Role — роль с флагами возможностей desk-интерфейса.
// Создаётся один раз, после создания не мутируется.
type Role struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	RoleName      string `gorm:"uniqueIndex;size:140;not null" json:"role_name"`
	DeskAccess    bool   `json:"desk_access"`
	TwoFactorAuth bool   `json:"two_factor_auth"`
	SearchBar     bool   `json:"search_bar"`
	Notifications bool   `json:"notifications"`
	ListSidebar   bool   `json:"list_sidebar"`
	BulkActions   bool   `json:"bulk_actions"`
	ViewSwitcher  bool   `json:"view_switcher"`
	FormSidebar   bool   `json:"form_sidebar"`
	Timeline      bool   `json:"timeline"`
	Dashboard     bool   `json:"dashboard"`
}

func (Role) TableName() string { return "tab_role" }

// CustomField — поле, добавленное к чужому DocType поверх его базовой схемы.
// Ключ — "<DocType>-<fieldname>".
type CustomField struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name        string `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Dt          string `gorm:"index;size:140;not null" json:"dt"` // владеющий DocType
	Fieldname   string `gorm:"size:140;not null" json:"fieldname"`
	Label       string `gorm:"size:140" json:"label"`
	Fieldtype   string `gorm:"size:64;not null" json:"fieldtype"`
	InsertAfter string `gorm:"size:140" json:"insert_after"` // якорь не проверяется — зона ответственности хоста
	Options     string `gorm:"size:255" json:"options"`      // цель Link / варианты Select
	Default     string `gorm:"size:255" json:"default"`
	DependsOn   string `gorm:"size:255" json:"depends_on"`
	ReadOnly    bool   `json:"read_only"`
	Hidden      bool   `json:"hidden"`
}

func (CustomField) TableName() string { return "tab_custom_field" }

// Key возвращает ключ существования "<dt>-<fieldname>".
func (c CustomField) Key() string { return fmt.Sprintf("%s-%s", c.Dt, c.Fieldname) }

// PropertySetter — точечное переопределение свойства схемы без правки базы.
// Ключ — "<DocType>-main-<property>".
type PropertySetter struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name           string `gorm:"uniqueIndex;size:255;not null" json:"name"`
	DocTypeName    string `gorm:"index;size:140;not null;column:doc_type" json:"doc_type"`
	DocTypeOrField string `gorm:"size:64" json:"doctype_or_field"` // "DocType" | "DocField"
	Property       string `gorm:"size:140;not null" json:"property"`
	Value          string `gorm:"size:255" json:"value"`
	PropertyType   string `gorm:"size:64" json:"property_type"`
}

func (PropertySetter) TableName() string { return "tab_property_setter" }

// Key возвращает ключ существования "<doc_type>-main-<property>".
func (p PropertySetter) Key() string {
	return fmt.Sprintf("%s-main-%s", p.DocTypeName, p.Property)
}
