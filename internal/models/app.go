package models

// InstalledApp — приложение, установленное на площадке хоста.
type InstalledApp struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:140;not null" json:"name"`
}

func (InstalledApp) TableName() string { return "installed_apps" }
