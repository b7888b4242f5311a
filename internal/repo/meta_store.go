package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"trackflow/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")
)

// MetaStore — реестр DocType'ов и установленных приложений хоста.
type MetaStore struct{ db *gorm.DB }

func NewMetaStore(db *gorm.DB) *MetaStore { return &MetaStore{db: db} }

// Дочерние DocType'ы, у которых есть собственная таблица хранения.
// При создании такого типа таблицу нужно поднять миграцией.
var childTables = map[string]any{
	"Internal IP Range": &models.InternalIPRange{},
}

func (s *MetaStore) InstalledApps(ctx context.Context) ([]string, error) {
	var apps []models.InstalledApp
	if err := s.db.WithContext(ctx).Order("id asc").Find(&apps).Error; err != nil {
		return nil, err
	}
	names := make([]string, 0, len(apps))
	for _, a := range apps {
		names = append(names, a.Name)
	}
	return names, nil
}

func (s *MetaStore) DocTypeExists(ctx context.Context, name string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.DocType{}).
		Where("name = ?", name).Count(&n).Error
	return n > 0, err
}

// Meta отдаёт запись реестра вместе с полями (нужен только флаг is_submittable).
func (s *MetaStore) Meta(ctx context.Context, name string) (*models.DocType, error) {
	var dt models.DocType
	err := s.db.WithContext(ctx).Preload("Fields").
		Where("name = ?", name).First(&dt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &dt, err
}

// CreateDocType вставляет определение типа (вместе с полями — ассоциацией)
// и поднимает таблицу хранения для табличных типов. Проверок прав нет:
// провижионер работает без пользовательской сессии.
func (s *MetaStore) CreateDocType(ctx context.Context, dt *models.DocType) error {
	tx := s.db.WithContext(ctx)
	if err := tx.Create(dt).Error; err != nil {
		return err
	}
	if model, ok := childTables[dt.Name]; ok && dt.IsTable {
		if err := tx.Migrator().AutoMigrate(model); err != nil {
			return err
		}
	}
	return nil
}
