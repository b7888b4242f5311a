package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trackflow/internal/models"
)

// SingleStore — доступ к таблице синглтонов (doctype, fieldname) → value
// и к дочерним строкам настроек.
type SingleStore struct{ db *gorm.DB }

func NewSingleStore(db *gorm.DB) *SingleStore { return &SingleStore{db: db} }

// SingleExists: синглтон считается существующим, если у него есть
// хотя бы одно значение.
func (s *SingleStore) SingleExists(ctx context.Context, doctype string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.SingleValue{}).
		Where("doctype = ?", doctype).Count(&n).Error
	return n > 0, err
}

// GetSingle возвращает все значения синглтона как map поле→значение.
// Отсутствующий синглтон — пустая map, не ошибка.
func (s *SingleStore) GetSingle(ctx context.Context, doctype string) (map[string]string, error) {
	var rows []models.SingleValue
	if err := s.db.WithContext(ctx).
		Where("doctype = ?", doctype).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Fieldname] = r.Value
	}
	return out, nil
}

// SetSingleValue — upsert одного поля синглтона (append в head_html и т.п.).
func (s *SingleStore) SetSingleValue(ctx context.Context, doctype, field, value string) error {
	row := models.SingleValue{DocTypeName: doctype, Fieldname: field, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "doctype"}, {Name: "fieldname"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error
}

// InsertSettings пишет полный дефолтный payload синглтона настроек:
// скалярные значения плюс дочерние строки IP-диапазонов, одной транзакцией.
func (s *SingleStore) InsertSettings(ctx context.Context, doctype string,
	values []models.SingleValue, ranges []models.InternalIPRange) error {

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range values {
			values[i].DocTypeName = doctype
			if err := tx.Create(&values[i]).Error; err != nil {
				return err
			}
		}
		for i := range ranges {
			ranges[i].Parent = doctype
			if ranges[i].ParentField == "" {
				ranges[i].ParentField = "internal_ip_ranges"
			}
			ranges[i].Idx = i + 1
			if err := tx.Create(&ranges[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
