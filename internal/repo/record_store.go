package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trackflow/internal/models"
)

// RecordStore — create-if-absent примитивы для ролей, кастомных полей,
// property setter'ов и правил доступа. Существующие записи никогда
// не обновляются (см. семантику установки: дрейф не реконсилируется).
type RecordStore struct{ db *gorm.DB }

func NewRecordStore(db *gorm.DB) *RecordStore { return &RecordStore{db: db} }

func (s *RecordStore) RoleExists(ctx context.Context, name string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Role{}).
		Where("role_name = ?", name).Count(&n).Error
	return n > 0, err
}

func (s *RecordStore) InsertRole(ctx context.Context, r *models.Role) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *RecordStore) CustomFieldExists(ctx context.Context, key string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.CustomField{}).
		Where("name = ?", key).Count(&n).Error
	return n > 0, err
}

func (s *RecordStore) InsertCustomField(ctx context.Context, cf *models.CustomField) error {
	if cf.Name == "" {
		cf.Name = cf.Key()
	}
	return s.db.WithContext(ctx).Create(cf).Error
}

func (s *RecordStore) PropertySetterExists(ctx context.Context, key string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.PropertySetter{}).
		Where("name = ?", key).Count(&n).Error
	return n > 0, err
}

func (s *RecordStore) InsertPropertySetter(ctx context.Context, ps *models.PropertySetter) error {
	if ps.Name == "" {
		ps.Name = ps.Key()
	}
	return s.db.WithContext(ctx).Create(ps).Error
}

// PermExists проверяет пару (DocType, роль), а не одиночный ключ:
// у одного типа может быть много правил для разных ролей.
func (s *RecordStore) PermExists(ctx context.Context, parent, role string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.DocPerm{}).
		Where(&models.DocPerm{Parent: parent, Role: role}).Count(&n).Error
	return n > 0, err
}

func (s *RecordStore) InsertPerm(ctx context.Context, p *models.DocPerm) error {
	if p.Name == "" {
		p.Name = uuid.NewString()
	}
	if p.ParentType == "" {
		p.ParentType = "DocType"
	}
	if p.ParentField == "" {
		p.ParentField = "permissions"
	}
	return s.db.WithContext(ctx).Create(p).Error
}
