package repo

import (
	"context"

	"gorm.io/gorm"

	"trackflow/internal/models"
)

// WorkspaceStore — чтение/дополнение списка ссылок рабочей области.
type WorkspaceStore struct{ db *gorm.DB }

func NewWorkspaceStore(db *gorm.DB) *WorkspaceStore { return &WorkspaceStore{db: db} }

func (s *WorkspaceStore) WorkspaceExists(ctx context.Context, name string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Workspace{}).
		Where("name = ?", name).Count(&n).Error
	return n > 0, err
}

func (s *WorkspaceStore) WorkspaceLinks(ctx context.Context, name string) ([]models.WorkspaceLink, error) {
	var links []models.WorkspaceLink
	err := s.db.WithContext(ctx).
		Where("workspace = ?", name).
		Order("idx asc, id asc").
		Find(&links).Error
	return links, err
}

// AppendWorkspaceLinks дописывает ссылки в конец списка, продолжая нумерацию idx.
func (s *WorkspaceStore) AppendWorkspaceLinks(ctx context.Context, name string, links []models.WorkspaceLink) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxIdx int
		// NULL при пустом списке — COALESCE в 0
		if err := tx.Model(&models.WorkspaceLink{}).
			Where("workspace = ?", name).
			Select("COALESCE(MAX(idx), 0)").Scan(&maxIdx).Error; err != nil {
			return err
		}
		for i := range links {
			links[i].Workspace = name
			links[i].Idx = maxIdx + i + 1
			if err := tx.Create(&links[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
