// Package provision — идемпотентная установка TrackFlow в стор CRM-хоста.
// Каждая стадия «ensure»: проверка существования → создание недостающего.
// Существующие записи никогда не правятся, повторный прогон безопасен.
package provision

import (
	"context"

	"trackflow/internal/logs"
	"trackflow/internal/models"
)

// Метка категории для журнала ошибок хоста.
const errCategory = "TrackFlow Install"

// Узкие интерфейсы к стору — по потребителю, не по реализации.
// Их закрывают и GORM-сторы (internal/repo), и MemStore.

type AppSource interface {
	InstalledApps(ctx context.Context) ([]string, error)
}

type DocTypes interface {
	DocTypeExists(ctx context.Context, name string) (bool, error)
	CreateDocType(ctx context.Context, dt *models.DocType) error
	Meta(ctx context.Context, name string) (*models.DocType, error)
}

type Records interface {
	RoleExists(ctx context.Context, name string) (bool, error)
	InsertRole(ctx context.Context, r *models.Role) error
	CustomFieldExists(ctx context.Context, key string) (bool, error)
	InsertCustomField(ctx context.Context, cf *models.CustomField) error
	PropertySetterExists(ctx context.Context, key string) (bool, error)
	InsertPropertySetter(ctx context.Context, ps *models.PropertySetter) error
	PermExists(ctx context.Context, parent, role string) (bool, error)
	InsertPerm(ctx context.Context, p *models.DocPerm) error
}

type Singles interface {
	SingleExists(ctx context.Context, doctype string) (bool, error)
	GetSingle(ctx context.Context, doctype string) (map[string]string, error)
	SetSingleValue(ctx context.Context, doctype, field, value string) error
	InsertSettings(ctx context.Context, doctype string,
		values []models.SingleValue, ranges []models.InternalIPRange) error
}

type Workspaces interface {
	WorkspaceExists(ctx context.Context, name string) (bool, error)
	WorkspaceLinks(ctx context.Context, name string) ([]models.WorkspaceLink, error)
	AppendWorkspaceLinks(ctx context.Context, name string, links []models.WorkspaceLink) error
}

// Deps — весь стор, который нужен провижионеру. Никакого глобального состояния.
type Deps struct {
	Apps       AppSource
	DocTypes   DocTypes
	Records    Records
	Singles    Singles
	Workspaces Workspaces
}

type Provisioner struct {
	apps       AppSource
	docTypes   DocTypes
	records    Records
	singles    Singles
	workspaces Workspaces
}

func New(d Deps) *Provisioner {
	return &Provisioner{
		apps:       d.Apps,
		docTypes:   d.DocTypes,
		records:    d.Records,
		singles:    d.Singles,
		workspaces: d.Workspaces,
	}
}

// BeforeInstall: фатальная проверка зависимостей, затем роли.
func (p *Provisioner) BeforeInstall(ctx context.Context) (*Report, error) {
	rep := NewReport("before_install")
	logs.Infof("Preparing TrackFlow installation...")

	if err := p.checkDependencies(ctx); err != nil {
		rep.Fail("check_dependencies", err)
		return rep, err
	}
	rep.OK("check_dependencies", nil, "")

	if err := p.ensureRoles(ctx, rep); err != nil {
		return rep, err
	}
	return rep, nil
}

// AfterInstall: все стадии настройки; best-effort стадии (настройки,
// трекинг-скрипт) не прерывают прогон.
func (p *Provisioner) AfterInstall(ctx context.Context) (*Report, error) {
	rep := NewReport("after_install")
	logs.Infof("Setting up TrackFlow...")

	if err := p.ensureCustomFields(ctx, rep); err != nil {
		return rep, err
	}
	if err := p.ensurePropertySetters(ctx, rep); err != nil {
		return rep, err
	}
	p.createDefaultData(rep)
	p.ensureSettings(ctx, rep)
	if err := p.setupPermissions(ctx, rep); err != nil {
		return rep, err
	}
	p.enableTracking(ctx, rep)

	logs.Infof("TrackFlow has been successfully installed!")
	return rep, nil
}

// AfterMigrate: достройка после миграции хоста — схема, поля, настройки,
// дефолтные данные, интеграция в workspace.
func (p *Provisioner) AfterMigrate(ctx context.Context) (*Report, error) {
	rep := NewReport("after_migrate")

	if ok := p.ensureInternalIPRangeDocType(ctx); ok {
		rep.OK("ensure_internal_ip_range", nil, "")
	} else {
		rep.Skip("ensure_internal_ip_range", "doctype not ready; will retry next run")
	}
	if err := p.ensureCustomFields(ctx, rep); err != nil {
		return rep, err
	}
	p.ensureSettings(ctx, rep)
	p.createDefaultData(rep)
	p.setupWorkspaceIntegration(ctx, rep)

	logs.Infof("TrackFlow migration completed successfully!")
	return rep, nil
}
