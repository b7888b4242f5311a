package provision

import (
	"context"
	"fmt"

	"trackflow/internal/logs"
	"trackflow/internal/models"
	"trackflow/internal/schema"
)

// ensureInternalIPRangeDocType гарантирует дочерний DocType до того, как
// на него сошлются настройки. Возвращает индикатор успеха, НЕ ошибку:
// провал здесь не должен валить прогон — зависимые стадии проверяют флаг.
//
// Порядок: уже есть → ок; вшитое определение → создать; иначе ручная
// сборка схемы (табличный тип, два Data-поля).
func (p *Provisioner) ensureInternalIPRangeDocType(ctx context.Context) bool {
	exists, err := p.docTypes.DocTypeExists(ctx, internalIPRangeDocType)
	if err != nil {
		logs.Error(errCategory, fmt.Errorf("check %s doctype: %w", internalIPRangeDocType, err))
		return false
	}
	if exists {
		logs.Infof("%s DocType exists", internalIPRangeDocType)
		return true
	}

	logs.Infof("Creating %s DocType...", internalIPRangeDocType)

	// Предпочтительный путь — вшитое JSON-определение.
	var loadErr error
	if dt, err := schema.Load(internalIPRangeDocType); err == nil {
		if err := p.docTypes.CreateDocType(ctx, dt); err == nil {
			logs.Infof("%s DocType created from embedded definition", internalIPRangeDocType)
			return true
		} else {
			loadErr = err
		}
	} else {
		loadErr = err
	}
	logs.Infof("Could not create from definition: %v", loadErr)

	// Фолбэк: собрать схему вручную.
	dt := &models.DocType{
		Name:                   internalIPRangeDocType,
		Module:                 moduleName,
		IsTable:                true,
		Engine:                 "InnoDB",
		AllowRename:            false,
		IndexWebPagesForSearch: true,
		SortField:              "modified",
		SortOrder:              "DESC",
		Fields: []models.DocField{
			{Fieldname: "ip_range", Fieldtype: "Data", Label: "IP Range", Reqd: true, InListView: true,
				Description: "IP range in CIDR notation (e.g., 192.168.1.0/24)", Idx: 1},
			{Fieldname: "description", Fieldtype: "Data", Label: "Description", InListView: true,
				Description: "Description of this IP range", Idx: 2},
		},
	}
	if err := p.docTypes.CreateDocType(ctx, dt); err != nil {
		logs.Error(errCategory, fmt.Errorf("create %s doctype: %w", internalIPRangeDocType, err))
		logs.Infof("Warning: could not create %s DocType; settings creation will be skipped", internalIPRangeDocType)
		logs.Infof("If %s fails to save later, re-run `trackflow migrate` after the host sync completes", settingsDocType)
		return false
	}

	logs.Infof("%s DocType created manually", internalIPRangeDocType)
	return true
}
