package provision

import (
	"context"
	"fmt"

	"trackflow/internal/logs"
)

// ensureSettings создаёт синглтон настроек с полным дефолтным payload'ом
// ровно один раз. Best-effort: любой сбой логируется и прогон продолжается.
func (p *Provisioner) ensureSettings(ctx context.Context, rep *Report) {
	const stage = "create_trackflow_settings"

	exists, err := p.singles.SingleExists(ctx, settingsDocType)
	if err != nil {
		logs.Error(errCategory, fmt.Errorf("check %s: %w", settingsDocType, err))
		rep.Fail(stage, err)
		return
	}
	if exists {
		logs.Infof("%s already exists", settingsDocType)
		rep.Skip(stage, "already exists")
		return
	}

	// Сначала — схема дочерних строк; без неё настройки не создаём,
	// отложим до следующего прогона.
	if ok := p.ensureInternalIPRangeDocType(ctx); !ok {
		logs.Infof("Skipping %s creation - %s doctype not ready yet", settingsDocType, internalIPRangeDocType)
		rep.Skip(stage, internalIPRangeDocType+" doctype not ready")
		return
	}

	logs.Infof("Creating %s...", settingsDocType)
	if err := p.singles.InsertSettings(ctx, settingsDocType, settingsDefaults(), defaultIPRanges()); err != nil {
		logs.Error(errCategory, fmt.Errorf("create %s: %w", settingsDocType, err))
		rep.Fail(stage, err)
		return
	}

	logs.Infof("%s created successfully", settingsDocType)
	rep.OK(stage, []string{settingsDocType}, "")
}
