package provision

import (
	"context"
	"fmt"
	"strings"

	"trackflow/internal/logs"
)

// enableTracking дописывает маркерный скрипт в head_html сайта.
// Best-effort; защита от дублей — текстовая проверка подстроки.
func (p *Provisioner) enableTracking(ctx context.Context, rep *Report) {
	const stage = "enable_tracking"

	vals, err := p.singles.GetSingle(ctx, websiteSettings)
	if err != nil {
		logs.Infof("Could not add tracking script: %v", err)
		rep.Fail(stage, err)
		return
	}

	head := vals["head_html"]
	if strings.Contains(head, trackingScript) {
		rep.Skip(stage, "tracking script already present")
		return
	}

	if err := p.singles.SetSingleValue(ctx, websiteSettings, "head_html", head+"\n"+trackingScript); err != nil {
		logs.Infof("Could not add tracking script: %v", err)
		rep.Fail(stage, err)
		return
	}
	logs.Infof("Added TrackFlow tracking script to website")
	rep.OK(stage, nil, "")
}

// setupWorkspaceIntegration вписывает секцию TrackFlow в список ссылок
// workspace'а CRM. Best-effort; защита от дублей — скан по label секции.
func (p *Provisioner) setupWorkspaceIntegration(ctx context.Context, rep *Report) {
	const stage = "setup_crm_integration"

	exists, err := p.workspaces.WorkspaceExists(ctx, crmWorkspace)
	if err != nil {
		logs.Error(errCategory, fmt.Errorf("check workspace %s: %w", crmWorkspace, err))
		rep.Fail(stage, err)
		return
	}
	if !exists {
		rep.Skip(stage, "workspace not found")
		return
	}

	links, err := p.workspaces.WorkspaceLinks(ctx, crmWorkspace)
	if err != nil {
		logs.Error(errCategory, fmt.Errorf("read workspace %s links: %w", crmWorkspace, err))
		rep.Fail(stage, err)
		return
	}
	for _, l := range links {
		if l.Label == workspaceSection {
			rep.Skip(stage, "section already present")
			return
		}
	}

	if err := p.workspaces.AppendWorkspaceLinks(ctx, crmWorkspace, workspaceSectionLinks()); err != nil {
		logs.Error(errCategory, fmt.Errorf("append workspace %s links: %w", crmWorkspace, err))
		logs.Infof("Warning: could not integrate with CRM workspace: %v", err)
		rep.Fail(stage, err)
		return
	}
	logs.Infof("TrackFlow integrated into CRM workspace")
	rep.OK(stage, nil, "")
}
