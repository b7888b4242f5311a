package provision

import (
	"context"
	"fmt"

	"trackflow/internal/logs"
	"trackflow/internal/models"
)

// setupPermissions выдаёт права менеджерской роли на реально существующие
// DocType'ы аддона. Пара (тип, роль) создаётся не более одного раза;
// submit/cancel — только если тип отмечен как submittable.
func (p *Provisioner) setupPermissions(ctx context.Context, rep *Report) error {
	const stage = "setup_permissions"

	var present []string
	for _, dt := range permissionCandidates {
		ok, err := p.docTypes.DocTypeExists(ctx, dt)
		if err != nil {
			rep.Fail(stage, err)
			return fmt.Errorf("check doctype %s: %w", dt, err)
		}
		if ok {
			present = append(present, dt)
		}
	}
	logs.Infof("Found existing TrackFlow DocTypes: %v", present)

	var created []string
	for _, dt := range present {
		have, err := p.records.PermExists(ctx, dt, managerRole)
		if err != nil {
			rep.Fail(stage, err)
			return fmt.Errorf("check perm %s/%s: %w", dt, managerRole, err)
		}
		if have {
			continue
		}

		meta, err := p.docTypes.Meta(ctx, dt)
		if err != nil {
			rep.Fail(stage, err)
			return fmt.Errorf("meta %s: %w", dt, err)
		}

		perm := models.DocPerm{
			Parent: dt,
			Role:   managerRole,
			Read:   true,
			Write:  true,
			Create: true,
			Delete: true,
			Submit: meta.IsSubmittable,
			Cancel: meta.IsSubmittable,
		}
		if err := p.records.InsertPerm(ctx, &perm); err != nil {
			rep.Fail(stage, err)
			return fmt.Errorf("create perm %s/%s: %w", dt, managerRole, err)
		}
		logs.Infof("Created permission for %s in %s", managerRole, dt)
		created = append(created, dt)
	}

	rep.OK(stage, created, "")
	return nil
}
