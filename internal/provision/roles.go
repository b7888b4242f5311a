package provision

import (
	"context"
	"fmt"

	"trackflow/internal/logs"
)

// ensureRoles создаёт недостающие роли; существующие не трогает.
func (p *Provisioner) ensureRoles(ctx context.Context, rep *Report) error {
	var created []string
	for _, role := range targetRoles() {
		role := role
		exists, err := p.records.RoleExists(ctx, role.RoleName)
		if err != nil {
			rep.Fail("create_roles", err)
			return fmt.Errorf("check role %s: %w", role.RoleName, err)
		}
		if exists {
			continue
		}
		if err := p.records.InsertRole(ctx, &role); err != nil {
			rep.Fail("create_roles", err)
			return fmt.Errorf("create role %s: %w", role.RoleName, err)
		}
		logs.Infof("Created role: %s", role.RoleName)
		created = append(created, role.RoleName)
	}
	rep.OK("create_roles", created, "")
	return nil
}
