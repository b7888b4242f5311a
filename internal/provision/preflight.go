package provision

import (
	"context"
	"fmt"
	"strings"
)

const hostApp = "crm"

var requiredDocTypes = []string{"CRM Lead", "CRM Deal", "CRM Organization"}

// checkDependencies — fail-fast: хост-CRM должен стоять и его DocType'ы
// должны существовать. Все недостачи собираются в одну ошибку.
func (p *Provisioner) checkDependencies(ctx context.Context) error {
	apps, err := p.apps.InstalledApps(ctx)
	if err != nil {
		return fmt.Errorf("list installed apps: %w", err)
	}

	var missing []string

	installed := false
	for _, a := range apps {
		if strings.EqualFold(a, hostApp) {
			installed = true
			break
		}
	}
	if !installed {
		missing = append(missing, "Frappe CRM")
	} else {
		for _, dt := range requiredDocTypes {
			ok, err := p.docTypes.DocTypeExists(ctx, dt)
			if err != nil {
				return fmt.Errorf("check doctype %s: %w", dt, err)
			}
			if !ok {
				missing = append(missing, "FCRM DocType: "+dt)
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("TrackFlow requires the following: %s", strings.Join(missing, ", "))
	}
	return nil
}
