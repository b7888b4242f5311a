package provision

import "trackflow/internal/logs"

// createDefaultData сейчас только объявляет справочные списки и отчитывается.
// Записи намеренно не создаются (см. DESIGN.md), стор не мутируется.
func (p *Provisioner) createDefaultData(rep *Report) {
	logs.Infof("Default data: %d attribution models, %d campaign types (reference only, nothing persisted)",
		len(attributionModels), len(campaignTypes))
	rep.Skip("create_default_data", "reference lists only; nothing persisted")
}
