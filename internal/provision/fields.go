package provision

import (
	"context"
	"fmt"

	"trackflow/internal/logs"
)

// ensureCustomFields создаёт кастомные поля для владеющих DocType'ов,
// которые реально есть в сторе. Отсутствующий тип молча пропускается:
// аддон не должен падать на частично установленном хосте.
func (p *Provisioner) ensureCustomFields(ctx context.Context, rep *Report) error {
	var created []string
	for _, group := range customFieldTargets() {
		exists, err := p.docTypes.DocTypeExists(ctx, group.DocType)
		if err != nil {
			rep.Fail("create_custom_fields", err)
			return fmt.Errorf("check doctype %s: %w", group.DocType, err)
		}
		if !exists {
			continue
		}
		for _, f := range group.Fields {
			f := f
			f.Dt = group.DocType
			key := f.Key()
			have, err := p.records.CustomFieldExists(ctx, key)
			if err != nil {
				rep.Fail("create_custom_fields", err)
				return fmt.Errorf("check custom field %s: %w", key, err)
			}
			if have {
				continue
			}
			if err := p.records.InsertCustomField(ctx, &f); err != nil {
				rep.Fail("create_custom_fields", err)
				return fmt.Errorf("create custom field %s: %w", key, err)
			}
			logs.Infof("Created custom field: %s", key)
			created = append(created, key)
		}
	}
	rep.OK("create_custom_fields", created, "")
	return nil
}

// ensurePropertySetters включает track_changes для целевых DocType'ов.
func (p *Provisioner) ensurePropertySetters(ctx context.Context, rep *Report) error {
	var created []string
	for _, ps := range propertySetterTargets() {
		ps := ps
		key := ps.Key()
		have, err := p.records.PropertySetterExists(ctx, key)
		if err != nil {
			rep.Fail("create_property_setters", err)
			return fmt.Errorf("check property setter %s: %w", key, err)
		}
		if have {
			continue
		}
		if err := p.records.InsertPropertySetter(ctx, &ps); err != nil {
			rep.Fail("create_property_setters", err)
			return fmt.Errorf("create property setter %s: %w", key, err)
		}
		logs.Infof("Created property setter: %s", key)
		created = append(created, key)
	}
	rep.OK("create_property_setters", created, "")
	return nil
}
