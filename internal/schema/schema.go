// Package schema хранит вшитые JSON-определения DocType'ов модуля.
// Аналог reload-from-file хост-фреймворка: определение едет в бинарнике.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"trackflow/internal/models"
)

//go:embed definitions/*.json
var definitions embed.FS

// В определениях флаги записаны как 0/1 — как их пишет хост-фреймворк.
type docTypeDef struct {
	Name                   string        `json:"name"`
	Module                 string        `json:"module"`
	IsTable                int           `json:"istable"`
	IsSingle               int           `json:"issingle"`
	IsSubmittable          int           `json:"is_submittable"`
	AllowRename            int           `json:"allow_rename"`
	IndexWebPagesForSearch int           `json:"index_web_pages_for_search"`
	Engine                 string        `json:"engine"`
	SortField              string        `json:"sort_field"`
	SortOrder              string        `json:"sort_order"`
	Fields                 []docFieldDef `json:"fields"`
}

type docFieldDef struct {
	Fieldname   string `json:"fieldname"`
	Fieldtype   string `json:"fieldtype"`
	Label       string `json:"label"`
	Reqd        int    `json:"reqd"`
	InListView  int    `json:"in_list_view"`
	Description string `json:"description"`
}

// Load читает вшитое определение DocType по его имени
// ("Internal IP Range" → definitions/internal_ip_range.json).
func Load(name string) (*models.DocType, error) {
	file := strings.ToLower(strings.ReplaceAll(name, " ", "_")) + ".json"
	raw, err := definitions.ReadFile(path.Join("definitions", file))
	if err != nil {
		return nil, fmt.Errorf("no embedded definition for %q: %w", name, err)
	}

	var def docTypeDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("bad definition %s: %w", file, err)
	}
	if def.Name != name {
		return nil, fmt.Errorf("definition %s declares %q, want %q", file, def.Name, name)
	}

	dt := &models.DocType{
		Name:                   def.Name,
		Module:                 def.Module,
		IsTable:                def.IsTable == 1,
		IsSingle:               def.IsSingle == 1,
		IsSubmittable:          def.IsSubmittable == 1,
		AllowRename:            def.AllowRename == 1,
		IndexWebPagesForSearch: def.IndexWebPagesForSearch == 1,
		Engine:                 def.Engine,
		SortField:              def.SortField,
		SortOrder:              def.SortOrder,
	}
	for i, f := range def.Fields {
		dt.Fields = append(dt.Fields, models.DocField{
			Fieldname:   f.Fieldname,
			Fieldtype:   f.Fieldtype,
			Label:       f.Label,
			Reqd:        f.Reqd == 1,
			InListView:  f.InListView == 1,
			Description: f.Description,
			Idx:         i + 1,
		})
	}
	return dt, nil
}
