package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackflow/internal/models"
)

func TestMemStoreWorkspaceIdxContinues(t *testing.T) {
	m := NewMemStore()
	m.SeedWorkspace("CRM")
	ctx := context.Background()

	require.NoError(t, m.AppendWorkspaceLinks(ctx, "CRM", []models.WorkspaceLink{
		{Type: "Link", Label: "A"},
		{Type: "Link", Label: "B"},
	}))
	require.NoError(t, m.AppendWorkspaceLinks(ctx, "CRM", []models.WorkspaceLink{
		{Type: "Link", Label: "C"},
	}))

	links, err := m.WorkspaceLinks(ctx, "CRM")
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{links[0].Idx, links[1].Idx, links[2].Idx})
}

func TestMemStoreCustomFieldKey(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()

	cf := models.CustomField{Dt: "CRM Lead", Fieldname: "trackflow_source", Fieldtype: "Data"}
	require.NoError(t, m.InsertCustomField(ctx, &cf))
	assert.Equal(t, "CRM Lead-trackflow_source", cf.Name)

	ok, err := m.CustomFieldExists(ctx, "CRM Lead-trackflow_source")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemStoreSinglesIsolated(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()

	require.NoError(t, m.SetSingleValue(ctx, "Website Settings", "head_html", "x"))

	vals, err := m.GetSingle(ctx, "Website Settings")
	require.NoError(t, err)
	vals["head_html"] = "mutated"

	again, err := m.GetSingle(ctx, "Website Settings")
	require.NoError(t, err)
	assert.Equal(t, "x", again["head_html"], "GetSingle must return a copy")
}
