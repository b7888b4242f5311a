package provision

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackflow/internal/logs"
	"trackflow/internal/models"
	"trackflow/internal/repo"
)

func init() {
	logs.Init(logs.Options{Level: "error"})
}

// Полностью установленный хост: CRM с нужными DocType'ами и workspace'ом.
func seededHost() *repo.MemStore {
	m := repo.NewMemStore()
	m.SeedApp("frappe")
	m.SeedApp("crm")
	for _, dt := range []string{"CRM Lead", "CRM Deal", "CRM Organization", "Web Form"} {
		m.SeedDocType(&models.DocType{Name: dt, Module: "CRM"})
	}
	// два DocType'а самого аддона; Click Event — submittable
	m.SeedDocType(&models.DocType{Name: "Link Campaign", Module: moduleName})
	m.SeedDocType(&models.DocType{Name: "Click Event", Module: moduleName, IsSubmittable: true})
	m.SeedWorkspace(crmWorkspace)
	return m
}

func newProvisioner(m *repo.MemStore) *Provisioner {
	return New(Deps{Apps: m, DocTypes: m, Records: m, Singles: m, Workspaces: m})
}

func runAll(t *testing.T, p *Provisioner) {
	t.Helper()
	ctx := context.Background()
	_, err := p.BeforeInstall(ctx)
	require.NoError(t, err)
	_, err = p.AfterInstall(ctx)
	require.NoError(t, err)
	_, err = p.AfterMigrate(ctx)
	require.NoError(t, err)
}

func TestPipelineIdempotent(t *testing.T) {
	m := seededHost()
	p := newProvisioner(m)

	runAll(t, p)
	first := m.CountRecords()

	runAll(t, p)
	assert.Equal(t, first, m.CountRecords(), "second run must not create records")

	head, err := m.GetSingle(context.Background(), websiteSettings)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(head["head_html"], trackingScript))

	links, err := m.WorkspaceLinks(context.Background(), crmWorkspace)
	require.NoError(t, err)
	sections := 0
	for _, l := range links {
		if l.Label == workspaceSection {
			sections++
		}
	}
	assert.Equal(t, 1, sections)
	assert.Equal(t, 4, len(links), "one card break + three links")
	assert.Equal(t, 4, len(m.SettingsRanges(settingsDocType)))
}

func TestPreflightMissingHostApp(t *testing.T) {
	m := repo.NewMemStore()
	m.SeedApp("frappe") // CRM не установлен
	p := newProvisioner(m)

	rep, err := p.BeforeInstall(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TrackFlow requires the following")
	assert.Contains(t, err.Error(), "Frappe CRM")
	assert.Equal(t, 0, m.CountRecords(), "nothing may be created past a failed preflight")
	require.NotNil(t, rep.Stage("check_dependencies"))
	assert.Equal(t, StatusFailed, rep.Stage("check_dependencies").Status)
}

func TestPreflightAggregatesMissingDocTypes(t *testing.T) {
	m := repo.NewMemStore()
	m.SeedApp("CRM") // регистр не важен
	m.SeedDocType(&models.DocType{Name: "CRM Lead"})
	p := newProvisioner(m)

	_, err := p.BeforeInstall(context.Background())
	require.Error(t, err)
	// одна агрегированная ошибка со ВСЕМИ недостачами, не только первой
	assert.Contains(t, err.Error(), "FCRM DocType: CRM Deal")
	assert.Contains(t, err.Error(), "FCRM DocType: CRM Organization")
	assert.NotContains(t, err.Error(), "CRM Lead")
}

func TestPartialHostTolerance(t *testing.T) {
	m := repo.NewMemStore()
	m.SeedApp("crm")
	// Web Form отсутствует; из аддоновских типов — только Link Campaign
	for _, dt := range []string{"CRM Lead", "CRM Deal", "CRM Organization"} {
		m.SeedDocType(&models.DocType{Name: dt})
	}
	m.SeedDocType(&models.DocType{Name: "Link Campaign"})
	p := newProvisioner(m)

	ctx := context.Background()
	_, err := p.BeforeInstall(ctx)
	require.NoError(t, err)
	rep, err := p.AfterInstall(ctx)
	require.NoError(t, err)

	fields := rep.Stage("create_custom_fields")
	require.NotNil(t, fields)
	assert.Equal(t, StatusOK, fields.Status)
	for _, name := range fields.Created {
		assert.NotContains(t, name, "Web Form-", "absent owner must produce no fields")
	}
	// 8 + 4 + 6 полей для трёх существующих типов
	assert.Len(t, fields.Created, 18)

	ok, err := m.PermExists(ctx, "Link Campaign", managerRole)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = m.PermExists(ctx, "Tracked Link", managerRole)
	require.NoError(t, err)
	assert.False(t, ok, "no rule for an absent doctype")
}

func TestSettingsSkippedWhenSchemaBootstrapFails(t *testing.T) {
	m := seededHost()
	m.FailDocTypeCreate = true
	p := newProvisioner(m)

	ctx := context.Background()
	_, err := p.BeforeInstall(ctx)
	require.NoError(t, err)
	rep, err := p.AfterInstall(ctx)
	require.NoError(t, err, "schema failure must not escape the hook")

	st := rep.Stage("create_trackflow_settings")
	require.NotNil(t, st)
	assert.Equal(t, StatusSkipped, st.Status)

	exists, err := m.SingleExists(ctx, settingsDocType)
	require.NoError(t, err)
	assert.False(t, exists, "settings must not be created without the child schema")
}

func TestSettingsInsertFailureIsSwallowed(t *testing.T) {
	m := seededHost()
	m.FailSettings = true
	p := newProvisioner(m)

	ctx := context.Background()
	rep, err := p.AfterMigrate(ctx)
	require.NoError(t, err, "settings failure must not abort the hook")

	st := rep.Stage("create_trackflow_settings")
	require.NotNil(t, st)
	assert.Equal(t, StatusFailed, st.Status)

	exists, err := m.SingleExists(ctx, settingsDocType)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSettingsDefaultPayload(t *testing.T) {
	m := seededHost()
	p := newProvisioner(m)
	runAll(t, p)

	ctx := context.Background()
	vals, err := m.GetSingle(ctx, settingsDocType)
	require.NoError(t, err)
	assert.Equal(t, "6", vals["short_code_length"])
	assert.Equal(t, "365", vals["cookie_expires_days"])
	assert.Equal(t, "Last Touch", vals["default_attribution_model"])
	assert.Equal(t, "30", vals["attribution_window_days"])
	assert.Equal(t, "1", vals["enable_tracking"])
	assert.Equal(t, "1", vals["cookie_consent_required"])
	assert.Equal(t, "0", vals["anonymize_ip_addresses"])

	ranges := m.SettingsRanges(settingsDocType)
	require.Len(t, ranges, 4)
	want := []string{"127.0.0.0/8", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}
	for i, r := range ranges {
		assert.Equal(t, want[i], r.IPRange)
		assert.Equal(t, i+1, r.Idx)
	}

	// схема дочерних строк зарегистрирована из вшитого определения
	dt, err := m.Meta(ctx, internalIPRangeDocType)
	require.NoError(t, err)
	assert.True(t, dt.IsTable)
	require.Len(t, dt.Fields, 2)
	assert.True(t, dt.Fields[0].Reqd)
}

func TestSettingsNeverOverwritten(t *testing.T) {
	m := seededHost()
	p := newProvisioner(m)
	ctx := context.Background()

	require.NoError(t, m.SetSingleValue(ctx, settingsDocType, "short_code_length", "9"))
	rep, err := p.AfterMigrate(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, rep.Stage("create_trackflow_settings").Status)

	vals, err := m.GetSingle(ctx, settingsDocType)
	require.NoError(t, err)
	assert.Equal(t, "9", vals["short_code_length"], "existing settings are never reconciled")
}

func TestInjectionGuards(t *testing.T) {
	m := seededHost()
	p := newProvisioner(m)
	ctx := context.Background()

	rep := NewReport("test")
	p.enableTracking(ctx, rep)
	p.enableTracking(ctx, rep)
	head, err := m.GetSingle(ctx, websiteSettings)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(head["head_html"], trackingScript))

	p.setupWorkspaceIntegration(ctx, rep)
	p.setupWorkspaceIntegration(ctx, rep)
	links, err := m.WorkspaceLinks(ctx, crmWorkspace)
	require.NoError(t, err)
	require.Len(t, links, 4)
	assert.Equal(t, "Card Break", links[0].Type)
	assert.Equal(t, workspaceSection, links[0].Label)
	assert.Equal(t, []string{"Campaigns", "Tracked Links", "Click Analytics"},
		[]string{links[1].Label, links[2].Label, links[3].Label})
}

func TestWorkspaceIntegrationMissingWorkspace(t *testing.T) {
	m := repo.NewMemStore()
	p := newProvisioner(m)

	rep := NewReport("test")
	p.setupWorkspaceIntegration(context.Background(), rep)
	st := rep.Stage("setup_crm_integration")
	require.NotNil(t, st)
	assert.Equal(t, StatusSkipped, st.Status)
}

func TestPermissionsSubmittableFlags(t *testing.T) {
	m := seededHost()
	p := newProvisioner(m)
	runAll(t, p)

	perm, ok := m.Perm("Click Event", managerRole)
	require.True(t, ok)
	assert.True(t, perm.Read)
	assert.True(t, perm.Write)
	assert.True(t, perm.Create)
	assert.True(t, perm.Delete)
	assert.True(t, perm.Submit, "submittable doctype gets submit")
	assert.True(t, perm.Cancel)

	perm, ok = m.Perm("Link Campaign", managerRole)
	require.True(t, ok)
	assert.False(t, perm.Submit)
	assert.False(t, perm.Cancel)
}

func TestRolesCreatedOnce(t *testing.T) {
	m := seededHost()
	p := newProvisioner(m)
	ctx := context.Background()

	rep, err := p.BeforeInstall(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{managerRole, userRole}, rep.Stage("create_roles").Created)

	rep, err = p.BeforeInstall(ctx)
	require.NoError(t, err)
	assert.Empty(t, rep.Stage("create_roles").Created)
}
