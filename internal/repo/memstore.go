package repo

import (
	"context"
	"fmt"
	"sync"

	"trackflow/internal/models"
)

// MemStore — in-memory реализация всех интерфейсов провижионера.
// Используется при пустом database.driver (прогон «на сухую») и в тестах.
type MemStore struct {
	mu sync.RWMutex

	apps       []string
	docTypes   map[string]*models.DocType
	roles      map[string]models.Role
	fields     map[string]models.CustomField
	setters    map[string]models.PropertySetter
	perms      map[string]models.DocPerm // ключ parent+"\x00"+role
	singles    map[string]map[string]string
	ranges     map[string][]models.InternalIPRange
	workspaces map[string][]models.WorkspaceLink

	// Переключатели сбоев для тестов best-effort веток.
	FailDocTypeCreate bool
	FailSettings      bool
}

func NewMemStore() *MemStore {
	return &MemStore{
		docTypes:   make(map[string]*models.DocType),
		roles:      make(map[string]models.Role),
		fields:     make(map[string]models.CustomField),
		setters:    make(map[string]models.PropertySetter),
		perms:      make(map[string]models.DocPerm),
		singles:    make(map[string]map[string]string),
		ranges:     make(map[string][]models.InternalIPRange),
		workspaces: make(map[string][]models.WorkspaceLink),
	}
}

// ----- посев начального состояния (хост, которого «как бы» достигли) -----

func (m *MemStore) SeedApp(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apps = append(m.apps, name)
}

func (m *MemStore) SeedDocType(dt *models.DocType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docTypes[dt.Name] = dt
}

func (m *MemStore) SeedWorkspace(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.workspaces[name]; !ok {
		m.workspaces[name] = nil
	}
}

// ----- AppSource -----

func (m *MemStore) InstalledApps(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.apps))
	copy(out, m.apps)
	return out, nil
}

// ----- DocTypes -----

func (m *MemStore) DocTypeExists(ctx context.Context, name string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.docTypes[name]
	return ok, nil
}

func (m *MemStore) Meta(ctx context.Context, name string) (*models.DocType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	dt, ok := m.docTypes[name]
	if !ok {
		return nil, ErrNotFound
	}
	return dt, nil
}

func (m *MemStore) CreateDocType(ctx context.Context, dt *models.DocType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailDocTypeCreate {
		return fmt.Errorf("doctype create failed (simulated)")
	}
	if _, ok := m.docTypes[dt.Name]; ok {
		return fmt.Errorf("doctype %q already exists", dt.Name)
	}
	m.docTypes[dt.Name] = dt
	return nil
}

// ----- Records -----

func (m *MemStore) RoleExists(ctx context.Context, name string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.roles[name]
	return ok, nil
}

func (m *MemStore) InsertRole(ctx context.Context, r *models.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roles[r.RoleName] = *r
	return nil
}

func (m *MemStore) CustomFieldExists(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.fields[key]
	return ok, nil
}

func (m *MemStore) InsertCustomField(ctx context.Context, cf *models.CustomField) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cf.Name == "" {
		cf.Name = cf.Key()
	}
	m.fields[cf.Name] = *cf
	return nil
}

func (m *MemStore) PropertySetterExists(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.setters[key]
	return ok, nil
}

func (m *MemStore) InsertPropertySetter(ctx context.Context, ps *models.PropertySetter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ps.Name == "" {
		ps.Name = ps.Key()
	}
	m.setters[ps.Name] = *ps
	return nil
}

func permKey(parent, role string) string { return parent + "\x00" + role }

func (m *MemStore) PermExists(ctx context.Context, parent, role string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.perms[permKey(parent, role)]
	return ok, nil
}

func (m *MemStore) InsertPerm(ctx context.Context, p *models.DocPerm) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.perms[permKey(p.Parent, p.Role)] = *p
	return nil
}

// Perm — чтение созданного правила из тестов.
func (m *MemStore) Perm(parent, role string) (models.DocPerm, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.perms[permKey(parent, role)]
	return p, ok
}

// ----- Singles -----

func (m *MemStore) SingleExists(ctx context.Context, doctype string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.singles[doctype]) > 0, nil
}

func (m *MemStore) GetSingle(ctx context.Context, doctype string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.singles[doctype]))
	for k, v := range m.singles[doctype] {
		out[k] = v
	}
	return out, nil
}

func (m *MemStore) SetSingleValue(ctx context.Context, doctype, field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.singles[doctype] == nil {
		m.singles[doctype] = make(map[string]string)
	}
	m.singles[doctype][field] = value
	return nil
}

func (m *MemStore) InsertSettings(ctx context.Context, doctype string,
	values []models.SingleValue, ranges []models.InternalIPRange) error {

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSettings {
		return fmt.Errorf("settings insert failed (simulated)")
	}
	if m.singles[doctype] == nil {
		m.singles[doctype] = make(map[string]string)
	}
	for _, v := range values {
		m.singles[doctype][v.Fieldname] = v.Value
	}
	for i := range ranges {
		r := ranges[i]
		r.Parent = doctype
		if r.ParentField == "" {
			r.ParentField = "internal_ip_ranges"
		}
		r.Idx = i + 1
		m.ranges[doctype] = append(m.ranges[doctype], r)
	}
	return nil
}

// SettingsRanges — доступ к дочерним строкам из тестов.
func (m *MemStore) SettingsRanges(doctype string) []models.InternalIPRange {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.InternalIPRange, len(m.ranges[doctype]))
	copy(out, m.ranges[doctype])
	return out
}

// ----- Workspaces -----

func (m *MemStore) WorkspaceExists(ctx context.Context, name string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.workspaces[name]
	return ok, nil
}

func (m *MemStore) WorkspaceLinks(ctx context.Context, name string) ([]models.WorkspaceLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.WorkspaceLink, len(m.workspaces[name]))
	copy(out, m.workspaces[name])
	return out, nil
}

func (m *MemStore) AppendWorkspaceLinks(ctx context.Context, name string, links []models.WorkspaceLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	base := len(m.workspaces[name])
	for i := range links {
		l := links[i]
		l.Workspace = name
		l.Idx = base + i + 1
		m.workspaces[name] = append(m.workspaces[name], l)
	}
	return nil
}

// CountRecords — суммарное число созданных записей (тест «ничего не создано»).
func (m *MemStore) CountRecords() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := len(m.roles) + len(m.fields) + len(m.setters) + len(m.perms)
	for _, s := range m.singles {
		n += len(s)
	}
	for _, r := range m.ranges {
		n += len(r)
	}
	return n
}
