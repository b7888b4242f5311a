package provision

import "trackflow/internal/models"

// Целевой набор записей. Функции отдают свежие срезы: сторы проставляют
// Name/Idx по месту, делить память между прогонами нельзя.

const (
	settingsDocType  = "TrackFlow Settings"
	websiteSettings  = "Website Settings"
	crmWorkspace     = "CRM"
	workspaceSection = "TrackFlow Analytics"
	managerRole      = "TrackFlow Manager"
	userRole         = "TrackFlow User"

	internalIPRangeDocType = "Internal IP Range"
	moduleName             = "TrackFlow"
)

func targetRoles() []models.Role {
	return []models.Role{
		{
			RoleName:      managerRole,
			DeskAccess:    true,
			TwoFactorAuth: false,
			SearchBar:     true,
			Notifications: true,
			ListSidebar:   true,
			BulkActions:   true,
			ViewSwitcher:  true,
			FormSidebar:   true,
			Timeline:      true,
			Dashboard:     true,
		},
		{
			RoleName:      userRole,
			DeskAccess:    true,
			TwoFactorAuth: false,
			SearchBar:     true,
			Notifications: true,
			ListSidebar:   true,
			BulkActions:   false,
			ViewSwitcher:  true,
			FormSidebar:   true,
			Timeline:      true,
			Dashboard:     true,
		},
	}
}

// fieldGroup — кастомные поля одного владеющего DocType.
// Срез, не map: порядок создания соответствует порядку объявления.
type fieldGroup struct {
	DocType string
	Fields  []models.CustomField
}

func customFieldTargets() []fieldGroup {
	return []fieldGroup{
		{DocType: "CRM Lead", Fields: []models.CustomField{
			{Fieldname: "trackflow_tab", Label: "TrackFlow", Fieldtype: "Tab Break", InsertAfter: "notes_tab"},
			{Fieldname: "trackflow_visitor_id", Label: "TrackFlow Visitor ID", Fieldtype: "Data", InsertAfter: "trackflow_tab", ReadOnly: true},
			{Fieldname: "trackflow_source", Label: "Source", Fieldtype: "Data", InsertAfter: "trackflow_visitor_id"},
			{Fieldname: "trackflow_medium", Label: "Medium", Fieldtype: "Data", InsertAfter: "trackflow_source"},
			{Fieldname: "trackflow_campaign", Label: "Campaign", Fieldtype: "Link", Options: "Link Campaign", InsertAfter: "trackflow_medium"},
			{Fieldname: "trackflow_first_touch_date", Label: "First Touch Date", Fieldtype: "Datetime", InsertAfter: "trackflow_campaign", ReadOnly: true},
			{Fieldname: "trackflow_last_touch_date", Label: "Last Touch Date", Fieldtype: "Datetime", InsertAfter: "trackflow_first_touch_date", ReadOnly: true},
			{Fieldname: "trackflow_touch_count", Label: "Touch Count", Fieldtype: "Int", InsertAfter: "trackflow_last_touch_date", ReadOnly: true},
		}},
		{DocType: "CRM Organization", Fields: []models.CustomField{
			{Fieldname: "trackflow_tab", Label: "TrackFlow", Fieldtype: "Tab Break", InsertAfter: "notes"},
			{Fieldname: "trackflow_visitor_id", Label: "TrackFlow Visitor ID", Fieldtype: "Data", InsertAfter: "trackflow_tab", ReadOnly: true},
			{Fieldname: "trackflow_engagement_score", Label: "Engagement Score", Fieldtype: "Int", InsertAfter: "trackflow_visitor_id", ReadOnly: true},
			{Fieldname: "trackflow_last_campaign", Label: "Last Campaign", Fieldtype: "Link", Options: "Link Campaign", InsertAfter: "trackflow_engagement_score"},
		}},
		{DocType: "CRM Deal", Fields: []models.CustomField{
			{Fieldname: "trackflow_tab", Label: "TrackFlow Attribution", Fieldtype: "Tab Break", InsertAfter: "contact_tab"},
			{Fieldname: "trackflow_attribution_model", Label: "Attribution Model", Fieldtype: "Select",
				Options: "Last Touch\nFirst Touch\nLinear\nTime Decay\nPosition Based", InsertAfter: "trackflow_tab", Default: "Last Touch"},
			{Fieldname: "trackflow_first_touch_source", Label: "First Touch Source", Fieldtype: "Data", InsertAfter: "trackflow_attribution_model", ReadOnly: true},
			{Fieldname: "trackflow_last_touch_source", Label: "Last Touch Source", Fieldtype: "Data", InsertAfter: "trackflow_first_touch_source", ReadOnly: true},
			{Fieldname: "trackflow_marketing_influenced", Label: "Marketing Influenced", Fieldtype: "Check", InsertAfter: "trackflow_last_touch_source", ReadOnly: true},
			{Fieldname: "trackflow_attribution_data", Label: "Attribution Data", Fieldtype: "Long Text", InsertAfter: "trackflow_marketing_influenced", ReadOnly: true, Hidden: true},
		}},
		{DocType: "Web Form", Fields: []models.CustomField{
			{Fieldname: "trackflow_section", Label: "TrackFlow Settings", Fieldtype: "Section Break", InsertAfter: "custom_css"},
			{Fieldname: "trackflow_tracking_enabled", Label: "Enable TrackFlow Tracking", Fieldtype: "Check", InsertAfter: "trackflow_section"},
			{Fieldname: "trackflow_conversion_goal", Label: "Conversion Goal", Fieldtype: "Link", Options: "Link Campaign",
				InsertAfter: "trackflow_tracking_enabled", DependsOn: "trackflow_tracking_enabled"},
		}},
	}
}

func propertySetterTargets() []models.PropertySetter {
	mk := func(dt string) models.PropertySetter {
		return models.PropertySetter{
			DocTypeName:    dt,
			DocTypeOrField: "DocType",
			Property:       "track_changes",
			Value:          "1",
			PropertyType:   "Check",
		}
	}
	return []models.PropertySetter{mk("CRM Lead"), mk("CRM Deal"), mk("CRM Organization")}
}

// Скалярные дефолты синглтона настроек.
func settingsDefaults() []models.SingleValue {
	v := func(field, value string) models.SingleValue {
		return models.SingleValue{Fieldname: field, Value: value}
	}
	return []models.SingleValue{
		// общие
		v("enable_tracking", "1"),
		v("auto_generate_short_codes", "1"),
		v("short_code_length", "6"),
		v("exclude_internal_traffic", "0"),
		v("gdpr_compliance_enabled", "1"),
		v("cookie_expires_days", "365"),
		// атрибуция
		v("default_attribution_model", "Last Touch"),
		v("attribution_window_days", "30"),
		// приватность
		v("cookie_consent_required", "1"),
		v("cookie_consent_text", "This site uses cookies for analytics and personalization. By continuing to browse, you agree to our use of cookies."),
		v("anonymize_ip_addresses", "0"),
	}
}

// Дефолтные «внутренние» диапазоны: loopback и три приватных блока.
func defaultIPRanges() []models.InternalIPRange {
	return []models.InternalIPRange{
		{IPRange: "127.0.0.0/8", Description: "Localhost"},
		{IPRange: "10.0.0.0/8", Description: "Private Class A"},
		{IPRange: "172.16.0.0/12", Description: "Private Class B"},
		{IPRange: "192.168.0.0/16", Description: "Private Class C"},
	}
}

// Кандидаты на выдачу прав: создаём правила только для реально существующих.
var permissionCandidates = []string{
	"Link Campaign", "Tracked Link", "Click Event", "Attribution Model",
	"TrackFlow Settings", "Campaign Goal", "Visitor", "Visitor Event",
}

// Справочные списки default-data стадии. Намеренно нигде не персистятся —
// стадия сохраняет наблюдаемое поведение «только сообщение».
type refEntry struct{ Name, Description string }

var attributionModels = []refEntry{
	{"Last Touch", "100% credit to the last touchpoint"},
	{"First Touch", "100% credit to the first touchpoint"},
	{"Linear", "Equal credit to all touchpoints"},
	{"Time Decay", "More credit to recent touchpoints"},
	{"Position Based", "40% first, 40% last, 20% middle"},
}

var campaignTypes = []refEntry{
	{"Email Marketing", "Email campaigns and newsletters"},
	{"Social Media", "Social media marketing campaigns"},
	{"Search Marketing", "SEM and SEO campaigns"},
	{"Content Marketing", "Blog posts and content campaigns"},
	{"Event Marketing", "Webinars, trade shows, and events"},
	{"Partner Marketing", "Partner and affiliate campaigns"},
}

// Маркерный блок трекинг-скрипта; проверка «уже вставлен» — по подстроке.
const trackingScript = `<!-- TrackFlow Analytics -->
<script src="/api/method/trackflow.api.tracking.get_tracking_script" async></script>
<!-- End TrackFlow Analytics -->`

// Секция workspace: заголовок + три ссылки, порядок фиксированный.
func workspaceSectionLinks() []models.WorkspaceLink {
	return []models.WorkspaceLink{
		{Type: "Card Break", Label: workspaceSection},
		{Type: "Link", LinkType: "DocType", LinkTo: "Link Campaign", Label: "Campaigns"},
		{Type: "Link", LinkType: "DocType", LinkTo: "Tracked Link", Label: "Tracked Links"},
		{Type: "Link", LinkType: "DocType", LinkTo: "Click Event", Label: "Click Analytics"},
	}
}
