package entity

// StyleProperty is a CSS custom property written on the document root.
type StyleProperty struct {
	Name  string
	Value string
}

// SchemeStyle holds the early-paint values for one scheme.
type SchemeStyle struct {
	// Properties are set on the root element by both boot phases.
	Properties []StyleProperty
	// Background and Foreground are set inline on the root element.
	// Empty means "leave unset".
	Background string
	Foreground string
	// MetaColor is written to the theme-color meta tag.
	MetaColor string
	// CriticalRules is the temporary stylesheet injected before the full
	// style system attaches. Empty means no temporary stylesheet.
	CriticalRules string
}

// DocumentContract names everything the head script and the controller
// write to the document, so both phases overwrite the same identifiers.
type DocumentContract struct {
	StorageKey      string
	DefaultMode     ThemeMode
	ThemeAttribute  string
	MetaName        string
	CriticalStyleID string
	Light           SchemeStyle
	Dark            SchemeStyle
}

// Style returns the style block for a scheme.
func (c DocumentContract) Style(s EffectiveScheme) SchemeStyle {
	if s == SchemeDark {
		return c.Dark
	}
	return c.Light
}

// SchemeClasses returns the root classes owned by the contract.
func (c DocumentContract) SchemeClasses() []string {
	return []string{string(SchemeLight), string(SchemeDark)}
}

const defaultCriticalDarkRules = `body, body * { color: #f8fafc !important; }
.MuiPaper-root { background-color: #1e293b !important; }
.MuiOutlinedInput-notchedOutline { border-color: #334155 !important; }
.MuiDivider-root { border-color: #334155 !important; background-color: #334155 !important; }
.auth-divider-bg { background-color: #1e293b !important; }
.auth-button-border { border-color: #334155 !important; }
a[href*="register"] { color: #3b82f6 !important; }
a[href*="forgot-password"] { color: #cbd5e1 !important; }
.MuiLink-root { color: #3b82f6 !important; }`

// DefaultDocumentContract returns the contract used by the auth and
// dashboard screens.
func DefaultDocumentContract() DocumentContract {
	return DocumentContract{
		StorageKey:      "theme-mode",
		DefaultMode:     DefaultThemeMode,
		ThemeAttribute:  "data-theme",
		MetaName:        "theme-color",
		CriticalStyleID: "theme-critical-dark",
		Light: SchemeStyle{
			Properties: []StyleProperty{
				{Name: "--auth-bg-color", Value: "#ffffff"},
				{Name: "--auth-border-color", Value: "#e2e8f0"},
				{Name: "--auth-divider-bg", Value: "#ffffff"},
				{Name: "--auth-divider-color", Value: "#e2e8f0"},
				{Name: "--auth-link-color", Value: "#2563eb"},
				{Name: "--auth-link-secondary", Value: "#64748b"},
			},
			MetaColor: "#ffffff",
		},
		Dark: SchemeStyle{
			Properties: []StyleProperty{
				{Name: "--auth-bg-color", Value: "#1e293b"},
				{Name: "--auth-border-color", Value: "#334155"},
				{Name: "--auth-divider-bg", Value: "#1e293b"},
				{Name: "--auth-divider-color", Value: "#334155"},
				{Name: "--auth-link-color", Value: "#3b82f6"},
				{Name: "--auth-link-secondary", Value: "#cbd5e1"},
			},
			Background:    "#0f172a",
			Foreground:    "#f8fafc",
			MetaColor:     "#1f2937",
			CriticalRules: defaultCriticalDarkRules,
		},
	}
}
