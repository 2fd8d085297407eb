package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGo        = "\ue627" // go gopher
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart

	// Theme
	IconSun     = "\uf185" // sun
	IconMoon    = "\uf186" // moon
	IconAdjust  = "\uf042" // half circle, follow system
	IconPalette = "\ue22b" // palette
	IconScript  = "\uf121" // code
	IconEye     = "\uf06e" // eye

	// Doctor / diagnostics
	IconDoctor  = "\uf0f1" // stethoscope
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconDesktop  = "\uf108" // desktop

	IconCursor = "\uf054" // chevron-right
)
