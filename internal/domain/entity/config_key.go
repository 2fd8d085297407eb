package entity

// ConfigKeyInfo documents one config key for `config keys` and the
// generated JSON schema.
type ConfigKeyInfo struct {
	Key         string   `json:"key"` // dotted path, e.g. appearance.default_mode
	Type        string   `json:"type"`
	Default     string   `json:"default"`
	Description string   `json:"description"`
	Values      []string `json:"values,omitempty"` // enum members
	Range       string   `json:"range,omitempty"`  // numeric bounds, "1-3650"
	Section     string   `json:"section"`
}
