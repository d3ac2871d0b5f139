package models

// SettingsDump is the debug view of a site's settings: what the application
// reads and what the injected components declared as their defaults.
type SettingsDump struct {
	Live     map[string]any `json:"live" yaml:"live"`
	Defaults map[string]any `json:"defaults,omitempty" yaml:"defaults,omitempty"`
}
