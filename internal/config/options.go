package config

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their
// meanings. This is the single source of truth for default values and
// the generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		// Core paths and conventions
		{Key: "data_dir", Default: defaultDataDir(), Comment: "Directory for local state; DB is data_dir/lovelog.db"},
		{Key: "default_tags", Default: []string{}, Comment: "Tags applied when logging without explicit tags"},

		// Presentation preferences; the engine never reads these
		{Key: "language", Default: "en", Comment: "UI language (en|zh)"},
		{Key: "theme", Default: "system", Comment: "Color theme (system|light|dark)"},

		// Custom tag list offered by the tags command
		{Key: "custom_tags", Default: []string{}, Comment: "User-defined tags offered on add"},

		// Casual on-device privacy gate, not a security boundary
		{Key: "security.pin_enabled", Default: false, Comment: "Require a 4-character PIN on startup"},
		{Key: "security.pin_hash", Default: "", Comment: "One-way digest of the PIN; set via 'lovelog config pin set'"},

		{Key: "demo.seed", Default: 0, Comment: "Seed for demo-data generation; 0 picks a random seed"},
	}
}
