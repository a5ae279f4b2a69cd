package config

// Config is the top-level devlog configuration, corresponding to .devlog.yml.
// The flat shape keeps DEVLOG_* environment overrides one-to-one with keys.
type Config struct {
	RawBase     string `yaml:"raw_base" koanf:"raw_base"`
	ForgeBase   string `yaml:"forge_base" koanf:"forge_base"`
	Owner       string `yaml:"owner" koanf:"owner"`
	Repo        string `yaml:"repo" koanf:"repo"`
	Prefix      string `yaml:"prefix" koanf:"prefix"`
	Port        int    `yaml:"port" koanf:"port"`
	AllowAll    bool   `yaml:"allow_all" koanf:"allow_all"`
	ThemeCookie string `yaml:"theme_cookie" koanf:"theme_cookie"`
	ExportDir   string `yaml:"export_dir" koanf:"export_dir"`
}
