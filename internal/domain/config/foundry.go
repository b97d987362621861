package config

// FoundryConfig holds the parts of foundry.toml that affect where artifacts live
type FoundryConfig struct {
	Profile map[string]ProfileConfig `toml:"profile"`
}

// ProfileConfig represents a foundry profile section
type ProfileConfig struct {
	Src       string `toml:"src"`
	Out       string `toml:"out"`
	Broadcast string `toml:"broadcast"`
}

// DefaultProfile returns the [profile.default] section, or an empty profile
func (f *FoundryConfig) DefaultProfile() ProfileConfig {
	if f == nil {
		return ProfileConfig{}
	}
	return f.Profile["default"]
}
