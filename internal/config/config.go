package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	AppName string `toml:"app_name"`

	// DedupeFinal drops the non-partial echo of text that already streamed
	// as partial deltas. Off by default: the accumulated response then
	// contains both copies, matching the observed runtime behavior.
	DedupeFinal bool `toml:"dedupe_final"`

	LLM       LLMConfig       `toml:"llm"`
	Providers ProvidersConfig `toml:"providers"`
	Gateway   GatewayConfig   `toml:"gateway"`
	DB        DBConfig        `toml:"db"`
	Trace     TraceConfig     `toml:"trace"`
}

type LLMConfig struct {
	Model   string `toml:"model"`
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
}

// ProvidersConfig holds credentials for the external data providers the
// trip tools call.
type ProvidersConfig struct {
	MapsAPIKey  string `toml:"maps_api_key"`
	CSEID       string `toml:"cse_id"`
	CSEKey      string `toml:"cse_key"`
	BraveAPIKey string `toml:"brave_api_key"`
}

type GatewayConfig struct {
	Addr string `toml:"addr"`
}

type DBConfig struct {
	Path string `toml:"path"`
}

type TraceConfig struct {
	Endpoint string `toml:"endpoint"`
	URLPath  string `toml:"url_path"`
	APIKey   string `toml:"api_key"`
}

func Load() (*Config, error) {
	cfg := &Config{
		AppName: "roadtrip_app",
		LLM: LLMConfig{
			Model:   "minimax/minimax-m2:free",
			BaseURL: "https://openrouter.ai/api/v1",
		},
		Gateway: GatewayConfig{
			Addr: ":8585",
		},
		DB: DBConfig{
			Path: defaultDBPath(),
		},
	}

	path := configPath()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv lets environment credentials override the file, matching how the
// deployment provides secrets.
func applyEnv(cfg *Config) {
	if v := os.Getenv("LITELLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LITELLM_API_BASE"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("GOOGLE_MAPS_API_KEY"); v != "" {
		cfg.Providers.MapsAPIKey = v
	}
	if v := os.Getenv("GOOGLE_CSE_ID"); v != "" {
		cfg.Providers.CSEID = v
	}
	if v := os.Getenv("GOOGLE_CSE_KEY"); v != "" {
		cfg.Providers.CSEKey = v
	}
	if v := os.Getenv("BRAVE_API_KEY"); v != "" {
		cfg.Providers.BraveAPIKey = v
	}
}

// Validate checks the credentials the tools cannot run without. The mapping
// key is mandatory; everything else degrades gracefully.
func (c *Config) Validate() error {
	if c.Providers.MapsAPIKey == "" {
		return fmt.Errorf("GOOGLE_MAPS_API_KEY missing in environment")
	}
	return nil
}

// Path returns the location of the config file.
func Path() string {
	return configPath()
}

func configPath() string {
	dir, _ := os.UserConfigDir()
	return filepath.Join(dir, "roadtrip", "config.toml")
}

func defaultDBPath() string {
	dir, _ := os.UserHomeDir()
	return filepath.Join(dir, ".local", "share", "roadtrip", "roadtrip.db")
}
