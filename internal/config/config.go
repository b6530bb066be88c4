package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jask/softwaremanager/internal/models"
)

const envPrefix = "SOFTWAREMANAGER"

// Config holds application configuration.
type Config struct {
	UI       UIConfig
	Log      LogConfig
	Projects []ProjectConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	InitialRoute string `mapstructure:"initial_route"`
	SidebarWidth int    `mapstructure:"sidebar_width"`
	AltScreen    bool   `mapstructure:"alt_screen"`
}

// LogConfig controls the zap file sink. An empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// ProjectConfig seeds one project into the in-memory list at startup.
type ProjectConfig struct {
	Name        string
	Path        string
	Language    string
	Description string
	GitURL      string `mapstructure:"git_url"`
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"route":     "ui.initial_route",
	"log-file":  "log.path",
	"log-level": "log.level",
}

// Load reads configuration from file, env and flags, in increasing order of
// precedence. Env var overrides use prefix SOFTWAREMANAGER_. flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.initial_route", models.RouteDashboard.String())
	v.SetDefault("ui.sidebar_width", 24)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv(envPrefix + "_CONFIG")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "softwaremanager"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if f := flags.Lookup("no-alt-screen"); f != nil && f.Changed {
			v.Set("ui.alt_screen", f.Value.String() != "true")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit path that does not exist is an error; a missing default is not
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that cannot be expressed as defaults.
func (c Config) Validate() error {
	if _, err := models.ParseRoute(c.UI.InitialRoute); err != nil {
		return fmt.Errorf("ui.initial_route: %w", err)
	}
	if c.UI.SidebarWidth < 12 {
		return fmt.Errorf("ui.sidebar_width: must be at least 12, got %d", c.UI.SidebarWidth)
	}
	for i, p := range c.Projects {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("projects[%d]: name is required", i)
		}
	}
	return nil
}

// Route returns the validated initial route.
func (c Config) Route() models.Route {
	r, _ := models.ParseRoute(c.UI.InitialRoute)
	return r
}

// SeedProjects converts the configured projects into fresh records.
func (c Config) SeedProjects() []models.Project {
	out := make([]models.Project, 0, len(c.Projects))
	for _, pc := range c.Projects {
		lang := models.Other("")
		if strings.TrimSpace(pc.Language) != "" {
			lang = models.ParseLanguage(pc.Language)
		}
		p := models.NewProject(pc.Name, pc.Path, lang)
		p.Description = models.StringPtr(pc.Description)
		p.GitURL = models.StringPtr(pc.GitURL)
		out = append(out, p)
	}
	return out
}
