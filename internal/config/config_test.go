package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/softwaremanager/internal/models"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SOFTWAREMANAGER_CONFIG", "")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("route", "", "")
	fs.String("log-file", "", "")
	fs.String("log-level", "", "")
	fs.Bool("no-alt-screen", false, "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, models.RouteDashboard, cfg.Route())
	assert.Equal(t, 24, cfg.UI.SidebarWidth)
	assert.True(t, cfg.UI.AltScreen)
	assert.Empty(t, cfg.Log.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Projects)
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
[ui]
initial_route = "Collections"
sidebar_width = 30

[log]
level = "debug"

[[projects]]
name = "api"
path = "/src/api"
language = "golang"
git_url = "https://example.com/api.git"

[[projects]]
name = "tool"
path = "/src/tool"
language = "Zig"
description = "build helper"
`)
	t.Setenv("SOFTWAREMANAGER_CONFIG", path)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, models.RouteCollections, cfg.Route())
	assert.Equal(t, 30, cfg.UI.SidebarWidth)
	assert.Equal(t, "debug", cfg.Log.Level)

	seeds := cfg.SeedProjects()
	require.Len(t, seeds, 2)
	assert.Equal(t, "api", seeds[0].Name)
	assert.Equal(t, models.Known(models.LanguageGo), seeds[0].Language)
	require.NotNil(t, seeds[0].GitURL)
	assert.Equal(t, "https://example.com/api.git", *seeds[0].GitURL)
	assert.Nil(t, seeds[0].Description)
	assert.Equal(t, models.Other("Zig"), seeds[1].Language)
	require.NotNil(t, seeds[1].Description)
	assert.NotEqual(t, seeds[0].ID, seeds[1].ID)
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	t.Setenv("SOFTWAREMANAGER_CONFIG", writeConfig(t, "[ui]\ninitial_route = \"articles\"\n"))
	t.Setenv("SOFTWAREMANAGER_UI_INITIAL_ROUTE", "reports")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, models.RouteReports, cfg.Route())
}

func TestFlagsOverrideEverything(t *testing.T) {
	isolate(t)
	t.Setenv("SOFTWAREMANAGER_UI_INITIAL_ROUTE", "reports")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--route", "learners", "--log-file", "/tmp/sm.log", "--no-alt-screen"}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, models.RouteLearners, cfg.Route())
	assert.Equal(t, "/tmp/sm.log", cfg.Log.Path)
	assert.False(t, cfg.UI.AltScreen)
}

func TestConfigFlagSelectsFile(t *testing.T) {
	isolate(t)
	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--config", writeConfig(t, "[ui]\nsidebar_width = 40\n")}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.UI.SidebarWidth)
}

func TestLoadErrors(t *testing.T) {
	isolate(t)

	t.Setenv("SOFTWAREMANAGER_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	_, err := Load(nil)
	require.Error(t, err)

	t.Setenv("SOFTWAREMANAGER_CONFIG", writeConfig(t, "[ui]\ninitial_route = \"settings\"\n"))
	_, err = Load(nil)
	require.ErrorContains(t, err, "ui.initial_route")

	t.Setenv("SOFTWAREMANAGER_CONFIG", writeConfig(t, "[[projects]]\npath = \"/x\"\n"))
	_, err = Load(nil)
	require.ErrorContains(t, err, "name is required")

	t.Setenv("SOFTWAREMANAGER_CONFIG", writeConfig(t, "[ui]\nsidebar_width = 4\n"))
	_, err = Load(nil)
	require.ErrorContains(t, err, "sidebar_width")
}
