package alfrusco

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Script environment variables Alfred injects into every workflow run.
// See https://www.alfredapp.com/help/workflows/script-environment-variables/
const (
	envPreferences              = "alfred_preferences"
	envPreferencesLocalHash     = "alfred_preferences_localhash"
	envTheme                    = "alfred_theme"
	envThemeBackground          = "alfred_theme_background"
	envThemeSelectionBackground = "alfred_theme_selection_background"
	envThemeSubtext             = "alfred_theme_subtext"
	envVersion                  = "alfred_version"
	envVersionBuild             = "alfred_version_build"
	envWorkflowBundleID         = "alfred_workflow_bundleid"
	envWorkflowCache            = "alfred_workflow_cache"
	envWorkflowData             = "alfred_workflow_data"
	envWorkflowName             = "alfred_workflow_name"
	envWorkflowDescription      = "alfred_workflow_description"
	envWorkflowVersion          = "alfred_workflow_version"
	envWorkflowUID              = "alfred_workflow_uid"
	envWorkflowKeyword          = "alfred_workflow_keyword"
	envDebug                    = "alfred_debug"
	envQuery                    = "alfred_query"
)

// Config holds the workflow configuration for the current run.
type Config struct {
	Preferences              string
	PreferencesLocalHash     string
	Theme                    string
	ThemeBackground          string
	ThemeSelectionBackground string
	ThemeSubtext             string
	Version                  string
	VersionBuild             string
	BundleID                 string
	CacheDir                 string
	DataDir                  string
	Name                     string
	Description              string
	WorkflowVersion          string
	UID                      string
	Keyword                  string
	Debug                    bool
}

// ConfigProvider supplies the workflow configuration. EnvProvider is
// used in production; TestingProvider in tests.
type ConfigProvider interface {
	Config() (*Config, error)
}

// EnvProvider reads the configuration from the Alfred script
// environment and ensures the cache and data directories exist.
type EnvProvider struct{}

func (EnvProvider) Config() (*Config, error) {
	debug := os.Getenv(envDebug)

	cfg := &Config{
		Preferences:              os.Getenv(envPreferences),
		PreferencesLocalHash:     os.Getenv(envPreferencesLocalHash),
		Theme:                    os.Getenv(envTheme),
		ThemeBackground:          os.Getenv(envThemeBackground),
		ThemeSelectionBackground: os.Getenv(envThemeSelectionBackground),
		ThemeSubtext:             os.Getenv(envThemeSubtext),
		Version:                  os.Getenv(envVersion),
		VersionBuild:             os.Getenv(envVersionBuild),
		BundleID:                 os.Getenv(envWorkflowBundleID),
		CacheDir:                 os.Getenv(envWorkflowCache),
		DataDir:                  os.Getenv(envWorkflowData),
		Name:                     os.Getenv(envWorkflowName),
		Description:              os.Getenv(envWorkflowDescription),
		WorkflowVersion:          os.Getenv(envWorkflowVersion),
		UID:                      os.Getenv(envWorkflowUID),
		Keyword:                  os.Getenv(envWorkflowKeyword),
		Debug:                    debug == "1" || strings.EqualFold(debug, "true"),
	}

	if cfg.CacheDir == "" {
		return nil, fmt.Errorf("%s is not set; is this running inside Alfred?", envWorkflowCache)
	}
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("%s is not set; is this running inside Alfred?", envWorkflowData)
	}
	if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create workflow cache directory: %w", err)
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create workflow data directory: %w", err)
	}
	return cfg, nil
}

// TestingProvider builds a configuration rooted at Dir, with plausible
// fixture values for the rest, so workflows can run outside Alfred.
type TestingProvider struct {
	Dir string
}

func (p TestingProvider) Config() (*Config, error) {
	cacheDir := filepath.Join(p.Dir, "workflow_cache")
	dataDir := filepath.Join(p.Dir, "workflow_data")
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create workflow cache directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create workflow data directory: %w", err)
	}

	return &Config{
		Preferences:              "/Users/Crayons/Dropbox/Alfred/Alfred.alfredpreferences",
		PreferencesLocalHash:     "adbd4f66bc3ae8493832af61a41ee609b20d8705",
		Theme:                    "alfred.theme.yosemite",
		ThemeBackground:          "rgba(255,255,255,0.98)",
		ThemeSelectionBackground: "rgba(255,255,255,0.98)",
		ThemeSubtext:             "3",
		Version:                  "5.0",
		VersionBuild:             "2058",
		BundleID:                 "com.alfredapp.alfrusco.testing",
		CacheDir:                 cacheDir,
		DataDir:                  dataDir,
		Name:                     "Test Workflow",
		Description:              "Workflow used by the alfrusco test suite",
		WorkflowVersion:          "1.7",
		UID:                      "user.workflow.B0AC54EC-601C-479A-9428-01F9FD732959",
		Debug:                    true,
	}, nil
}
