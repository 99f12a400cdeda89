package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Check defaults
	if cfg.StorageType != "alist" {
		t.Errorf("Expected default storage_type 'alist', got %s", cfg.StorageType)
	}
	if cfg.Alist.BaseURL != "http://localhost:5244" {
		t.Errorf("Expected default alist base_url, got %s", cfg.Alist.BaseURL)
	}
	if cfg.Alist.RootPath != "/" {
		t.Errorf("Expected default root_path '/', got %s", cfg.Alist.RootPath)
	}
	if cfg.NameTemplate != "S{season:02d}E{episode:02d}" {
		t.Errorf("Expected default name_template, got %s", cfg.NameTemplate)
	}
	if !cfg.DryRun {
		t.Error("Expected dry_run to default to true")
	}
	if !cfg.Interactive {
		t.Error("Expected interactive to default to true")
	}
	if cfg.Mail.Port != 465 {
		t.Errorf("Expected default mail port 465, got %d", cfg.Mail.Port)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	os.Setenv("TVRENAME_STORAGE_TYPE", "baidu")
	os.Setenv("TVRENAME_BAIDU_ACCESS_TOKEN", "abc123")
	defer os.Unsetenv("TVRENAME_STORAGE_TYPE")
	defer os.Unsetenv("TVRENAME_BAIDU_ACCESS_TOKEN")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.StorageType != "baidu" {
		t.Errorf("Expected storage_type 'baidu' from env, got %s", cfg.StorageType)
	}
	if cfg.Baidu.AccessToken != "abc123" {
		t.Errorf("Expected access_token from env, got %s", cfg.Baidu.AccessToken)
	}
}

func TestNeedsSetup(t *testing.T) {
	cfg := &Config{StorageType: "alist"}
	if !cfg.NeedsSetup() {
		t.Error("alist without token should need setup")
	}
	cfg.Alist.Token = "tok"
	if cfg.NeedsSetup() {
		t.Error("alist with token should not need setup")
	}

	cfg = &Config{StorageType: "baidu"}
	if !cfg.NeedsSetup() {
		t.Error("baidu without access_token should need setup")
	}
	cfg.Baidu.AccessToken = "tok"
	if cfg.NeedsSetup() {
		t.Error("baidu with access_token should not need setup")
	}
}

func TestSelectedRoot(t *testing.T) {
	cfg := &Config{StorageType: "baidu"}
	cfg.Alist.RootPath = "/a"
	cfg.Baidu.RootPath = "/b"
	if got := cfg.SelectedRoot(); got != "/b" {
		t.Errorf("SelectedRoot() = %s, want /b", got)
	}
	cfg.StorageType = "alist"
	if got := cfg.SelectedRoot(); got != "/a" {
		t.Errorf("SelectedRoot() = %s, want /a", got)
	}
}
