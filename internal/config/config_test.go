package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDecode(t *testing.T) {
	cfg, err := Decode(map[string]any{
		"base_url":        "https://ilfc.example.com/api",
		"use_credentials": "true",
		"timeout":         "5s",
		"auth": map[string]any{
			"mode":       "terminal",
			"login_path": "/admin/login",
		},
	})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if cfg.BaseURL != "https://ilfc.example.com/api" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if !cfg.UseCredentials {
		t.Error("UseCredentials not decoded from string")
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.Auth.Mode != AuthModeTerminal || cfg.Auth.LoginPath != "/admin/login" {
		t.Errorf("Auth = %+v", cfg.Auth)
	}
	if cfg.Auth.RefreshPath != "/users/refresh" {
		t.Errorf("RefreshPath default lost: %q", cfg.Auth.RefreshPath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "Defaults", mutate: func(*Config) {}},
		{name: "Missing Base URL", mutate: func(c *Config) { c.BaseURL = "" }, wantErr: true},
		{name: "Relative Base URL", mutate: func(c *Config) { c.BaseURL = "/api" }, wantErr: true},
		{name: "Unknown Auth Mode", mutate: func(c *Config) { c.Auth.Mode = "magic" }, wantErr: true},
		{name: "Login Path Without Slash", mutate: func(c *Config) { c.Auth.LoginPath = "users/login" }, wantErr: true},
		{name: "Unknown Log Format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ilfc.yaml")
	content := `base_url: https://ilfc.example.com/api
auth:
  mode: terminal
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.Mode != AuthModeTerminal {
		t.Errorf("Auth.Mode = %q", cfg.Auth.Mode)
	}
	if cfg.Auth.LoginPath != "/users/login" {
		t.Errorf("LoginPath default lost: %q", cfg.Auth.LoginPath)
	}
}
