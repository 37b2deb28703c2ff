package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsYSecretRequerido(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SERVER_SECRET_KEY", "")

	if _, err := Load(""); err == nil {
		t.Fatal("sin secreto debería fallar")
	}

	t.Setenv("JWT_SECRET", "secreto")
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr != ":3000" {
		t.Errorf("addr = %q, want :3000", c.Server.Addr)
	}
	if got := c.AccessTTL(); got != 24*time.Hour {
		t.Errorf("AccessTTL = %v, want 24h", got)
	}
	if c.Storage.Mongo.Database != "finanzasapi" {
		t.Errorf("database = %q", c.Storage.Mongo.Database)
	}
}

func TestLoad_EnvPisaYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := []byte("server:\n  addr: \":8000\"\njwt:\n  secret: del-yaml\n  access_ttl: 1h\n")
	if err := os.WriteFile(path, yaml, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("ADDR", ":9000")
	t.Setenv("JWT_SECRET", "del-env")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr != ":9000" {
		t.Errorf("env debería pisar el yaml: addr = %q", c.Server.Addr)
	}
	if c.JWT.Secret != "del-env" {
		t.Errorf("secret = %q", c.JWT.Secret)
	}
	if got := c.AccessTTL(); got != time.Hour {
		t.Errorf("AccessTTL = %v, want 1h", got)
	}
}

func TestLoad_AliasServerSecretKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SERVER_SECRET_KEY", "legacy")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.JWT.Secret != "legacy" {
		t.Errorf("secret = %q, want legacy", c.JWT.Secret)
	}
}
