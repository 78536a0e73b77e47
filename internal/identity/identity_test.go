package identity

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestEnvProviderFromEnv(t *testing.T) {
	t.Setenv("QUIZCRAFT_USER_ID", "env-user")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	id, ok := NewEnvProvider().CurrentUserID(context.Background())
	if !ok || id != "env-user" {
		t.Errorf("got (%q, %v), want env-user", id, ok)
	}
}

func TestEnvProviderFromProfileFile(t *testing.T) {
	t.Setenv("QUIZCRAFT_USER_ID", "")
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "quizcraft")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "user"), []byte("file-user\nextra\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	id, ok := NewEnvProvider().CurrentUserID(context.Background())
	if !ok || id != "file-user" {
		t.Errorf("got (%q, %v), want file-user", id, ok)
	}
}

func TestEnvProviderAnonymous(t *testing.T) {
	t.Setenv("QUIZCRAFT_USER_ID", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if id, ok := NewEnvProvider().CurrentUserID(context.Background()); ok {
		t.Errorf("expected anonymous, got %q", id)
	}
}

func TestStatic(t *testing.T) {
	if id, ok := Static("fixed").CurrentUserID(context.Background()); !ok || id != "fixed" {
		t.Errorf("got (%q, %v)", id, ok)
	}
	if _, ok := Static("").CurrentUserID(context.Background()); ok {
		t.Error("empty Static should be anonymous")
	}
}
