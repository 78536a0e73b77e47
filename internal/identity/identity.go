// Package identity resolves the user that quiz attempts are recorded
// under. Attempts made without a resolved user are played normally but
// never persisted.
package identity

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// Provider resolves the current user, if any.
type Provider interface {
	// CurrentUserID returns the user identifier and whether one is set.
	CurrentUserID(ctx context.Context) (string, bool)
}

// EnvProvider resolves the user from the environment, falling back to a
// profile file. Resolution order:
//  1. QUIZCRAFT_USER_ID environment variable
//  2. $XDG_CONFIG_HOME/quizcraft/user (first line)
//  3. ~/.config/quizcraft/user (first line)
type EnvProvider struct{}

// NewEnvProvider returns the default environment-backed provider.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{}
}

func (p *EnvProvider) CurrentUserID(ctx context.Context) (string, bool) {
	if id := strings.TrimSpace(os.Getenv("QUIZCRAFT_USER_ID")); id != "" {
		return id, true
	}

	path, err := profilePath()
	if err != nil {
		return "", false
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	id, _, _ := strings.Cut(string(b), "\n")
	id = strings.TrimSpace(id)
	return id, id != ""
}

// profilePath resolves the user profile file location.
func profilePath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "quizcraft", "user"), nil
}

// Static always resolves to a fixed user. Used in tests and by the HTTP
// service, where the request supplies the user.
type Static string

func (s Static) CurrentUserID(ctx context.Context) (string, bool) {
	return string(s), s != ""
}
