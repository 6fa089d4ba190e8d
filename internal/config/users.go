// Package config provides the environment-backed login user table.
package config

import (
	"fmt"
	"os"
)

// loginUser is one configured credential pair. The plaintext password from
// the environment is hashed at startup and discarded.
type loginUser struct {
	username     string
	passwordHash string
}

// UserTable holds the set of users allowed to log in. Users come from the
// environment, not from a store: this service has no user data model.
type UserTable struct {
	passwords *PasswordConfig
	users     []loginUser
}

// NewUserTable builds the user table from ADMIN_USERNAME/ADMIN_PASSWORD and
// FRIEND_USERNAME/FRIEND_PASSWORD. A user with an empty password is disabled
// and omitted. Usernames default to "admin" and "friend".
func NewUserTable(passwords *PasswordConfig) (*UserTable, error) {
	t := &UserTable{passwords: passwords}

	pairs := []struct {
		userEnv, passEnv, defaultName string
	}{
		{"ADMIN_USERNAME", "ADMIN_PASSWORD", "admin"},
		{"FRIEND_USERNAME", "FRIEND_PASSWORD", "friend"},
	}

	for _, p := range pairs {
		password := os.Getenv(p.passEnv)
		if password == "" {
			continue
		}
		username := os.Getenv(p.userEnv)
		if username == "" {
			username = p.defaultName
		}
		hash, err := passwords.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash %s: %w", p.passEnv, err)
		}
		t.users = append(t.users, loginUser{username: username, passwordHash: hash})
	}

	return t, nil
}

// Configured reports whether at least one login user exists.
func (t *UserTable) Configured() bool {
	return len(t.users) > 0
}

// Verify checks a username/password pair against the table.
func (t *UserTable) Verify(username, password string) bool {
	for _, u := range t.users {
		if u.username == username && t.passwords.VerifyPassword(password, u.passwordHash) {
			return true
		}
	}
	return false
}
