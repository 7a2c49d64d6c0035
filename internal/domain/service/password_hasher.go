// Package service holds the ports to everything outside the ordering core: the completion engine,
// the WhatsApp gateway, push delivery, event transport and the admin credential primitives.
package service

// PasswordHasher verifies the admin password against the bcrypt hash kept in config.
type PasswordHasher interface {
	// Hash is used by operators to produce the configured hash.
	Hash(password string) (string, error)

	Check(password, hash string) bool
}
