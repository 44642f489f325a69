package service

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier compares a presented password against the stored
// credential. The login contract stays the same whichever scheme is wired in.
type CredentialVerifier interface {
	Verify(stored, presented string) bool
}

// PlaintextVerifier compares credentials byte for byte. This mirrors the
// legacy dataset, which stores passwords unhashed — a known defect kept for
// compatibility until the records are migrated.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(stored, presented string) bool {
	return stored != "" && stored == presented
}

// BcryptVerifier expects the stored credential to be a bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}

// HashPassword produces a bcrypt hash suitable for BcryptVerifier. Used by
// provisioning tooling when migrating legacy records.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
