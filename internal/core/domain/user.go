package domain

import "errors"

const (
	RoleCashier = "cashier"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// AllRoles lists every role known to the system.
var AllRoles = []string{RoleCashier, RoleManager, RoleAdmin}

var (
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// User models an authenticated actor in the system.
//
// Password holds the stored credential verbatim. The legacy dataset keeps it
// in plaintext; comparison is delegated to service.CredentialVerifier so a
// hashed scheme can be swapped in without touching the login contract.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
}
