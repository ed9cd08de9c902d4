package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/grace-celebration/backend/pkg/utils"
)

// Gate verifies the admin access code and guest invitation codes. The admin
// code exchange yields a signed, expiring session token checked server-side on
// every privileged call; there is no client-local session flag.
type Gate struct {
	adminCode     string
	adminCodeHash string
	guestCodes    map[string]struct{}
}

// NewGate creates an access gate. When adminCodeHash is set it takes
// precedence over the plaintext code.
func NewGate(adminCode, adminCodeHash string, guestCodes []string) *Gate {
	codes := make(map[string]struct{}, len(guestCodes))
	for _, c := range guestCodes {
		codes[strings.ToUpper(strings.TrimSpace(c))] = struct{}{}
	}
	return &Gate{
		adminCode:     adminCode,
		adminCodeHash: adminCodeHash,
		guestCodes:    codes,
	}
}

// VerifyAdmin reports whether the supplied code grants admin access.
func (g *Gate) VerifyAdmin(code string) bool {
	if g.adminCodeHash != "" {
		return utils.CheckCode(code, g.adminCodeHash)
	}
	if g.adminCode == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(g.adminCode)) == 1
}

// VerifyGuest reports whether the supplied invitation code is valid.
// Comparison is case-insensitive.
func (g *Gate) VerifyGuest(code string) bool {
	_, ok := g.guestCodes[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}
