package service

import "crypto/subtle"

// SiteGate verifies the optional site-wide passphrase asked for before the
// login screen. The gate protects the whole application front, not an
// individual account.
type SiteGate interface {
	// Enabled reports whether a passphrase is configured at all.
	Enabled() bool

	// Verify checks the submitted passphrase. Always nil when the gate is
	// disabled; ErrInvalidSitePassword on mismatch.
	Verify(password string) error
}

type siteGate struct {
	passphrase string
}

// NewSiteGate constructs a [SiteGate]. An empty passphrase disables the gate.
func NewSiteGate(passphrase string) SiteGate {
	return &siteGate{passphrase: passphrase}
}

func (g *siteGate) Enabled() bool {
	return g.passphrase != ""
}

func (g *siteGate) Verify(password string) error {
	if !g.Enabled() {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(g.passphrase), []byte(password)) != 1 {
		return ErrInvalidSitePassword
	}
	return nil
}
