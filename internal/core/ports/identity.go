package ports

import "context"

// GoogleIdentity is the subset of the issuer's claims the platform acts on.
type GoogleIdentity struct {
	Email         string
	EmailVerified bool
	GivenName     string
	FamilyName    string
	Name          string
}

// IdentityResolver validates a third-party identity assertion (a signed ID
// token or a bearer access token) and returns the asserted identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, assertion string) (*GoogleIdentity, error)
}
