package middleware

// Authorizer guards the destructive operations (restore, delete,
// snapshot create, archive transfer/delete). The only implementation
// today compares a caller-supplied password against a configured
// secret; handlers deny unless the match is exact.
type Authorizer interface {
	Authorize(password string) bool
}

type StaticPassword struct {
	secret string
}

func NewStaticPassword(secret string) *StaticPassword {
	return &StaticPassword{secret: secret}
}

// Authorize denies everything when no secret is configured.
func (a *StaticPassword) Authorize(password string) bool {
	return a.secret != "" && password == a.secret
}
