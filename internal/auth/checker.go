package auth

import "context"

var (
	_ Checker = (*LoginChecker)(nil)
	_ Checker = (*LoginTestChecker)(nil)
)

// Checker tells whether a session token belongs to a logged in editor
type Checker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
}
