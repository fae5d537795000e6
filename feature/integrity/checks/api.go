package checks

import "context"

// Authenticator is satisfied by api.Client.
type Authenticator interface {
	Authenticate(ctx context.Context) error
}

// CheckAPI verifies the configured credentials are accepted.
func CheckAPI(ctx context.Context, client Authenticator) Result {
	if err := client.Authenticate(ctx); err != nil {
		return failed("api", err)
	}
	return Result{Name: "api", Status: StatusOK}
}
