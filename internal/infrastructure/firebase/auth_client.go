package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// AuthClient wraps the Firebase Admin auth surface the marketplace actually
// uses: token verification, profile lookups, and custom-token minting for the
// development router.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

// VerifyToken validates an ID token and returns the UID plus the email claim,
// if the provider supplied one.
func (a *AuthClient) VerifyToken(ctx context.Context, idToken string) (uid, email string, err error) {
	token, err := a.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", "", err
	}

	if claim, ok := token.Claims["email"].(string); ok {
		email = claim
	}
	return token.UID, email, nil
}

// MintCustomToken issues a custom token for the given UID. Development only;
// the router gates it on the environment.
func (a *AuthClient) MintCustomToken(ctx context.Context, uid string) (string, error) {
	return a.client.CustomToken(ctx, uid)
}

// TestConnection exercises the Admin API with a lookup that is expected to
// fail with "user not found" when the connection itself is healthy.
func (a *AuthClient) TestConnection(ctx context.Context) error {
	_, err := a.client.GetUser(ctx, "healthcheck-nonexistent-uid")
	if err != nil && auth.IsUserNotFound(err) {
		return nil
	}
	return err
}
