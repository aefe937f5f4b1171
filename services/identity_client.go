package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// IdentityToolkitClient signs users in through the Identity Toolkit REST API,
// the same endpoint the Firebase client SDKs use.
type IdentityToolkitClient struct {
	svc *identitytoolkit.Service
}

func NewIdentityToolkitClient(ctx context.Context, apiKey string) (*IdentityToolkitClient, error) {
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("identity toolkit client: %w", err)
	}
	return &IdentityToolkitClient{svc: svc}, nil
}

func (c *IdentityToolkitClient) VerifyPassword(ctx context.Context, email, password string) (Identity, error) {
	resp, err := c.svc.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return Identity{}, toolkitErr(err)
	}
	return Identity{UID: resp.LocalId, Email: resp.Email, DisplayName: resp.DisplayName}, nil
}

func (c *IdentityToolkitClient) VerifyIDToken(ctx context.Context, providerID, idToken, requestURI string) (Identity, error) {
	body := url.Values{"id_token": {idToken}, "providerId": {providerID}}
	resp, err := c.svc.Relyingparty.VerifyAssertion(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:          body.Encode(),
		RequestUri:        requestURI,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return Identity{}, toolkitErr(err)
	}
	if resp.ErrorMessage != "" {
		return Identity{}, toolkitErr(errors.New(resp.ErrorMessage))
	}
	name := resp.DisplayName
	if name == "" {
		name = resp.FullName
	}
	return Identity{UID: resp.LocalId, Email: resp.Email, DisplayName: name}, nil
}

// toolkitCodes maps REST error reasons onto the client SDK's auth/ codes.
var toolkitCodes = map[string]string{
	"EMAIL_NOT_FOUND":             "auth/user-not-found",
	"INVALID_PASSWORD":            "auth/wrong-password",
	"INVALID_LOGIN_CREDENTIALS":   "auth/invalid-credential",
	"INVALID_IDP_RESPONSE":        "auth/invalid-credential",
	"INVALID_EMAIL":               "auth/invalid-email",
	"TOO_MANY_ATTEMPTS_TRY_LATER": "auth/too-many-requests",
	"USER_DISABLED":               "auth/user-disabled",
}

func toolkitErr(err error) error {
	reason := err.Error()
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		reason = apiErr.Message
		if apiErr.Code >= 500 {
			return fmt.Errorf("sign in: %w: %w", ErrRemoteUnavailable, err)
		}
	} else if !strings.Contains(reason, "_") {
		return &AuthError{Code: "auth/network-request-failed", Message: reason}
	}

	// Reasons may carry a detail suffix, "TOO_MANY_ATTEMPTS_TRY_LATER : ...".
	key := strings.TrimSpace(strings.SplitN(reason, ":", 2)[0])
	if code, ok := toolkitCodes[key]; ok {
		return &AuthError{Code: code, Message: reason}
	}
	return &AuthError{Code: "auth/internal-error", Message: reason}
}
