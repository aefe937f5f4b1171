package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/microsoft"
)

// OAuthProvider is an external sign-in provider. ProviderID is the id the
// identity provider knows it by.
type OAuthProvider struct {
	Name       string
	ProviderID string
	Config     *oauth2.Config
	AuthParams map[string]string
}

type OAuthSettings struct {
	GoogleClientID        string
	GoogleClientSecret    string
	MicrosoftClientID     string
	MicrosoftClientSecret string
	MicrosoftTenant       string
	// RedirectBase is the public URL the provider sends the user back to,
	// "/auth/{provider}/callback" is appended.
	RedirectBase string
}

// NewOAuthProviders builds the providers whose client id and secret are set.
func NewOAuthProviders(s OAuthSettings) map[string]OAuthProvider {
	providers := map[string]OAuthProvider{}
	base := strings.TrimRight(s.RedirectBase, "/")

	if s.GoogleClientID != "" && s.GoogleClientSecret != "" {
		providers["google"] = OAuthProvider{
			Name:       "google",
			ProviderID: "google.com",
			Config: &oauth2.Config{
				ClientID:     s.GoogleClientID,
				ClientSecret: s.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				RedirectURL:  base + "/auth/google/callback",
				Scopes:       []string{"openid", "email", "profile"},
			},
			AuthParams: map[string]string{"prompt": "select_account"},
		}
	}

	if s.MicrosoftClientID != "" && s.MicrosoftClientSecret != "" {
		tenant := s.MicrosoftTenant
		if tenant == "" {
			tenant = "common"
		}
		providers["microsoft"] = OAuthProvider{
			Name:       "microsoft",
			ProviderID: "microsoft.com",
			Config: &oauth2.Config{
				ClientID:     s.MicrosoftClientID,
				ClientSecret: s.MicrosoftClientSecret,
				Endpoint:     microsoft.AzureADEndpoint(tenant),
				RedirectURL:  base + "/auth/microsoft/callback",
				Scopes:       []string{"openid", "email", "profile"},
			},
			AuthParams: map[string]string{"prompt": "select_account"},
		}
	}
	return providers
}

func (p OAuthProvider) AuthURL(state string) string {
	options := []oauth2.AuthCodeOption{oauth2.AccessTypeOnline}
	for key, value := range p.AuthParams {
		options = append(options, oauth2.SetAuthURLParam(key, value))
	}
	return p.Config.AuthCodeURL(state, options...)
}

// ExchangeIDToken trades an authorization code for the provider's OpenID id token.
func (p OAuthProvider) ExchangeIDToken(ctx context.Context, code string) (string, error) {
	token, err := p.Config.Exchange(ctx, code)
	if err != nil {
		return "", &AuthError{Code: "auth/invalid-credential", Message: fmt.Sprintf("exchange %s code: %v", p.Name, err)}
	}
	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", &AuthError{Code: "auth/invalid-credential", Message: p.Name + " returned no id token"}
	}
	return idToken, nil
}
