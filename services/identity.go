package services

import "context"

// Identity is a user confirmed by the identity provider.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
}

// IdentityVerifier checks sign-in credentials with the identity provider.
type IdentityVerifier interface {
	VerifyPassword(ctx context.Context, email, password string) (Identity, error)
	// VerifyIDToken signs in with an id token issued by an external provider
	// such as google.com or microsoft.com.
	VerifyIDToken(ctx context.Context, providerID, idToken, requestURI string) (Identity, error)
}

// IdentityAdmin manages users in the identity provider.
type IdentityAdmin interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	UpdateDisplayName(ctx context.Context, uid, name string) error
	UpdatePassword(ctx context.Context, uid, password string) error
	DeleteUser(ctx context.Context, uid string) error
	RevokeRefreshTokens(ctx context.Context, uid string) error
	PasswordResetLink(ctx context.Context, email string) (string, error)
}

// Mailer sends account e-mails.
type Mailer interface {
	SendPasswordResetEmail(ctx context.Context, toEmail, toName, resetLink string) error
	SendInviteEmail(ctx context.Context, toEmail, toName, resetLink string) error
}
