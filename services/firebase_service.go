package services

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// FirebaseIdentity is the IdentityAdmin backed by the Firebase Admin SDK.
// ContinueURL, when set, is where the reset page sends the user afterwards.
type FirebaseIdentity struct {
	Client      *auth.Client
	ContinueURL string
}

func NewFirebaseIdentity(client *auth.Client, continueURL string) *FirebaseIdentity {
	return &FirebaseIdentity{Client: client, ContinueURL: continueURL}
}

func (f *FirebaseIdentity) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).Email(email)
	if password != "" {
		params = params.Password(password)
	}
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	user, err := f.Client.CreateUser(ctx, params)
	if err != nil {
		return "", firebaseErr("create user", err)
	}
	return user.UID, nil
}

func (f *FirebaseIdentity) UpdateDisplayName(ctx context.Context, uid, name string) error {
	_, err := f.Client.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).DisplayName(name))
	return firebaseErr("update display name", err)
}

func (f *FirebaseIdentity) UpdatePassword(ctx context.Context, uid, password string) error {
	_, err := f.Client.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).Password(password))
	return firebaseErr("update password", err)
}

// DeleteUser removes the user from Firebase Auth by uid.
func (f *FirebaseIdentity) DeleteUser(ctx context.Context, uid string) error {
	return firebaseErr("delete user", f.Client.DeleteUser(ctx, uid))
}

func (f *FirebaseIdentity) RevokeRefreshTokens(ctx context.Context, uid string) error {
	return firebaseErr("revoke tokens", f.Client.RevokeRefreshTokens(ctx, uid))
}

func (f *FirebaseIdentity) PasswordResetLink(ctx context.Context, email string) (string, error) {
	var link string
	var err error
	if f.ContinueURL != "" {
		link, err = f.Client.PasswordResetLinkWithSettings(ctx, email, &auth.ActionCodeSettings{URL: f.ContinueURL})
	} else {
		link, err = f.Client.PasswordResetLink(ctx, email)
	}
	if err != nil {
		return "", firebaseErr("password reset link", err)
	}
	return link, nil
}

func firebaseErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case auth.IsUserNotFound(err):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case auth.IsEmailAlreadyExists(err):
		return validationError("auth/email-already-in-use", "E-postadressen er allerede i bruk")
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrRemoteUnavailable, err)
	}
}
