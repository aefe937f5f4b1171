package services

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// PasswordResetMessage is returned for every reset request, whether or not
// the address belongs to an account.
const PasswordResetMessage = "Hvis e-postadressen finnes i systemet, vil du motta en lenke for å tilbakestille passordet."

type AuthService struct {
	AccountRepo repositories.AccountRepository
	Verifier    IdentityVerifier
	Identity    IdentityAdmin
	Tokens      *TokenIssuer
	Providers   map[string]OAuthProvider
	Mailer      Mailer
	Logger      *zap.Logger
}

func NewAuthService(
	accountRepo repositories.AccountRepository,
	verifier IdentityVerifier,
	identity IdentityAdmin,
	tokens *TokenIssuer,
	providers map[string]OAuthProvider,
	mailer Mailer,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		AccountRepo: accountRepo,
		Verifier:    verifier,
		Identity:    identity,
		Tokens:      tokens,
		Providers:   providers,
		Mailer:      mailer,
		Logger:      logger,
	}
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.AuthResult, error) {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return nil, &AuthError{Code: "auth/invalid-email", Message: "invalid email"}
	}
	if password == "" {
		return nil, &AuthError{Code: "auth/invalid-credential", Message: "empty password"}
	}

	if s.Verifier == nil {
		return nil, fmt.Errorf("sign in: %w", ErrRemoteUnavailable)
	}
	identity, err := s.Verifier.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.completeSignIn(ctx, identity)
}

// ProviderAuthURL is where the client sends the user to sign in with provider.
func (s *AuthService) ProviderAuthURL(provider, state string) (string, error) {
	p, ok := s.Providers[provider]
	if !ok {
		return "", &AuthError{Code: "auth/provider-not-configured", Message: provider}
	}
	return p.AuthURL(state), nil
}

func (s *AuthService) SignInWithProvider(ctx context.Context, provider, code string) (*models.AuthResult, error) {
	p, ok := s.Providers[provider]
	if !ok {
		return nil, &AuthError{Code: "auth/provider-not-configured", Message: provider}
	}
	if s.Verifier == nil {
		return nil, fmt.Errorf("sign in with %s: %w", provider, ErrRemoteUnavailable)
	}
	idToken, err := p.ExchangeIDToken(ctx, code)
	if err != nil {
		return nil, err
	}
	identity, err := s.Verifier.VerifyIDToken(ctx, p.ProviderID, idToken, p.Config.RedirectURL)
	if err != nil {
		return nil, err
	}
	return s.completeSignIn(ctx, identity)
}

// SignUp registers a staff user with the identity provider and stores their profile.
func (s *AuthService) SignUp(ctx context.Context, email, password, name string) (*models.AuthResult, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if !strings.Contains(email, "@") {
		return nil, validationError("auth/invalid-email", "Ugyldig e-postadresse")
	}
	if len(password) < 6 {
		return nil, validationError("auth/weak-password", "Passordet er for svakt (minst 6 tegn)")
	}
	if name == "" {
		return nil, validationError("name_required", "Navn må fylles ut")
	}
	if s.Identity == nil {
		return nil, ErrRemoteUnavailable
	}

	uid, err := s.Identity.CreateUser(ctx, email, password, name)
	if err != nil {
		return nil, err
	}

	account := models.Account{
		ID:    uid,
		Email: email,
		Role:  models.RoleStaff,
	}
	account.SetName(name)
	account.CreatedAt = models.FormatTimestamp(time.Now())
	if err := s.AccountRepo.Save(ctx, account); err != nil {
		return nil, storeErr("save account", err)
	}
	s.Logger.Info("user registered", zap.String("account_id", uid))

	return s.issue(account, uid)
}

func (s *AuthService) completeSignIn(ctx context.Context, identity Identity) (*models.AuthResult, error) {
	account, err := s.linkAccount(ctx, identity)
	if err != nil {
		return nil, err
	}
	return s.issue(account, identity.UID)
}

// linkAccount finds the profile for a signed-in identity: the users document
// under its uid, else the first account with its e-mail (an invited guardian),
// else a new staff profile under the uid.
func (s *AuthService) linkAccount(ctx context.Context, identity Identity) (models.Account, error) {
	account, err := s.AccountRepo.FindByID(ctx, identity.UID)
	if err == nil {
		account.ID = identity.UID
		return account, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return models.Account{}, storeErr("load account", err)
	}

	if identity.Email != "" {
		byEmail, err := s.AccountRepo.FindByEmail(ctx, identity.Email)
		if err != nil {
			return models.Account{}, storeErr("find account", err)
		}
		if len(byEmail) > 0 {
			return s.linkByEmail(ctx, byEmail[0], identity.UID)
		}
	}

	name := strings.TrimSpace(identity.DisplayName)
	if name == "" {
		name = models.DefaultAccountName
	}
	account = models.Account{
		ID:    identity.UID,
		Email: identity.Email,
		Role:  models.RoleStaff,
	}
	account.SetName(name)
	account.CreatedAt = models.FormatTimestamp(time.Now())
	if err := s.AccountRepo.Save(ctx, account); err != nil {
		return models.Account{}, storeErr("create account", err)
	}
	s.Logger.Info("account created on first sign-in", zap.String("account_id", identity.UID))
	return account, nil
}

// linkByEmail records the identity uid on an account keyed by another id,
// so deleting or renaming the account reaches the right identity user.
func (s *AuthService) linkByEmail(ctx context.Context, account models.Account, uid string) (models.Account, error) {
	if account.FirebaseUID == uid || account.ID == uid {
		return account, nil
	}
	if account.FirebaseUID != "" {
		s.Logger.Warn("account already linked to another identity",
			zap.String("account_id", account.ID),
			zap.String("linked_uid", account.FirebaseUID),
			zap.String("uid", uid))
	}
	if err := s.AccountRepo.Update(ctx, account.ID, repositories.Fields{"firebaseUid": uid}); err != nil {
		return models.Account{}, storeErr("link account "+account.ID, err)
	}
	account.FirebaseUID = uid
	s.Logger.Info("identity linked to account by email",
		zap.String("uid", uid),
		zap.String("account_id", account.ID))
	return account, nil
}

func (s *AuthService) issue(account models.Account, uid string) (*models.AuthResult, error) {
	token, err := s.Tokens.Issue(models.Session{
		AccountID:   account.ID,
		FirebaseUID: uid,
		Email:       account.Email,
		Name:        account.Name,
		Role:        account.Role,
	})
	if err != nil {
		return nil, err
	}
	return &models.AuthResult{Token: token, Account: account}, nil
}

// RefreshSession reloads the profile behind a token, so role, e-mail and
// deletion changes made after the token was issued apply right away.
func (s *AuthService) RefreshSession(ctx context.Context, session models.Session) (models.Session, error) {
	account, err := s.AccountRepo.FindByID(ctx, session.AccountID)
	if err != nil {
		return models.Session{}, storeErr("refresh session", err)
	}
	session.Role = account.Role
	session.Email = account.Email
	session.Name = account.Name
	return session, nil
}

func (s *AuthService) Profile(ctx context.Context, session models.Session) (models.Account, error) {
	account, err := s.AccountRepo.FindByID(ctx, session.AccountID)
	if err != nil {
		return models.Account{}, storeErr("load profile", err)
	}
	account.ID = session.AccountID
	return account, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, session models.Session, in models.ProfileInput) (models.Account, error) {
	account, err := s.Profile(ctx, session)
	if err != nil {
		return models.Account{}, err
	}

	fields := repositories.Fields{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return models.Account{}, validationError("name_required", "Navn må fylles ut")
		}
		account.SetName(name)
		fields["name"] = account.Name
		fields["avatar"] = account.Avatar
	}
	if in.Phone != nil {
		account.Phone = *in.Phone
		fields["phone"] = account.Phone
	}
	if in.Relation != nil {
		account.Relation = *in.Relation
		fields["relation"] = account.Relation
	}
	if in.DeviceToken != nil {
		account.DeviceToken = *in.DeviceToken
		fields["deviceToken"] = account.DeviceToken
	}
	if in.Lang != nil {
		account.Lang = *in.Lang
		fields["lang"] = account.Lang
	}
	if len(fields) == 0 {
		return account, nil
	}

	if err := s.AccountRepo.Update(ctx, session.AccountID, fields); err != nil {
		return models.Account{}, storeErr("update profile", err)
	}
	if in.Name != nil && s.Identity != nil && session.FirebaseUID != "" {
		if err := s.Identity.UpdateDisplayName(ctx, session.FirebaseUID, account.Name); err != nil {
			s.Logger.Warn("display name not updated", zap.String("uid", session.FirebaseUID), zap.Error(err))
		}
	}
	return account, nil
}

// SignOut revokes the user's refresh tokens with the identity provider.
func (s *AuthService) SignOut(ctx context.Context, session models.Session) error {
	if s.Identity == nil || session.FirebaseUID == "" {
		return nil
	}
	if err := s.Identity.RevokeRefreshTokens(ctx, session.FirebaseUID); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// RequestPasswordReset e-mails a reset link when the address is known. The
// answer does not reveal whether it was.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return "", validationError("invalid_email", "Vennligst oppgi en gyldig e-postadresse")
	}
	if s.Identity == nil || s.Mailer == nil {
		s.Logger.Warn("password reset requested but identity or mail is not configured")
		return PasswordResetMessage, nil
	}

	link, err := s.Identity.PasswordResetLink(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.Logger.Warn("password reset link failed", zap.Error(err))
		}
		return PasswordResetMessage, nil
	}

	name := email
	if account, err := s.firstAccount(ctx, email); err == nil && account != nil {
		name = account.Name
	}
	if err := s.Mailer.SendPasswordResetEmail(ctx, email, name, link); err != nil {
		s.Logger.Warn("password reset email failed", zap.Error(err))
	}
	return PasswordResetMessage, nil
}

func (s *AuthService) firstAccount(ctx context.Context, email string) (*models.Account, error) {
	accounts, err := s.AccountRepo.FindByEmail(ctx, email)
	if err != nil || len(accounts) == 0 {
		return nil, err
	}
	return &accounts[0], nil
}

// ChangePassword verifies the old password by signing in with it before the
// new one is set.
func (s *AuthService) ChangePassword(ctx context.Context, session models.Session, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return validationError("passwords_required", "Begge passord må fylles ut")
	}
	if !ValidatePasswordStrength(newPassword).Valid {
		return validationError("password_too_weak", "Passordet er for svakt")
	}
	if s.Identity == nil || s.Verifier == nil {
		return ErrRemoteUnavailable
	}

	identity, err := s.Verifier.VerifyPassword(ctx, session.Email, oldPassword)
	if err != nil {
		return err
	}
	return s.Identity.UpdatePassword(ctx, identity.UID, newPassword)
}
