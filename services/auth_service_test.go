package services

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"Henteklar/repositories/mocks"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeVerifier struct {
	identity Identity
	err      error
}

func (f fakeVerifier) VerifyPassword(ctx context.Context, email, password string) (Identity, error) {
	return f.identity, f.err
}

func (f fakeVerifier) VerifyIDToken(ctx context.Context, providerID, idToken, requestURI string) (Identity, error) {
	return f.identity, f.err
}

func newAuthService(accountRepo *mocks.AccountRepository, verifier IdentityVerifier, identity IdentityAdmin, mailer Mailer) *AuthService {
	return NewAuthService(accountRepo, verifier, identity, NewTokenIssuer("test-secret"), nil, mailer, zap.NewNop())
}

func TestSignInUsesExistingProfile(t *testing.T) {
	accountRepo := new(mocks.AccountRepository)
	svc := newAuthService(accountRepo, fakeVerifier{identity: Identity{UID: "u1", Email: "a@example.com"}}, nil, nil)
	accountRepo.On("FindByID", mock.Anything, "u1").Return(models.Account{Email: "a@example.com", Role: models.RoleAdmin, Name: "Anne"}, nil)

	result, err := svc.SignIn(context.Background(), "a@example.com", "hemmelig")

	require.NoError(t, err)
	assert.Equal(t, "u1", result.Account.ID)

	session, err := svc.Tokens.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, models.Session{AccountID: "u1", FirebaseUID: "u1", Email: "a@example.com", Name: "Anne", Role: models.RoleAdmin}, session)
}

func TestSignInLinksInvitedGuardianByEmail(t *testing.T) {
	accountRepo := new(mocks.AccountRepository)
	svc := newAuthService(accountRepo, fakeVerifier{identity: Identity{UID: "u2", Email: "mor@example.com"}}, nil, nil)
	accountRepo.On("FindByID", mock.Anything, "u2").Return(models.Account{}, repositories.ErrNotFound)
	accountRepo.On("FindByEmail", mock.Anything, "mor@example.com").Return([]models.Account{
		{ID: "p1", Email: "mor@example.com", Role: models.RoleParent},
	}, nil)
	accountRepo.On("Update", mock.Anything, "p1", repositories.Fields{"firebaseUid": "u2"}).Return(nil)

	result, err := svc.SignIn(context.Background(), "mor@example.com", "hemmelig")

	require.NoError(t, err)
	assert.Equal(t, models.RoleParent, result.Account.Role)
	session, err := svc.Tokens.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "p1", session.AccountID)
	assert.Equal(t, "u2", session.FirebaseUID)
	assert.Equal(t, "u2", result.Account.FirebaseUID)
	accountRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	accountRepo.AssertExpectations(t)
}

func TestSignInKeepsExistingLink(t *testing.T) {
	accountRepo := new(mocks.AccountRepository)
	svc := newAuthService(accountRepo, fakeVerifier{identity: Identity{UID: "u2", Email: "mor@example.com"}}, nil, nil)
	accountRepo.On("FindByID", mock.Anything, "u2").Return(models.Account{}, repositories.ErrNotFound)
	accountRepo.On("FindByEmail", mock.Anything, "mor@example.com").Return([]models.Account{
		{ID: "p1", FirebaseUID: "u2", Email: "mor@example.com", Role: models.RoleParent},
	}, nil)

	_, err := svc.SignIn(context.Background(), "mor@example.com", "hemmelig")

	require.NoError(t, err)
	accountRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestFirstSignInCreatesStaffProfile(t *testing.T) {
	accountRepo := new(mocks.AccountRepository)
	svc := newAuthService(accountRepo, fakeVerifier{identity: Identity{UID: "u3", Email: "ny@example.com"}}, nil, nil)
	accountRepo.On("FindByID", mock.Anything, "u3").Return(models.Account{}, repositories.ErrNotFound)
	accountRepo.On("FindByEmail", mock.Anything, "ny@example.com").Return([]models.Account{}, nil)
	accountRepo.On("Save", mock.Anything, mock.MatchedBy(func(a models.Account) bool {
		return a.ID == "u3" && a.Role == models.RoleStaff && a.Name == models.DefaultAccountName && a.Avatar == "B"
	})).Return(nil)

	result, err := svc.SignIn(context.Background(), "ny@example.com", "hemmelig")

	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, result.Account.Role)
	accountRepo.AssertExpectations(t)
}

func TestSignInPassesProviderError(t *testing.T) {
	svc := newAuthService(new(mocks.AccountRepository), fakeVerifier{err: &AuthError{Code: "auth/wrong-password"}}, nil, nil)

	_, err := svc.SignIn(context.Background(), "a@example.com", "feil")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "auth/wrong-password", authErr.Code)
}

func TestSignInRejectsMalformedEmail(t *testing.T) {
	svc := newAuthService(new(mocks.AccountRepository), fakeVerifier{}, nil, nil)

	_, err := svc.SignIn(context.Background(), "ikke-en-adresse", "x")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "auth/invalid-email", authErr.Code)
}

func TestChangePassword(t *testing.T) {
	identity := &fakeIdentity{}
	svc := newAuthService(new(mocks.AccountRepository), fakeVerifier{identity: Identity{UID: "u1"}}, identity, nil)
	session := models.Session{AccountID: "u1", FirebaseUID: "u1", Email: "a@example.com"}
	ctx := context.Background()

	assert.ErrorIs(t, svc.ChangePassword(ctx, session, "", "Nytt1234"), ErrValidation)
	assert.ErrorIs(t, svc.ChangePassword(ctx, session, "gammelt", "abc"), ErrValidation)

	require.NoError(t, svc.ChangePassword(ctx, session, "gammelt", "Nytt1234"))
	assert.Equal(t, "Nytt1234", identity.passwords["u1"])
}

func TestRequestPasswordResetIsNeutral(t *testing.T) {
	accountRepo := new(mocks.AccountRepository)
	identity := &fakeIdentity{resetErr: ErrNotFound}
	mailer := &fakeMailer{}
	svc := newAuthService(accountRepo, fakeVerifier{}, identity, mailer)
	ctx := context.Background()

	msg, err := svc.RequestPasswordReset(ctx, "ukjent@example.com")
	require.NoError(t, err)
	assert.Equal(t, PasswordResetMessage, msg)
	assert.Empty(t, mailer.sent)

	identity.resetErr = nil
	accountRepo.On("FindByEmail", mock.Anything, "a@example.com").Return([]models.Account{{ID: "p1", Name: "Anne"}}, nil)
	msg, err = svc.RequestPasswordReset(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, PasswordResetMessage, msg)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "reset", mailer.sent[0].kind)

	_, err = svc.RequestPasswordReset(ctx, "ugyldig")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProfileSyncsDisplayName(t *testing.T) {
	accountRepo := new(mocks.AccountRepository)
	identity := &fakeIdentity{}
	svc := newAuthService(accountRepo, fakeVerifier{}, identity, nil)
	session := models.Session{AccountID: "p1", FirebaseUID: "u9"}

	accountRepo.On("FindByID", mock.Anything, "p1").Return(models.Account{Name: "Anne"}, nil)
	accountRepo.On("Update", mock.Anything, "p1", repositories.Fields{"name": "Anne Berg", "avatar": "AB", "lang": "en"}).Return(nil)

	name, lang := "Anne Berg", "en"
	account, err := svc.UpdateProfile(context.Background(), session, models.ProfileInput{Name: &name, Lang: &lang})

	require.NoError(t, err)
	assert.Equal(t, "AB", account.Avatar)
	assert.Equal(t, "Anne Berg", identity.displayNames["u9"])
}

func TestTokenExpires(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	issuer.now = func() time.Time { return time.Now().Add(-25 * time.Hour) }
	token, err := issuer.Issue(models.Session{AccountID: "u1", Role: models.RoleStaff})
	require.NoError(t, err)

	_, err = NewTokenIssuer("test-secret").Parse(token)
	assert.Error(t, err)

	_, err = NewTokenIssuer("other-secret").Parse(token)
	assert.Error(t, err)
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		label    string
		valid    bool
	}{
		{"abc", "Svak", false},
		{"abcdefgh", "Svak", false},
		{"abcdefg1", "Middels", true},
		{"Abcdefg1", "Sterk", true},
		{"Abcdefg1!", "Sterk", true},
		{"ÆØÅæøå12", "Svak", false},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			got := ValidatePasswordStrength(tt.password)
			assert.Equal(t, tt.label, got.Label)
			assert.Equal(t, tt.valid, got.Valid)
		})
	}
}

func TestMatchLanguageAndTranslate(t *testing.T) {
	svc := NewTranslationService()

	assert.Equal(t, LangNorwegian, svc.MatchLanguage(""))
	assert.Equal(t, LangNorwegian, svc.MatchLanguage("nb-NO,nb;q=0.9,en;q=0.8"))
	assert.Equal(t, LangEnglish, svc.MatchLanguage("en-US,en;q=0.9"))
	assert.Equal(t, "Feil passord", svc.Translate(LangNorwegian, "auth/wrong-password", ""))
	assert.Equal(t, "Wrong password", svc.Translate(LangEnglish, "auth/wrong-password", ""))
	assert.Equal(t, "fallback", svc.Translate(LangEnglish, "missing", "fallback"))
}

func TestRefreshSessionReadsCurrentProfile(t *testing.T) {
	accountRepo := new(mocks.AccountRepository)
	svc := newAuthService(accountRepo, nil, nil, nil)
	accountRepo.On("FindByID", mock.Anything, "p1").Return(models.Account{Role: models.RoleParent, Email: "ny@example.com", Name: "Mor"}, nil)
	accountRepo.On("FindByID", mock.Anything, "p2").Return(models.Account{}, repositories.ErrNotFound)

	session, err := svc.RefreshSession(context.Background(), models.Session{AccountID: "p1", FirebaseUID: "u1", Email: "gammel@example.com", Role: models.RoleStaff})
	require.NoError(t, err)
	assert.Equal(t, models.Session{AccountID: "p1", FirebaseUID: "u1", Email: "ny@example.com", Name: "Mor", Role: models.RoleParent}, session)

	_, err = svc.RefreshSession(context.Background(), models.Session{AccountID: "p2", Role: models.RoleParent})
	assert.ErrorIs(t, err, ErrNotFound)
}
