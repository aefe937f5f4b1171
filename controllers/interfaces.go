package controllers

import (
	"Henteklar/models"
	"Henteklar/services"
	"context"
)

type AuthServiceInterface interface {
	SignIn(ctx context.Context, email, password string) (*models.AuthResult, error)
	ProviderAuthURL(provider, state string) (string, error)
	SignInWithProvider(ctx context.Context, provider, code string) (*models.AuthResult, error)
	SignUp(ctx context.Context, email, password, name string) (*models.AuthResult, error)
	Profile(ctx context.Context, session models.Session) (models.Account, error)
	UpdateProfile(ctx context.Context, session models.Session, in models.ProfileInput) (models.Account, error)
	SignOut(ctx context.Context, session models.Session) error
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ChangePassword(ctx context.Context, session models.Session, oldPassword, newPassword string) error
}

type ChildServiceInterface interface {
	CreateChild(ctx context.Context, in models.ChildInput) (*models.ChildWithGuardians, error)
	UpdateChild(ctx context.Context, id string, in models.ChildInput) (*models.ChildWithGuardians, error)
	DeleteChild(ctx context.Context, id string) error
	AddNote(ctx context.Context, childID, text string) (*models.ChildWithGuardians, error)
	DeleteNote(ctx context.Context, childID, noteID string) (*models.ChildWithGuardians, error)
}

// VisibilityServiceInterface answers reads scoped to the caller's role.
type VisibilityServiceInterface interface {
	ListChildren(ctx context.Context, session models.Session) ([]models.ChildWithGuardians, error)
	GetChild(ctx context.Context, session models.Session, childID string) (*models.ChildWithGuardians, error)
	CanActOnChild(ctx context.Context, session models.Session, childID string) error
	Logs(ctx context.Context, session models.Session, filter models.LogFilter) ([]models.CheckinLog, error)
	History(ctx context.Context, session models.Session, filter models.HistoryFilter) ([]models.HistoryEntry, error)
}

type AttendanceServiceInterface interface {
	CheckIn(ctx context.Context, childID, performedBy string) (*services.TransitionResult, error)
	CheckOut(ctx context.Context, childID, performedBy string) (*services.TransitionResult, error)
}

type AccountServiceInterface interface {
	List(ctx context.Context) ([]models.Account, error)
	Get(ctx context.Context, id string) (models.Account, error)
	Create(ctx context.Context, in models.AccountInput) (models.Account, error)
	Update(ctx context.Context, id string, in models.AccountInput) (models.Account, error)
	Delete(ctx context.Context, id string) error
}

type CalendarServiceInterface interface {
	List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error)
	Create(ctx context.Context, in models.CalendarEventInput, createdBy string) (models.CalendarEvent, error)
	Update(ctx context.Context, id string, in models.CalendarEventInput) (models.CalendarEvent, error)
	Delete(ctx context.Context, id string) error
}

type SettingsServiceInterface interface {
	GetSettings(ctx context.Context) (models.Settings, error)
	UpdateSettings(ctx context.Context, in models.SettingsInput) (models.Settings, error)
}

type TranslationServiceInterface interface {
	MatchLanguage(acceptLanguage string) string
	Translate(lang, key, fallback string) string
	GetAllTranslations(lang string) map[string]string
}
