package services

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"
	"errors"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// fcmSender is the part of the FCM client the service uses.
type fcmSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// NotificationService pushes attendance changes to the guardians' devices.
type NotificationService struct {
	FCMClient      fcmSender
	TranslationSrv *TranslationService
	AccountRepo    repositories.AccountRepository
	Logger         *zap.Logger
}

func NewNotificationService(
	client *messaging.Client,
	translationSrv *TranslationService,
	accountRepo repositories.AccountRepository,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		FCMClient:      client,
		TranslationSrv: translationSrv,
		AccountRepo:    accountRepo,
		Logger:         logger,
	}
}

// NotifyGuardians sends one message per language to every guardian of the
// child that has registered a device. Guardians without a token are skipped.
func (s *NotificationService) NotifyGuardians(ctx context.Context, event models.AttendanceEvent) error {
	tokensByLang := map[string][]string{}
	for _, id := range event.ParentIDs {
		account, err := s.AccountRepo.FindByID(ctx, id)
		if err != nil {
			s.Logger.Debug("guardian not found for notification", zap.String("parent_id", id), zap.Error(err))
			continue
		}
		if account.DeviceToken == "" {
			continue
		}
		lang := account.Lang
		if lang != LangEnglish {
			lang = LangNorwegian
		}
		tokensByLang[lang] = append(tokensByLang[lang], account.DeviceToken)
	}

	var errs []error
	for lang, tokens := range tokensByLang {
		title, body := s.render(lang, event)
		resp, err := s.FCMClient.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens:       tokens,
			Notification: &messaging.Notification{Title: title, Body: body},
			Data: map[string]string{
				"type":    "attendance",
				"childId": event.ChildID,
				"action":  event.Action,
				"time":    event.Time,
			},
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("send %s notifications: %w", lang, err))
			continue
		}
		if resp.FailureCount > 0 {
			s.Logger.Warn("some notifications failed",
				zap.String("child_id", event.ChildID),
				zap.Int("failed", resp.FailureCount),
				zap.Int("sent", resp.SuccessCount))
		}
	}
	return errors.Join(errs...)
}

func (s *NotificationService) render(lang string, event models.AttendanceEvent) (string, string) {
	titleKey, bodyKey := "notification_check_in_title", "notification_check_in_body"
	if event.Action == models.ActionCheckOut {
		titleKey, bodyKey = "notification_check_out_title", "notification_check_out_body"
	}
	title := s.TranslationSrv.Translate(lang, titleKey, event.Action)
	body := fmt.Sprintf(s.TranslationSrv.Translate(lang, bodyKey, "%s %s"), event.ChildName, event.Time)
	return title, body
}
