package services

import (
	"context"
	"fmt"
	"html"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"
)

// sesAPI is the part of the SES client the service uses.
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// EmailService sends account e-mails through Amazon SES. With no sender
// address configured it is disabled and every send is a logged no-op.
type EmailService struct {
	client    sesAPI
	fromEmail string
	fromName  string
	enabled   bool
	logger    *zap.Logger
}

func NewEmailService(ctx context.Context, region, fromEmail, fromName string, logger *zap.Logger) (*EmailService, error) {
	if fromEmail == "" {
		logger.Info("email service disabled, SES_FROM_EMAIL not configured")
		return &EmailService{logger: logger}, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	logger.Info("email service enabled", zap.String("from", fromEmail), zap.String("region", region))
	return &EmailService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
		logger:    logger,
	}, nil
}

func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

func (s *EmailService) SendPasswordResetEmail(ctx context.Context, toEmail, toName, resetLink string) error {
	subject := "Tilbakestill passordet ditt"
	text := fmt.Sprintf(`Hei %s,

Vi har mottatt en forespørsel om å tilbakestille passordet ditt i Henteklar.

Åpne lenken under for å velge et nytt passord:
%s

Hvis du ikke ba om dette, kan du se bort fra denne e-posten.
`, toName, resetLink)
	body := fmt.Sprintf(`<p>Hei %s,</p>
<p>Vi har mottatt en forespørsel om å tilbakestille passordet ditt i Henteklar.</p>
<p><a href="%s">Velg nytt passord</a></p>
<p>Hvis du ikke ba om dette, kan du se bort fra denne e-posten.</p>`,
		html.EscapeString(toName), html.EscapeString(resetLink))

	return s.send(ctx, toEmail, subject, body, text)
}

func (s *EmailService) SendInviteEmail(ctx context.Context, toEmail, toName, resetLink string) error {
	subject := "Du er invitert til Henteklar"
	text := fmt.Sprintf(`Hei %s,

Det er opprettet en bruker til deg i Henteklar.

Åpne lenken under for å velge passord og logge inn:
%s
`, toName, resetLink)
	body := fmt.Sprintf(`<p>Hei %s,</p>
<p>Det er opprettet en bruker til deg i Henteklar.</p>
<p><a href="%s">Velg passord og logg inn</a></p>`,
		html.EscapeString(toName), html.EscapeString(resetLink))

	return s.send(ctx, toEmail, subject, body, text)
}

func (s *EmailService) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	if !s.enabled {
		s.logger.Info("skipping email, service disabled", zap.String("to", toEmail), zap.String("subject", subject))
		return nil
	}

	from := s.fromEmail
	if s.fromName != "" {
		from = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination:      &types.Destination{ToAddresses: []string{toEmail}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlBody), Charset: aws.String("UTF-8")},
					Text: &types.Content{Data: aws.String(textBody), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("send email to %s: %w", toEmail, err)
	}
	s.logger.Info("email sent",
		zap.String("to", toEmail),
		zap.String("subject", subject),
		zap.String("message_id", aws.ToString(out.MessageId)))
	return nil
}
