// Package notify emails completed quotation exports to the sales inbox.
// Notification is best-effort: failures are logged and never block the
// conversation.
package notify

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"quotation-engine/internal/common/config"
	apperrors "quotation-engine/internal/common/errors"
	"quotation-engine/internal/common/logger"
)

// Mailer is what the assistant layer depends on; the SES implementation and
// test doubles both satisfy it.
type Mailer interface {
	SendQuotationExport(ctx context.Context, subject, body string) error
}

// SESMailer delivers via Amazon SES.
type SESMailer struct {
	client *ses.Client
	cfg    config.NotificationConfig
	logger logger.Logger
}

func NewSESMailer(ctx context.Context, cfg config.NotificationConfig, log logger.Logger) (*SESMailer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, err
	}
	return &SESMailer{
		client: ses.NewFromConfig(awsCfg),
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "mailer"}),
	}, nil
}

func (m *SESMailer) SendQuotationExport(ctx context.Context, subject, body string) error {
	input := &ses.SendEmailInput{
		Source: &m.cfg.Email.FromEmail,
		Destination: &types.Destination{
			ToAddresses: []string{m.cfg.Email.SalesInbox},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: &subject},
			Body: &types.Body{
				Text: &types.Content{Data: &body},
			},
		},
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		m.logger.Error("quotation export mail failed", map[string]interface{}{
			"error": err.Error(),
		})
		return apperrors.NewNotificationFailedError(err)
	}

	m.logger.Info("quotation export mailed", map[string]interface{}{
		"to": m.cfg.Email.SalesInbox,
	})
	return nil
}
