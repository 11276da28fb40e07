// internal/email/sendgrid.go
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/sirecovip/backend/internal/config"
	"github.com/sirecovip/backend/internal/model"
)

// MailerIface sends operational notifications to coordinators.
type MailerIface interface {
	SendPriorityAlert(ctx context.Context, to []string, merchant *model.Merchant) error
}

// Service sends notifications through the Sendgrid API.
type Service struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		client:   sendgrid.NewSendClient(cfg.Sendgrid.APIKey),
		from:     cfg.Sendgrid.From,
		fromName: cfg.Sendgrid.FromName,
	}
}

// SendPriorityAlert notifies coordinators that a merchant was reclassified
// as prioritario.
func (s *Service) SendPriorityAlert(ctx context.Context, to []string, merchant *model.Merchant) error {
	subject := fmt.Sprintf("Comerciante prioritario: %s", merchant.Name)

	var body strings.Builder
	fmt.Fprintf(&body, "El comerciante %q (%s) fue clasificado como %s.\n",
		merchant.Name, merchant.Business, model.StatusLabel(merchant.Status))
	fmt.Fprintf(&body, "Delegación: %s\n", merchant.Delegation)
	fmt.Fprintf(&body, "Dirección: %s\n", merchant.Address)

	from := mail.NewEmail(s.fromName, s.from)
	for _, recipient := range to {
		message := mail.NewSingleEmail(from, subject, mail.NewEmail("", recipient), body.String(), body.String())

		response, err := s.client.SendWithContext(ctx, message)
		if err != nil {
			return fmt.Errorf("sending alert via Sendgrid: %w", err)
		}
		if response.StatusCode != 202 {
			return fmt.Errorf("unexpected Sendgrid status code: %d, body: %s", response.StatusCode, response.Body)
		}
	}

	return nil
}
