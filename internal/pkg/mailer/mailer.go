package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/sit-project/sit-api/internal/config"
)

var resetTemplate = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif;">
    <h2>Restablecer contraseña</h2>
    <p>Hola {{.Username}},</p>
    <p>Recibimos una solicitud para restablecer tu contraseña. El enlace vence en {{.ValidFor}}.</p>
    <p><a href="{{.Link}}">Restablecer contraseña</a></p>
    <p>Si no solicitaste este cambio, ignora este correo.</p>
  </body>
</html>`))

type ResetData struct {
	Username string
	Link     string
	ValidFor string
}

// Resend sends transactional mail through the Resend API.
type Resend struct {
	client *resend.Client
	from   string
}

func NewResend(conf *config.MailConfig) *Resend {
	return &Resend{
		client: resend.NewClient(conf.ResendAPIKey),
		from:   conf.From,
	}
}

func (m *Resend) SendPasswordReset(ctx context.Context, to string, data ResetData) error {
	var body bytes.Buffer
	if err := resetTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("resetTemplate.Execute -> %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	sent, err := m.client.Emails.Send(&resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: "Restablecer contraseña",
		Html:    body.String(),
	})
	if err != nil {
		return fmt.Errorf("m.client.Emails.Send -> %w", err)
	}

	zap.L().Info("password reset email sent", zap.String("id", sent.Id))

	return nil
}

// Log only writes the reset link to the log. Used when no Resend key is set.
type Log struct{}

func (Log) SendPasswordReset(_ context.Context, to string, data ResetData) error {
	zap.L().Info("password reset requested, mail delivery disabled",
		zap.String("to", to),
		zap.String("link", data.Link),
	)

	return nil
}
