package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"
	"tablebook/config"
	"tablebook/infras/otel"
	"tablebook/shared/constant"
)

const (
	otelScopeName = "mailer"
)

// Details carries everything an outbound booking mail needs. Every send is
// best-effort: callers log failures and move on, a lost mail never rolls back
// a reservation.
type Details struct {
	To             string
	CustomerName   string
	RestaurantName string
	Date           string
	StartTime      string
	EndTime        string
	PartySize      int
}

type Mailer interface {
	SendConfirmation(ctx context.Context, details Details) error
	SendModification(ctx context.Context, details Details) error
	SendCancellation(ctx context.Context, details Details) error
	SendWaitlistOffer(ctx context.Context, details Details) error
}

type smtpMailer struct {
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, ot otel.Otel) Mailer {
	return &smtpMailer{
		config: config,
		otel:   ot,
	}
}

func (m *smtpMailer) SendConfirmation(ctx context.Context, details Details) error {
	subject := fmt.Sprintf("Reservation confirmed at %s", details.RestaurantName)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour reservation at %s is confirmed for %s from %s to %s, party of %d.\r\n\r\nSee you soon!",
		details.CustomerName, details.RestaurantName, details.Date, details.StartTime, details.EndTime, details.PartySize,
	)

	return m.send(ctx, "SendConfirmation", details.To, subject, body)
}

func (m *smtpMailer) SendModification(ctx context.Context, details Details) error {
	subject := fmt.Sprintf("Reservation updated at %s", details.RestaurantName)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour reservation at %s has been updated: %s from %s to %s, party of %d.",
		details.CustomerName, details.RestaurantName, details.Date, details.StartTime, details.EndTime, details.PartySize,
	)

	return m.send(ctx, "SendModification", details.To, subject, body)
}

func (m *smtpMailer) SendCancellation(ctx context.Context, details Details) error {
	subject := fmt.Sprintf("Reservation cancelled at %s", details.RestaurantName)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour reservation at %s on %s at %s has been cancelled.",
		details.CustomerName, details.RestaurantName, details.Date, details.StartTime,
	)

	return m.send(ctx, "SendCancellation", details.To, subject, body)
}

func (m *smtpMailer) SendWaitlistOffer(ctx context.Context, details Details) error {
	subject := fmt.Sprintf("A table opened up at %s", details.RestaurantName)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nGood news! A table for %d is now available at %s on %s at %s. Book soon before it's taken.",
		details.CustomerName, details.PartySize, details.RestaurantName, details.Date, details.StartTime,
	)

	return m.send(ctx, "SendWaitlistOffer", details.To, subject, body)
}

func (m *smtpMailer) send(ctx context.Context, operation, to, subject, body string) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+"."+operation)
	defer scope.End()
	defer scope.TraceIfError(err)

	if !m.config.Mail.Enable {
		log.Debug().Str("Mailer", operation).Str("to", to).Msg("mail disabled, skipping send")

		return nil
	}

	addr := net.JoinHostPort(m.config.Mail.Host, m.config.Mail.Port)
	auth := smtp.PlainAuth("", m.config.Mail.Username, m.config.Mail.Password, m.config.Mail.Host)

	msg := buildMessage(m.config.Mail.From, to, subject, body)

	err = smtp.SendMail(addr, auth, m.config.Mail.From, []string{to}, msg)
	if err != nil {
		log.Error().Err(err).Str("Mailer", operation).Str("to", to).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("Mailer", operation).Str("to", to).Msg("mail sent")

	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder

	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return []byte(b.String())
}
