package messaging

import (
	"context"
	"errors"
	"log"
	"os"

	"frota_cobranca/internal/usecase/interfaces"
)

var (
	ErrWhatsAppNotConfigured = errors.New("whatsapp channel not configured")
	ErrSMSNotConfigured      = errors.New("sms channel not configured")
	ErrEmailNotConfigured    = errors.New("email channel not configured")
)

// Dispatcher is the IMessenger implementation: one struct fanning out to the
// configured channel clients. A channel whose credentials are absent returns
// a not-configured error, which the escalator treats like any other channel
// failure and falls through.
type Dispatcher struct {
	whatsapp *WhatsAppClient
	sms      *SMSClient
	mailer   *SMTPMailer
}

var _ interfaces.IMessenger = (*Dispatcher)(nil)

// NewDispatcherFromEnv wires whichever channels the environment configures.
// Running with a partial channel set is normal in local setups.
func NewDispatcherFromEnv() *Dispatcher {
	d := &Dispatcher{}

	if wa, err := NewWhatsAppClient(os.Getenv("WHATSAPP_PHONE_NUMBER_ID"), os.Getenv("WHATSAPP_ACCESS_TOKEN")); err != nil {
		log.Printf("[messaging][dispatcher] whatsapp disabled err=%v", err)
	} else {
		d.whatsapp = wa
	}

	if sms, err := NewSMSClient(os.Getenv("SMS_GATEWAY_URL"), os.Getenv("SMS_GATEWAY_TOKEN")); err != nil {
		log.Printf("[messaging][dispatcher] sms disabled err=%v", err)
	} else {
		d.sms = sms
	}

	if mailer, err := NewSMTPMailer(os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"), os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD"), os.Getenv("SMTP_FROM")); err != nil {
		log.Printf("[messaging][dispatcher] email disabled err=%v", err)
	} else {
		d.mailer = mailer
	}

	return d
}

func (d *Dispatcher) SendWhatsAppTemplate(ctx context.Context, phone, templateName string, params []string) error {
	if d.whatsapp == nil {
		return ErrWhatsAppNotConfigured
	}
	return d.whatsapp.SendTemplate(ctx, phone, templateName, params)
}

func (d *Dispatcher) SendSMS(ctx context.Context, phone, body string) error {
	if d.sms == nil {
		return ErrSMSNotConfigured
	}
	return d.sms.Send(ctx, phone, body)
}

func (d *Dispatcher) SendEmail(ctx context.Context, address, subject, body string) error {
	if d.mailer == nil {
		return ErrEmailNotConfigured
	}
	return d.mailer.Send(address, subject, body)
}
