package interfaces

import "context"

// IMessenger abstracts the messaging channels behind the notification
// escalator: rich messaging (WhatsApp templates), plain SMS and email.
// Template rendering for SMS/email happens in the escalator; WhatsApp
// receives the provider-side template name plus positional parameters.
type IMessenger interface {
	SendWhatsAppTemplate(ctx context.Context, phone, templateName string, params []string) error
	SendSMS(ctx context.Context, phone, body string) error
	SendEmail(ctx context.Context, address, subject, body string) error
}
