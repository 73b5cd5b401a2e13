package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"frota_cobranca/internal/domain/calendar"
	"frota_cobranca/internal/domain/entities"
	"frota_cobranca/internal/domain/policy"
	"frota_cobranca/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTemplateNotFound  = errors.New("notification template not found")
	ErrNoContactChannels = errors.New("customer has no reachable contact channel")
)

// TemplateKey identifies one collection message variant. Selection is keyed
// by (day offset, recidivism class), never by iterating candidates.

type TemplateKey string

const (
	TemplatePreDueWarning        TemplateKey = "pre_due_warning"
	TemplateDueTodayGoodStanding TemplateKey = "due_today_good_standing"
	TemplateDueTodayRecidivist   TemplateKey = "due_today_recidivist"
	TemplateOverdueDay1          TemplateKey = "overdue_day_1"
	TemplateOverdueDay2          TemplateKey = "overdue_day_2"
	TemplateBlockWarning         TemplateKey = "block_warning_24h"
	TemplateBlockedSettleNow     TemplateKey = "blocked_settle_now"
	TemplateUnblocked            TemplateKey = "unblocked"
)

type messageTemplate struct {
	whatsappName string
	smsFormat    string
	emailSubject string
}

// Wording mirrors the SMS templates shipped with the accounting add-on.
// Format arguments: customer name, invoice id, amount, due date.
var templateCatalog = map[TemplateKey]messageTemplate{
	TemplatePreDueWarning: {
		whatsappName: "cobranca_pre_vencimento",
		smsFormat:    "%s, sua fatura %s de R$ %s vence amanha (%s). Evite o bloqueio do veiculo pagando em dia.",
		emailSubject: "Sua fatura vence amanhã",
	},
	TemplateDueTodayGoodStanding: {
		whatsappName: "cobranca_vencimento_dia",
		smsFormat:    "%s, sua fatura %s de R$ %s vence hoje (%s). Conte conosco para qualquer duvida.",
		emailSubject: "Sua fatura vence hoje",
	},
	TemplateDueTodayRecidivist: {
		whatsappName: "cobranca_vencimento_dia_reincidente",
		smsFormat:    "%s, sua fatura %s de R$ %s vence hoje (%s). Pagamentos em atraso resultam em bloqueio do veiculo.",
		emailSubject: "Sua fatura vence hoje — evite o bloqueio",
	},
	TemplateOverdueDay1: {
		whatsappName: "cobranca_atraso_d1",
		smsFormat:    "%s, a fatura %s de R$ %s venceu em %s. Regularize para evitar o bloqueio do veiculo.",
		emailSubject: "Fatura em atraso",
	},
	TemplateOverdueDay2: {
		whatsappName: "cobranca_atraso_d2",
		smsFormat:    "%s, a fatura %s de R$ %s segue em aberto desde %s. Regularize hoje para evitar o bloqueio.",
		emailSubject: "Fatura em atraso — 2º aviso",
	},
	TemplateBlockWarning: {
		whatsappName: "cobranca_aviso_bloqueio_24h",
		smsFormat:    "%s, a fatura %s de R$ %s vencida em %s sera cobrada com bloqueio do veiculo em 24 horas.",
		emailSubject: "Aviso: bloqueio do veículo em 24 horas",
	},
	TemplateBlockedSettleNow: {
		whatsappName: "cobranca_bloqueado_regularize",
		smsFormat:    "%s, o veiculo foi bloqueado pela fatura %s de R$ %s vencida em %s. Regularize para liberar o veiculo.",
		emailSubject: "Veículo bloqueado — regularize sua fatura",
	},
	TemplateUnblocked: {
		whatsappName: "cobranca_desbloqueado",
		smsFormat:    "%s, identificamos a regularizacao das suas faturas e o veiculo foi desbloqueado. Obrigado.",
		emailSubject: "Veículo desbloqueado",
	},
}

// SelectTemplate picks the message variant for a (day offset, recidivism
// class) pair. Offsets are negative calendar days before the due date and
// business days overdue after it. The 24-hours-to-block warning is derived
// from the tolerance, not separately stored, and wins over the plain overdue
// reminders on the day it fires.
func SelectTemplate(dayOffset int, recidivist bool, toleranceDays int) (TemplateKey, bool) {
	switch {
	case dayOffset == -1 && recidivist:
		return TemplatePreDueWarning, true
	case dayOffset < 0:
		return "", false
	case dayOffset == 0 && recidivist:
		return TemplateDueTodayRecidivist, true
	case dayOffset == 0:
		return TemplateDueTodayGoodStanding, true
	case dayOffset == toleranceDays:
		return TemplateBlockWarning, true
	case dayOffset == 1 && !recidivist:
		return TemplateOverdueDay1, true
	case dayOffset == 2 && !recidivist:
		return TemplateOverdueDay2, true
	case dayOffset >= 3 && dayOffset <= 8:
		return TemplateBlockedSettleNow, true
	}
	return "", false
}

// INotificationEscalator sends collection messages with channel fallback.

type INotificationEscalator interface {
	Notify(ctx context.Context, inv entities.Invoice, key TemplateKey) error
	NotifyUnblocked(ctx context.Context, customerID string) error
	RunReminderSweep(ctx context.Context) (entities.BatchReport, error)
}

// NotificationEscalator resolves the customer, renders the template and
// walks the channel chain: WhatsApp template first, SMS fallback, email
// redundancy last. Every attempt is caught and logged independently; a
// failed channel never suppresses the next one.
type NotificationEscalator struct {
	invoices   interfaces.IInvoiceRepository
	customers  interfaces.ICustomerRepository
	messenger  interfaces.IMessenger
	policies   interfaces.IPolicyStore
	classifier IRecidivismClassifier

	// Now is the clock; overridable in tests.
	Now func() time.Time
}

var _ INotificationEscalator = (*NotificationEscalator)(nil)

func NewNotificationEscalator(
	invoices interfaces.IInvoiceRepository,
	customers interfaces.ICustomerRepository,
	messenger interfaces.IMessenger,
	policies interfaces.IPolicyStore,
	classifier IRecidivismClassifier,
) *NotificationEscalator {
	return &NotificationEscalator{
		invoices:   invoices,
		customers:  customers,
		messenger:  messenger,
		policies:   policies,
		classifier: classifier,
		Now:        time.Now,
	}
}

// Notify sends one message variant about one invoice, with channel fallback.
func (e *NotificationEscalator) Notify(ctx context.Context, inv entities.Invoice, key TemplateKey) error {
	tpl, ok := templateCatalog[key]
	if !ok {
		log.Printf("[notification][usecase] unknown template invoice_id=%s template=%s", inv.ID, key)
		return ErrTemplateNotFound
	}

	customer, err := e.customers.GetByID(ctx, inv.CustomerID)
	if err != nil {
		return err
	}

	name := customer.Name
	if strings.TrimSpace(name) == "" {
		name = "Cliente"
	}
	amount := fmt.Sprintf("%.2f", inv.Amount)
	due := calendar.DateOnly(inv.DueDate).Format("02/01/2006")
	body := fmt.Sprintf(tpl.smsFormat, name, inv.ID, amount, due)

	params := []string{name, inv.ID, amount, due}
	return e.escalate(ctx, customer, tpl, params, body, inv.ID)
}

// NotifyUnblocked confirms the lift to the customer. It is event-driven, not
// offset-keyed, and does not reference a specific invoice.
func (e *NotificationEscalator) NotifyUnblocked(ctx context.Context, customerID string) error {
	tpl := templateCatalog[TemplateUnblocked]

	customer, err := e.customers.GetByID(ctx, customerID)
	if err != nil {
		return err
	}

	name := customer.Name
	if strings.TrimSpace(name) == "" {
		name = "Cliente"
	}
	body := fmt.Sprintf(tpl.smsFormat, name)
	return e.escalate(ctx, customer, tpl, []string{name}, body, customerID)
}

// escalate walks the channel chain: WhatsApp template, then SMS, then email.
// The first success wins; every failure is logged and the next channel is
// still attempted.
func (e *NotificationEscalator) escalate(ctx context.Context, customer entities.Customer, tpl messageTemplate, waParams []string, body, refID string) error {
	phone := strings.TrimSpace(customer.Phone)
	email := strings.TrimSpace(customer.Email)
	if phone == "" && email == "" {
		log.Printf("[notification][usecase] no contact channels customer_id=%s ref=%s", customer.ID, refID)
		return ErrNoContactChannels
	}

	var attempts []error
	if phone != "" {
		err := e.messenger.SendWhatsAppTemplate(ctx, phone, tpl.whatsappName, waParams)
		if err == nil {
			return nil
		}
		log.Printf("[notification][usecase] whatsapp failed ref=%s template=%s err=%v", refID, tpl.whatsappName, err)
		attempts = append(attempts, err)

		err = e.messenger.SendSMS(ctx, phone, body)
		if err == nil {
			return nil
		}
		log.Printf("[notification][usecase] sms failed ref=%s err=%v", refID, err)
		attempts = append(attempts, err)
	}

	if email != "" {
		err := e.messenger.SendEmail(ctx, email, tpl.emailSubject, body)
		if err == nil {
			return nil
		}
		log.Printf("[notification][usecase] email failed ref=%s err=%v", refID, err)
		attempts = append(attempts, err)
	}

	return fmt.Errorf("all notification channels failed for %s: %w", refID, errors.Join(attempts...))
}

// RunReminderSweep walks the unpaid invoices around their due date and fires
// the offset-keyed reminders. Failures are collected into the report, never
// propagated.
func (e *NotificationEscalator) RunReminderSweep(ctx context.Context) (entities.BatchReport, error) {
	report := entities.BatchReport{RunID: uuid.NewString(), Kind: "reminder", StartedAt: e.Now()}

	cfg, err := e.policies.Load()
	if err != nil {
		return report, err
	}
	now := e.Now().In(cfg.Location())
	today := calendar.DateOnly(now)
	cal := calendar.NewBrazil()

	log.Printf("[notification][usecase] reminder sweep start run_id=%s today=%s", report.RunID, today.Format("2006-01-02"))

	// Window wide enough to cover the pre-due warning and the longest
	// settle-now reminder (8 business days can span weeks of calendar days).
	invoices, err := e.invoices.ListUnpaidDueBetween(ctx, today.AddDate(0, 0, -30), today.AddDate(0, 0, 1))
	if err != nil {
		return report, err
	}

	for _, inv := range invoices {
		if !inv.Collectible() {
			continue
		}
		report.Processed++

		recidivist, err := e.classifier.IsRecidivist(ctx, inv, cal, cfg)
		if err != nil {
			log.Printf("[notification][usecase] classifier failed invoice_id=%s err=%v", inv.ID, err)
			report.Fail(entities.BatchFailure{InvoiceID: inv.ID, Err: err.Error()})
			continue
		}

		offset := dayOffset(cal, inv.DueDate, today)
		key, ok := SelectTemplate(offset, recidivist, policy.ToleranceDays(cfg, recidivist))
		if !ok {
			report.Skipped++
			continue
		}

		if err := e.Notify(ctx, inv, key); err != nil {
			report.Fail(entities.BatchFailure{InvoiceID: inv.ID, Err: err.Error()})
			continue
		}
		report.Notified++
	}

	report.FinishedAt = e.Now()
	log.Printf("[notification][usecase] reminder sweep done run_id=%s processed=%d notified=%d skipped=%d failures=%d",
		report.RunID, report.Processed, report.Notified, report.Skipped, len(report.Failures))
	return report, nil
}

// dayOffset is negative calendar days while the invoice has not fallen due,
// and business days overdue once it has.
func dayOffset(cal *calendar.BusinessCalendar, dueDate, today time.Time) int {
	due := calendar.DateOnly(dueDate)
	if due.After(today) {
		return -int(due.Sub(today).Hours() / 24)
	}
	return cal.BusinessDaysOverdue(due, today)
}
