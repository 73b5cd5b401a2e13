package entities

import "time"

// DecisionOutcome is the result of evaluating one invoice against the
// collection rules. The engine derives it from current facts on every run;
// nothing here is persisted as pending state.

type DecisionOutcome string

const (
	// DecisionSkip means the invoice is not block-worthy this cycle.
	DecisionSkip DecisionOutcome = "skip"
	// DecisionDefer means the invoice is past tolerance but the
	// bank-compensation window postpones the command until later today.
	DecisionDefer DecisionOutcome = "defer"
	// DecisionBlock means every trackable vehicle of the customer should
	// have its engine stopped.
	DecisionBlock DecisionOutcome = "block"
)

// Decision is the pure evaluation of one invoice: (invoice, config,
// calendar, now) in, outcome out.
type Decision struct {
	InvoiceID     string          `json:"invoice_id"`
	CustomerID    string          `json:"customer_id"`
	Outcome       DecisionOutcome `json:"outcome"`
	Reason        string          `json:"reason"`
	DaysOverdue   int             `json:"days_overdue"`
	ToleranceDays int             `json:"tolerance_days"`
	Recidivist    bool            `json:"recidivist"`
}

// BatchFailure captures one isolated external-call failure inside a batch
// run. Failures are collected, never propagated; the affected record is
// retried on the next cycle.
type BatchFailure struct {
	InvoiceID     string `json:"invoice_id,omitempty"`
	VehicleID     string `json:"vehicle_id,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
	Err           string `json:"error"`
}

// BatchReport summarizes one scheduled pass (block, unblock or reminder).
type BatchReport struct {
	RunID      string         `json:"run_id"`
	Kind       string         `json:"kind"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Processed  int            `json:"processed"`
	Blocked    int            `json:"blocked"`
	Unblocked  int            `json:"unblocked"`
	Deferred   int            `json:"deferred"`
	Skipped    int            `json:"skipped"`
	Notified   int            `json:"notified"`
	Failures   []BatchFailure `json:"failures,omitempty"`
}

// Fail appends an isolated failure to the report.
func (r *BatchReport) Fail(f BatchFailure) {
	r.Failures = append(r.Failures, f)
}
