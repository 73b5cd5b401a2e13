package response

import (
	"time"

	"frota_cobranca/internal/domain/entities"
)

type DecisionResponse struct {
	InvoiceID     string `json:"invoice_id"`
	CustomerID    string `json:"customer_id"`
	Outcome       string `json:"outcome"`
	Reason        string `json:"reason"`
	DaysOverdue   int    `json:"days_overdue"`
	ToleranceDays int    `json:"tolerance_days"`
	Recidivist    bool   `json:"recidivist"`
}

func FromDecision(d entities.Decision) DecisionResponse {
	return DecisionResponse{
		InvoiceID:     d.InvoiceID,
		CustomerID:    d.CustomerID,
		Outcome:       string(d.Outcome),
		Reason:        d.Reason,
		DaysOverdue:   d.DaysOverdue,
		ToleranceDays: d.ToleranceDays,
		Recidivist:    d.Recidivist,
	}
}

type BatchFailureResponse struct {
	InvoiceID     string `json:"invoice_id,omitempty"`
	VehicleID     string `json:"vehicle_id,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
	Error         string `json:"error"`
}

type BatchReportResponse struct {
	RunID      string                 `json:"run_id"`
	Kind       string                 `json:"kind"`
	StartedAt  time.Time              `json:"started_at"`
	FinishedAt time.Time              `json:"finished_at"`
	Processed  int                    `json:"processed"`
	Blocked    int                    `json:"blocked"`
	Unblocked  int                    `json:"unblocked"`
	Deferred   int                    `json:"deferred"`
	Skipped    int                    `json:"skipped"`
	Notified   int                    `json:"notified"`
	Failures   []BatchFailureResponse `json:"failures,omitempty"`
}

func FromBatchReport(r entities.BatchReport) BatchReportResponse {
	resp := BatchReportResponse{
		RunID:      r.RunID,
		Kind:       r.Kind,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Processed:  r.Processed,
		Blocked:    r.Blocked,
		Unblocked:  r.Unblocked,
		Deferred:   r.Deferred,
		Skipped:    r.Skipped,
		Notified:   r.Notified,
	}
	for _, f := range r.Failures {
		resp.Failures = append(resp.Failures, BatchFailureResponse{
			InvoiceID:     f.InvoiceID,
			VehicleID:     f.VehicleID,
			TransactionID: f.TransactionID,
			Error:         f.Err,
		})
	}
	return resp
}
