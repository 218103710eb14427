package jobs

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the queue every billing task runs on.
	QueueDefault = "default"
	// TaskOverdueSweep marks lapsed invoices overdue and fans out milestone refreshes.
	TaskOverdueSweep = "billing:overdue_sweep"
	// TaskMilestoneRefresh moves lapsed milestones of one invoice to due.
	TaskMilestoneRefresh = "billing:milestone_refresh"
)

var errMissingInvoiceID = errors.New("jobs: invoice_id is required")

// MilestoneRefreshPayload identifies the invoice whose milestones are refreshed.
type MilestoneRefreshPayload struct {
	InvoiceID string `json:"invoice_id"`
}

func NewOverdueSweepTask() *asynq.Task {
	return asynq.NewTask(TaskOverdueSweep, nil)
}

func NewMilestoneRefreshTask(invoiceID string) (*asynq.Task, error) {
	if invoiceID == "" {
		return nil, errMissingInvoiceID
	}
	data, err := json.Marshal(MilestoneRefreshPayload{InvoiceID: invoiceID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskMilestoneRefresh, data), nil
}

func parseMilestoneRefresh(t *asynq.Task) (MilestoneRefreshPayload, error) {
	var p MilestoneRefreshPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return p, fmt.Errorf("jobs: decode %s payload: %w", t.Type(), err)
	}
	if p.InvoiceID == "" {
		return p, errMissingInvoiceID
	}
	return p, nil
}
