// Package workflow holds the status vocabulary of quotes, invoices and change
// requests and the fixed tables of legal transitions between them.
package workflow

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"catering_backoffice/internal/domain/entities"
)

// EntityType selects which transition table applies.
type EntityType string

const (
	EntityQuote         EntityType = "quote"
	EntityInvoice       EntityType = "invoice"
	EntityChangeRequest EntityType = "change_request"
)

var ErrInvalidTransition = errors.New("invalid status transition")

var quoteTransitions = map[string]map[string]bool{
	string(entities.QuoteStatusPending): {
		string(entities.QuoteStatusUnderReview): true,
		string(entities.QuoteStatusCancelled):   true,
	},
	string(entities.QuoteStatusUnderReview): {
		string(entities.QuoteStatusEstimated): true,
		string(entities.QuoteStatusCancelled): true,
	},
	string(entities.QuoteStatusEstimated): {
		string(entities.QuoteStatusApproved):    true,
		string(entities.QuoteStatusUnderReview): true,
		string(entities.QuoteStatusCancelled):   true,
	},
	string(entities.QuoteStatusApproved): {
		string(entities.QuoteStatusConfirmed):   true,
		string(entities.QuoteStatusUnderReview): true,
		string(entities.QuoteStatusCancelled):   true,
	},
	string(entities.QuoteStatusConfirmed): {
		string(entities.QuoteStatusCompleted): true,
		string(entities.QuoteStatusCancelled): true,
	},
	string(entities.QuoteStatusCompleted): {},
	string(entities.QuoteStatusCancelled): {},
}

var invoiceTransitions = map[string]map[string]bool{
	string(entities.InvoiceStatusDraft): {
		string(entities.InvoiceStatusSent):      true,
		string(entities.InvoiceStatusCancelled): true,
	},
	string(entities.InvoiceStatusSent): {
		string(entities.InvoiceStatusViewed):      true,
		string(entities.InvoiceStatusApproved):    true,
		string(entities.InvoiceStatusUnderReview): true,
		string(entities.InvoiceStatusOverdue):     true,
		string(entities.InvoiceStatusCancelled):   true,
	},
	string(entities.InvoiceStatusViewed): {
		string(entities.InvoiceStatusApproved):    true,
		string(entities.InvoiceStatusUnderReview): true,
		string(entities.InvoiceStatusOverdue):     true,
		string(entities.InvoiceStatusCancelled):   true,
	},
	string(entities.InvoiceStatusUnderReview): {
		string(entities.InvoiceStatusSent):      true,
		string(entities.InvoiceStatusCancelled): true,
	},
	string(entities.InvoiceStatusApproved): {
		string(entities.InvoiceStatusPaid):        true,
		string(entities.InvoiceStatusOverdue):     true,
		string(entities.InvoiceStatusUnderReview): true,
		string(entities.InvoiceStatusCancelled):   true,
	},
	string(entities.InvoiceStatusOverdue): {
		string(entities.InvoiceStatusPaid):      true,
		string(entities.InvoiceStatusCancelled): true,
	},
	string(entities.InvoiceStatusPaid):      {},
	string(entities.InvoiceStatusCancelled): {},
}

var changeRequestTransitions = map[string]map[string]bool{
	string(entities.ChangeRequestStatusPending): {
		string(entities.ChangeRequestStatusApproved): true,
		string(entities.ChangeRequestStatusRejected): true,
	},
	string(entities.ChangeRequestStatusApproved): {},
	string(entities.ChangeRequestStatusRejected): {},
}

func table(entity EntityType) (map[string]map[string]bool, bool) {
	switch entity {
	case EntityQuote:
		return quoteTransitions, true
	case EntityInvoice:
		return invoiceTransitions, true
	case EntityChangeRequest:
		return changeRequestTransitions, true
	default:
		return nil, false
	}
}

// IsValidTransition reports whether from -> to is listed for the entity.
// Unknown entities and unknown statuses are never valid.
func IsValidTransition(entity EntityType, from, to string) bool {
	t, ok := table(entity)
	if !ok {
		return false
	}
	next, ok := t[from]
	if !ok {
		return false
	}
	return next[to]
}

// ValidateTransition is IsValidTransition with an error carrying the details.
func ValidateTransition(entity EntityType, from, to string) error {
	if IsValidTransition(entity, from, to) {
		return nil
	}
	return fmt.Errorf("%w: %s %q -> %q", ErrInvalidTransition, entity, from, to)
}

// AllowedTransitions lists the statuses reachable from the given one, sorted.
func AllowedTransitions(entity EntityType, from string) []string {
	t, ok := table(entity)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(t[from]))
	for to := range t[from] {
		out = append(out, to)
	}
	sort.Strings(out)
	return out
}

// IsKnownStatus reports whether status belongs to the entity's vocabulary.
func IsKnownStatus(entity EntityType, status string) bool {
	t, ok := table(entity)
	if !ok {
		return false
	}
	_, ok = t[status]
	return ok
}

// IsTerminal reports whether no transition leaves the status.
func IsTerminal(entity EntityType, status string) bool {
	t, ok := table(entity)
	if !ok {
		return false
	}
	next, ok := t[status]
	return ok && len(next) == 0
}

// CanMarkOverdue reports whether an invoice may move to overdue: the table must
// allow it and the due date must have lapsed.
func CanMarkOverdue(status entities.InvoiceStatus, dueDate, now time.Time) bool {
	if dueDate.IsZero() || !now.After(dueDate) {
		return false
	}
	return IsValidTransition(EntityInvoice, string(status), string(entities.InvoiceStatusOverdue))
}
