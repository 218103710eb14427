package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/usecase/interfaces"
	mock_interfaces "catering_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	repo       *mock_interfaces.MockIBillingPaymentRepository
	milestones *mock_interfaces.MockIPaymentMilestoneRepository
	invoices   *mock_interfaces.MockIInvoiceRepository
	gateway    *mock_interfaces.MockIPaymentGateway
	guard      *mock_interfaces.MockIIdempotencyGuard
}

func newPaymentUseCase(t *testing.T, mockMode bool) (*BillingPaymentUseCase, paymentMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		repo:       mock_interfaces.NewMockIBillingPaymentRepository(ctrl),
		milestones: mock_interfaces.NewMockIPaymentMilestoneRepository(ctrl),
		invoices:   mock_interfaces.NewMockIInvoiceRepository(ctrl),
		gateway:    mock_interfaces.NewMockIPaymentGateway(ctrl),
		guard:      mock_interfaces.NewMockIIdempotencyGuard(ctrl),
	}
	uc := NewBillingPaymentUseCase(BillingPaymentDeps{
		Payments:   m.repo,
		Milestones: m.milestones,
		Invoices:   m.invoices,
		Gateway:    m.gateway,
		Guard:      m.guard,
		MockMode:   mockMode,
	})
	return uc, m
}

func payableInvoice() entities.Invoice {
	return entities.Invoice{
		ID:             "inv-1",
		InvoiceNumber:  "INV-20260301-ABCDEF",
		DocumentType:   entities.DocumentTypeInvoice,
		WorkflowStatus: entities.InvoiceStatusApproved,
		CustomerEmail:  "ana@example.com",
		TotalAmount:    20000,
	}
}

func depositMilestone() entities.PaymentMilestone {
	return entities.PaymentMilestone{
		ID:          "ms-1",
		InvoiceID:   "inv-1",
		Sequence:    1,
		Kind:        entities.MilestoneKindDeposit,
		Description: "Deposit",
		Amount:      10000,
		Status:      entities.MilestoneStatusDue,
	}
}

func TestBillingPaymentUseCase_PayMilestone_Validations(t *testing.T) {
	t.Run("empty milestone id", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(BillingPaymentDeps{})
		_, err := uc.PayMilestone(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidMilestoneID) {
			t.Fatalf("expected ErrInvalidMilestoneID, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(BillingPaymentDeps{})
		_, err := uc.PayMilestone(context.Background(), "ms-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(BillingPaymentDeps{})
		_, err := uc.PayMilestone(context.Background(), "ms-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("milestone not found", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(entities.PaymentMilestone{}, nil)

		_, err := uc.PayMilestone(context.Background(), "ms-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrMilestoneNotFound) {
			t.Fatalf("expected ErrMilestoneNotFound, got %v", err)
		}
	})

	t.Run("milestone already paid", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		ms := depositMilestone()
		ms.Status = entities.MilestoneStatusPaid
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(ms, nil)

		_, err := uc.PayMilestone(context.Background(), "ms-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrMilestoneAlreadyPaid) {
			t.Fatalf("expected ErrMilestoneAlreadyPaid, got %v", err)
		}
	})

	t.Run("invoice not approved", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		inv := payableInvoice()
		inv.WorkflowStatus = entities.InvoiceStatusSent
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(depositMilestone(), nil)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(inv, nil)

		_, err := uc.PayMilestone(context.Background(), "ms-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvoiceNotPayable) {
			t.Fatalf("expected ErrInvoiceNotPayable, got %v", err)
		}
	})

	t.Run("payment already in progress", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(depositMilestone(), nil)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(payableInvoice(), nil)
		m.guard.EXPECT().Acquire(gomock.Any(), "ms-1").Return(false, nil)

		_, err := uc.PayMilestone(context.Background(), "ms-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentInProgress) {
			t.Fatalf("expected ErrPaymentInProgress, got %v", err)
		}
	})

	t.Run("missing payment_method_id", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(depositMilestone(), nil)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(payableInvoice(), nil)
		m.guard.EXPECT().Acquire(gomock.Any(), "ms-1").Return(true, nil)
		m.guard.EXPECT().Release(gomock.Any(), "ms-1").Return(nil)

		_, err := uc.PayMilestone(context.Background(), "ms-1", json.RawMessage(`{"payer":{"email":"x@y.z"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_PayMilestone_Gateway(t *testing.T) {
	t.Run("payload carries milestone amount and reference", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(depositMilestone(), nil)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(payableInvoice(), nil)
		m.guard.EXPECT().Acquire(gomock.Any(), "ms-1").Return(true, nil)
		m.guard.EXPECT().Release(gomock.Any(), "ms-1").Return(nil)

		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, raw json.RawMessage) (string, string, json.RawMessage, error) {
			var body map[string]any
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Fatalf("unexpected payload: %v", err)
			}
			if body["transaction_amount"] != float64(100) {
				t.Fatalf("expected amount 100, got %v", body["transaction_amount"])
			}
			if body["external_reference"] != "ms-1" {
				t.Fatalf("expected external_reference ms-1, got %v", body["external_reference"])
			}
			payer, _ := body["payer"].(map[string]any)
			if payer["email"] != "ana@example.com" {
				t.Fatalf("expected payer email from invoice, got %v", payer["email"])
			}
			return "pay-1", "in_process", json.RawMessage(`{"id":1,"status":"in_process"}`), nil
		})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
			return p, nil
		})

		p, err := uc.PayMilestone(context.Background(), "ms-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusPending || p.Amount != 10000 || p.MilestoneID != "ms-1" {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	t.Run("gateway error is classified", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(depositMilestone(), nil)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(payableInvoice(), nil)
		m.guard.EXPECT().Acquire(gomock.Any(), "ms-1").Return(true, nil)
		m.guard.EXPECT().Release(gomock.Any(), "ms-1").Return(nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"message":"invalid users involved","error":"bad_request","status":400,"cause":[{"code":2034}]}`))

		_, err := uc.PayMilestone(context.Background(), "ms-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayInvalidUsers) {
			t.Fatalf("expected ErrPaymentGatewayInvalidUsers, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_PayMilestone_Settlement(t *testing.T) {
	t.Run("approved payment marks milestone paid", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, true)
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(depositMilestone(), nil)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(payableInvoice(), nil)
		m.guard.EXPECT().Acquire(gomock.Any(), "ms-1").Return(true, nil)
		m.guard.EXPECT().Release(gomock.Any(), "ms-1").Return(nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"status":"approved"}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
			return p, nil
		})
		m.milestones.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ms entities.PaymentMilestone, _ time.Time) (entities.PaymentMilestone, error) {
				if ms.ID != "ms-1" || ms.Amount != 10000 {
					t.Fatalf("expected the charged milestone and amount, got %+v", ms)
				}
				return ms, nil
			})
		balance := entities.PaymentMilestone{ID: "ms-2", InvoiceID: "inv-1", Status: entities.MilestoneStatusPending}
		paid := depositMilestone()
		paid.Status = entities.MilestoneStatusPaid
		m.milestones.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.PaymentMilestone{paid, balance}, nil)

		p, err := uc.PayMilestone(context.Background(), "ms-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved payment, got %s", p.Status)
		}
	})

	t.Run("last milestone pays the invoice", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, true)
		inv := payableInvoice()
		inv.WorkflowStatus = entities.InvoiceStatusOverdue
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(depositMilestone(), nil)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(inv, nil)
		m.guard.EXPECT().Acquire(gomock.Any(), "ms-1").Return(true, nil)
		m.guard.EXPECT().Release(gomock.Any(), "ms-1").Return(nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
			return p, nil
		})
		m.milestones.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ms entities.PaymentMilestone, _ time.Time) (entities.PaymentMilestone, error) {
				return ms, nil
			})
		paid := depositMilestone()
		paid.Status = entities.MilestoneStatusPaid
		m.milestones.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.PaymentMilestone{paid}, nil)
		m.invoices.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusOverdue, entities.InvoiceStatusPaid, gomock.Any()).Return(entities.Invoice{}, nil)

		if _, err := uc.PayMilestone(context.Background(), "ms-1", json.RawMessage(`{}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("schedule regenerated during charge is not settled", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, true)
		stored := depositMilestone()
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(stored, nil)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(payableInvoice(), nil)
		m.guard.EXPECT().Acquire(gomock.Any(), "ms-1").Return(true, nil)
		m.guard.EXPECT().Release(gomock.Any(), "ms-1").Return(nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ json.RawMessage) (string, string, json.RawMessage, error) {
			// the invoice total is edited while the card is charged
			stored.Amount = 15000
			return "pay-1", "approved", json.RawMessage(`{"status":"approved"}`), nil
		})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
			return p, nil
		})
		m.milestones.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ms entities.PaymentMilestone, _ time.Time) (entities.PaymentMilestone, error) {
				if ms.Amount != stored.Amount {
					return entities.PaymentMilestone{}, interfaces.ErrConditionFailed
				}
				t.Fatalf("expected amounts to differ, charged %d stored %d", ms.Amount, stored.Amount)
				return ms, nil
			})

		_, err := uc.PayMilestone(context.Background(), "ms-1", nil)
		if !errors.Is(err, ErrPaymentNeedsReconciliation) {
			t.Fatalf("expected ErrPaymentNeedsReconciliation, got %v", err)
		}
		if stored.Status == entities.MilestoneStatusPaid {
			t.Fatalf("milestone must not be settled at %d after charging 10000", stored.Amount)
		}
	})

	t.Run("milestone refreshed to due during charge still settles", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, true)
		pending := depositMilestone()
		pending.Status = entities.MilestoneStatusPending
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(pending, nil)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(payableInvoice(), nil)
		m.guard.EXPECT().Acquire(gomock.Any(), "ms-1").Return(true, nil)
		m.guard.EXPECT().Release(gomock.Any(), "ms-1").Return(nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
			return p, nil
		})
		m.milestones.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ms entities.PaymentMilestone, _ time.Time) (entities.PaymentMilestone, error) {
				ms.Status = entities.MilestoneStatusPaid
				return ms, nil
			})
		paid := depositMilestone()
		paid.Status = entities.MilestoneStatusPaid
		balance := entities.PaymentMilestone{ID: "ms-2", InvoiceID: "inv-1", Status: entities.MilestoneStatusDue}
		m.milestones.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.PaymentMilestone{paid, balance}, nil)

		if _, err := uc.PayMilestone(context.Background(), "ms-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, true)
		m.milestones.EXPECT().GetByID(gomock.Any(), "ms-1").Return(depositMilestone(), nil)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(payableInvoice(), nil)
		m.guard.EXPECT().Acquire(gomock.Any(), "ms-1").Return(true, nil)
		m.guard.EXPECT().Release(gomock.Any(), "ms-1").Return(nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BillingPayment{}, errors.New("db"))

		_, err := uc.PayMilestone(context.Background(), "ms-1", json.RawMessage(`{}`))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_Reads(t *testing.T) {
	t.Run("get by id not found", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.BillingPayment{}, nil)

		_, err := uc.GetByID(context.Background(), "pay-1")
		if !errors.Is(err, ErrBillingPaymentNotFound) {
			t.Fatalf("expected ErrBillingPaymentNotFound, got %v", err)
		}
	})

	t.Run("list by milestone", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.repo.EXPECT().ListByMilestoneID(gomock.Any(), "ms-1").Return([]entities.BillingPayment{{ID: "pay-1"}}, nil)

		out, err := uc.ListByMilestoneID(context.Background(), " ms-1 ")
		if err != nil || len(out) != 1 {
			t.Fatalf("unexpected result: %v %v", out, err)
		}
	})
}

func TestPaymentStatus(t *testing.T) {
	cases := map[string]entities.PaymentStatus{
		"approved":     entities.PaymentStatusApproved,
		"Authorized":   entities.PaymentStatusApproved,
		"rejected":     entities.PaymentStatusDenied,
		"charged_back": entities.PaymentStatusDenied,
		"in_process":   entities.PaymentStatusPending,
		"":             entities.PaymentStatusPending,
	}
	for in, want := range cases {
		if got := paymentStatus(in); got != want {
			t.Fatalf("paymentStatus(%q) = %s, want %s", in, got, want)
		}
	}
}
