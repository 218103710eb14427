package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/domain/pricing"
	"catering_backoffice/internal/domain/workflow"
	"catering_backoffice/internal/usecase/interfaces"
	mock_interfaces "catering_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type invoiceMocks struct {
	invoices    *mock_interfaces.MockIInvoiceRepository
	quotes      *mock_interfaces.MockIQuoteRequestRepository
	milestones  *mock_interfaces.MockIPaymentMilestoneRepository
	regenerator *mock_interfaces.MockIMilestoneRegenerator
	mailer      *mock_interfaces.MockIInvoiceMailer
	sms         *mock_interfaces.MockISMSSender
	renderer    *mock_interfaces.MockIInvoiceRenderer
}

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newInvoiceUseCase(t *testing.T) (*InvoiceUseCase, invoiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := invoiceMocks{
		invoices:    mock_interfaces.NewMockIInvoiceRepository(ctrl),
		quotes:      mock_interfaces.NewMockIQuoteRequestRepository(ctrl),
		milestones:  mock_interfaces.NewMockIPaymentMilestoneRepository(ctrl),
		regenerator: mock_interfaces.NewMockIMilestoneRegenerator(ctrl),
		mailer:      mock_interfaces.NewMockIInvoiceMailer(ctrl),
		sms:         mock_interfaces.NewMockISMSSender(ctrl),
		renderer:    mock_interfaces.NewMockIInvoiceRenderer(ctrl),
	}
	uc := NewInvoiceUseCase(InvoiceDeps{
		Invoices:      m.invoices,
		Quotes:        m.quotes,
		Milestones:    m.milestones,
		Regenerator:   m.regenerator,
		Mailer:        m.mailer,
		SMS:           m.sms,
		Renderer:      m.renderer,
		PublicBaseURL: "https://events.example.com/",
	})
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func storedInvoice(status entities.InvoiceStatus) entities.Invoice {
	return entities.Invoice{
		ID:             "inv-1",
		InvoiceNumber:  "EST-20260301-ABCDEF",
		DocumentType:   entities.DocumentTypeEstimate,
		WorkflowStatus: status,
		CustomerName:   "Ana",
		CustomerEmail:  "ana@example.com",
		CustomerPhone:  "+15550100",
		GuestCount:     80,
		LineItems: []entities.LineItem{
			{ID: "li-1", Description: "Buffet", Unit: entities.LineUnitPerGuest, Quantity: 80, UnitPrice: 2500, TotalPrice: 200000},
		},
		Subtotal:    200000,
		TaxAmount:   32000,
		TotalAmount: 232000,
		DueDate:     time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC),
		CreatedAt:   fixedNow,
		UpdatedAt:   fixedNow,
	}
}

func TestInvoiceUseCase_Create(t *testing.T) {
	t.Run("missing customer name", func(t *testing.T) {
		uc, _ := newInvoiceUseCase(t)
		_, err := uc.Create(context.Background(), CreateInvoiceInput{})
		if !errors.Is(err, ErrInvalidInvoice) {
			t.Fatalf("expected ErrInvalidInvoice, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{}, nil)

		_, err := uc.Create(context.Background(), CreateInvoiceInput{QuoteRequestID: "q-1"})
		if !errors.Is(err, ErrQuoteRequestNotFound) {
			t.Fatalf("expected ErrQuoteRequestNotFound, got %v", err)
		}
	})

	t.Run("estimate from quote computes totals and schedule", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		quote := entities.QuoteRequest{
			ID:             "q-1",
			ContactName:    "Ana",
			Email:          "ana@example.com",
			GuestCount:     80,
			EventDate:      time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
			WorkflowStatus: entities.QuoteStatusUnderReview,
		}
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quote, nil)
		m.invoices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
			return inv, nil
		})
		m.regenerator.EXPECT().RegenerateMilestones(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusUnderReview, entities.QuoteStatusEstimated).Return(quote, nil)

		inv, err := uc.Create(context.Background(), CreateInvoiceInput{
			QuoteRequestID: "q-1",
			LineItems: []entities.LineItem{
				{Description: "Buffet", Unit: entities.LineUnitPerGuest, UnitPrice: 2500},
				{Description: " Setup ", Unit: entities.LineUnitFlat, UnitPrice: 10000},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.DocumentType != entities.DocumentTypeEstimate || inv.WorkflowStatus != entities.InvoiceStatusDraft {
			t.Fatalf("unexpected document: %s %s", inv.DocumentType, inv.WorkflowStatus)
		}
		if !strings.HasPrefix(inv.InvoiceNumber, "EST-20260301-") {
			t.Fatalf("unexpected number %q", inv.InvoiceNumber)
		}
		if inv.CustomerName != "Ana" || inv.GuestCount != 80 {
			t.Fatalf("quote fields not copied: %+v", inv)
		}
		if inv.Subtotal != 210000 || inv.HospitalityTax != 21000 || inv.ServiceTax != 12600 || inv.TotalAmount != 243600 {
			t.Fatalf("unexpected totals: subtotal=%d hosp=%d svc=%d total=%d", inv.Subtotal, inv.HospitalityTax, inv.ServiceTax, inv.TotalAmount)
		}
		if inv.DueDate != time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC) {
			t.Fatalf("unexpected due date %s", inv.DueDate)
		}
	})

	t.Run("pending quote walks through review to estimated", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		quote := entities.QuoteRequest{
			ID:             "q-1",
			ContactName:    "Ana",
			GuestCount:     40,
			EventDate:      time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
			WorkflowStatus: entities.QuoteStatusPending,
		}
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quote, nil)
		m.invoices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
			return inv, nil
		})
		m.regenerator.EXPECT().RegenerateMilestones(gomock.Any(), gomock.Any()).Return(nil, nil)
		gomock.InOrder(
			m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusPending, entities.QuoteStatusUnderReview).Return(quote, nil),
			m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusUnderReview, entities.QuoteStatusEstimated).Return(quote, nil),
		)

		_, err := uc.Create(context.Background(), CreateInvoiceInput{
			QuoteRequestID: "q-1",
			LineItems:      []entities.LineItem{{Description: "Buffet", Unit: entities.LineUnitPerGuest, UnitPrice: 2500}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("failed review step stops the quote walk", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		quote := entities.QuoteRequest{ID: "q-1", ContactName: "Ana", GuestCount: 40, WorkflowStatus: entities.QuoteStatusPending}
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quote, nil)
		m.invoices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
			return inv, nil
		})
		m.regenerator.EXPECT().RegenerateMilestones(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusPending, entities.QuoteStatusUnderReview).
			Return(entities.QuoteRequest{}, interfaces.ErrConditionFailed)

		if _, err := uc.Create(context.Background(), CreateInvoiceInput{QuoteRequestID: "q-1"}); err != nil {
			t.Fatalf("quote failures must not fail the invoice: %v", err)
		}
	})
}

func TestInvoiceUseCase_UpdateStatus(t *testing.T) {
	t.Run("illegal transition is rejected without writing", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(storedInvoice(entities.InvoiceStatusDraft), nil)

		_, err := uc.UpdateStatus(context.Background(), "inv-1", entities.InvoiceStatusPaid)
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("overdue before due date is rejected", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(storedInvoice(entities.InvoiceStatusSent), nil)

		_, err := uc.UpdateStatus(context.Background(), "inv-1", entities.InvoiceStatusOverdue)
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("legal transition", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(storedInvoice(entities.InvoiceStatusViewed), nil)
		m.invoices.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusViewed, entities.InvoiceStatusApproved, fixedNow).
			Return(storedInvoice(entities.InvoiceStatusApproved), nil)

		got, err := uc.UpdateStatus(context.Background(), "inv-1", entities.InvoiceStatusApproved)
		if err != nil || got.WorkflowStatus != entities.InvoiceStatusApproved {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})
}

func TestInvoiceUseCase_Edits(t *testing.T) {
	t.Run("paid invoice is locked", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(storedInvoice(entities.InvoiceStatusPaid), nil)

		_, err := uc.ReplaceLineItems(context.Background(), "inv-1", nil)
		if !errors.Is(err, ErrInvoiceLocked) {
			t.Fatalf("expected ErrInvoiceLocked, got %v", err)
		}
	})

	t.Run("new line items schedule regeneration", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(storedInvoice(entities.InvoiceStatusSent), nil)
		m.invoices.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
			return inv, nil
		})
		m.regenerator.EXPECT().ScheduleRegeneration("inv-1")

		got, err := uc.ReplaceLineItems(context.Background(), "inv-1", []entities.LineItem{
			{Description: "Buffet", Unit: entities.LineUnitPerGuest, UnitPrice: 3000},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Subtotal != 240000 || got.TotalAmount != 278400 {
			t.Fatalf("unexpected totals: %d %d", got.Subtotal, got.TotalAmount)
		}
	})

	t.Run("same total does not regenerate", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		stored := storedInvoice(entities.InvoiceStatusSent)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(stored, nil)
		m.invoices.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
			return inv, nil
		})

		if _, err := uc.ReplaceLineItems(context.Background(), "inv-1", stored.LineItems); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approved adjustments survive a line replacement", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		stored := storedInvoice(entities.InvoiceStatusSent)
		stored.LineItems = append(stored.LineItems, pricing.AdjustmentLine("adj-1", "Change request", 500))
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(stored, nil)
		m.invoices.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
			return inv, nil
		})
		m.regenerator.EXPECT().ScheduleRegeneration("inv-1")

		got, err := uc.ReplaceLineItems(context.Background(), "inv-1", []entities.LineItem{
			{Description: "Buffet", Unit: entities.LineUnitPerGuest, UnitPrice: 3000},
			pricing.AdjustmentLine("adj-forged", "Discount", -50000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.LineItems) != 2 || got.LineItems[1].ID != "adj-1" {
			t.Fatalf("expected buffet plus stored adjustment, got %+v", got.LineItems)
		}
		if got.Subtotal != 240500 || got.TaxAmount != 38400 || got.TotalAmount != 278900 {
			t.Fatalf("unexpected totals: %d %d %d", got.Subtotal, got.TaxAmount, got.TotalAmount)
		}
	})

	t.Run("government contract is tax exempt", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(storedInvoice(entities.InvoiceStatusSent), nil)
		m.invoices.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
			return inv, nil
		})
		m.regenerator.EXPECT().ScheduleRegeneration("inv-1")

		got, err := uc.SetGovernmentContract(context.Background(), "inv-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TaxAmount != 0 || got.TotalAmount != got.Subtotal || !got.IsGovernmentContract {
			t.Fatalf("expected exempt totals, got %+v", got)
		}
	})
}

func TestInvoiceUseCase_Send(t *testing.T) {
	t.Run("email failure changes nothing", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(storedInvoice(entities.InvoiceStatusDraft), nil)
		m.mailer.EXPECT().SendInvoice(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("smtp down"))

		_, err := uc.Send(context.Background(), "inv-1")
		if !errors.Is(err, ErrNotificationFailed) {
			t.Fatalf("expected ErrNotificationFailed, got %v", err)
		}
	})

	t.Run("cancelled invoice cannot be sent", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(storedInvoice(entities.InvoiceStatusCancelled), nil)

		_, err := uc.Send(context.Background(), "inv-1")
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("draft moves to sent after delivery", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(storedInvoice(entities.InvoiceStatusDraft), nil)
		m.mailer.EXPECT().SendInvoice(gomock.Any(), gomock.Any(), interfaces.InvoiceLinks{
			ViewURL:          "https://events.example.com/v1/invoices/inv-1",
			PDFURL:           "https://events.example.com/v1/invoices/inv-1/pdf",
			TrackingPixelURL: "https://events.example.com/v1/track/open/inv-1",
		}).Return("msg-1", nil)
		m.sms.EXPECT().SendInvoiceNotice(gomock.Any(), gomock.Any(), "https://events.example.com/v1/invoices/inv-1").Return("", errors.New("twilio down"))
		m.invoices.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusDraft, entities.InvoiceStatusSent, fixedNow).
			Return(storedInvoice(entities.InvoiceStatusSent), nil)

		got, err := uc.Send(context.Background(), "inv-1")
		if err != nil || got.WorkflowStatus != entities.InvoiceStatusSent {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("resend keeps status", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		inv := storedInvoice(entities.InvoiceStatusViewed)
		inv.CustomerPhone = ""
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(inv, nil)
		m.mailer.EXPECT().SendInvoice(gomock.Any(), gomock.Any(), gomock.Any()).Return("msg-2", nil)

		got, err := uc.Send(context.Background(), "inv-1")
		if err != nil || got.WorkflowStatus != entities.InvoiceStatusViewed {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})
}

func TestInvoiceUseCase_MarkViewed(t *testing.T) {
	t.Run("sent moves to viewed", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(storedInvoice(entities.InvoiceStatusSent), nil)
		m.invoices.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusSent, entities.InvoiceStatusViewed, fixedNow).
			Return(storedInvoice(entities.InvoiceStatusViewed), nil)

		if err := uc.MarkViewed(context.Background(), "inv-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("other statuses are ignored", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(storedInvoice(entities.InvoiceStatusApproved), nil)

		if err := uc.MarkViewed(context.Background(), "inv-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoiceUseCase_ConvertToInvoice(t *testing.T) {
	t.Run("estimate must be approved", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(storedInvoice(entities.InvoiceStatusSent), nil)

		_, err := uc.ConvertToInvoice(context.Background(), "inv-1")
		if !errors.Is(err, ErrEstimateNotApproved) {
			t.Fatalf("expected ErrEstimateNotApproved, got %v", err)
		}
	})

	t.Run("approved estimate becomes invoice", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(storedInvoice(entities.InvoiceStatusApproved), nil)
		m.invoices.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
			return inv, nil
		})

		got, err := uc.ConvertToInvoice(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.DocumentType != entities.DocumentTypeInvoice || got.InvoiceNumber != "INV-20260301-ABCDEF" {
			t.Fatalf("unexpected conversion: %s %s", got.DocumentType, got.InvoiceNumber)
		}
	})
}

func TestInvoiceUseCase_RenderPDF(t *testing.T) {
	uc, m := newInvoiceUseCase(t)
	m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(storedInvoice(entities.InvoiceStatusSent), nil)
	m.milestones.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.PaymentMilestone{
		{ID: "ms-2", Sequence: 2},
		{ID: "ms-1", Sequence: 1},
	}, nil)
	m.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(func(_ entities.Invoice, ms []entities.PaymentMilestone) ([]byte, error) {
		if ms[0].ID != "ms-1" {
			t.Fatalf("milestones should be ordered by sequence")
		}
		return []byte("%PDF"), nil
	})

	out, inv, err := uc.RenderPDF(context.Background(), "inv-1")
	if err != nil || string(out) != "%PDF" || inv.ID != "inv-1" {
		t.Fatalf("unexpected result: %q %+v %v", out, inv, err)
	}

	bare := NewInvoiceUseCase(InvoiceDeps{})
	if _, _, err := bare.RenderPDF(context.Background(), "inv-1"); !errors.Is(err, ErrRendererUnavailable) {
		t.Fatalf("expected ErrRendererUnavailable, got %v", err)
	}
}

func TestInvoiceUseCase_SweepOverdue(t *testing.T) {
	uc, m := newInvoiceUseCase(t)
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	pastDue := time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC)
	notDue := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	m.invoices.EXPECT().ListByStatuses(gomock.Any(), gomock.Any()).Return([]entities.Invoice{
		{ID: "inv-1", WorkflowStatus: entities.InvoiceStatusSent, DueDate: pastDue},
		{ID: "inv-2", WorkflowStatus: entities.InvoiceStatusApproved, DueDate: notDue},
		{ID: "inv-3", WorkflowStatus: entities.InvoiceStatusViewed, DueDate: pastDue},
		{ID: "inv-4", WorkflowStatus: entities.InvoiceStatusOverdue, DueDate: pastDue},
	}, nil)
	m.invoices.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusSent, entities.InvoiceStatusOverdue, now).Return(entities.Invoice{}, nil)
	m.invoices.EXPECT().UpdateStatus(gomock.Any(), "inv-3", entities.InvoiceStatusViewed, entities.InvoiceStatusOverdue, now).Return(entities.Invoice{}, interfaces.ErrConditionFailed)

	res, err := uc.SweepOverdue(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Scanned != 4 || res.MarkedOverdue != 1 || len(res.OpenInvoices) != 4 {
		t.Fatalf("unexpected sweep result: %+v", res)
	}
}

func TestDefaultDueDate(t *testing.T) {
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	if got := defaultDueDate(now, time.Time{}); got != day.AddDate(0, 0, 14) {
		t.Fatalf("unknown event: got %s", got)
	}
	if got := defaultDueDate(now, day.AddDate(0, 0, 3)); got != day {
		t.Fatalf("close event: got %s", got)
	}
	if got := defaultDueDate(now, day.AddDate(0, 1, 0)); got != day.AddDate(0, 1, -7) {
		t.Fatalf("future event: got %s", got)
	}
}
