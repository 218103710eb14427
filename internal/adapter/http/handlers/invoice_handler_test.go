package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catering_backoffice/internal/adapter/http/handlers/mocks"
	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/domain/workflow"
	"catering_backoffice/internal/usecase"
	"catering_backoffice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInvoiceRouter(h *InvoiceHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/invoices", h.Create)
	r.POST("/v1/invoices/sweep-overdue", h.SweepOverdue)
	r.GET("/v1/invoices/:invoice_id", h.GetByID)
	r.PATCH("/v1/invoices/:invoice_id/status", h.UpdateStatus)
	r.PUT("/v1/invoices/:invoice_id/line-items", h.ReplaceLineItems)
	r.PATCH("/v1/invoices/:invoice_id/government-contract", h.SetGovernmentContract)
	r.POST("/v1/invoices/:invoice_id/send", h.Send)
	r.POST("/v1/invoices/:invoice_id/convert", h.Convert)
	r.GET("/v1/invoices/:invoice_id/pdf", h.DownloadPDF)
	r.GET("/v1/track/open/:invoice_id", h.TrackOpen)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestInvoiceHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, nil))

		w := doJSON(r, http.MethodPost, "/v1/invoices", `{"quote_request_id":"q-1","line_items":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, nil))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, usecase.ErrQuoteRequestNotFound)

		w := doJSON(r, http.MethodPost, "/v1/invoices", `{"quote_request_id":"q-x","line_items":[{"description":"Buffet","quantity":1,"unit_price":100}]}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, nil))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.CreateInvoiceInput) (entities.Invoice, error) {
			if in.QuoteRequestID != "q-1" || len(in.LineItems) != 1 || in.LineItems[0].Unit != entities.LineUnitPerGuest {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Invoice{ID: "inv-1", WorkflowStatus: entities.InvoiceStatusDraft, TotalAmount: 243600}, nil
		})

		w := doJSON(r, http.MethodPost, "/v1/invoices", `{"quote_request_id":"q-1","line_items":[{"description":"Buffet","unit":"per_guest","quantity":80,"unit_price":2500}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "inv-1" || body["total_display"] != "$2,436.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition maps to update failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, nil))

		uc.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusPaid).
			Return(entities.Invoice{}, fmt.Errorf("%w: invoice %q -> %q", workflow.ErrInvalidTransition, "draft", "paid"))

		w := doJSON(r, http.MethodPatch, "/v1/invoices/inv-1/status", `{"status":"paid"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body["code"] != "UPDATE_FAILED" || body["message"] != "Update Failed" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("concurrent change maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, nil))

		uc.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusSent).Return(entities.Invoice{}, interfaces.ErrConditionFailed)

		w := doJSON(r, http.MethodPatch, "/v1/invoices/inv-1/status", `{"status":"sent"}`)
		if w.Code != http.StatusConflict || decodeError(t, w)["code"] != "CONFLICT" {
			t.Fatalf("expected CONFLICT, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, nil))

		w := doJSON(r, http.MethodPatch, "/v1/invoices/inv-1/status", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, nil))

		uc.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusApproved).
			Return(entities.Invoice{ID: "inv-1", WorkflowStatus: entities.InvoiceStatusApproved}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/invoices/inv-1/status", `{"status":"approved"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_Edits(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("line items on a locked invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, nil))

		uc.EXPECT().ReplaceLineItems(gomock.Any(), "inv-1", gomock.Len(1)).Return(entities.Invoice{}, usecase.ErrInvoiceLocked)

		w := doJSON(r, http.MethodPut, "/v1/invoices/inv-1/line-items", `{"line_items":[{"description":"Setup","unit":"flat","quantity":1,"unit_price":5000}]}`)
		if w.Code != http.StatusConflict || decodeError(t, w)["code"] != "INVOICE_LOCKED" {
			t.Fatalf("expected INVOICE_LOCKED, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("government flag is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, nil))

		w := doJSON(r, http.MethodPatch, "/v1/invoices/inv-1/government-contract", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("government flag false is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, nil))

		uc.EXPECT().SetGovernmentContract(gomock.Any(), "inv-1", false).Return(entities.Invoice{ID: "inv-1"}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/invoices/inv-1/government-contract", `{"is_government_contract":false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_Send(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	r := newInvoiceRouter(NewInvoiceHandler(uc, nil))

	uc.EXPECT().Send(gomock.Any(), "inv-1").Return(entities.Invoice{}, errors.Join(usecase.ErrNotificationFailed, errors.New("smtp down")))

	w := doJSON(r, http.MethodPost, "/v1/invoices/inv-1/send", "")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	if decodeError(t, w)["message"] != "Invoice could not be delivered" {
		t.Fatalf("cause must not leak: %s", w.Body.String())
	}
}

func TestInvoiceHandler_Convert(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	r := newInvoiceRouter(NewInvoiceHandler(uc, nil))

	uc.EXPECT().ConvertToInvoice(gomock.Any(), "inv-1").Return(entities.Invoice{}, usecase.ErrEstimateNotApproved)

	w := doJSON(r, http.MethodPost, "/v1/invoices/inv-1/convert", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestInvoiceHandler_DownloadPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, nil))

		uc.EXPECT().RenderPDF(gomock.Any(), "inv-1").Return([]byte("%PDF-1.3"), entities.Invoice{ID: "inv-1", InvoiceNumber: "INV-20260301-AB12"}, nil)

		w := doJSON(r, http.MethodGet, "/v1/invoices/inv-1/pdf", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `inline; filename="INV-20260301-AB12.pdf"` {
			t.Fatalf("unexpected disposition %q", cd)
		}
	})

	t.Run("renderer unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, nil))

		uc.EXPECT().RenderPDF(gomock.Any(), "inv-1").Return(nil, entities.Invoice{}, usecase.ErrRendererUnavailable)

		w := doJSON(r, http.MethodGet, "/v1/invoices/inv-1/pdf", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_TrackOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for name, err := range map[string]error{"viewed": nil, "unknown invoice": usecase.ErrInvoiceNotFound} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIInvoiceUseCase(ctrl)
			r := newInvoiceRouter(NewInvoiceHandler(uc, nil))

			uc.EXPECT().MarkViewed(gomock.Any(), "inv-1").Return(err)

			w := doJSON(r, http.MethodGet, "/v1/track/open/inv-1", "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if w.Header().Get("Content-Type") != "image/gif" || !bytes.Equal(w.Body.Bytes(), transparentGIF) {
				t.Fatalf("expected tracking gif")
			}
		})
	}
}

func TestInvoiceHandler_SweepOverdue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc, nil)
	fixed := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return fixed }
	r := newInvoiceRouter(h)

	uc.EXPECT().SweepOverdue(gomock.Any(), fixed).Return(usecase.SweepResult{Scanned: 3, MarkedOverdue: 1, OpenInvoices: []string{"a", "b", "c"}}, nil)

	w := doJSON(r, http.MethodPost, "/v1/invoices/sweep-overdue", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["marked_overdue"] != float64(1) || body["scanned"] != float64(3) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestInvoiceHandler_GetByID_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	r := newInvoiceRouter(NewInvoiceHandler(uc, nil))

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

	w := doJSON(r, http.MethodGet, "/v1/invoices/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
