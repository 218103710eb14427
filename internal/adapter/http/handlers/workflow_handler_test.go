package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"catering_backoffice/internal/domain/pricing"

	"github.com/gin-gonic/gin"
)

func newWorkflowRouter(h *WorkflowHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/workflow/:entity/check", h.CheckTransition)
	r.GET("/v1/workflow/:entity/:status/transitions", h.AllowedTransitions)
	r.POST("/v1/pricing/tax", h.TaxPreview)
	return r
}

func TestWorkflowHandler_AllowedTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newWorkflowRouter(NewWorkflowHandler(pricing.Calculator{}, nil))

	w := doJSON(r, http.MethodGet, "/v1/workflow/invoice/overdue/transitions", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Allowed  []string `json:"allowed"`
		Terminal bool     `json:"terminal"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body.Allowed) != 2 || body.Allowed[0] != "cancelled" || body.Allowed[1] != "paid" || body.Terminal {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/v1/workflow/quote/completed/transitions", "")
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || !body.Terminal || len(body.Allowed) != 0 {
		t.Fatalf("expected terminal status, got %s", w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/v1/workflow/invoice/archived/transitions", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}
}

func TestWorkflowHandler_CheckTransition(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newWorkflowRouter(NewWorkflowHandler(pricing.Calculator{}, nil))

	cases := map[string]bool{
		"/v1/workflow/quote/check?from=pending&to=under_review":      true,
		"/v1/workflow/quote/check?from=pending&to=completed":         false,
		"/v1/workflow/change_request/check?from=pending&to=approved": true,
		"/v1/workflow/unknown/check?from=pending&to=approved":        false,
	}
	for path, want := range cases {
		w := doJSON(r, http.MethodGet, path, "")
		var body struct {
			Valid bool `json:"valid"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body.Valid != want {
			t.Fatalf("%s: expected valid=%v, got %d %s", path, want, w.Code, w.Body.String())
		}
	}
}

func TestWorkflowHandler_TaxPreview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newWorkflowRouter(NewWorkflowHandler(pricing.Calculator{}, nil))

	w := doJSON(r, http.MethodPost, "/v1/pricing/tax", `{"subtotal":210000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var b pricing.TaxBreakdown
	_ = json.Unmarshal(w.Body.Bytes(), &b)
	if b.HospitalityTax != 21000 || b.ServiceTax != 12600 || b.TotalAmount != 243600 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}

	w = doJSON(r, http.MethodPost, "/v1/pricing/tax", `{"subtotal":210000,"is_government_contract":true}`)
	_ = json.Unmarshal(w.Body.Bytes(), &b)
	if b.TaxAmount != 0 || b.TotalAmount != 210000 || !b.IsExempt {
		t.Fatalf("unexpected exempt breakdown: %+v", b)
	}

	w = doJSON(r, http.MethodPost, "/v1/pricing/tax", `{"subtotal":-1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
