package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"catering_backoffice/internal/adapter/http/handlers/mocks"
	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/domain/workflow"
	"catering_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(h *QuoteRequestHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/quotes", h.Submit)
	r.GET("/v1/quotes", h.List)
	r.GET("/v1/quotes/:quote_id", h.GetByID)
	r.PATCH("/v1/quotes/:quote_id/status", h.UpdateStatus)
	return r
}

const validQuoteBody = `{"contact_name":"Ana","email":"ana@example.com","event_type":"wedding","event_date":"2026-06-20","location":"Hall A","guest_count":80,"menu_selections":["canapes"]}`

func TestQuoteRequestHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newQuoteRouter(NewQuoteRequestHandler(mocks.NewMockIQuoteRequestUseCase(ctrl), nil))

		w := doJSON(r, http.MethodPost, "/v1/quotes", `{`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation message is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newQuoteRouter(NewQuoteRequestHandler(mocks.NewMockIQuoteRequestUseCase(ctrl), nil))

		w := doJSON(r, http.MethodPost, "/v1/quotes", `{"contact_name":"Ana","email":"ana@example.com","event_type":"wedding","event_date":"2026-06-20","location":"Hall A","guest_count":0}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if msg := decodeError(t, w)["message"]; msg == "" || msg == "Invalid request" {
			t.Fatalf("expected field detail, got %q", msg)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteRequestUseCase(ctrl)
		r := newQuoteRouter(NewQuoteRequestHandler(uc, nil))

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
			q.ID = "q-1"
			q.WorkflowStatus = entities.QuoteStatusPending
			return q, nil
		})

		w := doJSON(r, http.MethodPost, "/v1/quotes", validQuoteBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" || body["workflow_status"] != "pending" || body["event_date"] != "2026-06-20" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteRequestHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteRequestUseCase(ctrl)
	r := newQuoteRouter(NewQuoteRequestHandler(uc, nil))

	gomock.InOrder(
		uc.EXPECT().ListByStatus(gomock.Any(), entities.QuoteStatusPending).Return(nil, nil),
		uc.EXPECT().ListByStatus(gomock.Any(), entities.QuoteStatusApproved).Return([]entities.QuoteRequest{{ID: "q-1"}}, nil),
	)

	w := doJSON(r, http.MethodGet, "/v1/quotes", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/v1/quotes?status=approved", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestQuoteRequestHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteRequestUseCase(ctrl)
		r := newQuoteRouter(NewQuoteRequestHandler(uc, nil))

		uc.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusCompleted).Return(entities.QuoteRequest{}, workflow.ErrInvalidTransition)

		w := doJSON(r, http.MethodPatch, "/v1/quotes/q-1/status", `{"status":"completed"}`)
		if w.Code != http.StatusConflict || decodeError(t, w)["code"] != "UPDATE_FAILED" {
			t.Fatalf("expected UPDATE_FAILED, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteRequestUseCase(ctrl)
		r := newQuoteRouter(NewQuoteRequestHandler(uc, nil))

		uc.EXPECT().UpdateStatus(gomock.Any(), "q-x", entities.QuoteStatusUnderReview).Return(entities.QuoteRequest{}, usecase.ErrQuoteRequestNotFound)

		w := doJSON(r, http.MethodPatch, "/v1/quotes/q-x/status", `{"status":"under_review"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
