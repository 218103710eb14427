package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/domain/workflow"
	mock_interfaces "catering_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteRequestUseCase_Submit(t *testing.T) {
	valid := entities.QuoteRequest{
		ContactName: " Ana ",
		Email:       "ana@example.com",
		GuestCount:  80,
		EventDate:   time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
	}

	t.Run("missing contact", func(t *testing.T) {
		uc := NewQuoteRequestUseCase(nil, nil, nil)
		q := valid
		q.ContactName = "  "
		_, err := uc.Submit(context.Background(), q)
		if !errors.Is(err, ErrInvalidQuoteRequest) {
			t.Fatalf("expected ErrInvalidQuoteRequest, got %v", err)
		}
	})

	t.Run("zero guests", func(t *testing.T) {
		uc := NewQuoteRequestUseCase(nil, nil, nil)
		q := valid
		q.GuestCount = 0
		_, err := uc.Submit(context.Background(), q)
		if !errors.Is(err, ErrInvalidQuoteRequest) {
			t.Fatalf("expected ErrInvalidQuoteRequest, got %v", err)
		}
	})

	t.Run("created as pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
			return q, nil
		})

		got, err := uc.Submit(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.WorkflowStatus != entities.QuoteStatusPending || got.ContactName != "Ana" {
			t.Fatalf("unexpected quote: %+v", got)
		}
	})
}

func TestQuoteRequestUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteRequestUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{}, nil)

		_, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteRequestNotFound) {
			t.Fatalf("expected ErrQuoteRequestNotFound, got %v", err)
		}
	})
}

func TestQuoteRequestUseCase_ListByStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewQuoteRequestUseCase(nil, nil, nil)
		_, err := uc.ListByStatus(context.Background(), "archived")
		if !errors.Is(err, ErrInvalidQuoteRequest) {
			t.Fatalf("expected ErrInvalidQuoteRequest, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, nil)

		repo.EXPECT().ListByStatus(gomock.Any(), entities.QuoteStatusPending).Return([]entities.QuoteRequest{{ID: "q-1"}}, nil)

		out, err := uc.ListByStatus(context.Background(), entities.QuoteStatusPending)
		if err != nil || len(out) != 1 {
			t.Fatalf("unexpected result: %v %v", out, err)
		}
	})
}

func TestQuoteRequestUseCase_UpdateStatus(t *testing.T) {
	t.Run("illegal transition leaves record untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		uc := NewQuoteRequestUseCase(repo, metrics, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{ID: "q-1", WorkflowStatus: entities.QuoteStatusPending}, nil)
		metrics.EXPECT().Transition("quote", "completed", false)

		_, err := uc.UpdateStatus(context.Background(), "q-1", entities.QuoteStatusCompleted)
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("legal transition is conditioned on current status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		uc := NewQuoteRequestUseCase(repo, metrics, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{ID: "q-1", WorkflowStatus: entities.QuoteStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusPending, entities.QuoteStatusUnderReview).
			Return(entities.QuoteRequest{ID: "q-1", WorkflowStatus: entities.QuoteStatusUnderReview}, nil)
		metrics.EXPECT().Transition("quote", "under_review", true)

		got, err := uc.UpdateStatus(context.Background(), "q-1", entities.QuoteStatusUnderReview)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.WorkflowStatus != entities.QuoteStatusUnderReview {
			t.Fatalf("expected under_review, got %s", got.WorkflowStatus)
		}
	})
}
