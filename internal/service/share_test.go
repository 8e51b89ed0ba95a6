package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/practice-demos/internal/domain"
	"github.com/msomdec/practice-demos/internal/service"
)

const testShareSecret = "test-secret-for-share-links-0123456789"

func TestShareService_IssueAndResolve(t *testing.T) {
	svc := service.NewShareService(testShareSecret, time.Hour)
	runID := uuid.NewString()

	token, expires, err := svc.Issue(runID)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if time.Until(expires) <= 0 {
		t.Fatalf("expected expiry in the future, got %v", expires)
	}

	got, err := svc.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != runID {
		t.Fatalf("expected %s, got %s", runID, got)
	}
}

func TestShareService_RejectsExpired(t *testing.T) {
	svc := service.NewShareService(testShareSecret, -time.Minute)

	token, _, err := svc.Issue(uuid.NewString())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := svc.Resolve(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestShareService_RejectsTamperedAndForeign(t *testing.T) {
	svc := service.NewShareService(testShareSecret, time.Hour)
	other := service.NewShareService("another-secret-that-is-long-enough!!", time.Hour)

	token, _, err := svc.Issue(uuid.NewString())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tampered := token[:len(token)-1] + "X"
	if token[len(token)-1] == 'X' {
		tampered = token[:len(token)-1] + "Y"
	}
	if _, err := svc.Resolve(tampered); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("tampered: expected ErrUnauthorized, got %v", err)
	}
	if _, err := other.Resolve(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("foreign secret: expected ErrUnauthorized, got %v", err)
	}
	if _, err := svc.Resolve("not.a.token"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("garbage: expected ErrUnauthorized, got %v", err)
	}
}

func TestShareService_IssueRequiresUUID(t *testing.T) {
	svc := service.NewShareService(testShareSecret, time.Hour)
	if _, _, err := svc.Issue("run-1"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
