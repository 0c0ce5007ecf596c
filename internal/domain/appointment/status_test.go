package appointment

import (
	"testing"
	"time"

	"github.com/belezaclinic/clinic-manager/internal/httperr"
	"github.com/belezaclinic/clinic-manager/internal/models"
)

func TestConfirm(t *testing.T) {
	now := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusPending)}
	if err := Confirm(ap, now); err != nil {
		t.Fatalf("confirm from pending failed: %v", err)
	}
	if ap.Status != string(StatusConfirmed) {
		t.Errorf("expected status confirmed, got %q", ap.Status)
	}
	if !ap.UpdatedAt.Equal(now) {
		t.Errorf("expected UpdatedAt %v, got %v", now, ap.UpdatedAt)
	}

	for _, from := range []Status{StatusConfirmed, StatusCancelled} {
		ap := &models.Appointment{Status: string(from)}
		err := Confirm(ap, now)
		if httperr.BusinessCode(err) != "invalid_state" {
			t.Errorf("confirm from %s: expected invalid_state, got %v", from, err)
		}
		if ap.Status != string(from) {
			t.Errorf("confirm from %s: status changed to %q", from, ap.Status)
		}
	}
}

func TestCancel(t *testing.T) {
	now := time.Now()

	for _, from := range []Status{StatusPending, StatusConfirmed} {
		ap := &models.Appointment{Status: string(from)}
		if err := Cancel(ap, now); err != nil {
			t.Fatalf("cancel from %s failed: %v", from, err)
		}
		if ap.Status != string(StatusCancelled) {
			t.Errorf("cancel from %s: expected cancelled, got %q", from, ap.Status)
		}
	}

	ap := &models.Appointment{Status: string(StatusCancelled)}
	if err := Cancel(ap, now); httperr.BusinessCode(err) != "invalid_state" {
		t.Errorf("cancel from cancelled: expected invalid_state, got %v", err)
	}
}

func TestValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCancelled} {
		if !Valid(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if Valid("done") {
		t.Error("expected unknown status to be invalid")
	}
}
