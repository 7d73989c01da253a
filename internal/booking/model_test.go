package booking

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPublished, StatusReserved, true},
		{StatusPublished, StatusCancelled, true},
		{StatusPublished, StatusConfirmed, false},
		{StatusPublished, StatusCompleted, false},
		{StatusReserved, StatusConfirmed, true},
		{StatusReserved, StatusCancelled, true},
		{StatusReserved, StatusPublished, false},
		{StatusReserved, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusReserved, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPublished, false},
		{StatusCancelled, StatusReserved, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []Status{StatusPublished, StatusReserved, StatusConfirmed} {
		if IsTerminal(s) {
			t.Errorf("IsTerminal(%s) = true, want false", s)
		}
	}
	for _, s := range []Status{StatusCompleted, StatusCancelled} {
		if !IsTerminal(s) {
			t.Errorf("IsTerminal(%s) = false, want true", s)
		}
	}
}

func TestValidService(t *testing.T) {
	for _, s := range []ServiceType{ServiceBoarding, ServiceHomeVisit, ServiceWalk, ServiceDaycare} {
		if !ValidService(s) {
			t.Errorf("ValidService(%s) = false, want true", s)
		}
	}
	if ValidService(ServiceType("grooming")) {
		t.Error("unknown service type accepted")
	}
}
