package entity

import "testing"

func TestEffectiveStatusProfileWins(t *testing.T) {
	p := &ExaminerProfile{
		Status: ExaminerStatusSuspended,
		User:   User{Status: UserStatusActive},
	}
	if got := p.EffectiveStatus(); got != ExaminerStatusSuspended {
		t.Fatalf("got %s", got)
	}
}

func TestEffectiveStatusFallsBackToUser(t *testing.T) {
	p := &ExaminerProfile{User: User{Status: UserStatusSuspended}}
	if got := p.EffectiveStatus(); got != ExaminerStatusSuspended {
		t.Fatalf("got %s", got)
	}

	p = &ExaminerProfile{User: User{Status: UserStatusActive}}
	if got := p.EffectiveStatus(); got != ExaminerStatusActive {
		t.Fatalf("got %s", got)
	}
}

func TestCanToggle(t *testing.T) {
	cases := map[ExaminerStatus]bool{
		ExaminerStatusActive:    true,
		ExaminerStatusSuspended: true,
		ExaminerStatusPending:   false,
		ExaminerStatusAccepted:  false,
		ExaminerStatusRejected:  false,
	}
	for status, want := range cases {
		if got := status.CanToggle(); got != want {
			t.Errorf("%s: got %v, want %v", status, got, want)
		}
	}
}

func TestToggled(t *testing.T) {
	if ExaminerStatusActive.Toggled() != ExaminerStatusSuspended {
		t.Fatal("active should toggle to suspended")
	}
	if ExaminerStatusSuspended.Toggled() != ExaminerStatusActive {
		t.Fatal("suspended should toggle to active")
	}
}

func TestIsApproved(t *testing.T) {
	for _, status := range []ExaminerStatus{ExaminerStatusAccepted, ExaminerStatusActive, ExaminerStatusSuspended} {
		p := &ExaminerProfile{Status: status}
		if !p.IsApproved() {
			t.Errorf("%s should count as approved", status)
		}
	}
	for _, status := range []ExaminerStatus{ExaminerStatusPending, ExaminerStatusRejected} {
		p := &ExaminerProfile{Status: status}
		if p.IsApproved() {
			t.Errorf("%s should not count as approved", status)
		}
	}
}
