package entity

import (
	"reflect"
	"testing"
)

func TestParseCompletedStepsEmpty(t *testing.T) {
	steps := ParseCompletedSteps("")
	if len(steps) != 0 {
		t.Fatalf("expected no steps, got %v", steps)
	}
	if steps == nil {
		t.Fatal("expected empty slice, not nil")
	}
}

func TestParseCompletedStepsSentinel(t *testing.T) {
	steps := ParseCompletedSteps(StepNotifications)
	if !reflect.DeepEqual(steps, ActivationSteps) {
		t.Fatalf("sentinel should expand to the full step list, got %v", steps)
	}
}

func TestParseCompletedStepsList(t *testing.T) {
	steps := ParseCompletedSteps("profile,availability")
	want := []string{"profile", "availability"}
	if !reflect.DeepEqual(steps, want) {
		t.Fatalf("got %v, want %v", steps, want)
	}
}

func TestParseCompletedStepsIgnoresBlanksAndSpaces(t *testing.T) {
	steps := ParseCompletedSteps("profile, services,,payout")
	want := []string{"profile", "services", "payout"}
	if !reflect.DeepEqual(steps, want) {
		t.Fatalf("got %v, want %v", steps, want)
	}
}

func TestAddCompletedStepIdempotent(t *testing.T) {
	state := AddCompletedStep("", StepProfile)
	if state != "profile" {
		t.Fatalf("got %q", state)
	}
	again := AddCompletedStep(state, StepProfile)
	if again != state {
		t.Fatalf("re-adding a step changed state: %q -> %q", state, again)
	}
}

func TestAddCompletedStepCollapsesToSentinel(t *testing.T) {
	// Complete every step out of canonical order; the final state must
	// still collapse to the single sentinel word.
	order := []string{
		StepPayout, StepProfile, StepNotifications, StepServices,
		StepCompliance, StepAvailability, StepDocuments,
	}
	state := ""
	for _, step := range order {
		state = AddCompletedStep(state, step)
	}
	if state != StepNotifications {
		t.Fatalf("expected sentinel %q, got %q", StepNotifications, state)
	}
	if !AllStepsCompleted(state) {
		t.Fatal("sentinel state should report all steps completed")
	}
}

func TestAddCompletedStepAfterSentinelStaysSentinel(t *testing.T) {
	state := AddCompletedStep(StepNotifications, StepProfile)
	if state != StepNotifications {
		t.Fatalf("adding to sentinel state should keep sentinel, got %q", state)
	}
}

func TestAddCompletedStepUnknownStoredVerbatim(t *testing.T) {
	state := AddCompletedStep("profile", "billing")
	if state != "profile,billing" {
		t.Fatalf("got %q", state)
	}
	if AllStepsCompleted(state) {
		t.Fatal("unknown step must not count toward completion")
	}
}

func TestRemoveCompletedStep(t *testing.T) {
	state := RemoveCompletedStep("profile,services", StepProfile)
	if state != "services" {
		t.Fatalf("got %q", state)
	}
}

func TestRemoveCompletedStepToEmpty(t *testing.T) {
	state := RemoveCompletedStep("profile", StepProfile)
	if state != "" {
		t.Fatalf("expected empty string, got %q", state)
	}
}

func TestRemoveCompletedStepFromSentinel(t *testing.T) {
	// The sentinel expands first, so removing one step leaves the other
	// six spelled out.
	state := RemoveCompletedStep(StepNotifications, StepPayout)
	steps := ParseCompletedSteps(state)
	if len(steps) != len(ActivationSteps)-1 {
		t.Fatalf("expected %d steps, got %v", len(ActivationSteps)-1, steps)
	}
	if IsStepCompleted(state, StepPayout) {
		t.Fatal("removed step still reported complete")
	}
	if AllStepsCompleted(state) {
		t.Fatal("state should no longer be complete")
	}
}

func TestIsStepCompleted(t *testing.T) {
	if !IsStepCompleted("profile,services", StepServices) {
		t.Fatal("expected services to be complete")
	}
	if IsStepCompleted("profile,services", StepPayout) {
		t.Fatal("payout should not be complete")
	}
	if !IsStepCompleted(StepNotifications, StepProfile) {
		t.Fatal("sentinel implies every step is complete")
	}
}
