package entity

import "strings"

// Onboarding step identifiers in their canonical order.
const (
	StepProfile       = "profile"
	StepServices      = "services"
	StepAvailability  = "availability"
	StepPayout        = "payout"
	StepDocuments     = "documents"
	StepCompliance    = "compliance"
	StepNotifications = "notifications"
)

// ActivationSteps is the fixed ordered onboarding step list.
var ActivationSteps = []string{
	StepProfile,
	StepServices,
	StepAvailability,
	StepPayout,
	StepDocuments,
	StepCompliance,
	StepNotifications,
}

// completedStepsSentinel is the legacy encoding of "all steps completed".
// Historic rows store this single word instead of the full comma list, and
// downstream consumers compare against it byte-for-byte, so the collapse
// is a wire contract.
const completedStepsSentinel = StepNotifications

// ParseCompletedSteps decodes the serialized completed-step set. Empty
// input means no steps; the sentinel expands to the full step list.
func ParseCompletedSteps(state string) []string {
	if state == "" {
		return []string{}
	}
	if state == completedStepsSentinel {
		steps := make([]string, len(ActivationSteps))
		copy(steps, ActivationSteps)
		return steps
	}
	parts := strings.Split(state, ",")
	steps := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			steps = append(steps, p)
		}
	}
	return steps
}

// AddCompletedStep marks stepID complete and re-serializes. Adding an
// already-present step is a no-op. Once every canonical step is present
// the state collapses to the sentinel. Unknown step IDs are stored
// verbatim; this layer does not validate against the step catalog.
func AddCompletedStep(state, stepID string) string {
	steps := ParseCompletedSteps(state)
	for _, s := range steps {
		if s == stepID {
			return serializeSteps(steps)
		}
	}
	steps = append(steps, stepID)
	return serializeSteps(steps)
}

// RemoveCompletedStep unmarks stepID. An empty result serializes to the
// empty string, never to a null.
func RemoveCompletedStep(state, stepID string) string {
	steps := ParseCompletedSteps(state)
	kept := steps[:0]
	for _, s := range steps {
		if s != stepID {
			kept = append(kept, s)
		}
	}
	return serializeSteps(kept)
}

// IsStepCompleted reports membership of stepID in the completed set.
func IsStepCompleted(state, stepID string) bool {
	for _, s := range ParseCompletedSteps(state) {
		if s == stepID {
			return true
		}
	}
	return false
}

// AllStepsCompleted reports whether state encodes a fully onboarded
// examiner.
func AllStepsCompleted(state string) bool {
	return containsAllSteps(ParseCompletedSteps(state))
}

func serializeSteps(steps []string) string {
	if containsAllSteps(steps) {
		return completedStepsSentinel
	}
	return strings.Join(steps, ",")
}

// containsAllSteps is order-independent containment of the canonical list.
func containsAllSteps(steps []string) bool {
	for _, want := range ActivationSteps {
		found := false
		for _, s := range steps {
			if s == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
