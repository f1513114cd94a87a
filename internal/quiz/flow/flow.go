// Package flow models the five-step assessment wizard as a pure domain:
// step ordering, completion rules, and answer validation. It has no
// transport or persistence concerns.
package flow

// Step identifies a wizard position.
type Step int

const (
	StepPainZone Step = iota
	StepDuration
	StepIntensity
	StepCause
	StepContact
	// StepCompleted is the terminal state after a successful submission.
	// It sits outside the five-step sequence.
	StepCompleted
)

// StepCount is the number of answerable steps.
const StepCount = 5

func (s Step) String() string {
	switch s {
	case StepPainZone:
		return "pain_zone"
	case StepDuration:
		return "duration"
	case StepIntensity:
		return "intensity"
	case StepCause:
		return "cause"
	case StepContact:
		return "contact"
	case StepCompleted:
		return "completed"
	}
	return "unknown"
}

// Draft accumulates the answers across steps.
type Draft struct {
	PainZone      string
	PainZoneOther string
	Duration      string
	Intensity     int
	Cause         string
	Name          string
	Age           *int
	Phone         string
	Email         string
	Notes         string
}

// NewDraft returns an empty draft with the intensity scale at its
// starting position.
func NewDraft() Draft {
	return Draft{Intensity: IntensityDefault}
}

// Wizard tracks a draft moving through the steps.
type Wizard struct {
	step  Step
	draft Draft
}

// NewWizard starts a wizard at the first step.
func NewWizard() *Wizard {
	return &Wizard{step: StepPainZone, draft: NewDraft()}
}

// Step returns the current position.
func (w *Wizard) Step() Step { return w.step }

// Draft returns the current answers.
func (w *Wizard) Draft() Draft { return w.draft }

// SetPainZone records the zone choice. Picking a listed zone advances
// immediately; "altro" stays on the step so free text can be entered.
func (w *Wizard) SetPainZone(zone string) bool {
	if !ValidPainZone(zone) {
		return false
	}
	w.draft.PainZone = zone
	if zone != PainZoneOther {
		w.draft.PainZoneOther = ""
		w.step = StepDuration
	}
	return true
}

// SetPainZoneOther records the free-text zone description.
func (w *Wizard) SetPainZoneOther(text string) {
	w.draft.PainZoneOther = text
}

// SetDuration records the duration choice.
func (w *Wizard) SetDuration(d string) bool {
	if !ValidDuration(d) {
		return false
	}
	w.draft.Duration = d
	return true
}

// SetIntensity records the 1-10 scale position.
func (w *Wizard) SetIntensity(v int) bool {
	if !ValidIntensity(v) {
		return false
	}
	w.draft.Intensity = v
	return true
}

// SetCause records the cause choice.
func (w *Wizard) SetCause(cause string) bool {
	if !ValidCause(cause) {
		return false
	}
	w.draft.Cause = cause
	return true
}

// SetContact records the contact fields.
func (w *Wizard) SetContact(name string, age *int, phone, email, notes string) {
	w.draft.Name = name
	w.draft.Age = age
	w.draft.Phone = phone
	w.draft.Email = email
	w.draft.Notes = notes
}

// stepComplete reports whether the current step has a valid answer.
func (w *Wizard) stepComplete() bool {
	switch w.step {
	case StepPainZone:
		if w.draft.PainZone == PainZoneOther {
			return w.draft.PainZoneOther != ""
		}
		return ValidPainZone(w.draft.PainZone)
	case StepDuration:
		return ValidDuration(w.draft.Duration)
	case StepIntensity:
		return ValidIntensity(w.draft.Intensity)
	case StepCause:
		return ValidCause(w.draft.Cause)
	case StepContact:
		return len(ValidateContact(w.draft)) == 0
	}
	return false
}

// Next advances to the following step when the current answer is
// complete. From the contact step it moves to the terminal state.
func (w *Wizard) Next() bool {
	if w.step >= StepCompleted || !w.stepComplete() {
		return false
	}
	w.step++
	return true
}

// Back moves one step backwards, keeping every answer already given.
// It never fails on an answerable step.
func (w *Wizard) Back() bool {
	if w.step == StepPainZone || w.step == StepCompleted {
		return false
	}
	w.step--
	return true
}
