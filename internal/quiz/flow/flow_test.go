package flow

import "testing"

func TestWizard_ListedZoneAutoAdvances(t *testing.T) {
	w := NewWizard()

	if !w.SetPainZone("schiena") {
		t.Fatal("listed zone rejected")
	}
	if w.Step() != StepDuration {
		t.Fatalf("expected auto-advance to duration, got %v", w.Step())
	}
}

func TestWizard_AltroRequiresFreeText(t *testing.T) {
	w := NewWizard()

	if !w.SetPainZone(PainZoneOther) {
		t.Fatal("altro rejected")
	}
	if w.Step() != StepPainZone {
		t.Fatalf("altro must not auto-advance, got %v", w.Step())
	}
	if w.Next() {
		t.Fatal("advanced without free text")
	}

	w.SetPainZoneOther("anca destra")
	if !w.Next() {
		t.Fatal("could not advance after entering free text")
	}
	if w.Step() != StepDuration {
		t.Fatalf("expected duration step, got %v", w.Step())
	}
}

func TestWizard_NextBlockedOnIncompleteStep(t *testing.T) {
	w := NewWizard()
	w.SetPainZone("collo")

	// On duration with no answer yet.
	if w.Next() {
		t.Fatal("advanced past duration without an answer")
	}
	if w.SetDuration("due_anni") {
		t.Fatal("accepted an unlisted duration")
	}
	if !w.SetDuration("1_3_mesi") {
		t.Fatal("listed duration rejected")
	}
	if !w.Next() {
		t.Fatal("could not advance with a valid duration")
	}
	if w.Step() != StepIntensity {
		t.Fatalf("expected intensity step, got %v", w.Step())
	}
}

func TestWizard_BackPreservesAnswers(t *testing.T) {
	w := NewWizard()
	w.SetPainZone("ginocchio")
	w.SetDuration("meno_1_settimana")
	w.Next()

	if !w.Back() {
		t.Fatal("back failed mid-flow")
	}
	if w.Step() != StepDuration {
		t.Fatalf("expected duration step, got %v", w.Step())
	}
	if w.Draft().Duration != "meno_1_settimana" || w.Draft().PainZone != "ginocchio" {
		t.Fatalf("answers lost on back: %+v", w.Draft())
	}

	// Back is unconditional until the first step.
	if !w.Back() {
		t.Fatal("back to first step failed")
	}
	if w.Back() {
		t.Fatal("back must stop at the first step")
	}
}

func TestWizard_FullRunReachesCompleted(t *testing.T) {
	w := NewWizard()
	w.SetPainZone("spalla")
	w.SetDuration("piu_3_mesi")
	w.Next()
	w.SetIntensity(8)
	w.Next()
	w.SetCause("sport")
	w.Next()
	w.SetContact("Mario Rossi", nil, "+39 333 1234567", "a@b.co", "")

	if w.Step() != StepContact {
		t.Fatalf("expected contact step before submit, got %v", w.Step())
	}
	if !w.Next() {
		t.Fatal("could not submit a complete draft")
	}
	if w.Step() != StepCompleted {
		t.Fatalf("expected terminal state, got %v", w.Step())
	}
	if w.Next() {
		t.Fatal("terminal state must not advance")
	}
	if w.Back() {
		t.Fatal("terminal state must not go back")
	}
}

func TestNewDraft_IntensityDefault(t *testing.T) {
	if NewDraft().Intensity != 5 {
		t.Fatalf("expected intensity default 5, got %d", NewDraft().Intensity)
	}
}

func TestSetIntensity_Bounds(t *testing.T) {
	w := NewWizard()
	if w.SetIntensity(0) || w.SetIntensity(11) {
		t.Fatal("accepted an out-of-scale intensity")
	}
	if !w.SetIntensity(1) || !w.SetIntensity(10) {
		t.Fatal("rejected a valid scale boundary")
	}
}

func TestValidateContact(t *testing.T) {
	base := func() Draft {
		d := NewDraft()
		d.Name = "Mario Rossi"
		d.Phone = "+39 333 1234567"
		d.Email = "a@b.co"
		return d
	}

	if errs := ValidateContact(base()); len(errs) != 0 {
		t.Fatalf("valid contact rejected: %v", errs)
	}

	cases := []struct {
		name   string
		mutate func(*Draft)
		field  string
	}{
		{"empty name", func(d *Draft) { d.Name = "   " }, "name"},
		{"short phone", func(d *Draft) { d.Phone = "123" }, "phone"},
		{"alpha phone", func(d *Draft) { d.Phone = "telefonami" }, "phone"},
		{"malformed email", func(d *Draft) { d.Email = "not-an-email" }, "email"},
		{"email without tld", func(d *Draft) { d.Email = "a@b" }, "email"},
		{"age zero", func(d *Draft) { age := 0; d.Age = &age }, "age"},
		{"age too high", func(d *Draft) { age := 121; d.Age = &age }, "age"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := base()
			tc.mutate(&d)
			errs := ValidateContact(d)
			if _, ok := errs[tc.field]; !ok {
				t.Fatalf("expected error on %q, got %v", tc.field, errs)
			}
		})
	}

	// Age is optional.
	d := base()
	d.Age = nil
	if errs := ValidateContact(d); len(errs) != 0 {
		t.Fatalf("missing age must be accepted: %v", errs)
	}
}
