package triage

import (
	"errors"
	"testing"
)

func TestIntakeStartsAtVitalsWithDefaults(t *testing.T) {
	in := NewIntake()
	if in.Stage() != StageVitals {
		t.Errorf("Stage() = %v, want %v", in.Stage(), StageVitals)
	}

	a := in.Assessment()
	if a.Age != DefaultAge || a.SystolicBP != DefaultSystolicBP || a.SpO2 != DefaultSpO2 {
		t.Errorf("defaults not applied: age=%d bp=%d spo2=%d", a.Age, a.SystolicBP, a.SpO2)
	}
	if a.Sex != SexUnset {
		t.Errorf("Sex = %v, want unset", a.Sex)
	}
}

func TestAdvanceBlockedWithoutSex(t *testing.T) {
	in := NewIntake()

	err := in.Advance()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Advance() = %v, want *ValidationError", err)
	}
	if verr.Stage != StageVitals || len(verr.Missing) != 1 || verr.Missing[0] != "Sex" {
		t.Errorf("ValidationError = %+v, want stage 1 missing [Sex]", verr)
	}
	if in.Stage() != StageVitals {
		t.Errorf("stage moved to %v on failed validation", in.Stage())
	}
}

func TestSymptomStageRequiresAllAnswers(t *testing.T) {
	in := NewIntake()
	in.Assessment().Sex = SexMale
	if err := in.Advance(); err != nil {
		t.Fatalf("Advance() to symptoms: %v", err)
	}

	err := in.Advance()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Advance() = %v, want *ValidationError", err)
	}
	if len(verr.Missing) != 6 {
		t.Errorf("Missing = %v, want all six symptom answers", verr.Missing)
	}
}

func TestChestPainTypeRequiredOnlyWhenPresent(t *testing.T) {
	for _, tt := range []struct {
		pain     Answer
		withType bool
		wantPass bool
	}{
		{AnswerNo, false, true},
		{AnswerYes, false, false},
		{AnswerYes, true, true},
	} {
		in := NewIntake()
		a := in.Assessment()
		a.Sex = SexFemale
		if err := in.Advance(); err != nil {
			t.Fatal(err)
		}

		a.SetChestPain(tt.pain)
		if tt.withType {
			a.ChestPainType = ChestPainTight
		}
		a.Radiation = AnswerNo
		a.Sweating = AnswerNo
		a.Nausea = AnswerNo
		a.Dyspnea = AnswerNo
		a.Syncope = AnswerNo

		err := in.Advance()
		if passed := err == nil; passed != tt.wantPass {
			t.Errorf("pain=%v withType=%v: Advance() = %v, want pass=%v", tt.pain, tt.withType, err, tt.wantPass)
		}
	}
}

func TestHistoryStageGatesECGFinding(t *testing.T) {
	in := intakeAtHistory(t)
	a := in.Assessment()
	a.Comorbidity = ComorbidityNone
	a.FamilyHistory = AnswerNo
	a.PersonalHistory = AnswerNo
	a.Troponin = TroponinNegative

	// ECG unavailable: the forced Normal default satisfies validation.
	a.SetECGAvailable(false)
	if err := in.Advance(); err != nil {
		t.Fatalf("Advance() with ECG unavailable: %v", err)
	}
	in.Retreat()

	// ECG available but finding cleared: must block.
	a.SetECGAvailable(true)
	a.ECGFinding = ECGUnset
	err := in.Advance()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Advance() = %v, want *ValidationError", err)
	}
	if len(verr.Missing) != 1 || verr.Missing[0] != "ECG Finding" {
		t.Errorf("Missing = %v, want [ECG Finding]", verr.Missing)
	}
}

func TestRetreatKeepsDataAndNeverValidates(t *testing.T) {
	in := intakeAtHistory(t)
	a := in.Assessment()

	if !in.Retreat() {
		t.Fatal("Retreat() = false at stage 3")
	}
	if in.Stage() != StageSymptoms {
		t.Errorf("Stage() = %v, want %v", in.Stage(), StageSymptoms)
	}
	if a.ChestPain != AnswerNo || a.Sex == SexUnset {
		t.Error("entered data lost on retreat")
	}

	in.Retreat()
	if in.Retreat() {
		t.Error("Retreat() = true at stage 1, want false")
	}
}

func TestAdvanceAtVerdictIsNoOp(t *testing.T) {
	in := intakeAtHistory(t)
	a := in.Assessment()
	a.Comorbidity = ComorbidityNone
	a.FamilyHistory = AnswerNo
	a.PersonalHistory = AnswerNo
	a.Troponin = TroponinNegative
	if err := in.Advance(); err != nil {
		t.Fatal(err)
	}
	if in.Stage() != StageVerdict {
		t.Fatalf("Stage() = %v, want %v", in.Stage(), StageVerdict)
	}

	if err := in.Advance(); err != nil {
		t.Errorf("Advance() at verdict = %v, want nil", err)
	}
	if in.Stage() != StageVerdict {
		t.Errorf("Stage() = %v after terminal advance, want %v", in.Stage(), StageVerdict)
	}
}

func TestResetDiscardsEverything(t *testing.T) {
	in := intakeAtHistory(t)
	oldID := in.Assessment().ID

	in.Reset()
	if in.Stage() != StageVitals {
		t.Errorf("Stage() = %v after reset, want %v", in.Stage(), StageVitals)
	}
	a := in.Assessment()
	if a.ID == oldID {
		t.Error("reset reused the previous assessment")
	}
	if a.Sex != SexUnset || a.ChestPain != AnswerUnset {
		t.Error("reset kept entered answers")
	}
}

// intakeAtHistory walks a fresh intake to stage 3 with benign answers.
func intakeAtHistory(t *testing.T) *Intake {
	t.Helper()
	in := NewIntake()
	a := in.Assessment()
	a.Sex = SexMale
	if err := in.Advance(); err != nil {
		t.Fatal(err)
	}

	a.SetChestPain(AnswerNo)
	a.Radiation = AnswerNo
	a.Sweating = AnswerNo
	a.Nausea = AnswerNo
	a.Dyspnea = AnswerNo
	a.Syncope = AnswerNo
	if err := in.Advance(); err != nil {
		t.Fatal(err)
	}
	return in
}
