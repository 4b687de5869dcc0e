package triage

import "testing"

// benignAssessment returns a fully answered assessment with every marker
// clinically normal.
func benignAssessment() *Assessment {
	a := NewAssessment()
	a.Sex = SexFemale
	a.SetChestPain(AnswerNo)
	a.Radiation = AnswerNo
	a.Sweating = AnswerNo
	a.Nausea = AnswerNo
	a.Dyspnea = AnswerNo
	a.Syncope = AnswerNo
	a.Comorbidity = ComorbidityNone
	a.FamilyHistory = AnswerNo
	a.PersonalHistory = AnswerNo
	a.SetECGAvailable(false)
	a.SetHbAvailable(false)
	a.Troponin = TroponinNegative
	return a
}

func TestFeaturesBenignVector(t *testing.T) {
	a := benignAssessment()
	got := Features(a)

	want := [FeatureCount]float64{
		30,  // age
		0,   // sex (female)
		120, // systolic
		80,  // diastolic
		72,  // pulse
		16,  // resp
		98,  // spo2
		0, 0, 0, 0, 0, 0, 0, // symptoms
		0, 0, 0, // comorbidity, family hx, personal hx
		0,    // ecg normal
		14.0, // hemoglobin default
		0,    // troponin negative
	}

	if got != want {
		t.Errorf("Features() = %v, want %v", got, want)
	}
}

func TestFeaturesEncodesSetValues(t *testing.T) {
	a := benignAssessment()
	a.Age = 55
	a.Sex = SexMale
	a.SystolicBP = 170
	a.SetChestPain(AnswerYes)
	a.ChestPainType = ChestPainCrushing
	a.Comorbidity = ComorbidityDyslipidemia
	a.SetECGAvailable(true)
	a.ECGFinding = ECGPathologicalQ
	a.SetHbAvailable(true)
	a.Hemoglobin = 19.8
	a.Troponin = TroponinPositive

	got := Features(a)

	checks := []struct {
		idx  int
		want float64
		name string
	}{
		{0, 55, "age"},
		{1, 1, "sex male"},
		{2, 170, "systolic"},
		{7, 1, "chest pain"},
		{8, 2, "crushing pain"},
		{14, 3, "dyslipidemia"},
		{17, 5, "pathological q"},
		{18, 19.8, "hemoglobin"},
		{19, 1, "troponin positive"},
	}
	for _, c := range checks {
		if got[c.idx] != c.want {
			t.Errorf("Features()[%d] (%s) = %v, want %v", c.idx, c.name, got[c.idx], c.want)
		}
	}
}

// A stale pain character must not leak into the vector once chest pain is
// answered No, and unavailable diagnostics always contribute defaults.
func TestFeaturesGatedDefaults(t *testing.T) {
	a := benignAssessment()
	a.SetChestPain(AnswerYes)
	a.ChestPainType = ChestPainCrushing
	a.SetChestPain(AnswerNo)

	a.SetECGAvailable(true)
	a.ECGFinding = ECGSTElevation
	a.ECGAvailable = false // bypass setter to simulate a stale finding

	a.SetHbAvailable(true)
	a.Hemoglobin = 22.0
	a.HbAvailable = false

	got := Features(a)
	if got[8] != 0 {
		t.Errorf("chest pain type column = %v, want 0 after pain cleared", got[8])
	}
	if got[17] != 0 {
		t.Errorf("ecg column = %v, want 0 when unavailable", got[17])
	}
	if got[18] != DefaultHemoglobin {
		t.Errorf("hemoglobin column = %v, want %v when unavailable", got[18], DefaultHemoglobin)
	}
}

func TestFeaturesPure(t *testing.T) {
	a := benignAssessment()
	first := Features(a)
	second := Features(a)
	if first != second {
		t.Error("Features() is not deterministic for an unchanged assessment")
	}
}
