package triage

import "github.com/google/uuid"

// Default values applied when an assessment is created or a field's data
// source is unavailable. Hemoglobin and ECG defaults are clinically normal
// so the feature vector stays fully populated either way.
const (
	DefaultAge         = 30
	DefaultSystolicBP  = 120
	DefaultDiastolicBP = 80
	DefaultPulse       = 72
	DefaultRespRate    = 16
	DefaultSpO2        = 98
	DefaultHemoglobin  = 14.0
)

// Input ranges enforced by the intake forms.
const (
	MinAge, MaxAge               = 18, 90
	MinSystolic, MaxSystolic     = 60, 240
	MinDiastolic, MaxDiastolic   = 40, 150
	MinPulse, MaxPulse           = 40, 220
	MinRespRate, MaxRespRate     = 8, 50
	MinSpO2, MaxSpO2             = 60, 100
	MinHemoglobin, MaxHemoglobin = 5.0, 25.0
)

// Assessment is the record accumulated across the four intake stages.
// It is created at stage 1, mutated only through the intake as the operator
// advances, and discarded on reset. There is no persistence.
type Assessment struct {
	ID uuid.UUID

	// Vitals (stage 1).
	Age         int
	Sex         Sex
	SystolicBP  int
	DiastolicBP int
	Pulse       int
	RespRate    int
	SpO2        int

	// Symptoms (stage 2).
	ChestPain     Answer
	ChestPainType ChestPainType
	Radiation     Answer
	Sweating      Answer
	Nausea        Answer
	Dyspnea       Answer
	Syncope       Answer

	// History & diagnostics (stage 3).
	Comorbidity     Comorbidity
	FamilyHistory   Answer
	PersonalHistory Answer
	ECGAvailable    bool
	ECGFinding      ECGFinding
	HbAvailable     bool
	Hemoglobin      float64
	Troponin        Troponin

	// Verdict, set only by the session controller at stage 4.
	Verdict *Verdict
}

// NewAssessment returns an assessment populated with intake defaults.
func NewAssessment() *Assessment {
	return &Assessment{
		ID:          uuid.New(),
		Age:         DefaultAge,
		SystolicBP:  DefaultSystolicBP,
		DiastolicBP: DefaultDiastolicBP,
		Pulse:       DefaultPulse,
		RespRate:    DefaultRespRate,
		SpO2:        DefaultSpO2,
		ECGFinding:  ECGNormal,
		Hemoglobin:  DefaultHemoglobin,
	}
}

// SetChestPain records chest-pain presence. Clearing the answer to No drops
// any previously chosen pain character: the character is meaningful iff
// chest pain is Yes.
func (a *Assessment) SetChestPain(ans Answer) {
	a.ChestPain = ans
	if ans != AnswerYes {
		a.ChestPainType = ChestPainUnset
	}
}

// SetECGAvailable records whether an ECG reading exists. When unavailable
// the finding is forced to Normal so downstream consumers always see a
// populated value.
func (a *Assessment) SetECGAvailable(avail bool) {
	a.ECGAvailable = avail
	if !avail {
		a.ECGFinding = ECGNormal
	}
}

// SetHbAvailable records whether a hemoglobin test exists. When unavailable
// the value is forced to the clinically normal default.
func (a *Assessment) SetHbAvailable(avail bool) {
	a.HbAvailable = avail
	if !avail {
		a.Hemoglobin = DefaultHemoglobin
	}
}

// EffectiveECG returns the ECG finding with the unavailable-data default
// applied, regardless of any stale stored value.
func (a *Assessment) EffectiveECG() ECGFinding {
	if !a.ECGAvailable {
		return ECGNormal
	}
	return a.ECGFinding
}

// EffectiveHemoglobin returns the hemoglobin value with the
// unavailable-data default applied.
func (a *Assessment) EffectiveHemoglobin() float64 {
	if !a.HbAvailable {
		return DefaultHemoglobin
	}
	return a.Hemoglobin
}

// EffectiveChestPainType returns the pain character, or the default code
// source (unset) when no chest pain is present.
func (a *Assessment) EffectiveChestPainType() ChestPainType {
	if a.ChestPain != AnswerYes {
		return ChestPainUnset
	}
	return a.ChestPainType
}
