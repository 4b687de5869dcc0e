package triage

// Stage is one of the four sequential intake phases.
type Stage int

const (
	StageVitals Stage = iota + 1
	StageSymptoms
	StageHistory
	StageVerdict
)

func (s Stage) String() string {
	switch s {
	case StageVitals:
		return "Core Vitals"
	case StageSymptoms:
		return "Clinical Factors"
	case StageHistory:
		return "History & Diagnostics"
	case StageVerdict:
		return "Diagnostic Triage Results"
	}
	return ""
}

// Intake is the state machine governing field collection. Forward movement
// is gated by per-stage validation; backward movement never re-validates
// and never loses entered data.
type Intake struct {
	asmt  *Assessment
	stage Stage
}

// NewIntake starts a fresh intake at stage 1 with a default assessment.
func NewIntake() *Intake {
	return &Intake{
		asmt:  NewAssessment(),
		stage: StageVitals,
	}
}

// Stage returns the current stage.
func (in *Intake) Stage() Stage { return in.stage }

// Assessment returns the record under collection. The intake's owner is the
// sole writer; no other component retains a reference.
func (in *Intake) Assessment() *Assessment { return in.asmt }

// Advance validates the current stage and moves forward on success.
// On failure it returns a *ValidationError and the stage is unchanged.
// Advancing from the terminal stage is a no-op.
func (in *Intake) Advance() error {
	if in.stage >= StageVerdict {
		return nil
	}
	if missing := in.missingFields(in.stage); len(missing) > 0 {
		return &ValidationError{Stage: in.stage, Missing: missing}
	}
	in.stage++
	return nil
}

// Retreat steps back one stage without validating. Returns false at stage 1.
func (in *Intake) Retreat() bool {
	if in.stage <= StageVitals {
		return false
	}
	in.stage--
	return true
}

// Reset discards the assessment, restores defaults and returns to stage 1.
func (in *Intake) Reset() {
	in.asmt = NewAssessment()
	in.stage = StageVitals
}

// missingFields returns the mandatory fields not yet set for the stage.
// Numeric vitals always carry defaults, so only the enumerated answers gate
// forward navigation.
func (in *Intake) missingFields(s Stage) []string {
	a := in.asmt
	var missing []string

	switch s {
	case StageVitals:
		if a.Sex == SexUnset {
			missing = append(missing, "Sex")
		}

	case StageSymptoms:
		if a.ChestPain == AnswerUnset {
			missing = append(missing, "Chest Pain Present")
		}
		if a.ChestPain == AnswerYes && a.ChestPainType == ChestPainUnset {
			missing = append(missing, "Type of Pain")
		}
		if a.Radiation == AnswerUnset {
			missing = append(missing, "Radiation of Pain")
		}
		if a.Sweating == AnswerUnset {
			missing = append(missing, "Sweating")
		}
		if a.Nausea == AnswerUnset {
			missing = append(missing, "Nausea / Vomiting")
		}
		if a.Dyspnea == AnswerUnset {
			missing = append(missing, "Dyspnoea on Exertion")
		}
		if a.Syncope == AnswerUnset {
			missing = append(missing, "Syncope")
		}

	case StageHistory:
		if a.Comorbidity == ComorbidityUnset {
			missing = append(missing, "Primary Comorbidity")
		}
		if a.FamilyHistory == AnswerUnset {
			missing = append(missing, "Family History of CVD")
		}
		if a.PersonalHistory == AnswerUnset {
			missing = append(missing, "Personal History of CVD")
		}
		if a.ECGAvailable && a.ECGFinding == ECGUnset {
			missing = append(missing, "ECG Finding")
		}
		if a.Troponin == TroponinUnset {
			missing = append(missing, "Troponin T")
		}
	}

	return missing
}
