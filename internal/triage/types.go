package triage

// Sex is the patient's recorded sex.
type Sex int

const (
	SexUnset Sex = iota
	SexMale
	SexFemale
)

// Code returns the model encoding: Male=1, Female=0.
func (s Sex) Code() float64 {
	if s == SexMale {
		return 1
	}
	return 0
}

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	}
	return ""
}

// Answer is a tri-state yes/no field: unset until the operator records it.
type Answer int

const (
	AnswerUnset Answer = iota
	AnswerNo
	AnswerYes
)

// Code returns the model encoding: Yes=1, No=0 (unset counts as No).
func (a Answer) Code() float64 {
	if a == AnswerYes {
		return 1
	}
	return 0
}

func (a Answer) String() string {
	switch a {
	case AnswerNo:
		return "No"
	case AnswerYes:
		return "Yes"
	}
	return ""
}

// ChestPainType is the character of reported chest pain.
type ChestPainType int

const (
	ChestPainUnset ChestPainType = iota
	ChestPainTight
	ChestPainHeavy
	ChestPainCrushing
)

// Code returns the model encoding: Tight=0, Heavy=1, Crushing=2.
// Unset contributes the default code 0.
func (c ChestPainType) Code() float64 {
	switch c {
	case ChestPainHeavy:
		return 1
	case ChestPainCrushing:
		return 2
	}
	return 0
}

func (c ChestPainType) String() string {
	switch c {
	case ChestPainTight:
		return "Tight"
	case ChestPainHeavy:
		return "Heavy"
	case ChestPainCrushing:
		return "Crushing"
	}
	return ""
}

// Comorbidity is the patient's primary pre-existing condition.
type Comorbidity int

const (
	ComorbidityUnset Comorbidity = iota
	ComorbidityNone
	ComorbidityHypertension
	ComorbidityDiabetes
	ComorbidityDyslipidemia
)

// Code returns the model encoding: None=0, Hypertension=1, Diabetes=2, Dyslipidemia=3.
func (c Comorbidity) Code() float64 {
	switch c {
	case ComorbidityHypertension:
		return 1
	case ComorbidityDiabetes:
		return 2
	case ComorbidityDyslipidemia:
		return 3
	}
	return 0
}

func (c Comorbidity) String() string {
	switch c {
	case ComorbidityNone:
		return "None"
	case ComorbidityHypertension:
		return "Hypertension"
	case ComorbidityDiabetes:
		return "Diabetes"
	case ComorbidityDyslipidemia:
		return "Dyslipidemia"
	}
	return ""
}

// ECGFinding is the interpreted ECG result.
type ECGFinding int

const (
	ECGUnset ECGFinding = iota
	ECGNormal
	ECGSTElevation
	ECGSTDepression
	ECGTWaveInversion
	ECGLBBB
	ECGPathologicalQ
)

// Code returns the model encoding: Normal=0 through Pathological Q Waves=5.
func (e ECGFinding) Code() float64 {
	switch e {
	case ECGSTElevation:
		return 1
	case ECGSTDepression:
		return 2
	case ECGTWaveInversion:
		return 3
	case ECGLBBB:
		return 4
	case ECGPathologicalQ:
		return 5
	}
	return 0
}

// Severe reports whether the finding is one of the confirmed-event patterns.
func (e ECGFinding) Severe() bool {
	switch e {
	case ECGSTElevation, ECGSTDepression, ECGPathologicalQ:
		return true
	}
	return false
}

func (e ECGFinding) String() string {
	switch e {
	case ECGNormal:
		return "Normal"
	case ECGSTElevation:
		return "ST Elevation"
	case ECGSTDepression:
		return "ST Depression"
	case ECGTWaveInversion:
		return "T Wave Inversion"
	case ECGLBBB:
		return "LBBB"
	case ECGPathologicalQ:
		return "Pathological Q Waves"
	}
	return ""
}

// Troponin is the rapid-kit Troponin T result.
type Troponin int

const (
	TroponinUnset Troponin = iota
	TroponinNegative
	TroponinPositive
)

// Code returns the model encoding: Positive=1, Negative=0.
func (t Troponin) Code() float64 {
	if t == TroponinPositive {
		return 1
	}
	return 0
}

func (t Troponin) String() string {
	switch t {
	case TroponinNegative:
		return "Negative"
	case TroponinPositive:
		return "Positive"
	}
	return ""
}

// Zone is the three-level triage verdict, ordered Green < Amber < Red.
type Zone int

const (
	ZoneGreen Zone = iota
	ZoneAmber
	ZoneRed
)

func (z Zone) String() string {
	switch z {
	case ZoneGreen:
		return "Green"
	case ZoneAmber:
		return "Amber"
	case ZoneRed:
		return "Red"
	}
	return ""
}

// Severity tags a rule finding.
type Severity int

const (
	SeverityAbnormal Severity = iota
	SeverityCritical
)

func (s Severity) String() string {
	if s == SeverityCritical {
		return "critical"
	}
	return "abnormal"
}

// Finding is a single rule-evaluator output: a fired clinical rule with a
// display name and the recommended field action.
type Finding struct {
	RuleID string
	Name   string
	Action string
}
