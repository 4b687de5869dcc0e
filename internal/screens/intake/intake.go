package intake

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/barhechalo/arogyam/internal/model"
	"github.com/barhechalo/arogyam/internal/screen"
	"github.com/barhechalo/arogyam/internal/triage"
	"github.com/barhechalo/arogyam/internal/ui/components"
	"github.com/barhechalo/arogyam/internal/ui/layout"
)

// fieldID identifies an intake form field. The IDs double as keys into the
// clinical tooltip library.
type fieldID string

const (
	fAge        fieldID = "age"
	fSex        fieldID = "sex"
	fSystolic   fieldID = "systolic"
	fDiastolic  fieldID = "diastolic"
	fPulse      fieldID = "pulse"
	fResp       fieldID = "resp"
	fSpO2       fieldID = "spo2"
	fChestPain  fieldID = "chest-pain"
	fPainType   fieldID = "chest-pain-type"
	fRadiation  fieldID = "radiation"
	fSweating   fieldID = "sweating"
	fNausea     fieldID = "nausea"
	fDyspnea    fieldID = "doe"
	fSyncope    fieldID = "syncope"
	fComorb     fieldID = "comorbidity"
	fFamilyHx   fieldID = "family-history"
	fPersonalHx fieldID = "personal-history"
	fECGAvail   fieldID = "ecg-available"
	fECG        fieldID = "ecg"
	fHbAvail    fieldID = "hb-available"
	fHemoglobin fieldID = "hemoglobin"
	fTroponin   fieldID = "troponin"
)

// IntakeScreen is the four-stage cardiac assessment wizard. It owns the
// session controller; every widget edit is written through to the
// assessment immediately so stage validation always sees current values.
type IntakeScreen struct {
	ctrl *triage.Controller

	// Stage 1: core vitals.
	age       components.NumberInput
	sex       components.RadioGroup
	systolic  components.NumberInput
	diastolic components.NumberInput
	pulse     components.NumberInput
	resp      components.NumberInput
	spo2      components.Slider

	// Stage 2: clinical factors.
	chestPain components.RadioGroup
	painType  components.RadioGroup
	radiation components.RadioGroup
	sweating  components.RadioGroup
	nausea    components.RadioGroup
	dyspnea   components.RadioGroup
	syncope   components.RadioGroup

	// Stage 3: history and field diagnostics.
	comorbidity components.Select
	familyHx    components.RadioGroup
	personalHx  components.RadioGroup
	ecgAvail    components.Toggle
	ecgFinding  components.Select
	hbAvail     components.Toggle
	hemoglobin  components.Slider
	troponin    components.RadioGroup

	focus  int
	errMsg string
}

var _ screen.Screen = (*IntakeScreen)(nil)
var _ screen.KeyHintProvider = (*IntakeScreen)(nil)

// New creates the wizard over a fresh session bound to the loaded
// scaler/model pair.
func New(scaler model.Scaler, predictor model.Predictor) *IntakeScreen {
	s := &IntakeScreen{
		ctrl: triage.NewController(scaler, predictor),
	}
	s.initWidgets()
	return s
}

// initWidgets rebuilds every form widget from the assessment defaults.
// Called at construction and on NEW ASSESSMENT.
func (s *IntakeScreen) initWidgets() {
	a := s.ctrl.Assessment()

	s.age = components.NewNumberInput(a.Age, triage.MinAge, triage.MaxAge)
	s.sex = components.NewRadioGroup("Male", "Female")
	s.systolic = components.NewNumberInput(a.SystolicBP, triage.MinSystolic, triage.MaxSystolic)
	s.diastolic = components.NewNumberInput(a.DiastolicBP, triage.MinDiastolic, triage.MaxDiastolic)
	s.pulse = components.NewNumberInput(a.Pulse, triage.MinPulse, triage.MaxPulse)
	s.resp = components.NewNumberInput(a.RespRate, triage.MinRespRate, triage.MaxRespRate)
	s.spo2 = components.NewSlider(float64(a.SpO2), triage.MinSpO2, triage.MaxSpO2, 1, "%.0f%%", 30)

	s.chestPain = components.NewRadioGroup("No", "Yes")
	s.painType = components.NewRadioGroup("Tight", "Heavy", "Crushing")
	s.radiation = components.NewRadioGroup("No", "Yes")
	s.sweating = components.NewRadioGroup("No", "Yes")
	s.nausea = components.NewRadioGroup("No", "Yes")
	s.dyspnea = components.NewRadioGroup("No", "Yes")
	s.syncope = components.NewRadioGroup("No", "Yes")

	s.comorbidity = components.NewSelect("None", "Hypertension", "Diabetes", "Dyslipidemia")
	s.familyHx = components.NewRadioGroup("No", "Yes")
	s.personalHx = components.NewRadioGroup("No", "Yes")
	s.ecgAvail = components.NewToggle(false)
	s.ecgFinding = components.NewSelect(
		"Normal", "ST Elevation", "ST Depression",
		"T Wave Inversion", "LBBB", "Pathological Q Waves",
	)
	s.hbAvail = components.NewToggle(false)
	s.hemoglobin = components.NewSlider(a.Hemoglobin, triage.MinHemoglobin, triage.MaxHemoglobin, 0.1, "%.1f g/dL", 30)
	s.troponin = components.NewRadioGroup("Negative", "Positive")
}

func (s *IntakeScreen) Title() string {
	return "HEART DISEASE TRIAGE"
}

func (s *IntakeScreen) Init() tea.Cmd {
	return s.focusCurrent()
}

func (s *IntakeScreen) KeyHints() []layout.KeyHint {
	if s.ctrl.Stage() == triage.StageVerdict {
		return []layout.KeyHint{
			{Key: "N", Description: "New assessment"},
			{Key: "Ctrl+P", Description: "Previous page"},
			{Key: "Esc", Description: "Menu"},
		}
	}

	next := "Next page"
	if s.ctrl.Stage() == triage.StageHistory {
		next = "Run diagnosis"
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←/→", Description: "Choose"},
		{Key: "Ctrl+N", Description: next},
		{Key: "Ctrl+P", Description: "Previous page"},
		{Key: "Esc", Description: "Menu"},
	}
}

// visibleFields returns the focusable fields for the current stage, in
// display order. Conditional fields appear only while their gate is open.
func (s *IntakeScreen) visibleFields() []fieldID {
	a := s.ctrl.Assessment()

	switch s.ctrl.Stage() {
	case triage.StageVitals:
		return []fieldID{fAge, fSex, fSystolic, fDiastolic, fPulse, fResp, fSpO2}

	case triage.StageSymptoms:
		fs := []fieldID{fChestPain}
		if a.ChestPain == triage.AnswerYes {
			fs = append(fs, fPainType)
		}
		return append(fs, fRadiation, fSweating, fNausea, fDyspnea, fSyncope)

	case triage.StageHistory:
		fs := []fieldID{fComorb, fFamilyHx, fPersonalHx, fECGAvail}
		if a.ECGAvailable {
			fs = append(fs, fECG)
		}
		fs = append(fs, fHbAvail)
		if a.HbAvailable {
			fs = append(fs, fHemoglobin)
		}
		return append(fs, fTroponin)
	}

	return nil
}

func (s *IntakeScreen) focusedField() fieldID {
	fs := s.visibleFields()
	if len(fs) == 0 {
		return ""
	}
	if s.focus >= len(fs) {
		s.focus = len(fs) - 1
	}
	return fs[s.focus]
}

func (s *IntakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Non-key messages (cursor blink and the like) still belong to
		// the focused widget.
		return s, s.updateFocused(msg)
	}

	if s.ctrl.Stage() == triage.StageVerdict {
		return s.updateVerdict(kmsg)
	}

	switch kmsg.String() {
	case "ctrl+n":
		s.errMsg = ""
		if err := s.ctrl.Advance(); err != nil {
			s.errMsg = navErrorMessage(err)
			return s, nil
		}
		s.blurAll()
		s.focus = 0
		return s, s.focusCurrent()

	case "ctrl+p":
		s.errMsg = ""
		if s.ctrl.Retreat() {
			s.blurAll()
			s.focus = 0
			return s, s.focusCurrent()
		}
		return s, nil

	case "tab":
		return s, s.moveFocus(1)

	case "shift+tab":
		return s, s.moveFocus(-1)
	}

	cmd := s.updateFocused(msg)
	s.syncAssessment()
	return s, cmd
}

func (s *IntakeScreen) updateVerdict(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "n":
		s.ctrl.Reset()
		s.initWidgets()
		s.focus = 0
		s.errMsg = ""
		return s, s.focusCurrent()
	case "ctrl+p":
		s.ctrl.Retreat()
		s.focus = 0
		return s, s.focusCurrent()
	}
	return s, nil
}

// navErrorMessage formats Advance failures for the status line.
func navErrorMessage(err error) string {
	var verr *triage.ValidationError
	if errors.As(err, &verr) {
		return "⚠ Please complete all mandatory (*) fields: " + strings.Join(verr.Missing, ", ")
	}
	var ierr *triage.InferenceError
	if errors.As(err, &ierr) {
		return "ENGINE FAULT: " + ierr.Error()
	}
	return err.Error()
}

// updateFocused forwards the message to the widget under focus.
func (s *IntakeScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch s.focusedField() {
	case fAge:
		s.age, cmd = s.age.Update(msg)
	case fSex:
		s.sex, cmd = s.sex.Update(msg)
	case fSystolic:
		s.systolic, cmd = s.systolic.Update(msg)
	case fDiastolic:
		s.diastolic, cmd = s.diastolic.Update(msg)
	case fPulse:
		s.pulse, cmd = s.pulse.Update(msg)
	case fResp:
		s.resp, cmd = s.resp.Update(msg)
	case fSpO2:
		s.spo2, cmd = s.spo2.Update(msg)
	case fChestPain:
		s.chestPain, cmd = s.chestPain.Update(msg)
	case fPainType:
		s.painType, cmd = s.painType.Update(msg)
	case fRadiation:
		s.radiation, cmd = s.radiation.Update(msg)
	case fSweating:
		s.sweating, cmd = s.sweating.Update(msg)
	case fNausea:
		s.nausea, cmd = s.nausea.Update(msg)
	case fDyspnea:
		s.dyspnea, cmd = s.dyspnea.Update(msg)
	case fSyncope:
		s.syncope, cmd = s.syncope.Update(msg)
	case fComorb:
		s.comorbidity, cmd = s.comorbidity.Update(msg)
	case fFamilyHx:
		s.familyHx, cmd = s.familyHx.Update(msg)
	case fPersonalHx:
		s.personalHx, cmd = s.personalHx.Update(msg)
	case fECGAvail:
		s.ecgAvail, cmd = s.ecgAvail.Update(msg)
	case fECG:
		s.ecgFinding, cmd = s.ecgFinding.Update(msg)
	case fHbAvail:
		s.hbAvail, cmd = s.hbAvail.Update(msg)
	case fHemoglobin:
		s.hemoglobin, cmd = s.hemoglobin.Update(msg)
	case fTroponin:
		s.troponin, cmd = s.troponin.Update(msg)
	}

	return cmd
}

// moveFocus shifts field focus, wrapping around the visible list.
func (s *IntakeScreen) moveFocus(delta int) tea.Cmd {
	s.blurAll()
	fs := s.visibleFields()
	if len(fs) == 0 {
		return nil
	}
	s.focus = (s.focus + delta + len(fs)) % len(fs)
	return s.focusCurrent()
}

// focusCurrent gives keyboard focus to the active widget. Only the text
// based inputs hold real focus state.
func (s *IntakeScreen) focusCurrent() tea.Cmd {
	switch s.focusedField() {
	case fAge:
		return s.age.Focus()
	case fSystolic:
		return s.systolic.Focus()
	case fDiastolic:
		return s.diastolic.Focus()
	case fPulse:
		return s.pulse.Focus()
	case fResp:
		return s.resp.Focus()
	}
	return nil
}

func (s *IntakeScreen) blurAll() {
	s.age.Blur()
	s.systolic.Blur()
	s.diastolic.Blur()
	s.pulse.Blur()
	s.resp.Blur()
}

// syncAssessment writes every widget value through to the assessment.
// Gated fields follow their availability setters so the defaults are
// re-applied the moment a gate closes.
func (s *IntakeScreen) syncAssessment() {
	a := s.ctrl.Assessment()

	switch s.ctrl.Stage() {
	case triage.StageVitals:
		a.Age = s.age.Value()
		a.Sex = sexFromIndex(s.sex.Value())
		a.SystolicBP = s.systolic.Value()
		a.DiastolicBP = s.diastolic.Value()
		a.Pulse = s.pulse.Value()
		a.RespRate = s.resp.Value()
		a.SpO2 = int(s.spo2.Value)

	case triage.StageSymptoms:
		a.SetChestPain(answerFromIndex(s.chestPain.Value()))
		if a.ChestPain == triage.AnswerYes {
			a.ChestPainType = painTypeFromIndex(s.painType.Value())
		} else {
			s.painType = components.NewRadioGroup("Tight", "Heavy", "Crushing")
		}
		a.Radiation = answerFromIndex(s.radiation.Value())
		a.Sweating = answerFromIndex(s.sweating.Value())
		a.Nausea = answerFromIndex(s.nausea.Value())
		a.Dyspnea = answerFromIndex(s.dyspnea.Value())
		a.Syncope = answerFromIndex(s.syncope.Value())

	case triage.StageHistory:
		a.Comorbidity = comorbidityFromIndex(s.comorbidity.Value())
		a.FamilyHistory = answerFromIndex(s.familyHx.Value())
		a.PersonalHistory = answerFromIndex(s.personalHx.Value())
		a.SetECGAvailable(s.ecgAvail.On)
		if a.ECGAvailable {
			a.ECGFinding = ecgFromIndex(s.ecgFinding.Value())
		}
		a.SetHbAvailable(s.hbAvail.On)
		if a.HbAvailable {
			a.Hemoglobin = s.hemoglobin.Value
		}
		a.Troponin = troponinFromIndex(s.troponin.Value())
	}
}

// Widget indices are 0-based over the option labels; the enums reserve 0
// for unset, so set values shift by one.

func sexFromIndex(i int) triage.Sex {
	if i < 0 {
		return triage.SexUnset
	}
	return triage.Sex(i + 1)
}

func answerFromIndex(i int) triage.Answer {
	if i < 0 {
		return triage.AnswerUnset
	}
	return triage.Answer(i + 1)
}

func painTypeFromIndex(i int) triage.ChestPainType {
	if i < 0 {
		return triage.ChestPainUnset
	}
	return triage.ChestPainType(i + 1)
}

func comorbidityFromIndex(i int) triage.Comorbidity {
	if i < 0 {
		return triage.ComorbidityUnset
	}
	return triage.Comorbidity(i + 1)
}

func ecgFromIndex(i int) triage.ECGFinding {
	if i < 0 {
		return triage.ECGUnset
	}
	return triage.ECGFinding(i + 1)
}

func troponinFromIndex(i int) triage.Troponin {
	if i < 0 {
		return triage.TroponinUnset
	}
	return triage.Troponin(i + 1)
}
