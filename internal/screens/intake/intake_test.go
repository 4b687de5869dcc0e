package intake

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/barhechalo/arogyam/internal/model"
	"github.com/barhechalo/arogyam/internal/triage"
)

type stubScaler struct{}

func (stubScaler) Transform(features []float64) ([]float64, error) {
	return features, nil
}

type stubPredictor struct {
	class int
}

func (p stubPredictor) Predict([]float64) (int, error) {
	return p.class, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testScreen(class int) *IntakeScreen {
	return New(stubScaler{}, stubPredictor{class: class})
}

// fillBenign writes a complete clinically normal assessment directly, so
// navigation tests do not have to drive every widget.
func fillBenign(s *IntakeScreen) {
	a := s.ctrl.Assessment()
	a.Sex = triage.SexFemale
	a.SetChestPain(triage.AnswerNo)
	a.Radiation = triage.AnswerNo
	a.Sweating = triage.AnswerNo
	a.Nausea = triage.AnswerNo
	a.Dyspnea = triage.AnswerNo
	a.Syncope = triage.AnswerNo
	a.Comorbidity = triage.ComorbidityNone
	a.FamilyHistory = triage.AnswerNo
	a.PersonalHistory = triage.AnswerNo
	a.SetECGAvailable(false)
	a.SetHbAvailable(false)
	a.Troponin = triage.TroponinNegative
}

func TestIntakeScreen_Title(t *testing.T) {
	s := testScreen(model.ClassLowRisk)
	if s.Title() != "HEART DISEASE TRIAGE" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestIntakeScreen_BlocksAdvanceWithoutSex(t *testing.T) {
	s := testScreen(model.ClassLowRisk)

	s.Update(ctrlKey('n'))

	if s.ctrl.Stage() != triage.StageVitals {
		t.Errorf("stage = %v after blocked advance, want vitals", s.ctrl.Stage())
	}
	if !strings.Contains(s.errMsg, "Sex") {
		t.Errorf("errMsg = %q, want missing field named", s.errMsg)
	}
}

func TestIntakeScreen_SelectSexViaKeys(t *testing.T) {
	s := testScreen(model.ClassLowRisk)

	// Tab from the age input to the sex radio, record "Male".
	s.Update(specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeyEnter))

	if got := s.ctrl.Assessment().Sex; got != triage.SexMale {
		t.Errorf("Sex = %v, want %v", got, triage.SexMale)
	}
}

func TestIntakeScreen_FullWalkToGreenVerdict(t *testing.T) {
	s := testScreen(model.ClassLowRisk)
	fillBenign(s)

	s.Update(ctrlKey('n'))
	s.Update(ctrlKey('n'))
	s.Update(ctrlKey('n'))

	if s.ctrl.Stage() != triage.StageVerdict {
		t.Fatalf("stage = %v, want verdict (errMsg %q)", s.ctrl.Stage(), s.errMsg)
	}

	view := s.View(100, 40)
	if !strings.Contains(view, "ZONE GREEN") {
		t.Error("verdict view missing green banner")
	}
	if !strings.Contains(view, "FINAL ORDER") {
		t.Error("verdict view missing final order")
	}
}

func TestIntakeScreen_ModelAlertShownOnRed(t *testing.T) {
	s := testScreen(model.ClassHighRisk)
	fillBenign(s)

	s.Update(ctrlKey('n'))
	s.Update(ctrlKey('n'))
	s.Update(ctrlKey('n'))

	view := s.View(100, 40)
	if !strings.Contains(view, "ZONE RED") {
		t.Error("verdict view missing red banner")
	}
	if !strings.Contains(view, "ML Model Alert") {
		t.Error("verdict view missing model alert line")
	}
}

func TestIntakeScreen_RetreatFromVerdictClearsIt(t *testing.T) {
	s := testScreen(model.ClassLowRisk)
	fillBenign(s)
	s.Update(ctrlKey('n'))
	s.Update(ctrlKey('n'))
	s.Update(ctrlKey('n'))

	s.Update(ctrlKey('p'))

	if s.ctrl.Stage() != triage.StageHistory {
		t.Errorf("stage = %v after retreat, want history", s.ctrl.Stage())
	}
	if s.ctrl.Verdict() != nil {
		t.Error("verdict survived retreat")
	}
}

func TestIntakeScreen_NewAssessmentResets(t *testing.T) {
	s := testScreen(model.ClassLowRisk)
	fillBenign(s)
	oldID := s.ctrl.Assessment().ID
	s.Update(ctrlKey('n'))
	s.Update(ctrlKey('n'))
	s.Update(ctrlKey('n'))

	s.Update(keyPress('n'))

	if s.ctrl.Stage() != triage.StageVitals {
		t.Errorf("stage = %v after new assessment, want vitals", s.ctrl.Stage())
	}
	if s.ctrl.Assessment().ID == oldID {
		t.Error("new assessment reused the previous record")
	}
	if s.ctrl.Assessment().Sex != triage.SexUnset {
		t.Error("new assessment kept entered answers")
	}
}

func TestIntakeScreen_PainTypeFieldAppearsWithPain(t *testing.T) {
	s := testScreen(model.ClassLowRisk)
	fillBenign(s)
	s.Update(ctrlKey('n')) // to symptoms

	base := len(s.visibleFields())
	s.ctrl.Assessment().SetChestPain(triage.AnswerYes)
	if got := len(s.visibleFields()); got != base+1 {
		t.Errorf("visible fields = %d with chest pain, want %d", got, base+1)
	}
}

func TestIntakeScreen_ValidationErrorRendered(t *testing.T) {
	s := testScreen(model.ClassLowRisk)
	s.Update(ctrlKey('n'))

	view := s.View(100, 40)
	if !strings.Contains(view, "mandatory") {
		t.Error("form view missing validation message")
	}
}

func TestIntakeScreen_KeyHintsPerStage(t *testing.T) {
	s := testScreen(model.ClassLowRisk)
	fillBenign(s)

	hints := s.KeyHints()
	if len(hints) == 0 {
		t.Fatal("no key hints on form stage")
	}

	s.Update(ctrlKey('n'))
	s.Update(ctrlKey('n'))
	s.Update(ctrlKey('n'))

	var hasNew bool
	for _, h := range s.KeyHints() {
		if h.Description == "New assessment" {
			hasNew = true
		}
	}
	if !hasNew {
		t.Error("verdict stage hints missing new assessment")
	}
}
