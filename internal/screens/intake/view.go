package intake

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/barhechalo/arogyam/internal/triage"
	"github.com/barhechalo/arogyam/internal/ui/components"
	"github.com/barhechalo/arogyam/internal/ui/theme"
)

var fieldLabels = map[fieldID]string{
	fAge:        "Age *",
	fSex:        "Sex *",
	fSystolic:   "Systolic BP *",
	fDiastolic:  "Diastolic BP *",
	fPulse:      "Pulse Rate (BPM) *",
	fResp:       "Resp Rate (/min) *",
	fSpO2:       "SpO2 Levels (%) *",
	fChestPain:  "Chest Pain Present? *",
	fPainType:   "Type of Pain *",
	fRadiation:  "Radiation of Pain *",
	fSweating:   "Sweating (Diaphoresis) *",
	fNausea:     "Nausea / Vomiting *",
	fDyspnea:    "Dyspnoea on Exertion (DOE) *",
	fSyncope:    "Syncope (Fainting) *",
	fComorb:     "Primary Comorbidity *",
	fFamilyHx:   "Family History of CVD *",
	fPersonalHx: "Personal History of CVD *",
	fECGAvail:   "Is ECG Available?",
	fECG:        "ECG Finding *",
	fHbAvail:    "Is Hb Test Available?",
	fHemoglobin: "Hemoglobin (g/dL) *",
	fTroponin:   "Troponin T (Rapid Kit) *",
}

// tooltipKey maps a field to its clinical tooltip. The availability
// toggles borrow the tooltip of the value they gate.
func tooltipKey(f fieldID) string {
	switch f {
	case fECGAvail:
		return string(fECG)
	case fHbAvail:
		return string(fHemoglobin)
	}
	return string(f)
}

func (s *IntakeScreen) View(width, height int) string {
	if s.ctrl.Stage() == triage.StageVerdict {
		return s.viewVerdict(width, height)
	}
	return s.viewForm(width, height)
}

func (s *IntakeScreen) viewForm(width, height int) string {
	var b strings.Builder

	progress := components.NewStageProgress(4, int(s.ctrl.Stage()), min(width-8, 60))
	b.WriteString(progress.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Render(fmt.Sprintf("STAGE %d/4  %s", int(s.ctrl.Stage()), s.ctrl.Stage())))
	b.WriteString("\n\n")

	fs := s.visibleFields()
	for i, f := range fs {
		focused := i == s.focus
		b.WriteString(s.renderField(f, focused))
		b.WriteString("\n")

		if focused {
			if tip, ok := triage.Tooltips[tooltipKey(f)]; ok {
				b.WriteString(theme.Hint.Width(min(width-12, 72)).Render("❓ " + tip))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString(theme.ErrorLine.Render(s.errMsg))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

// renderField renders one label + widget row.
func (s *IntakeScreen) renderField(f fieldID, focused bool) string {
	label := fieldLabels[f]
	style := theme.Unselected
	marker := "  "
	if focused {
		style = theme.Selected
		marker = "▸ "
	}

	head := style.Render(marker + label)

	var widget string
	switch f {
	case fAge:
		widget = s.age.View(focused)
	case fSex:
		widget = s.sex.View(focused)
	case fSystolic:
		widget = s.systolic.View(focused)
	case fDiastolic:
		widget = s.diastolic.View(focused)
	case fPulse:
		widget = s.pulse.View(focused)
	case fResp:
		widget = s.resp.View(focused)
	case fSpO2:
		widget = s.spo2.View(focused)
	case fChestPain:
		widget = s.chestPain.View(focused)
	case fPainType:
		widget = s.painType.View(focused)
	case fRadiation:
		widget = s.radiation.View(focused)
	case fSweating:
		widget = s.sweating.View(focused)
	case fNausea:
		widget = s.nausea.View(focused)
	case fDyspnea:
		widget = s.dyspnea.View(focused)
	case fSyncope:
		widget = s.syncope.View(focused)
	case fComorb:
		widget = s.comorbidity.View(focused)
	case fFamilyHx:
		widget = s.familyHx.View(focused)
	case fPersonalHx:
		widget = s.personalHx.View(focused)
	case fECGAvail:
		widget = s.ecgAvail.View(focused)
	case fECG:
		widget = s.ecgFinding.View(focused)
	case fHbAvail:
		widget = s.hbAvail.View(focused)
	case fHemoglobin:
		widget = s.hemoglobin.View(focused)
	case fTroponin:
		widget = s.troponin.View(focused)
	}

	// Vertical widgets render under the label; inline ones share the row.
	if f == fComorb || f == fECG {
		return head + "\n" + widget
	}
	return head + "  " + widget
}

func (s *IntakeScreen) viewVerdict(width, height int) string {
	v := s.ctrl.Verdict()
	if v == nil {
		return theme.ErrorLine.Render("No verdict available.")
	}

	var b strings.Builder
	bannerWidth := min(width-12, 72)

	switch v.Zone {
	case triage.ZoneRed:
		b.WriteString(theme.ZoneRedBanner.Width(bannerWidth).Render("🔴 ZONE RED: IMMEDIATE CAS EVACUATION"))
	case triage.ZoneAmber:
		b.WriteString(theme.ZoneAmberBanner.Width(bannerWidth).Render("🟡 ZONE AMBER: CAUTION & MONITORING"))
	case triage.ZoneGreen:
		b.WriteString(theme.ZoneGreenBanner.Width(bannerWidth).Render("🟢 ZONE GREEN: STABLE / FIT FOR DUTY"))
	}
	b.WriteString("\n\n")

	if v.ModelAlert {
		b.WriteString(theme.ErrorLine.Width(bannerWidth).Render("🚨 " + triage.ModelAlertText))
		b.WriteString("\n\n")
	}

	switch v.Zone {
	case triage.ZoneRed:
		if len(v.Critical) > 0 {
			b.WriteString(theme.CriticalFinding.Render("🚨 CRITICAL PARAMETERS DETECTED"))
			b.WriteString("\n")
			writeFindings(&b, v.Critical, theme.CriticalFinding)
		}
		if len(v.Abnormal) > 0 {
			b.WriteString(theme.AbnormalFinding.Render("⚠ CONTRIBUTING FACTORS"))
			b.WriteString("\n")
			writeFindings(&b, v.Abnormal, theme.AbnormalFinding)
		}
		b.WriteString(theme.ErrorLine.Width(bannerWidth).Render(triage.OrderRed))

	case triage.ZoneAmber:
		b.WriteString(theme.Body.Render("The ML model shows low baseline risk, but specific abnormal parameters require attention."))
		b.WriteString("\n\n")
		b.WriteString(theme.AbnormalFinding.Render("⚠ ABNORMAL PARAMETERS DETECTED"))
		b.WriteString("\n")
		writeFindings(&b, v.Abnormal, theme.AbnormalFinding)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Amber).Width(bannerWidth).Render(triage.OrderAmber))

	case triage.ZoneGreen:
		b.WriteString(theme.Body.Render("Machine Learning analysis and clinical rule-checks show all inputted vital signs and markers are perfectly normal."))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Green).Width(bannerWidth).Render(triage.OrderGreen))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Assessment %s  ·  findings: %d critical, %d abnormal",
		s.ctrl.Assessment().ID, len(v.Critical), len(v.Abnormal))))

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func writeFindings(b *strings.Builder, findings []triage.Finding, style lipgloss.Style) {
	for _, f := range findings {
		b.WriteString("  " + style.Render(f.Name))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("    👉 Action: " + f.Action))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
