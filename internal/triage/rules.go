package triage

import "fmt"

// Rule is one independent clinical check over raw assessment fields.
// Rules are side-effect free and every applicable rule fires: the evaluator
// accumulates all matches rather than stopping at the first.
type Rule struct {
	ID       string
	Severity Severity
	When     func(*Assessment) bool
	Name     func(*Assessment) string
	Action   string
}

// clinicalRules is the full rule table in evaluation order. The three
// hemoglobin bands look independent here because their ranges are disjoint;
// the >19.5 critical band takes precedence over (18.0, 19.5], which takes
// precedence over <10.0, so at most one hemoglobin finding is ever
// produced. Do not "simplify" the bands without clinical sign-off.
var clinicalRules = []Rule{
	{
		ID:       "high-bp",
		Severity: SeverityAbnormal,
		When:     func(a *Assessment) bool { return a.SystolicBP > 160 || a.DiastolicBP > 100 },
		Name: func(a *Assessment) string {
			return fmt.Sprintf("High BP (%d/%d)", a.SystolicBP, a.DiastolicBP)
		},
		Action: "Monitor closely. Keep subject seated. Do not give stimulants (tea/coffee).",
	},
	{
		ID:       "abnormal-pulse",
		Severity: SeverityAbnormal,
		When:     func(a *Assessment) bool { return a.Pulse > 120 || a.Pulse < 50 },
		Name: func(a *Assessment) string {
			return fmt.Sprintf("Abnormal Pulse (%d BPM)", a.Pulse)
		},
		Action: "Assess for shock or severe dehydration. Hydrate slowly if conscious.",
	},
	{
		ID:       "hypoxia",
		Severity: SeverityAbnormal,
		When:     func(a *Assessment) bool { return a.SpO2 < 92 },
		Name: func(a *Assessment) string {
			return fmt.Sprintf("Hypoxia (SpO2: %d%%)", a.SpO2)
		},
		Action: "Administer Supplemental Oxygen via mask. Prepare for descent if at high altitude.",
	},
	{
		ID:       "tachypnea",
		Severity: SeverityAbnormal,
		When:     func(a *Assessment) bool { return a.RespRate > 25 },
		Name: func(a *Assessment) string {
			return fmt.Sprintf("Tachypnea (Resp: %d/min)", a.RespRate)
		},
		Action: "Patient is struggling to breathe. Sit them upright. Administer O2.",
	},
	{
		ID:       "family-history",
		Severity: SeverityAbnormal,
		When:     func(a *Assessment) bool { return a.FamilyHistory == AnswerYes },
		Name:     func(*Assessment) string { return "Family History of Heart Disease" },
		Action:   "Lowers threshold for evacuation. Treat minor symptoms more seriously.",
	},
	{
		ID:       "personal-history",
		Severity: SeverityAbnormal,
		When:     func(a *Assessment) bool { return a.PersonalHistory == AnswerYes },
		Name:     func(*Assessment) string { return "Previous Heart Issues" },
		Action:   "Extremely high risk of recurrence. Subject should not do heavy lifting/patrols.",
	},
	{
		ID:       "hb-elevated",
		Severity: SeverityAbnormal,
		When: func(a *Assessment) bool {
			hb := a.EffectiveHemoglobin()
			return hb > 18.0 && hb <= 19.5
		},
		Name: func(a *Assessment) string {
			return fmt.Sprintf("Elevated Hemoglobin (%.1f g/dL)", a.EffectiveHemoglobin())
		},
		Action: "Blood is thickening. Hydrate heavily. Restrict physical exertion to prevent clotting.",
	},
	{
		ID:       "hb-critical",
		Severity: SeverityCritical,
		When:     func(a *Assessment) bool { return a.EffectiveHemoglobin() > 19.5 },
		Name: func(a *Assessment) string {
			return fmt.Sprintf("CRITICAL Hemoglobin (%.1f g/dL)", a.EffectiveHemoglobin())
		},
		Action: "Severe risk of stroke/thrombosis due to blood sludging. Immediate hydration and CAS EVAC.",
	},
	{
		ID:       "hb-low",
		Severity: SeverityAbnormal,
		When:     func(a *Assessment) bool { return a.EffectiveHemoglobin() < 10.0 },
		Name: func(a *Assessment) string {
			return fmt.Sprintf("Low Hemoglobin (%.1f g/dL)", a.EffectiveHemoglobin())
		},
		Action: "Anemia. Blood cannot carry enough oxygen. Do not deploy to high altitude.",
	},
	{
		ID:       "nausea",
		Severity: SeverityAbnormal,
		When:     func(a *Assessment) bool { return a.Nausea == AnswerYes },
		Name:     func(*Assessment) string { return "Nausea / Vomiting" },
		Action:   "Ensure airway is clear. Do not force feed.",
	},
	{
		ID:       "dyspnea",
		Severity: SeverityAbnormal,
		When:     func(a *Assessment) bool { return a.Dyspnea == AnswerYes },
		Name:     func(*Assessment) string { return "Dyspnoea on Exertion" },
		Action:   "Strict bed rest. Administer O2. Check for HAPE.",
	},
	{
		ID:       "chest-pain",
		Severity: SeverityCritical,
		When:     func(a *Assessment) bool { return a.ChestPain == AnswerYes },
		Name: func(a *Assessment) string {
			return fmt.Sprintf("Active Chest Pain (%s)", a.EffectiveChestPainType())
		},
		Action: "Assume Heart Attack. Administer 300mg chewable Aspirin immediately (if not allergic). Give O2.",
	},
	{
		ID:       "radiation",
		Severity: SeverityCritical,
		When:     func(a *Assessment) bool { return a.Radiation == AnswerYes },
		Name:     func(*Assessment) string { return "Radiating Pain" },
		Action:   "Classic Ischemia. Administer Sorbitrate/Nitroglycerin under tongue if BP > 100.",
	},
	{
		ID:       "diaphoresis",
		Severity: SeverityCritical,
		When:     func(a *Assessment) bool { return a.Sweating == AnswerYes },
		Name:     func(*Assessment) string { return "Diaphoresis (Cold Sweats)" },
		Action:   "Subject is in clinical shock. Elevate legs slightly, keep warm.",
	},
	{
		ID:       "syncope",
		Severity: SeverityCritical,
		When:     func(a *Assessment) bool { return a.Syncope == AnswerYes },
		Name:     func(*Assessment) string { return "Syncope (Fainting)" },
		Action:   "Check pulse and breathing. Be prepared to start CPR.",
	},
	{
		ID:       "ecg-severe",
		Severity: SeverityCritical,
		When:     func(a *Assessment) bool { return a.EffectiveECG().Severe() },
		Name: func(a *Assessment) string {
			return fmt.Sprintf("Severe ECG Finding (%s)", a.EffectiveECG())
		},
		Action: "Confirmed cardiac event. CAS EVAC is mandatory.",
	},
	{
		ID:       "troponin-positive",
		Severity: SeverityCritical,
		When:     func(a *Assessment) bool { return a.Troponin == TroponinPositive },
		Name:     func(*Assessment) string { return "Troponin T POSITIVE" },
		Action:   "Confirmed death of heart muscle cells. Time is tissue. Immediate CAS EVAC.",
	},
}

// ClinicalRules returns the rule table for inspection tooling.
func ClinicalRules() []Rule {
	out := make([]Rule, len(clinicalRules))
	copy(out, clinicalRules)
	return out
}

// Evaluate applies every rule to the assessment and returns the critical
// and abnormal findings in rule-table order. No short-circuiting: all
// matching rules contribute a finding.
func Evaluate(a *Assessment) (critical, abnormal []Finding) {
	for _, r := range clinicalRules {
		if !r.When(a) {
			continue
		}
		f := Finding{RuleID: r.ID, Name: r.Name(a), Action: r.Action}
		if r.Severity == SeverityCritical {
			critical = append(critical, f)
		} else {
			abnormal = append(abnormal, f)
		}
	}
	return critical, abnormal
}
