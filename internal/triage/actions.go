package triage

// Tooltips is the clinical information library shown as contextual help in
// the intake forms, keyed by field ID. These strings are display data, not
// decision logic.
var Tooltips = map[string]string{
	"age":              "Age is a primary risk factor. Men >45 and Women >55 have a naturally higher risk of arterial plaque buildup.",
	"sex":              "Men generally have a higher risk of heart attacks earlier in life. Women's risk catches up post-menopause.",
	"systolic":         "Systolic BP measures pressure in arteries when the heart beats. Normal < 120. >180 is a Hypertensive Crisis requiring immediate meds.",
	"diastolic":        "Diastolic BP measures pressure between beats. Normal < 80. >120 is a Hypertensive Crisis. High BP damages vessel walls over time.",
	"pulse":            "Resting pulse should be 60-100 BPM. >120 at rest means the heart is struggling. <50 can cause fainting.",
	"resp":             "Normal is 12-20 breaths/min. >25 indicates the lungs are failing to get enough oxygen to the blood (respiratory distress/fluid in lungs).",
	"spo2":             "Measures oxygen saturation in the blood. Normal > 95%. <92% is severe Hypoxia, meaning organs are starving for oxygen. Needs immediate supplemental O2.",
	"chest-pain":       "Any discomfort, squeezing, heaviness, or burning in the chest. Not all heart attacks have pain, but it is the #1 warning sign.",
	"chest-pain-type":  "Tight/Heavy usually means Angina (partial blockage). Crushing/Tearing pain is a severe red flag for a full Heart Attack (Myocardial Infarction).",
	"radiation":        "Pain starting in the chest but traveling to the left arm, jaw, neck, or back. Caused by nerve pathways sharing signals. Classic sign of heart muscle dying.",
	"sweating":         "Sudden, heavy cold sweats when resting. The body is going into shock due to heart strain, dumping adrenaline into the blood.",
	"nausea":           "Feeling sick to the stomach or vomiting without a GI bug. Often accompanies heart attacks in the lower (inferior) wall of the heart.",
	"doe":              "Severe shortness of breath with minimal physical activity (like walking a few steps). The heart is too weak to pump oxygenated blood.",
	"syncope":          "Sudden loss of consciousness or fainting spells. Caused by a sudden drop in blood pressure, starving the brain of oxygen.",
	"comorbidity":      "Pre-existing conditions. Hypertension (High BP) damages arteries. Diabetes ruins blood vessels. Dyslipidemia (High Cholesterol) blocks arteries.",
	"family-history":   "Did parents/siblings have heart attacks before age 50? Genetic predisposition significantly lowers the threshold for an event.",
	"personal-history": "Has this person had heart surgery, stents, or a heart attack before? They are at an extremely high risk of a recurrent event.",
	"ecg":              "ECG reads the heart's electrical signals. ST Elevation means an artery is completely blocked right now. ST Depression means severe lack of oxygen.",
	"hemoglobin":       "Measures protein in red blood cells that carries O2. Normal: 13-18. <10 = Severe anemia. >18 = Blood is sludging/thick, massive risk of clotting.",
	"troponin":         "A rapid blood test. If POSITIVE, it means heart muscle cells have literally burst and are leaking proteins into the blood. Confirmed Heart Attack.",
}

// Final orders shown under each zone verdict.
const (
	OrderRed   = "FINAL ORDER: Initiate emergency MEDEVAC protocol. Keep patient calm, seated, and warm. Continuous monitoring required."
	OrderAmber = "FINAL ORDER: Subject is stable but requires close monitoring. Withhold from heavy physical exertion. Reassess vitals every 4 hours. Consult MO."
	OrderGreen = "FINAL ORDER: Continue standard acclimatization and monitoring protocols. No immediate medical intervention required."
)

// ModelAlertText is displayed when the statistical model flagged high risk.
const ModelAlertText = "ML Model Alert: The analytical algorithm has detected a high probability of a severe cardiovascular event."
