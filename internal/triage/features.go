package triage

// FeatureCount is the width of the feature vector consumed by the
// pretrained scaler/model pair.
const FeatureCount = 20

// Features maps an assessment to the fixed-order numeric vector the
// external artifacts were trained on. The column order is frozen by the
// training-time convention and must never be reordered:
//
//	age, sex, systolic, diastolic, pulse, resp, spo2,
//	chest-pain, chest-pain-type, radiation, sweating, nausea, doe, syncope,
//	comorbidity, family-hx, personal-hx, ecg, hemoglobin, troponin
//
// Pure function: identical assessments yield identical vectors. Fields
// behind an availability toggle contribute their clinically normal default
// when unavailable, regardless of any stale stored value.
func Features(a *Assessment) [FeatureCount]float64 {
	return [FeatureCount]float64{
		float64(a.Age),
		a.Sex.Code(),
		float64(a.SystolicBP),
		float64(a.DiastolicBP),
		float64(a.Pulse),
		float64(a.RespRate),
		float64(a.SpO2),
		a.ChestPain.Code(),
		a.EffectiveChestPainType().Code(),
		a.Radiation.Code(),
		a.Sweating.Code(),
		a.Nausea.Code(),
		a.Dyspnea.Code(),
		a.Syncope.Code(),
		a.Comorbidity.Code(),
		a.FamilyHistory.Code(),
		a.PersonalHistory.Code(),
		a.EffectiveECG().Code(),
		a.EffectiveHemoglobin(),
		a.Troponin.Code(),
	}
}
