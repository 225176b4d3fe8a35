// ABOUTME: HealthReport model and the category enums produced by evaluation.
// ABOUTME: Each category carries the display label shown to the user.
package models

// BMICategory buckets a body mass index.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// Label returns the display text.
func (c BMICategory) Label() string {
	return string(c)
}

// BloodPressureCategory buckets a systolic/diastolic pair.
type BloodPressureCategory string

const (
	BPNormal             BloodPressureCategory = "Normal"
	BPElevated           BloodPressureCategory = "Elevated"
	BPStage1Hypertension BloodPressureCategory = "Stage1Hypertension"
	BPStage2Hypertension BloodPressureCategory = "Stage2Hypertension"
)

var bloodPressureLabels = map[BloodPressureCategory]string{
	BPNormal:             "Normal",
	BPElevated:           "Elevated",
	BPStage1Hypertension: "Stage 1 Hypertension",
	BPStage2Hypertension: "Stage 2 Hypertension",
}

// Label returns the display text.
func (c BloodPressureCategory) Label() string {
	if l, ok := bloodPressureLabels[c]; ok {
		return l
	}
	return string(c)
}

// HeartRateCategory buckets a resting heart rate.
type HeartRateCategory string

const (
	HRBradycardia HeartRateCategory = "Bradycardia"
	HRNormal      HeartRateCategory = "Normal"
	HRTachycardia HeartRateCategory = "Tachycardia"
)

var heartRateLabels = map[HeartRateCategory]string{
	HRBradycardia: "Low (Bradycardia)",
	HRNormal:      "Normal",
	HRTachycardia: "High (Tachycardia)",
}

// Label returns the display text.
func (c HeartRateCategory) Label() string {
	if l, ok := heartRateLabels[c]; ok {
		return l
	}
	return string(c)
}

// RiskLevel is the coarse overall risk.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// RiskFactor names one triggered risk condition.
type RiskFactor string

const (
	RiskFactorObesity           RiskFactor = "obesity"
	RiskFactorHypertension      RiskFactor = "hypertension"
	RiskFactorAbnormalHeartRate RiskFactor = "abnormal_heart_rate"
	RiskFactorAgeOver65         RiskFactor = "age_over_65"
)

// Advisory texts, in the order they can appear in a report.
const (
	AdviceWeightManagement = "Consider weight management through diet and exercise"
	AdviceMonitorBP        = "Monitor blood pressure regularly and consider lifestyle changes"
	AdviceHeartRate        = "Consult a doctor about elevated heart rate"
	AdviceGainWeight       = "Consider gaining weight through healthy nutrition"
	AdviceActivity         = "Maintain regular physical activity"
	AdviceBalancedDiet     = "Follow a balanced diet rich in fruits and vegetables"
)

// HealthReport is the categorised result of evaluating one VitalsInput.
type HealthReport struct {
	BodyMassIndex         float64               `json:"body_mass_index" yaml:"body_mass_index"`
	BodyMassIndexCategory BMICategory           `json:"body_mass_index_category" yaml:"body_mass_index_category"`
	BloodPressureCategory BloodPressureCategory `json:"blood_pressure_category" yaml:"blood_pressure_category"`
	HeartRateCategory     HeartRateCategory     `json:"heart_rate_category" yaml:"heart_rate_category"`
	OverallRisk           RiskLevel             `json:"overall_risk" yaml:"overall_risk"`
	RiskFactors           []RiskFactor          `json:"risk_factors" yaml:"risk_factors"`
	Recommendations       []string              `json:"recommendations" yaml:"recommendations"`
}

// RiskFactorCount returns the number of triggered risk factors.
func (r HealthReport) RiskFactorCount() int {
	return len(r.RiskFactors)
}
