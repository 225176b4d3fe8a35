// ABOUTME: Health metrics evaluator: BMI, blood pressure, heart rate and risk rules.
// ABOUTME: Pure threshold logic; identical input always yields an identical report.
package evaluator

import (
	"fmt"
	"math"

	"github.com/harperreed/healthai/internal/models"
)

// BloodPressureRule selects how the Stage 1 hypertension row is tested.
type BloodPressureRule string

const (
	// RuleLiteral tests systolic < 140 OR diastolic < 90 for Stage 1.
	RuleLiteral BloodPressureRule = "literal"
	// RuleClinical tests systolic < 140 AND diastolic < 90 for Stage 1.
	RuleClinical BloodPressureRule = "clinical"
)

// ParseBloodPressureRule rejects unknown rule names. Empty means literal.
func ParseBloodPressureRule(s string) (BloodPressureRule, error) {
	switch BloodPressureRule(s) {
	case "", RuleLiteral:
		return RuleLiteral, nil
	case RuleClinical:
		return RuleClinical, nil
	}
	return "", fmt.Errorf("unknown blood pressure rule: %q (use literal or clinical)", s)
}

// Options tune an Evaluator.
type Options struct {
	BloodPressureRule BloodPressureRule
}

// Evaluator maps vitals to a HealthReport.
type Evaluator struct {
	opts Options
}

// New creates an Evaluator. A zero Options uses the literal blood pressure rule.
func New(opts Options) *Evaluator {
	if opts.BloodPressureRule == "" {
		opts.BloodPressureRule = RuleLiteral
	}
	return &Evaluator{opts: opts}
}

// Rule returns the blood pressure rule in effect.
func (e *Evaluator) Rule() BloodPressureRule {
	return e.opts.BloodPressureRule
}

var defaultEvaluator = New(Options{})

// Evaluate runs the default (literal rule) evaluator.
func Evaluate(in models.VitalsInput) (models.HealthReport, error) {
	return defaultEvaluator.Evaluate(in)
}

// Evaluate validates in and returns its categorised report.
func (e *Evaluator) Evaluate(in models.VitalsInput) (models.HealthReport, error) {
	if err := Validate(in); err != nil {
		return models.HealthReport{}, err
	}

	bmi := BMI(in.WeightKg, in.HeightCm)
	factors := RiskFactors(bmi, in)

	return models.HealthReport{
		BodyMassIndex:         bmi,
		BodyMassIndexCategory: ClassifyBMI(bmi),
		BloodPressureCategory: ClassifyBloodPressure(in.SystolicPressure, in.DiastolicPressure, e.opts.BloodPressureRule),
		HeartRateCategory:     ClassifyHeartRate(in.HeartRate),
		OverallRisk:           RiskFromCount(len(factors)),
		RiskFactors:           factors,
		Recommendations:       Recommend(bmi, in),
	}, nil
}

// Validate rejects non-finite numbers and non-positive height or weight.
func Validate(in models.VitalsInput) error {
	verr := &models.ValidationError{}
	checkFinite(verr, "systolic", in.SystolicPressure)
	checkFinite(verr, "diastolic", in.DiastolicPressure)
	checkFinite(verr, "heart_rate", in.HeartRate)
	if in.BodyTemperature != nil {
		checkFinite(verr, "temperature", *in.BodyTemperature)
	}
	checkPositive(verr, "weight", in.WeightKg)
	checkPositive(verr, "height", in.HeightCm)
	return verr.ErrOrNil()
}

func checkFinite(verr *models.ValidationError, field string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		verr.Add(field, "must be finite")
	}
}

func checkPositive(verr *models.ValidationError, field string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		verr.Add(field, "must be finite")
		return
	}
	if v <= 0 {
		verr.Add(field, "must be greater than zero")
	}
}

// BMI returns weightKg / (heightCm/100)².
func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

// ClassifyBMI buckets bmi on half-open intervals.
func ClassifyBMI(bmi float64) models.BMICategory {
	switch {
	case bmi < 18.5:
		return models.BMIUnderweight
	case bmi < 25:
		return models.BMINormal
	case bmi < 30:
		return models.BMIOverweight
	default:
		return models.BMIObese
	}
}

// ClassifyBloodPressure buckets a reading. Rows are tested in order and the
// first match wins.
func ClassifyBloodPressure(systolic, diastolic float64, rule BloodPressureRule) models.BloodPressureCategory {
	switch {
	case systolic < 120 && diastolic < 80:
		return models.BPNormal
	case systolic < 130 && diastolic < 80:
		return models.BPElevated
	case stage1(systolic, diastolic, rule):
		return models.BPStage1Hypertension
	default:
		return models.BPStage2Hypertension
	}
}

func stage1(systolic, diastolic float64, rule BloodPressureRule) bool {
	if rule == RuleClinical {
		return systolic < 140 && diastolic < 90
	}
	return systolic < 140 || diastolic < 90
}

// ClassifyHeartRate buckets beats per minute; 60 and 100 are both Normal.
func ClassifyHeartRate(bpm float64) models.HeartRateCategory {
	switch {
	case bpm < 60:
		return models.HRBradycardia
	case bpm <= 100:
		return models.HRNormal
	default:
		return models.HRTachycardia
	}
}

// RiskFactors returns the triggered factors in check order.
func RiskFactors(bmi float64, in models.VitalsInput) []models.RiskFactor {
	factors := []models.RiskFactor{}
	if bmi >= 30 {
		factors = append(factors, models.RiskFactorObesity)
	}
	if in.SystolicPressure >= 140 || in.DiastolicPressure >= 90 {
		factors = append(factors, models.RiskFactorHypertension)
	}
	if in.HeartRate > 100 || in.HeartRate < 60 {
		factors = append(factors, models.RiskFactorAbnormalHeartRate)
	}
	if in.Age > 65 {
		factors = append(factors, models.RiskFactorAgeOver65)
	}
	return factors
}

// RiskFromCount maps a factor count to a risk level.
func RiskFromCount(n int) models.RiskLevel {
	switch {
	case n >= 3:
		return models.RiskHigh
	case n >= 1:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}

// Recommend returns the advisory list in display order.
func Recommend(bmi float64, in models.VitalsInput) []string {
	var recs []string
	if bmi >= 25 {
		recs = append(recs, models.AdviceWeightManagement)
	}
	if in.SystolicPressure >= 130 {
		recs = append(recs, models.AdviceMonitorBP)
	}
	if in.HeartRate > 100 {
		recs = append(recs, models.AdviceHeartRate)
	}
	if bmi < 18.5 {
		recs = append(recs, models.AdviceGainWeight)
	}
	return append(recs, models.AdviceActivity, models.AdviceBalancedDiet)
}
