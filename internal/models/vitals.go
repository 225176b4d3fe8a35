// ABOUTME: VitalsInput model and the raw-string parse boundary for user input.
// ABOUTME: Collects per-field validation failures into a single ValidationError.
package models

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidVitals is wrapped by every vitals validation failure.
var ErrInvalidVitals = errors.New("invalid vitals")

// Gender is collected with the vitals but does not influence evaluation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// AllGenders lists the accepted gender values in display order.
var AllGenders = []Gender{GenderMale, GenderFemale, GenderOther}

// ParseGender matches s case-insensitively against the accepted values.
func ParseGender(s string) (Gender, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, g := range AllGenders {
		if string(g) == v {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown gender: %q", s)
}

// VitalsInput is one submission of measurements. It is created per request
// and discarded after evaluation.
type VitalsInput struct {
	SystolicPressure  float64  `json:"systolic_pressure" yaml:"systolic_pressure"`
	DiastolicPressure float64  `json:"diastolic_pressure" yaml:"diastolic_pressure"`
	HeartRate         float64  `json:"heart_rate" yaml:"heart_rate"`
	BodyTemperature   *float64 `json:"body_temperature,omitempty" yaml:"body_temperature,omitempty"`
	WeightKg          float64  `json:"weight_kg" yaml:"weight_kg"`
	HeightCm          float64  `json:"height_cm" yaml:"height_cm"`
	Age               int      `json:"age" yaml:"age"`
	Gender            Gender   `json:"gender" yaml:"gender"`
}

// WithTemperature sets the optional body temperature.
func (v VitalsInput) WithTemperature(celsius float64) VitalsInput {
	v.BodyTemperature = &celsius
	return v
}

// RawVitals is the unparsed form of a VitalsInput as typed by the user.
type RawVitals struct {
	Systolic    string `json:"systolic"`
	Diastolic   string `json:"diastolic"`
	HeartRate   string `json:"heart_rate"`
	Temperature string `json:"temperature,omitempty"`
	Weight      string `json:"weight"`
	Height      string `json:"height"`
	Age         string `json:"age"`
	Gender      string `json:"gender"`
}

// FieldError describes why a single field was rejected.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// ValidationError aggregates every rejected field of one submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidVitals, strings.Join(parts, "; "))
}

// Unwrap lets callers match ErrInvalidVitals with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidVitals
}

// Add records a rejected field.
func (e *ValidationError) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// Has reports whether field was rejected.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// ErrOrNil returns e when any field was rejected.
func (e *ValidationError) ErrOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// ParseVitals converts user text into a VitalsInput. All fields except
// temperature are required and every number must be finite.
func ParseVitals(raw RawVitals) (VitalsInput, error) {
	var in VitalsInput
	verr := &ValidationError{}

	in.SystolicPressure = parseNumber(verr, "systolic", raw.Systolic, true)
	in.DiastolicPressure = parseNumber(verr, "diastolic", raw.Diastolic, true)
	in.HeartRate = parseNumber(verr, "heart_rate", raw.HeartRate, true)
	if strings.TrimSpace(raw.Temperature) != "" {
		t := parseNumber(verr, "temperature", raw.Temperature, false)
		in.BodyTemperature = &t
	}
	in.WeightKg = parseNumber(verr, "weight", raw.Weight, true)
	in.HeightCm = parseNumber(verr, "height", raw.Height, true)

	if age := strings.TrimSpace(raw.Age); age == "" {
		verr.Add("age", "required")
	} else if n, err := strconv.Atoi(age); errors.Is(err, strconv.ErrRange) {
		verr.Add("age", fmt.Sprintf("out of range: %q", age))
	} else if err != nil {
		verr.Add("age", fmt.Sprintf("not a whole number: %q", age))
	} else {
		in.Age = n
	}

	if strings.TrimSpace(raw.Gender) == "" {
		verr.Add("gender", "required")
	} else if g, err := ParseGender(raw.Gender); err != nil {
		verr.Add("gender", err.Error())
	} else {
		in.Gender = g
	}

	if err := verr.ErrOrNil(); err != nil {
		return VitalsInput{}, err
	}
	return in, nil
}

// decimalPattern is plain decimal notation with an optional exponent. It
// excludes the hex floats and digit underscores strconv also accepts.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

func parseNumber(verr *ValidationError, field, s string, required bool) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		if required {
			verr.Add(field, "required")
		}
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		verr.Add(field, fmt.Sprintf("out of range: %q", s))
		return 0
	case err != nil:
		verr.Add(field, fmt.Sprintf("not a number: %q", s))
		return 0
	case math.IsNaN(f) || math.IsInf(f, 0):
		verr.Add(field, "must be finite")
		return 0
	case !decimalPattern.MatchString(s):
		verr.Add(field, fmt.Sprintf("not a decimal number: %q", s))
		return 0
	}
	return f
}
