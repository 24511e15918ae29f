package screening

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormFields holds the raw text of the eight inputs, indexed by Field.
type FormFields [fieldCount]string

// Get returns the raw text for f.
func (ff FormFields) Get(f Field) string {
	f.info()
	return ff[f]
}

// Set stores raw text for f without validation.
func (ff *FormFields) Set(f Field, value string) {
	f.info()
	ff[f] = value
}

// Complete reports whether every field is non-empty after trimming.
func (ff FormFields) Complete() bool {
	for _, v := range ff {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Missing returns the fields that are empty after trimming.
func (ff FormFields) Missing() []Field {
	var out []Field
	for i, v := range ff {
		if strings.TrimSpace(v) == "" {
			out = append(out, Field(i))
		}
	}
	return out
}

// Request converts the fields into a typed request. Every field must parse
// as a finite float; otherwise an *InvalidInputError listing all offenders
// is returned.
func (ff FormFields) Request() (Request, error) {
	var values [fieldCount]float64
	invalid := &InvalidInputError{}
	for i, raw := range ff {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			invalid.Fields = append(invalid.Fields, Field(i))
			continue
		}
		values[i] = v
	}
	if len(invalid.Fields) > 0 {
		return Request{}, invalid
	}
	return Request{
		Pregnancies:              values[FieldPregnancies],
		Glucose:                  values[FieldGlucose],
		BloodPressure:            values[FieldBloodPressure],
		SkinThickness:            values[FieldSkinThickness],
		Insulin:                  values[FieldInsulin],
		BMI:                      values[FieldBMI],
		DiabetesPedigreeFunction: values[FieldDiabetesPedigree],
		Age:                      values[FieldAge],
	}, nil
}

// Request is the payload posted to the classifier.
type Request struct {
	Pregnancies              float64 `json:"Pregnancies"`
	Glucose                  float64 `json:"Glucose"`
	BloodPressure            float64 `json:"BloodPressure"`
	SkinThickness            float64 `json:"SkinThickness"`
	Insulin                  float64 `json:"Insulin"`
	BMI                      float64 `json:"BMI"`
	DiabetesPedigreeFunction float64 `json:"DiabetesPedigreeFunction"`
	Age                      float64 `json:"Age"`
}

// Value returns the value carried for f.
func (r Request) Value(f Field) float64 {
	switch f {
	case FieldPregnancies:
		return r.Pregnancies
	case FieldGlucose:
		return r.Glucose
	case FieldBloodPressure:
		return r.BloodPressure
	case FieldSkinThickness:
		return r.SkinThickness
	case FieldInsulin:
		return r.Insulin
	case FieldBMI:
		return r.BMI
	case FieldDiabetesPedigree:
		return r.DiabetesPedigreeFunction
	case FieldAge:
		return r.Age
	}
	panic(fmt.Sprintf("screening: unknown field %d", int(f)))
}

// InvalidInputError reports fields whose text is not a finite number.
type InvalidInputError struct {
	Fields []Field
}

func (e *InvalidInputError) Error() string {
	labels := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		labels[i] = f.Label()
	}
	if len(labels) == 1 {
		return fmt.Sprintf("%s is not a number", labels[0])
	}
	return fmt.Sprintf("%s are not numbers", strings.Join(labels, ", "))
}
