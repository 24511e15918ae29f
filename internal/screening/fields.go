// Package screening defines the health-screening domain: the eight input
// fields, the request sent to the classifier and the outcome shown to the user.
package screening

import (
	"fmt"
	"strings"
)

// Field identifies one of the eight screening inputs.
type Field int

const (
	FieldPregnancies Field = iota
	FieldGlucose
	FieldBloodPressure
	FieldSkinThickness
	FieldInsulin
	FieldBMI
	FieldDiabetesPedigree
	FieldAge

	fieldCount
)

type fieldInfo struct {
	name        string // form name
	label       string
	wireKey     string // key expected by the classifier
	placeholder string
}

var fieldTable = [fieldCount]fieldInfo{
	FieldPregnancies:      {"pregnancies", "Pregnancies", "Pregnancies", "0 to 17"},
	FieldGlucose:          {"glucose", "Glucose", "Glucose", "0 to 199 mg/dL"},
	FieldBloodPressure:    {"bloodPressure", "Blood Pressure", "BloodPressure", "0 to 122 mm Hg"},
	FieldSkinThickness:    {"skinThickness", "Skin Thickness", "SkinThickness", "0 to 99 mm"},
	FieldInsulin:          {"insulin", "Insulin", "Insulin", "0 to 846 μU/mL"},
	FieldBMI:              {"bmi", "BMI", "BMI", "0 to 67.1 kg/m²"},
	FieldDiabetesPedigree: {"diabetesPedigree", "Diabetes Pedigree Function", "DiabetesPedigreeFunction", "0.078 to 2.42"},
	FieldAge:              {"age", "Age", "Age", "21 to 81 years"},
}

// Fields returns all fields in display order.
func Fields() []Field {
	out := make([]Field, fieldCount)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

// Valid reports whether f is one of the eight known fields.
func (f Field) Valid() bool {
	return f >= 0 && f < fieldCount
}

func (f Field) info() fieldInfo {
	if !f.Valid() {
		panic(fmt.Sprintf("screening: unknown field %d", int(f)))
	}
	return fieldTable[f]
}

// Name returns the form name (e.g. "bloodPressure").
func (f Field) Name() string { return f.info().name }

// Label returns the human-readable label.
func (f Field) Label() string { return f.info().label }

// WireKey returns the key the classifier expects (e.g. "BloodPressure").
func (f Field) WireKey() string { return f.info().wireKey }

// Placeholder returns an example range. It is a hint, not a bound.
func (f Field) Placeholder() string { return f.info().placeholder }

func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldTable[f].name
}

// ParseField resolves a field from its form name or wire key, ignoring case.
func ParseField(name string) (Field, error) {
	name = strings.TrimSpace(name)
	for i, info := range fieldTable {
		if strings.EqualFold(name, info.name) || strings.EqualFold(name, info.wireKey) {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", name)
}

// FieldNames returns every accepted name (form names then wire keys).
func FieldNames() []string {
	names := make([]string, 0, 2*fieldCount)
	for _, info := range fieldTable {
		names = append(names, info.name)
	}
	for _, info := range fieldTable {
		if info.wireKey != info.name {
			names = append(names, info.wireKey)
		}
	}
	return names
}
