package screening

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func filled(values ...string) FormFields {
	var ff FormFields
	for i, v := range values {
		ff[i] = v
	}
	return ff
}

func TestParseField(t *testing.T) {
	tests := []struct {
		in   string
		want Field
	}{
		{"glucose", FieldGlucose},
		{"Glucose", FieldGlucose},
		{"bloodPressure", FieldBloodPressure},
		{"BloodPressure", FieldBloodPressure},
		{"diabetesPedigree", FieldDiabetesPedigree},
		{"DiabetesPedigreeFunction", FieldDiabetesPedigree},
		{" bmi ", FieldBMI},
	}
	for _, tt := range tests {
		got, err := ParseField(tt.in)
		if err != nil {
			t.Errorf("ParseField(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseField(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseField("cholesterol"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestFieldsOrder(t *testing.T) {
	fields := Fields()
	if len(fields) != 8 {
		t.Fatalf("expected 8 fields, got %d", len(fields))
	}
	wantKeys := []string{"Pregnancies", "Glucose", "BloodPressure", "SkinThickness", "Insulin", "BMI", "DiabetesPedigreeFunction", "Age"}
	for i, f := range fields {
		if f.WireKey() != wantKeys[i] {
			t.Errorf("field %d: wire key %q, want %q", i, f.WireKey(), wantKeys[i])
		}
		if f.Placeholder() == "" {
			t.Errorf("field %s has no placeholder", f)
		}
	}
}

func TestFormFieldsComplete(t *testing.T) {
	var empty FormFields
	if empty.Complete() {
		t.Fatal("empty fields should not be complete")
	}
	if got := len(empty.Missing()); got != 8 {
		t.Fatalf("expected 8 missing, got %d", got)
	}

	blank := filled(" ", "\t", "  ", "\n", " ", " ", " ", " ")
	if blank.Complete() {
		t.Fatal("whitespace-only fields should not be complete")
	}

	partial := filled("1", "2", "3", "4", "5", "6", "7", "")
	if partial.Complete() {
		t.Fatal("one empty field should block completion")
	}
	if m := partial.Missing(); len(m) != 1 || m[0] != FieldAge {
		t.Fatalf("expected only age missing, got %v", m)
	}

	garbage := filled("a", "b", "c", "d", "e", "f", "g", "h")
	if !garbage.Complete() {
		t.Fatal("non-empty fields should be complete regardless of content")
	}
}

func TestRequestEncodesWireKeys(t *testing.T) {
	ff := filled("2", "120", "70", "30", "80", "25.5", "0.5", "33")
	req, err := ff.Request()
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	var body map[string]float64
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatal(err)
	}
	if len(body) != 8 {
		t.Fatalf("expected exactly 8 keys, got %d: %s", len(body), data)
	}
	want := map[string]float64{
		"Pregnancies": 2, "Glucose": 120, "BloodPressure": 70, "SkinThickness": 30,
		"Insulin": 80, "BMI": 25.5, "DiabetesPedigreeFunction": 0.5, "Age": 33,
	}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("%s: got %v, want %v", k, body[k], v)
		}
	}
	if req.Value(FieldBMI) != 25.5 {
		t.Errorf("Value(BMI) = %v", req.Value(FieldBMI))
	}
}

func TestRequestRejectsNonNumeric(t *testing.T) {
	ff := filled("2", "abc", "70", "NaN", "80", "Inf", "0.5", " 33 ")
	_, err := ff.Request()
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
	want := []Field{FieldGlucose, FieldSkinThickness, FieldBMI}
	if len(invalid.Fields) != len(want) {
		t.Fatalf("expected %v, got %v", want, invalid.Fields)
	}
	for i := range want {
		if invalid.Fields[i] != want[i] {
			t.Errorf("field %d: got %v, want %v", i, invalid.Fields[i], want[i])
		}
	}
	if !strings.Contains(err.Error(), "Glucose") || !strings.Contains(err.Error(), "BMI") {
		t.Errorf("error should name fields, got %q", err.Error())
	}
}

func TestInvalidInputErrorSingle(t *testing.T) {
	err := &InvalidInputError{Fields: []Field{FieldAge}}
	if err.Error() != "Age is not a number" {
		t.Fatalf("got %q", err.Error())
	}
}

func TestOutcome(t *testing.T) {
	o := NewOutcome(true, 140, true)
	if o.Confidence != 100 {
		t.Errorf("expected clamp to 100, got %v", o.Confidence)
	}
	if o.Headline() != "High Risk of Diabetes" || o.Class() != 1 {
		t.Errorf("unexpected positive outcome: %+v", o)
	}

	o = NewOutcome(false, -3, false)
	if o.Confidence != 0 {
		t.Errorf("expected clamp to 0, got %v", o.Confidence)
	}
	if o.Level() != "Low Risk" || o.Class() != 0 {
		t.Errorf("unexpected negative outcome: %+v", o)
	}

	if got := ClampConfidence(math.NaN()); got != 0 {
		t.Errorf("NaN should clamp to 0, got %v", got)
	}
}
