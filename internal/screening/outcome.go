package screening

// Outcome is a classification result ready for display.
type Outcome struct {
	Positive   bool
	Confidence float64 // percent, always within [0,100]
	Estimated  bool    // Confidence is a placeholder, not a model probability
	Text       string  // classifier-supplied outcome text, if any
}

// NewOutcome builds an Outcome, clamping confidence into [0,100].
func NewOutcome(positive bool, confidence float64, estimated bool) Outcome {
	return Outcome{
		Positive:   positive,
		Confidence: ClampConfidence(confidence),
		Estimated:  estimated,
	}
}

// ClampConfidence bounds c to [0,100]. NaN maps to 0.
func ClampConfidence(c float64) float64 {
	switch {
	case c != c:
		return 0
	case c < 0:
		return 0
	case c > 100:
		return 100
	}
	return c
}

// Level returns "High Risk" or "Low Risk".
func (o Outcome) Level() string {
	if o.Positive {
		return "High Risk"
	}
	return "Low Risk"
}

// Headline returns the full result title.
func (o Outcome) Headline() string {
	return o.Level() + " of Diabetes"
}

// Class returns the classifier code: 1 for positive, 0 for negative.
func (o Outcome) Class() int {
	if o.Positive {
		return 1
	}
	return 0
}
