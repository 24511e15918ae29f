package predict

import (
	"math/rand/v2"

	"github.com/dohr-michael/screener/internal/screening"
)

// ConfidenceSource supplies a display confidence when the classifier does
// not return a probability.
type ConfidenceSource interface {
	// Confidence returns a percentage in [0,100] for the given outcome.
	Confidence(positive bool) float64
	// Estimated reports whether values are placeholders.
	Estimated() bool
}

// Placeholder synthesises a confidence biased by outcome: positive results
// land in [85,95), negative ones in [80,90). It stands in until the
// classifier exposes predict_proba output.
type Placeholder struct {
	// Float returns a value in [0,1). Defaults to math/rand/v2.
	Float func() float64
}

// Confidence implements ConfidenceSource.
func (p Placeholder) Confidence(positive bool) float64 {
	r := rand.Float64
	if p.Float != nil {
		r = p.Float
	}
	if positive {
		return 85 + r()*10
	}
	return 80 + r()*10
}

// Estimated implements ConfidenceSource.
func (Placeholder) Estimated() bool { return true }

// fromProbability converts the positive-class probability into the
// confidence of the predicted class.
func fromProbability(positive bool, p float64) float64 {
	if !positive {
		p = 1 - p
	}
	return screening.ClampConfidence(p * 100)
}
