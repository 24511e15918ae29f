// Command predict_flow checks a running classifier against the /predict
// contract.
//
// It posts a complete request through the prediction client, then a body
// with a missing feature, and verifies the answers.
//
// Usage: predict_flow -endpoint http://127.0.0.1:PORT/predict -class 0
//
// Exit codes:
//
//	0 = all checks passed
//	1 = a check failed
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dohr-michael/screener/internal/form"
	"github.com/dohr-michael/screener/internal/predict"
	"github.com/dohr-michael/screener/internal/screening"
)

func main() {
	endpoint := flag.String("endpoint", predict.DefaultEndpoint, "Classifier URL")
	class := flag.Int("class", -1, "Expected prediction_class (-1 = any)")
	timeout := flag.Duration("timeout", 30*time.Second, "Overall timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, *endpoint, *class); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("PASS")
}

var sample = map[screening.Field]string{
	screening.FieldPregnancies:      "1",
	screening.FieldGlucose:          "85",
	screening.FieldBloodPressure:    "66",
	screening.FieldSkinThickness:    "29",
	screening.FieldInsulin:          "0",
	screening.FieldBMI:              "26.6",
	screening.FieldDiabetesPedigree: "0.351",
	screening.FieldAge:              "31",
}

func run(ctx context.Context, endpoint string, class int) error {
	// ── Step 1: complete request through the form controller ────────────
	ctrl := form.New()
	for f, v := range sample {
		ctrl.SetField(f, v)
	}
	if err := ctrl.Submit(ctx, predict.New(endpoint)); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	outcome, ok := ctrl.Outcome()
	if !ok {
		return errors.New("no outcome after a successful submit")
	}
	if class >= 0 && outcome.Class() != class {
		return fmt.Errorf("expected class %d, got %d", class, outcome.Class())
	}
	if outcome.Confidence < 0 || outcome.Confidence > 100 {
		return fmt.Errorf("confidence %v outside [0,100]", outcome.Confidence)
	}
	fmt.Printf("CHECK prediction: %s, %.1f%% (estimated=%v)\n", outcome.Headline(), outcome.Confidence, outcome.Estimated)

	// ── Step 2: a missing feature must be rejected with details ─────────
	body, _ := json.Marshal(map[string]float64{"Glucose": 85})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("post incomplete body: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 400 {
		return fmt.Errorf("incomplete body accepted with status %d", resp.StatusCode)
	}
	var failure struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&failure); err != nil {
		return fmt.Errorf("decode error body: %w", err)
	}
	fmt.Printf("CHECK rejection: %d %s (%s)\n", resp.StatusCode, failure.Error, failure.Details)
	return nil
}
