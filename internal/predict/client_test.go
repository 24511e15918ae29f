package predict

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/dohr-michael/screener/internal/screening"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleRequest() screening.Request {
	return screening.Request{
		Pregnancies: 2, Glucose: 120, BloodPressure: 70, SkinThickness: 30,
		Insulin: 80, BMI: 25.5, DiabetesPedigreeFunction: 0.5, Age: 33,
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	return New(srv.URL+"/predict", opts...)
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

func TestPredictSendsContract(t *testing.T) {
	var gotBody map[string]float64
	var gotMethod, gotPath, gotCT string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotCT = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		respond(http.StatusOK, `{"prediction_class": 0, "outcome_text": "Negative (Low Risk of Diabetes)"}`)(w, r)
	})

	outcome, err := client.Predict(context.Background(), sampleRequest())
	if err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPost || gotPath != "/predict" {
		t.Errorf("expected POST /predict, got %s %s", gotMethod, gotPath)
	}
	if gotCT != "application/json" {
		t.Errorf("expected application/json, got %q", gotCT)
	}
	if len(gotBody) != 8 || gotBody["DiabetesPedigreeFunction"] != 0.5 || gotBody["BMI"] != 25.5 {
		t.Errorf("unexpected body: %v", gotBody)
	}
	if outcome.Text != "Negative (Low Risk of Diabetes)" {
		t.Errorf("expected outcome text to be kept, got %q", outcome.Text)
	}
}

func TestPredictConfidenceRanges(t *testing.T) {
	for _, r := range []float64{0, 0.25, 0.5, 0.999999} {
		src := Placeholder{Float: func() float64 { return r }}

		pos := newTestClient(t, respond(http.StatusOK, `{"prediction_class": 1}`), WithConfidence(src))
		outcome, err := pos.Predict(context.Background(), sampleRequest())
		if err != nil {
			t.Fatal(err)
		}
		if !outcome.Positive {
			t.Fatal("expected positive outcome")
		}
		if outcome.Confidence <= 80 || outcome.Confidence > 100 {
			t.Errorf("positive confidence %v outside (80,100]", outcome.Confidence)
		}
		if !outcome.Estimated {
			t.Error("placeholder confidence should be marked estimated")
		}

		neg := newTestClient(t, respond(http.StatusOK, `{"prediction_class": 0}`), WithConfidence(src))
		outcome, err = neg.Predict(context.Background(), sampleRequest())
		if err != nil {
			t.Fatal(err)
		}
		if outcome.Positive {
			t.Fatal("expected negative outcome")
		}
		if outcome.Confidence < 80 || outcome.Confidence >= 90 {
			t.Errorf("negative confidence %v outside [80,90)", outcome.Confidence)
		}
	}
}

func TestPredictDefaultPlaceholder(t *testing.T) {
	client := newTestClient(t, respond(http.StatusOK, `{"prediction_class": 1}`))
	for i := 0; i < 50; i++ {
		outcome, err := client.Predict(context.Background(), sampleRequest())
		if err != nil {
			t.Fatal(err)
		}
		if outcome.Confidence <= 80 || outcome.Confidence > 100 {
			t.Fatalf("confidence %v outside (80,100]", outcome.Confidence)
		}
	}
}

func TestPredictServerProbability(t *testing.T) {
	client := newTestClient(t, respond(http.StatusOK, `{"prediction_class": 0, "probability": 0.3}`))
	outcome, err := client.Predict(context.Background(), sampleRequest())
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Estimated {
		t.Error("server probability should not be marked estimated")
	}
	if diff := outcome.Confidence - 70; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected confidence 70, got %v", outcome.Confidence)
	}

	client = newTestClient(t, respond(http.StatusOK, `{"prediction_class": 1, "probability": 0.92}`))
	outcome, err = client.Predict(context.Background(), sampleRequest())
	if err != nil {
		t.Fatal(err)
	}
	if diff := outcome.Confidence - 92; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected confidence 92, got %v", outcome.Confidence)
	}
}

func TestPredictServiceErrorDetails(t *testing.T) {
	client := newTestClient(t, respond(http.StatusBadRequest, `{"error": "Prediction failed due to bad input or server error.", "details": "model not loaded"}`))
	_, err := client.Predict(context.Background(), sampleRequest())

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %T: %v", err, err)
	}
	if svcErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", svcErr.StatusCode)
	}
	if err.Error() != "model not loaded" {
		t.Errorf("expected detail message, got %q", err.Error())
	}
	if !errors.Is(err, ErrService) {
		t.Error("expected errors.Is(err, ErrService)")
	}
}

func TestPredictServiceErrorFallback(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"empty body", http.StatusInternalServerError, ""},
		{"not json", http.StatusBadGateway, "no available server"},
		{"no details", http.StatusInternalServerError, `{"error": "Backend files not loaded. Check server logs."}`},
		{"details wrong type", http.StatusServiceUnavailable, `{"details": 42}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, respond(tt.status, tt.body))
			_, err := client.Predict(context.Background(), sampleRequest())
			if !errors.Is(err, ErrService) {
				t.Fatalf("expected service error, got %v", err)
			}
			want := "Server returned status " + strconv.Itoa(tt.status)
			if err.Error() != want {
				t.Errorf("expected %q, got %q", want, err.Error())
			}
		})
	}
}

func TestPredictProtocolErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>hello</html>"},
		{"missing class", `{"outcome_text": "??"}`},
		{"class out of range", `{"prediction_class": 2}`},
		{"class not integer", `{"prediction_class": "1"}`},
		{"probability out of range", `{"prediction_class": 1, "probability": 1.5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, respond(http.StatusOK, tt.body))
			_, err := client.Predict(context.Background(), sampleRequest())
			var protoErr *ProtocolError
			if !errors.As(err, &protoErr) {
				t.Fatalf("expected ProtocolError, got %T: %v", err, err)
			}
			if !errors.Is(err, ErrProtocol) {
				t.Error("expected errors.Is(err, ErrProtocol)")
			}
		})
	}
}

func TestPredictNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL + "/predict"
	srv.Close()

	client := New(endpoint, WithLogger(quietLogger()))
	_, err := client.Predict(context.Background(), sampleRequest())

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %T: %v", err, err)
	}
	if !errors.Is(err, ErrNetwork) {
		t.Error("expected errors.Is(err, ErrNetwork)")
	}
	if netErr.Endpoint != endpoint {
		t.Errorf("expected endpoint %q, got %q", endpoint, netErr.Endpoint)
	}
}

func TestPredictTimeout(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, WithTimeout(50*time.Millisecond))
	defer close(release)

	_, err := client.Predict(context.Background(), sampleRequest())
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected network error on timeout, got %v", err)
	}
}

func TestNewDefaults(t *testing.T) {
	c := New("")
	if c.Endpoint() != DefaultEndpoint {
		t.Errorf("expected default endpoint, got %q", c.Endpoint())
	}
	if !c.confidence.Estimated() {
		t.Error("default confidence source should be the placeholder")
	}
}
