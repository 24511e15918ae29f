package stub

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dohr-michael/screener/internal/predict"
	"github.com/dohr-michael/screener/internal/screening"
)

const fullBody = `{"Pregnancies":1,"Glucose":85,"BloodPressure":66,"SkinThickness":29,"Insulin":0,"BMI":26.6,"DiabetesPedigreeFunction":0.351,"Age":31}`

func post(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	srv := NewServer(Options{Host: "localhost"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected status %q, got %q", "ok", body["status"])
	}
}

func TestHandlePredict(t *testing.T) {
	tests := []struct {
		name  string
		class int
		text  string
	}{
		{"negative", 0, NegativeText},
		{"positive", 1, PositiveText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewServer(Options{Class: tt.class})
			w := post(t, srv, fullBody)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}

			var body map[string]any
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["prediction_class"] != float64(tt.class) {
				t.Errorf("expected class %d, got %v", tt.class, body["prediction_class"])
			}
			if body["outcome_text"] != tt.text {
				t.Errorf("expected %q, got %v", tt.text, body["outcome_text"])
			}
			if body["message"] != SuccessMessage {
				t.Errorf("unexpected message %v", body["message"])
			}
			if _, ok := body["probability"]; ok {
				t.Error("probability should be omitted when not configured")
			}
		})
	}
}

func TestHandlePredictProbability(t *testing.T) {
	p := 0.3
	srv := NewServer(Options{Probability: &p})
	w := post(t, srv, fullBody)

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["probability"] != 0.3 {
		t.Fatalf("expected probability 0.3, got %v", body["probability"])
	}
}

func TestHandlePredictBadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing feature", `{"Pregnancies":1,"Glucose":85}`, "missing features: BloodPressure"},
		{"null feature", strings.Replace(fullBody, `"Age":31`, `"Age":null`, 1), "missing features: Age"},
		{"non-numeric", strings.Replace(fullBody, `"BMI":26.6`, `"BMI":"fat"`, 1), "non-numeric"},
		{"not json", `hello`, "malformed body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewServer(Options{})
			w := post(t, srv, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			var body errorResponse
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error == "" {
				t.Error("expected an error field")
			}
			if !strings.Contains(body.Details, tt.want) {
				t.Errorf("expected details containing %q, got %q", tt.want, body.Details)
			}
		})
	}
}

func TestHandlePredictForcedFailure(t *testing.T) {
	srv := NewServer(Options{FailStatus: http.StatusServiceUnavailable, FailDetails: "model not loaded"})
	w := post(t, srv, fullBody)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	var body errorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Details != "model not loaded" {
		t.Fatalf("unexpected details %q", body.Details)
	}
}

func TestServerStartAndClient(t *testing.T) {
	srv := NewServer(Options{Host: "127.0.0.1", Port: 0})
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	addr, err := srv.Addr(ctx)
	if err != nil {
		t.Fatalf("server did not start: %v", err)
	}

	client := predict.New("http://" + addr + "/predict")
	req := screening.Request{Glucose: 85, BloodPressure: 66, BMI: 26.6, DiabetesPedigreeFunction: 0.351, Age: 31}
	outcome, err := client.Predict(ctx, req)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if outcome.Positive || outcome.Text != NegativeText {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
	if outcome.Confidence < 80 || outcome.Confidence >= 90 || !outcome.Estimated {
		t.Fatalf("expected estimated confidence in [80,90), got %+v", outcome)
	}

	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}
}
