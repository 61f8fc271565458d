package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"travel-concierge/internal/agent/orchestrator"
	"travel-concierge/internal/model"
	"travel-concierge/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockProcessor struct {
	gotMessage string
	output     orchestrator.Output
	err        error
}

func (m *mockProcessor) ProcessQuery(ctx context.Context, message string) (orchestrator.Output, error) {
	m.gotMessage = message
	if m.err != nil {
		return orchestrator.Output{}, m.err
	}
	return m.output, nil
}

func newTestRouter(uc Processor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(&mockLogger{}, uc)
	r.POST("/api/v1/agent/query", h.Query)
	return r
}

func postQuery(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/agent/query", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestQuery(t *testing.T) {
	uc := &mockProcessor{
		output: orchestrator.Output{
			Answer: "À Lisbonne, il fait 22°C.",
			Trace: model.DecisionTrace{
				RequestID:   "req-123",
				Intent:      model.IntentTravel,
				Destination: "lisbonne",
				KBUsed:      true,
				ToolsCalled: []string{"weather"},
				ToolDecision: model.ToolDecision{
					UseTools: true,
					Tools: []model.ToolRequest{
						{Name: model.ToolWeather, Params: map[string]string{"city": "lisbonne"}},
					},
					Reason: "weather keyword detected",
				},
			},
		},
	}
	r := newTestRouter(uc)

	w := postQuery(t, r, `{"message":"quel temps fait-il à Lisbonne ?"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.gotMessage != "quel temps fait-il à Lisbonne ?" {
		t.Errorf("processor got message %q", uc.gotMessage)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	raw, _ := json.Marshal(resp.Data)
	var got queryResp
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}

	if got.Answer != "À Lisbonne, il fait 22°C." {
		t.Errorf("unexpected answer %q", got.Answer)
	}
	if got.Decision.Intent != "intent_metier" {
		t.Errorf("expected intent intent_metier, got %q", got.Decision.Intent)
	}
	if got.Decision.RequestID != "req-123" {
		t.Errorf("expected request id req-123, got %q", got.Decision.RequestID)
	}
	if !got.Decision.KBUsed {
		t.Error("expected kb_used true")
	}
	if len(got.Decision.ToolsCalled) != 1 || got.Decision.ToolsCalled[0] != "weather" {
		t.Errorf("unexpected tools_called %v", got.Decision.ToolsCalled)
	}
	if len(got.Decision.ToolDecision.Tools) != 1 || got.Decision.ToolDecision.Tools[0].Name != "weather" {
		t.Errorf("unexpected tool decision %+v", got.Decision.ToolDecision)
	}
}

func TestQueryEmptyMessage(t *testing.T) {
	uc := &mockProcessor{}
	r := newTestRouter(uc)

	for _, body := range []string{`{"message":""}`, `{"message":"   "}`, `{}`} {
		w := postQuery(t, r, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, w.Code)
		}
	}
	if uc.gotMessage != "" {
		t.Error("processor should not be reached for empty message")
	}
}

func TestQueryInvalidJSON(t *testing.T) {
	r := newTestRouter(&mockProcessor{})

	w := postQuery(t, r, `{"message":`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed JSON, got %d", w.Code)
	}
}

func TestQueryPipelineError(t *testing.T) {
	uc := &mockProcessor{err: errors.New("decision LLM unavailable")}
	r := newTestRouter(uc)

	w := postQuery(t, r, `{"message":"hôtel à Rome en juillet"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}
