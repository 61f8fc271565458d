package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"travel-concierge/internal/agent"
	"travel-concierge/internal/decision"
	"travel-concierge/internal/model"
	"travel-concierge/internal/parser"
	"travel-concierge/pkg/llmprovider"
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

type stubClassifier struct {
	intent model.Intent
}

func (s *stubClassifier) Classify(ctx context.Context, message string) (model.Intent, error) {
	return s.intent, nil
}

type stubArbitrator struct {
	decision model.ToolDecision
	err      error
	gotInput decision.DecideInput
}

func (s *stubArbitrator) Decide(ctx context.Context, in decision.DecideInput) (model.ToolDecision, error) {
	s.gotInput = in
	if s.err != nil {
		return model.ToolDecision{}, s.err
	}
	return s.decision, nil
}

type stubGenerator struct {
	text      string
	err       error
	gotText   string
	callCount int
}

func (s *stubGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.callCount++
	if len(req.Messages) > 0 {
		s.gotText = req.Messages[len(req.Messages)-1].Text
	}
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{Text: s.text}, nil
}

type stubTool struct {
	name      model.ToolName
	payload   map[string]any
	err       error
	callCount int
	gotParams map[string]string
}

func (t *stubTool) Name() model.ToolName { return t.name }
func (t *stubTool) Execute(ctx context.Context, params map[string]string) (map[string]any, error) {
	t.callCount++
	t.gotParams = params
	if t.err != nil {
		return nil, t.err
	}
	return t.payload, nil
}

func newOrchestrator(t *testing.T, intent model.Intent, arb *stubArbitrator, gen *stubGenerator, tools ...agent.Tool) *Orchestrator {
	t.Helper()

	extractor, err := parser.New("Europe/Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	registry := agent.NewToolRegistry()
	for _, tool := range tools {
		registry.Register(tool)
	}

	o := New(&stubClassifier{intent: intent}, extractor, arb, registry, gen, &mockLogger{})
	o.now = func() time.Time {
		return time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)
	}
	return o
}

func TestProcessQuerySmallTalkTerminal(t *testing.T) {
	gen := &stubGenerator{text: "should not be used"}
	arb := &stubArbitrator{}
	o := newOrchestrator(t, model.IntentSmallTalk, arb, gen)

	out, err := o.ProcessQuery(context.Background(), "Bonjour !")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Answer != AnswerSmallTalk {
		t.Errorf("unexpected answer %q", out.Answer)
	}
	if out.Trace.Intent != model.IntentSmallTalk || out.Trace.KBUsed || len(out.Trace.ToolsCalled) != 0 {
		t.Errorf("unexpected trace %+v", out.Trace)
	}
	if out.Trace.RequestID == "" {
		t.Error("expected a request id on the terminal path")
	}
	if gen.callCount != 0 {
		t.Error("terminal path must not call the generator")
	}
}

func TestProcessQueryOutOfScopeTerminal(t *testing.T) {
	o := newOrchestrator(t, model.IntentOutOfScope, &stubArbitrator{}, &stubGenerator{})

	out, err := o.ProcessQuery(context.Background(), "résous cette équation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Answer != AnswerOutOfScope {
		t.Errorf("unexpected answer %q", out.Answer)
	}
	if out.Trace.ToolDecision.UseTools {
		t.Error("terminal path must not plan tools")
	}
}

func TestProcessQueryKBOnly(t *testing.T) {
	arb := &stubArbitrator{decision: model.ToolDecision{UseTools: false, Reason: "KB suffit"}}
	gen := &stubGenerator{text: "Lisbonne est idéale de mars à mai, climat doux et ensoleillé."}
	o := newOrchestrator(t, model.IntentTravel, arb, gen)

	out, err := o.ProcessQuery(context.Background(), "Je veux partir à Lisbonne en mai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if arb.gotInput.Destination != "lisbonne" || !arb.gotInput.KBAvailable {
		t.Errorf("unexpected arbitration input %+v", arb.gotInput)
	}
	if arb.gotInput.Entities.TimeSpec != "2026-05" {
		t.Errorf("unexpected time spec %q", arb.gotInput.Entities.TimeSpec)
	}
	if !out.Trace.KBUsed || len(out.Trace.ToolsCalled) != 0 {
		t.Errorf("unexpected trace %+v", out.Trace)
	}
	if gen.callCount != 1 {
		t.Errorf("expected one generation call, got %d", gen.callCount)
	}
	if !strings.Contains(gen.gotText, "doux et ensoleillé") {
		t.Error("expected KB facts in the generator context")
	}
	if out.Answer == "" {
		t.Error("expected a generated answer")
	}
}

func TestProcessQueryWeatherInvoked(t *testing.T) {
	weather := &stubTool{name: model.ToolWeather, payload: map[string]any{
		"status": "ok", "raw": "Bangkok: Nuageux +31°C", "source": "wttr.in",
	}}
	arb := &stubArbitrator{decision: model.ToolDecision{
		UseTools: true,
		Tools: []model.ToolRequest{
			{Name: model.ToolWeather, Params: map[string]string{"city": "bangkok"}},
		},
		Reason: "météo demandée",
	}}
	gen := &stubGenerator{text: "Il fait nuageux, 31°C à Bangkok."}
	o := newOrchestrator(t, model.IntentTravel, arb, gen, weather)

	out, err := o.ProcessQuery(context.Background(), "météo à Bangkok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if weather.callCount != 1 || weather.gotParams["city"] != "bangkok" {
		t.Errorf("unexpected weather invocation %+v", weather)
	}
	if len(out.Trace.ToolsCalled) != 1 || out.Trace.ToolsCalled[0] != "weather" {
		t.Errorf("unexpected tools_called %v", out.Trace.ToolsCalled)
	}
	if !strings.Contains(gen.gotText, "Nuageux") {
		t.Error("expected the weather payload in the generator context")
	}
}

func TestProcessQueryClarificationHalts(t *testing.T) {
	flights := &stubTool{name: model.ToolFlights}
	arb := &stubArbitrator{decision: model.ToolDecision{
		UseTools: true,
		Tools: []model.ToolRequest{
			{Name: model.ToolFlights, Params: map[string]string{"from": "paris", "to": "bangkok"}},
		},
		Reason: "vols demandés",
	}}
	gen := &stubGenerator{text: "should not be used"}
	o := newOrchestrator(t, model.IntentTravel, arb, gen, flights)

	// route present, no month: the gate halts before any invocation
	out, err := o.ProcessQuery(context.Background(), "vols de Paris à Bangkok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if flights.callCount != 0 {
		t.Error("no tool may run once clarification is needed")
	}
	if gen.callCount != 0 {
		t.Error("the synthesizer must not run on the clarification path")
	}
	if !strings.Contains(out.Answer, "mois") {
		t.Errorf("expected the dates/month question, got %q", out.Answer)
	}
	if out.Trace.ToolDecision.UseTools || len(out.Trace.ToolDecision.Tools) != 0 {
		t.Errorf("trace decision must be overwritten, got %+v", out.Trace.ToolDecision)
	}
	if !strings.Contains(out.Trace.ToolDecision.Reason, "missing parameter for flights") {
		t.Errorf("unexpected reason %q", out.Trace.ToolDecision.Reason)
	}
	if len(out.Trace.ToolsCalled) != 0 {
		t.Errorf("unexpected tools_called %v", out.Trace.ToolsCalled)
	}
}

func TestProcessQueryToolFailureContinues(t *testing.T) {
	weather := &stubTool{name: model.ToolWeather, err: errors.New("wttr timeout")}
	hotels := &stubTool{name: model.ToolHotels, payload: map[string]any{
		"status": "ok", "sample_size": 5, "min_price_eur": 75, "avg_price_eur": 109,
	}}
	arb := &stubArbitrator{decision: model.ToolDecision{
		UseTools: true,
		Tools: []model.ToolRequest{
			{Name: model.ToolWeather, Params: map[string]string{"city": "rome"}},
			{Name: model.ToolHotels, Params: map[string]string{"city": "rome", "month": "2026-05"}},
		},
		Reason: "météo et hébergement demandés",
	}}
	gen := &stubGenerator{text: "Voici ce que j'ai trouvé pour Rome."}
	o := newOrchestrator(t, model.IntentTravel, arb, gen, weather, hotels)

	out, err := o.ProcessQuery(context.Background(), "météo et hôtel à Rome en mai")
	if err != nil {
		t.Fatalf("a tool failure must not fail the request: %v", err)
	}

	if hotels.callCount != 1 {
		t.Error("pipeline must continue after a tool failure")
	}
	if len(out.Trace.ToolsCalled) != 2 {
		t.Errorf("both invocations belong in tools_called, got %v", out.Trace.ToolsCalled)
	}
	if !strings.Contains(gen.gotText, "weather_error") {
		t.Error("expected the failure recorded under weather_error")
	}
}

func TestProcessQueryPriceFieldsInadmissibleWithoutFlights(t *testing.T) {
	hotels := &stubTool{name: model.ToolHotels, payload: map[string]any{
		"status": "ok", "sample_size": 5, "min_price_eur": 75, "avg_price_eur": 109,
	}}
	arb := &stubArbitrator{decision: model.ToolDecision{
		UseTools: true,
		Tools: []model.ToolRequest{
			{Name: model.ToolHotels, Params: map[string]string{"city": "rome", "month": "2026-05"}},
		},
		Reason: "hébergement demandé",
	}}
	gen := &stubGenerator{text: "Comptez un budget raisonnable à Rome."}
	o := newOrchestrator(t, model.IntentTravel, arb, gen, hotels)

	if _, err := o.ProcessQuery(context.Background(), "hôtel à Rome en mai"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(gen.gotText, "min_price_eur") || strings.Contains(gen.gotText, "avg_price_eur") {
		t.Error("price fields must not reach the generator without a flights result")
	}
	if !strings.Contains(gen.gotText, "sample_size") {
		t.Error("non-price hotel fields remain admissible")
	}
}

func TestProcessQueryArbitrationFailureIsFatal(t *testing.T) {
	arb := &stubArbitrator{err: errors.New("unparseable suggestion")}
	o := newOrchestrator(t, model.IntentTravel, arb, &stubGenerator{})

	if _, err := o.ProcessQuery(context.Background(), "hôtel à Rome en mai"); err == nil {
		t.Fatal("arbitration failure must fail the request")
	}
}

func TestProcessQueryGenerationFailureIsFatal(t *testing.T) {
	arb := &stubArbitrator{decision: model.ToolDecision{Reason: "KB suffit"}}
	gen := &stubGenerator{err: errors.New("all providers failed")}
	o := newOrchestrator(t, model.IntentTravel, arb, gen)

	if _, err := o.ProcessQuery(context.Background(), "Je veux partir à Lisbonne en mai"); err == nil {
		t.Fatal("generation failure must fail the request")
	}
}
