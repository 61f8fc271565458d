package router

import (
	"context"
	"errors"
	"testing"

	"travel-concierge/internal/model"
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

type mockGenerator struct {
	text      string
	err       error
	callCount int
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.callCount++
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text}, nil
}

func TestRuleClassifier(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    model.Intent
	}{
		{"greeting", "Bonjour !", model.IntentSmallTalk},
		{"greeting with accents and casing", "BONSOIR", model.IntentSmallTalk},
		{"thanks", "Merci beaucoup", model.IntentSmallTalk},
		{"identity question", "tu es qui ?", model.IntentSmallTalk},
		{"short affirmation", "ok super", model.IntentSmallTalk},
		{"affirmation capped at four words", "top je crois vraiment honnêtement que oui", model.IntentOutOfScope},
		{"travel verb", "Je veux partir à Lisbonne en mai", model.IntentTravel},
		{"weather request", "météo à Bangkok", model.IntentTravel},
		{"flight request", "vols de Paris à Bangkok", model.IntentTravel},
		{"hotel request", "un hôtel pas cher à Rome", model.IntentTravel},
		{"travel keyword beats length", "vol", model.IntentTravel},
		{"two words unresolved", "Lisbonne demain", model.IntentAmbiguous},
		{"single word unresolved", "Bangkok", model.IntentAmbiguous},
		{"unrelated long message", "peux tu resoudre cette equation differentielle pour moi", model.IntentOutOfScope},
	}

	c := NewRuleClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(context.Background(), tt.message)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.message, got, tt.want)
			}
		})
	}
}

func TestRuleClassifierAccentInsensitive(t *testing.T) {
	c := NewRuleClassifier()

	a, _ := c.Classify(context.Background(), "Bonjour")
	b, _ := c.Classify(context.Background(), "bonjour")
	if a != b || a != model.IntentSmallTalk {
		t.Errorf("expected identical small_talk classification, got %s and %s", a, b)
	}
}

func TestEscalationClassifier(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
		want    model.Intent
	}{
		{"exact label", "intent_metier", false, model.IntentTravel},
		{"label with casing and spacing", "  Hors_Perimetre \n", false, model.IntentOutOfScope},
		{"label inside a sentence", "la catégorie est small_talk, sans hésiter", false, model.IntentSmallTalk},
		{"unrecognized output", "je ne sais pas", true, model.IntentAmbiguous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewEscalationClassifier(&mockGenerator{text: tt.text}, &mockLogger{})
			got, err := c.Classify(context.Background(), "Lisbonne demain")
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRouterEscalatesOnce(t *testing.T) {
	gen := &mockGenerator{text: "intent_metier"}
	r := New(gen, &mockLogger{})

	intent, err := r.Classify(context.Background(), "Lisbonne demain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent != model.IntentTravel {
		t.Errorf("expected intent_metier, got %s", intent)
	}
	if gen.callCount != 1 {
		t.Errorf("expected exactly one escalation call, got %d", gen.callCount)
	}
}

func TestRouterSkipsEscalationWhenRulesResolve(t *testing.T) {
	gen := &mockGenerator{text: "hors_perimetre"}
	r := New(gen, &mockLogger{})

	intent, err := r.Classify(context.Background(), "bonjour")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent != model.IntentSmallTalk {
		t.Errorf("expected small_talk, got %s", intent)
	}
	if gen.callCount != 0 {
		t.Errorf("expected no escalation call, got %d", gen.callCount)
	}
}

func TestRouterFailSafeOnEscalationFailure(t *testing.T) {
	tests := []struct {
		name string
		gen  *mockGenerator
	}{
		{"transport failure", &mockGenerator{err: errors.New("connection refused")}},
		{"unrecognized label", &mockGenerator{text: "aucune idée"}},
		{"model stays ambiguous", &mockGenerator{text: "ambigu"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.gen, &mockLogger{})
			intent, err := r.Classify(context.Background(), "Lisbonne demain")
			if err != nil {
				t.Fatalf("escalation failure must not fail the request: %v", err)
			}
			if intent != model.IntentOutOfScope {
				t.Errorf("expected hors_perimetre fail-safe, got %s", intent)
			}
		})
	}
}
