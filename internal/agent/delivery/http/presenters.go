package http

import (
	"travel-concierge/internal/agent/orchestrator"
	"travel-concierge/internal/model"
)

// --- Request DTOs ---

type queryReq struct {
	Message string `json:"message"`
}

// --- Response DTOs ---

type toolReqResp struct {
	Name   string            `json:"name"`
	Params map[string]string `json:"params"`
}

type toolDecisionResp struct {
	UseTools bool          `json:"use_tools"`
	Tools    []toolReqResp `json:"tools"`
	Reason   string        `json:"reason"`
}

type decisionResp struct {
	Intent       string           `json:"intent"`
	Destination  string           `json:"destination,omitempty"`
	KBUsed       bool             `json:"kb_used"`
	ToolsCalled  []string         `json:"tools_called"`
	ToolDecision toolDecisionResp `json:"tool_decision"`
	RequestID    string           `json:"request_id"`
}

type queryResp struct {
	Answer   string       `json:"answer"`
	Decision decisionResp `json:"decision"`
}

func newToolDecisionResp(d model.ToolDecision) toolDecisionResp {
	tools := make([]toolReqResp, len(d.Tools))
	for i, t := range d.Tools {
		tools[i] = toolReqResp{Name: string(t.Name), Params: t.Params}
	}
	return toolDecisionResp{
		UseTools: d.UseTools,
		Tools:    tools,
		Reason:   d.Reason,
	}
}

func (h *handler) newQueryResp(out orchestrator.Output) queryResp {
	return queryResp{
		Answer: out.Answer,
		Decision: decisionResp{
			Intent:       string(out.Trace.Intent),
			Destination:  out.Trace.Destination,
			KBUsed:       out.Trace.KBUsed,
			ToolsCalled:  out.Trace.ToolsCalled,
			ToolDecision: newToolDecisionResp(out.Trace.ToolDecision),
			RequestID:    out.Trace.RequestID,
		},
	}
}
