package agent

import (
	"context"

	"travel-concierge/internal/model"
)

// Tool represents one external data-acquisition capability. Parameters
// arrive already sanitized and re-derived by the arbitrator; the tool's
// payload carries source, url, and scraped_at metadata.
type Tool interface {
	// Name returns the tool name from the fixed allow-list.
	Name() model.ToolName

	// Execute runs the tool with sanitized parameters.
	Execute(ctx context.Context, params map[string]string) (map[string]any, error)
}

// ToolRegistry manages available tools.
type ToolRegistry struct {
	tools map[model.ToolName]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[model.ToolName]Tool),
	}
}

// Register adds a tool to the registry.
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name model.ToolName) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools in allow-list order.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, name := range model.AllowedTools {
		if tool, ok := r.tools[name]; ok {
			tools = append(tools, tool)
		}
	}
	return tools
}
