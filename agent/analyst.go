package agent

import (
	"context"
	"fmt"

	"github.com/etnz/fifolot"
	"github.com/etnz/fifolot/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Analyst is the chat session with the trade-data analyst: a Gemini chat
// whose tools read the matching result it was created over.
type Analyst struct {
	result *fifolot.Result
	tools  []*genai.FunctionDeclaration
	chat   *genai.Chat
}

// NewAnalyst creates an analyst over a processed matching result.
func NewAnalyst(result *fifolot.Result) *Analyst {
	return &Analyst{
		result: result,
		tools:  []*genai.FunctionDeclaration{lotsDecl, summaryDecl, diagnosticsDecl},
	}
}

// Start creates the underlying chat session.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{FunctionDeclarations: a.tools}},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an analyst of the user's trade sheet. The sheet was already
			processed: sells were matched against purchases using FIFO, and you
			have tools to read what remains. Use them for every figure you
			state, never invent numbers. Quantities are shares; amounts carry a
			currency. When the diagnostics report excluded securities or
			over-sells, mention them when relevant to the question.
		`}}},
	}
	chat, err := client.Chats.Create(ctx, model, cfg, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask is a wrapper on top of Chat.Send that resolves function calls against
// the matching result until the model produces a real answer.
func (a *Analyst) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := a.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from analyst")
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		fresp := a.call(part0.FunctionCall)
		// Ask again with the response the model asked for, until we have a
		// real answer.
		return a.Ask(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return resp.Candidates[0].Content, nil
}

var lotsDecl = &genai.FunctionDeclaration{
	Name:        "remaining_lots",
	Description: "List the purchase lots with remaining quantity after FIFO matching, optionally filtered by scrip name.",
	Parameters: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"scrip": {
				Type:        genai.TypeString,
				Description: "Optional scrip name to filter on. Empty means all securities.",
			},
		},
	},
	Response: &genai.Schema{Type: genai.TypeString, Description: "Markdown table of remaining lots."},
}

var summaryDecl = &genai.FunctionDeclaration{
	Name:        "holdings_summary",
	Description: "Per-security totals of the remaining holdings: shares, cost, purchase date range, lot count, average cost per share.",
	Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}},
	Response:    &genai.Schema{Type: genai.TypeString, Description: "Markdown table of the summary."},
}

var diagnosticsDecl = &genai.FunctionDeclaration{
	Name:        "diagnostics",
	Description: "Warnings from the matching run: dropped malformed rows, securities excluded for out-of-order trades, and over-sell events.",
	Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}},
	Response:    &genai.Schema{Type: genai.TypeString, Description: "Markdown list of warnings."},
}

// call resolves one function call against the matching result.
func (a *Analyst) call(call *genai.FunctionCall) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: call.ID, Name: call.Name}
	var output string
	switch call.Name {
	case lotsDecl.Name:
		scrip, _ := call.Args["scrip"].(string)
		lots := a.result.Lots
		if scrip != "" {
			lots = nil
			for _, l := range a.result.Lots {
				if l.Scrip == scrip {
					lots = append(lots, l)
				}
			}
		}
		output = renderer.LotsMarkdown(lots)
	case summaryDecl.Name:
		output = renderer.SummaryMarkdown(a.result.Summaries)
	case diagnosticsDecl.Name:
		output = renderer.DiagnosticsMarkdown(a.result.Diagnostics)
		if output == "" {
			output = "No warnings: every row parsed and every security matched cleanly."
		}
	default:
		fresp.Response = map[string]any{"error": fmt.Sprintf("unknown function %s", call.Name)}
		return fresp
	}
	fresp.Response = map[string]any{"output": output}
	return fresp
}
