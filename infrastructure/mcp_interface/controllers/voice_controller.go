package controllers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/panjf2000/ants/v2"

	"github.com/mylxsw/voice-gen-mcp/application/ports/inbound"
	"github.com/mylxsw/voice-gen-mcp/application/ports/outbound"
	"github.com/mylxsw/voice-gen-mcp/domain"
	"github.com/mylxsw/voice-gen-mcp/middleware"
)

// GenerateVoiceParams is the tool input schema.
type GenerateVoiceParams struct {
	Text    string `json:"text" mcp:"The text to convert to speech"`
	Model   string `json:"model,omitempty" mcp:"Model to use for generation (default: speech-2.5-hd-preview)"`
	VoiceID string `json:"voice_id,omitempty" mcp:"Voice ID to use (default: mylxsw_voice_1)"`
}

type VoiceController struct {
	logger         outbound.LoggerPort
	workerPool     *ants.Pool
	voiceGenerator inbound.VoiceGeneratorPort
	authGate       middleware.AuthGate
}

func NewVoiceController(logger outbound.LoggerPort, workerPool *ants.Pool, voiceGenerator inbound.VoiceGeneratorPort, authGate middleware.AuthGate) *VoiceController {
	return &VoiceController{
		logger:         logger,
		workerPool:     workerPool,
		voiceGenerator: voiceGenerator,
		authGate:       authGate,
	}
}

// RegisterTools adds the generate_voice tool to the server. The tool always
// answers with a plain text result; failures are descriptive strings, never
// protocol-level errors.
func (c *VoiceController) RegisterTools(server *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "generate_voice",
		Title:       "Generate Voice",
		Description: "Generate speech audio from text using the Minimax AI API and upload it to S3, returning a public URL.",
		Annotations: &mcp.ToolAnnotations{
			Title:        "Voice Generation",
			ReadOnlyHint: false,
		},
	}

	handler := c.authGate.Wrap(c.handleGenerateVoice)

	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, input GenerateVoiceParams) (*mcp.CallToolResult, any, error) {
		reqCtx := requestContext(ctx, req)

		result := c.invoke(ctx, handler, reqCtx, domain.GenerationRequest{
			Text:    input.Text,
			Model:   input.Model,
			VoiceID: input.VoiceID,
		})

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: result}},
		}, nil, nil
	})
}

func (c *VoiceController) handleGenerateVoice(ctx context.Context, _ *middleware.RequestContext, req domain.GenerationRequest) string {
	return c.voiceGenerator.GenerateVoice(ctx, req)
}

// invoke runs the handler on the worker pool. A panicking invocation degrades
// to an "Unexpected error" result instead of tearing down the transport.
func (c *VoiceController) invoke(ctx context.Context, handler middleware.ToolFunc, reqCtx *middleware.RequestContext, req domain.GenerationRequest) string {
	resultCh := make(chan string, 1)

	err := c.workerPool.Submit(func() {
		defer func() {
			if p := recover(); p != nil {
				c.logger.Error(fmt.Errorf("%v", p), "Panic during voice generation")
				resultCh <- fmt.Sprintf("Unexpected error: %v", p)
			}
		}()

		resultCh <- handler(ctx, reqCtx, req)
	})
	if err != nil {
		c.logger.Error(err, "Failed to submit voice generation task")
		return fmt.Sprintf("Unexpected error: %v", err)
	}

	return <-resultCh
}

// requestContext prefers HTTP headers captured by the transport middleware
// and falls back to request metadata (the api_key field) for transports
// without headers.
func requestContext(ctx context.Context, req *mcp.CallToolRequest) *middleware.RequestContext {
	if reqCtx := middleware.RequestContextFrom(ctx); reqCtx != nil {
		return reqCtx
	}

	if req == nil || req.Params == nil || req.Params.Meta == nil {
		return nil
	}

	apiKey, ok := req.Params.Meta["api_key"].(string)
	if !ok || apiKey == "" {
		return nil
	}

	return &middleware.RequestContext{
		Metadata: map[string]string{"api_key": apiKey},
	}
}
