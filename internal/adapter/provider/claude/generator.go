// Package claude implements the extraction Generator on the Anthropic
// Messages API.
package claude

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"syscall"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/fairway-backend/internal/config"
	"github.com/heartmarshall/fairway-backend/internal/domain"
	"github.com/heartmarshall/fairway-backend/internal/extraction"
)

var _ extraction.Generator = (*Generator)(nil)

// Generator calls Claude. SDK-level retries are disabled; the extraction
// client owns the retry policy.
type Generator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// New creates a Generator, or returns nil when no API key is configured.
func New(cfg config.ExtractionConfig, log *slog.Logger) *Generator {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	return &Generator{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       log.With("provider", "claude"),
	}
}

// Generate sends the documents followed by the prompt as one user turn and
// returns the concatenated text of the reply.
func (g *Generator) Generate(ctx context.Context, req extraction.Request) (string, error) {
	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(req.Parts)+1)
	for _, p := range req.Parts {
		blocks = append(blocks, partBlock(p))
	}
	blocks = append(blocks, anthropic.NewTextBlock(req.Prompt))

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return "", classify(err)
	}

	if string(msg.StopReason) == "refusal" {
		return "", domain.NewExtractionError(domain.CategoryContentBlocked,
			errors.New("model declined to process the documents"))
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", domain.NewExtractionError(domain.CategoryMalformedResponse,
			errors.New("empty response"))
	}

	g.log.DebugContext(ctx, "generation finished",
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)
	return sb.String(), nil
}

func partBlock(p extraction.Part) anthropic.ContentBlockParamUnion {
	switch {
	case p.Text != "":
		return anthropic.NewTextBlock(fmt.Sprintf("<document name=%q type=%q>\n%s\n</document>", p.Name, p.MediaType, p.Text))
	case extraction.IsImage(p.MediaType):
		return anthropic.NewImageBlockBase64(p.MediaType, base64.StdEncoding.EncodeToString(p.Data))
	default:
		return anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{
			Data: base64.StdEncoding.EncodeToString(p.Data),
		})
	}
}

// classify maps an SDK or transport error onto an extraction category.
// Context errors are returned unchanged.
func classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return domain.NewExtractionError(categoryForStatus(apiErr.StatusCode),
			fmt.Errorf("anthropic api status %d", apiErr.StatusCode))
	}

	if isNetworkError(err) {
		return domain.NewExtractionError(domain.CategoryServiceUnavailable, err)
	}
	return domain.NewExtractionError(domain.CategoryUnknown, err)
}

func categoryForStatus(code int) domain.ExtractionCategory {
	switch code {
	case http.StatusTooManyRequests:
		return domain.CategoryRateLimited
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable,
		http.StatusGatewayTimeout, 529:
		return domain.CategoryServiceUnavailable
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.CategoryAuthorization
	case http.StatusRequestEntityTooLarge:
		return domain.CategorySizeExceeded
	}
	return domain.CategoryUnknown
}

func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET)
}
