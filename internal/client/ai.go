package client

import (
	"context"
	"fmt"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// AIClient implements domo.AIClient as a composite over the AI service
// sub-clients.
type AIClient struct {
	text     *AITextClient
	messages *AIMessagesClient
	analysis *AIAnalysisClient
	media    *AIMediaClient
}

// NewAIClient creates the composite AI client.
func NewAIClient(httpClient *internalhttp.Client) *AIClient {
	return &AIClient{
		text:     &AITextClient{httpClient: httpClient},
		messages: &AIMessagesClient{httpClient: httpClient},
		analysis: &AIAnalysisClient{httpClient: httpClient},
		media:    &AIMediaClient{httpClient: httpClient},
	}
}

// Text implements domo.AIClient.Text.
func (c *AIClient) Text() domo.AITextClient { return c.text }

// Messages implements domo.AIClient.Messages.
func (c *AIClient) Messages() domo.AIMessagesClient { return c.messages }

// Analysis implements domo.AIClient.Analysis.
func (c *AIClient) Analysis() domo.AIAnalysisClient { return c.analysis }

// Media implements domo.AIClient.Media.
func (c *AIClient) Media() domo.AIMediaClient { return c.media }

// AITextClient implements domo.AITextClient.
type AITextClient struct {
	httpClient *internalhttp.Client
}

// Generate implements domo.AITextClient.Generate.
func (c *AITextClient) Generate(ctx context.Context, request *domo.AITextRequest) (*domo.AITextResponse, error) {
	return postAI[domo.AITextResponse](ctx, c.httpClient, "/ai/v1/text/generation", request)
}

// ToSQL implements domo.AITextClient.ToSQL.
func (c *AITextClient) ToSQL(ctx context.Context, request *domo.AISQLRequest) (*domo.AITextResponse, error) {
	return postAI[domo.AITextResponse](ctx, c.httpClient, "/ai/v1/text/sql", request)
}

// Summarize implements domo.AITextClient.Summarize.
func (c *AITextClient) Summarize(ctx context.Context, request *domo.AITextRequest) (*domo.AITextResponse, error) {
	return postAI[domo.AITextResponse](ctx, c.httpClient, "/ai/v1/text/summarize", request)
}

// Beastmode implements domo.AITextClient.Beastmode.
func (c *AITextClient) Beastmode(ctx context.Context, request *domo.AITextRequest) (*domo.AITextResponse, error) {
	return postAI[domo.AITextResponse](ctx, c.httpClient, "/ai/v1/text/beastmode", request)
}

// AIMessagesClient implements domo.AIMessagesClient.
type AIMessagesClient struct {
	httpClient *internalhttp.Client
}

// Chat implements domo.AIMessagesClient.Chat.
func (c *AIMessagesClient) Chat(ctx context.Context, request *domo.AIChatRequest) (*domo.AIChatResponse, error) {
	return postAI[domo.AIChatResponse](ctx, c.httpClient, "/ai/v1/messages/chat", request)
}

// Tools implements domo.AIMessagesClient.Tools.
func (c *AIMessagesClient) Tools(ctx context.Context, request *domo.AIChatRequest) (*domo.AIChatResponse, error) {
	return postAI[domo.AIChatResponse](ctx, c.httpClient, "/ai/v1/messages/tools", request)
}

// AIAnalysisClient implements domo.AIAnalysisClient.
type AIAnalysisClient struct {
	httpClient *internalhttp.Client
}

// Sentiment implements domo.AIAnalysisClient.Sentiment.
func (c *AIAnalysisClient) Sentiment(ctx context.Context, request *domo.AIAnalysisRequest) (*domo.AIAnalysisResponse, error) {
	return postAI[domo.AIAnalysisResponse](ctx, c.httpClient, "/ai/v1/text/analysis/sentiment", request)
}

// TargetedSentiment implements domo.AIAnalysisClient.TargetedSentiment.
func (c *AIAnalysisClient) TargetedSentiment(ctx context.Context, request *domo.AIAnalysisRequest) (*domo.AIAnalysisResponse, error) {
	return postAI[domo.AIAnalysisResponse](ctx, c.httpClient, "/ai/v1/text/analysis/sentiment/targeted", request)
}

// Classify implements domo.AIAnalysisClient.Classify.
func (c *AIAnalysisClient) Classify(ctx context.Context, request *domo.AIAnalysisRequest) (*domo.AIAnalysisResponse, error) {
	return postAI[domo.AIAnalysisResponse](ctx, c.httpClient, "/ai/v1/text/analysis/classification", request)
}

// Extract implements domo.AIAnalysisClient.Extract.
func (c *AIAnalysisClient) Extract(ctx context.Context, request *domo.AIAnalysisRequest) (*domo.AIAnalysisResponse, error) {
	return postAI[domo.AIAnalysisResponse](ctx, c.httpClient, "/ai/v1/text/analysis/extraction", request)
}

// AIMediaClient implements domo.AIMediaClient.
type AIMediaClient struct {
	httpClient *internalhttp.Client
}

// ImageToText implements domo.AIMediaClient.ImageToText.
func (c *AIMediaClient) ImageToText(ctx context.Context, request *domo.AIMediaRequest) (*domo.AITextResponse, error) {
	return postAI[domo.AITextResponse](ctx, c.httpClient, "/ai/v1/image/text", request)
}

// EmbedText implements domo.AIMediaClient.EmbedText.
func (c *AIMediaClient) EmbedText(ctx context.Context, request *domo.AIMediaRequest) (*domo.AIEmbeddingResponse, error) {
	return postAI[domo.AIEmbeddingResponse](ctx, c.httpClient, "/ai/v1/embedding/text", request)
}

// EmbedImage implements domo.AIMediaClient.EmbedImage.
func (c *AIMediaClient) EmbedImage(ctx context.Context, request *domo.AIMediaRequest) (*domo.AIEmbeddingResponse, error) {
	return postAI[domo.AIEmbeddingResponse](ctx, c.httpClient, "/ai/v1/embedding/image", request)
}

func postAI[T any](ctx context.Context, httpClient *internalhttp.Client, path string, request interface{}) (*T, error) {
	resp, err := httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("calling AI service: %w", err)
	}

	var result T
	if err := decodeJSON(resp, &result); err != nil {
		return nil, fmt.Errorf("parsing AI service response: %w", err)
	}

	return &result, nil
}
