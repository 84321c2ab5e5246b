package domo

import "encoding/json"

// AITextRequest drives the text generation, summarisation, and beastmode
// endpoints.
type AITextRequest struct {
	Input        string                 `json:"input"                  yaml:"input"`
	Model        string                 `json:"model,omitempty"        yaml:"model,omitempty"`
	System       string                 `json:"system,omitempty"       yaml:"system,omitempty"`
	Parameters   map[string]interface{} `json:"parameters,omitempty"   yaml:"parameters,omitempty"`
}

// AISQLRequest drives natural-language-to-SQL generation. DataSourceSchemas
// describes the tables the generated SQL may reference.
type AISQLRequest struct {
	Input             string                   `json:"input"                       yaml:"input"`
	Model             string                   `json:"model,omitempty"             yaml:"model,omitempty"`
	DataSourceSchemas []map[string]interface{} `json:"dataSourceSchemas,omitempty" yaml:"data_source_schemas,omitempty"`
}

// AITextResponse is the common response of text-producing AI endpoints.
type AITextResponse struct {
	Output     string                 `json:"output,omitempty"     yaml:"output,omitempty"`
	Choices    []AIChoice             `json:"choices,omitempty"    yaml:"choices,omitempty"`
	ModelID    string                 `json:"modelId,omitempty"    yaml:"model_id,omitempty"`
	Parameters map[string]interface{} `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// AIChoice is one alternative output of a generation request.
type AIChoice struct {
	Output string  `json:"output,omitempty" yaml:"output,omitempty"`
	Score  float64 `json:"score,omitempty"  yaml:"score,omitempty"`
}

// AIMessage is a single turn in a chat conversation.
type AIMessage struct {
	Role    string `json:"role"    yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// AIChatRequest drives the conversational endpoints.
type AIChatRequest struct {
	Messages   []AIMessage              `json:"messages"             yaml:"messages"`
	Model      string                   `json:"model,omitempty"      yaml:"model,omitempty"`
	System     string                   `json:"system,omitempty"     yaml:"system,omitempty"`
	Tools      []map[string]interface{} `json:"tools,omitempty"      yaml:"tools,omitempty"`
	Parameters map[string]interface{}   `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// AIChatResponse is the response of a conversational endpoint.
type AIChatResponse struct {
	Output    string            `json:"output,omitempty"    yaml:"output,omitempty"`
	Role      string            `json:"role,omitempty"      yaml:"role,omitempty"`
	ToolCalls []json.RawMessage `json:"toolCalls,omitempty" yaml:"tool_calls,omitempty"`
	ModelID   string            `json:"modelId,omitempty"   yaml:"model_id,omitempty"`
}

// AIAnalysisRequest drives sentiment, classification, and extraction.
type AIAnalysisRequest struct {
	Input      string                 `json:"input"                yaml:"input"`
	Model      string                 `json:"model,omitempty"      yaml:"model,omitempty"`
	Targets    []string               `json:"targets,omitempty"    yaml:"targets,omitempty"`
	Categories []string               `json:"categories,omitempty" yaml:"categories,omitempty"`
	Fields     []string               `json:"fields,omitempty"     yaml:"fields,omitempty"`
	Parameters map[string]interface{} `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// AIAnalysisResponse is the response of an analysis endpoint. Results is
// kept raw since its shape varies per endpoint.
type AIAnalysisResponse struct {
	Output  string          `json:"output,omitempty"  yaml:"output,omitempty"`
	Results json.RawMessage `json:"results,omitempty" yaml:"results,omitempty"`
	ModelID string          `json:"modelId,omitempty" yaml:"model_id,omitempty"`
}

// AIMediaRequest drives image-to-text and embedding endpoints. Exactly one
// of Input (text) or ImageData (base64) is set depending on the endpoint.
type AIMediaRequest struct {
	Input      string                 `json:"input,omitempty"      yaml:"input,omitempty"`
	ImageData  string                 `json:"imageData,omitempty"  yaml:"image_data,omitempty"`
	MimeType   string                 `json:"mimeType,omitempty"   yaml:"mime_type,omitempty"`
	Model      string                 `json:"model,omitempty"      yaml:"model,omitempty"`
	Parameters map[string]interface{} `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// AIEmbeddingResponse carries embedding vectors.
type AIEmbeddingResponse struct {
	Embeddings [][]float64 `json:"embeddings,omitempty" yaml:"embeddings,omitempty"`
	ModelID    string      `json:"modelId,omitempty"    yaml:"model_id,omitempty"`
}
