package domo

import (
	"context"
)

// DataAccessClients provides access to data-oriented resource clients.
type DataAccessClients interface {
	Datasets() DatasetsClient
	Streams() StreamsClient
	Dataflows() DataflowsClient
	Connectors() ConnectorsClient
	Files() FilesClient
	S3Export() S3ExportClient
}

// IdentityClients provides access to identity and governance clients.
type IdentityClients interface {
	Users() UsersClient
	Groups() GroupsClient
	Roles() RolesClient
	Accounts() AccountsClient
}

// ContentClients provides access to content and collaboration clients.
type ContentClients interface {
	Pages() PagesClient
	Cards() CardsClient
	Alerts() AlertsClient
	Projects() ProjectsClient
	Embed() EmbedClient
}

// AutomationClients provides access to automation and discovery clients.
type AutomationClients interface {
	Workflows() WorkflowsClient
	Search() SearchClient
	ActivityLog() ActivityLogClient
	AI() AIClient
}

// Client is the full Domo API client surface.
type Client interface {
	DataAccessClients
	IdentityClients
	ContentClients
	AutomationClients

	// AuthMode reports the active authentication mode ("oauth" or
	// "developer_token"). Some clients change behavior based on it.
	AuthMode() string

	// GetToken returns the current access credential, refreshing it first
	// when the cached one is within its expiry margin.
	GetToken(ctx context.Context) (string, error)
}

// DatasetsClient manages Domo DataSets.
//
// Use DataSets for fairly static data sources that only require occasional
// updates via data replacement. Use Streams when data is massive,
// constantly changing, or rapidly growing.
type DatasetsClient interface {
	Create(ctx context.Context, request *DatasetRequest) (*Dataset, error)
	Get(ctx context.Context, datasetID string) (*Dataset, error)
	List(ctx context.Context, opts *ListOptions) ([]Dataset, error)
	ListAll(ctx context.Context, opts *ListOptions) ([]Dataset, error)
	Update(ctx context.Context, datasetID string, request *DatasetRequest) (*Dataset, error)
	Delete(ctx context.Context, datasetID string) error

	ImportData(ctx context.Context, datasetID string, csvData []byte, method UpdateMethod) error
	ImportDataFromFile(ctx context.Context, datasetID, path string, method UpdateMethod) error
	ExportData(ctx context.Context, datasetID string, includeHeader bool) (string, error)
	ExportDataToFile(ctx context.Context, datasetID, path string, includeHeader bool) (string, error)
	Query(ctx context.Context, datasetID, sql string) (*QueryResult, error)

	GetSchema(ctx context.Context, datasetID string) (*Schema, error)
	AlterSchema(ctx context.Context, datasetID string, schema *Schema) (*Schema, error)
	GetMetadata(ctx context.Context, datasetID string) (map[string]interface{}, error)

	GetPermissions(ctx context.Context, datasetID string) ([]DatasetPermission, error)
	SetPermissions(ctx context.Context, datasetID string, permissions []DatasetPermission) error
	ListVersions(ctx context.Context, datasetID string) ([]DataVersion, error)
	CreateIndex(ctx context.Context, datasetID string, columns []string) (map[string]interface{}, error)

	CreatePolicy(ctx context.Context, datasetID string, policy *Policy) (*Policy, error)
	GetPolicy(ctx context.Context, datasetID string, policyID int) (*Policy, error)
	ListPolicies(ctx context.Context, datasetID string) ([]Policy, error)
	UpdatePolicy(ctx context.Context, datasetID string, policyID int, policy *Policy) (*Policy, error)
	DeletePolicy(ctx context.Context, datasetID string, policyID int) error
}

// UsersClient manages Domo users.
type UsersClient interface {
	Create(ctx context.Context, request *CreateUserRequest, sendInvite bool) (*User, error)
	Get(ctx context.Context, userID int64) (*User, error)
	List(ctx context.Context, opts *ListOptions) ([]User, error)
	ListAll(ctx context.Context, opts *ListOptions) ([]User, error)
	Update(ctx context.Context, userID int64, request *CreateUserRequest) (*User, error)
	Delete(ctx context.Context, userID int64) error
}

// GroupsClient manages Domo groups.
type GroupsClient interface {
	Create(ctx context.Context, request *CreateGroupRequest) (*Group, error)
	Get(ctx context.Context, groupID int64) (*Group, error)
	List(ctx context.Context, opts *ListOptions) ([]Group, error)
	Update(ctx context.Context, groupID int64, request *CreateGroupRequest) (*Group, error)
	Delete(ctx context.Context, groupID int64) error

	AddUser(ctx context.Context, groupID, userID int64) error
	RemoveUser(ctx context.Context, groupID, userID int64) error
	ListUsers(ctx context.Context, groupID int64, opts *ListOptions) ([]int64, error)
}

// RolesClient manages Domo roles and authorities.
type RolesClient interface {
	List(ctx context.Context) ([]Role, error)
	Create(ctx context.Context, request *CreateRoleRequest) (*Role, error)
	Get(ctx context.Context, roleID int64) (*Role, error)
	Delete(ctx context.Context, roleID int64) error

	ListAuthorities(ctx context.Context, roleID int64) ([]Authority, error)
	UpdateAuthorities(ctx context.Context, roleID int64, authorities []Authority) ([]Authority, error)
}

// AccountsClient manages Domo accounts.
type AccountsClient interface {
	Create(ctx context.Context, request map[string]interface{}) (*Account, error)
	Get(ctx context.Context, accountID string) (*Account, error)
	List(ctx context.Context, opts *ListOptions) ([]Account, error)
	ListAll(ctx context.Context, opts *ListOptions) ([]Account, error)
	Update(ctx context.Context, accountID string, update map[string]interface{}) (*Account, error)
	Delete(ctx context.Context, accountID string) error
}

// PagesClient manages Domo pages and their collections.
type PagesClient interface {
	Create(ctx context.Context, request *PageRequest) (*Page, error)
	Get(ctx context.Context, pageID int64) (*Page, error)
	List(ctx context.Context) ([]Page, error)
	Update(ctx context.Context, pageID int64, request *PageRequest) (*Page, error)
	Delete(ctx context.Context, pageID int64) error

	ListCollections(ctx context.Context, pageID int64) ([]PageCollection, error)
	CreateCollection(ctx context.Context, pageID int64, request *PageCollectionRequest) (*PageCollection, error)
	UpdateCollection(ctx context.Context, pageID, collectionID int64, request *PageCollectionRequest) (*PageCollection, error)
	DeleteCollection(ctx context.Context, pageID, collectionID int64) error
}

// StreamsClient manages Domo Streams and their executions.
type StreamsClient interface {
	Create(ctx context.Context, request *StreamRequest) (*Stream, error)
	Get(ctx context.Context, streamID int64) (*Stream, error)
	List(ctx context.Context, opts *ListOptions) ([]Stream, error)
	ListAll(ctx context.Context, opts *ListOptions) ([]Stream, error)
	Update(ctx context.Context, streamID int64, request *StreamRequest) (*Stream, error)
	Delete(ctx context.Context, streamID int64) error

	CreateExecution(ctx context.Context, streamID int64) (*StreamExecution, error)
	ListExecutions(ctx context.Context, streamID int64, opts *ListOptions) ([]StreamExecution, error)
	UploadPart(ctx context.Context, streamID, executionID int64, partNum int, csvData []byte) error
	CommitExecution(ctx context.Context, streamID, executionID int64) (*StreamExecution, error)
	AbortExecution(ctx context.Context, streamID, executionID int64) error
}

// SearchClient searches across Domo objects.
//
// The available endpoints differ by authentication mode: developer tokens
// reach the internal UI search endpoints, OAuth clients fall back to the
// public dataset listing with server-side name filtering.
type SearchClient interface {
	Query(ctx context.Context, query *SearchQuery) (*SearchResult, error)
	SearchDatasets(ctx context.Context, query string, count, offset int) ([]map[string]interface{}, error)
}

// CardsClient manages Domo cards.
type CardsClient interface {
	Create(ctx context.Context, request map[string]interface{}) (*Card, error)
	Get(ctx context.Context, cardID int64) (*Card, error)
	List(ctx context.Context, opts *ListOptions) ([]Card, error)
	Update(ctx context.Context, cardID int64, update map[string]interface{}) (*Card, error)
	Delete(ctx context.Context, cardID int64) error
}

// ActivityLogClient queries the Domo activity log (audit trail).
type ActivityLogClient interface {
	Query(ctx context.Context, query *ActivityLogQuery) ([]ActivityEntry, error)
}

// AlertsClient manages Domo alerts.
type AlertsClient interface {
	Query(ctx context.Context, opts *ListOptions) ([]Alert, error)
	Get(ctx context.Context, alertID int64) (*Alert, error)
	Subscribe(ctx context.Context, alertID int64) error
	Unsubscribe(ctx context.Context, alertID int64) error
	Share(ctx context.Context, alertID int64, share map[string]interface{}) error
}

// ProjectsClient manages Domo projects, lists, and tasks.
type ProjectsClient interface {
	CreateProject(ctx context.Context, request map[string]interface{}) (*Project, error)
	GetProject(ctx context.Context, projectID int64) (*Project, error)
	ListProjects(ctx context.Context, opts *ListOptions) ([]Project, error)
	UpdateProject(ctx context.Context, projectID int64, update map[string]interface{}) (*Project, error)
	DeleteProject(ctx context.Context, projectID int64) error

	CreateList(ctx context.Context, projectID int64, request map[string]interface{}) (*ProjectList, error)
	GetList(ctx context.Context, projectID, listID int64) (*ProjectList, error)

	CreateTask(ctx context.Context, projectID, listID int64, request map[string]interface{}) (*Task, error)
	GetTask(ctx context.Context, projectID, listID, taskID int64) (*Task, error)
	UpdateTask(ctx context.Context, projectID, listID, taskID int64, update map[string]interface{}) (*Task, error)
}

// WorkflowsClient manages Domo workflows.
type WorkflowsClient interface {
	Start(ctx context.Context, message map[string]interface{}) (*WorkflowInstance, error)
	GetInstance(ctx context.Context, instanceID string) (*WorkflowInstance, error)
	Cancel(ctx context.Context, instanceID string) error
	GetPermissions(ctx context.Context, modelID int64) ([]map[string]interface{}, error)
	SetPermissions(ctx context.Context, modelID int64, permissions []map[string]interface{}) error
}

// DataflowsClient manages Domo dataflows (ETL/Magic ETL).
type DataflowsClient interface {
	List(ctx context.Context, opts *ListOptions) ([]Dataflow, error)
	Get(ctx context.Context, dataflowID int64) (*Dataflow, error)
	Execute(ctx context.Context, dataflowID int64) (*DataflowExecution, error)
	GetExecution(ctx context.Context, dataflowID, executionID int64) (*DataflowExecution, error)
}

// ConnectorsClient runs Domo connector executions.
type ConnectorsClient interface {
	Run(ctx context.Context, streamID int64) (*StreamExecution, error)
}

// EmbedClient generates embed tokens for Domo cards and dashboards.
type EmbedClient interface {
	CreateCardToken(ctx context.Context, cardID int64, options map[string]interface{}) (*EmbedToken, error)
	CreateDashboardToken(ctx context.Context, dashboardID int64, options map[string]interface{}) (*EmbedToken, error)
}

// FilesClient manages Domo data files.
type FilesClient interface {
	Upload(ctx context.Context, name, description string) (*DataFile, error)
	Update(ctx context.Context, fileID int64, data []byte) (*DataFile, error)
	GetDetails(ctx context.Context, fileID int64) (*DataFile, error)
	Download(ctx context.Context, fileID, revisionID int64) ([]byte, error)
	SetPermissions(ctx context.Context, fileID int64, permissions []map[string]interface{}) error
}

// S3ExportClient exports Domo datasets to S3.
type S3ExportClient interface {
	StartExport(ctx context.Context, datasetID string, config map[string]interface{}) (*ExportStatus, error)
	GetExportStatus(ctx context.Context, datasetID string) (*ExportStatus, error)
}

// AIClient is the composite client for the Domo AI API.
type AIClient interface {
	Text() AITextClient
	Messages() AIMessagesClient
	Analysis() AIAnalysisClient
	Media() AIMediaClient
}

// AITextClient covers text generation, natural-language-to-SQL,
// summarisation, and beastmode formula generation.
type AITextClient interface {
	Generate(ctx context.Context, request *AITextRequest) (*AITextResponse, error)
	ToSQL(ctx context.Context, request *AISQLRequest) (*AITextResponse, error)
	Summarize(ctx context.Context, request *AITextRequest) (*AITextResponse, error)
	Beastmode(ctx context.Context, request *AITextRequest) (*AITextResponse, error)
}

// AIMessagesClient covers conversational endpoints (chat and tool use).
type AIMessagesClient interface {
	Chat(ctx context.Context, request *AIChatRequest) (*AIChatResponse, error)
	Tools(ctx context.Context, request *AIChatRequest) (*AIChatResponse, error)
}

// AIAnalysisClient covers sentiment, classification, and extraction.
type AIAnalysisClient interface {
	Sentiment(ctx context.Context, request *AIAnalysisRequest) (*AIAnalysisResponse, error)
	TargetedSentiment(ctx context.Context, request *AIAnalysisRequest) (*AIAnalysisResponse, error)
	Classify(ctx context.Context, request *AIAnalysisRequest) (*AIAnalysisResponse, error)
	Extract(ctx context.Context, request *AIAnalysisRequest) (*AIAnalysisResponse, error)
}

// AIMediaClient covers image-to-text and embeddings.
type AIMediaClient interface {
	ImageToText(ctx context.Context, request *AIMediaRequest) (*AITextResponse, error)
	EmbedText(ctx context.Context, request *AIMediaRequest) (*AIEmbeddingResponse, error)
	EmbedImage(ctx context.Context, request *AIMediaRequest) (*AIEmbeddingResponse, error)
}
