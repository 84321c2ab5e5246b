package domo

// UpdateMethod selects how imported data is applied to a dataset.
type UpdateMethod string

const (
	// UpdateMethodReplace replaces the dataset contents.
	UpdateMethodReplace UpdateMethod = "REPLACE"

	// UpdateMethodAppend appends rows to the dataset.
	UpdateMethodAppend UpdateMethod = "APPEND"
)

// Column describes a single dataset column.
type Column struct {
	Type string `json:"type" yaml:"type"`
	Name string `json:"name" yaml:"name"`
}

// Schema describes a dataset's column layout.
type Schema struct {
	Columns []Column `json:"columns" yaml:"columns"`
}

// Owner identifies the owning user of a Domo object.
type Owner struct {
	ID   int64  `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Dataset represents a Domo DataSet.
type Dataset struct {
	ID            string   `json:"id"                      yaml:"id"`
	Name          string   `json:"name"                    yaml:"name"`
	Description   string   `json:"description,omitempty"   yaml:"description,omitempty"`
	Rows          int64    `json:"rows"                    yaml:"rows"`
	Columns       int      `json:"columns"                 yaml:"columns"`
	Schema        *Schema  `json:"schema,omitempty"        yaml:"schema,omitempty"`
	Owner         *Owner   `json:"owner,omitempty"         yaml:"owner,omitempty"`
	DataCurrentAt string   `json:"dataCurrentAt,omitempty" yaml:"data_current_at,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty"     yaml:"created_at,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"     yaml:"updated_at,omitempty"`
	PDPEnabled    bool     `json:"pdpEnabled,omitempty"    yaml:"pdp_enabled,omitempty"`
	Policies      []Policy `json:"policies,omitempty"      yaml:"policies,omitempty"`
}

// DatasetRequest is the payload for creating or updating a dataset.
type DatasetRequest struct {
	Name        string  `json:"name"                  yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Schema      *Schema `json:"schema,omitempty"      yaml:"schema,omitempty"`
}

// PolicyFilter is a single predicate of a PDP policy.
type PolicyFilter struct {
	Column   string   `json:"column"        yaml:"column"`
	Values   []string `json:"values"        yaml:"values"`
	Operator string   `json:"operator"      yaml:"operator"`
	Not      bool     `json:"not,omitempty" yaml:"not,omitempty"`
}

// Policy is a personalized data permission (PDP) policy on a dataset.
type Policy struct {
	ID      int            `json:"id,omitempty"      yaml:"id,omitempty"`
	Type    string         `json:"type,omitempty"    yaml:"type,omitempty"`
	Name    string         `json:"name"              yaml:"name"`
	Filters []PolicyFilter `json:"filters,omitempty" yaml:"filters,omitempty"`
	Users   []int64        `json:"users,omitempty"   yaml:"users,omitempty"`
	Groups  []int64        `json:"groups,omitempty"  yaml:"groups,omitempty"`
}

// QueryResult is the response of a SQL query against a dataset.
type QueryResult struct {
	Datasource string          `json:"datasource" yaml:"datasource"`
	Columns    []string        `json:"columns"    yaml:"columns"`
	Metadata   []ColumnMeta    `json:"metadata"   yaml:"metadata"`
	Rows       [][]interface{} `json:"rows"       yaml:"rows"`
	NumRows    int64           `json:"numRows"    yaml:"num_rows"`
	NumColumns int             `json:"numColumns" yaml:"num_columns"`
}

// ColumnMeta describes a result column of a SQL query.
type ColumnMeta struct {
	Type     string `json:"type"     yaml:"type"`
	DataType string `json:"dataType" yaml:"data_type"`
}

// DatasetPermission grants a user or group access to a dataset.
type DatasetPermission struct {
	Type        string `json:"type"        yaml:"type"`
	ID          int64  `json:"id"          yaml:"id"`
	AccessLevel string `json:"accessLevel" yaml:"access_level"`
}

// DataVersion describes one stored version of a dataset's data.
type DataVersion struct {
	DatasetID    string `json:"datasetId,omitempty"    yaml:"dataset_id,omitempty"`
	VersionID    int64  `json:"versionId"              yaml:"version_id"`
	SizeBytes    int64  `json:"sizeBytes,omitempty"    yaml:"size_bytes,omitempty"`
	RecordCount  int64  `json:"recordCount,omitempty"  yaml:"record_count,omitempty"`
	DateUploaded string `json:"dateUploaded,omitempty" yaml:"date_uploaded,omitempty"`
}

// Stream represents a Domo Stream attached to a dataset.
type Stream struct {
	ID            int64    `json:"id"                      yaml:"id"`
	Dataset       *Dataset `json:"dataSet,omitempty"       yaml:"dataset,omitempty"`
	UpdateMethod  string   `json:"updateMethod"            yaml:"update_method"`
	CreatedAt     string   `json:"createdAt,omitempty"     yaml:"created_at,omitempty"`
	ModifiedAt    string   `json:"modifiedAt,omitempty"    yaml:"modified_at,omitempty"`
	LastExecution *StreamExecution `json:"lastExecution,omitempty" yaml:"last_execution,omitempty"`
}

// StreamRequest is the payload for creating or updating a stream.
type StreamRequest struct {
	Dataset      *DatasetRequest `json:"dataSet,omitempty"      yaml:"dataset,omitempty"`
	UpdateMethod UpdateMethod    `json:"updateMethod,omitempty" yaml:"update_method,omitempty"`
}

// StreamExecution is a single upload execution of a stream.
type StreamExecution struct {
	ID           int64  `json:"id"                     yaml:"id"`
	StartedAt    string `json:"startedAt,omitempty"    yaml:"started_at,omitempty"`
	EndedAt      string `json:"endedAt,omitempty"      yaml:"ended_at,omitempty"`
	CurrentState string `json:"currentState,omitempty" yaml:"current_state,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"    yaml:"created_at,omitempty"`
	ModifiedAt   string `json:"modifiedAt,omitempty"   yaml:"modified_at,omitempty"`
}

// Dataflow represents a Domo dataflow (ETL).
type Dataflow struct {
	ID                 int64  `json:"id"                           yaml:"id"`
	Name               string `json:"name"                         yaml:"name"`
	Description        string `json:"description,omitempty"        yaml:"description,omitempty"`
	Status             string `json:"runState,omitempty"           yaml:"run_state,omitempty"`
	LastExecution      *DataflowExecution `json:"lastExecution,omitempty" yaml:"last_execution,omitempty"`
	InputCount         int    `json:"inputCount,omitempty"         yaml:"input_count,omitempty"`
	OutputCount        int    `json:"outputCount,omitempty"        yaml:"output_count,omitempty"`
	ExecutionCount     int64  `json:"executionCount,omitempty"     yaml:"execution_count,omitempty"`
	ExecutionSuccessCount int64 `json:"executionSuccessCount,omitempty" yaml:"execution_success_count,omitempty"`
}

// DataflowExecution is a single run of a dataflow.
type DataflowExecution struct {
	ID        int64  `json:"id"                  yaml:"id"`
	State     string `json:"state,omitempty"     yaml:"state,omitempty"`
	BeginTime int64  `json:"beginTime,omitempty" yaml:"begin_time,omitempty"`
	EndTime   int64  `json:"endTime,omitempty"   yaml:"end_time,omitempty"`
}

// DataFile is a Domo data file resource.
type DataFile struct {
	ID              int64  `json:"id,omitempty"              yaml:"id,omitempty"`
	DataFileID      int64  `json:"dataFileId,omitempty"      yaml:"data_file_id,omitempty"`
	Name            string `json:"name,omitempty"            yaml:"name,omitempty"`
	Description     string `json:"description,omitempty"     yaml:"description,omitempty"`
	ContentType     string `json:"contentType,omitempty"     yaml:"content_type,omitempty"`
	SizeBytes       int64  `json:"sizeBytes,omitempty"       yaml:"size_bytes,omitempty"`
	CurrentRevision int64  `json:"currentRevision,omitempty" yaml:"current_revision,omitempty"`
	CreatedAt       string `json:"created,omitempty"         yaml:"created_at,omitempty"`
}

// ExportStatus reports the state of a dataset export to S3.
type ExportStatus struct {
	ExportID  string `json:"exportId,omitempty"  yaml:"export_id,omitempty"`
	DatasetID string `json:"datasetId,omitempty" yaml:"dataset_id,omitempty"`
	Status    string `json:"status,omitempty"    yaml:"status,omitempty"`
	Message   string `json:"message,omitempty"   yaml:"message,omitempty"`
}
