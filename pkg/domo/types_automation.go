package domo

import "encoding/json"

// WorkflowInstance is a running or finished workflow execution.
type WorkflowInstance struct {
	ID          string                 `json:"id"                    yaml:"id"`
	ModelID     string                 `json:"modelId,omitempty"     yaml:"model_id,omitempty"`
	ModelName   string                 `json:"modelName,omitempty"   yaml:"model_name,omitempty"`
	Version     string                 `json:"version,omitempty"     yaml:"version,omitempty"`
	Status      string                 `json:"status,omitempty"      yaml:"status,omitempty"`
	CreatedOn   string                 `json:"createdOn,omitempty"   yaml:"created_on,omitempty"`
	CompletedOn string                 `json:"completedOn,omitempty" yaml:"completed_on,omitempty"`
	Data        map[string]interface{} `json:"data,omitempty"        yaml:"data,omitempty"`
}

// ActivityLogQuery filters an activity log request.
type ActivityLogQuery struct {
	// UserID restricts results to one user. Zero means all users.
	UserID int64
	// Start is the inclusive lower bound, milliseconds since epoch.
	// Required by the API.
	Start int64
	// End is the exclusive upper bound, milliseconds since epoch. Zero
	// means now.
	End int64
	// Limit caps the number of returned entries, max 1000.
	Limit int
	// Offset skips entries for paging.
	Offset int
}

// ActivityEntry is one audit-trail record.
type ActivityEntry struct {
	UserName   string `json:"userName,omitempty"   yaml:"user_name,omitempty"`
	UserID     string `json:"userId,omitempty"     yaml:"user_id,omitempty"`
	UserType   string `json:"userType,omitempty"   yaml:"user_type,omitempty"`
	ActorID    int64  `json:"actorId,omitempty"    yaml:"actor_id,omitempty"`
	ActionType string `json:"actionType,omitempty" yaml:"action_type,omitempty"`
	ObjectName string `json:"objectName,omitempty" yaml:"object_name,omitempty"`
	ObjectID   string `json:"objectId,omitempty"   yaml:"object_id,omitempty"`
	ObjectType string `json:"objectType,omitempty" yaml:"object_type,omitempty"`
	Time       int64  `json:"time,omitempty"       yaml:"time,omitempty"`
	EventText  string `json:"eventText,omitempty"  yaml:"event_text,omitempty"`
	Device     string `json:"device,omitempty"     yaml:"device,omitempty"`
	IPAddress  string `json:"ipAddress,omitempty"  yaml:"ip_address,omitempty"`
}

// SearchQuery is the payload for a cross-object search.
type SearchQuery struct {
	Query       string   `json:"query"                 yaml:"query"`
	EntityTypes []string `json:"entityList,omitempty"  yaml:"entity_types,omitempty"`
	Count       int      `json:"count,omitempty"       yaml:"count,omitempty"`
	Offset      int      `json:"offset,omitempty"      yaml:"offset,omitempty"`
}

// SearchResult is the response of a cross-object search.
type SearchResult struct {
	TotalResultCount int64             `json:"totalResultCount" yaml:"total_result_count"`
	SearchObjects    []json.RawMessage `json:"searchObjects"    yaml:"search_objects"`
}
