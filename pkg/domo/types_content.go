package domo

// Page represents a Domo page (dashboard container).
type Page struct {
	ID            int64   `json:"id"                      yaml:"id"`
	Name          string  `json:"name"                    yaml:"name"`
	ParentID      int64   `json:"parentId,omitempty"      yaml:"parent_id,omitempty"`
	OwnerID       int64   `json:"ownerId,omitempty"       yaml:"owner_id,omitempty"`
	Locked        bool    `json:"locked,omitempty"        yaml:"locked,omitempty"`
	CollectionIDs []int64 `json:"collectionIds,omitempty" yaml:"collection_ids,omitempty"`
	CardIDs       []int64 `json:"cardIds,omitempty"       yaml:"card_ids,omitempty"`
	Children      []Page  `json:"children,omitempty"      yaml:"children,omitempty"`
	UserIDs       []int64 `json:"userIds,omitempty"       yaml:"user_ids,omitempty"`
	GroupIDs      []int64 `json:"groupIds,omitempty"      yaml:"group_ids,omitempty"`
}

// PageRequest is the payload for creating or updating a page.
type PageRequest struct {
	Name     string  `json:"name"               yaml:"name"`
	ParentID int64   `json:"parentId,omitempty" yaml:"parent_id,omitempty"`
	Locked   bool    `json:"locked,omitempty"   yaml:"locked,omitempty"`
	CardIDs  []int64 `json:"cardIds,omitempty"  yaml:"card_ids,omitempty"`
	UserIDs  []int64 `json:"userIds,omitempty"  yaml:"user_ids,omitempty"`
	GroupIDs []int64 `json:"groupIds,omitempty" yaml:"group_ids,omitempty"`
}

// PageCollection groups cards within a page.
type PageCollection struct {
	ID          int64   `json:"id"                    yaml:"id"`
	Title       string  `json:"title"                 yaml:"title"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	CardIDs     []int64 `json:"cardIds,omitempty"     yaml:"card_ids,omitempty"`
}

// PageCollectionRequest is the payload for creating or updating a page
// collection.
type PageCollectionRequest struct {
	Title       string  `json:"title"                 yaml:"title"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	CardIDs     []int64 `json:"cardIds,omitempty"     yaml:"card_ids,omitempty"`
}

// Card represents a Domo card (visualization).
type Card struct {
	ID          int64  `json:"id"                    yaml:"id"`
	CardURN     string `json:"cardUrn,omitempty"     yaml:"card_urn,omitempty"`
	Title       string `json:"title"                 yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string `json:"type,omitempty"        yaml:"type,omitempty"`
	OwnerID     int64  `json:"ownerId,omitempty"     yaml:"owner_id,omitempty"`
	CreatedAt   string `json:"created,omitempty"     yaml:"created_at,omitempty"`
	UpdatedAt   string `json:"lastModified,omitempty" yaml:"updated_at,omitempty"`
}

// Alert represents a Domo alert.
type Alert struct {
	ID          int64  `json:"id"                    yaml:"id"`
	Name        string `json:"name,omitempty"        yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Active      bool   `json:"active,omitempty"      yaml:"active,omitempty"`
	OwnerID     int64  `json:"ownerId,omitempty"     yaml:"owner_id,omitempty"`
	Triggered   bool   `json:"triggered,omitempty"   yaml:"triggered,omitempty"`
	Type        string `json:"type,omitempty"        yaml:"type,omitempty"`
}

// Project represents a Domo project.
type Project struct {
	ID          int64   `json:"id"                    yaml:"id"`
	Name        string  `json:"name"                  yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Members     []int64 `json:"members,omitempty"     yaml:"members,omitempty"`
	CreatedBy   int64   `json:"createdBy,omitempty"   yaml:"created_by,omitempty"`
	CreatedDate string  `json:"createdDate,omitempty" yaml:"created_date,omitempty"`
	DueDate     string  `json:"dueDate,omitempty"     yaml:"due_date,omitempty"`
	Public      bool    `json:"public,omitempty"      yaml:"public,omitempty"`
}

// ProjectList is a task list within a project.
type ProjectList struct {
	ID        int64  `json:"id"               yaml:"id"`
	ProjectID int64  `json:"projectId"        yaml:"project_id"`
	Name      string `json:"name"             yaml:"name"`
	Type      string `json:"type,omitempty"   yaml:"type,omitempty"`
	Index     int    `json:"index,omitempty"  yaml:"index,omitempty"`
}

// Task is a single task within a project list.
type Task struct {
	ID           int64   `json:"id"                     yaml:"id"`
	ProjectID    int64   `json:"projectId"              yaml:"project_id"`
	ListID       int64   `json:"projectListId"          yaml:"list_id"`
	Name         string  `json:"taskName"               yaml:"name"`
	Description  string  `json:"description,omitempty"  yaml:"description,omitempty"`
	Owners       []int64 `json:"ownedBy,omitempty"      yaml:"owners,omitempty"`
	Contributors []int64 `json:"contributors,omitempty" yaml:"contributors,omitempty"`
	DueDate      string  `json:"dueDate,omitempty"      yaml:"due_date,omitempty"`
	Priority     int     `json:"priority,omitempty"     yaml:"priority,omitempty"`
	CreatedDate  string  `json:"createdDate,omitempty"  yaml:"created_date,omitempty"`
}

// EmbedToken is a short-lived token for embedding a card or dashboard.
type EmbedToken struct {
	Authentication string `json:"authentication" yaml:"authentication"`
	URL            string `json:"url"            yaml:"url"`
}
