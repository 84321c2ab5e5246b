package domo

// User represents a Domo user.
type User struct {
	ID             int64    `json:"id"                       yaml:"id"`
	Name           string   `json:"name"                     yaml:"name"`
	Email          string   `json:"email"                    yaml:"email"`
	Role           string   `json:"role,omitempty"           yaml:"role,omitempty"`
	RoleID         int64    `json:"roleId,omitempty"         yaml:"role_id,omitempty"`
	Title          string   `json:"title,omitempty"          yaml:"title,omitempty"`
	AlternateEmail string   `json:"alternateEmail,omitempty" yaml:"alternate_email,omitempty"`
	Phone          string   `json:"phone,omitempty"          yaml:"phone,omitempty"`
	Location       string   `json:"location,omitempty"       yaml:"location,omitempty"`
	Timezone       string   `json:"timezone,omitempty"       yaml:"timezone,omitempty"`
	Locale         string   `json:"locale,omitempty"         yaml:"locale,omitempty"`
	EmployeeNumber string   `json:"employeeNumber,omitempty" yaml:"employee_number,omitempty"`
	Groups         []Group  `json:"groups,omitempty"         yaml:"groups,omitempty"`
	CreatedAt      string   `json:"createdAt,omitempty"      yaml:"created_at,omitempty"`
	UpdatedAt      string   `json:"updatedAt,omitempty"      yaml:"updated_at,omitempty"`
}

// CreateUserRequest is the payload for creating or updating a user.
type CreateUserRequest struct {
	Name           string `json:"name"                     yaml:"name"`
	Email          string `json:"email"                    yaml:"email"`
	Role           string `json:"role"                     yaml:"role"`
	Title          string `json:"title,omitempty"          yaml:"title,omitempty"`
	AlternateEmail string `json:"alternateEmail,omitempty" yaml:"alternate_email,omitempty"`
	Phone          string `json:"phone,omitempty"          yaml:"phone,omitempty"`
	Location       string `json:"location,omitempty"       yaml:"location,omitempty"`
	Timezone       string `json:"timezone,omitempty"       yaml:"timezone,omitempty"`
	Locale         string `json:"locale,omitempty"         yaml:"locale,omitempty"`
	EmployeeNumber string `json:"employeeNumber,omitempty" yaml:"employee_number,omitempty"`
}

// Group represents a Domo group.
type Group struct {
	ID          int64  `json:"id"                    yaml:"id"`
	Name        string `json:"name"                  yaml:"name"`
	Active      bool   `json:"active,omitempty"      yaml:"active,omitempty"`
	Default     bool   `json:"default,omitempty"     yaml:"default,omitempty"`
	CreatorID   string `json:"creatorId,omitempty"   yaml:"creator_id,omitempty"`
	MemberCount int    `json:"memberCount,omitempty" yaml:"member_count,omitempty"`
}

// CreateGroupRequest is the payload for creating or updating a group.
type CreateGroupRequest struct {
	Name   string `json:"name"             yaml:"name"`
	Active bool   `json:"active,omitempty" yaml:"active,omitempty"`
}

// Role represents a Domo role.
type Role struct {
	ID          int64  `json:"id"                    yaml:"id"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Authorities []string `json:"authorities,omitempty" yaml:"authorities,omitempty"`
	Created     int64  `json:"created,omitempty"     yaml:"created,omitempty"`
	Modified    int64  `json:"modified,omitempty"    yaml:"modified,omitempty"`
}

// CreateRoleRequest is the payload for creating a role.
type CreateRoleRequest struct {
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Authority is a single permission grant attached to a role.
type Authority struct {
	Name string `json:"authority" yaml:"authority"`
}

// Account represents a Domo account (stored connector credentials).
type Account struct {
	ID           string                 `json:"id"                     yaml:"id"`
	Name         string                 `json:"name"                   yaml:"name"`
	Valid        bool                   `json:"valid,omitempty"        yaml:"valid,omitempty"`
	Type         *AccountType           `json:"type,omitempty"         yaml:"type,omitempty"`
	Properties   map[string]interface{} `json:"properties,omitempty"   yaml:"properties,omitempty"`
	CreatedAt    string                 `json:"createdAt,omitempty"    yaml:"created_at,omitempty"`
	ModifiedAt   string                 `json:"modifiedAt,omitempty"   yaml:"modified_at,omitempty"`
}

// AccountType identifies the connector type behind an account.
type AccountType struct {
	ID         string                 `json:"id"                   yaml:"id"`
	Properties map[string]interface{} `json:"properties,omitempty" yaml:"properties,omitempty"`
}
