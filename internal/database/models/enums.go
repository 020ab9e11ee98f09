package models

// MembershipRole is the role a user holds inside a team
type MembershipRole string

const (
	MembershipRoleAdmin  MembershipRole = "admin"
	MembershipRoleMember MembershipRole = "member"
)

// ProjectStatus is the health label of a project
type ProjectStatus string

const (
	ProjectStatusOnTrack  ProjectStatus = "On Track"
	ProjectStatusAtRisk   ProjectStatus = "At Risk"
	ProjectStatusOffTrack ProjectStatus = "Off Track"
)

// ProjectStatuses lists every project status in draw order
var ProjectStatuses = []ProjectStatus{ProjectStatusOnTrack, ProjectStatusAtRisk, ProjectStatusOffTrack}

// TaskPriority is the priority label of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// TaskPriorities lists every task priority in draw order
var TaskPriorities = []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh}

// CustomFieldType is the value kind of a custom field
type CustomFieldType string

const (
	CustomFieldTypeNumber CustomFieldType = "number"
	CustomFieldTypeText   CustomFieldType = "text"
)

// IsValid checks if the MembershipRole is valid
func (r MembershipRole) IsValid() bool {
	switch r {
	case MembershipRoleAdmin, MembershipRoleMember:
		return true
	}
	return false
}

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusOnTrack, ProjectStatusAtRisk, ProjectStatusOffTrack:
		return true
	}
	return false
}

// IsValid checks if the TaskPriority is valid
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// IsValid checks if the CustomFieldType is valid
func (t CustomFieldType) IsValid() bool {
	switch t {
	case CustomFieldTypeNumber, CustomFieldTypeText:
		return true
	}
	return false
}
