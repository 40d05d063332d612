package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	TaskCreated    TaskStatus = "CREATED"
	TaskAssigned   TaskStatus = "ASSIGNED"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskOnHold     TaskStatus = "ON_HOLD"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskCancelled  TaskStatus = "CANCELLED"
)

func ParseTaskStatus(value string) (TaskStatus, bool) {
	switch s := TaskStatus(strings.ToUpper(strings.TrimSpace(value))); s {
	case TaskCreated, TaskAssigned, TaskInProgress, TaskOnHold, TaskCompleted, TaskCancelled:
		return s, true
	}
	return "", false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

func ParseTaskPriority(value string) (TaskPriority, bool) {
	switch p := TaskPriority(strings.ToUpper(strings.TrimSpace(value))); p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return p, true
	}
	return "", false
}

type TaskType string

const (
	TaskTypeRescue       TaskType = "RESCUE"
	TaskTypeRelief       TaskType = "RELIEF_DISTRIBUTION"
	TaskTypeAssessment   TaskType = "ASSESSMENT"
	TaskTypeEvacuation   TaskType = "EVACUATION"
	TaskTypeMedical      TaskType = "MEDICAL"
	TaskTypeSupply       TaskType = "SUPPLY"
	TaskTypeCoordination TaskType = "COORDINATION"
	TaskTypeOther        TaskType = "OTHER"
)

func ParseTaskType(value string) (TaskType, bool) {
	switch t := TaskType(strings.ToUpper(strings.TrimSpace(value))); t {
	case TaskTypeRescue, TaskTypeRelief, TaskTypeAssessment, TaskTypeEvacuation,
		TaskTypeMedical, TaskTypeSupply, TaskTypeCoordination, TaskTypeOther:
		return t, true
	}
	return "", false
}

type Task struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`

	AssignedToID   primitive.ObjectID `json:"assignedToId" bson:"assignedToId"`
	AssignedToName string             `json:"assignedToName,omitempty" bson:"assignedToName,omitempty"`
	CreatedByID    primitive.ObjectID `json:"createdById" bson:"createdById"`
	CreatedByName  string             `json:"createdByName,omitempty" bson:"createdByName,omitempty"`

	Location  string   `json:"location,omitempty" bson:"location,omitempty"`
	District  string   `json:"district,omitempty" bson:"district,omitempty"`
	State     string   `json:"state,omitempty" bson:"state,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`

	Status   TaskStatus   `json:"status" bson:"status"`
	Priority TaskPriority `json:"priority,omitempty" bson:"priority,omitempty"`
	TaskType TaskType     `json:"taskType,omitempty" bson:"taskType,omitempty"`

	DisasterID     *primitive.ObjectID `json:"disasterId,omitempty" bson:"disasterId,omitempty"`
	AffectedAreaID *primitive.ObjectID `json:"affectedAreaId,omitempty" bson:"affectedAreaId,omitempty"`

	DueDate            *time.Time `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	CompletedAt        *time.Time `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	ProgressPercentage int        `json:"progressPercentage" bson:"progressPercentage"`
	Notes              string     `json:"notes,omitempty" bson:"notes,omitempty"`
	UpdateLog          string     `json:"updateLog,omitempty" bson:"updateLog,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type CreateTaskRequest struct {
	Title          string   `json:"title" validate:"required,max=200"`
	Description    string   `json:"description,omitempty"`
	AssignedToID   string   `json:"assignedToId" validate:"required"`
	Location       string   `json:"location,omitempty"`
	District       string   `json:"district,omitempty"`
	State          string   `json:"state,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Priority       string   `json:"priority" validate:"required,task_priority"`
	TaskType       string   `json:"taskType" validate:"required,task_type"`
	DisasterID     string   `json:"disasterId,omitempty"`
	AffectedAreaID string   `json:"affectedAreaId,omitempty"`
	DueDate        string   `json:"dueDate,omitempty"`
}
