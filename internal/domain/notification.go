package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationType distinguishes the collaboration events a user is told about.
type NotificationType string

const (
	NotificationListShared           NotificationType = "LIST_SHARED"
	NotificationCollaboratorJoined   NotificationType = "COLLABORATOR_JOINED"
	NotificationRoleUpdated          NotificationType = "ROLE_UPDATED"
	NotificationCollaborationRemoved NotificationType = "COLLABORATION_REMOVED"
)

// Notification is a fire-and-forget message created as a side effect of
// collaboration mutations. Core logic never reads notifications back; they
// only feed the recipient's notification feed.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      NotificationType
	Title     string
	Message   string
	Metadata  json.RawMessage
	Read      bool
	CreatedAt time.Time
}

// NotificationMetadata is the structured payload attached to a notification.
type NotificationMetadata struct {
	ListID      *uuid.UUID `json:"listId,omitempty"`
	ListName    *string    `json:"listName,omitempty"`
	InviterName *string    `json:"inviterName,omitempty"`
	NewRole     *Role      `json:"newRole,omitempty"`
}
