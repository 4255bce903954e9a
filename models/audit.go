package models

import (
	"time"
)

type AuditAction string

const (
	AuditActionLogin           AuditAction = "login"
	AuditActionEventCreate     AuditAction = "event_create"
	AuditActionEventUpdate     AuditAction = "event_update"
	AuditActionEventDelete     AuditAction = "event_delete"
	AuditActionRecurringCreate AuditAction = "recurring_create"
)

type AuditLog struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	UserID     uint        `gorm:"index" json:"user_id"`
	Username   string      `json:"username"`
	Action     AuditAction `gorm:"index" json:"action"`
	EventID    *uint       `gorm:"index" json:"event_id,omitempty"`
	EventTitle string      `json:"event_title,omitempty"`
	Details    string      `json:"details,omitempty"`
	IPAddress  string      `json:"ip_address"`
	CreatedAt  time.Time   `gorm:"index" json:"created_at"`
}

// AuditLogResponse is the response format for audit logs
type AuditLogResponse struct {
	ID         uint        `json:"id"`
	UserID     uint        `json:"user_id"`
	Username   string      `json:"username"`
	Action     AuditAction `json:"action"`
	EventID    *uint       `json:"event_id,omitempty"`
	EventTitle string      `json:"event_title,omitempty"`
	Details    string      `json:"details,omitempty"`
	IPAddress  string      `json:"ip_address"`
	CreatedAt  time.Time   `json:"created_at"`
}

func (a *AuditLog) ToResponse() AuditLogResponse {
	return AuditLogResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		Username:   a.Username,
		Action:     a.Action,
		EventID:    a.EventID,
		EventTitle: a.EventTitle,
		Details:    a.Details,
		IPAddress:  a.IPAddress,
		CreatedAt:  a.CreatedAt,
	}
}
