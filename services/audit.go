package services

import (
	"gorm.io/gorm"

	"almanac/models"
)

// AuditLogger records who did what to which event.
type AuditLogger struct {
	db *gorm.DB
}

func NewAuditLogger(db *gorm.DB) *AuditLogger {
	return &AuditLogger{db: db}
}

// Log creates an audit log entry. Fire and forget - don't block the
// request on audit logging.
func (a *AuditLogger) Log(userID uint, username string, action models.AuditAction, eventID *uint, eventTitle string, details string, ipAddress string) {
	entry := models.AuditLog{
		UserID:     userID,
		Username:   username,
		Action:     action,
		EventID:    eventID,
		EventTitle: eventTitle,
		Details:    details,
		IPAddress:  ipAddress,
	}

	go func() {
		a.db.Create(&entry)
	}()
}

// LogSync creates an audit log entry synchronously.
func (a *AuditLogger) LogSync(userID uint, username string, action models.AuditAction, eventID *uint, eventTitle string, details string, ipAddress string) error {
	entry := models.AuditLog{
		UserID:     userID,
		Username:   username,
		Action:     action,
		EventID:    eventID,
		EventTitle: eventTitle,
		Details:    details,
		IPAddress:  ipAddress,
	}

	return a.db.Create(&entry).Error
}

// ListLogs returns a page of audit logs, newest first, optionally filtered
// by action.
func (a *AuditLogger) ListLogs(action string, page, limit int) ([]models.AuditLog, int64, error) {
	query := a.db.Model(&models.AuditLog{})
	if action != "" {
		query = query.Where("action = ?", action)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	var logs []models.AuditLog
	if result := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&logs); result.Error != nil {
		return nil, 0, result.Error
	}
	return logs, total, nil
}
