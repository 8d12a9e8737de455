package domain

import "time"

type AuditStatus string

const (
	AuditSuccess AuditStatus = "SUCCESS"
	AuditFailure AuditStatus = "FAILURE"
)

type AuditLog struct {
	ID           string
	Operation    string
	EntityType   string
	EntityID     string
	CustomerID   string
	Details      string
	Status       AuditStatus
	ErrorMessage string
	Timestamp    time.Time
}

type AuditRepository interface {
	SaveLog(entry *AuditLog) error
}
