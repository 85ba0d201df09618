package domain

import "time"

type AuditAction string

const (
	AuditCreate AuditAction = "create"
	AuditEdit   AuditAction = "edit"
	AuditDelete AuditAction = "delete"
	AuditImport AuditAction = "import"
)

// AuditEntry is one append-only record of a mutation.
type AuditEntry struct {
	ID         int64
	RecordedOn time.Time
	Action     AuditAction
	Descriptor string
}
