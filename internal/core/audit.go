package core

import (
	"context"
	"encoding/json"
	"time"

	db "github.com/JonMunkholm/storefront/internal/database"
	"github.com/JonMunkholm/storefront/internal/logging"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// AuditAction represents the type of action being audited.
type AuditAction string

const (
	ActionStoreCreate   AuditAction = "store_create"
	ActionCatalogCreate AuditAction = "catalog_create"
	ActionCatalogUpdate AuditAction = "catalog_update"
	ActionCatalogDelete AuditAction = "catalog_delete"
)

// AuditSeverity represents the severity level of an audit entry.
type AuditSeverity string

const (
	SeverityLow    AuditSeverity = "low"
	SeverityMedium AuditSeverity = "medium"
	SeverityHigh   AuditSeverity = "high"
)

// Entity types recorded in the audit log.
const (
	EntityStore       = "store"
	EntityCatalogItem = "catalog_item"
)

// DefaultAuditLimit is how many entries ListAudit returns when no limit is given.
const DefaultAuditLimit = 100

// MaxAuditLimit caps a single ListAudit call.
const MaxAuditLimit = 1000

// AuditEntry represents a single audit log entry.
type AuditEntry struct {
	ID           string                 `json:"id"`
	Action       AuditAction            `json:"action"`
	Severity     AuditSeverity          `json:"severity"`
	EntityType   string                 `json:"entityType"`
	EntityID     int64                  `json:"entityId,omitempty"`
	IPAddress    string                 `json:"ipAddress,omitempty"`
	UserAgent    string                 `json:"userAgent,omitempty"`
	RowsAffected int                    `json:"rowsAffected,omitempty"`
	BatchID      string                 `json:"batchId,omitempty"`
	RowData      map[string]interface{} `json:"rowData,omitempty"`
	Reason       string                 `json:"reason,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
}

// AuditLogParams contains parameters for creating an audit log entry.
// IP address and user agent are taken from ctx when left empty.
type AuditLogParams struct {
	Action       AuditAction
	EntityType   string
	EntityID     int64
	IPAddress    string
	UserAgent    string
	RowsAffected int
	BatchID      uuid.UUID
	RowData      map[string]interface{}
	Reason       string
}

// determineSeverity returns the appropriate severity for an action.
func determineSeverity(action AuditAction) AuditSeverity {
	switch action {
	case ActionCatalogDelete:
		return SeverityHigh
	case ActionCatalogUpdate:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// LogAudit records an audit entry. A failed write is logged and otherwise
// ignored so auditing never fails the operation being audited.
func (s *Service) LogAudit(ctx context.Context, params AuditLogParams) {
	if params.IPAddress == "" {
		params.IPAddress = IPAddressFromContext(ctx)
	}
	if params.UserAgent == "" {
		params.UserAgent = UserAgentFromContext(ctx)
	}

	var rowData []byte
	if params.RowData != nil {
		var err error
		rowData, err = json.Marshal(params.RowData)
		if err != nil {
			rowData = nil
		}
	}

	_, err := s.repo.InsertAuditLog(ctx, db.InsertAuditLogParams{
		Action:       string(params.Action),
		Severity:     string(determineSeverity(params.Action)),
		EntityType:   params.EntityType,
		EntityID:     ToPgInt8(params.EntityID),
		IpAddress:    ToPgText(params.IPAddress),
		UserAgent:    ToPgText(params.UserAgent),
		RowsAffected: int32(params.RowsAffected),
		BatchID:      ToPgUUID(params.BatchID),
		RowData:      rowData,
		Reason:       ToPgText(params.Reason),
	})
	if err != nil {
		logging.FromContext(ctx).Error("audit log write failed",
			"action", params.Action,
			"entity_type", params.EntityType,
			"entity_id", params.EntityID,
			"error", err,
		)
	}
}

// ListAudit returns the newest audit entries. limit <= 0 uses
// DefaultAuditLimit; larger values are capped at MaxAuditLimit.
func (s *Service) ListAudit(ctx context.Context, limit int) ([]AuditEntry, error) {
	if limit <= 0 {
		limit = DefaultAuditLimit
	}
	if limit > MaxAuditLimit {
		limit = MaxAuditLimit
	}

	rows, err := s.repo.ListAuditLogs(ctx, int32(limit))
	if err != nil {
		logging.FromContext(ctx).Error("list audit log failed", "error", err)
		return []AuditEntry{}, err
	}

	entries := make([]AuditEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, auditLogToEntry(row))
	}
	return entries, nil
}

func uuidToString(u pgtype.UUID) string {
	if !u.Valid {
		return ""
	}
	return uuid.UUID(u.Bytes).String()
}

func auditLogToEntry(row db.AuditLog) AuditEntry {
	entry := AuditEntry{
		ID:           uuidToString(row.ID),
		Action:       AuditAction(row.Action),
		Severity:     AuditSeverity(row.Severity),
		EntityType:   row.EntityType,
		IPAddress:    TextOrEmpty(row.IpAddress),
		UserAgent:    TextOrEmpty(row.UserAgent),
		RowsAffected: int(row.RowsAffected),
		BatchID:      uuidToString(row.BatchID),
		Reason:       TextOrEmpty(row.Reason),
		CreatedAt:    row.CreatedAt.Time,
	}
	if row.EntityID.Valid {
		entry.EntityID = row.EntityID.Int64
	}
	if row.RowData != nil {
		_ = json.Unmarshal(row.RowData, &entry.RowData)
	}
	return entry
}
