package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const auditColumns = `id, action, severity, entity_type, entity_id, ip_address, user_agent,
	rows_affected, batch_id, row_data, reason, created_at`

func scanAuditLog(row interface{ Scan(...any) error }) (AuditLog, error) {
	var i AuditLog
	err := row.Scan(
		&i.ID,
		&i.Action,
		&i.Severity,
		&i.EntityType,
		&i.EntityID,
		&i.IpAddress,
		&i.UserAgent,
		&i.RowsAffected,
		&i.BatchID,
		&i.RowData,
		&i.Reason,
		&i.CreatedAt,
	)
	return i, err
}

const insertAuditLog = `INSERT INTO audit_log (
	action, severity, entity_type, entity_id, ip_address, user_agent,
	rows_affected, batch_id, row_data, reason
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
)
RETURNING ` + auditColumns

type InsertAuditLogParams struct {
	Action       string
	Severity     string
	EntityType   string
	EntityID     pgtype.Int8
	IpAddress    pgtype.Text
	UserAgent    pgtype.Text
	RowsAffected int32
	BatchID      pgtype.UUID
	RowData      []byte
	Reason       pgtype.Text
}

func (q *Queries) InsertAuditLog(ctx context.Context, arg InsertAuditLogParams) (AuditLog, error) {
	row := q.db.QueryRow(ctx, insertAuditLog,
		arg.Action,
		arg.Severity,
		arg.EntityType,
		arg.EntityID,
		arg.IpAddress,
		arg.UserAgent,
		arg.RowsAffected,
		arg.BatchID,
		arg.RowData,
		arg.Reason,
	)
	return scanAuditLog(row)
}

const listAuditLogs = `SELECT ` + auditColumns + ` FROM audit_log ORDER BY created_at DESC LIMIT $1`

func (q *Queries) ListAuditLogs(ctx context.Context, limit int32) ([]AuditLog, error) {
	rows, err := q.db.Query(ctx, listAuditLogs, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []AuditLog
	for rows.Next() {
		i, err := scanAuditLog(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
