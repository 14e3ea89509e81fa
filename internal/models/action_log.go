package models

import "time"

// ActionLog is the row stored in the action_logs table. SaleData holds the JSONB snapshot.
type ActionLog struct {
	ActionLogID string    `db:"action_log_id"`
	ActionType  string    `db:"action_type"`
	SaleID      string    `db:"sale_id"`
	SaleData    []byte    `db:"sale_data"`
	Motif       string    `db:"motif"`
	CompanyID   string    `db:"company_id"`
	CompanyName string    `db:"company_name"`
	PerformedBy string    `db:"performed_by"`
	CreatedAt   time.Time `db:"created_at"`
}
