package domain

import "time"

// RunSummary resume uma execução completa do pipeline
type RunSummary struct {
	RunID       string        `json:"run_id"`
	UserID      string        `json:"user_id"`
	AppID       string        `json:"app_id"`
	Source      AccountSource `json:"source"`
	Accounts    int           `json:"accounts"`
	Ads         int           `json:"ads"`
	Units       int           `json:"units"`
	RecordCount int64         `json:"record_count"`
	TableCount  int           `json:"table_count"`
	Tables      []string      `json:"tables"`
	StartedAt   time.Time     `json:"started_at"`
	FinishedAt  time.Time     `json:"finished_at"`
}

// Stage identifica a etapa do pipeline em que um erro ocorreu
type Stage string

const (
	StageToken    Stage = "token"
	StageAccounts Stage = "accounts"
	StageAds      Stage = "ads"
	StageInsights Stage = "insights"
	StageLoad     Stage = "load"
)
