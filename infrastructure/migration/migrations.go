// Package migration aplica o schema do banco em uma única transação
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

// Statements são idempotentes e executados na ordem em que aparecem
var Statements = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		logo       TEXT NOT NULL DEFAULT '',
		website    TEXT NOT NULL DEFAULT '',
		industry   TEXT NOT NULL DEFAULT '',
		size       VARCHAR(16) NOT NULL DEFAULT '',
		address    TEXT NOT NULL DEFAULT '',
		phone      TEXT NOT NULL DEFAULT '',
		is_partner BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_companies_is_partner ON companies (is_partner, name)`,
	`CREATE TABLE IF NOT EXISTS business_plans (
		id                       UUID PRIMARY KEY,
		reference                VARCHAR(16) NOT NULL UNIQUE,
		title                    TEXT NOT NULL,
		company_id               TEXT NOT NULL DEFAULT '',
		partner_id               TEXT NOT NULL DEFAULT '',
		partner_name             TEXT NOT NULL DEFAULT '',
		start_date               DATE NOT NULL,
		end_date                 DATE NOT NULL,
		status                   VARCHAR(16) NOT NULL DEFAULT 'draft',
		net_new_iacv             DOUBLE PRECISION NOT NULL DEFAULT 0,
		outbound_acv             DOUBLE PRECISION NOT NULL DEFAULT 0,
		outbound_sql_to_win_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		outbound_tal_to_sql_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		outbound_commission_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		inbound_acv              DOUBLE PRECISION NOT NULL DEFAULT 0,
		inbound_sql_to_win_rate  DOUBLE PRECISION NOT NULL DEFAULT 0,
		inbound_tal_to_sql_rate  DOUBLE PRECISION NOT NULL DEFAULT 0,
		inbound_commission_rate  DOUBLE PRECISION NOT NULL DEFAULT 0,
		team_ctc                 NUMERIC(14,2) NOT NULL DEFAULT 0,
		travel                   NUMERIC(14,2) NOT NULL DEFAULT 0,
		marketing                NUMERIC(14,2) NOT NULL DEFAULT 0,
		tools_and_office         NUMERIC(14,2) NOT NULL DEFAULT 0,
		partner_contribution     NUMERIC(14,2) NOT NULL DEFAULT 0,
		owner_contribution       NUMERIC(14,2) NOT NULL DEFAULT 0,
		inbound_commission       NUMERIC(14,2) NOT NULL DEFAULT 0,
		outbound_commission      NUMERIC(14,2) NOT NULL DEFAULT 0,
		contract_terms           TEXT NOT NULL DEFAULT '',
		exit_clauses             TEXT NOT NULL DEFAULT '',
		kpis                     JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at               TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at               TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT business_plans_dates_check CHECK (end_date >= start_date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_business_plans_status ON business_plans (status)`,
	`CREATE TABLE IF NOT EXISTS evaluations (
		id                UUID PRIMARY KEY,
		business_plan_id  UUID NOT NULL REFERENCES business_plans (id) ON DELETE CASCADE,
		evaluation_date   DATE NOT NULL,
		evaluator         TEXT NOT NULL DEFAULT '',
		market_score      DOUBLE PRECISION NOT NULL,
		financial_score   DOUBLE PRECISION NOT NULL,
		operational_score DOUBLE PRECISION NOT NULL,
		risk_score        DOUBLE PRECISION NOT NULL,
		overall_score     DOUBLE PRECISION NOT NULL,
		feedback          TEXT NOT NULL DEFAULT '',
		next_steps        TEXT NOT NULL DEFAULT '',
		created_at        TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_evaluations_business_plan_id ON evaluations (business_plan_id)`,
	`CREATE TABLE IF NOT EXISTS bookkeeping_entries (
		id               UUID PRIMARY KEY,
		business_plan_id UUID NOT NULL REFERENCES business_plans (id) ON DELETE CASCADE,
		month            DATE NOT NULL,
		category         TEXT NOT NULL,
		subcategory      TEXT NOT NULL DEFAULT '',
		planned_amount   NUMERIC(14,2) NOT NULL DEFAULT 0,
		actual_amount    NUMERIC(14,2),
		notes            TEXT NOT NULL DEFAULT '',
		created_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookkeeping_entries_plan_month ON bookkeeping_entries (business_plan_id, month)`,
}

// Apply executa todos os statements; qualquer falha desfaz a migração inteira
func Apply(ctx context.Context, conn Transactor) error {
	logrus.Infof("Iniciando migração do schema (%d statements)...", len(Statements))
	startTime := time.Now()

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range Statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao executar statement %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("falha na migração: %w", err)
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
	return nil
}
