package postgresql

import (
	"context"
	"fmt"

	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
)

// Bootstrap applies the schema on startup. Every statement is idempotent
// so the call is safe against an already provisioned database.
func Bootstrap(ctx context.Context, db *database.DB) error {
	statements := []string{
		`DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'attendance_status') THEN
				CREATE TYPE attendance_status AS ENUM ('present', 'absent', 'halfday');
			END IF;
		END $$`,

		`CREATE TABLE IF NOT EXISTS workers (
			id UUID PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			address TEXT,
			phone VARCHAR(10),
			opening_balance NUMERIC(12,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT workers_phone_unique UNIQUE (phone)
		)`,

		`CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT categories_name_unique UNIQUE (name)
		)`,

		`CREATE TABLE IF NOT EXISTS subcategories (
			id UUID PRIMARY KEY,
			category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			name VARCHAR(100) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT subcategories_category_name_unique UNIQUE (category_id, name)
		)`,

		`CREATE TABLE IF NOT EXISTS attendance_records (
			id UUID PRIMARY KEY,
			worker_id UUID NOT NULL REFERENCES workers(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			status attendance_status NOT NULL,
			category_id UUID REFERENCES categories(id) ON DELETE SET NULL,
			subcategory_id UUID REFERENCES subcategories(id) ON DELETE SET NULL,
			amount NUMERIC(12,2),
			narration TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT attendance_worker_date_unique UNIQUE (worker_id, date),
			CONSTRAINT attendance_absent_no_amount CHECK (status <> 'absent' OR amount IS NULL OR amount = 0)
		)`,

		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY,
			worker_id UUID NOT NULL REFERENCES workers(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			amount NUMERIC(12,2) NOT NULL CHECK (amount > 0),
			payment_mode VARCHAR(20) NOT NULL DEFAULT 'cash',
			narration TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS balance_audit (
			id UUID PRIMARY KEY,
			worker_id UUID NOT NULL REFERENCES workers(id) ON DELETE CASCADE,
			old_balance NUMERIC(12,2) NOT NULL,
			new_balance NUMERIC(12,2) NOT NULL,
			change_reason VARCHAR(100) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_attendance_worker_date ON attendance_records (worker_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance_records (date)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_worker_date ON payments (worker_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_date ON payments (date)`,
		`CREATE INDEX IF NOT EXISTS idx_balance_audit_worker ON balance_audit (worker_id, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	return nil
}
