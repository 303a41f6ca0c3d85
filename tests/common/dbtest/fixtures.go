//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123", precomputed so fixtures stay cheap.
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestBusiness(t *testing.T, db DBLike, email, role, category, zipcode string) uuid.UUID {
	t.Helper()

	businessID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO businesses (id, name, email, password_hash, role, category, zipcode, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true)
		ON CONFLICT (email) DO NOTHING`,
		businessID, "Biz "+email, email, TestPasswordHash, role, category, zipcode)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM businesses WHERE email = $1", email).Scan(&businessID)
	}

	return businessID
}

func CreateTestLead(t *testing.T, db DBLike, category, zipcode string) uuid.UUID {
	t.Helper()

	leadID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO leads (
			id, consumer_name, consumer_email, consumer_phone,
			category, description, zipcode, status
		)
		VALUES ($1, 'Jane Smith', 'jane.smith@example.com', '(555) 123-4567',
			$2, 'Fix a leaking faucet', $3, 'new')`,
		leadID, category, zipcode)
	require.NoError(t, err)

	return leadID
}

func AssignLead(t *testing.T, db DBLike, leadID, businessID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO lead_assignments (lead_id, business_id, revealed)
		VALUES ($1, $2, false)`,
		leadID, businessID)
	require.NoError(t, err)
}

// SeedBalance grants credits directly in SQL, booking a matching purchase
// entry so the ledger-sum invariant holds from the start.
func SeedBalance(t *testing.T, db DBLike, businessID uuid.UUID, amount int64) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO credit_balances (business_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (business_id)
		DO UPDATE SET balance = credit_balances.balance + EXCLUDED.balance, updated_at = now()`,
		businessID, amount)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO credit_transactions (id, business_id, delta, reason)
		VALUES ($1, $2, $3, 'purchase')`,
		uuid.New(), businessID, amount)
	require.NoError(t, err)
}

func Balance(t *testing.T, db DBLike, businessID uuid.UUID) int64 {
	t.Helper()

	var balance int64
	err := db.QueryRow(context.Background(),
		"SELECT balance FROM credit_balances WHERE business_id = $1", businessID).Scan(&balance)
	require.NoError(t, err)
	return balance
}

func LedgerSum(t *testing.T, db DBLike, businessID uuid.UUID) int64 {
	t.Helper()

	var sum int64
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(SUM(delta), 0) FROM credit_transactions WHERE business_id = $1", businessID).Scan(&sum)
	require.NoError(t, err)
	return sum
}

func RevealTransactionCount(t *testing.T, db DBLike, businessID, leadID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), `
		SELECT COUNT(*) FROM credit_transactions
		WHERE business_id = $1 AND reference = $2 AND reason = 'lead_reveal'`,
		businessID, leadID).Scan(&count)
	require.NoError(t, err)
	return count
}

func AssignmentRevealed(t *testing.T, db DBLike, leadID, businessID uuid.UUID) bool {
	t.Helper()

	var revealed bool
	err := db.QueryRow(context.Background(), `
		SELECT revealed FROM lead_assignments
		WHERE lead_id = $1 AND business_id = $2`,
		leadID, businessID).Scan(&revealed)
	require.NoError(t, err)
	return revealed
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
