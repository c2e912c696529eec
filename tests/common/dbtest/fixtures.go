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

	sqlc "salon-promo/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertPromotion writes a catalog row directly, bypassing the API. Use it to
// seed state the write endpoints refuse to produce (e.g. already-consumed
// usage counters).
func InsertPromotion(t *testing.T, db DBLike, row sqlc.Promotions) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO promotions (
		    id, name, description, promo_type, discount_cents, percent_off,
		    max_discount_cents, min_bill_cents, combo_components,
		    applicable_services, applicable_products, applicable_outlets,
		    start_date, end_date, start_time, end_time,
		    is_active, targeting_type, usage_limit_per_customer, total_usage_limit,
		    current_usage_count, activation_mode, coupon_code
		) VALUES (
		    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		    $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		)`,
		row.ID, row.Name, row.Description, row.PromoType, row.DiscountCents, row.PercentOff,
		row.MaxDiscountCents, row.MinBillCents, row.ComboComponents,
		row.ApplicableServices, row.ApplicableProducts, row.ApplicableOutlets,
		row.StartDate, row.EndDate, row.StartTime, row.EndTime,
		row.IsActive, row.TargetingType, row.UsageLimitPerCustomer, row.TotalUsageLimit,
		row.CurrentUsageCount, row.ActivationMode, row.CouponCode)
	require.NoError(t, err)

	return row.ID
}

func SetCustomerUsage(t *testing.T, db DBLike, promotionID, customerID uuid.UUID, usedCount int32) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO promotion_usage (promotion_id, customer_id, used_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (promotion_id, customer_id) DO UPDATE SET used_count = $3, updated_at = now()`,
		promotionID, customerID, usedCount)
	require.NoError(t, err)
}

func GlobalUsageCount(t *testing.T, db DBLike, promotionID uuid.UUID) int64 {
	t.Helper()

	var count int64
	err := db.QueryRow(context.Background(),
		"SELECT current_usage_count FROM promotions WHERE id = $1", promotionID).Scan(&count)
	require.NoError(t, err)
	return count
}

func CustomerUsageCount(t *testing.T, db DBLike, promotionID, customerID uuid.UUID) int32 {
	t.Helper()

	var count int32
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT used_count FROM promotion_usage WHERE promotion_id = $1 AND customer_id = $2), 0)",
		promotionID, customerID).Scan(&count)
	require.NoError(t, err)
	return count
}

func RedemptionCount(t *testing.T, db DBLike, promotionID uuid.UUID) int64 {
	t.Helper()

	var count int64
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM redemptions WHERE promotion_id = $1", promotionID).Scan(&count)
	require.NoError(t, err)
	return count
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
