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

// bcrypt hash of DefaultPassword
const passwordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const (
	DefaultPassword = "password123"
	AdminUsername   = "admin"
)

func CreateTestUser(t *testing.T, db DBLike, username string, isStaff bool) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, username, password_hash, email, is_staff, is_active)
		VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (username) DO NOTHING`,
		userID, username, passwordHash, username+"@example.com", isStaff)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID)
	}

	return userID
}

// CreateTestCustomer creates a user with a customer profile and returns both ids.
func CreateTestCustomer(t *testing.T, db DBLike, username string, maxReservations int32) (userID, customerID uuid.UUID) {
	t.Helper()

	userID = CreateTestUser(t, db, username, false)
	customerID = uuid.New()

	_, err := db.Exec(context.Background(), `INSERT INTO customers (id, user_id, max_reservations) VALUES ($1, $2, $3)`,
		customerID, userID, maxReservations)
	require.NoError(t, err)

	return userID, customerID
}

func CreateTestBook(t *testing.T, db DBLike, title string, quantity int32) uuid.UUID {
	t.Helper()

	bookID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO books (id, title, author, genre, quantity) VALUES ($1, $2, $3, $4, $5)`,
		bookID, title, "Test Author", "Test Genre", quantity)
	require.NoError(t, err)

	return bookID
}

func SetPopularity(t *testing.T, db DBLike, bookID uuid.UUID, popularity int32) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE books SET popularity = $2 WHERE id = $1", bookID, popularity)
	require.NoError(t, err)
}

func DeactivateUser(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
}

// BookQuantity reads the current stock straight from the table.
func BookQuantity(t *testing.T, db DBLike, bookID uuid.UUID) int32 {
	t.Helper()

	var quantity int32
	err := db.QueryRow(context.Background(), "SELECT quantity FROM books WHERE id = $1", bookID).Scan(&quantity)
	require.NoError(t, err)
	return quantity
}

func CurrentReservations(t *testing.T, db DBLike, customerID uuid.UUID) int32 {
	t.Helper()

	var current int32
	err := db.QueryRow(context.Background(), "SELECT current_reservations FROM customers WHERE id = $1", customerID).Scan(&current)
	require.NoError(t, err)
	return current
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, username, password_hash, email, is_staff, is_active) VALUES
		    (gen_random_uuid(), $1, $2, 'admin@example.com', true, true)
		ON CONFLICT (username) DO NOTHING;
	`, AdminUsername, passwordHash)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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

	return SeedReferenceData(pool)
}
