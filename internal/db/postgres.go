package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"fitlife/internal/models"
)

type PostgresDB struct {
	pool *pgxpool.Pool
}

func NewPostgresDB(cfg struct {
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	ConnLifetime time.Duration
}) (*PostgresDB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode, cfg.MaxOpenConns,
	)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DB connection string: %w", err)
	}

	// Set connection pool parameters
	poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.MaxIdleConns)
	poolConfig.MaxConnLifetime = cfg.ConnLifetime
	poolConfig.MaxConnIdleTime = 15 * time.Minute

	// Connect with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection works
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresDB{pool: pool}, nil
}

func (db *PostgresDB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// ==================== users ====================

func (db *PostgresDB) CreateUser(ctx context.Context, user *models.User) error {
	query := `
        INSERT INTO users (id, email, password_hash)
        VALUES ($1, $2, $3)
        RETURNING created_at
    `

	err := db.pool.QueryRow(ctx, query, user.ID, user.Email, user.PasswordHash).
		Scan(&user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (db *PostgresDB) GetUser(ctx context.Context, userID string) (*models.User, error) {
	query := `
        SELECT id, email, password_hash, created_at
        FROM users
        WHERE id = $1
    `

	var user models.User
	err := db.pool.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (db *PostgresDB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
        SELECT id, email, password_hash, created_at
        FROM users
        WHERE email = $1
    `

	var user models.User
	err := db.pool.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// DeleteUser removes the account and everything owned by it.
func (db *PostgresDB) DeleteUser(ctx context.Context, userID string) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, query := range []string{
		`DELETE FROM suggestions WHERE user_id = $1`,
		`DELETE FROM payment_sessions WHERE user_id = $1`,
		`DELETE FROM subscriptions WHERE user_id = $1`,
		`DELETE FROM profiles WHERE user_id = $1`,
		`DELETE FROM users WHERE id = $1`,
	} {
		if _, err := tx.Exec(ctx, query, userID); err != nil {
			return fmt.Errorf("failed to delete user data: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// ==================== profiles ====================

func (db *PostgresDB) SaveProfile(ctx context.Context, profile *models.Profile) error {
	query := `
        INSERT INTO profiles (id, user_id, full_name, age, weight, height, objectives,
                              dietary_restrictions, training_type, current_activities)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (user_id) DO UPDATE
        SET full_name = $3, age = $4, weight = $5, height = $6, objectives = $7,
            dietary_restrictions = $8, training_type = $9, current_activities = $10,
            updated_at = NOW()
        RETURNING id, created_at, updated_at
    `

	err := db.pool.QueryRow(ctx, query,
		profile.ID, profile.UserID, profile.FullName, profile.Age,
		profile.Weight, profile.Height, profile.Objectives,
		profile.DietaryRestrictions, profile.TrainingType, profile.CurrentActivities,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

func (db *PostgresDB) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	query := `
        SELECT id, user_id, full_name, age, weight, height, objectives,
               dietary_restrictions, training_type, current_activities,
               created_at, updated_at
        FROM profiles
        WHERE user_id = $1
    `

	var profile models.Profile
	err := db.pool.QueryRow(ctx, query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.FullName, &profile.Age,
		&profile.Weight, &profile.Height, &profile.Objectives,
		&profile.DietaryRestrictions, &profile.TrainingType, &profile.CurrentActivities,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// ==================== suggestions ====================

func (db *PostgresDB) SaveSuggestion(ctx context.Context, suggestion *models.Suggestion) error {
	query := `
        INSERT INTO suggestions (id, user_id, type, content)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at
    `

	err := db.pool.QueryRow(ctx, query,
		suggestion.ID, suggestion.UserID, suggestion.Type, suggestion.Content,
	).Scan(&suggestion.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save suggestion: %w", err)
	}

	return nil
}

func (db *PostgresDB) ListSuggestions(ctx context.Context, userID string) ([]models.Suggestion, error) {
	query := `
        SELECT id, user_id, type, content, created_at
        FROM suggestions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `

	rows, err := db.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	defer rows.Close()

	var suggestions []models.Suggestion
	for rows.Next() {
		var s models.Suggestion
		if err := rows.Scan(&s.ID, &s.UserID, &s.Type, &s.Content, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		suggestions = append(suggestions, s)
	}

	return suggestions, rows.Err()
}

// DeleteSuggestion removes a suggestion, but only if it belongs to the
// given user. Reports whether a row was deleted.
func (db *PostgresDB) DeleteSuggestion(ctx context.Context, suggestionID, userID string) (bool, error) {
	query := `
        DELETE FROM suggestions
        WHERE id = $1 AND user_id = $2
    `

	tag, err := db.pool.Exec(ctx, query, suggestionID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete suggestion: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ==================== subscriptions ====================

func (db *PostgresDB) GetSubscription(ctx context.Context, userID string) (*models.SubscriptionRecord, error) {
	query := `
        SELECT user_id, subscription_ends_at, updated_at
        FROM subscriptions
        WHERE user_id = $1
    `

	var sub models.SubscriptionRecord
	err := db.pool.QueryRow(ctx, query, userID).Scan(
		&sub.UserID, &sub.SubscriptionEndsAt, &sub.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &sub, nil
}

// ==================== payment sessions ====================

func (db *PostgresDB) CreatePaymentSession(ctx context.Context, session *models.PaymentSession) error {
	query := `
        INSERT INTO payment_sessions (session_id, user_id, package_id, amount, currency, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, updated_at
    `

	err := db.pool.QueryRow(ctx, query,
		session.SessionID, session.UserID, session.PackageID,
		session.Amount, session.Currency, session.Status,
	).Scan(&session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment session: %w", err)
	}

	return nil
}

func (db *PostgresDB) GetPaymentSession(ctx context.Context, sessionID string) (*models.PaymentSession, error) {
	query := `
        SELECT session_id, user_id, package_id, amount, currency, status, created_at, updated_at
        FROM payment_sessions
        WHERE session_id = $1
    `

	var session models.PaymentSession
	err := db.pool.QueryRow(ctx, query, sessionID).Scan(
		&session.SessionID, &session.UserID, &session.PackageID,
		&session.Amount, &session.Currency, &session.Status,
		&session.CreatedAt, &session.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment session: %w", err)
	}

	return &session, nil
}

// UpdateSessionStatus records a non-paid provider status. Paid is
// terminal: a stale report arriving after activation leaves the session
// untouched, so it cannot re-arm the paid transition.
func (db *PostgresDB) UpdateSessionStatus(ctx context.Context, sessionID, status string) error {
	query := `
        UPDATE payment_sessions
        SET status = $2, updated_at = NOW()
        WHERE session_id = $1 AND status <> 'paid'
    `

	_, err := db.pool.Exec(ctx, query, sessionID, status)
	if err != nil {
		return fmt.Errorf("failed to update session status: %w", err)
	}

	return nil
}

// ApplyPaidSession transitions a session to paid and extends the user's
// subscription in a single transaction. The conditional update makes
// reconciliation safe when a webhook and a status poll race for the same
// session: the loser sees zero affected rows and applies nothing. A
// failed subscription write rolls the paid transition back, so a later
// retry can still activate the user.
func (db *PostgresDB) ApplyPaidSession(ctx context.Context, sessionID, userID string, endsAt time.Time) (bool, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
        UPDATE payment_sessions
        SET status = 'paid', updated_at = NOW()
        WHERE session_id = $1 AND status <> 'paid'
    `, sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to mark session paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO subscriptions (user_id, subscription_ends_at)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE
        SET subscription_ends_at = $2, updated_at = NOW()
    `, userID, endsAt)
	if err != nil {
		return false, fmt.Errorf("failed to extend subscription: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit paid session: %w", err)
	}

	return true, nil
}
