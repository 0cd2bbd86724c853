package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// UserStore implements store.UserStore on a relational database.
type UserStore struct {
	db         store.DBTX
	bcryptCost int
	logger     *slog.Logger
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a UserStore. Passwords are hashed with bcryptCost;
// out-of-range costs fall back to bcrypt.DefaultCost.
func NewUserStore(db store.DBTX, bcryptCost int, logger *slog.Logger) *UserStore {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{
		db:         db,
		bcryptCost: bcryptCost,
		logger:     logger.With(slog.String("component", "user_store")),
	}
}

// Create hashes the user's plaintext password and inserts the user.
// The plaintext is cleared from user on success.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
		if err != nil {
			return store.NewStoreError("user", "create", "failed to hash password", err)
		}
		user.PasswordHash = string(hash)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (user_id, first_name, last_name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		s.logger.ErrorContext(ctx, "failed to insert user",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
		return store.NewStoreError("user", "create", "failed to insert user", MapError(err))
	}

	user.Password = ""
	s.logger.DebugContext(ctx, "user created", slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, first_name, last_name, email, password_hash, created_at
		FROM users
		WHERE user_id = $1`, id)
	return s.scanUser(row.Scan, "get_by_id")
}

// GetByEmail implements store.UserStore. Matching is exact.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, first_name, last_name, email, password_hash, created_at
		FROM users
		WHERE email = $1`, email)
	return s.scanUser(row.Scan, "get_by_email")
}

// List implements store.UserStore.
func (s *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, first_name, last_name, email, created_at
		FROM users
		ORDER BY created_at, user_id`)
	if err != nil {
		return nil, store.NewStoreError("user", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	users := make([]*domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.CreatedAt); err != nil {
			return nil, store.NewStoreError("user", "list", "scan failed", err)
		}
		u.CreatedAt = u.CreatedAt.UTC()
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("user", "list", "row iteration failed", err)
	}
	return users, nil
}

func (s *UserStore) scanUser(scan func(dest ...any) error, op string) (*domain.User, error) {
	var u domain.User
	err := scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(MapError(err), store.ErrNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", op, "query failed", MapError(err))
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}
