package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-server/internal/logger"
	"github.com/MKhiriev/go-todo-server/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the user and its first todo inside one transaction.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other failure → wrapped low-level sentinel, transaction rolled back.
func (r *userRepository) CreateUser(ctx context.Context, user models.User, firstTask string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	userQuery, userArgs, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error beginning transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// create user in db
	if err = tx.QueryRowContext(ctx, userQuery, userArgs...).Scan(&user.UserID); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username is taken")
			return models.User{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if firstTask != "" {
		todo := models.Todo{UserID: user.UserID, Task: firstTask, CreatedAt: user.CreatedAt}
		todoQuery, todoArgs, err := buildInsertTodoQuery(r.db.builder, todo)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var todoID int64
		if err = tx.QueryRowContext(ctx, todoQuery, todoArgs...).Scan(&todoID); err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Int64("user_id", user.UserID).Msg("error inserting first todo")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error committing transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user, nil
}

// FindUserByUsername retrieves the user record whose username matches.
//
// Error handling:
//   - no rows → [ErrUserNotFound].
//   - any other failure → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByUsernameQuery(r.db.builder, username)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&foundUser.UserID, &foundUser.Username, &foundUser.Password, &foundUser.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return foundUser, nil
}
