package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "user-registration-api/internal/domain/user"
	"user-registration-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, SelectExistsByEmail, email).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, id).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Token,

		&u.Created,
		&u.Modified,
		&u.LastLogin,

		&u.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	phones, err := r.fetchPhones(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	return fromDBModel(u, phones), nil
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByEmail, email).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Token,

		&u.Created,
		&u.Modified,
		&u.LastLogin,

		&u.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	phones, err := r.fetchPhones(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	return fromDBModel(u, phones), nil
}

// CreateUser inserts the user and its phones in one transaction. Phones
// cannot outlive the owner; the schema cascades deletes and this insert is
// the only write path for them.
func (r *Repository) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	u := new(User)
	err = tx.QueryRow(
		ctx,
		InsertUser,
		req.ID, req.Name, req.Email, req.PasswordHash, req.Token,
	).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Token,

		&u.Created,
		&u.Modified,
		&u.LastLogin,

		&u.IsActive,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, err
	}

	phones := make(Phones, 0, len(req.Phones))
	for _, p := range req.Phones {
		if _, err = tx.Exec(ctx, InsertPhone, u.ID, p.Number, p.CityCode, p.CountryCode); err != nil {
			return nil, err
		}
		phones = append(phones, Phone{
			Number:      p.Number,
			CityCode:    p.CityCode,
			CountryCode: p.CountryCode,
		})
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return fromDBModel(u, phones), nil
}

func (r *Repository) UpdateToken(ctx context.Context, id domain.UUID, token string) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, UpdateUserToken, token, id).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Token,

		&u.Created,
		&u.Modified,
		&u.LastLogin,

		&u.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	phones, err := r.fetchPhones(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	return fromDBModel(u, phones), nil
}

func (r *Repository) TouchLastLogin(ctx context.Context, id domain.UUID) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, UpdateUserLastLogin, id).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Token,

		&u.Created,
		&u.Modified,
		&u.LastLogin,

		&u.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	phones, err := r.fetchPhones(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	return fromDBModel(u, phones), nil
}

func (r *Repository) fetchPhones(ctx context.Context, userID domain.UUID) (Phones, error) {
	rows, err := r.db.Query(ctx, SelectPhonesByUserID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps Phones
	for rows.Next() {
		var p Phone
		if err = rows.Scan(&p.Number, &p.CityCode, &p.CountryCode); err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ps, nil
}
