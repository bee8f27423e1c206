package user_repo

import (
	"context"
	"errors"
	"plinko_backend/internal/model"
	"plinko_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "users"
	colID           = "id"
	colUID          = "uid"
	colName         = "name"
	colLogin        = "login"
	colEmail        = "email"
	colPasswordHash = "password_hash"
	colRole         = "role"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateUser - создает нового пользователя в БД.
// Возвращает ID созданного пользователя
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUID, colName, colLogin, colEmail, colPasswordHash, colRole).
		Values(user.UID, user.Name, user.Login, user.Email, user.Password, user.Role).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetUserByLogin - возвращает модель пользователя по его логину
func (r *repo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	return r.getUserBy(ctx, sq.Eq{colLogin: login})
}

// GetUserByUID - возвращает модель пользователя по его UID.
// Возвращает model.ErrUserNotFound, если пользователя нет
func (r *repo) GetUserByUID(ctx context.Context, uid string) (*model.User, error) {
	return r.getUserBy(ctx, sq.Eq{colUID: uid})
}

func (r *repo) getUserBy(ctx context.Context, where sq.Eq) (*model.User, error) {
	// Формируем запрос
	query := sq.Select(colID, colUID, colName, colLogin, colEmail, colPasswordHash, colRole).
		From(table).
		Where(where).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&user.ID,
		&user.UID,
		&user.Name,
		&user.Login,
		&user.Email,
		&user.Password,
		&user.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
