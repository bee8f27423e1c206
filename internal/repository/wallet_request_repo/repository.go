package wallet_request_repo

import (
	"context"
	"errors"
	"plinko_backend/internal/model"
	"plinko_backend/internal/repository"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "wallet_requests"
	colID        = "id"
	colUID       = "uid"
	colEmail     = "email"
	colAmount    = "requested_amount"
	colStatus    = "status"
	colSignedBy  = "signed_by"
	colCreatedAt = "created_at"
	colUpdatedAt = "updated_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewWalletRequestRepository(dbc *pgxpool.Pool) repository.WalletRequestRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Create - создает заявку на пополнение кошелька
func (r *repo) Create(ctx context.Context, request *model.WalletRequest) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colUID, colEmail, colAmount, colStatus).
		Values(request.ID, request.UID, request.Email, request.RequestedAmount, request.Status).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// List - возвращает все заявки, свежие первыми
func (r *repo) List(ctx context.Context) ([]model.WalletRequest, error) {
	// Формируем запрос
	query := sq.Select(colID, colUID, colEmail, colAmount, colStatus, colSignedBy, colCreatedAt, colUpdatedAt).
		From(table).
		OrderBy(colCreatedAt + " DESC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []model.WalletRequest
	for rows.Next() {
		var request model.WalletRequest
		err = rows.Scan(
			&request.ID,
			&request.UID,
			&request.Email,
			&request.RequestedAmount,
			&request.Status,
			&request.SignedBy,
			&request.CreatedAt,
			&request.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, rows.Err()
}

// GetByID - возвращает заявку по ID.
// Возвращает model.ErrRequestNotFound, если заявки нет
func (r *repo) GetByID(ctx context.Context, id string) (*model.WalletRequest, error) {
	// Формируем запрос
	query := sq.Select(colID, colUID, colEmail, colAmount, colStatus, colSignedBy, colCreatedAt, colUpdatedAt).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var request model.WalletRequest
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&request.ID,
		&request.UID,
		&request.Email,
		&request.RequestedAmount,
		&request.Status,
		&request.SignedBy,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// UpdateStatus - переводит заявку из pending в новый статус.
// rowsAffected = 0 означает, что заявка уже обработана
func (r *repo) UpdateStatus(ctx context.Context, id string, status string, signedBy string) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colStatus, status).
		Set(colSignedBy, signedBy).
		Set(colUpdatedAt, time.Now()).
		Where(sq.And{
			sq.Eq{colID: id},
			sq.Eq{colStatus: model.WalletRequestPending},
		}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return model.ErrRequestProcessed
	}

	return nil
}
