package wallet_repo

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
	table      = "wallets"
	colUID     = "uid"
	colEmail   = "email"
	colBalance = "balance"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewWalletRepository(dbc *pgxpool.Pool) repository.WalletRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetByUID - возвращает кошелек пользователя по его UID.
// Возвращает model.ErrWalletNotFound, если записи нет
func (r *repo) GetByUID(ctx context.Context, uid string) (*model.Wallet, error) {
	// Формируем запрос
	query := sq.Select(colUID, colEmail, colBalance).
		From(table).
		Where(sq.Eq{colUID: uid}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var wallet model.Wallet
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&wallet.UID, &wallet.Email, &wallet.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWalletNotFound
		}
		return nil, err
	}

	return &wallet, nil
}

// Create - создает кошелек со стартовым балансом.
// Повторная вставка по тому же UID молча игнорируется
func (r *repo) Create(ctx context.Context, wallet *model.Wallet) error {
	// Формируем запрос на вставку, если записи не существует
	query := sq.Insert(table).
		Columns(colUID, colEmail, colBalance).
		Values(wallet.UID, wallet.Email, wallet.Balance).
		Suffix("ON CONFLICT (" + colUID + ") DO NOTHING").
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

// Debit - условное списание: balance >= amount проверяется в том же UPDATE.
// rowsAffected = 0 означает нехватку средств, баланс не тронут
func (r *repo) Debit(ctx context.Context, uid string, amount float64) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colBalance, sq.Expr(colBalance+" - ?", amount)).
		Where(sq.And{
			sq.Eq{colUID: uid},
			sq.GtOrEq{colBalance: amount},
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
		return model.ErrInsufficientFunds
	}

	return nil
}

// Credit - безусловное начисление выигрыша на кошелек
func (r *repo) Credit(ctx context.Context, uid string, amount float64) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colBalance, sq.Expr(colBalance+" + ?", amount)).
		Where(sq.Eq{colUID: uid}).
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
		return model.ErrWalletNotFound
	}

	return nil
}
