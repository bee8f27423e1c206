package settings_repo

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
	table            = "game_settings"
	colID            = "id"
	colBallLimit     = "ball_limit"
	colInitBalance   = "initial_balance"
	colMaxBallPrice  = "max_ball_price"
	colDropResetTime = "drop_reset_time_ms"
	colCycleTime     = "total_cycle_time_ms"
	colSignedBy      = "last_signed_in_by"

	// Единственный допустимый id строки настроек (CHECK (id = 1) в схеме)
	singletonID = 1
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSettingsRepository(dbc *pgxpool.Pool) repository.SettingsRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Get - читает singleton-строку настроек.
// Возвращает model.ErrSettingsNotFound, если настройки еще не созданы
func (r *repo) Get(ctx context.Context) (*model.GameSettings, error) {
	// Формируем запрос
	query := sq.Select(colBallLimit, colInitBalance, colMaxBallPrice, colDropResetTime, colCycleTime, colSignedBy).
		From(table).
		Where(sq.Eq{colID: singletonID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var settings model.GameSettings
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&settings.BallLimit,
		&settings.InitialBalance,
		&settings.MaxBallPrice,
		&settings.DropResetTimeMs,
		&settings.TotalCycleTimeMs,
		&settings.LastSignedInBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSettingsNotFound
		}
		return nil, err
	}

	return &settings, nil
}

// Create - создает singleton-строку настроек.
// Повторная вставка молча игнорируется, вторая строка невозможна
func (r *repo) Create(ctx context.Context, settings *model.GameSettings) error {
	// Формируем запрос на вставку, если записи не существует
	query := sq.Insert(table).
		Columns(colID, colBallLimit, colInitBalance, colMaxBallPrice, colDropResetTime, colCycleTime, colSignedBy).
		Values(
			singletonID,
			settings.BallLimit,
			settings.InitialBalance,
			settings.MaxBallPrice,
			settings.DropResetTimeMs,
			settings.TotalCycleTimeMs,
			settings.LastSignedInBy,
		).
		Suffix("ON CONFLICT (" + colID + ") DO NOTHING").
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

// Update - перезаписывает singleton-строку настроек целиком
func (r *repo) Update(ctx context.Context, settings *model.GameSettings) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colBallLimit, settings.BallLimit).
		Set(colInitBalance, settings.InitialBalance).
		Set(colMaxBallPrice, settings.MaxBallPrice).
		Set(colDropResetTime, settings.DropResetTimeMs).
		Set(colCycleTime, settings.TotalCycleTimeMs).
		Set(colSignedBy, settings.LastSignedInBy).
		Where(sq.Eq{colID: singletonID}).
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
		return model.ErrSettingsNotFound
	}

	return nil
}
