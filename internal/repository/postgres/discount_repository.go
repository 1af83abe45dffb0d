package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/railway-booking/internal/domain"
	"github.com/railway-booking/internal/domain/repository"
	"github.com/railway-booking/internal/pkg/errors"
)

type discountTypeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewDiscountTypeRepository(db *DB) repository.DiscountTypeRepository {
	return &discountTypeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *discountTypeRepository) Create(ctx context.Context, dt *domain.DiscountType) error {
	query := `
		INSERT INTO discount_types (name, percent, usage_limit)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, dt.Name, dt.Percent, dt.Limit).Scan(&dt.ID)
	if err != nil {
		r.logger.Error("Failed to create discount type", zap.String("name", dt.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *discountTypeRepository) GetByID(ctx context.Context, id int64) (*domain.DiscountType, error) {
	query := `SELECT id, name, percent, usage_limit FROM discount_types WHERE id = $1`

	var dt domain.DiscountType
	err := r.db.GetContext(ctx, &dt, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrDiscountTypeNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get discount type", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &dt, nil
}

func (r *discountTypeRepository) List(ctx context.Context) ([]*domain.DiscountType, error) {
	query := `SELECT id, name, percent, usage_limit FROM discount_types ORDER BY id`

	var types []*domain.DiscountType
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		r.logger.Error("Failed to list discount types", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return types, nil
}

type discountRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewDiscountRepository(db *DB) repository.DiscountRepository {
	return &discountRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const discountByIDQuery = `
	SELECT d.id, d.user_id, d.discount_type_id, d.usage_amount,
	       dt.id AS type_id, dt.name, dt.percent, dt.usage_limit
	FROM discounts d
	JOIN discount_types dt ON dt.id = d.discount_type_id
	WHERE d.id = $1
`

func scanDiscount(row *sql.Row) (*domain.DiscountWithType, error) {
	var d domain.DiscountWithType
	err := row.Scan(
		&d.ID, &d.UserID, &d.DiscountTypeID, &d.UsageAmount,
		&d.Type.ID, &d.Type.Name, &d.Type.Percent, &d.Type.Limit,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *discountRepository) Create(ctx context.Context, discount *domain.Discount) error {
	query := `
		INSERT INTO discounts (user_id, discount_type_id, usage_amount)
		VALUES ($1, $2, 0)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, discount.UserID, discount.DiscountTypeID).Scan(&discount.ID)
	if err != nil {
		r.logger.Error("Failed to create discount", zap.Int64("user_id", discount.UserID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	discount.UsageAmount = 0

	return nil
}

func (r *discountRepository) GetByID(ctx context.Context, id int64) (*domain.DiscountWithType, error) {
	d, err := scanDiscount(r.db.QueryRowContext(ctx, discountByIDQuery, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrDiscountNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get discount", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return d, nil
}

func (r *discountRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.DiscountWithType, error) {
	query := `
		SELECT d.id, d.user_id, d.discount_type_id, d.usage_amount,
		       dt.id AS type_id, dt.name, dt.percent, dt.usage_limit
		FROM discounts d
		JOIN discount_types dt ON dt.id = d.discount_type_id
		WHERE d.user_id = $1
		ORDER BY d.id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list discounts", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var discounts []*domain.DiscountWithType
	for rows.Next() {
		var d domain.DiscountWithType
		err := rows.Scan(
			&d.ID, &d.UserID, &d.DiscountTypeID, &d.UsageAmount,
			&d.Type.ID, &d.Type.Name, &d.Type.Percent, &d.Type.Limit,
		)
		if err != nil {
			r.logger.Error("Failed to scan discount", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		discounts = append(discounts, &d)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate discounts", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return discounts, nil
}

// Redeem применяет скидку атомарно относительно её id: строка блокируется
// FOR UPDATE на время валидации, вызова apply и инкремента, поэтому две
// конкурентные оплаты не переплюнут лимит limited-скидки. Ошибка apply
// (например, отказ платёжного провайдера) откатывает транзакцию целиком.
func (r *discountRepository) Redeem(ctx context.Context, discountID, userID int64, apply func(*domain.DiscountWithType) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin redeem transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	d, err := scanDiscount(tx.QueryRowContext(ctx, discountByIDQuery+` FOR UPDATE OF d`, discountID))
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.ErrDiscountNotFound
	}
	if err != nil {
		r.logger.Error("Failed to lock discount", zap.Int64("id", discountID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	// Чужая скидка неотличима от несуществующей
	if d.UserID != userID {
		return errors.ErrDiscountNotFound
	}

	if !d.CanApply() {
		return errors.ErrDiscountExhausted
	}

	if err := apply(d); err != nil {
		return err
	}

	if d.ExhaustedAfterUse() {
		if _, err := tx.ExecContext(ctx, `DELETE FROM discounts WHERE id = $1`, discountID); err != nil {
			r.logger.Error("Failed to delete exhausted discount", zap.Int64("id", discountID), zap.Error(err))
			return errors.ErrDatabaseError
		}
	} else {
		if _, err := tx.ExecContext(ctx, `UPDATE discounts SET usage_amount = usage_amount + 1 WHERE id = $1`, discountID); err != nil {
			r.logger.Error("Failed to increment discount usage", zap.Int64("id", discountID), zap.Error(err))
			return errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit redeem transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
