package repository

import (
	"context"

	"github.com/railway-booking/internal/domain"
)

// DiscountTypeRepository определяет методы для справочника видов скидок
type DiscountTypeRepository interface {
	// Create создаёт вид скидки
	Create(ctx context.Context, dt *domain.DiscountType) error

	// GetByID возвращает вид скидки по ID
	GetByID(ctx context.Context, id int64) (*domain.DiscountType, error)

	// List возвращает все виды скидок
	List(ctx context.Context) ([]*domain.DiscountType, error)
}

// DiscountRepository определяет методы для работы со скидками пользователей
type DiscountRepository interface {
	// Create создаёт скидку с нулевым числом применений
	Create(ctx context.Context, discount *domain.Discount) error

	// GetByID возвращает скидку вместе с её типом
	GetByID(ctx context.Context, id int64) (*domain.DiscountWithType, error)

	// ListByUser возвращает скидки пользователя
	ListByUser(ctx context.Context, userID int64) ([]*domain.DiscountWithType, error)

	// Redeem атомарно применяет скидку: в одной транзакции блокирует строку,
	// отклоняет исчерпанные limited-скидки (ErrDiscountExhausted), вызывает
	// apply и только при его успехе инкрементирует usage_amount, удаляя
	// исчерпанную limited-скидку. Ошибка apply откатывает транзакцию -
	// неудачный платёж не расходует лимит.
	Redeem(ctx context.Context, discountID, userID int64, apply func(*domain.DiscountWithType) error) error
}
