package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/railway-booking/internal/domain"
	"github.com/railway-booking/internal/domain/repository"
	"github.com/railway-booking/internal/pkg/errors"
	"github.com/railway-booking/internal/usecase/dto"
)

// DiscountUseCase - use case скидок и их видов
type DiscountUseCase struct {
	discountRepo     repository.DiscountRepository
	discountTypeRepo repository.DiscountTypeRepository
	logger           *zap.Logger
}

// NewDiscountUseCase создает новый DiscountUseCase
func NewDiscountUseCase(
	discountRepo repository.DiscountRepository,
	discountTypeRepo repository.DiscountTypeRepository,
	logger *zap.Logger,
) *DiscountUseCase {
	return &DiscountUseCase{
		discountRepo:     discountRepo,
		discountTypeRepo: discountTypeRepo,
		logger:           logger,
	}
}

// CreateDiscountType создает вид скидки. Limited-вид обязан иметь лимит,
// permanent лимита не имеет.
func (uc *DiscountUseCase) CreateDiscountType(ctx context.Context, req *dto.CreateDiscountTypeRequest) (*domain.DiscountType, error) {
	if req.Name == domain.DiscountLimited && req.Limit == nil {
		return nil, errors.ErrInvalidRequest.WithField("discount_limit", "limited discount requires a usage limit")
	}
	if req.Name == domain.DiscountPermanent && req.Limit != nil {
		return nil, errors.ErrInvalidRequest.WithField("discount_limit", "permanent discount must not have a usage limit")
	}

	dt := &domain.DiscountType{
		Name:    req.Name,
		Percent: req.Percent,
		Limit:   req.Limit,
	}

	if err := uc.discountTypeRepo.Create(ctx, dt); err != nil {
		return nil, err
	}

	uc.logger.Info("Discount type created",
		zap.Int64("discount_type_id", dt.ID),
		zap.String("name", dt.Name),
		zap.Float64("percent", dt.Percent))

	return dt, nil
}

// ListDiscountTypes возвращает все виды скидок
func (uc *DiscountUseCase) ListDiscountTypes(ctx context.Context) ([]*domain.DiscountType, error) {
	return uc.discountTypeRepo.List(ctx)
}

// CreateDiscount выдает пользователю скидку существующего вида
func (uc *DiscountUseCase) CreateDiscount(ctx context.Context, req *dto.CreateDiscountRequest) (*domain.DiscountWithType, error) {
	if _, err := uc.discountTypeRepo.GetByID(ctx, req.DiscountTypeID); err != nil {
		return nil, err
	}

	discount := &domain.Discount{
		UserID:         req.UserID,
		DiscountTypeID: req.DiscountTypeID,
	}

	if err := uc.discountRepo.Create(ctx, discount); err != nil {
		return nil, err
	}

	uc.logger.Info("Discount created",
		zap.Int64("discount_id", discount.ID),
		zap.Int64("user_id", discount.UserID),
		zap.Int64("discount_type_id", discount.DiscountTypeID))

	return uc.discountRepo.GetByID(ctx, discount.ID)
}

// ListByUser возвращает скидки пользователя
func (uc *DiscountUseCase) ListByUser(ctx context.Context, userID int64) ([]*domain.DiscountWithType, error) {
	return uc.discountRepo.ListByUser(ctx, userID)
}
