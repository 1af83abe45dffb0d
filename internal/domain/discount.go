package domain

const (
	DiscountLimited   = "limited"
	DiscountPermanent = "permanent"
)

// DiscountType - вид скидки: permanent действует всегда,
// limited - не больше Limit применений
type DiscountType struct {
	ID      int64   `json:"id" db:"id"`
	Name    string  `json:"discount_type_name" db:"name"`
	Percent float64 `json:"discount_percent" db:"percent"`
	Limit   *int    `json:"discount_limit,omitempty" db:"usage_limit"`
}

// Discount - персональная скидка пользователя с числом применений
type Discount struct {
	ID             int64 `json:"id" db:"id"`
	UserID         int64 `json:"user" db:"user_id"`
	DiscountTypeID int64 `json:"-" db:"discount_type_id"`
	UsageAmount    int   `json:"usage_amount" db:"usage_amount"`
}

// DiscountWithType - скидка вместе со своим типом
type DiscountWithType struct {
	Discount
	Type DiscountType `json:"discount_type"`
}

// CanApply сообщает, можно ли применить скидку ещё раз
func (d *DiscountWithType) CanApply() bool {
	if d.Type.Name == DiscountPermanent {
		return true
	}
	return d.Type.Limit != nil && d.UsageAmount < *d.Type.Limit
}

// ExhaustedAfterUse сообщает, исчерпает ли лимит очередное применение.
// Исчерпанная limited-скидка удаляется при чекауте.
func (d *DiscountWithType) ExhaustedAfterUse() bool {
	if d.Type.Name != DiscountLimited || d.Type.Limit == nil {
		return false
	}
	return d.UsageAmount+1 >= *d.Type.Limit
}

// FinalPrice - цена после применения скидки
func (d *DiscountWithType) FinalPrice(total float64) float64 {
	return total - total*d.Type.Percent/100
}
