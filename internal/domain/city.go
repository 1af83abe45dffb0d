package domain

// City - справочник городов; имя уникально
type City struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"city_name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
}

// ArrivalPoint - физическая точка посадки/высадки в городе
// (вокзал, платформа). На неё ссылаются маршруты, остановки и билеты.
type ArrivalPoint struct {
	ID       int64  `json:"id" db:"id"`
	CityID   int64  `json:"-" db:"city_id"`
	Place    string `json:"arrival_place" db:"place"`
	CityName string `json:"arrival_city" db:"city_name"`
}
