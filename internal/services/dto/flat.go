package dto

// CreateFlatRequest - все поля обязательны, цены допускают null, has_loggia по умолчанию равен has_balcony
type CreateFlatRequest struct {
	Title         *string     `json:"title" validate:"required"`
	RoomCount     *int        `json:"room_count" validate:"required,min=0,max=4"`
	Address       *string     `json:"address" validate:"required"`
	Lat           *float64    `json:"lat" validate:"required"`
	Lon           *float64    `json:"lon" validate:"required"`
	Area          *float64    `json:"area" validate:"required"`
	PriceShort    OptionalInt `json:"price_short"`
	PriceLong     OptionalInt `json:"price_long"`
	GuestCount    *int        `json:"guest_count" validate:"required,min=0"`
	BedCount      *int        `json:"bed_count" validate:"required,min=0"`
	RestroomCount *int        `json:"restroom_count" validate:"required,min=0"`

	HasBalcony     *bool `json:"has_balcony" validate:"required"`
	HasLoggia      *bool `json:"has_loggia"`
	Children       *bool `json:"children" validate:"required"`
	Animals        *bool `json:"animals" validate:"required"`
	WashingMachine *bool `json:"washing_machine" validate:"required"`
	Fridge         *bool `json:"fridge" validate:"required"`
	TV             *bool `json:"tv" validate:"required"`
	Dishwasher     *bool `json:"dishwasher" validate:"required"`
	AirConditioner *bool `json:"air_conditioner" validate:"required"`
	Smoking        *bool `json:"smoking" validate:"required"`
	Noise          *bool `json:"noise" validate:"required"`
	Party          *bool `json:"party" validate:"required"`
}

// EditFlatRequest - частичное редактирование квартиры владельцем
type EditFlatRequest struct {
	Title         *string     `json:"title" validate:"omitempty,min=1"`
	RoomCount     *int        `json:"room_count" validate:"omitempty,min=0,max=4"`
	Address       *string     `json:"address" validate:"omitempty,min=1"`
	Lat           *float64    `json:"lat"`
	Lon           *float64    `json:"lon"`
	Area          *float64    `json:"area"`
	PriceShort    OptionalInt `json:"price_short"`
	PriceLong     OptionalInt `json:"price_long"`
	GuestCount    *int        `json:"guest_count" validate:"omitempty,min=0"`
	BedCount      *int        `json:"bed_count" validate:"omitempty,min=0"`
	RestroomCount *int        `json:"restroom_count" validate:"omitempty,min=0"`

	HasBalcony     *bool `json:"has_balcony"`
	HasLoggia      *bool `json:"has_loggia"`
	Children       *bool `json:"children"`
	Animals        *bool `json:"animals"`
	WashingMachine *bool `json:"washing_machine"`
	Fridge         *bool `json:"fridge"`
	TV             *bool `json:"tv"`
	Dishwasher     *bool `json:"dishwasher"`
	AirConditioner *bool `json:"air_conditioner"`
	Smoking        *bool `json:"smoking"`
	Noise          *bool `json:"noise"`
	Party          *bool `json:"party"`
}

// FlatListQuery - фильтры списка: 0 или пусто - без ограничения, 1 - да, 2 - нет
type FlatListQuery struct {
	HasBalcony     string `form:"has_balcony" validate:"tristate"`
	HasLoggia      string `form:"has_loggia" validate:"tristate"`
	Children       string `form:"children" validate:"tristate"`
	Animals        string `form:"animals" validate:"tristate"`
	WashingMachine string `form:"washing_machine" validate:"tristate"`
	Fridge         string `form:"fridge" validate:"tristate"`
	TV             string `form:"tv" validate:"tristate"`
	Dishwasher     string `form:"dishwasher" validate:"tristate"`
	AirConditioner string `form:"air_conditioner" validate:"tristate"`
	Smoking        string `form:"smoking" validate:"tristate"`
	Noise          string `form:"noise" validate:"tristate"`
	Party          string `form:"party" validate:"tristate"`

	Search   string `form:"search" validate:"max=255"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize *int   `form:"page_size" validate:"omitempty,min=0,max=1000"`
}

// Amenities возвращает значения фильтров по именам колонок
func (q *FlatListQuery) Amenities() map[string]string {
	return map[string]string{
		"has_balcony":     q.HasBalcony,
		"has_loggia":      q.HasLoggia,
		"children":        q.Children,
		"animals":         q.Animals,
		"washing_machine": q.WashingMachine,
		"fridge":          q.Fridge,
		"tv":              q.TV,
		"dishwasher":      q.Dishwasher,
		"air_conditioner": q.AirConditioner,
		"smoking":         q.Smoking,
		"noise":           q.Noise,
		"party":           q.Party,
	}
}

// FlatView - полное представление квартиры
type FlatView struct {
	ID             uint     `json:"id"`
	Title          string   `json:"title"`
	RoomCount      int      `json:"room_count"`
	HasBalcony     bool     `json:"has_balcony"`
	HasLoggia      bool     `json:"has_loggia"`
	Address        string   `json:"address"`
	Lat            float64  `json:"lat"`
	Lon            float64  `json:"lon"`
	Area           float64  `json:"area"`
	PriceShort     *int     `json:"price_short"`
	PriceLong      *int     `json:"price_long"`
	Children       bool     `json:"children"`
	Animals        bool     `json:"animals"`
	WashingMachine bool     `json:"washing_machine"`
	Fridge         bool     `json:"fridge"`
	TV             bool     `json:"tv"`
	Dishwasher     bool     `json:"dishwasher"`
	AirConditioner bool     `json:"air_conditioner"`
	Smoking        bool     `json:"smoking"`
	Noise          bool     `json:"noise"`
	Party          bool     `json:"party"`
	GuestCount     int      `json:"guest_count"`
	BedCount       int      `json:"bed_count"`
	RestroomCount  int      `json:"restroom_count"`
	NearRent       int64    `json:"near_rent"`
	Pictures       []string `json:"pictures"`
	Status         string   `json:"status"`
}

// FlatShortView - квартира в списках и бронированиях
type FlatShortView struct {
	ID         uint     `json:"id"`
	Title      string   `json:"title"`
	Address    string   `json:"address"`
	PriceShort *int     `json:"price_short"`
	PriceLong  *int     `json:"price_long"`
	Pictures   []string `json:"pictures"`
	Lat        float64  `json:"lat"`
	Lon        float64  `json:"lon"`
	NearRent   int64    `json:"near_rent"`
	Status     string   `json:"status"`
}
