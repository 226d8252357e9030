package dto

// CreateRentRequest - даты в unix-секундах
type CreateRentRequest struct {
	StartAt *int64 `json:"start_at" validate:"required,min=0"`
	EndAt   *int64 `json:"end_at" validate:"required,min=0"`
}

type RentUserView struct {
	ID         uint    `json:"id"`
	Tel        *string `json:"tel"`
	Surname    *string `json:"surname"`
	Name       *string `json:"name"`
	Patronymic *string `json:"patronymic"`
}

type RentView struct {
	ID         uint          `json:"id"`
	Flat       FlatShortView `json:"flat"`
	User       *RentUserView `json:"user"`
	StartAt    int64         `json:"start_at"`
	EndAt      int64         `json:"end_at"`
	TotalPrice *int          `json:"total_price"`
	Status     string        `json:"status"`
}
