package dto

import "encoding/json"

type NotificationView struct {
	ID        uint            `json:"id"`
	Text      string          `json:"text"`
	Read      bool            `json:"read"`
	CreatedAt int64           `json:"created_at"`
	Data      json.RawMessage `json:"data"`
}

// PageQuery - параметры постраничного вывода
type PageQuery struct {
	Page     int  `form:"page" validate:"omitempty,min=1"`
	PageSize *int `form:"page_size" validate:"omitempty,min=0,max=1000"`
}

// LimitOffset переводит страницу в limit/offset; page_size=0 означает все записи
func LimitOffset(page int, pageSize *int, defaultSize int) (limit, offset int) {
	size := defaultSize
	if pageSize != nil {
		size = *pageSize
	}
	if size <= 0 {
		return 0, 0
	}
	if page < 1 {
		page = 1
	}
	return size, (page - 1) * size
}
