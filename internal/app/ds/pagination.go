// internal/app/ds/pagination.go
package ds

import "time"

// PageRequest представляет параметры запроса страницы
type PageRequest struct {
	PageIndex int
	PageSize  int
	Filter    string
}

// PaginationInfo представляет метаданные пагинации
type PaginationInfo struct {
	PageIndex     int `json:"page_index"`
	PageSize      int `json:"page_size"`
	TotalMatching int `json:"total_matching"`
	TotalPages    int `json:"total_pages"`
}

// RecordFiltersInfo представляет примененные фильтры
type RecordFiltersInfo struct {
	Filter string `json:"filter,omitempty"`
}

// PageResult представляет одну страницу отображаемых записей
type PageResult struct {
	Items      []RenderedRecord
	Pagination PaginationInfo
}

// PaginatedRecordsResponse представляет ответ с пагинированными записями
type PaginatedRecordsResponse struct {
	Data       []RenderedRecord   `json:"data"`
	Pagination PaginationInfo     `json:"pagination"`
	Filters    *RecordFiltersInfo `json:"filters,omitempty"`
}

// DatasetInfo представляет сводку по загруженному датасету
type DatasetInfo struct {
	Name     string    `json:"name"`
	Rows     int       `json:"rows"`
	LoadedAt time.Time `json:"loaded_at"`
}
