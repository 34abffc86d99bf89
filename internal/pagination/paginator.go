package pagination

import (
	"fmt"

	"miniblog/internal/models"
)

// Page — одна страница ленты фиксированного размера.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Number     int  `json:"page"`
	Size       int  `json:"pageSize"`
	TotalCount int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Paginate режет последовательность на страницы по pageSize элементов.
// Номера страниц начинаются с 1; номер за последней страницей прижимается
// к последней странице, а не возвращает ошибку или пустой срез. Пустая
// последовательность даёт одну пустую страницу.
func Paginate[T any](items []T, pageSize, pageNumber int) (Page[T], error) {
	if pageSize < 1 {
		return Page[T]{}, fmt.Errorf("размер страницы должен быть положительным: %w", models.ErrInvalidArgument)
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     pageNumber,
		Size:       pageSize,
		TotalCount: total,
		TotalPages: totalPages,
		HasNext:    pageNumber < totalPages,
		HasPrev:    pageNumber > 1,
	}, nil
}
