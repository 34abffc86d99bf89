package models

import "errors"

// Категории ошибок ядра. Репозитории и сервисы оборачивают их через
// fmt.Errorf("...: %w", ...), обработчики сопоставляют через errors.Is.
var (
	ErrNotFound        = errors.New("ресурс не найден")
	ErrForbidden       = errors.New("доступ запрещен")
	ErrUnauthenticated = errors.New("требуется авторизация")
	ErrInvalidArgument = errors.New("неверный аргумент")
)
