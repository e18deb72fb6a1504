package group

import "errors"

var (
	// ErrGroupNotFound возвращается, когда группа не найдена
	ErrGroupNotFound = errors.New("group.repository: group not found")

	// ErrDuplicateAccessCode возвращается при попытке сохранить неуникальный код доступа
	ErrDuplicateAccessCode = errors.New("group.repository: duplicate access code")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("group.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("group.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("group.repository: failed to scan row")
)
