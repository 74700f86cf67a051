package haircut

import "errors"

var (
	// ErrHaircutNotFound возвращается, когда стрижка не найдена
	ErrHaircutNotFound = errors.New("haircut.repository: haircut not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("haircut.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("haircut.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("haircut.repository: failed to scan row")
)
