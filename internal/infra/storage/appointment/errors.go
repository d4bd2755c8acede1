package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken возвращается, когда слот (дата, время) уже занят активной записью
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrInvalidReference возвращается, если услуга или профиль не существуют
	ErrInvalidReference = errors.New("appointment.repository: referenced service or profile does not exist")

	// ErrPermissionDenied возвращается, если запрос отклонен политикой RLS
	ErrPermissionDenied = errors.New("appointment.repository: permission denied")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
