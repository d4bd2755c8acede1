package create_appointment

import "errors"

var (
	// ErrUnauthenticated возвращается, если запрос выполняется без пользователя
	ErrUnauthenticated = errors.New("create_appointment: caller is not authenticated")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidDate возвращается, когда дата вне окна записи [сегодня, сегодня + N месяцев]
	ErrInvalidDate = errors.New("create_appointment: date is outside the booking window")

	// ErrInvalidTimeSlot возвращается, когда время не входит в сетку слотов
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrNotesTooLong возвращается, когда комментарий длиннее допустимого
	ErrNotesTooLong = errors.New("create_appointment: notes are too long")

	// ErrSlotConflict возвращается, когда слот уже занят активной записью
	ErrSlotConflict = errors.New("create_appointment: slot already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
