package create_appointment

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxNotes int) error {
	if req.Caller.IsZero() {
		return ErrUnauthenticated
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidTimeSlot, err)
	}

	if !domain.IsValidSlot(req.Time) {
		return fmt.Errorf("%w: %s is not on the slot grid", ErrInvalidTimeSlot, req.Time)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > maxNotes {
		return fmt.Errorf("%w: max %d characters", ErrNotesTooLong, maxNotes)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно записи
func validateDate(window domain.BookingWindow, date, now time.Time) error {
	if window.Contains(date, now) {
		return nil
	}

	first, last := window.Bounds(now)
	return fmt.Errorf("%w: %s not in [%s, %s]", ErrInvalidDate,
		date.Format(domain.DateFormat), first.Format(domain.DateFormat), last.Format(domain.DateFormat))
}

// normalizeNotes убирает пустой комментарий
func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
