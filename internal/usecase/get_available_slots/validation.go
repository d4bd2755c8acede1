package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, window domain.BookingWindow, now time.Time) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !window.Contains(req.Date, now) {
		return fmt.Errorf("%w: %s", ErrInvalidDate, req.Date.Format(domain.DateFormat))
	}

	return nil
}
