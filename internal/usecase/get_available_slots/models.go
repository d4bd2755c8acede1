package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	Date time.Time // Дата (00:00 UTC)
}

// Response модель ответа со списком слотов на дату
type Response struct {
	Date  time.Time
	Slots []Slot
}

// Slot слот сетки и его занятость
type Slot struct {
	Time      types.TimeString
	Available bool
}
