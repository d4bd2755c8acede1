package resolve_profile

import "time"

// Policy параметры повторных попыток загрузки профиля
type Policy struct {
	Attempts int           // Всего попыток, включая первую
	Pause    time.Duration // Фиксированная пауза между попытками
}

// DefaultPolicy 3 попытки с паузой 1 секунда
func DefaultPolicy() Policy {
	return Policy{Attempts: 3, Pause: time.Second}
}
