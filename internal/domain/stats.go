package domain

// AppointmentStats are the counters shown on the admin overview
type AppointmentStats struct {
	Total          int
	Scheduled      int
	Completed      int
	TotalCustomers int
}

// ComputeStats counts statuses client side; customers is the number of
// non-admin profiles
func ComputeStats(statuses []AppointmentStatus, customers int) AppointmentStats {
	stats := AppointmentStats{
		Total:          len(statuses),
		TotalCustomers: customers,
	}
	for _, s := range statuses {
		switch s {
		case StatusScheduled:
			stats.Scheduled++
		case StatusCompleted:
			stats.Completed++
		}
	}
	return stats
}
