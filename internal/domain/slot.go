package domain

import "github.com/m04kA/SMC-BarbershopService/pkg/types"

// GenerateSlots returns the bookable start times, 09:00 through 18:00 inclusive
// every 30 minutes. The grid does not depend on service duration.
func GenerateSlots() []types.TimeString {
	slots := make([]types.TimeString, 0, (SlotsEndMinutes-SlotsStartMinutes)/SlotStepMinutes+1)
	for m := SlotsStartMinutes; m <= SlotsEndMinutes; m += SlotStepMinutes {
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}
	return slots
}

// IsValidSlot reports whether t is one of the generated slots
func IsValidSlot(t types.TimeString) bool {
	minutes, err := t.Minutes()
	if err != nil || t.Validate() != nil {
		return false
	}
	return minutes >= SlotsStartMinutes &&
		minutes <= SlotsEndMinutes &&
		(minutes-SlotsStartMinutes)%SlotStepMinutes == 0
}
