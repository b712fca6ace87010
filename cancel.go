package main

import "fmt"

func runCancelBooking(date, timeOfDay, email string) {
	system := newClinicSystem()
	defer system.close()

	slot, err := system.engine.CancelBooking(date, timeOfDay, email)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	fmt.Printf("✓ Canceled booking for %s\n", slot.SlotKey)
	fmt.Printf("✓ Slot now available again with %s\n", slot.VolunteerName)
}

func runCancelVolunteer(date, timeOfDay, email string) {
	system := newClinicSystem()
	defer system.close()

	if err := system.engine.CancelVolunteer(date, timeOfDay, email); err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	fmt.Printf("✓ Canceled volunteer slot for %s at %s\n", date, timeOfDay)
	fmt.Println("✓ Slot removed from calendar")
}
