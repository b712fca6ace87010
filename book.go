package main

import "fmt"

func runBook(date, timeOfDay, subject, description, email string) {
	system := newClinicSystem()
	defer system.close()

	slot, err := system.engine.Book(date, timeOfDay, subject, description, email)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	fmt.Printf("✓ Booked session with %s\n", slot.VolunteerName)
	fmt.Printf("✓ Date: %s\n", slot.SlotKey)
	fmt.Printf("✓ Subject: %s\n", slot.Subject)
	fmt.Println("✓ Calendar event created")
}
