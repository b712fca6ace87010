package main

import "fmt"

// runCalendars lists every calendar the clinic account can reach. Handy as a
// first authentication check and for finding the ids to pass to setup.
func runCalendars() {
	system := newClinicSystem()
	defer system.close()

	refs, err := system.calendar.ListCalendars()
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	fmt.Printf("📋 Found %d calendar(s):\n", len(refs))
	for _, ref := range refs {
		marker := ""
		if ref.Primary {
			marker = " (primary)"
		}
		fmt.Printf("  • %s%s\n", ref.Summary, marker)
		fmt.Printf("    ID: %s\n", ref.ID)
	}
}
