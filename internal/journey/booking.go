package journey

import (
	"fmt"
	"strings"
)

// bookingPlatforms returns the booking references for a main leg by
// mode. Each mode carries one recommended platform.
func bookingPlatforms(mode TransportMode, from, to string) []BookingPlatform {
	fromSlug := citySlug(from)
	toSlug := citySlug(to)

	switch mode {
	case ModeTrain:
		return []BookingPlatform{
			{
				Name:        "IRCTC",
				URL:         "https://www.irctc.co.in/nget/train-search",
				Recommended: true,
				Note:        "Official railway booking",
			},
			{
				Name: "ConfirmTkt",
				URL:  fmt.Sprintf("https://www.confirmtkt.com/trains/%s-to-%s", fromSlug, toSlug),
				Note: "Tatkal booking assistance",
			},
			{
				Name: "RailYatri",
				URL:  "https://www.railyatri.in/",
				Note: "Real-time train tracking",
			},
		}
	case ModeBus:
		return []BookingPlatform{
			{
				Name:        "RedBus",
				URL:         fmt.Sprintf("https://www.redbus.in/bus-tickets/%s-to-%s", fromSlug, toSlug),
				Recommended: true,
				Note:        "Largest bus network",
			},
			{
				Name: "AbhiBus",
				URL:  fmt.Sprintf("https://www.abhibus.com/%s-to-%s-bus", fromSlug, toSlug),
				Note: "Often has better prices",
			},
		}
	case ModeFlight:
		return []BookingPlatform{
			{
				Name: "MakeMyTrip",
				URL:  "https://www.makemytrip.com/flight/search",
				Note: "Cashback offers available",
			},
			{
				Name:        "Goibibo",
				URL:         "https://www.goibibo.com/flights/",
				Recommended: true,
				Note:        "Best price comparison",
			},
			{
				Name: "Skyscanner",
				URL:  "https://www.skyscanner.co.in/",
				Note: "International price comparison",
			},
		}
	}
	return nil
}

func citySlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
