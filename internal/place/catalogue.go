package place

// DefaultCities returns the built-in city catalogue. It covers every
// city appearing in the default corridor catalogue plus common
// metros, so place search stays useful for pairs served only by the
// generic long-haul fallback.
func DefaultCities() []City {
	return []City{
		{Name: "Delhi", State: "Delhi", Station: "New Delhi Railway Station", Airport: "DEL", Aliases: []string{"New Delhi", "NDLS"}},
		{Name: "Mumbai", State: "Maharashtra", Station: "Mumbai Central", Airport: "BOM", Aliases: []string{"Bombay", "BCT"}},
		{Name: "Bangalore", State: "Karnataka", Station: "KSR Bengaluru City Junction", Airport: "BLR", Aliases: []string{"Bengaluru", "SBC"}},
		{Name: "Hyderabad", State: "Telangana", Station: "Hyderabad Deccan", Airport: "HYD", Aliases: []string{"HYB"}},
		{Name: "Chennai", State: "Tamil Nadu", Station: "Chennai Central", Airport: "MAA", Aliases: []string{"Madras", "MAS"}},
		{Name: "Pune", State: "Maharashtra", Station: "Pune Junction", Airport: "PNQ", Aliases: []string{"PUNE"}},
		{Name: "Kolkata", State: "West Bengal", Station: "Howrah Junction", Airport: "CCU", Aliases: []string{"Calcutta", "HWH"}},
		{Name: "Ahmedabad", State: "Gujarat", Station: "Ahmedabad Junction", Airport: "AMD", Aliases: []string{"ADI"}},
		{Name: "Jaipur", State: "Rajasthan", Station: "Jaipur Junction", Airport: "JAI", Aliases: []string{"JP"}},
		{Name: "Lucknow", State: "Uttar Pradesh", Station: "Lucknow Charbagh", Airport: "LKO", Aliases: []string{"LKO"}},
		{Name: "Kochi", State: "Kerala", Station: "Ernakulam Junction", Airport: "COK", Aliases: []string{"Cochin", "ERS"}},
		{Name: "Goa", State: "Goa", Station: "Madgaon Junction", Airport: "GOI", Aliases: []string{"Panaji", "MAO"}},
	}
}
