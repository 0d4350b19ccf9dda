package entities

// floridaCounties is the closed set of the 67 Florida county names a package
// may be filed against. Membership is exact (case-sensitive); the list is
// compiled in rather than stored.
var floridaCounties = map[string]struct{}{
	"Alachua":      {},
	"Baker":        {},
	"Bay":          {},
	"Bradford":     {},
	"Brevard":      {},
	"Broward":      {},
	"Calhoun":      {},
	"Charlotte":    {},
	"Citrus":       {},
	"Clay":         {},
	"Collier":      {},
	"Columbia":     {},
	"DeSoto":       {},
	"Dixie":        {},
	"Duval":        {},
	"Escambia":     {},
	"Flagler":      {},
	"Franklin":     {},
	"Gadsden":      {},
	"Gilchrist":    {},
	"Glades":       {},
	"Gulf":         {},
	"Hamilton":     {},
	"Hardee":       {},
	"Hendry":       {},
	"Hernando":     {},
	"Highlands":    {},
	"Hillsborough": {},
	"Holmes":       {},
	"Indian River": {},
	"Jackson":      {},
	"Jefferson":    {},
	"Lafayette":    {},
	"Lake":         {},
	"Lee":          {},
	"Leon":         {},
	"Levy":         {},
	"Liberty":      {},
	"Madison":      {},
	"Manatee":      {},
	"Marion":       {},
	"Martin":       {},
	"Miami-Dade":   {},
	"Monroe":       {},
	"Nassau":       {},
	"Okaloosa":     {},
	"Okeechobee":   {},
	"Orange":       {},
	"Osceola":      {},
	"Palm Beach":   {},
	"Pasco":        {},
	"Pinellas":     {},
	"Polk":         {},
	"Putnam":       {},
	"Santa Rosa":   {},
	"Sarasota":     {},
	"Seminole":     {},
	"St. Johns":    {},
	"St. Lucie":    {},
	"Sumter":       {},
	"Suwannee":     {},
	"Taylor":       {},
	"Union":        {},
	"Volusia":      {},
	"Wakulla":      {},
	"Walton":       {},
	"Washington":   {},
}

// IsFloridaCounty reports whether name is one of the 67 Florida counties.
func IsFloridaCounty(name string) bool {
	_, ok := floridaCounties[name]
	return ok
}
