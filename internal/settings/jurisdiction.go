package settings

// Jurisdiction is one entry of the jurisdiction selector.
type Jurisdiction struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

var jurisdictions = []Jurisdiction{
	{Code: "US-Federal", Label: "US Federal"},
	{Code: "US-California", Label: "California"},
	{Code: "US-New-York", Label: "New York"},
	{Code: "US-Texas", Label: "Texas"},
	{Code: "US-Florida", Label: "Florida"},
	{Code: "UK", Label: "United Kingdom"},
	{Code: "Canada", Label: "Canada"},
}

// Jurisdictions returns the closed set of codes offered by the settings form.
// Other stored values are accepted and shown verbatim but are not selectable.
func Jurisdictions() []Jurisdiction {
	out := make([]Jurisdiction, len(jurisdictions))
	copy(out, jurisdictions)
	return out
}

// IsKnownJurisdiction reports whether code is one of the selectable codes.
func IsKnownJurisdiction(code string) bool {
	for _, j := range jurisdictions {
		if j.Code == code {
			return true
		}
	}
	return false
}

// JurisdictionLabel returns the display label for code, or code itself when
// it is not a selectable jurisdiction.
func JurisdictionLabel(code string) string {
	for _, j := range jurisdictions {
		if j.Code == code {
			return j.Label
		}
	}
	return code
}
