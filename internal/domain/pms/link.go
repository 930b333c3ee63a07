package pms

import "net/url"

// BuildBookingLink constructs a deep link into the external booking
// engine rooted at base. It never fails: an empty unitID or an
// unparsable base returns base unchanged. Pre-existing query parameters
// on the base survive except apartmentId, arrival and departure, which
// are overwritten. Guest count is never attached; the external engine
// does not support it.
func BuildBookingLink(base, unitID string, params *LinkParams) string {
	if unitID == "" {
		return base
	}

	u, err := url.Parse(base)
	if err != nil {
		return base
	}

	q := u.Query()
	q.Set("apartmentId", unitID)
	if params != nil {
		if params.Start != "" {
			q.Set("arrival", params.Start)
		}
		if params.End != "" {
			q.Set("departure", params.End)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
