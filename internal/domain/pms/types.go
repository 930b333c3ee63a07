package pms

// Unit is a single bookable rental property known to the PMS. The ID is
// opaque and PMS-assigned; it is the only field usable as a join key
// against the static catalog.
type Unit struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// AvailabilityQuery describes one availability/pricing lookup. An empty
// UnitIDs slice means "resolve all" via the ID resolution policy. The
// core does not defensively enforce Start < End; that is the caller's
// responsibility.
type AvailabilityQuery struct {
	Start   string   `json:"start"`
	End     string   `json:"end"`
	Guests  int      `json:"guests"`
	UnitIDs []string `json:"unitIds"`
}

// Quote is the availability and price result for one unit over the
// queried date range. When Available is false, Total carries no booking
// meaning and must not be rendered as a price.
type Quote struct {
	UnitID    string  `json:"unitId"`
	Available bool    `json:"available"`
	Total     float64 `json:"total"`
}

// Availability is the normalized response aggregate: at most one quote
// per unit, and a single currency applied to every quote. The upstream
// model allows per-unit currency; collapsing to one code is a documented
// simplification that holds as long as a deployment's units share a
// currency.
type Availability struct {
	Currency string  `json:"currency"`
	Quotes   []Quote `json:"quotes"`
}

// LinkParams are the optional deep-link parameters for BookingLink.
// Guests is accepted but never attached to the link; the external
// booking engine does not support it yet.
type LinkParams struct {
	Start  string
	End    string
	Guests int
}

// DailyRate is one calendar day of a unit's rate table.
type DailyRate struct {
	Price           float64 `json:"price"`
	Available       int     `json:"available"`
	MinLengthOfStay int     `json:"min_length_of_stay"`
}

// RateTable maps unit ID -> date (YYYY-MM-DD) -> daily rate.
type RateTable map[string]map[string]DailyRate

// Account identifies the PMS account behind the configured credentials.
type Account struct {
	ID    int    `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
