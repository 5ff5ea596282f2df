package goldprice

// Provenance records whether a quote's price came from a live API call or
// from the last-known-good fallback table.
type Provenance string

const (
	ProvenanceLive   Provenance = "live"
	ProvenanceCached Provenance = "cached"
)

// Quote is the structured result of a price lookup. Immutable once returned.
type Quote struct {
	Currency  string     `json:"currency"`
	Price     float64    `json:"price"`
	Country   string     `json:"country"`
	Timestamp string     `json:"timestamp"`
	Source    Provenance `json:"source"`
}
