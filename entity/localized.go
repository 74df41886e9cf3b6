package entity

// Localized holds one text value per site language (Russian, English,
// Tajik, Uzbek). Stored as four prefixed columns, not a JSON blob, so
// values round-trip with their types intact.
type Localized struct {
	RU string `json:"ru"`
	EN string `json:"en"`
	TJ string `json:"tj"`
	UZ string `json:"uz"`
}

// Complete reports whether every language has a value. Write endpoints
// require fully-formed localized fields; partial updates are the
// caller's job (fetch, merge, save).
func (l Localized) Complete() bool {
	return l.RU != "" && l.EN != "" && l.TJ != "" && l.UZ != ""
}
