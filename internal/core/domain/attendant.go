package domain

// Attendant is a member of staff who can be credited with commission on a sale line.
type Attendant struct {
	AttendantID int    `json:"id"`
	Nickname    string `json:"nickname"`
	Present     bool   `json:"present"`
	Active      bool   `json:"active"`
}

// Available reports whether the attendant can currently be selected for a sale.
func (a Attendant) Available() bool {
	return a.Active && a.Present
}
