package models

// Attendant is the stored shape of an attendant.
type Attendant struct {
	AttendantID int    `json:"id" db:"attendant_id"`
	Nickname    string `json:"nickname" db:"nickname"`
	Present     bool   `json:"present" db:"present"`
	Active      bool   `json:"active" db:"active"`
}
