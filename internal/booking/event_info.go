package booking

// EventInfo is the first wizard step. Date is an ISO date (2006-01-02) and
// Time a 24-hour slot (15:04); both are empty until chosen. Guests of zero
// means unset.
type EventInfo struct {
	Location  string `json:"location"`
	EventType string `json:"eventType"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Email     string `json:"email"`
	Guests    int    `json:"guests"`
}

// EventInfoPatch carries the fields of a partial EventInfo update. Nil
// fields are left untouched.
type EventInfoPatch struct {
	Location  *string `json:"location,omitempty"`
	EventType *string `json:"eventType,omitempty"`
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
	Email     *string `json:"email,omitempty"`
	Guests    *int    `json:"guests,omitempty"`
}

func (p EventInfoPatch) IsEmpty() bool {
	return p.Location == nil && p.EventType == nil && p.Date == nil &&
		p.Time == nil && p.Email == nil && p.Guests == nil
}

// Merge returns e with every non-nil patch field applied.
func (e EventInfo) Merge(p EventInfoPatch) EventInfo {
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.EventType != nil {
		e.EventType = *p.EventType
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Guests != nil {
		e.Guests = *p.Guests
	}
	return e
}
