package domain

// Meetup represents one scheduled in-person event.
// Date and Time are free text as entered (typically "2006-01-02" and "15:04").
type Meetup struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	Vibe      string `json:"vibe"`
	Details   string `json:"details"`
	Organizer string `json:"organizer"`
	Link      string `json:"link"`
	CreatedAt int64  `json:"createdAt"` // milliseconds since the Unix epoch
}

// MeetupInput is the user-submitted form for a new meetup.
type MeetupInput struct {
	Name      string `json:"name" validate:"required"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location" validate:"required"`
	Vibe      string `json:"vibe"`
	Details   string `json:"details"`
	Organizer string `json:"organizer"`
	Link      string `json:"link"`
}
