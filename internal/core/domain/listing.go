package domain

// BusinessListing is a member business advertised on the club marketplace once approved.
type BusinessListing struct {
	ID          string         `json:"id"`
	OwnerID     string         `json:"ownerId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Website     string         `json:"website,omitempty"`
	Contact     string         `json:"contact"`
	Status      ApprovalStatus `json:"status"`
	Comments    []Comment      `json:"comments"`
	AuditFields
}

func (l *BusinessListing) Thread() *[]Comment { return &l.Comments }
func (l *BusinessListing) Ref() ItemRef       { return ItemRef{Kind: KindBusinessListing, ID: l.ID} }

// EventFormat says where an event happens.
type EventFormat string

const (
	EventInPerson EventFormat = "In-Person"
	EventOnline   EventFormat = "Online"
)

// IsValid reports whether f is a known format.
func (f EventFormat) IsValid() bool {
	return f == EventInPerson || f == EventOnline
}

// Event is a member-submitted club event shown once approved.
type Event struct {
	ID          string         `json:"id"`
	SubmittedBy string         `json:"submittedBy"`
	Title       string         `json:"title"`
	Date        string         `json:"date"` // YYYY-MM-DD
	Time        string         `json:"time"` // HH:MM
	Location    string         `json:"location"`
	Description string         `json:"description"`
	Format      EventFormat    `json:"type"`
	Status      ApprovalStatus `json:"status"`
	Comments    []Comment      `json:"comments"`
	AuditFields
}

func (e *Event) Thread() *[]Comment { return &e.Comments }
func (e *Event) Ref() ItemRef       { return ItemRef{Kind: KindEvent, ID: e.ID} }
