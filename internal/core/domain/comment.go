package domain

import "time"

// Comment is an append-only remark on a commentable item.
type Comment struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ItemKind tags which collection a commentable item lives in.
type ItemKind string

const (
	KindProposal          ItemKind = "proposal"
	KindBusinessListing   ItemKind = "business_listing"
	KindEvent             ItemKind = "event"
	KindAssistanceRequest ItemKind = "assistance_request"
)

// IsValid reports whether k is a known kind.
func (k ItemKind) IsValid() bool {
	switch k {
	case KindProposal, KindBusinessListing, KindEvent, KindAssistanceRequest:
		return true
	}
	return false
}

// ItemRef identifies one commentable item across the four collections.
type ItemRef struct {
	Kind ItemKind `json:"kind"`
	ID   string   `json:"id"`
}

// Commentable is the variant interface over proposals, assistance requests, listings and events.
type Commentable interface {
	Thread() *[]Comment
	Ref() ItemRef
}

// RemoveComment deletes the comment with the given id from the thread. It reports whether one was removed.
func RemoveComment(c Commentable, commentID string) bool {
	thread := c.Thread()
	for i, cm := range *thread {
		if cm.ID == commentID {
			*thread = append((*thread)[:i], (*thread)[i+1:]...)
			return true
		}
	}
	return false
}
