package dto

// CreateListingRequest submits a business listing for approval.
type CreateListingRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=200"`
	Description string `json:"description" binding:"required,notblank"`
	Website     string `json:"website" binding:"omitempty,url"`
	Contact     string `json:"contact" binding:"required,notblank"`
}

// UpdateListingRequest edits a listing's content. Status changes go through the status endpoint.
type UpdateListingRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank,max=200"`
	Description *string `json:"description" binding:"omitempty,notblank"`
	Website     *string `json:"website" binding:"omitempty,url"`
	Contact     *string `json:"contact" binding:"omitempty,notblank"`
}

// CreateEventRequest submits a club event for approval.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,notblank,max=200"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string `json:"time" binding:"required,datetime=15:04"`
	Location    string `json:"location" binding:"required,notblank"`
	Description string `json:"description" binding:"required,notblank"`
	Format      string `json:"type" binding:"required,oneof=In-Person Online"`
}

// UpdateEventRequest edits an event's content. Omitted fields are left unchanged.
type UpdateEventRequest struct {
	Title       *string `json:"title" binding:"omitempty,notblank,max=200"`
	Date        *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time        *string `json:"time" binding:"omitempty,datetime=15:04"`
	Location    *string `json:"location" binding:"omitempty,notblank"`
	Description *string `json:"description" binding:"omitempty,notblank"`
	Format      *string `json:"type" binding:"omitempty,oneof=In-Person Online"`
}

// ListItemsParams filters approval-gated lists by status.
type ListItemsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=Pending Approved Rejected"`
}
