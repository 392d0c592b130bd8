package handler

// errorResponse mirrors the envelope rendered by the central error handler;
// declared here for the swagger annotations.
type errorResponse struct {
	Error string `json:"error"`
}

type createClientRequest struct {
	Name string  `json:"name" validate:"required"`
	Rate float64 `json:"rate"`
}

type clientResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Rate       float64 `json:"rate"`
	TotalHours float64 `json:"total_hours"`
}

// createEntryRequest carries a new time entry. Date is a free-form string
// (ISO-8601 recommended); hours positivity is checked by the service so the
// caller gets a 422 rather than a schema error.
type createEntryRequest struct {
	Date  string  `json:"date" validate:"required"`
	Hours float64 `json:"hours"`
	Note  string  `json:"note"`
}

type entryResponse struct {
	ID       string  `json:"id"`
	ClientID string  `json:"client_id"`
	Date     string  `json:"date"`
	Hours    float64 `json:"hours"`
	Note     string  `json:"note"`
}
