package dto

// CreateActivityRequest entrada para registrar un evento del feed.
type CreateActivityRequest struct {
	Action string `json:"action"`
	Item   string `json:"item"`
	Type   string `json:"type"`
}
