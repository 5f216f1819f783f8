package models

// Plan is a named free-text workout schedule. UserID is a non-owning
// back-reference to the account that created it.
type Plan struct {
	ID       string `json:"id"`
	PlanName string `json:"planName"`
	PlanMemo string `json:"planMemo"`
	UserID   string `json:"user"`
}
