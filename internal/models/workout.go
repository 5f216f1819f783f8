package models

// ResultEntry is one dated measurement in a workout's history.
type ResultEntry struct {
	Date   string  `json:"date"`
	Result float64 `json:"result"`
}

// Workout is an exercise category with a numeric target and an append-only
// history of results. UserID is a non-owning back-reference.
type Workout struct {
	ID            string        `json:"id"`
	CategoryTitle string        `json:"categoryTitle"`
	Target        float64       `json:"target"`
	Result        []ResultEntry `json:"result"`
	Notes         string        `json:"notes"`
	UserID        string        `json:"user"`
}
