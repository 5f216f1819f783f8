package models

// User is an account document. Plans and Workouts hold the ids of the
// documents owned by this user, in creation order.
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"` // never serialized
	Tooltips     bool     `json:"tooltips"`
	Plans        []string `json:"plans"`
	Workouts     []string `json:"workouts"`
}
