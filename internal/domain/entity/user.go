package entity

// User is the authenticated caller on whose behalf an operation runs.
type User struct {
	ID       int64
	Username string
}
