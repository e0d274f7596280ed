package model

import "time"

// Token is the opaque bearer credential issued to a user. A user holds at
// most one token; repeated logins return the same key.
type Token struct {
	UserID    int64
	Key       string
	CreatedAt time.Time
}
