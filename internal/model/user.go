package model

import "time"

// UserInfo is the local cache row for a participant's display data, kept in
// sync by the kafka user worker. DeletedAt mirrors the identity provider's
// account deletion mark and gates new sends to that user.
type UserInfo struct {
	UserID    string     `db:"id"`
	Nickname  string     `db:"nickname"`
	AvatarURL string     `db:"avatar_url"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (u *UserInfo) IsDeleted() bool {
	return u.DeletedAt != nil
}
