package model

import "time"

type TeamParticipant struct {
	ID       uint64    `gorm:"primaryKey" json:"id"`
	PostID   uint64    `gorm:"not null;uniqueIndex:idx_participant_pair" json:"post_id"`
	UserID   uint64    `gorm:"not null;uniqueIndex:idx_participant_pair" json:"user_id"`
	JoinedAt time.Time `gorm:"column:joined_at" json:"joined_at"`
}

func (TeamParticipant) TableName() string {
	return "team_participants"
}
