package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NoticeModel 平台公告
type NoticeModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AdminID   uint64             `bson:"admin_id" json:"adminId"`     // 发布公告的管理员ID
	Title     string             `bson:"title" json:"title"`          // 公告标题
	Content   string             `bson:"content" json:"content"`      // 公告正文
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"` // 发布时间
}
