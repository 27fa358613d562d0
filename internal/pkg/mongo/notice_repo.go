package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NoticeRepo interface {
	CreateNotice(ctx context.Context, notice *NoticeModel) error
	GetNoticeList(ctx context.Context, limit, offset int64) ([]*NoticeModel, error)
	CountNotices(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*NoticeModel, error)
	UpdateNotice(ctx context.Context, id primitive.ObjectID, title, content string) error
	DeleteNotice(ctx context.Context, id primitive.ObjectID) error
}

type noticeRepoImpl struct {
	col *mongo.Collection
}

func NewNoticeRepo(db *mongo.Database) NoticeRepo {
	return &noticeRepoImpl{
		col: db.Collection("notices"),
	}
}

// CreateNotice 发布公告
func (s *noticeRepoImpl) CreateNotice(ctx context.Context, notice *NoticeModel) error {
	_, err := s.col.InsertOne(ctx, notice)
	return err
}

// GetNoticeList 分页获取公告 (按时间倒序)
func (s *noticeRepoImpl) GetNoticeList(ctx context.Context, limit, offset int64) ([]*NoticeModel, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*NoticeModel
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *noticeRepoImpl) CountNotices(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}

// GetByID 根据 ID 获取公告
func (s *noticeRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*NoticeModel, error) {
	var notice NoticeModel
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&notice)
	if err != nil {
		return nil, err
	}
	return &notice, nil
}

// UpdateNotice 修改公告内容
func (s *noticeRepoImpl) UpdateNotice(ctx context.Context, id primitive.ObjectID, title, content string) error {
	update := bson.M{"$set": bson.M{"title": title, "content": content}}
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteNotice 删除公告
func (s *noticeRepoImpl) DeleteNotice(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
