package service

import (
	"Wayfarer/internal/api/config"
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/pkg/consts"
	"Wayfarer/internal/pkg/kafka"
	"Wayfarer/internal/pkg/minio"
	"Wayfarer/internal/repository"
	"context"
	"errors"
	"os"
	"sort"
	"testing"
)

var errDBDown = errors.New("db down")

func TestMain(m *testing.M) {
	config.Cfg = &config.Config{
		MinIO: config.MinIOConfig{ExternalEndpoint: "cdn.test"},
	}
	minio.MainBucket = "wayfarer"
	os.Exit(m.Run())
}

// recordingProducer 记录发布的事件，便于断言
type recordingProducer struct {
	events []*kafka.NotificationEvent
}

func (p *recordingProducer) Publish(_ context.Context, event *kafka.NotificationEvent) {
	p.events = append(p.events, event)
}

func (p *recordingProducer) Close() error { return nil }

type fakeUserRepo struct {
	users      map[uint64]*model.User
	searchHits []uint64
}

func (f *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetUserByIds(_ context.Context, ids []uint64) ([]*model.User, error) {
	out := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if u := f.users[id]; u != nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	if f.users == nil {
		f.users = make(map[uint64]*model.User)
	}
	if user.UserID == 0 {
		user.UserID = uint64(len(f.users) + 1)
	}
	if user.Status == 0 {
		// 模拟数据库列默认值 gorm:"default:1"
		user.Status = 1
	}
	f.users[user.UserID] = user
	return nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *model.User, _ []uint64) error {
	f.users[user.UserID] = user
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uint64, hashed string) error {
	if u := f.users[id]; u != nil {
		u.Password = hashed
	}
	return nil
}

func (f *fakeUserRepo) UpdateUserStatus(_ context.Context, id uint64, status int8) (int64, error) {
	u := f.users[id]
	if u == nil || u.Status == status {
		return 0, nil
	}
	u.Status = status
	return 1, nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id uint64) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) SearchUsers(ctx context.Context, _ string) ([]*model.User, error) {
	return f.GetUserByIds(ctx, f.searchHits)
}

func (f *fakeUserRepo) GetUserTags(_ context.Context, _ uint64) ([]*model.Tag, error) {
	return nil, nil
}

func (f *fakeUserRepo) PageUsers(_ context.Context, _ repository.PageQuery) (*repository.Page[*model.User], error) {
	return repository.EmptyPage[*model.User](1, 10), nil
}

func (f *fakeUserRepo) CountLikesGiven(_ context.Context, _ uint64) (int64, error) {
	return 0, nil
}

type followPair struct {
	follower, following uint64
}

type fakeFollowRepo struct {
	follows  map[followPair]bool
	messages []*model.Message
	msgErr   error // 模拟事务内消息落库失败，整体回滚
}

func (f *fakeFollowRepo) GetUserFollow(_ context.Context, followerID, followingID uint64) (*model.UserFollow, error) {
	if f.follows[followPair{followerID, followingID}] {
		return &model.UserFollow{FollowerID: followerID, FollowingID: followingID}, nil
	}
	return nil, nil
}

func (f *fakeFollowRepo) GetFollowingIDs(_ context.Context, followerID uint64) ([]uint64, error) {
	var ids []uint64
	for pair := range f.follows {
		if pair.follower == followerID {
			ids = append(ids, pair.following)
		}
	}
	return ids, nil
}

func (f *fakeFollowRepo) GetFollowerIDs(_ context.Context, followingID uint64) ([]uint64, error) {
	var ids []uint64
	for pair := range f.follows {
		if pair.following == followingID {
			ids = append(ids, pair.follower)
		}
	}
	return ids, nil
}

func (f *fakeFollowRepo) GetUserFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	ids, _ := f.GetFollowerIDs(ctx, userID)
	return int64(len(ids)), nil
}

func (f *fakeFollowRepo) GetUserFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	ids, _ := f.GetFollowingIDs(ctx, userID)
	return int64(len(ids)), nil
}

func (f *fakeFollowRepo) CreateFollowWithMessage(_ context.Context, follow *model.UserFollow, msg *model.Message) error {
	if f.msgErr != nil {
		return f.msgErr
	}
	if f.follows == nil {
		f.follows = make(map[followPair]bool)
	}
	f.follows[followPair{follow.FollowerID, follow.FollowingID}] = true
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeFollowRepo) DeleteFollowWithMessage(_ context.Context, follow *model.UserFollow, msg *model.Message) error {
	delete(f.follows, followPair{follow.FollowerID, follow.FollowingID})
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeFollowRepo) BatchGetIsFollowed(_ context.Context, followerID uint64, targetIDs []uint64) (map[uint64]bool, error) {
	out := make(map[uint64]bool, len(targetIDs))
	for _, id := range targetIDs {
		if f.follows[followPair{followerID, id}] {
			out[id] = true
		}
	}
	return out, nil
}

type likeKey struct {
	kind   model.PostKind
	userID uint64
	postID uint64
}

type fakeLikeRepo struct {
	likes    map[likeKey]bool
	messages []*model.Message
	nextID   uint64
	msgErr   error // 模拟事务内消息落库失败，整体回滚
}

func (f *fakeLikeRepo) Exists(_ context.Context, kind model.PostKind, userID, postID uint64) (bool, error) {
	return f.likes[likeKey{kind, userID, postID}], nil
}

func (f *fakeLikeRepo) CreateWithMessage(_ context.Context, kind model.PostKind, userID, postID uint64, buildMsg repository.BuildMessageFunc) error {
	if f.msgErr != nil {
		return f.msgErr
	}
	if f.likes == nil {
		f.likes = make(map[likeKey]bool)
	}
	f.likes[likeKey{kind, userID, postID}] = true
	f.nextID++
	f.messages = append(f.messages, buildMsg(f.nextID))
	return nil
}

func (f *fakeLikeRepo) Delete(_ context.Context, kind model.PostKind, userID, postID uint64) error {
	delete(f.likes, likeKey{kind, userID, postID})
	return nil
}

func (f *fakeLikeRepo) CountByPost(_ context.Context, kind model.PostKind, postID uint64) (int64, error) {
	var count int64
	for key := range f.likes {
		if key.kind == kind && key.postID == postID {
			count++
		}
	}
	return count, nil
}

func (f *fakeLikeRepo) BatchGetIsLiked(_ context.Context, kind model.PostKind, userID uint64, postIDs []uint64) (map[uint64]bool, error) {
	out := make(map[uint64]bool, len(postIDs))
	for _, id := range postIDs {
		if f.likes[likeKey{kind, userID, id}] {
			out[id] = true
		}
	}
	return out, nil
}

type fakeCommentRepo struct {
	records  []*repository.CommentRecord
	owners   map[uint64]uint64 // commentID -> userID
	messages []*model.Message
	nextID   uint64
	msgErr   error // 模拟事务内消息落库失败，整体回滚
}

func (f *fakeCommentRepo) CreateWithMessage(_ context.Context, _ model.PostKind, userID, postID uint64, content string, buildMsg repository.BuildMessageFunc) (uint64, error) {
	if f.msgErr != nil {
		return 0, f.msgErr
	}
	f.nextID++
	if f.owners == nil {
		f.owners = make(map[uint64]uint64)
	}
	f.owners[f.nextID] = userID
	f.records = append(f.records, &repository.CommentRecord{
		CommentID: f.nextID,
		PostID:    postID,
		UserID:    userID,
		Content:   content,
	})
	f.messages = append(f.messages, buildMsg(f.nextID))
	return f.nextID, nil
}

func (f *fakeCommentRepo) DeleteOwned(_ context.Context, _ model.PostKind, commentID, userID uint64) (int64, error) {
	if f.owners[commentID] != userID {
		return 0, nil
	}
	delete(f.owners, commentID)
	return 1, nil
}

func (f *fakeCommentRepo) DeleteByID(_ context.Context, _ model.PostKind, commentID uint64) error {
	delete(f.owners, commentID)
	return nil
}

func (f *fakeCommentRepo) ListByPost(_ context.Context, _ model.PostKind, postID uint64) ([]*repository.CommentRecord, error) {
	var out []*repository.CommentRecord
	for _, record := range f.records {
		if record.PostID == postID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) CountByPost(_ context.Context, _ model.PostKind, postID uint64) (int64, error) {
	var count int64
	for _, record := range f.records {
		if record.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCommentRepo) PageMomentComments(_ context.Context, _ repository.PageQuery) (*repository.Page[*model.MomentPostComment], error) {
	return repository.EmptyPage[*model.MomentPostComment](1, 10), nil
}

func (f *fakeCommentRepo) PageTeamComments(_ context.Context, _ repository.PageQuery) (*repository.Page[*model.TeamPostComment], error) {
	return repository.EmptyPage[*model.TeamPostComment](1, 10), nil
}

type fakeMomentRepo struct {
	posts      map[uint64]*model.MomentPost
	searchHits []uint64
	feed       func(page, limit int, authorIDs []uint64) (*repository.Page[*model.MomentPost], error)
}

func (f *fakeMomentRepo) GetByID(_ context.Context, id uint64) (*model.MomentPost, error) {
	return f.posts[id], nil
}

func (f *fakeMomentRepo) GetByIDs(_ context.Context, ids []uint64) ([]*model.MomentPost, error) {
	out := make([]*model.MomentPost, 0, len(ids))
	for _, id := range ids {
		if p := f.posts[id]; p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeMomentRepo) GetByUserID(_ context.Context, userID uint64) ([]*model.MomentPost, error) {
	var out []*model.MomentPost
	for _, p := range f.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeMomentRepo) Create(_ context.Context, post *model.MomentPost, _ []string) error {
	if f.posts == nil {
		f.posts = make(map[uint64]*model.MomentPost)
	}
	if post.DynamicPostID == 0 {
		post.DynamicPostID = uint64(len(f.posts) + 1)
	}
	f.posts[post.DynamicPostID] = post
	return nil
}

func (f *fakeMomentRepo) Update(_ context.Context, post *model.MomentPost, _ []string) error {
	f.posts[post.DynamicPostID] = post
	return nil
}

func (f *fakeMomentRepo) Delete(_ context.Context, id uint64) error {
	delete(f.posts, id)
	return nil
}

// FeedPage 与真实实现一致，只放出已通过审核的帖子
func (f *fakeMomentRepo) FeedPage(_ context.Context, page, limit int, authorIDs []uint64) (*repository.Page[*model.MomentPost], error) {
	if f.feed != nil {
		return f.feed(page, limit, authorIDs)
	}
	allowed := make(map[uint64]bool, len(authorIDs))
	for _, id := range authorIDs {
		allowed[id] = true
	}
	out := make([]*model.MomentPost, 0)
	for _, p := range f.posts {
		if p.Status != consts.PostStatusApproved {
			continue
		}
		if len(authorIDs) > 0 && !allowed[p.UserID] {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DynamicPostID > out[j].DynamicPostID })
	return &repository.Page[*model.MomentPost]{
		List:        out,
		PageSize:    limit,
		TotalCount:  int64(len(out)),
		TotalPages:  repository.TotalPages(int64(len(out)), limit),
		CurrentPage: page,
	}, nil
}

func (f *fakeMomentRepo) Search(ctx context.Context, _ string) ([]*model.MomentPost, error) {
	hits, err := f.GetByIDs(ctx, f.searchHits)
	if err != nil {
		return nil, err
	}
	out := make([]*model.MomentPost, 0, len(hits))
	for _, p := range hits {
		if p.Status == consts.PostStatusApproved {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeMomentRepo) GetLikedByUser(_ context.Context, _ uint64) ([]*model.MomentPost, error) {
	return nil, nil
}

type fakeTeamRepo struct {
	posts      map[uint64]*model.TeamPost
	searchHits []uint64
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id uint64) (*model.TeamPost, error) {
	return f.posts[id], nil
}

func (f *fakeTeamRepo) GetByIDs(_ context.Context, ids []uint64) ([]*model.TeamPost, error) {
	out := make([]*model.TeamPost, 0, len(ids))
	for _, id := range ids {
		if p := f.posts[id]; p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) GetByUserID(_ context.Context, userID uint64) ([]*model.TeamPost, error) {
	var out []*model.TeamPost
	for _, p := range f.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) Create(_ context.Context, post *model.TeamPost, _ []string, _ string) error {
	if f.posts == nil {
		f.posts = make(map[uint64]*model.TeamPost)
	}
	if post.PostID == 0 {
		post.PostID = uint64(len(f.posts) + 1)
	}
	f.posts[post.PostID] = post
	return nil
}

func (f *fakeTeamRepo) Update(_ context.Context, post *model.TeamPost, _ []string, _ *string) error {
	f.posts[post.PostID] = post
	return nil
}

func (f *fakeTeamRepo) Delete(_ context.Context, id uint64) error {
	delete(f.posts, id)
	return nil
}

// FeedPage 与真实实现一致，只放出已通过审核的帖子
func (f *fakeTeamRepo) FeedPage(_ context.Context, page, limit int, themeID uint64) (*repository.Page[*model.TeamPost], error) {
	out := make([]*model.TeamPost, 0)
	for _, p := range f.posts {
		if p.Status != consts.PostStatusApproved {
			continue
		}
		if themeID != 0 && p.ThemeID != themeID {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PostID > out[j].PostID })
	return &repository.Page[*model.TeamPost]{
		List:        out,
		PageSize:    limit,
		TotalCount:  int64(len(out)),
		TotalPages:  repository.TotalPages(int64(len(out)), limit),
		CurrentPage: page,
	}, nil
}

func (f *fakeTeamRepo) Search(ctx context.Context, _ string) ([]*model.TeamPost, error) {
	hits, err := f.GetByIDs(ctx, f.searchHits)
	if err != nil {
		return nil, err
	}
	out := make([]*model.TeamPost, 0, len(hits))
	for _, p := range hits {
		if p.Status == consts.PostStatusApproved {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) GetLikedByUser(_ context.Context, _ uint64) ([]*model.TeamPost, error) {
	return nil, nil
}

func (f *fakeTeamRepo) GetJoinedByUser(_ context.Context, _ uint64) ([]*model.TeamPost, error) {
	return nil, nil
}

type participantKey struct {
	userID, postID uint64
}

type fakeParticipantRepo struct {
	members map[participantKey]bool
}

func (f *fakeParticipantRepo) Exists(_ context.Context, userID, postID uint64) (bool, error) {
	return f.members[participantKey{userID, postID}], nil
}

func (f *fakeParticipantRepo) Create(_ context.Context, participant *model.TeamParticipant) error {
	if f.members == nil {
		f.members = make(map[participantKey]bool)
	}
	f.members[participantKey{participant.UserID, participant.PostID}] = true
	return nil
}

func (f *fakeParticipantRepo) Delete(_ context.Context, userID, postID uint64) error {
	delete(f.members, participantKey{userID, postID})
	return nil
}

func (f *fakeParticipantRepo) CountByPost(_ context.Context, postID uint64) (int64, error) {
	var count int64
	for key := range f.members {
		if key.postID == postID {
			count++
		}
	}
	return count, nil
}

func (f *fakeParticipantRepo) GetMemberIDs(_ context.Context, postID uint64) ([]uint64, error) {
	var ids []uint64
	for key := range f.members {
		if key.postID == postID {
			ids = append(ids, key.userID)
		}
	}
	return ids, nil
}

type fakeMessageRepo struct {
	rows    []*model.Message
	created []*model.Message
}

func (f *fakeMessageRepo) Create(_ context.Context, msg *model.Message) error {
	f.created = append(f.created, msg)
	return nil
}

func (f *fakeMessageRepo) GetNotificationRows(_ context.Context, _ uint64) ([]*model.Message, error) {
	return f.rows, nil
}

func (f *fakeMessageRepo) InteractivePage(_ context.Context, _ uint64, page, limit int) (*repository.Page[*model.Message], error) {
	return &repository.Page[*model.Message]{
		List:        f.rows,
		PageSize:    limit,
		TotalCount:  int64(len(f.rows)),
		TotalPages:  repository.TotalPages(int64(len(f.rows)), limit),
		CurrentPage: page,
	}, nil
}

func (f *fakeMessageRepo) BetweenUsersPage(_ context.Context, _, _ uint64, page, limit int) (*repository.Page[*model.Message], error) {
	return repository.EmptyPage[*model.Message](page, limit), nil
}

func (f *fakeMessageRepo) AdminNotificationsPage(_ context.Context, _ uint64, page, limit int) (*repository.Page[*model.Message], error) {
	return repository.EmptyPage[*model.Message](page, limit), nil
}

func (f *fakeMessageRepo) PageMessages(_ context.Context, _ repository.PageQuery) (*repository.Page[*model.Message], error) {
	return &repository.Page[*model.Message]{
		List:        f.rows,
		PageSize:    10,
		TotalCount:  int64(len(f.rows)),
		TotalPages:  repository.TotalPages(int64(len(f.rows)), 10),
		CurrentPage: 1,
	}, nil
}

func (f *fakeMessageRepo) DeleteByIDs(_ context.Context, _ []uint64) error {
	return nil
}

type extraKey struct {
	kind   model.PostKind
	postID uint64
}

type fakeExtraRepo struct {
	images        map[extraKey][]string
	likeCounts    map[extraKey]int64
	commentCounts map[extraKey]int64
	joinCounts    map[uint64]int64
	itineraries   map[uint64]string
}

func (f *fakeExtraRepo) GetImages(_ context.Context, kind model.PostKind, postID uint64) ([]string, error) {
	return f.images[extraKey{kind, postID}], nil
}

func (f *fakeExtraRepo) GetNewestImage(_ context.Context, kind model.PostKind, postID uint64) (string, error) {
	urls := f.images[extraKey{kind, postID}]
	if len(urls) == 0 {
		return "", nil
	}
	return urls[0], nil
}

func (f *fakeExtraRepo) GetFirstItineraryImage(_ context.Context, postID uint64) (string, error) {
	return f.itineraries[postID], nil
}

func (f *fakeExtraRepo) GetLikeCount(_ context.Context, kind model.PostKind, postID uint64) (int64, error) {
	return f.likeCounts[extraKey{kind, postID}], nil
}

func (f *fakeExtraRepo) GetCommentCount(_ context.Context, kind model.PostKind, postID uint64) (int64, error) {
	return f.commentCounts[extraKey{kind, postID}], nil
}

func (f *fakeExtraRepo) GetJoinCount(_ context.Context, postID uint64) (int64, error) {
	return f.joinCounts[postID], nil
}

func (f *fakeExtraRepo) DeleteImages(_ context.Context, _ model.PostKind, _ []uint64) error {
	return nil
}

func (f *fakeExtraRepo) DeleteItineraries(_ context.Context, _ []uint64) error {
	return nil
}

type recommendKey struct {
	postID uint64
	kind   model.PostKind
}

type auditCall struct {
	kind    model.PostKind
	postIDs []uint64
	status  int8
	adminID uint64
}

type fakeModerationRepo struct {
	recommendations map[recommendKey]*model.Recommendation
	auditCalls      []auditCall
	deleteCalls     []auditCall
}

func (f *fakeModerationRepo) BatchUpdateStatus(_ context.Context, kind model.PostKind, postIDs []uint64, status int8, adminID uint64) error {
	f.auditCalls = append(f.auditCalls, auditCall{kind: kind, postIDs: postIDs, status: status, adminID: adminID})
	return nil
}

func (f *fakeModerationRepo) BatchDeletePosts(_ context.Context, kind model.PostKind, postIDs []uint64) error {
	f.deleteCalls = append(f.deleteCalls, auditCall{kind: kind, postIDs: postIDs})
	return nil
}

func (f *fakeModerationRepo) PageApprovalRecords(_ context.Context, _ repository.PageQuery) (*repository.Page[*model.ApprovalRecord], error) {
	return repository.EmptyPage[*model.ApprovalRecord](1, 10), nil
}

func (f *fakeModerationRepo) DeleteApprovalRecords(_ context.Context, _ []uint64) error {
	return nil
}

func (f *fakeModerationRepo) GetRecommendation(_ context.Context, postID uint64, kind model.PostKind) (*model.Recommendation, error) {
	return f.recommendations[recommendKey{postID, kind}], nil
}

func (f *fakeModerationRepo) CreateRecommendation(_ context.Context, rec *model.Recommendation) error {
	if f.recommendations == nil {
		f.recommendations = make(map[recommendKey]*model.Recommendation)
	}
	f.recommendations[recommendKey{rec.PostID, model.KindFromApprovalType(rec.Type)}] = rec
	return nil
}

func (f *fakeModerationRepo) DeleteRecommendation(_ context.Context, postID uint64, kind model.PostKind) error {
	delete(f.recommendations, recommendKey{postID, kind})
	return nil
}

func (f *fakeModerationRepo) PageRecommendations(_ context.Context, _ repository.PageQuery) (*repository.Page[*model.Recommendation], error) {
	return repository.EmptyPage[*model.Recommendation](1, 10), nil
}

func (f *fakeModerationRepo) ListRecommendations(_ context.Context) ([]*model.Recommendation, error) {
	out := make([]*model.Recommendation, 0, len(f.recommendations))
	for _, rec := range f.recommendations {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeModerationRepo) PageMomentPosts(_ context.Context, _ repository.PageQuery) (*repository.Page[*model.MomentPost], error) {
	return repository.EmptyPage[*model.MomentPost](1, 10), nil
}

func (f *fakeModerationRepo) PageTeamPosts(_ context.Context, _ repository.PageQuery) (*repository.Page[*model.TeamPost], error) {
	return repository.EmptyPage[*model.TeamPost](1, 10), nil
}

type fakeAdminRepo struct {
	admins map[uint64]*model.Admin
}

func (f *fakeAdminRepo) GetAdminById(_ context.Context, id uint64) (*model.Admin, error) {
	return f.admins[id], nil
}

func (f *fakeAdminRepo) GetAdminByIds(_ context.Context, ids []uint64) ([]*model.Admin, error) {
	out := make([]*model.Admin, 0, len(ids))
	for _, id := range ids {
		if a := f.admins[id]; a != nil {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAdminRepo) GetAdminByUsername(_ context.Context, username string) (*model.Admin, error) {
	for _, a := range f.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) CreateAdmin(_ context.Context, admin *model.Admin) error {
	if f.admins == nil {
		f.admins = make(map[uint64]*model.Admin)
	}
	if admin.AdminID == 0 {
		admin.AdminID = uint64(len(f.admins) + 1)
	}
	f.admins[admin.AdminID] = admin
	return nil
}

func (f *fakeAdminRepo) UpdateAdmin(_ context.Context, admin *model.Admin) error {
	f.admins[admin.AdminID] = admin
	return nil
}

func (f *fakeAdminRepo) DeleteAdmin(_ context.Context, id uint64) error {
	delete(f.admins, id)
	return nil
}

func (f *fakeAdminRepo) PageAdmins(_ context.Context, _ repository.PageQuery) (*repository.Page[*model.Admin], error) {
	return repository.EmptyPage[*model.Admin](1, 10), nil
}

// fakeUserCards 只提供名片查询，绕开 Redis 缓存
type fakeUserCards struct {
	UserService
	cards map[uint64]*dto.UserCardDTO
}

func (f *fakeUserCards) GetUserCardsByIds(_ context.Context, ids []uint64) (map[uint64]*dto.UserCardDTO, error) {
	out := make(map[uint64]*dto.UserCardDTO, len(ids))
	for _, id := range ids {
		if card := f.cards[id]; card != nil {
			out[id] = card
		}
	}
	return out, nil
}
