package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/pkg/consts"
	"Wayfarer/internal/pkg/minio"
	"Wayfarer/internal/pkg/redis"
	"Wayfarer/internal/pkg/security"
	"Wayfarer/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.TokenDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserProfile(ctx context.Context, targetID, viewerID uint64) (*dto.UserProfileDTO, error)
	GetUserCardsByIds(ctx context.Context, ids []uint64) (map[uint64]*dto.UserCardDTO, error)
	UpdateUserInfo(ctx context.Context, id uint64, userDTO *dto.UserDTO) error
	UpdatePassword(ctx context.Context, id uint64, pwdDTO *dto.ChangePasswordDTO) error
	BanUser(ctx context.Context, id uint64) error
	UnBanUser(ctx context.Context, id uint64) error
	PageUsers(ctx context.Context, query repository.PageQuery) (*repository.Page[*model.User], error)
}

type UserServiceImpl struct {
	userRepo   repository.UserRepo
	followRepo repository.UserFollowRepo
}

func NewUserService(userRepo repository.UserRepo, followRepo repository.UserFollowRepo) UserService {
	return &UserServiceImpl{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	findUser, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrUserUsernameExist
	}

	user := &model.User{}
	err = copier.Copy(user, regDTO)
	if err != nil {
		return err
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}
	user.Password = passwordHash
	if user.AvatarURL == "" {
		user.AvatarURL = consts.DefaultAvatarURL
	}

	return s.userRepo.CreateUser(ctx, user)
}

func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, credDTO.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Status == 0 {
		return nil, ErrUserBan
	}
	if err = security.CheckPasswordHash(credDTO.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.UserID, []string{"USER"})
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{Token: token, UserID: user.UserID}, nil
}

func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	// 把签名拉进黑名单，有效期与 Token 一致
	return redis.SetWithExpiration(ctx, signature, true, security.JWTExpirationTime)
}

func (s *UserServiceImpl) GetUserProfile(ctx context.Context, targetID, viewerID uint64) (*dto.UserProfileDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile := &dto.UserProfileDTO{}
	if err = copier.Copy(profile, user); err != nil {
		return nil, err
	}
	profile.AvatarURL = minio.GetPublicURL(user.AvatarURL)

	tags, err := s.userRepo.GetUserTags(ctx, targetID)
	if err != nil {
		return nil, err
	}
	profile.Tags = make([]*dto.TagDTO, 0, len(tags))
	for _, tag := range tags {
		profile.Tags = append(profile.Tags, &dto.TagDTO{TagID: tag.TagID, Name: tag.Name})
	}

	if profile.FollowerCount, err = s.followRepo.GetUserFollowerCount(ctx, targetID); err != nil {
		return nil, err
	}
	if profile.FollowingCount, err = s.followRepo.GetUserFollowingCount(ctx, targetID); err != nil {
		return nil, err
	}
	if profile.LikedCount, err = s.userRepo.CountLikesGiven(ctx, targetID); err != nil {
		return nil, err
	}

	if viewerID != 0 && viewerID != targetID {
		follow, err := s.followRepo.GetUserFollow(ctx, viewerID, targetID)
		if err != nil {
			return nil, err
		}
		profile.IsFollowed = follow != nil
	}

	return profile, nil
}

// GetUserCardsByIds 批量取用户名片，逐个走 redis 缓存，未命中再回源数据库
func (s *UserServiceImpl) GetUserCardsByIds(ctx context.Context, ids []uint64) (map[uint64]*dto.UserCardDTO, error) {
	missedIds := make([]uint64, 0, len(ids))
	mp := make(map[uint64]*dto.UserCardDTO, len(ids))
	for _, id := range ids {
		if _, ok := mp[id]; ok {
			continue
		}
		value, err := redis.GetValue(ctx, consts.UserSimpleInfoKey+strconv.FormatUint(id, 10))
		if err != nil {
			return nil, err
		}
		if value != "" {
			var card *dto.UserCardDTO
			if err = json.Unmarshal([]byte(value), &card); err != nil {
				missedIds = append(missedIds, id)
			} else {
				mp[id] = card
			}
		} else {
			missedIds = append(missedIds, id)
		}
	}

	if len(missedIds) > 0 {
		users, err := s.userRepo.GetUserByIds(ctx, missedIds)
		if err != nil {
			return nil, err
		}
		for _, user := range users {
			card := &dto.UserCardDTO{
				UserID:    user.UserID,
				Nickname:  user.Nickname,
				AvatarURL: minio.GetPublicURL(user.AvatarURL),
			}
			mp[user.UserID] = card
			jsonStr, err := json.Marshal(card)
			if err != nil {
				return nil, err
			}
			err = redis.SetWithExpiration(ctx, consts.UserSimpleInfoKey+strconv.FormatUint(user.UserID, 10), string(jsonStr), time.Hour*1)
			if err != nil {
				return nil, err
			}
		}
	}
	return mp, nil
}

func (s *UserServiceImpl) UpdateUserInfo(ctx context.Context, id uint64, userDTO *dto.UserDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err = copier.CopyWithOption(user, userDTO, copier.Option{IgnoreEmpty: true}); err != nil {
		return err
	}

	if err = s.userRepo.UpdateUser(ctx, user, userDTO.TagIDs); err != nil {
		return err
	}

	// 资料变更后失效名片缓存
	_ = redis.DeleteKey(ctx, consts.UserSimpleInfoKey+strconv.FormatUint(id, 10))
	return nil
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, id uint64, pwdDTO *dto.ChangePasswordDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err = security.CheckPasswordHash(pwdDTO.OldPassword, user.Password); err != nil {
		return ErrPasswordIncorrect
	}

	passwordHash, err := security.HashPassword(pwdDTO.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, id, passwordHash)
}

func (s *UserServiceImpl) BanUser(ctx context.Context, id uint64) error {
	rows, err := s.userRepo.UpdateUserStatus(ctx, id, 0)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserServiceImpl) UnBanUser(ctx context.Context, id uint64) error {
	rows, err := s.userRepo.UpdateUserStatus(ctx, id, 1)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserServiceImpl) PageUsers(ctx context.Context, query repository.PageQuery) (*repository.Page[*model.User], error) {
	return s.userRepo.PageUsers(ctx, query)
}
