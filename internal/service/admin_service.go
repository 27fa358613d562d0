package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/pkg/consts"
	"Wayfarer/internal/pkg/kafka"
	"Wayfarer/internal/pkg/minio"
	"Wayfarer/internal/pkg/redis"
	"Wayfarer/internal/pkg/security"
	"Wayfarer/internal/repository"
	"context"
	"time"
)

type AdminService interface {
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.TokenDTO, error)
	Logout(ctx context.Context, token string) error
	GetAdminProfile(ctx context.Context, adminID uint64) (*dto.AdminDTO, error)
	CreateAdmin(ctx context.Context, baseDTO *dto.AdminBaseDTO) error
	UpdateAdmin(ctx context.Context, adminID uint64, baseDTO *dto.AdminBaseDTO) error
	DeleteAdmin(ctx context.Context, adminID uint64) error
	PageAdmins(ctx context.Context, query repository.PageQuery) (*repository.Page[*dto.AdminDTO], error)
	Broadcast(ctx context.Context, adminID uint64, broadcastDTO *dto.BroadcastDTO) error
	PageMessages(ctx context.Context, query repository.PageQuery) (*repository.Page[*dto.AdminMessageDTO], error)
	DeleteMessages(ctx context.Context, ids []uint64) error
}

type AdminServiceImpl struct {
	adminRepo   repository.AdminRepo
	userRepo    repository.UserRepo
	messageRepo repository.MessageRepo
	notify      kafka.NotifyProducer
}

func NewAdminService(adminRepo repository.AdminRepo, userRepo repository.UserRepo, messageRepo repository.MessageRepo, notify kafka.NotifyProducer) AdminService {
	return &AdminServiceImpl{
		adminRepo:   adminRepo,
		userRepo:    userRepo,
		messageRepo: messageRepo,
		notify:      notify,
	}
}

func (s *AdminServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.TokenDTO, error) {
	admin, err := s.adminRepo.GetAdminByUsername(ctx, credDTO.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	if admin.Status == 0 {
		return nil, ErrUserBan
	}
	if err = security.CheckPasswordHash(credDTO.Password, admin.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	roles := []string{consts.RoleAdmin}
	if admin.Role == "superAdmin" {
		roles = append(roles, consts.RoleSuperAdmin)
	}
	token, err := security.GenerateToken(admin.AdminID, roles)
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{Token: token, UserID: admin.AdminID}, nil
}

func (s *AdminServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, security.JWTExpirationTime)
}

func (s *AdminServiceImpl) GetAdminProfile(ctx context.Context, adminID uint64) (*dto.AdminDTO, error) {
	admin, err := s.adminRepo.GetAdminById(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	return toAdminDTO(admin), nil
}

func (s *AdminServiceImpl) CreateAdmin(ctx context.Context, baseDTO *dto.AdminBaseDTO) error {
	exist, err := s.adminRepo.GetAdminByUsername(ctx, baseDTO.Username)
	if err != nil {
		return err
	}
	if exist != nil {
		return ErrAdminUsernameExist
	}
	if baseDTO.Password == "" {
		return ErrParamInvalid
	}

	passwordHash, err := security.HashPassword(baseDTO.Password)
	if err != nil {
		return err
	}
	admin := &model.Admin{
		Username:  baseDTO.Username,
		Password:  passwordHash,
		Nickname:  baseDTO.Nickname,
		AvatarURL: baseDTO.AvatarURL,
		Role:      baseDTO.Role,
	}
	if admin.Role == "" {
		admin.Role = "admin"
	}
	return s.adminRepo.CreateAdmin(ctx, admin)
}

func (s *AdminServiceImpl) UpdateAdmin(ctx context.Context, adminID uint64, baseDTO *dto.AdminBaseDTO) error {
	admin, err := s.adminRepo.GetAdminById(ctx, adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrAdminNotFound
	}

	admin.Nickname = baseDTO.Nickname
	admin.AvatarURL = baseDTO.AvatarURL
	if baseDTO.Role != "" {
		admin.Role = baseDTO.Role
	}
	if baseDTO.Password != "" {
		passwordHash, err := security.HashPassword(baseDTO.Password)
		if err != nil {
			return err
		}
		admin.Password = passwordHash
	}
	return s.adminRepo.UpdateAdmin(ctx, admin)
}

func (s *AdminServiceImpl) DeleteAdmin(ctx context.Context, adminID uint64) error {
	admin, err := s.adminRepo.GetAdminById(ctx, adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrAdminNotFound
	}
	return s.adminRepo.DeleteAdmin(ctx, adminID)
}

func (s *AdminServiceImpl) PageAdmins(ctx context.Context, query repository.PageQuery) (*repository.Page[*dto.AdminDTO], error) {
	adminPage, err := s.adminRepo.PageAdmins(ctx, query)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.AdminDTO, 0, len(adminPage.List))
	for _, admin := range adminPage.List {
		items = append(items, toAdminDTO(admin))
	}
	return &repository.Page[*dto.AdminDTO]{
		List:        items,
		PageSize:    adminPage.PageSize,
		TotalCount:  adminPage.TotalCount,
		TotalPages:  adminPage.TotalPages,
		CurrentPage: adminPage.CurrentPage,
	}, nil
}

// Broadcast 给指定用户群发管理员通知
func (s *AdminServiceImpl) Broadcast(ctx context.Context, adminID uint64, broadcastDTO *dto.BroadcastDTO) error {
	for _, receiverID := range broadcastDTO.ReceiverIDs {
		err := s.messageRepo.Create(ctx, &model.Message{
			SenderType:   model.SenderTypeAdmin,
			SenderID:     adminID,
			ReceiverType: model.SenderTypeUser,
			ReceiverID:   receiverID,
			Content:      broadcastDTO.Content,
			Type:         model.MessageTypeAdmin,
		})
		if err != nil {
			return err
		}

		s.notify.Publish(ctx, &kafka.NotificationEvent{
			ReceiverID: receiverID,
			SenderID:   adminID,
			Type:       model.MessageTypeAdmin,
			Content:    broadcastDTO.Content,
			CreatedAt:  time.Now(),
		})
	}
	return nil
}

// PageMessages 后台消息列表，双方昵称按身份各自回表补齐
func (s *AdminServiceImpl) PageMessages(ctx context.Context, query repository.PageQuery) (*repository.Page[*dto.AdminMessageDTO], error) {
	msgPage, err := s.messageRepo.PageMessages(ctx, query)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(msgPage.List)*2)
	adminIDs := make([]uint64, 0)
	collect := func(partyType string, id uint64) {
		if partyType == model.SenderTypeAdmin {
			adminIDs = append(adminIDs, id)
		} else {
			userIDs = append(userIDs, id)
		}
	}
	for _, row := range msgPage.List {
		collect(row.SenderType, row.SenderID)
		collect(row.ReceiverType, row.ReceiverID)
	}

	users, err := s.userRepo.GetUserByIds(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	admins, err := s.adminRepo.GetAdminByIds(ctx, adminIDs)
	if err != nil {
		return nil, err
	}
	userNames := make(map[uint64]string, len(users))
	for _, user := range users {
		userNames[user.UserID] = user.Nickname
	}
	adminNames := make(map[uint64]string, len(admins))
	for _, admin := range admins {
		adminNames[admin.AdminID] = admin.Nickname
	}
	nameOf := func(partyType string, id uint64) string {
		if partyType == model.SenderTypeAdmin {
			return adminNames[id]
		}
		return userNames[id]
	}

	items := make([]*dto.AdminMessageDTO, 0, len(msgPage.List))
	for _, row := range msgPage.List {
		items = append(items, &dto.AdminMessageDTO{
			MessageDTO:   *toMessageDTO(row),
			SenderName:   nameOf(row.SenderType, row.SenderID),
			ReceiverName: nameOf(row.ReceiverType, row.ReceiverID),
		})
	}
	return &repository.Page[*dto.AdminMessageDTO]{
		List:        items,
		PageSize:    msgPage.PageSize,
		TotalCount:  msgPage.TotalCount,
		TotalPages:  msgPage.TotalPages,
		CurrentPage: msgPage.CurrentPage,
	}, nil
}

func (s *AdminServiceImpl) DeleteMessages(ctx context.Context, ids []uint64) error {
	return s.messageRepo.DeleteByIDs(ctx, ids)
}

func toAdminDTO(admin *model.Admin) *dto.AdminDTO {
	return &dto.AdminDTO{
		AdminID:   admin.AdminID,
		Username:  admin.Username,
		Nickname:  admin.Nickname,
		AvatarURL: minio.GetPublicURL(admin.AvatarURL),
		Role:      admin.Role,
		CreatedAt: admin.CreatedAt.Format(time.DateTime),
	}
}
