package handler

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/pkg/util"
	"Wayfarer/internal/repository"
	"Wayfarer/internal/service"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminSvc service.AdminService
	userSvc  service.UserService
}

func NewAdminHandler(adminSvc service.AdminService, userSvc service.UserService) *AdminHandler {
	return &AdminHandler{
		adminSvc: adminSvc,
		userSvc:  userSvc,
	}
}

func (s *AdminHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	if err := c.ShouldBind(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.adminSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

func (s *AdminHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := s.adminSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) GetProfile(c *gin.Context) {
	adminID := c.GetUint64("user_id")
	profile, err := s.adminSvc.GetAdminProfile(c.Request.Context(), adminID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *AdminHandler) CreateAdmin(c *gin.Context) {
	var baseDTO dto.AdminBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.adminSvc.CreateAdmin(c.Request.Context(), &baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) UpdateAdmin(c *gin.Context) {
	adminID, err := strconv.ParseUint(c.Param("admin_id"), 10, 64)
	if err != nil || adminID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var baseDTO dto.AdminBaseDTO
	if err = c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.adminSvc.UpdateAdmin(c.Request.Context(), adminID, &baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) DeleteAdmin(c *gin.Context) {
	adminID, err := strconv.ParseUint(c.Param("admin_id"), 10, 64)
	if err != nil || adminID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.adminSvc.DeleteAdmin(c.Request.Context(), adminID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) PageAdmins(c *gin.Context) {
	page, limit := getPagination(c)
	admins, err := s.adminSvc.PageAdmins(c.Request.Context(), repository.PageQuery{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, admins)
}

func (s *AdminHandler) Broadcast(c *gin.Context) {
	var broadcastDTO dto.BroadcastDTO
	if err := c.ShouldBind(&broadcastDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&broadcastDTO); err != nil {
		response.Error(c, err)
		return
	}
	adminID := c.GetUint64("user_id")
	if err := s.adminSvc.Broadcast(c.Request.Context(), adminID, &broadcastDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) BanUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.userSvc.BanUser(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) UnBanUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.userSvc.UnBanUser(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// PageMessages 后台消息列表，type / sender_id 过滤可选；type 为协议串
func (s *AdminHandler) PageMessages(c *gin.Context) {
	page, limit := getPagination(c)
	msgType := c.Query("type")
	senderID, _ := strconv.ParseUint(c.DefaultQuery("sender_id", "0"), 10, 64)

	filters := map[string]interface{}{"sender_id": senderID}
	if msgType != "" {
		filters["type"] = msgType
	}

	messages, err := s.adminSvc.PageMessages(c.Request.Context(), repository.PageQuery{
		Page:    page,
		Limit:   limit,
		Filters: filters,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, messages)
}

func (s *AdminHandler) DeleteMessages(c *gin.Context) {
	var req struct {
		IDs []uint64 `json:"ids" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.adminSvc.DeleteMessages(c.Request.Context(), req.IDs); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) PageUsers(c *gin.Context) {
	page, limit := getPagination(c)
	status, _ := strconv.Atoi(c.DefaultQuery("status", "-1"))

	filters := map[string]interface{}{}
	if status >= 0 {
		filters["status"] = int8(status)
	}

	users, err := s.userSvc.PageUsers(c.Request.Context(), repository.PageQuery{
		Page:    page,
		Limit:   limit,
		Filters: filters,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}
