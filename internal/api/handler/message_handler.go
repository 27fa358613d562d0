package handler

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/pkg/util"
	"Wayfarer/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageSvc service.MessageService
}

func NewMessageHandler(messageSvc service.MessageService) *MessageHandler {
	return &MessageHandler{messageSvc: messageSvc}
}

// GetNotification 消息中心首页聚合
func (s *MessageHandler) GetNotification(c *gin.Context) {
	userID := c.GetUint64("user_id")
	notification, err := s.messageSvc.GetNotification(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, notification)
}

func (s *MessageHandler) GetInteractiveNotifications(c *gin.Context) {
	page, limit := getPagination(c)
	userID := c.GetUint64("user_id")

	notifications, err := s.messageSvc.GetInteractiveNotifications(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, notifications)
}

func (s *MessageHandler) GetMessagesBetweenUsers(c *gin.Context) {
	otherID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || otherID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, limit := getPagination(c)
	userID := c.GetUint64("user_id")

	messages, err := s.messageSvc.GetMessagesBetweenUsers(c.Request.Context(), userID, otherID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, messages)
}

func (s *MessageHandler) GetAdminNotifications(c *gin.Context) {
	page, limit := getPagination(c)
	userID := c.GetUint64("user_id")

	notifications, err := s.messageSvc.GetAdminNotifications(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, notifications)
}

func (s *MessageHandler) SendMessage(c *gin.Context) {
	var sendDTO dto.SendMessageDTO
	if err := c.ShouldBind(&sendDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&sendDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")

	if err := s.messageSvc.SendPrivateMessage(c.Request.Context(), userID, &sendDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
