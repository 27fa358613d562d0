package handler

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/pkg/util"
	"Wayfarer/internal/service"

	"github.com/gin-gonic/gin"
)

type NoticeHandler struct {
	noticeSvc service.NoticeService
}

func NewNoticeHandler(noticeSvc service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeSvc: noticeSvc}
}

func (s *NoticeHandler) PageNotices(c *gin.Context) {
	page, limit := getPagination(c)
	notices, err := s.noticeSvc.PageNotices(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, notices)
}

func (s *NoticeHandler) GetNotice(c *gin.Context) {
	notice, err := s.noticeSvc.GetNotice(c.Request.Context(), c.Param("notice_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, notice)
}

func (s *NoticeHandler) CreateNotice(c *gin.Context) {
	var baseDTO dto.NoticeBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	adminID := c.GetUint64("user_id")
	if err := s.noticeSvc.CreateNotice(c.Request.Context(), adminID, &baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *NoticeHandler) UpdateNotice(c *gin.Context) {
	var baseDTO dto.NoticeBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.noticeSvc.UpdateNotice(c.Request.Context(), c.Param("notice_id"), &baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *NoticeHandler) DeleteNotice(c *gin.Context) {
	if err := s.noticeSvc.DeleteNotice(c.Request.Context(), c.Param("notice_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
