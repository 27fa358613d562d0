package handler

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/pkg/util"
	"Wayfarer/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamSvc  service.TeamService
	themeSvc service.ThemeService
}

func NewTeamHandler(teamSvc service.TeamService, themeSvc service.ThemeService) *TeamHandler {
	return &TeamHandler{
		teamSvc:  teamSvc,
		themeSvc: themeSvc,
	}
}

func (s *TeamHandler) CreatePost(c *gin.Context) {
	var baseDTO dto.TeamPostBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.teamSvc.CreateTeamPost(c.Request.Context(), userID, &baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TeamHandler) UpdatePost(c *gin.Context) {
	var baseDTO dto.TeamPostBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if baseDTO.PostID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.teamSvc.UpdateTeamPost(c.Request.Context(), userID, &baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TeamHandler) DeletePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err = s.teamSvc.DeleteTeamPost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TeamHandler) GetPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerID := c.GetUint64("user_id")

	post, err := s.teamSvc.GetTeamPost(c.Request.Context(), postID, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// GetFeed 组队帖信息流，可按主题过滤
func (s *TeamHandler) GetFeed(c *gin.Context) {
	page, limit := getPagination(c)
	themeID, _ := strconv.ParseUint(c.DefaultQuery("theme_id", "0"), 10, 64)

	feed, err := s.teamSvc.GetTeamFeed(c.Request.Context(), page, limit, themeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}

func (s *TeamHandler) JoinTeam(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err = s.teamSvc.JoinTeam(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TeamHandler) LeaveTeam(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err = s.teamSvc.LeaveTeam(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TeamHandler) GetMembers(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	members, err := s.teamSvc.GetTeamMembers(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, members)
}

func (s *TeamHandler) ListThemes(c *gin.Context) {
	themes, err := s.themeSvc.ListThemes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, themes)
}

func (s *TeamHandler) DeleteImages(c *gin.Context) {
	var req struct {
		ImageIDs []uint64 `json:"image_ids" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.teamSvc.DeleteImages(c.Request.Context(), req.ImageIDs); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteItineraries 按帖子 id 批量清空行程图
func (s *TeamHandler) DeleteItineraries(c *gin.Context) {
	var req struct {
		PostIDs []uint64 `json:"post_ids" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.teamSvc.DeleteItineraries(c.Request.Context(), req.PostIDs); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
