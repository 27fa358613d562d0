package handler

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/pkg/util"
	"Wayfarer/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var baseDTO dto.MomentPostBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.postSvc.CreateMomentPost(c.Request.Context(), userID, &baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	var baseDTO dto.MomentPostBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if baseDTO.DynamicPostID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.postSvc.UpdateMomentPost(c.Request.Context(), userID, &baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err = s.postSvc.DeleteMomentPost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerID := c.GetUint64("user_id")

	post, err := s.postSvc.GetMomentPost(c.Request.Context(), postID, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// GetFeed 动态帖信息流，scope=follow 时只看关注的人
func (s *PostHandler) GetFeed(c *gin.Context) {
	page, limit := getPagination(c)
	viewerID := c.GetUint64("user_id")
	onlyFollowed := c.Query("scope") == "follow"

	feed, err := s.postSvc.GetMomentFeed(c.Request.Context(), page, limit, viewerID, onlyFollowed)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}

// DeleteImages 编辑态按图片 id 批量删除配图
func (s *PostHandler) DeleteImages(c *gin.Context) {
	var req struct {
		ImageIDs []uint64 `json:"image_ids" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.postSvc.DeleteImages(c.Request.Context(), req.ImageIDs); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
