package handler

import (
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeSvc service.LikeService
}

func NewLikeHandler(likeSvc service.LikeService) *LikeHandler {
	return &LikeHandler{likeSvc: likeSvc}
}

// ToggleLike 点赞切换，data 为 +1 / -1
func (s *LikeHandler) ToggleLike(c *gin.Context) {
	kind := kindFromParam(c)
	if !kind.Valid() {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	delta, err := s.likeSvc.ToggleLike(c.Request.Context(), kind, userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, delta)
}
