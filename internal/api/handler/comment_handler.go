package handler

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/pkg/util"
	"Wayfarer/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

func (s *CommentHandler) CreateComment(c *gin.Context) {
	kind := kindFromParam(c)
	if !kind.Valid() {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var baseDTO dto.CommentBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")

	commentID, err := s.commentSvc.CreateComment(c.Request.Context(), kind, userID, &baseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"comment_id": commentID})
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	kind := kindFromParam(c)
	if !kind.Valid() {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	if err = s.commentSvc.DeleteComment(c.Request.Context(), kind, commentID, userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CommentHandler) GetComments(c *gin.Context) {
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

	comments, err := s.commentSvc.GetCommentsByPost(c.Request.Context(), kind, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}
