package handler

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/pkg/util"
	"Wayfarer/internal/repository"
	"Wayfarer/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationSvc service.ModerationService
}

func NewModerationHandler(moderationSvc service.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderationSvc: moderationSvc}
}

// BatchAudit 批量审核，0 驳回 / 1 通过 / 2 下架回待审
func (s *ModerationHandler) BatchAudit(c *gin.Context) {
	var auditDTO dto.BatchAuditDTO
	if err := c.ShouldBind(&auditDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&auditDTO); err != nil {
		response.Error(c, err)
		return
	}
	adminID := c.GetUint64("user_id")
	if err := s.moderationSvc.BatchAudit(c.Request.Context(), adminID, &auditDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ModerationHandler) BatchDelete(c *gin.Context) {
	var deleteDTO dto.BatchDeleteDTO
	if err := c.ShouldBind(&deleteDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&deleteDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.moderationSvc.BatchDelete(c.Request.Context(), &deleteDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// PagePosts 后台帖子列表，按类型分路，status 过滤可选
func (s *ModerationHandler) PagePosts(c *gin.Context) {
	page, limit := getPagination(c)
	status, _ := strconv.Atoi(c.DefaultQuery("status", "-1"))
	userID, _ := strconv.ParseUint(c.DefaultQuery("user_id", "0"), 10, 64)

	filters := map[string]interface{}{"user_id": userID}
	if status >= 0 {
		filters["status"] = int8(status)
	}
	query := repository.PageQuery{
		Page:    page,
		Limit:   limit,
		Filters: filters,
	}

	switch c.Param("kind") {
	case "dynamic":
		posts, err := s.moderationSvc.PageMomentPosts(c.Request.Context(), query)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, posts)
	case "team_activity":
		posts, err := s.moderationSvc.PageTeamPosts(c.Request.Context(), query)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, posts)
	default:
		response.Error(c, service.ErrParamInvalid)
	}
}

func (s *ModerationHandler) Recommend(c *gin.Context) {
	var recDTO dto.RecommendDTO
	if err := c.ShouldBind(&recDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&recDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.moderationSvc.Recommend(c.Request.Context(), &recDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ModerationHandler) CancelRecommend(c *gin.Context) {
	var recDTO dto.RecommendDTO
	if err := c.ShouldBind(&recDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.moderationSvc.CancelRecommend(c.Request.Context(), &recDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ModerationHandler) PageRecommendations(c *gin.Context) {
	page, limit := getPagination(c)
	recs, err := s.moderationSvc.PageRecommendations(c.Request.Context(), repository.PageQuery{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, recs)
}

// ListRecommendations 前台推荐位全量列表
func (s *ModerationHandler) ListRecommendations(c *gin.Context) {
	recs, err := s.moderationSvc.ListRecommendations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, recs)
}

func (s *ModerationHandler) PageApprovalRecords(c *gin.Context) {
	page, limit := getPagination(c)
	postID, _ := strconv.ParseUint(c.DefaultQuery("post_id", "0"), 10, 64)

	records, err := s.moderationSvc.PageApprovalRecords(c.Request.Context(), repository.PageQuery{
		Page:    page,
		Limit:   limit,
		Filters: map[string]interface{}{"post_id": postID},
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, records)
}

// PageComments 后台评论列表，按类型分路，post_id 过滤可选
func (s *ModerationHandler) PageComments(c *gin.Context) {
	page, limit := getPagination(c)
	postID, _ := strconv.ParseUint(c.DefaultQuery("post_id", "0"), 10, 64)
	userID, _ := strconv.ParseUint(c.DefaultQuery("user_id", "0"), 10, 64)

	query := repository.PageQuery{
		Page:  page,
		Limit: limit,
	}

	switch c.Param("kind") {
	case "dynamic":
		query.Filters = map[string]interface{}{"dynamic_post_id": postID, "user_id": userID}
		comments, err := s.moderationSvc.PageMomentComments(c.Request.Context(), query)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, comments)
	case "team_activity":
		query.Filters = map[string]interface{}{"post_id": postID, "user_id": userID}
		comments, err := s.moderationSvc.PageTeamComments(c.Request.Context(), query)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, comments)
	default:
		response.Error(c, service.ErrParamInvalid)
	}
}

func (s *ModerationHandler) RemoveComment(c *gin.Context) {
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
	if err := s.moderationSvc.RemoveComment(c.Request.Context(), kind, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ModerationHandler) DeleteApprovalRecords(c *gin.Context) {
	var req struct {
		IDs []uint64 `json:"ids" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.moderationSvc.DeleteApprovalRecords(c.Request.Context(), req.IDs); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
