package handler

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/pkg/util"
	"Wayfarer/internal/service"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
	postSvc service.PostService
	teamSvc service.TeamService
}

func NewUserHandler(userSvc service.UserService, postSvc service.PostService, teamSvc service.TeamService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
		postSvc: postSvc,
		teamSvc: teamSvc,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	if err := c.ShouldBind(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userSvc.Register(c.Request.Context(), &registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	if err := c.ShouldBind(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

func (s *UserHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetMyProfile 当前登录用户的主页信息
func (s *UserHandler) GetMyProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")
	profile, err := s.userSvc.GetUserProfile(c.Request.Context(), userID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *UserHandler) GetUserProfile(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || targetID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerID := c.GetUint64("user_id")

	profile, err := s.userSvc.GetUserProfile(c.Request.Context(), targetID, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *UserHandler) UpdateProfile(c *gin.Context) {
	var userDTO dto.UserDTO
	if err := c.ShouldBind(&userDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&userDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.userSvc.UpdateUserInfo(c.Request.Context(), userID, &userDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) ChangePassword(c *gin.Context) {
	var pwdDTO dto.ChangePasswordDTO
	if err := c.ShouldBind(&pwdDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.userSvc.UpdatePassword(c.Request.Context(), userID, &pwdDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetUserMomentPosts 指定用户发布的动态帖
func (s *UserHandler) GetUserMomentPosts(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || targetID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerID := c.GetUint64("user_id")

	posts, err := s.postSvc.GetUserMomentPosts(c.Request.Context(), targetID, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// GetUserTeamPosts 指定用户发布的组队帖
func (s *UserHandler) GetUserTeamPosts(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || targetID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	posts, err := s.teamSvc.GetUserTeamPosts(c.Request.Context(), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// GetLikedPosts 当前用户点赞过的帖子，动态帖和组队帖并列返回
func (s *UserHandler) GetLikedPosts(c *gin.Context) {
	userID := c.GetUint64("user_id")

	momentPosts, err := s.postSvc.GetLikedMomentPosts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	teamPosts, err := s.teamSvc.GetLikedTeamPosts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"dynamic_posts":       momentPosts,
		"team_activity_posts": teamPosts,
	})
}

// GetJoinedTeams 当前用户加入的队伍
func (s *UserHandler) GetJoinedTeams(c *gin.Context) {
	userID := c.GetUint64("user_id")
	posts, err := s.teamSvc.GetJoinedTeamPosts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}
