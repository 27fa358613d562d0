package handler

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followSvc service.FollowService
	userSvc   service.UserService
}

func NewFollowHandler(followSvc service.FollowService, userSvc service.UserService) *FollowHandler {
	return &FollowHandler{
		followSvc: followSvc,
		userSvc:   userSvc,
	}
}

func (s *FollowHandler) FollowOrUnfollow(c *gin.Context) {
	var actionDTO dto.FollowActionDTO
	if err := c.ShouldBind(&actionDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	err := s.followSvc.FollowOrUnfollow(c.Request.Context(), userID, actionDTO.TargetUserID, actionDTO.Action)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FollowHandler) GetFollowings(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || targetID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	ids, err := s.followSvc.GetFollowingIDs(c.Request.Context(), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	cards, err := s.userSvc.GetUserCardsByIds(c.Request.Context(), ids)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, cardList(ids, cards))
}

func (s *FollowHandler) GetFollowers(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || targetID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	ids, err := s.followSvc.GetFollowerIDs(c.Request.Context(), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	cards, err := s.userSvc.GetUserCardsByIds(c.Request.Context(), ids)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, cardList(ids, cards))
}

func cardList(ids []uint64, cards map[uint64]*dto.UserCardDTO) []*dto.UserCardDTO {
	list := make([]*dto.UserCardDTO, 0, len(ids))
	for _, id := range ids {
		if card := cards[id]; card != nil {
			list = append(list, card)
		}
	}
	return list
}
