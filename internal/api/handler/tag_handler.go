package handler

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/pkg/util"
	"Wayfarer/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagSvc   service.TagService
	themeSvc service.ThemeService
}

func NewTagHandler(tagSvc service.TagService, themeSvc service.ThemeService) *TagHandler {
	return &TagHandler{
		tagSvc:   tagSvc,
		themeSvc: themeSvc,
	}
}

func (s *TagHandler) ListTags(c *gin.Context) {
	tags, err := s.tagSvc.ListTags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tags)
}

func (s *TagHandler) CreateTag(c *gin.Context) {
	var baseDTO dto.TagBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.tagSvc.CreateTag(c.Request.Context(), &baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TagHandler) UpdateTag(c *gin.Context) {
	tagID, err := strconv.ParseUint(c.Param("tag_id"), 10, 64)
	if err != nil || tagID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var baseDTO dto.TagBaseDTO
	if err = c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.tagSvc.UpdateTag(c.Request.Context(), tagID, &baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TagHandler) DeleteTag(c *gin.Context) {
	tagID, err := strconv.ParseUint(c.Param("tag_id"), 10, 64)
	if err != nil || tagID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.tagSvc.DeleteTag(c.Request.Context(), tagID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TagHandler) CreateTheme(c *gin.Context) {
	var baseDTO dto.ThemeBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.themeSvc.CreateTheme(c.Request.Context(), &baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TagHandler) UpdateTheme(c *gin.Context) {
	themeID, err := strconv.ParseUint(c.Param("theme_id"), 10, 64)
	if err != nil || themeID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var baseDTO dto.ThemeBaseDTO
	if err = c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.themeSvc.UpdateTheme(c.Request.Context(), themeID, &baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TagHandler) DeleteTheme(c *gin.Context) {
	themeID, err := strconv.ParseUint(c.Param("theme_id"), 10, 64)
	if err != nil || themeID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.themeSvc.DeleteTheme(c.Request.Context(), themeID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
