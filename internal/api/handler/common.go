package handler

import (
	"Wayfarer/internal/model"
	"strconv"

	"github.com/gin-gonic/gin"
)

func getPagination(c *gin.Context) (int, int) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("page_size", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		page = 1
	}
	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil {
		pageSize = 10
	}
	return page, pageSize
}

// kindFromParam 路由里的帖子类型段，非法值返回 0
func kindFromParam(c *gin.Context) model.PostKind {
	switch c.Param("kind") {
	case "dynamic":
		return model.PostKindMoment
	case "team_activity":
		return model.PostKindTeam
	}
	return 0
}
