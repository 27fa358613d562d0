package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageQueryNormalize(t *testing.T) {
	q := PageQuery{}
	q.Normalize()
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)

	q = PageQuery{Page: -3, Limit: 0}
	q.Normalize()
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)

	q = PageQuery{Page: 4, Limit: 25}
	q.Normalize()
	assert.Equal(t, 4, q.Page)
	assert.Equal(t, 25, q.Limit)
}

// 稀疏过滤集：零值条件不生效
func TestPruneFilters(t *testing.T) {
	pruned := PruneFilters(map[string]interface{}{
		"status":   int8(1),
		"type":     "",
		"user_id":  uint64(0),
		"theme_id": uint64(7),
		"keyword":  "mountain",
		"nothing":  nil,
	})

	assert.Len(t, pruned, 3)
	assert.Equal(t, int8(1), pruned["status"])
	assert.Equal(t, uint64(7), pruned["theme_id"])
	assert.Equal(t, "mountain", pruned["keyword"])
	assert.NotContains(t, pruned, "type")
	assert.NotContains(t, pruned, "user_id")
	assert.NotContains(t, pruned, "nothing")
}

// status=0 是封禁/驳回档位，必须能下推成过滤条件
func TestPruneFilters_KeepsZeroStatus(t *testing.T) {
	pruned := PruneFilters(map[string]interface{}{
		"status":  int8(0),
		"user_id": uint64(0),
	})

	assert.Len(t, pruned, 1)
	assert.Equal(t, int8(0), pruned["status"])
}

func TestPruneFilters_Empty(t *testing.T) {
	assert.Empty(t, PruneFilters(nil))
	assert.Empty(t, PruneFilters(map[string]interface{}{}))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 5, TotalPages(41, 10))
	assert.Equal(t, 0, TotalPages(100, 0))
}

func TestEmptyPage(t *testing.T) {
	page := EmptyPage[*struct{}](3, 20)
	assert.NotNil(t, page.List)
	assert.Empty(t, page.List)
	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, 20, page.PageSize)
	assert.Zero(t, page.TotalCount)
	assert.Zero(t, page.TotalPages)

	// 非法入参回退到默认值
	page = EmptyPage[*struct{}](0, -1)
	assert.Equal(t, DefaultPage, page.CurrentPage)
	assert.Equal(t, DefaultLimit, page.PageSize)
}
