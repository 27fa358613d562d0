package repository

import (
	"context"

	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageQuery 分页过滤查询参数。Filters 是稀疏条件集：
// 零值(空串/0/nil)表示"该条件不生效"，不会被当成匹配值下推；
// int8 例外，见 PruneFilters。
type PageQuery struct {
	Page    int
	Limit   int
	Filters map[string]interface{}
}

// Page 统一分页结果
type Page[T any] struct {
	List        []T   `json:"list"`
	PageSize    int   `json:"pageSize"`
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

// Normalize 补齐默认值
func (q *PageQuery) Normalize() {
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
}

// PruneFilters 去掉零值条件，返回真正生效的过滤集。
// int8 不剪：status 档位里 0 是合法取值(封禁/驳回)，调用方想跳过
// status 过滤时根本不放进 Filters。
func PruneFilters(filters map[string]interface{}) map[string]interface{} {
	pruned := make(map[string]interface{}, len(filters))
	for k, v := range filters {
		if v == nil {
			continue
		}
		switch val := v.(type) {
		case string:
			if val == "" {
				continue
			}
		case int:
			if val == 0 {
				continue
			}
		case int64:
			if val == 0 {
				continue
			}
		case uint64:
			if val == 0 {
				continue
			}
		case float64:
			if val == 0 {
				continue
			}
		}
		pruned[k] = v
	}
	return pruned
}

// TotalPages 向上取整
func TotalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((totalCount + int64(limit) - 1) / int64(limit))
}

// PaginateModel 对单表执行"同条件先计数后取页"的查询，
// 计数与取数共享同一 WHERE，按 created_at 倒序。
// 两条语句之间不加事务，页间一致性不做保证。
func PaginateModel[T any](ctx context.Context, db *gorm.DB, query PageQuery) (*Page[T], error) {
	query.Normalize()
	filters := PruneFilters(query.Filters)

	var m T
	base := db.WithContext(ctx).Model(&m)
	for field, value := range filters {
		base = base.Where(field+" = ?", value)
	}

	var totalCount int64
	if err := base.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return nil, err
	}

	list := make([]T, 0, query.Limit)
	err := base.Session(&gorm.Session{}).
		Order("created_at desc").
		Limit(query.Limit).
		Offset((query.Page - 1) * query.Limit).
		Find(&list).Error
	if err != nil {
		return nil, err
	}

	return &Page[T]{
		List:        list,
		PageSize:    query.Limit,
		TotalCount:  totalCount,
		TotalPages:  TotalPages(totalCount, query.Limit),
		CurrentPage: query.Page,
	}, nil
}

// EmptyPage 构造一页空结果，短路查询时使用
func EmptyPage[T any](page, limit int) *Page[T] {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Page[T]{
		List:        []T{},
		PageSize:    limit,
		TotalCount:  0,
		TotalPages:  0,
		CurrentPage: page,
	}
}
