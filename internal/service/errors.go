package service

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrUserBan             = errors.New("用户已被封禁")
	ErrUserUsernameExist   = errors.New("用户名已存在")
	ErrPasswordIncorrect   = errors.New("密码错误")
	ErrAdminNotFound       = errors.New("管理员不存在")
	ErrAdminUsernameExist  = errors.New("管理员用户名已存在")
	ErrPostNotFound        = errors.New("帖子不存在")
	ErrCommentNotFound     = errors.New("评论不存在或无权删除")
	ErrThemeNotFound       = errors.New("主题不存在")
	ErrTagNotFound         = errors.New("标签不存在")
	ErrTagNameExist        = errors.New("标签已存在")
	ErrNoticeNotFound      = errors.New("系统公告不存在")
	ErrUserFollowExist     = errors.New("用户已关注")
	ErrUserFollowSelf      = errors.New("用户不能关注自己")
	ErrAlreadyJoined       = errors.New("已加入该队伍")
	ErrNotJoined           = errors.New("未加入该队伍")
	ErrTeamFull            = errors.New("队伍人数已满")
	ErrRecommendExist      = errors.New("帖子已在推荐位")
	ErrRecommendNotFound   = errors.New("推荐记录不存在")
	ErrTargetUserInvalid   = errors.New("目标用户无效")
	ErrFileNotSupported    = errors.New("不支持的文件类型")
	ErrFileNotExist        = errors.New("文件不存在")
	UnauthorizedError      = errors.New("权限不足")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrUserNotFound:       NotFound,
	ErrUserBan:            Unauthorized,
	ErrUserUsernameExist:  BadRequest,
	ErrPasswordIncorrect:  Unauthorized,
	ErrAdminNotFound:      NotFound,
	ErrAdminUsernameExist: BadRequest,
	ErrPostNotFound:       NotFound,
	ErrCommentNotFound:    Forbidden,
	ErrThemeNotFound:      NotFound,
	ErrTagNotFound:        NotFound,
	ErrTagNameExist:       BadRequest,
	ErrNoticeNotFound:     NotFound,
	ErrUserFollowExist:    BadRequest,
	ErrUserFollowSelf:     BadRequest,
	ErrAlreadyJoined:      BadRequest,
	ErrNotJoined:          BadRequest,
	ErrTeamFull:           BadRequest,
	ErrRecommendExist:     BadRequest,
	ErrRecommendNotFound:  NotFound,
	ErrTargetUserInvalid:  BadRequest,
	ErrFileNotSupported:   BadRequest,
	ErrFileNotExist:       NotFound,
	UnauthorizedError:     Unauthorized,
	UnExpectedError:       InternalServerError,
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}
