package errors

import "errors"

// ================= 业务领域错误定义 =================
// 所有业务逻辑相关的错误统一在此定义，避免跨包重复定义

// ErrRecordNotFound 记录不存在错误
// 当尝试操作一个不存在于数据库中的记录时返回此错误
var ErrRecordNotFound = errors.New("record not found in database")

// ErrAlreadySubscribed 重复订阅错误
// 当邮箱已处于订阅状态时再次订阅返回此错误
var ErrAlreadySubscribed = errors.New("email is already subscribed")

// ErrUnauthorized 无权限错误
// 当操作者没有管理员角色时返回此错误
var ErrUnauthorized = errors.New("operator is not authorized")

// ErrInvalidPatch 合并补丁无效错误
// 当 PATCH 请求的 merge patch 无法解析或应用时返回此错误
var ErrInvalidPatch = errors.New("invalid merge patch")
