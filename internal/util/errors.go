package util

import "errors"

var (
	ErrTextbookNotFound     = errors.New("教材不存在")
	ErrScheduleNotFound     = errors.New("学习计划不存在")
	ErrExamNotFound         = errors.New("考试不存在")
	ErrUniversityNotFound   = errors.New("大学不存在")
	ErrInvalidDate          = errors.New("日期格式必须为 yyyy-MM-dd")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)
