package services

import "errors"

// Domain errors ที่ handlers map เป็น HTTP status ด้วย errors.Is
//
// ErrNotFound ครอบทั้ง "ไม่มีจริง" และ "ไม่ใช่เจ้าของ" โดยตั้งใจ
// เพื่อไม่ให้ caller แยกได้ว่า resource มีอยู่หรือไม่
var (
	ErrNotFound          = errors.New("resource not found")
	ErrSlugTaken         = errors.New("slug already taken")
	ErrCategoryInUse     = errors.New("category is referenced by articles")
	ErrDuplicateReply    = errors.New("author already replied to this comment")
	ErrThreadTooDeep     = errors.New("comment thread depth limit reached")
	ErrNotPublisher      = errors.New("account cannot publish articles")
	ErrTooManyCategories = errors.New("article allows a single category")
	ErrEmailTaken        = errors.New("email already exists")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrInvalidLogin      = errors.New("invalid username or password")
	ErrAccountDisabled   = errors.New("account is disabled")
	ErrFileTooLarge      = errors.New("file exceeds the upload size limit")
	ErrUnsupportedMedia  = errors.New("unsupported media type")
)
