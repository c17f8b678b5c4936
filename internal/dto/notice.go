package dto

type NoticeDto struct {
	Title     string `json:"title"`
	Content   string `json:"content" binding:"required"`
	Important bool   `json:"important"`
}
