package dto

type CompanyDto struct {
	Name           string `json:"name" binding:"required"`
	CEO            string `json:"ceo" binding:"required"`
	BusinessNumber string `json:"businessNumber" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Address        string `json:"address" binding:"required"`
}
