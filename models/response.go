package models

// Tipe respons generik untuk dokumentasi swagger.

type ErrorResponse struct {
	Error string `json:"error" example:"pesan kesalahan"`
}

type MessageResponse struct {
	Message string `json:"message" example:"berhasil"`
}

type LoginResponse struct {
	Message string `json:"message" example:"Login berhasil"`
	Token   string `json:"token" example:"v2.local.xxxxx"`
	User    User   `json:"user"`
}

type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Page       int64       `json:"page" example:"1"`
	Limit      int64       `json:"limit" example:"10"`
	TotalData  int64       `json:"total_data" example:"42"`
	TotalPages int64       `json:"total_pages" example:"5"`
}
