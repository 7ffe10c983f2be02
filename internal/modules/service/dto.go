package service

type SendForServiceRequest struct {
	ServiceType string `json:"service_type" binding:"required"`
	Note        string `json:"note"`
}

type MarkDoneRequest struct {
	Comment string `json:"comment"`
}
