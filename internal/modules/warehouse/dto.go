package warehouse

type AddItemRequest struct {
	Name      string `json:"name" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
	DateState string `json:"date_state" validate:"required"`
	Comment   string `json:"comment"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

type BulkDeleteRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}
