package domain

var MessageFailedUpdateOrder = "failed to update order"

type UpdateOrderRequest struct {
	Status *string `json:"status" validate:"omitempty,min=1"`
}
