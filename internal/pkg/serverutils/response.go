package serverutils

// BaseResponse is the JSON envelope every endpoint returns.
type BaseResponse[T any] struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Status:  200,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(status int, message string) BaseResponse[any] {
	return BaseResponse[any]{
		Status:  status,
		Message: message,
	}
}
