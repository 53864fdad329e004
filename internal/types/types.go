package types

// OperandsRequest is the body of every operation endpoint. Pointers let
// validation tell a missing operand from a zero one.
type OperandsRequest struct {
	A *float64 `json:"a" validate:"required"`
	B *float64 `json:"b" validate:"required"`
}

type ResultResponse struct {
	Result float64 `json:"result"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
