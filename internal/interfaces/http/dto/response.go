package dto

// ErrorResponse is the body returned for every failed request
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// NewErrorResponse creates an error response body
func NewErrorResponse(code, message, requestID string) ErrorResponse {
	return ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: requestID,
	}
}

// CountResponse wraps a scalar count aggregate
type CountResponse struct {
	Count int64 `json:"count"`
}

// RevenueResponse wraps the total sales revenue aggregate
type RevenueResponse struct {
	Revenue float64 `json:"revenue"`
}

// TotalResponse wraps the total expenses aggregate
type TotalResponse struct {
	Total float64 `json:"total"`
}
