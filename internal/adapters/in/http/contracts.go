package http

// Request and response contracts for the dispatch API. The wire format keeps
// snake_case field names and the envelope shapes of the original service
// contract: bulk imports arrive under "data", single entities return under
// "data", errors return under "error".

// CourierPayload is the wire representation of a courier profile.
type CourierPayload struct {
	CourierID    int64    `json:"courier_id"`
	CourierType  string   `json:"courier_type"`
	Regions      []int64  `json:"regions"`
	WorkingHours []string `json:"working_hours"`
	Rating       *float64 `json:"rating,omitempty"`
	Earnings     *int64   `json:"earnings,omitempty"`
}

// PostCouriersRequest is the bulk courier import envelope.
type PostCouriersRequest struct {
	Data []CourierPayload `json:"data"`
}

// CourierIDPayload carries a single imported courier id.
type CourierIDPayload struct {
	ID int64 `json:"id"`
}

// PostCouriersResponse lists the ids accepted by a bulk courier import.
type PostCouriersResponse struct {
	Couriers []CourierIDPayload `json:"couriers"`
}

// PatchCourierRequest is a partial courier update. A field left out of the
// request body stays nil and leaves the stored value untouched.
type PatchCourierRequest struct {
	CourierType  *string  `json:"courier_type"`
	Regions      []int64  `json:"regions"`
	WorkingHours []string `json:"working_hours"`
	Earnings     *int64   `json:"earnings"`
}

// CourierResponse wraps a single courier profile.
type CourierResponse struct {
	Data CourierPayload `json:"data"`
}

// OrderPayload is the wire representation of an order.
type OrderPayload struct {
	OrderID       int64    `json:"order_id"`
	Weight        float64  `json:"weight"`
	Region        int64    `json:"region"`
	DeliveryHours []string `json:"delivery_hours"`
}

// PostOrdersRequest is the bulk order import envelope.
type PostOrdersRequest struct {
	Data []OrderPayload `json:"data"`
}

// OrderIDPayload carries a single imported order id.
type OrderIDPayload struct {
	ID int64 `json:"id"`
}

// PostOrdersResponse lists the ids accepted by a bulk order import.
type PostOrdersResponse struct {
	Orders []OrderIDPayload `json:"orders"`
}

// ErrorPayload describes a failed request.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the error envelope returned for every non-2xx status.
type ErrorResponse struct {
	Error ErrorPayload `json:"error"`
}
