package request

import "encoding/json"

// BillingPaymentCreateRequest is the swagger shape of the pay-milestone route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas; a bare Mercado Pago body without the envelope is accepted too.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
