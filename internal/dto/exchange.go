package dto

// ExchangeRatesResponse carries the TCMB selling rates effective for the
// requested date (falling back to the previous working day).
type ExchangeRatesResponse struct {
	USD  float64 `json:"usd"`
	EUR  float64 `json:"eur"`
	Date string  `json:"date"` // "02.01.2006", the day the rates were published
}
