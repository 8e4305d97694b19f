package response_models

type InitializePaymentResponse struct {
	Reference   string `json:"reference"`
	CheckoutURL string `json:"checkoutUrl"`
	Amount      int64  `json:"amount"`
}

type PaymentHistoryEntry struct {
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
	Date      string `json:"date"`
}
