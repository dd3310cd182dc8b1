package domain

// Party is the buyer or the shipping recipient of an order.
type Party struct {
	Company         string `json:"company,omitempty"`
	CompanyOwner    string `json:"company_owner,omitempty"`
	AccountName     string `json:"account_name,omitempty"`
	Email           string `json:"email,omitempty"`
	Salutation      string `json:"salutation,omitempty"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Comment         string `json:"comment,omitempty"`
	Address         string `json:"address,omitempty"`
	City            string `json:"city,omitempty"`
	Zip             string `json:"zip,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Country         string `json:"country,omitempty"`
	CountryTwoDigit string `json:"country_two_digit,omitempty"`
}

// RemoteOrderItem is a line item as reported by orderList.
type RemoteOrderItem struct {
	ItemID     string  `json:"item_id"`
	Title      string  `json:"title"`
	ItemNumber string  `json:"item_number,omitempty"`
	EAN        string  `json:"ean,omitempty"`
	ISBN       string  `json:"isbn,omitempty"`
	MPN        string  `json:"mpn,omitempty"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Weight     float64 `json:"weight,omitempty"`
	SalesTax   float64 `json:"sales_tax,omitempty"`
	// Variant is the raw productOption detail of the purchased variant.
	Variant map[string]string `json:"variant,omitempty"`
}

// RemoteOrder is an order as read back from Hood.de. Every sync produces fresh values.
type RemoteOrder struct {
	OrderID   string `json:"order_id"`
	OrderDate string `json:"order_date,omitempty"`
	Quantity  int    `json:"quantity"`

	Buyer       Party `json:"buyer"`
	ShipAddress Party `json:"ship_address"`

	// Total is the order amount reported in details/price.
	Total         float64 `json:"total"`
	Discount      float64 `json:"discount"`
	ShippingCost  float64 `json:"shipping_cost"`
	Tax           float64 `json:"tax"`
	TaxIncluded   bool    `json:"tax_included"`
	TaxTotalValue float64 `json:"tax_total_value"`

	PaymentProvider      string       `json:"payment_provider,omitempty"`
	PaymentTypeCode      string       `json:"payment_type_code,omitempty"`
	PaymentTransactionID string       `json:"payment_transaction_id,omitempty"`
	PaymentStatus        string       `json:"payment_status,omitempty"`
	PaymentStatusCode    string       `json:"payment_status_code,omitempty"`
	PaymentDate          string       `json:"payment_date,omitempty"`
	PaymentInfo          *PaymentInfo `json:"payment_info,omitempty"`

	ShipMethod         string `json:"ship_method,omitempty"`
	ShipMethodCode     string `json:"ship_method_code,omitempty"`
	ShippingStatus     string `json:"shipping_status,omitempty"`
	ShippingStatusCode string `json:"shipping_status_code,omitempty"`
	ShippedDate        string `json:"shipped_date,omitempty"`

	BuyerStatus        string `json:"buyer_status,omitempty"`
	BuyerActionCode    string `json:"buyer_action_code,omitempty"`
	SellerStatus       string `json:"seller_status,omitempty"`
	SellerActionCode   string `json:"seller_action_code,omitempty"`
	Comments           string `json:"comments,omitempty"`
	ProductOptionLabel string `json:"product_option,omitempty"`

	Items []RemoteOrderItem `json:"items"`
}

// Subtotal sums the line items.
func (o RemoteOrder) Subtotal() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// PaymentInfo is the optional paymentInfo block of an order.
type PaymentInfo struct {
	Method        string `json:"method,omitempty"`
	Status        string `json:"status,omitempty"`
	Date          string `json:"date,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
	Amount        string `json:"amount,omitempty"`
	Currency      string `json:"currency,omitempty"`
}

// OrderListResult is the answer to orderList.
type OrderListResult struct {
	CallResult
	Orders []RemoteOrder `json:"orders"`
}
