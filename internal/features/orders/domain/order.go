package domain

import (
	"encoding/json"
	"strings"
	"time"

	hood "hood-sync/internal/features/hood/domain"

	"gorm.io/datatypes"
)

// OrderStatus represents the local state of a marketplace order.
type OrderStatus string

const (
	// OrderStatusNew indicates the order was placed but nothing happened yet.
	OrderStatusNew OrderStatus = "new"
	// OrderStatusPaid indicates the buyer paid.
	OrderStatusPaid OrderStatus = "paid"
	// OrderStatusShipped indicates the parcel was handed to the carrier.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered indicates the buyer received the parcel.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled indicates either party cancelled.
	OrderStatusCancelled OrderStatus = "cancelled"
	// OrderStatusReturned indicates the goods came back.
	OrderStatusReturned OrderStatus = "returned"
	// OrderStatusRefunded indicates the buyer was refunded.
	OrderStatusRefunded OrderStatus = "refunded"
)

// DeriveStatus maps the marketplace status codes to a local status. Rules are evaluated in
// order and the first match wins; payment outranks cancellation.
func DeriveStatus(buyerAction, sellerAction, shippingCode string) OrderStatus {
	buyer := strings.ToLower(buyerAction)
	seller := strings.ToLower(sellerAction)
	shipping := strings.ToLower(shippingCode)

	switch {
	case paid(buyer) && paid(seller):
		return OrderStatusPaid
	case paid(buyer):
		return OrderStatusPaid
	case strings.Contains(buyer, "cancel") || strings.Contains(seller, "cancel"):
		return OrderStatusCancelled
	case strings.Contains(buyer, "refund"):
		return OrderStatusRefunded
	case strings.Contains(shipping, "shipped"):
		return OrderStatusShipped
	case strings.Contains(shipping, "received") || strings.Contains(shipping, "delivered"):
		return OrderStatusDelivered
	default:
		return OrderStatusNew
	}
}

// negatedPrefixes mark codes such as "unpaid" or "notPayed" that mention payment without
// confirming it. "no" also covers "not".
var negatedPrefixes = []string{"un", "no"}

func paid(code string) bool {
	code = strings.TrimSpace(code)
	for _, prefix := range negatedPrefixes {
		if strings.HasPrefix(code, prefix) {
			return false
		}
	}
	return strings.Contains(code, "payed") || strings.Contains(code, "paid")
}

// LocalOrder is the persisted copy of a marketplace order.
type LocalOrder struct {
	// ID is the local primary key.
	ID uint `gorm:"primaryKey" json:"id"`
	// RemoteOrderID is the marketplace order id and the reconciliation key.
	RemoteOrderID string `gorm:"column:remote_order_id;size:64;not null;uniqueIndex" json:"remote_order_id"`
	// Status is derived from the marketplace status codes on every sync.
	Status OrderStatus `gorm:"size:20;not null;index" json:"status"`
	// OrderDate is the order timestamp as reported by the marketplace.
	OrderDate string `gorm:"size:32" json:"order_date"`

	BuyerAccount string `gorm:"size:128" json:"buyer_account"`
	BuyerEmail   string `gorm:"size:255;index" json:"buyer_email"`
	BuyerName    string `gorm:"size:255" json:"buyer_name"`
	BuyerPhone   string `gorm:"size:64" json:"buyer_phone"`

	ShipName    string `gorm:"size:255" json:"ship_name"`
	ShipCompany string `gorm:"size:255" json:"ship_company"`
	ShipAddress string `gorm:"size:255" json:"ship_address"`
	ShipCity    string `gorm:"size:128" json:"ship_city"`
	ShipZip     string `gorm:"size:32" json:"ship_zip"`
	ShipCountry string `gorm:"size:64" json:"ship_country"`

	// Subtotal is the sum of the line items.
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shipping_cost"`
	TaxAmount    float64 `json:"tax_amount"`
	Discount     float64 `json:"discount"`
	// TotalAmount is the order amount reported by the marketplace.
	TotalAmount float64 `json:"total_amount"`

	PaymentProvider      string `gorm:"size:64;index" json:"payment_provider"`
	PaymentTypeCode      string `gorm:"size:32" json:"payment_type_code"`
	PaymentTransactionID string `gorm:"size:128" json:"payment_transaction_id"`
	PaymentStatus        string `gorm:"size:64" json:"payment_status"`
	PaymentDate          string `gorm:"size:32" json:"payment_date"`

	ShipMethod     string `gorm:"size:64;index" json:"ship_method"`
	ShippingStatus string `gorm:"size:64" json:"shipping_status"`
	ShippedDate    string `gorm:"size:32" json:"shipped_date"`

	BuyerActionCode  string `gorm:"size:64" json:"buyer_action_code"`
	SellerActionCode string `gorm:"size:64" json:"seller_action_code"`

	Comments string `gorm:"type:text" json:"comments"`

	// LastSyncedAt is refreshed on every reconciliation, changed or not.
	LastSyncedAt time.Time `gorm:"not null" json:"last_synced_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Items are replaced wholesale on every sync.
	Items []LocalOrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// TableName specifies the table name.
func (LocalOrder) TableName() string {
	return "hood_orders"
}

// LocalOrderItem is one line of a LocalOrder.
type LocalOrderItem struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	OrderID      uint           `gorm:"not null;index" json:"-"`
	RemoteItemID string         `gorm:"size:64;index" json:"remote_item_id"`
	Title        string         `gorm:"size:255" json:"title"`
	SKU          string         `gorm:"size:128" json:"sku"`
	EAN          string         `gorm:"size:32" json:"ean"`
	ISBN         string         `gorm:"size:32" json:"isbn"`
	MPN          string         `gorm:"size:64" json:"mpn"`
	Quantity     int            `json:"quantity"`
	UnitPrice    float64        `json:"unit_price"`
	Weight       float64        `json:"weight"`
	SalesTax     float64        `json:"sales_tax"`
	Variant      datatypes.JSON `json:"variant,omitempty"`
}

// TableName specifies the table name.
func (LocalOrderItem) TableName() string {
	return "hood_order_items"
}

// FromRemote maps a marketplace order to its local shape. The caller owns ID and timestamps.
func FromRemote(o hood.RemoteOrder, syncedAt time.Time) LocalOrder {
	local := LocalOrder{
		RemoteOrderID: o.OrderID,
		Status:        DeriveStatus(o.BuyerActionCode, o.SellerActionCode, o.ShippingStatusCode),
		OrderDate:     o.OrderDate,

		BuyerAccount: o.Buyer.AccountName,
		BuyerEmail:   o.Buyer.Email,
		BuyerName:    fullName(o.Buyer),
		BuyerPhone:   o.Buyer.Phone,

		ShipName:    fullName(o.ShipAddress),
		ShipCompany: o.ShipAddress.Company,
		ShipAddress: o.ShipAddress.Address,
		ShipCity:    o.ShipAddress.City,
		ShipZip:     o.ShipAddress.Zip,
		ShipCountry: firstNonEmpty(o.ShipAddress.CountryTwoDigit, o.ShipAddress.Country),

		Subtotal:     o.Subtotal(),
		ShippingCost: o.ShippingCost,
		TaxAmount:    firstNonZero(o.TaxTotalValue, o.Tax),
		Discount:     o.Discount,
		TotalAmount:  o.Total,

		PaymentProvider:      o.PaymentProvider,
		PaymentTypeCode:      o.PaymentTypeCode,
		PaymentTransactionID: o.PaymentTransactionID,
		PaymentStatus:        o.PaymentStatus,
		PaymentDate:          o.PaymentDate,

		ShipMethod:     o.ShipMethod,
		ShippingStatus: firstNonEmpty(o.ShippingStatus, o.ShippingStatusCode),
		ShippedDate:    o.ShippedDate,

		BuyerActionCode:  o.BuyerActionCode,
		SellerActionCode: o.SellerActionCode,
		Comments:         o.Comments,

		LastSyncedAt: syncedAt,
	}

	local.Items = make([]LocalOrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		item := LocalOrderItem{
			RemoteItemID: it.ItemID,
			Title:        it.Title,
			SKU:          it.ItemNumber,
			EAN:          it.EAN,
			ISBN:         it.ISBN,
			MPN:          it.MPN,
			Quantity:     it.Quantity,
			UnitPrice:    it.Price,
			Weight:       it.Weight,
			SalesTax:     it.SalesTax,
		}
		if len(it.Variant) > 0 {
			if data, err := json.Marshal(it.Variant); err == nil {
				item.Variant = datatypes.JSON(data)
			}
		}
		local.Items = append(local.Items, item)
	}

	return local
}

// OrderSummary aggregates the locally stored orders.
type OrderSummary struct {
	TotalOrders       int64            `json:"total_orders"`
	TotalAmount       float64          `json:"total_amount"`
	ByStatus          map[string]int64 `json:"by_status"`
	ByPaymentProvider map[string]int64 `json:"by_payment_provider"`
	ByShipMethod      map[string]int64 `json:"by_ship_method"`
}

func fullName(p hood.Party) string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
