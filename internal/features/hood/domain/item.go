package domain

import "time"

// Function names understood by the Hood.de API.
const (
	FunctionItemInsert       = "itemInsert"
	FunctionItemUpdate       = "itemUpdate"
	FunctionItemValidate     = "itemValidate"
	FunctionItemDetail       = "itemDetail"
	FunctionItemDelete       = "itemDelete"
	FunctionItemList         = "itemList"
	FunctionItemStatus       = "itemStatus"
	FunctionOrderList        = "orderList"
	FunctionCategoriesBrowse = "categoriesBrowse"
	FunctionShopCategories   = "shopCategories"
)

// ItemMode is the listing format on Hood.de.
type ItemMode string

const (
	// ModeShopProduct is a fixed price shop listing.
	ModeShopProduct ItemMode = "shopProduct"
	// ModeClassic is an auction.
	ModeClassic ItemMode = "classic"
	// ModeBuyItNow is a fixed price marketplace offer.
	ModeBuyItNow ItemMode = "buyItNow"
)

// Normalize coerces unknown modes to shopProduct.
func (m ItemMode) Normalize() ItemMode {
	switch m {
	case ModeShopProduct, ModeClassic, ModeBuyItNow:
		return m
	default:
		return ModeShopProduct
	}
}

// AcceptsPayOptions reports whether payOptions are sent for this mode.
func (m ItemMode) AcceptsPayOptions() bool {
	n := m.Normalize()
	return n == ModeClassic || n == ModeBuyItNow
}

// Condition is the item condition vocabulary of Hood.de.
type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionLikeNew     Condition = "likeNew"
	ConditionVeryGood    Condition = "veryGood"
	ConditionAcceptable  Condition = "acceptable"
	ConditionUsedGood    Condition = "usedGood"
	ConditionRefurbished Condition = "refurbished"
	ConditionDefect      Condition = "defect"
)

// Normalize coerces unknown conditions to new.
func (c Condition) Normalize() Condition {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionVeryGood, ConditionAcceptable,
		ConditionUsedGood, ConditionRefurbished, ConditionDefect:
		return c
	default:
		return ConditionNew
	}
}

// PayOptions accepted by the API for classic and buyItNow listings.
var PayOptions = []string{
	"wireTransfer", "invoice", "cashOnDelivery", "cash",
	"paypal", "sofort", "amazon", "klarna",
}

// NameValue is one entry of a nameValueList.
type NameValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Image is a listing picture. A bare URL is sent as imageURL, a record carrying Base64 as
// imageBase64, and a URL with option details as a structured image bound to a variant.
type Image struct {
	URL     string      `json:"url,omitempty" validate:"required_without=Base64,omitempty,url"`
	Base64  string      `json:"base64,omitempty"`
	Options []NameValue `json:"options,omitempty"`
}

// ProductOption is one purchasable variant of a shop product.
type ProductOption struct {
	Price         float64     `json:"price" validate:"gte=0"`
	Quantity      int         `json:"quantity" validate:"gte=0"`
	ItemNumber    string      `json:"item_number,omitempty"`
	MPN           string      `json:"mpn,omitempty"`
	EAN           string      `json:"ean,omitempty"`
	PackagingSize string      `json:"packaging_size,omitempty"`
	Details       []NameValue `json:"details" validate:"min=1"`
}

// ShipMethod is a named shipping method with its cost.
type ShipMethod struct {
	Name string  `json:"name" validate:"required"`
	Cost float64 `json:"cost" validate:"gte=0"`
}

// ItemPayload is the outbound description of a marketplace listing.
type ItemPayload struct {
	// ItemID is the remote id; required for updates, ignored on insert.
	ItemID string `json:"item_id,omitempty"`
	// Mode is coerced to shopProduct when unknown.
	Mode ItemMode `json:"mode"`
	// CategoryID is the Hood.de category the item is listed in.
	CategoryID string `json:"category_id" validate:"required"`
	// Title is sent as CDATA.
	Title string `json:"title" validate:"required"`
	// Quantity defaults to 1 when zero.
	Quantity int `json:"quantity" validate:"gte=0"`
	// Condition is coerced to new when unknown.
	Condition Condition `json:"condition"`
	// Description is sent as CDATA and may contain HTML.
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	// PriceStart is the auction start price, only meaningful for classic.
	PriceStart   float64 `json:"price_start,omitempty" validate:"gte=0"`
	EAN          string  `json:"ean,omitempty"`
	MPN          string  `json:"mpn,omitempty"`
	Manufacturer string  `json:"manufacturer,omitempty"`
	Weight       float64 `json:"weight,omitempty" validate:"gte=0"`

	ShipMethods       []ShipMethod    `json:"ship_methods,omitempty" validate:"dive"`
	PayOptions        []string        `json:"pay_options,omitempty"`
	Images            []Image         `json:"images,omitempty" validate:"dive"`
	ProductOptions    []ProductOption `json:"product_options,omitempty" validate:"dive"`
	ProductProperties []NameValue     `json:"product_properties,omitempty"`

	// StartAt overrides the default start of one hour from now.
	StartAt        *time.Time `json:"start_at,omitempty"`
	DurationInDays int        `json:"duration_in_days,omitempty" validate:"gte=0"`
	AutoRenew      bool       `json:"auto_renew,omitempty"`

	EnergyLabelURL   string `json:"energy_label_url,omitempty" validate:"omitempty,url"`
	ProductInfoURL   string `json:"product_info_url,omitempty" validate:"omitempty,url"`
	ItemNumberUnique bool   `json:"item_number_unique,omitempty"`

	// Compliance attributes checked locally before upload; not sent as elements.
	EnergyEfficiencyClass string `json:"energy_efficiency_class,omitempty"`
	AgeRating             string `json:"age_rating,omitempty"`
}

// ItemListQuery selects a page of the seller's items.
type ItemListQuery struct {
	Status    string     `json:"status"`
	StartAt   int        `json:"start_at"`
	GroupSize int        `json:"group_size"`
	DateRange *DateRange `json:"date_range,omitempty"`
}

// DateRange is an inclusive date window. Type is only used by orderList.
type DateRange struct {
	Type  string    `json:"type,omitempty"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// OrderFilter selects orders for orderList.
type OrderFilter struct {
	DateRange *DateRange `json:"date_range,omitempty"`
	// ListMode is "details" (default) or "orderIDs".
	ListMode string `json:"list_mode,omitempty"`
	OrderID  string `json:"order_id,omitempty"`
}
