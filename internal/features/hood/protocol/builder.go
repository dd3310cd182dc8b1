package protocol

import (
	"encoding/xml"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"hood-sync/internal/features/hood/domain"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxUpdateItems is the itemUpdate batch limit.
	MaxUpdateItems = 5
	// MaxProperties is the number of productProperties entries Hood.de accepts.
	MaxProperties = 15
	// MaxPropertyLength is the maximum length of a property name or value.
	MaxPropertyLength = 30
	// MaxRunningGroupSize is the itemList page limit for running items.
	MaxRunningGroupSize = 20000
	// MaxGroupSize is the itemList page limit for every other status.
	MaxGroupSize = 5000

	hoodDate     = "02.01.2006"
	hoodTime     = "15:04"
	usDate       = "01/02/2006"
	apiVersion   = "2.0"
	apiType      = "public"
	xmlPreamble  = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	defaultStart = 1
)

var (
	itemStatuses   = []string{"sold", "unsuccessful", "running"}
	detailLevels   = []string{"image", "description"}
	dateRangeTypes = []string{"orderDate", "statusChange", "showAll"}
	listModes      = []string{"details", "orderIDs"}
)

// Credentials are the plaintext secrets; they are hashed on every request.
type Credentials struct {
	APIUser     string
	APIPassword string
	AccountName string
	AccountPass string
}

// Defaults are the soft defaults applied to listings that omit a value.
type Defaults struct {
	// ShipMethods are used when an item has none.
	ShipMethods []domain.ShipMethod
	// PayOptions replace the item's options when none of them is recognized.
	PayOptions []string
	// DurationInDays is used when an item has none.
	DurationInDays int
	// StartDelay is added to the current time when an item has no start.
	StartDelay time.Duration
}

// DefaultListingDefaults returns the defaults Hood.de sellers usually run with.
func DefaultListingDefaults() Defaults {
	return Defaults{
		ShipMethods: []domain.ShipMethod{
			{Name: "seeDesc_nat", Cost: 5.0},
			{Name: "DHLPacket_nat", Cost: 8.0},
		},
		PayOptions:     []string{"wireTransfer", "paypal"},
		DurationInDays: 7,
		StartDelay:     time.Hour,
	}
}

// Builder produces request documents for every supported Hood.de function.
type Builder struct {
	creds    Credentials
	defaults Defaults
	validate *validator.Validate
	now      func() time.Time
}

// NewBuilder creates a Builder. Zero value defaults are replaced by DefaultListingDefaults.
func NewBuilder(creds Credentials, defaults Defaults) *Builder {
	base := DefaultListingDefaults()
	if len(defaults.ShipMethods) == 0 {
		defaults.ShipMethods = base.ShipMethods
	}
	if len(defaults.PayOptions) == 0 {
		defaults.PayOptions = base.PayOptions
	}
	if defaults.DurationInDays == 0 {
		defaults.DurationInDays = base.DurationInDays
	}
	if defaults.StartDelay == 0 {
		defaults.StartDelay = base.StartDelay
	}

	return &Builder{
		creds:    creds,
		defaults: defaults,
		validate: validator.New(),
		now:      time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// ItemInsert builds an itemInsert request for one item.
func (b *Builder) ItemInsert(item domain.ItemPayload) ([]byte, error) {
	return b.singleListing(domain.FunctionItemInsert, item)
}

// ItemValidate builds an itemValidate request; Hood.de checks the item without listing it.
func (b *Builder) ItemValidate(item domain.ItemPayload) ([]byte, error) {
	return b.singleListing(domain.FunctionItemValidate, item)
}

func (b *Builder) singleListing(function string, item domain.ItemPayload) ([]byte, error) {
	if err := b.validate.Struct(item); err != nil {
		return nil, invalid(function, ErrInvalidItem, "%v", err)
	}

	req := b.request(function)
	req.Items = &wireItems{Items: []wireItem{b.listing(item)}}
	return encode(req)
}

// ItemUpdate builds an itemUpdate request. At most MaxUpdateItems items are allowed and
// every item must carry its remote id.
func (b *Builder) ItemUpdate(items []domain.ItemPayload) ([]byte, error) {
	fn := domain.FunctionItemUpdate
	if len(items) == 0 {
		return nil, invalid(fn, ErrNoItems, "")
	}
	if len(items) > MaxUpdateItems {
		return nil, invalid(fn, ErrTooManyItems, "%d given, at most %d allowed", len(items), MaxUpdateItems)
	}

	wire := make([]wireItem, 0, len(items))
	for i, item := range items {
		if strings.TrimSpace(item.ItemID) == "" {
			return nil, invalid(fn, ErrMissingItemID, "item %d", i)
		}
		if err := b.validate.StructExcept(item, "Title", "CategoryID"); err != nil {
			return nil, invalid(fn, ErrInvalidItem, "item %d: %v", i, err)
		}
		w := b.listing(item)
		w.ItemID = strings.TrimSpace(item.ItemID)
		wire = append(wire, w)
	}

	req := b.request(fn)
	req.Items = &wireItems{Items: wire}
	return encode(req)
}

// ItemDetail builds an itemDetail request.
func (b *Builder) ItemDetail(itemID string) ([]byte, error) {
	fn := domain.FunctionItemDetail
	items, err := idItems(fn, []string{itemID})
	if err != nil {
		return nil, err
	}

	req := b.request(fn)
	req.Items = items
	return encode(req)
}

// ItemDelete builds an itemDelete request for one or many items.
func (b *Builder) ItemDelete(itemIDs ...string) ([]byte, error) {
	fn := domain.FunctionItemDelete
	items, err := idItems(fn, itemIDs)
	if err != nil {
		return nil, err
	}

	req := b.request(fn)
	req.Items = items
	return encode(req)
}

// ItemList builds an itemList request. An oversized page is clamped, not rejected.
func (b *Builder) ItemList(q domain.ItemListQuery) ([]byte, error) {
	fn := domain.FunctionItemList
	status := q.Status
	if status == "" {
		status = "running"
	}
	if !slices.Contains(itemStatuses, status) {
		return nil, invalid(fn, ErrInvalidItemStatus, "%q", status)
	}

	req := b.request(fn)
	req.ItemStatus = status
	req.StartAt = q.StartAt
	if req.StartAt < 1 {
		req.StartAt = defaultStart
	}
	req.GroupSize = ClampGroupSize(status, q.GroupSize)

	if q.DateRange != nil {
		dr, err := dateRange(fn, *q.DateRange, false)
		if err != nil {
			return nil, err
		}
		req.DateRange = dr
	}

	return encode(req)
}

// ClampGroupSize bounds an itemList page size for the given status.
func ClampGroupSize(status string, size int) int {
	limit := MaxGroupSize
	if status == "running" {
		limit = MaxRunningGroupSize
	}
	switch {
	case size <= 0:
		return 100
	case size > limit:
		return limit
	default:
		return size
	}
}

// ItemStatus builds an itemStatus request. Unknown detail levels are rejected.
func (b *Builder) ItemStatus(itemIDs []string, levels []string) ([]byte, error) {
	fn := domain.FunctionItemStatus

	var clean []string
	for _, l := range levels {
		l = strings.TrimSpace(l)
		if !slices.Contains(detailLevels, l) {
			return nil, invalid(fn, ErrInvalidDetailLevel, "%q", l)
		}
		if !slices.Contains(clean, l) {
			clean = append(clean, l)
		}
	}

	items, err := idItems(fn, itemIDs)
	if err != nil {
		return nil, err
	}

	req := b.request(fn)
	req.DetailLevel = strings.Join(clean, ",")
	req.Items = items
	return encode(req)
}

// OrderList builds an orderList request.
func (b *Builder) OrderList(f domain.OrderFilter) ([]byte, error) {
	fn := domain.FunctionOrderList

	mode := f.ListMode
	if mode == "" {
		mode = "details"
	}
	if !slices.Contains(listModes, mode) {
		return nil, invalid(fn, ErrInvalidListMode, "%q", mode)
	}

	req := b.request(fn)
	if f.DateRange != nil {
		dr, err := dateRange(fn, *f.DateRange, true)
		if err != nil {
			return nil, err
		}
		req.DateRange = dr
	}
	req.ListMode = mode
	req.OrderID = strings.TrimSpace(f.OrderID)

	return encode(req)
}

// CategoriesBrowse builds a categoriesBrowse request; 0 is the root.
func (b *Builder) CategoriesBrowse(categoryID int) ([]byte, error) {
	req := b.request(domain.FunctionCategoriesBrowse)
	req.CategoryID = &categoryID
	return encode(req)
}

// ShopCategories builds a shopCategories request.
func (b *Builder) ShopCategories() ([]byte, error) {
	return encode(b.request(domain.FunctionShopCategories))
}

func (b *Builder) request(function string) *apiRequest {
	return &apiRequest{
		Type:        apiType,
		Version:     apiVersion,
		User:        b.creds.APIUser,
		Password:    Hash(b.creds.APIPassword),
		Function:    function,
		AccountName: b.creds.AccountName,
		AccountPass: Hash(b.creds.AccountPass),
	}
}

func (b *Builder) listing(item domain.ItemPayload) wireItem {
	mode := item.Mode.Normalize()

	quantity := item.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	start := b.now().Add(b.defaults.StartDelay)
	if item.StartAt != nil {
		start = *item.StartAt
	}

	duration := item.DurationInDays
	if duration <= 0 {
		duration = b.defaults.DurationInDays
	}

	w := wireItem{
		ItemMode:       string(mode),
		CategoryID:     strings.TrimSpace(item.CategoryID),
		ItemName:       newCDATA(item.Title),
		Quantity:       quantity,
		Condition:      string(item.Condition.Normalize()),
		Description:    newCDATA(item.Description),
		Price:          money(item.Price),
		EAN:            item.EAN,
		MPN:            item.MPN,
		Manufacturer:   item.Manufacturer,
		StartDate:      start.Format(hoodDate),
		StartTime:      start.Format(hoodTime),
		DurationInDays: duration,
		AutoRenew:      yesNo(item.AutoRenew),
		EnergyLabelURL: item.EnergyLabelURL,
		ProductInfoURL: item.ProductInfoURL,
	}

	if item.PriceStart > 0 {
		w.PriceStart = money(item.PriceStart)
	}
	if item.Weight > 0 {
		w.Weight = strconv.FormatFloat(item.Weight, 'f', -1, 64)
	}
	if item.ItemNumberUnique {
		w.ItemNumberUniqueFlag = "1"
	}

	w.Images = images(item.Images)
	w.ProductOptions = productOptions(item.ProductOptions)
	w.ProductProperties = nameValues(TruncateProperties(item.ProductProperties))

	if mode.AcceptsPayOptions() {
		w.PayOptions = &wirePayOptions{Options: b.payOptions(item.PayOptions)}
	}

	methods := item.ShipMethods
	if len(methods) == 0 {
		methods = b.defaults.ShipMethods
	}
	w.ShipMethods = &wireShipMethods{}
	for _, m := range methods {
		w.ShipMethods.Methods = append(w.ShipMethods.Methods, wireShipMethod{
			Name:  m.Name,
			Value: money(m.Cost),
		})
	}

	return w
}

func (b *Builder) payOptions(given []string) []string {
	var valid []string
	for _, o := range given {
		if slices.Contains(domain.PayOptions, o) && !slices.Contains(valid, o) {
			valid = append(valid, o)
		}
	}
	if len(valid) == 0 {
		return append([]string(nil), b.defaults.PayOptions...)
	}
	return valid
}

// TruncateProperties keeps the first MaxProperties entries, clips names and values to
// MaxPropertyLength runes and drops entries that end up empty.
func TruncateProperties(props []domain.NameValue) []domain.NameValue {
	if len(props) > MaxProperties {
		props = props[:MaxProperties]
	}

	out := make([]domain.NameValue, 0, len(props))
	for _, p := range props {
		name := clip(p.Name, MaxPropertyLength)
		value := clip(p.Value, MaxPropertyLength)
		if name == "" || value == "" {
			continue
		}
		out = append(out, domain.NameValue{Name: name, Value: value})
	}
	return out
}

func images(in []domain.Image) *wireImages {
	if len(in) == 0 {
		return nil
	}

	out := &wireImages{}
	for _, img := range in {
		switch {
		case img.Base64 != "":
			out.Entries = append(out.Entries, wireImage{XMLName: xml.Name{Local: "imageBase64"}, Text: img.Base64})
		case len(img.Options) > 0:
			out.Entries = append(out.Entries, wireImage{
				XMLName:       xml.Name{Local: "image"},
				URL:           img.URL,
				OptionDetails: nameValues(img.Options),
			})
		case img.URL != "":
			out.Entries = append(out.Entries, wireImage{XMLName: xml.Name{Local: "imageURL"}, Text: img.URL})
		}
	}
	if len(out.Entries) == 0 {
		return nil
	}
	return out
}

func productOptions(in []domain.ProductOption) *wireProductOptions {
	if len(in) == 0 {
		return nil
	}

	out := &wireProductOptions{}
	for _, o := range in {
		out.Options = append(out.Options, wireProductOption{
			OptionPrice:      money(o.Price),
			OptionQuantity:   o.Quantity,
			OptionItemNumber: o.ItemNumber,
			MPN:              o.MPN,
			EAN:              o.EAN,
			PackagingSize:    o.PackagingSize,
			OptionDetails:    nameValues(o.Details),
		})
	}
	return out
}

func nameValues(in []domain.NameValue) *wireNameValues {
	if len(in) == 0 {
		return nil
	}
	out := &wireNameValues{}
	for _, nv := range in {
		out.Entries = append(out.Entries, wireNameValue{
			Name:  cdata{Text: nv.Name},
			Value: cdata{Text: nv.Value},
		})
	}
	return out
}

func idItems(function string, ids []string) (*wireItems, error) {
	if len(ids) == 0 {
		return nil, invalid(function, ErrNoItems, "")
	}
	out := &wireItems{}
	for i, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, invalid(function, ErrMissingItemID, "position %d", i)
		}
		out.Items = append(out.Items, wireItem{ItemID: id})
	}
	return out, nil
}

func dateRange(function string, dr domain.DateRange, withType bool) (*wireDateRange, error) {
	if dr.Start.IsZero() || dr.End.IsZero() || dr.End.Before(dr.Start) {
		return nil, invalid(function, ErrInvalidDateRange, "%s - %s", dr.Start.Format(usDate), dr.End.Format(usDate))
	}

	out := &wireDateRange{
		StartDate: dr.Start.Format(usDate),
		EndDate:   dr.End.Format(usDate),
	}
	if withType {
		t := dr.Type
		if t == "" {
			t = "orderDate"
		}
		if !slices.Contains(dateRangeTypes, t) {
			return nil, invalid(function, ErrInvalidDateRange, "type %q", t)
		}
		out.Type = t
	}
	return out, nil
}

func encode(req *apiRequest) ([]byte, error) {
	body, err := xml.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", req.Function, err)
	}
	return append([]byte(xmlPreamble), body...), nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
