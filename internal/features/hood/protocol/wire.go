package protocol

import "encoding/xml"

// cdata marshals its text inside a CDATA section. encoding/xml splits any "]]>" in the text.
type cdata struct {
	Text string `xml:",cdata"`
}

func newCDATA(s string) *cdata {
	if s == "" {
		return nil
	}
	return &cdata{Text: s}
}

type apiRequest struct {
	XMLName     xml.Name `xml:"api"`
	Type        string   `xml:"type,attr"`
	Version     string   `xml:"version,attr"`
	User        string   `xml:"user,attr"`
	Password    string   `xml:"password,attr"`
	Function    string   `xml:"function"`
	AccountName string   `xml:"accountName"`
	AccountPass string   `xml:"accountPass"`

	// itemList
	ItemStatus string `xml:"itemStatus,omitempty"`
	StartAt    int    `xml:"startAt,omitempty"`
	GroupSize  int    `xml:"groupSize,omitempty"`

	// itemList, orderList
	DateRange *wireDateRange `xml:"dateRange,omitempty"`

	// orderList
	ListMode string `xml:"listMode,omitempty"`
	OrderID  string `xml:"orderID,omitempty"`

	// categoriesBrowse; a pointer so the root category 0 is still emitted
	CategoryID *int `xml:"categoryID,omitempty"`

	// itemStatus
	DetailLevel string `xml:"detailLevel,omitempty"`

	Items *wireItems `xml:"items,omitempty"`
}

type wireDateRange struct {
	Type      string `xml:"type,omitempty"`
	StartDate string `xml:"startDate,omitempty"`
	EndDate   string `xml:"endDate,omitempty"`
}

type wireItems struct {
	Items []wireItem `xml:"item"`
}

type wireItem struct {
	ItemID      string `xml:"itemID,omitempty"`
	ItemMode    string `xml:"itemMode,omitempty"`
	CategoryID  string `xml:"categoryID,omitempty"`
	ItemName    *cdata `xml:"itemName,omitempty"`
	Quantity    int    `xml:"quantity,omitempty"`
	Condition   string `xml:"condition,omitempty"`
	Description *cdata `xml:"description,omitempty"`

	Price        string `xml:"price,omitempty"`
	PriceStart   string `xml:"priceStart,omitempty"`
	EAN          string `xml:"ean,omitempty"`
	MPN          string `xml:"mpn,omitempty"`
	Manufacturer string `xml:"manufacturer,omitempty"`
	Weight       string `xml:"weight,omitempty"`

	Images            *wireImages         `xml:"images,omitempty"`
	ProductOptions    *wireProductOptions `xml:"productOptions,omitempty"`
	ProductProperties *wireNameValues     `xml:"productProperties,omitempty"`
	PayOptions        *wirePayOptions     `xml:"payOptions,omitempty"`
	ShipMethods       *wireShipMethods    `xml:"shipmethods,omitempty"`

	StartDate      string `xml:"startDate,omitempty"`
	StartTime      string `xml:"startTime,omitempty"`
	DurationInDays int    `xml:"durationInDays,omitempty"`
	AutoRenew      string `xml:"autoRenew,omitempty"`

	ItemNumberUniqueFlag string `xml:"itemNumberUniqueFlag,omitempty"`
	EnergyLabelURL       string `xml:"energyLabelUrl,omitempty"`
	ProductInfoURL       string `xml:"productInfoUrl,omitempty"`
}

type wireImages struct {
	Entries []wireImage `xml:"image"`
}

// wireImage renders as imageURL, imageBase64 or image depending on XMLName.
type wireImage struct {
	XMLName       xml.Name
	Text          string          `xml:",chardata"`
	URL           string          `xml:"imageURL,omitempty"`
	OptionDetails *wireNameValues `xml:"optionDetails,omitempty"`
}

type wireProductOptions struct {
	Options []wireProductOption `xml:"productOption"`
}

type wireProductOption struct {
	OptionPrice      string          `xml:"optionPrice"`
	OptionQuantity   int             `xml:"optionQuantity"`
	OptionItemNumber string          `xml:"optionItemNumber,omitempty"`
	MPN              string          `xml:"mpn,omitempty"`
	EAN              string          `xml:"ean,omitempty"`
	PackagingSize    string          `xml:"PackagingSize,omitempty"`
	OptionDetails    *wireNameValues `xml:"optionDetails,omitempty"`
}

type wireNameValues struct {
	Entries []wireNameValue `xml:"nameValueList"`
}

type wireNameValue struct {
	Name  cdata `xml:"name"`
	Value cdata `xml:"value"`
}

type wirePayOptions struct {
	Options []string `xml:"option"`
}

type wireShipMethods struct {
	Methods []wireShipMethod `xml:"shipmethod"`
}

type wireShipMethod struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value"`
}
