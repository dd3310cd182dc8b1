package domain

// ErrorKind categorizes why a Hood.de call did not produce a definitive success.
type ErrorKind string

const (
	// KindNone marks a successful outcome.
	KindNone ErrorKind = ""

	// Transport failures. These are safe to retry.
	KindTimeout    ErrorKind = "timeout"
	KindConnection ErrorKind = "connection"
	KindTLS        ErrorKind = "tls"
	KindHTTPStatus ErrorKind = "http_status"

	// Malformed responses.
	KindHTMLResponse ErrorKind = "html_response"
	KindParseError   ErrorKind = "parse_error"

	// Protocol level failures.
	KindGlobalError     ErrorKind = "global_error"
	KindMissingResponse ErrorKind = "missing_response"
	KindMissingItem     ErrorKind = "missing_item"
	KindRemoteStatus    ErrorKind = "remote_status"

	// KindValidation marks a request rejected before it was sent.
	KindValidation ErrorKind = "validation"
)

// Retryable reports whether the failure happened in transport and may succeed on retry.
func (k ErrorKind) Retryable() bool {
	switch k {
	case KindTimeout, KindConnection, KindTLS, KindHTTPStatus:
		return true
	default:
		return false
	}
}

// Label is the value used in metrics and logs.
func (k ErrorKind) Label() string {
	if k == KindNone {
		return "success"
	}
	return string(k)
}

// CallResult carries the verdict shared by every Hood.de call.
type CallResult struct {
	// Success is the verdict after the success policy has been applied.
	Success bool `json:"success"`
	// Kind is KindNone on success and the failure category otherwise.
	Kind ErrorKind `json:"error_kind,omitempty"`
	// Error is the human readable failure text, verbatim from Hood.de when it supplied one.
	Error string `json:"error,omitempty"`
	// RawResponse is the untouched response body, kept for audit.
	RawResponse string `json:"raw_response,omitempty"`
}

// Failed builds a failed CallResult.
func Failed(kind ErrorKind, msg, raw string) CallResult {
	return CallResult{Kind: kind, Error: msg, RawResponse: raw}
}

// UploadOutcome is the result of a single item submission (insert, validate, update, delete).
type UploadOutcome struct {
	CallResult
	// AlreadyExists is set when Hood.de answered "not approved", which means a duplicate listing.
	AlreadyExists bool   `json:"already_exists,omitempty"`
	ItemID        string `json:"item_id,omitempty"`
	ReferenceID   string `json:"reference_id,omitempty"`
	Status        string `json:"status,omitempty"`
	Cost          string `json:"cost,omitempty"`
	Message       string `json:"message,omitempty"`
}

// BatchOutcome is the result of a multi-item update or delete.
type BatchOutcome struct {
	CallResult
	Items []UploadOutcome `json:"items"`
}

// ItemListEntry is one row of an itemList answer.
type ItemListEntry struct {
	ItemID    string `json:"item_id"`
	RecordSet string `json:"record_set,omitempty"`
}

// ItemListResult is a page of the seller's items.
type ItemListResult struct {
	CallResult
	TotalRecords int             `json:"total_records"`
	Items        []ItemListEntry `json:"items"`
}

// ItemStatusEntry describes one item returned by itemStatus or itemDetail.
type ItemStatusEntry struct {
	ItemID       string      `json:"item_id"`
	ItemName     string      `json:"item_name,omitempty"`
	Description  string      `json:"description,omitempty"`
	Price        string      `json:"price,omitempty"`
	Quantity     string      `json:"quantity,omitempty"`
	Condition    string      `json:"condition,omitempty"`
	Manufacturer string      `json:"manufacturer,omitempty"`
	Weight       string      `json:"weight,omitempty"`
	CategoryID   string      `json:"category_id,omitempty"`
	CategoryName string      `json:"category_name,omitempty"`
	StartDate    string      `json:"start_date,omitempty"`
	EndDate      string      `json:"end_date,omitempty"`
	Duration     string      `json:"duration,omitempty"`
	Status       string      `json:"status,omitempty"`
	Views        string      `json:"views,omitempty"`
	Bids         string      `json:"bids,omitempty"`
	Images       []string    `json:"images,omitempty"`
	Properties   []NameValue `json:"properties,omitempty"`
}

// ItemStatusResult is the answer to itemStatus and itemDetail.
type ItemStatusResult struct {
	CallResult
	Items []ItemStatusEntry `json:"items"`
}

// Category is a node in the Hood.de or shop category tree.
type Category struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ParentID      string `json:"parent_id,omitempty"`
	ChildCount    int    `json:"child_count"`
	InsertProduct bool   `json:"insert_product"`
}

// CategoryResult is the answer to categoriesBrowse and shopCategories.
type CategoryResult struct {
	CallResult
	Categories []Category `json:"categories"`
}

// ConnectionState is the verdict of the connection probe.
type ConnectionState string

const (
	ConnectionConnected       ConnectionState = "connected"
	ConnectionHTMLResponse    ConnectionState = "html_response"
	ConnectionAPIError        ConnectionState = "api_error"
	ConnectionInvalidResponse ConnectionState = "invalid_response"
	ConnectionParseError      ConnectionState = "parse_error"
	ConnectionHTTPError       ConnectionState = "http_error"
	ConnectionTimeout         ConnectionState = "timeout"
	ConnectionError           ConnectionState = "connection_error"
	ConnectionSSLError        ConnectionState = "ssl_error"
)

// ConnectionStatus reports whether Hood.de is reachable with the configured credentials.
type ConnectionStatus struct {
	State      ConnectionState `json:"status"`
	Connected  bool            `json:"connected"`
	Message    string          `json:"message,omitempty"`
	HTTPStatus int             `json:"http_status,omitempty"`
	Excerpt    string          `json:"response_excerpt,omitempty"`
}
