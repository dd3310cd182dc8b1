package protocol

import (
	"strconv"
	"strings"

	"hood-sync/internal/features/hood/domain"
)

const alreadyExistsMessage = "Item already exists on Hood.de (status \"not approved\")"

// SuccessStatus applies the Hood.de success policy to an item status. Matching is exact:
// "success" and "not approved" succeed, the latter meaning the listing already exists.
// Any other non-empty status except "failed" and "error" is also treated as success, so
// "Failed" counts as success. An empty status is a failure.
func SuccessStatus(status string) (success, alreadyExists bool) {
	switch strings.TrimSpace(status) {
	case "success":
		return true, false
	case "not approved":
		return true, true
	case "", "failed", "error":
		return false, false
	default:
		return true, false
	}
}

// Envelope resolves the shared structure of every response: parse verdict, global error,
// and response container. ok is false when result holds a definitive failure.
func Envelope(p ParseOutcome, raw string) (container *Node, result domain.CallResult, ok bool) {
	switch p.Kind {
	case ParseHTML:
		msg := "Hood.de returned an HTML page instead of XML; check the API URL and credentials"
		if p.Title != "" {
			msg += " (" + p.Title + ")"
		}
		return nil, domain.Failed(domain.KindHTMLResponse, msg, raw), false
	case ParseFailed:
		msg := "could not parse response"
		if p.Err != nil {
			msg += ": " + p.Err.Error()
		}
		return nil, domain.Failed(domain.KindParseError, msg, raw), false
	}

	root := p.Root
	if text, found := GlobalError(root); found {
		return nil, domain.Failed(domain.KindGlobalError, text, raw), false
	}

	container = root
	if root.Name() != "response" {
		container = root.Find("response")
	}
	if container == nil {
		return nil, domain.Failed(domain.KindMissingResponse, "response element not found", raw), false
	}

	return container, domain.CallResult{Success: true, RawResponse: raw}, true
}

// GlobalError looks for a request-wide error anywhere in the document. Two shapes exist:
// a globalError element carrying the text, and <error>globalError</error> with an info sibling.
func GlobalError(root *Node) (string, bool) {
	if root == nil {
		return "", false
	}

	ge := root
	if root.Name() != "globalError" {
		ge = root.Find("globalError")
	}
	if ge != nil {
		text := ge.Text()
		if text == "" {
			text = ge.ChildText("info")
		}
		if text == "" {
			text = "global error"
		}
		return text, true
	}

	if root.Name() == "error" && root.Text() == "globalError" {
		return "global error", true
	}
	if parent := globalErrorParent(root); parent != nil {
		info := parent.ChildText("info")
		if info == "" {
			info = "global error"
		}
		return info, true
	}
	return "", false
}

// globalErrorParent returns the first element, in document order, holding an
// <error>globalError</error> child.
func globalErrorParent(n *Node) *Node {
	for _, e := range n.ChildrenNamed("error") {
		if e.Text() == "globalError" {
			return n
		}
	}
	for _, c := range n.Children {
		if found := globalErrorParent(c); found != nil {
			return found
		}
	}
	return nil
}

// InterpretItem reduces a single-item answer (insert, validate, update of one item) to an outcome.
func InterpretItem(p ParseOutcome, raw string) domain.UploadOutcome {
	container, result, ok := Envelope(p, raw)
	if !ok {
		return domain.UploadOutcome{CallResult: result}
	}

	item := itemElement(container)
	if item == nil {
		return domain.UploadOutcome{CallResult: domain.Failed(domain.KindMissingItem, "item element not found in response", raw)}
	}

	return itemOutcome(item, raw)
}

// InterpretBatch reduces a multi-item answer (itemUpdate, itemDelete). The batch succeeds
// only if every item succeeded.
func InterpretBatch(p ParseOutcome, raw string) domain.BatchOutcome {
	container, result, ok := Envelope(p, raw)
	if !ok {
		return domain.BatchOutcome{CallResult: result}
	}

	elements := itemElements(container)
	if len(elements) == 0 {
		return domain.BatchOutcome{CallResult: domain.Failed(domain.KindMissingItem, "item element not found in response", raw)}
	}

	out := domain.BatchOutcome{CallResult: result}
	var failed []string
	for _, el := range elements {
		o := itemOutcome(el, "")
		out.Items = append(out.Items, o)
		if !o.Success {
			failed = append(failed, firstNonEmpty(o.ItemID, "?")+": "+firstNonEmpty(o.Error, o.Message, o.Status))
		}
	}

	if len(failed) > 0 {
		out.Success = false
		out.Kind = domain.KindRemoteStatus
		out.Error = strings.Join(failed, "; ")
	}
	return out
}

func itemOutcome(item *Node, raw string) domain.UploadOutcome {
	o := domain.UploadOutcome{
		ReferenceID: item.ChildText("referenceID"),
		Status:      item.ChildText("status"),
		ItemID:      item.ChildText("itemID"),
		Cost:        firstNonEmpty(item.ChildText("costs"), item.ChildText("cost")),
		Message:     item.ChildText("message"),
	}
	o.RawResponse = raw
	itemError := firstNonEmpty(item.ChildText("itemError"), item.ChildText("error"))

	o.Success, o.AlreadyExists = SuccessStatus(o.Status)
	switch {
	case o.AlreadyExists:
		o.Message = firstNonEmpty(o.Message, alreadyExistsMessage)
		o.Error = itemError
	case o.Success:
		o.Error = itemError
	default:
		o.Kind = domain.KindRemoteStatus
		o.Error = firstNonEmpty(itemError, o.Message)
		if o.Error == "" {
			if o.Status == "" {
				o.Error = "response item has no status"
			} else {
				o.Error = "item status: " + o.Status
			}
		}
	}
	return o
}

// itemElement returns response/item, falling back to response/items/item.
func itemElement(container *Node) *Node {
	if item := container.Child("item"); item != nil {
		return item
	}
	return container.Path("items", "item")
}

func itemElements(container *Node) []*Node {
	if items := container.Child("items"); items != nil {
		if list := items.ChildrenNamed("item"); len(list) > 0 {
			return list
		}
	}
	return container.ChildrenNamed("item")
}

// InterpretItemList reduces an itemList answer.
func InterpretItemList(p ParseOutcome, raw string) domain.ItemListResult {
	container, result, ok := Envelope(p, raw)
	if !ok {
		return domain.ItemListResult{CallResult: result}
	}

	out := domain.ItemListResult{CallResult: result}
	out.TotalRecords = atoi(container.ChildText("totalRecords"))
	for _, el := range itemElements(container) {
		id := el.ChildText("itemID")
		if id == "" {
			continue
		}
		out.Items = append(out.Items, domain.ItemListEntry{ItemID: id, RecordSet: el.ChildText("recordSet")})
	}
	return out
}

// InterpretItemStatus reduces an itemStatus or itemDetail answer.
func InterpretItemStatus(p ParseOutcome, raw string) domain.ItemStatusResult {
	container, result, ok := Envelope(p, raw)
	if !ok {
		return domain.ItemStatusResult{CallResult: result}
	}

	out := domain.ItemStatusResult{CallResult: result}
	for _, el := range itemElements(container) {
		out.Items = append(out.Items, itemStatusEntry(el))
	}
	return out
}

// InterpretOrders reduces an orderList answer. No orders is an empty success.
func InterpretOrders(p ParseOutcome, raw string) domain.OrderListResult {
	container, result, ok := Envelope(p, raw)
	if !ok {
		return domain.OrderListResult{CallResult: result}
	}

	out := domain.OrderListResult{CallResult: result, Orders: []domain.RemoteOrder{}}
	for _, el := range container.FindAll("order") {
		out.Orders = append(out.Orders, remoteOrder(el))
	}
	return out
}

// InterpretCategories reduces a categoriesBrowse or shopCategories answer.
func InterpretCategories(p ParseOutcome, raw string) domain.CategoryResult {
	_, result, ok := Envelope(p, raw)
	if !ok {
		// Some category answers come without a response wrapper; they are still usable.
		if result.Kind != domain.KindMissingResponse || p.Root.Find("category") == nil {
			return domain.CategoryResult{CallResult: result}
		}
		result = domain.CallResult{Success: true, RawResponse: raw}
	}

	out := domain.CategoryResult{CallResult: result, Categories: []domain.Category{}}
	for _, el := range p.Root.FindAll("category") {
		c := category(el)
		if c.ID == "" && c.Name == "" {
			continue
		}
		out.Categories = append(out.Categories, c)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func atof(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
