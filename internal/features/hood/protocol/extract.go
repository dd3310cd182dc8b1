package protocol

import (
	"strings"

	"hood-sync/internal/features/hood/domain"
)

func itemStatusEntry(el *Node) domain.ItemStatusEntry {
	e := domain.ItemStatusEntry{
		ItemID:       el.ChildText("itemID"),
		ItemName:     el.ChildText("itemName"),
		Description:  el.ChildText("description"),
		Price:        el.ChildText("price"),
		Quantity:     el.ChildText("quantity"),
		Condition:    el.ChildText("condition"),
		Manufacturer: el.ChildText("manufacturer"),
		Weight:       el.ChildText("weight"),
		CategoryID:   el.ChildText("categoryID"),
		CategoryName: el.ChildText("categoryName"),
		StartDate:    el.ChildText("startDate"),
		EndDate:      el.ChildText("endDate"),
		Duration:     firstNonEmpty(el.ChildText("duration"), el.ChildText("durationInDays")),
		Status:       el.ChildText("status"),
		Views:        el.ChildText("views"),
		Bids:         el.ChildText("bids"),
	}

	if images := el.Child("images"); images != nil {
		for _, u := range images.ChildrenNamed("imageURL") {
			if u.Text() != "" {
				e.Images = append(e.Images, u.Text())
			}
		}
		for _, img := range images.ChildrenNamed("image") {
			if u := img.ChildText("imageURL"); u != "" {
				e.Images = append(e.Images, u)
			}
		}
	}

	e.Properties = nameValueList(el.Child("productProperties"))
	return e
}

func nameValueList(parent *Node) []domain.NameValue {
	var out []domain.NameValue
	for _, nv := range parent.ChildrenNamed("nameValueList") {
		name := nv.ChildText("name")
		if name == "" {
			continue
		}
		out = append(out, domain.NameValue{Name: name, Value: nv.ChildText("value")})
	}
	return out
}

func party(el *Node) domain.Party {
	return domain.Party{
		Company:         el.ChildText("company"),
		CompanyOwner:    el.ChildText("companyOwner"),
		AccountName:     el.ChildText("accountName"),
		Email:           el.ChildText("email"),
		Salutation:      el.ChildText("salutation"),
		FirstName:       el.ChildText("firstName"),
		LastName:        el.ChildText("lastName"),
		Comment:         el.ChildText("comment"),
		Address:         el.ChildText("address"),
		City:            el.ChildText("city"),
		Zip:             el.ChildText("zip"),
		Phone:           el.ChildText("phone"),
		Country:         el.ChildText("country"),
		CountryTwoDigit: el.ChildText("countryTwoDigit"),
	}
}

func remoteOrder(el *Node) domain.RemoteOrder {
	d := el.Child("details")

	o := domain.RemoteOrder{
		OrderID:   firstNonEmpty(d.ChildText("orderID"), el.ChildText("orderID")),
		OrderDate: d.ChildText("date"),
		Quantity:  atoi(d.ChildText("quantity")),

		Buyer:       party(el.Child("buyer")),
		ShipAddress: party(el.Child("shipAddress")),

		Total:         atof(d.ChildText("price")),
		Discount:      atof(d.ChildText("discount")),
		ShippingCost:  atof(d.ChildText("shipCost")),
		Tax:           atof(d.ChildText("tax")),
		TaxIncluded:   truthy(d.ChildText("taxIncluded")),
		TaxTotalValue: atof(d.ChildText("taxTotalValue")),

		PaymentProvider:      d.ChildText("paymentProvider"),
		PaymentTypeCode:      d.ChildText("paymentTypeCode"),
		PaymentTransactionID: d.ChildText("paymentTransactionID"),
		PaymentStatus:        d.ChildText("paymentStatus"),
		PaymentStatusCode:    d.ChildText("paymentStatusCode"),
		PaymentDate:          d.ChildText("paymentDate"),

		ShipMethod:         d.ChildText("shipMethod"),
		ShipMethodCode:     d.ChildText("shipMethodCode"),
		ShippingStatus:     d.ChildText("shippingStatus"),
		ShippingStatusCode: d.ChildText("shippingStatusCode"),
		ShippedDate:        d.ChildText("shippedDate"),

		BuyerStatus:        d.ChildText("orderStatusBuyer"),
		BuyerActionCode:    d.ChildText("orderStatusActionBuyer"),
		SellerStatus:       d.ChildText("orderStatusSeller"),
		SellerActionCode:   d.ChildText("orderStatusActionSeller"),
		Comments:           d.ChildText("comments"),
		ProductOptionLabel: d.ChildText("productOption"),

		Items: []domain.RemoteOrderItem{},
	}

	if pi := el.Child("paymentInfo"); pi != nil {
		o.PaymentInfo = &domain.PaymentInfo{
			Method:        pi.ChildText("paymentMethod"),
			Status:        pi.ChildText("paymentStatus"),
			Date:          pi.ChildText("paymentDate"),
			TransactionID: pi.ChildText("transactionID"),
			Amount:        pi.ChildText("paymentAmount"),
			Currency:      pi.ChildText("currency"),
		}
	}

	for _, it := range el.Path("orderItems").ChildrenNamed("item") {
		item := domain.RemoteOrderItem{
			ItemID:     it.ChildText("itemID"),
			Title:      it.ChildText("prodName"),
			ItemNumber: it.ChildText("itemNumber"),
			EAN:        it.ChildText("ean"),
			ISBN:       it.ChildText("isbn"),
			MPN:        it.ChildText("mpn"),
			Quantity:   atoi(it.ChildText("quantity")),
			Price:      atof(it.ChildText("price")),
			Weight:     atof(it.ChildText("weight")),
			SalesTax:   atof(it.ChildText("salesTax")),
		}
		if opt := it.Child("productOption"); opt != nil {
			item.Variant = variantDetails(opt)
		}
		o.Items = append(o.Items, item)
	}

	return o
}

// variantDetails flattens a purchased productOption into name/value pairs.
func variantDetails(opt *Node) map[string]string {
	out := map[string]string{}
	for _, nv := range nameValueList(opt.Child("optionDetails")) {
		out[nv.Name] = nv.Value
	}
	for _, c := range opt.Children {
		if c.Name() != "optionDetails" && c.Text() != "" {
			out[c.Name()] = c.Text()
		}
	}
	if len(out) == 0 && opt.Text() != "" {
		out["label"] = opt.Text()
	}
	return out
}

func category(el *Node) domain.Category {
	return domain.Category{
		ID:            firstNonEmpty(el.ChildText("categoryID"), el.Attr("id")),
		Name:          firstNonEmpty(el.ChildText("categoryName"), el.Attr("name")),
		ParentID:      el.ChildText("parentID"),
		ChildCount:    atoi(el.ChildText("childCount")),
		InsertProduct: truthy(el.ChildText("insertProduct")),
	}
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "ja":
		return true
	default:
		return false
	}
}
