package models

// Intended order statuses. The status field is deliberately left an open
// string at validation time, matching the behavior the frontend relies on;
// tightening it to a closed enum is a known gap (see DESIGN.md).
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusFulfilled = "fulfilled"
	OrderStatusCancelled = "cancelled"
)

// Customer holds the buyer details embedded in an order.
type Customer struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
	Notes   string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// OrderItem is one line of an order. Title and unit price are denormalized
// copies taken from the catalog at order time; product_id is not checked
// against the product collection.
type OrderItem struct {
	ProductID       string  `json:"product_id" bson:"product_id"`
	Title           string  `json:"title" bson:"title"`
	Quantity        int     `json:"quantity" bson:"quantity"`
	UnitPrice       float64 `json:"unit_price" bson:"unit_price"`
	Personalization string  `json:"personalization,omitempty" bson:"personalization,omitempty"`
}

// Order is a purchase record. TotalEUR is caller-supplied and is not
// recomputed from the items; see DESIGN.md.
type Order struct {
	Items    []OrderItem `json:"items" bson:"items"`
	Customer Customer    `json:"customer" bson:"customer"`
	TotalEUR float64     `json:"total_eur" bson:"total_eur"`
	Status   string      `json:"status" bson:"status"`
}

// CustomerInput is the customer block of a create-order request.
type CustomerInput struct {
	Name    *string `json:"name" binding:"required"`
	Email   *string `json:"email" binding:"required,email"`
	Phone   *string `json:"phone"`
	City    *string `json:"city"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// OrderItemInput is one item of a create-order request.
type OrderItemInput struct {
	ProductID       *string  `json:"product_id" binding:"required"`
	Title           *string  `json:"title" binding:"required"`
	Quantity        int      `json:"quantity" binding:"required,gte=1"`
	UnitPrice       *float64 `json:"unit_price" binding:"required,gte=0"`
	Personalization *string  `json:"personalization"`
}

// OrderInput is the create-order request body. An explicit empty items list
// is accepted; only an absent list is rejected.
type OrderInput struct {
	Items    []OrderItemInput `json:"items" binding:"required,dive"`
	Customer CustomerInput    `json:"customer" binding:"required"`
	TotalEUR *float64         `json:"total_eur" binding:"required,gte=0"`
	Status   *string          `json:"status"`
}

// ToOrder resolves defaults and returns the entity to persist.
func (in *OrderInput) ToOrder() Order {
	items := make([]OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, OrderItem{
			ProductID:       strValue(it.ProductID),
			Title:           strValue(it.Title),
			Quantity:        it.Quantity,
			UnitPrice:       floatValue(it.UnitPrice),
			Personalization: strValue(it.Personalization),
		})
	}

	status := strValue(in.Status)
	if status == "" {
		status = OrderStatusPending
	}

	return Order{
		Items: items,
		Customer: Customer{
			Name:    strValue(in.Customer.Name),
			Email:   strValue(in.Customer.Email),
			Phone:   strValue(in.Customer.Phone),
			City:    strValue(in.Customer.City),
			Address: strValue(in.Customer.Address),
			Notes:   strValue(in.Customer.Notes),
		},
		TotalEUR: floatValue(in.TotalEUR),
		Status:   status,
	}
}
