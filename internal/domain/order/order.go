package order

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const orderTimeLayout = "02.01.2006 15:04:05"

// Course is one purchased course line on an order.
type Course struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

// Order is an incoming shop order, posted by the checkout when a purchase
// completes.
type Order struct {
	Name       string    `json:"name" validate:"required"`
	Email      string    `json:"email" validate:"required,email"`
	CreatedAt  time.Time `json:"createdAt" validate:"required"`
	TotalPrice float64   `json:"totalPrice" validate:"gte=0"`
	Courses    []Course  `json:"courses" validate:"dive"`
}

// Message renders the order as the announcement text published to the
// notification channel.
func (o *Order) Message() string {
	courseParts := make([]string, 0, len(o.Courses))
	for _, c := range o.Courses {
		courseParts = append(courseParts, c.Name+" "+formatPrice(c.Price))
	}

	var b strings.Builder
	b.WriteString("**Uusi tilaus!**\n")
	fmt.Fprintf(&b, "**Tilausaika:** %s\n", o.CreatedAt.Format(orderTimeLayout))
	fmt.Fprintf(&b, "**Tilatut kurssit:** %s\n", strings.Join(courseParts, ", "))
	fmt.Fprintf(&b, "**Kokonaissumma:** %s\n", formatPrice(o.TotalPrice))
	fmt.Fprintf(&b, "**Tilaaja:** %s\n", o.Name)
	fmt.Fprintf(&b, "**Email:** %s", o.Email)
	return b.String()
}

// formatPrice renders a price with two decimals and a comma separator, the
// way the shop displays Finnish prices.
func formatPrice(p float64) string {
	return strings.Replace(strconv.FormatFloat(p, 'f', 2, 64), ".", ",", 1)
}
