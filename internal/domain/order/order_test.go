package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_Message(t *testing.T) {
	o := &Order{
		Name:       "Teemu Testaaja",
		Email:      "teemu.testaaja@testaamo.fi",
		CreatedAt:  time.Date(2024, time.January, 3, 10, 15, 0, 0, time.UTC),
		TotalPrice: 59.9,
		Courses: []Course{
			{Name: "Vuosikurssi", Price: 49.9},
			{Name: "Bonuskurssi", Price: 10},
		},
	}

	expected := "**Uusi tilaus!**\n" +
		"**Tilausaika:** 03.01.2024 10:15:00\n" +
		"**Tilatut kurssit:** Vuosikurssi 49,90, Bonuskurssi 10,00\n" +
		"**Kokonaissumma:** 59,90\n" +
		"**Tilaaja:** Teemu Testaaja\n" +
		"**Email:** teemu.testaaja@testaamo.fi"
	assert.Equal(t, expected, o.Message())
}

func TestOrder_MessageWithoutCourses(t *testing.T) {
	o := &Order{
		Name:      "Teemu Testaaja",
		Email:     "teemu.testaaja@testaamo.fi",
		CreatedAt: time.Date(2024, time.January, 3, 10, 15, 0, 0, time.UTC),
	}

	msg := o.Message()

	assert.Contains(t, msg, "**Tilatut kurssit:** \n")
	assert.Contains(t, msg, "**Kokonaissumma:** 0,00")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "49,90", formatPrice(49.9))
	assert.Equal(t, "10,00", formatPrice(10))
	assert.Equal(t, "0,00", formatPrice(0))
	assert.Equal(t, "1234,56", formatPrice(1234.56)) // no thousands grouping
}
