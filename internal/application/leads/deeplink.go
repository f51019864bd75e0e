package leads

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/steve-ongera/carsoko/internal/models"
)

// FormatPrice renders an amount with thousand separators and a currency
// prefix, e.g. "KES 1,250,000".
func FormatPrice(amount float64, currency string) string {
	digits := fmt.Sprintf("%d", int64(amount))
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if currency == "" {
		return b.String()
	}
	return currency + " " + b.String()
}

// WhatsAppLink substitutes the {car_year}, {car_brand}, {car_model} and
// {car_price} placeholders into the configured message template and wraps it
// in a wa.me URL. The car must carry its Brand and CarModel relations.
func WhatsAppLink(cfg *models.BusinessConfig, car *models.Car, currency string) (string, error) {
	if cfg == nil || car == nil {
		return "", errors.New("business config and car are required")
	}
	number := strings.NewReplacer("+", "", " ", "").Replace(cfg.WhatsAppNumber)
	if number == "" {
		return "", errors.New("no whatsapp number configured")
	}
	if car.Brand == nil || car.CarModel == nil {
		return "", errors.New("car is missing brand or model")
	}

	message := strings.NewReplacer(
		"{car_year}", fmt.Sprintf("%d", car.Year),
		"{car_brand}", car.Brand.Name,
		"{car_model}", car.CarModel.Name,
		"{car_price}", FormatPrice(car.Price, currency),
	).Replace(cfg.WhatsAppMessageTemplate)

	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message), nil
}
