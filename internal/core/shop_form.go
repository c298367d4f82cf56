package core

import (
	"net/url"
	"time"

	db "github.com/JonMunkholm/storefront/internal/database"
	"github.com/jackc/pgx/v5/pgtype"
)

// Shop form field names, as posted by the first registration step.
const (
	FieldShopName       = "shopName"
	FieldIndustry       = "industry"
	FieldDescription    = "description"
	FieldEstablished    = "established"
	FieldPrefecture     = "prefecture"
	FieldCity           = "city"
	FieldStreetAddress  = "streetAddress"
	FieldPhone          = "phone"
	FieldEmail          = "email"
	FieldOpeningTime    = "openingTime"
	FieldClosingTime    = "closingTime"
	FieldRegularHoliday = "regularHoliday"
	FieldParking        = "parking"
	FieldWebsiteURL     = "websiteUrl"
	FieldInstagramURL   = "instagramUrl"
	FieldXURL           = "xUrl"
	FieldAnnouncement   = "announcement"
)

// ShopFormFields lists every field the shop form reads, in form order.
var ShopFormFields = []string{
	FieldShopName, FieldIndustry, FieldDescription, FieldEstablished,
	FieldPrefecture, FieldCity, FieldStreetAddress, FieldPhone, FieldEmail,
	FieldOpeningTime, FieldClosingTime, FieldRegularHoliday, FieldParking,
	FieldWebsiteURL, FieldInstagramURL, FieldXURL, FieldAnnouncement,
}

var requiredShopFields = []string{
	FieldShopName, FieldIndustry, FieldDescription, FieldPrefecture,
	FieldCity, FieldStreetAddress, FieldOpeningTime, FieldClosingTime,
}

// ParseShopForm coerces a submitted shop form into insert parameters.
// Blank optional fields become NULL and an unregistered industry is filed
// under FallbackIndustry. All problems are returned together;
// the params are only meaningful when the returned errors are empty.
func ParseShopForm(form url.Values, now time.Time) (db.CreateStoreParams, ValidationErrors) {
	var errs ValidationErrors
	get := func(name string) string { return CleanValue(form.Get(name)) }

	for _, name := range requiredShopFields {
		if get(name) == "" {
			errs = append(errs, ValidationError{Field: name, Message: "required field is empty"})
		}
	}

	params := db.CreateStoreParams{
		ShopName:       get(FieldShopName),
		Industry:       get(FieldIndustry),
		Description:    get(FieldDescription),
		Prefecture:     get(FieldPrefecture),
		City:           get(FieldCity),
		StreetAddress:  get(FieldStreetAddress),
		Phone:          ToPgText(NarrowDigits(get(FieldPhone))),
		Email:          ToPgText(get(FieldEmail)),
		OpeningTime:    NarrowDigits(get(FieldOpeningTime)),
		ClosingTime:    NarrowDigits(get(FieldClosingTime)),
		RegularHoliday: ToPgText(get(FieldRegularHoliday)),
		Parking:        ToPgText(get(FieldParking)),
		WebsiteUrl:     ToPgText(get(FieldWebsiteURL)),
		InstagramUrl:   ToPgText(get(FieldInstagramURL)),
		XUrl:           ToPgText(get(FieldXURL)),
		Announcement:   ToPgText(get(FieldAnnouncement)),
	}

	if params.Industry != "" {
		params.Industry = IndustryFor(params.Industry).Tag
	}

	established, err := ParseOptionalInt4(form.Get(FieldEstablished))
	if err != nil {
		errs = append(errs, ValidationError{
			Field:   FieldEstablished,
			Value:   get(FieldEstablished),
			Message: "invalid year: enter a four-digit year",
		})
	} else if established.Valid {
		if err := validateYear(established.Int32, now); err != nil {
			errs = append(errs, ValidationError{Field: FieldEstablished, Value: get(FieldEstablished), Message: err.Error()})
		}
	}
	params.Established = established

	if params.Prefecture != "" {
		if canonical, ok := NormalizePrefecture(params.Prefecture); ok {
			params.Prefecture = canonical
		} else {
			errs = append(errs, ValidationError{
				Field:   FieldPrefecture,
				Value:   params.Prefecture,
				Message: "must be one of the 47 prefectures",
			})
		}
	}

	for _, f := range []struct {
		name  string
		value string
	}{
		{FieldOpeningTime, params.OpeningTime},
		{FieldClosingTime, params.ClosingTime},
	} {
		if f.value == "" {
			continue
		}
		if err := validateTime(f.value); err != nil {
			errs = append(errs, ValidationError{Field: f.name, Value: f.value, Message: err.Error()})
		}
	}

	if params.Email.Valid {
		if err := validateEmail(params.Email.String); err != nil {
			errs = append(errs, ValidationError{Field: FieldEmail, Value: params.Email.String, Message: err.Error()})
		}
	}

	if params.Parking.Valid {
		if err := validateOneOf(params.Parking.String, ParkingOptions); err != nil {
			errs = append(errs, ValidationError{Field: FieldParking, Value: params.Parking.String, Message: err.Error()})
		}
	}

	for _, f := range []struct {
		name  string
		value pgtype.Text
	}{
		{FieldWebsiteURL, params.WebsiteUrl},
		{FieldInstagramURL, params.InstagramUrl},
		{FieldXURL, params.XUrl},
	} {
		if !f.value.Valid {
			continue
		}
		if err := validateURL(f.value.String); err != nil {
			errs = append(errs, ValidationError{Field: f.name, Value: f.value.String, Message: err.Error()})
		}
	}

	return params, errs
}
