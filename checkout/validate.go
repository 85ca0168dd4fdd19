package checkout

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"food-ordering/models"
)

const (
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldAddress = "address"
)

var phoneRe = regexp.MustCompile(`^\d{10}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	return v
}

// FieldErrors maps a form field (name, phone, address) to its message.
type FieldErrors map[string]string

// ValidationError carries every failing field of the customer form.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid customer details: " + strings.Join(parts, "; ")
}

var messages = map[string]map[string]string{
	FieldName:    {"required": "Name is required"},
	FieldPhone:   {"required": "Phone number is required", "phone10": "Please enter a valid 10-digit phone number"},
	FieldAddress: {"required": "Delivery Address is required"},
}

// TrimCustomer strips surrounding whitespace from every field.
func TrimCustomer(c models.CustomerInfo) models.CustomerInfo {
	return models.CustomerInfo{
		Name:    strings.TrimSpace(c.Name),
		Phone:   strings.TrimSpace(c.Phone),
		Address: strings.TrimSpace(c.Address),
	}
}

// ValidateCustomer checks all fields and returns every failure. A nil map means valid.
func ValidateCustomer(c models.CustomerInfo) FieldErrors {
	c = TrimCustomer(c)
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"": err.Error()}
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()][fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		out[fe.Field()] = msg
	}
	return out
}
