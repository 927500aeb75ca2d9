package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
	"github.com/miner1qaz-ops/Mochi/pkg/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hexAddrRe = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hexaddr", validateHexAddr)
	}
}

// validateHexAddr accepts exactly 64 hex characters (a 32-byte value).
func validateHexAddr(fl validator.FieldLevel) bool {
	return hexAddrRe.MatchString(fl.Field().String())
}

// Addr converts a validated 64-hex string into a domain address.
func Addr(s string) (domain.Address, error) {
	a, err := domain.ParseAddress(s)
	if err != nil {
		return domain.Address{}, apperror.Validation(err.Error())
	}
	return a, nil
}

// OptAddr converts an optional 64-hex string; nil stays nil.
func OptAddr(s *string) (*domain.Address, error) {
	if s == nil {
		return nil, nil
	}
	a, err := Addr(*s)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Addrs converts a slice of 64-hex strings.
func Addrs(ss []string) ([]domain.Address, error) {
	out := make([]domain.Address, len(ss))
	for i, s := range ss {
		a, err := Addr(s)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// Hash32 converts a validated 64-hex string into a 32-byte hash.
func Hash32(s string) ([32]byte, error) {
	a, err := Addr(s)
	if err != nil {
		return [32]byte{}, err
	}
	return [32]byte(a), nil
}

// ParseCurrency maps a currency name onto the domain enum. Accepted values
// are "NATIVE" and "TOKEN", case-insensitive.
func ParseCurrency(s string) (domain.Currency, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NATIVE":
		return domain.CurrencyNative, nil
	case "TOKEN":
		return domain.CurrencyToken, nil
	default:
		return 0, apperror.Validation("currency must be NATIVE or TOKEN")
	}
}

// AddrString renders an optional address for a response body.
func AddrString(a *domain.Address) *string {
	if a == nil {
		return nil
	}
	s := a.String()
	return &s
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
