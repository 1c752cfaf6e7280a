package config

import (
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/miekg/dns"
	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/internet-reloader/src/internal/utils"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "max":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "http_url_or_empty":
		return "must be an http:// or https:// URL with a host, or empty"
	case "hostport_or_empty":
		return "must be in format 'host:port' with a valid port, or empty"
	case "dns_name_or_empty":
		return "must be a valid domain name or empty"
	case "argv":
		return "must be empty or start with a non-empty program name, with every {{ closed by }}"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	FieldPath string // Dot-notation field path (e.g., "probe.timeout_ms")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	if err := validate.RegisterValidation("http_url_or_empty", validateHTTPURLOrEmpty); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("hostport_or_empty", validateHostPortOrEmpty); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("dns_name_or_empty", validateDNSNameOrEmpty); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("argv", validateArgv); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: http(s) URL with a host, or empty
func validateHTTPURLOrEmpty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Custom validator: host:port format or empty
func validateHostPortOrEmpty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, port, err := net.SplitHostPort(value)
	if err != nil {
		return false
	}
	return utils.IsValidPort(port)
}

// Custom validator: domain name or empty
func validateDNSNameOrEmpty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := dns.IsDomainName(value)
	return ok
}

// Custom validator: hook command line with well-formed {{placeholders}}
func validateArgv(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice || field.Len() == 0 {
		return true
	}
	if strings.TrimSpace(field.Index(0).String()) == "" {
		return false
	}
	for i := 0; i < field.Len(); i++ {
		arg := field.Index(i).String()
		if !strings.Contains(arg, "{{") {
			continue
		}
		if _, err := fasttemplate.NewTemplate(arg, "{{", "}}"); err != nil {
			return false
		}
	}
	return true
}
