package helpers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JadeHarbert/CourseProject/app/models/other"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
)

type contextKey string

const (
	ContextKeyRequestID contextKey = "requestID"

	SiteTitle = "Dexter's Diner"
)

var NavLinks = []other.NavLink{
	{Name: "Home", URL: "/"},
	{Name: "Menu", URL: "/menu"},
	{Name: "About", URL: "/about"},
	{Name: "Contact", URL: "/contact"},
	{Name: "Admin", URL: "/admin"},
}

// GetBaseData fills the fields every page layout reads.
func GetBaseData(r *http.Request, title string) other.BasePageData {
	data := other.BasePageData{
		Title:        SiteTitle,
		CSRFField:    csrf.TemplateField(r),
		CurrentPath:  r.URL.Path,
		IsAdminRoute: strings.HasPrefix(r.URL.Path, "/admin"),
		NavLinks:     NavLinks,
	}
	if title != "" {
		data.Title = title + " | " + SiteTitle
	}
	if id, ok := r.Context().Value(ContextKeyRequestID).(string); ok {
		data.RequestID = id
	}

	data.MessageStatus = r.URL.Query().Get("status")
	data.Message = r.URL.Query().Get("message")

	return data
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		if i := strings.Index(field, "["); i >= 0 {
			field = field[:i]
		}
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "oneof", "choice":
			errorMessages[field] = fmt.Sprintf("%s is not a valid choice.", err.Field())
		case "numeric", "price":
			errorMessages[field] = fmt.Sprintf("%s must be a non-negative number.", err.Field())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s characters.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("%s failed the %s check.", err.Field(), err.Tag())
		}
	}
	return errorMessages
}
