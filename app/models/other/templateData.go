package other

import (
	"html/template"
)

type NavLink struct {
	Name string
	URL  string
}

type BasePageData struct {
	Title         string
	CSRFField     template.HTML
	Message       string
	MessageStatus string
	CurrentPath   string
	IsAdminRoute  bool
	NavLinks      []NavLink
	RequestID     string
}
