package handlers

import (
	"net/http"

	"github.com/JadeHarbert/CourseProject/app/helpers"
	"github.com/JadeHarbert/CourseProject/app/models/other"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type HomeHandler struct {
	render *render.Render
}

func NewHomeHandler(r *render.Render) *HomeHandler {
	return &HomeHandler{render: r}
}

type PageData struct {
	other.BasePageData
}

func (h *HomeHandler) page(w http.ResponseWriter, r *http.Request, status int, name, title string) {
	data := PageData{BasePageData: helpers.GetBaseData(r, title)}
	if err := h.render.HTML(w, status, name, data); err != nil {
		zap.L().Error("HomeHandler: failed to render page", zap.String("template", name), zap.Error(err))
	}
}

func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, "index", "")
}

func (h *HomeHandler) About(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, "about", "About")
}

func (h *HomeHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, "contact", "Contact")
}

func (h *HomeHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusNotFound, "errors/404", "Not Found")
}

func (h *HomeHandler) Forbidden(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusForbidden, "errors/403", "Forbidden")
}
