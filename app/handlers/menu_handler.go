package handlers

import (
	"net/http"

	"github.com/JadeHarbert/CourseProject/app/helpers"
	"github.com/JadeHarbert/CourseProject/app/models/other"
	"github.com/JadeHarbert/CourseProject/app/services"
	"github.com/JadeHarbert/CourseProject/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type MenuHandler struct {
	render    *render.Render
	validator *validator.Validate
	menuSvc   *services.MenuService
	sessions  sessions.SessionStore
}

func NewMenuHandler(r *render.Render, v *validator.Validate, menuSvc *services.MenuService, store sessions.SessionStore) *MenuHandler {
	return &MenuHandler{
		render:    r,
		validator: v,
		menuSvc:   menuSvc,
		sessions:  store,
	}
}

type FilterForm struct {
	Filter  string `form:"filter" validate:"required,choice=Choices"`
	Choices []string
}

type MenuPageData struct {
	other.BasePageData
	Filter   string
	Choices  []string
	Sections []services.MenuSection
	Errors   map[string]string
}

func (h *MenuHandler) Menu(w http.ResponseWriter, r *http.Request) {
	data := &MenuPageData{
		BasePageData: helpers.GetBaseData(r, "Menu"),
		Errors:       make(map[string]string),
	}

	filter := h.sessions.GetMenuFilter(r)
	if filter == "" {
		filter = services.FilterAll
	}

	if r.Method == http.MethodPost {
		if submitted, ok := h.parseFilter(w, r, data); ok {
			filter = submitted
		} else {
			filter = services.FilterAll
		}
	}

	view, err := h.menuSvc.BuildMenu(r.Context(), filter)
	if err != nil {
		zap.L().Error("Menu: failed to build menu", zap.String("filter", filter), zap.Error(err))
		data.Message = "The menu is unavailable right now."
		data.MessageStatus = "error"
		h.html(w, http.StatusInternalServerError, data)
		return
	}

	data.Filter = view.Filter
	data.Choices = view.Choices
	data.Sections = view.Sections
	h.html(w, http.StatusOK, data)
}

func (h *MenuHandler) parseFilter(w http.ResponseWriter, r *http.Request, data *MenuPageData) (string, bool) {
	if err := r.ParseForm(); err != nil {
		zap.L().Warn("Menu: error parsing form", zap.Error(err))
		return "", false
	}

	choices, err := h.menuSvc.FilterChoices(r.Context())
	if err != nil {
		zap.L().Error("Menu: failed to load filter choices", zap.Error(err))
		return "", false
	}

	form := FilterForm{
		Filter:  r.PostFormValue("filter"),
		Choices: choices,
	}
	if err := h.validator.Struct(&form); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			data.Errors = helpers.FormatValidationErrors(validationErrors)
		}
		return "", false
	}

	if err := h.sessions.SetMenuFilter(w, r, form.Filter); err != nil {
		zap.L().Warn("Menu: failed to remember filter", zap.Error(err))
	}
	return form.Filter, true
}

func (h *MenuHandler) html(w http.ResponseWriter, status int, data *MenuPageData) {
	if err := h.render.HTML(w, status, "menu", data); err != nil {
		zap.L().Error("Menu: failed to render page", zap.Error(err))
	}
}
