package admin

import (
	"net/http"

	"github.com/JadeHarbert/CourseProject/app/helpers"
	"github.com/JadeHarbert/CourseProject/app/models"
	"github.com/JadeHarbert/CourseProject/app/models/other"
	"github.com/JadeHarbert/CourseProject/app/services"
	"github.com/JadeHarbert/CourseProject/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

const (
	ChangeAddItem    = "Add Item"
	ChangeDeleteItem = "Delete Item"

	// IntegrityError is what the add page reports for a duplicate item name.
	IntegrityError = "IntegrityError"
)

var changeChoices = []string{ChangeAddItem, ChangeDeleteItem}

type AdminHandler struct {
	render    *render.Render
	validator *validator.Validate
	itemSvc   *services.ItemService
	sessions  sessions.SessionStore
}

func NewAdminHandler(
	render *render.Render,
	validator *validator.Validate,
	itemSvc *services.ItemService,
	sessions sessions.SessionStore,
) *AdminHandler {
	return &AdminHandler{
		render:    render,
		validator: validator,
		itemSvc:   itemSvc,
		sessions:  sessions,
	}
}

type AdminForm struct {
	Change  string `form:"change" validate:"required,choice=Choices"`
	Choices []string
}

type AddItemForm struct {
	Name            string   `form:"name" validate:"required,max=64"`
	Price           string   `form:"price" validate:"required,price"`
	Category        string   `form:"category" validate:"required,choice=CategoryChoices"`
	Toppings        []string `form:"toppings" validate:"dive,choice=ToppingChoices"`
	CategoryChoices []string
	ToppingChoices  []string
}

type DeleteItemForm struct {
	Item        string `form:"item" validate:"required,choice=ItemChoices"`
	ItemChoices []string
}

type AdminPageData struct {
	other.BasePageData
	Form    *AdminForm
	Flashes []string
	Errors  map[string]string
}

// AdminItemPageData backs both the add and the delete page. When Submitted
// is false the form is shown, otherwise the outcome.
type AdminItemPageData struct {
	other.BasePageData
	AddForm      *AddItemForm
	DeleteForm   *DeleteItemForm
	Errors       map[string]string
	Submitted    bool
	IsSuccessful bool
	Error        string
	Item         *models.Item
}

func (h *AdminHandler) baseData(r *http.Request, title string) other.BasePageData {
	return helpers.GetBaseData(r, title)
}

func (h *AdminHandler) html(w http.ResponseWriter, status int, name string, data interface{}) {
	if err := h.render.HTML(w, status, name, data); err != nil {
		zap.L().Error("AdminHandler: failed to render page", zap.String("template", name), zap.Error(err))
	}
}

func (h *AdminHandler) GetAdminPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminPageData{
		BasePageData: h.baseData(r, "Admin"),
		Form:         &AdminForm{Change: ChangeAddItem, Choices: changeChoices},
		Flashes:      h.sessions.Flashes(w, r),
		Errors:       make(map[string]string),
	}
	h.html(w, http.StatusOK, "admin/index", data)
}

// PostAdminPage sends the admin to the page for the chosen change.
func (h *AdminHandler) PostAdminPage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		zap.L().Warn("PostAdminPage: error parsing form", zap.Error(err))
		h.redirectWithFlash(w, r, "/admin", "Could not read the submitted form.")
		return
	}

	form := AdminForm{
		Change:  r.PostFormValue("change"),
		Choices: changeChoices,
	}
	if err := h.validator.Struct(&form); err != nil {
		data := &AdminPageData{
			BasePageData: h.baseData(r, "Admin"),
			Form:         &form,
		}
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			data.Errors = helpers.FormatValidationErrors(validationErrors)
		}
		h.html(w, http.StatusOK, "admin/index", data)
		return
	}

	switch form.Change {
	case ChangeAddItem:
		http.Redirect(w, r, "/admin/add", http.StatusSeeOther)
	case ChangeDeleteItem:
		http.Redirect(w, r, "/admin/delete", http.StatusSeeOther)
	}
}

func (h *AdminHandler) redirectWithFlash(w http.ResponseWriter, r *http.Request, target, message string) {
	if err := h.sessions.AddFlash(w, r, message); err != nil {
		zap.L().Warn("AdminHandler: failed to store flash message", zap.Error(err))
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
