package admin

import (
	"errors"
	"net/http"
	"strings"

	"github.com/JadeHarbert/CourseProject/app/helpers"
	"github.com/JadeHarbert/CourseProject/app/repositories"
	"github.com/JadeHarbert/CourseProject/app/services"
	"github.com/JadeHarbert/CourseProject/app/utils/format"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func (h *AdminHandler) AddItemPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminItemPageData{
		BasePageData: h.baseData(r, "Add Item"),
		AddForm:      &AddItemForm{},
		Errors:       make(map[string]string),
	}

	choices, err := h.itemSvc.FormChoices(r.Context())
	if err != nil {
		zap.L().Error("AddItemPage: failed to load form choices", zap.Error(err))
		data.Message = "Could not load categories and toppings."
		data.MessageStatus = "error"
	} else {
		data.AddForm.CategoryChoices = choices.Categories
		data.AddForm.ToppingChoices = choices.Toppings
	}

	h.html(w, http.StatusOK, "admin/add", data)
}

func (h *AdminHandler) AddItemPost(w http.ResponseWriter, r *http.Request) {
	data := &AdminItemPageData{
		BasePageData: h.baseData(r, "Add Item"),
		Errors:       make(map[string]string),
	}

	if err := r.ParseForm(); err != nil {
		zap.L().Warn("AddItemPost: error parsing form", zap.Error(err))
		data.Submitted = true
		h.html(w, http.StatusOK, "admin/add", data)
		return
	}

	choices, err := h.itemSvc.FormChoices(r.Context())
	if err != nil {
		zap.L().Error("AddItemPost: failed to load form choices", zap.Error(err))
		data.Submitted = true
		h.html(w, http.StatusOK, "admin/add", data)
		return
	}

	form := AddItemForm{
		Name:            strings.TrimSpace(r.PostFormValue("name")),
		Price:           strings.TrimSpace(r.PostFormValue("price")),
		Category:        r.PostFormValue("category"),
		Toppings:        r.PostForm["toppings"],
		CategoryChoices: choices.Categories,
		ToppingChoices:  choices.Toppings,
	}

	if err := h.validator.Struct(&form); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			data.Errors = helpers.FormatValidationErrors(validationErrors)
		}
		zap.L().Info("AddItemPost: form validation failed", zap.Any("errors", data.Errors))
		data.AddForm = &form
		h.html(w, http.StatusOK, "admin/add", data)
		return
	}

	price, err := format.ParsePrice(form.Price)
	if err != nil {
		data.Errors["price"] = "Price must be a non-negative number."
		data.AddForm = &form
		h.html(w, http.StatusOK, "admin/add", data)
		return
	}

	data.Submitted = true
	item, err := h.itemSvc.AddItem(r.Context(), services.AddItemInput{
		Name:     form.Name,
		Price:    price,
		Category: form.Category,
		Toppings: form.Toppings,
	})
	switch {
	case err == nil:
		data.IsSuccessful = true
		data.Item = item
	case errors.Is(err, repositories.ErrDuplicateName):
		zap.L().Info("AddItemPost: duplicate item name", zap.String("name", form.Name))
		data.Error = IntegrityError
	default:
		zap.L().Error("AddItemPost: failed to add item", zap.String("name", form.Name), zap.Error(err))
	}

	h.html(w, http.StatusOK, "admin/add", data)
}

func (h *AdminHandler) DeleteItemPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminItemPageData{
		BasePageData: h.baseData(r, "Delete Item"),
		DeleteForm:   &DeleteItemForm{},
		Errors:       make(map[string]string),
	}

	choices, err := h.itemSvc.FormChoices(r.Context())
	if err != nil {
		zap.L().Error("DeleteItemPage: failed to load form choices", zap.Error(err))
		data.Message = "Could not load menu items."
		data.MessageStatus = "error"
	} else {
		data.DeleteForm.ItemChoices = choices.Items
	}

	h.html(w, http.StatusOK, "admin/delete", data)
}

func (h *AdminHandler) DeleteItemPost(w http.ResponseWriter, r *http.Request) {
	data := &AdminItemPageData{
		BasePageData: h.baseData(r, "Delete Item"),
		Errors:       make(map[string]string),
	}

	if err := r.ParseForm(); err != nil {
		zap.L().Warn("DeleteItemPost: error parsing form", zap.Error(err))
		data.Submitted = true
		h.html(w, http.StatusOK, "admin/delete", data)
		return
	}

	choices, err := h.itemSvc.FormChoices(r.Context())
	if err != nil {
		zap.L().Error("DeleteItemPost: failed to load form choices", zap.Error(err))
		data.Submitted = true
		h.html(w, http.StatusOK, "admin/delete", data)
		return
	}

	form := DeleteItemForm{
		Item:        r.PostFormValue("item"),
		ItemChoices: choices.Items,
	}
	if err := h.validator.Struct(&form); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			data.Errors = helpers.FormatValidationErrors(validationErrors)
		}
		data.DeleteForm = &form
		h.html(w, http.StatusOK, "admin/delete", data)
		return
	}

	data.Submitted = true
	if err := h.itemSvc.DeleteItem(r.Context(), form.Item); err != nil {
		zap.L().Error("DeleteItemPost: failed to delete item", zap.String("name", form.Item), zap.Error(err))
	} else {
		data.IsSuccessful = true
	}

	h.html(w, http.StatusOK, "admin/delete", data)
}
