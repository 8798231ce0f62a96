package routes

import (
	"net/http"

	"github.com/JadeHarbert/CourseProject/app/handlers"
	"github.com/JadeHarbert/CourseProject/app/handlers/admin"
	"github.com/JadeHarbert/CourseProject/app/helpers"
	"github.com/JadeHarbert/CourseProject/app/middlewares"
	"github.com/JadeHarbert/CourseProject/app/repositories"
	"github.com/JadeHarbert/CourseProject/app/services"
	"github.com/JadeHarbert/CourseProject/app/utils/sessions"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

type Options struct {
	// CSRFKey enables CSRF protection on every form when set. It must be 32 bytes.
	CSRFKey           []byte
	SecureCookies     bool
	AdminUser         string
	AdminPasswordHash string
}

func NewRouter(db *gorm.DB, rnd *render.Render, store sessions.SessionStore, opts Options) http.Handler {
	categoryRepo := repositories.NewCategoryRepository(db)
	toppingRepo := repositories.NewToppingRepository(db)
	itemRepo := repositories.NewItemRepository(db)

	menuSvc := services.NewMenuService(categoryRepo, itemRepo)
	itemSvc := services.NewItemService(categoryRepo, toppingRepo, itemRepo)

	validate := helpers.NewValidator()

	homeHandler := handlers.NewHomeHandler(rnd)
	menuHandler := handlers.NewMenuHandler(rnd, validate, menuSvc, store)
	adminHandler := admin.NewAdminHandler(rnd, validate, itemSvc, store)

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(homeHandler.NotFound)

	router.HandleFunc("/", homeHandler.Index).Methods(http.MethodGet)
	router.HandleFunc("/about", homeHandler.About).Methods(http.MethodGet)
	router.HandleFunc("/menu", menuHandler.Menu).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/contact", homeHandler.Contact).Methods(http.MethodGet)

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware(opts.AdminUser, opts.AdminPasswordHash))
	adminRouter.HandleFunc("", adminHandler.GetAdminPage).Methods(http.MethodGet)
	adminRouter.HandleFunc("", adminHandler.PostAdminPage).Methods(http.MethodPost)
	adminRouter.HandleFunc("/add", adminHandler.AddItemPage).Methods(http.MethodGet)
	adminRouter.HandleFunc("/add", adminHandler.AddItemPost).Methods(http.MethodPost)
	adminRouter.HandleFunc("/delete", adminHandler.DeleteItemPage).Methods(http.MethodGet)
	adminRouter.HandleFunc("/delete", adminHandler.DeleteItemPost).Methods(http.MethodPost)

	var handler http.Handler = router
	if len(opts.CSRFKey) > 0 {
		handler = csrf.Protect(
			opts.CSRFKey,
			csrf.Secure(opts.SecureCookies),
			csrf.Path("/"),
			csrf.ErrorHandler(http.HandlerFunc(homeHandler.Forbidden)),
		)(handler)
	}

	return middlewares.RequestLoggerMiddleware(middlewares.RecoverMiddleware(handler))
}
