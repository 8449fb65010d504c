package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	catalogapp "github.com/urbannest/furniture-store/application/catalog"
	cartapp "github.com/urbannest/furniture-store/application/cart"
	orderapp "github.com/urbannest/furniture-store/application/order"
	productapp "github.com/urbannest/furniture-store/application/product"
	uploadapp "github.com/urbannest/furniture-store/application/upload"
	"github.com/urbannest/furniture-store/cmd/config"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	Config     *config.Config
	CatalogApp catalogapp.CatalogApp
	CartApp    cartapp.CartApp
	OrderApp   orderapp.OrderApp
	ProductApp productapp.ProductApp
	UploadApp  uploadapp.UploadApp
}

func NewTransport(cfg *config.Config, catalogApp catalogapp.CatalogApp, cartApp cartapp.CartApp, orderApp orderapp.OrderApp, productApp productapp.ProductApp, uploadApp uploadapp.UploadApp) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		Config:     cfg,
		CatalogApp: catalogApp,
		CartApp:    cartApp,
		OrderApp:   orderApp,
		ProductApp: productApp,
		UploadApp:  uploadApp,
	}

	internal := InternalMiddleware(cfg.InternalAPIKey)

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.HandleFunc("/healthz", rh.Health).Methods(http.MethodGet)

	// Catalog
	router.HandleFunc("/catalog", rh.BrowseCatalog).Methods(http.MethodGet)

	// Cart (session scoped)
	router.HandleFunc("/cart", rh.GetCart).Methods(http.MethodGet)
	router.HandleFunc("/cart", rh.ClearCart).Methods(http.MethodDelete)
	router.HandleFunc("/cart/items", rh.AddCartItem).Methods(http.MethodPost)
	router.HandleFunc("/cart/items", rh.UpdateCartItem).Methods(http.MethodPatch)
	router.HandleFunc("/cart/items", rh.RemoveCartItem).Methods(http.MethodDelete)
	router.HandleFunc("/cart/open", rh.OpenCart).Methods(http.MethodPost)
	router.HandleFunc("/cart/close", rh.CloseCart).Methods(http.MethodPost)

	// Orders
	router.HandleFunc("/orders", rh.ListOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders", rh.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders/custom", rh.SubmitCustomOrder).Methods(http.MethodPost)
	router.Handle("/orders", internal(http.HandlerFunc(rh.DeleteOrder))).Methods(http.MethodDelete)

	// Products
	router.HandleFunc("/products", rh.GetProducts).Methods(http.MethodGet)
	router.HandleFunc("/products/featured", rh.ListFeaturedProducts).Methods(http.MethodGet)
	router.Handle("/products", internal(http.HandlerFunc(rh.SaveProduct))).Methods(http.MethodPost)

	// Upload passthrough
	router.HandleFunc("/upload", rh.UploadImage).Methods(http.MethodPost)
	router.Handle("/upload", internal(http.HandlerFunc(rh.DeleteUpload))).Methods(http.MethodDelete)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(SessionMiddleware(cfg.Session))

	return router
}

func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}
