package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mercadim/marketplace-service/internal/delivery/http/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	Order   *OrderHandler
	Cart    *CartHandler
	Company *CompanyHandler
	Product *ProductHandler
	Driver  *DriverHandler
	Banner  *BannerHandler
	CEP     *CEPHandler
}

func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Identity)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/companies", func(r chi.Router) {
			r.Post("/", deps.Company.CreateCompany)
			r.Get("/", deps.Company.GetCompanies)
			r.Patch("/info", deps.Company.AddInfo)
			r.Get("/{companyID}", deps.Company.GetCompany)
			r.Delete("/{companyID}", deps.Company.DeleteCompany)
			r.Get("/{companyID}/products", deps.Product.GetCompanyProducts)
		})

		r.Route("/store", func(r chi.Router) {
			r.Get("/company", deps.Company.GetMyCompany)
			r.Put("/company", deps.Company.UpdateCompany)

			r.Post("/products", deps.Product.CreateProduct)
			r.Get("/products", deps.Product.GetMyProducts)
			r.Put("/products/{productID}", deps.Product.UpdateProduct)
			r.Delete("/products/{productID}", deps.Product.DeleteProduct)
			r.Get("/categories", deps.Product.GetCategories)

			r.Get("/orders", deps.Order.GetStoreOrders)
			r.Patch("/orders/{orderID}/status", deps.Order.UpdateStoreOrderStatus)

			r.Post("/drivers", deps.Driver.CreateDriver)
			r.Get("/drivers", deps.Driver.GetDrivers)
			r.Put("/drivers/{driverID}", deps.Driver.UpdateDriver)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", deps.Cart.GetCart)
			r.Post("/items", deps.Cart.AddProducts)
			r.Delete("/items/{itemID}", deps.Cart.RemoveItem)
			r.Post("/items/{itemID}/increment", deps.Cart.IncrementItem)
			r.Post("/items/{itemID}/decrement", deps.Cart.DecrementItem)
			r.Post("/delivery-fee", deps.Cart.CalculateDeliveryFee)
		})

		r.Post("/checkout", deps.Order.Checkout)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", deps.Order.GetMyOrders)
			r.Get("/{orderID}", deps.Order.GetOrder)
			r.Patch("/{orderID}/status", deps.Order.UpdateClientOrderStatus)
			r.Get("/{orderID}/pix", deps.Order.GeneratePixCode)
		})

		r.Post("/banners", deps.Banner.CreateBanner)
		r.Get("/banners", deps.Banner.GetActiveBanners)

		r.Get("/cep/{cep}", deps.CEP.Lookup)
	})

	return r
}
