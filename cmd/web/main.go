package main

import (
	"html/template"
	"log"
	"net/http"
	"time"

	"sareemahal/internal/backend"
	"sareemahal/internal/config"
	"sareemahal/internal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	api := backend.NewClient(cfg.BackendBaseURL, cfg.RequestTimeout)
	h := handlers.NewHandler(cfg, api)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	if err := r.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
		log.Fatalf("Trusted proxy setup failed: %v", err)
	}

	// Each page gets its own template set parsed together with the base
	// layout.
	templates := map[string]*template.Template{}
	templateFiles := map[string][]string{
		"home.html":               {"templates/home.html", "templates/base.html"},
		"products.html":           {"templates/products.html", "templates/base.html"},
		"product_detail.html":     {"templates/product_detail.html", "templates/base.html"},
		"cart.html":               {"templates/cart.html", "templates/base.html"},
		"checkout.html":           {"templates/checkout.html", "templates/base.html"},
		"order_confirmation.html": {"templates/order_confirmation.html", "templates/base.html"},
		"login.html":              {"templates/login.html", "templates/base.html"},
		"register.html":           {"templates/register.html", "templates/base.html"},
		"admin_products.html":     {"templates/admin_products.html", "templates/base.html"},
		"admin_add_product.html":  {"templates/admin_add_product.html", "templates/base.html"},
		"admin_orders.html":       {"templates/admin_orders.html", "templates/base.html"},
		"admin_users.html":        {"templates/admin_users.html", "templates/base.html"},
	}
	for name, files := range templateFiles {
		tmpl, err := template.New(name).Funcs(handlers.TemplateFuncs).ParseFiles(files...)
		if err != nil {
			log.Fatalf("Template %s failed to load: %v", name, err)
		}
		templates[name] = tmpl
	}
	r.HTMLRender = &handlers.HTMLRenderer{Templates: templates}

	r.Static("/static", "./static")
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.File("./static/favicon.ico")
	})

	// Storefront
	r.GET("/", h.HomePage)
	r.GET("/products", h.ProductsPage)
	r.GET("/products/:id", h.ProductDetailPage)
	r.POST("/products/:id/carousel/:dir", h.CardCarousel)

	// Authentication
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.HandleLogin)
	r.GET("/register", h.RegisterPage)
	r.POST("/register", h.HandleRegister)
	r.GET("/logout", h.Logout)
	r.GET("/session/status", h.SessionStatus)

	// Cart
	r.GET("/cart", h.CartPage)
	r.GET("/cart/count", h.CartCount)
	r.POST("/cart/add", h.AddToCart)
	r.PUT("/cart/update/:id", h.UpdateCartItem)
	r.DELETE("/cart/remove/:id", h.RemoveFromCart)
	r.DELETE("/cart/clear", h.ClearCart)

	// Checkout (protected)
	checkout := r.Group("/checkout")
	checkout.Use(h.AuthUserMiddleware())
	{
		checkout.GET("", h.CheckoutPage)
		checkout.POST("/address", h.CheckoutAddress)
		checkout.POST("/payment", h.CheckoutPayment)
		checkout.POST("/place", h.PlaceOrder)
		checkout.POST("/payment/initiate", h.InitiatePayment)
		checkout.POST("/payment/verify", h.VerifyPayment)
	}

	orders := r.Group("/orders")
	orders.Use(h.AuthUserMiddleware())
	{
		orders.GET("/confirmation/:id", h.OrderConfirmationPage)
	}

	// Admin console (protected)
	admin := r.Group("/admin")
	admin.Use(h.AuthAdminMiddleware())
	{
		admin.GET("/products", h.AdminProductsPage)
		admin.GET("/products/new", h.AdminAddProductPage)
		admin.POST("/products/new", h.HandleAdminAddProduct)
		admin.PUT("/products/:id", h.HandleAdminUpdateProduct)
		admin.DELETE("/products/:id", h.AdminDeleteProduct)

		admin.GET("/orders", h.AdminOrdersPage)
		admin.PUT("/orders/:id/status", h.AdminUpdateOrderStatus)

		admin.GET("/users", h.AdminUsersPage)
		admin.PUT("/users/:id/status", h.AdminUpdateUserStatus)
		admin.DELETE("/users/:id", h.AdminDeleteUser)
	}

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Storefront listening on %s (backend: %s)", cfg.ListenAddr, cfg.BackendBaseURL)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
