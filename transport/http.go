package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	authapp "github.com/hendrawans/marketplace/application/auth"
	browseapp "github.com/hendrawans/marketplace/application/browse"
	cartapp "github.com/hendrawans/marketplace/application/cart"
	imageapp "github.com/hendrawans/marketplace/application/image"
	orderapp "github.com/hendrawans/marketplace/application/order"
	paymentapp "github.com/hendrawans/marketplace/application/payment"
	productapp "github.com/hendrawans/marketplace/application/product"
	userapp "github.com/hendrawans/marketplace/application/user"
	"github.com/hendrawans/marketplace/cmd/config"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp    userapp.UserApp
	AuthApp    authapp.AuthApp
	ProductApp productapp.ProductApp
	BrowseApp  browseapp.BrowseApp
	CartApp    cartapp.CartApp
	OrderApp   orderapp.OrderApp
	PaymentApp paymentapp.PaymentApp
	ImageApp   imageapp.ImageApp
}

func NewTransport(cfg *config.Config, rh *RestHandler) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	gate := APIKeyMiddleware(cfg.Auth.APIKey)

	user := router.PathPrefix("/user").Subrouter()
	user.Use(gate)
	user.HandleFunc("/createuser", rh.CreateUser).Methods(http.MethodPut)
	user.HandleFunc("/updateuser", rh.UpdateUser).Methods(http.MethodPatch)
	user.HandleFunc("/getuser/{user_id}", rh.GetUser).Methods(http.MethodGet)
	user.HandleFunc("/deleteuser/{user_id}", rh.DeleteUser).Methods(http.MethodDelete)

	auth := router.PathPrefix("/auth").Subrouter()
	auth.Use(gate)
	auth.HandleFunc("/email/login", rh.Login).Methods(http.MethodPost)
	auth.HandleFunc("/email/signup", rh.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/email/signup/sendotp", rh.SendOTP).Methods(http.MethodPost)
	auth.HandleFunc("/email/verifyotp", rh.VerifyOTP).Methods(http.MethodPost)

	browse := router.PathPrefix("/browse").Subrouter()
	browse.Use(gate)
	browse.HandleFunc("/products", rh.BrowseProducts).Methods(http.MethodGet)

	product := router.PathPrefix("/product").Subrouter()
	product.Use(gate)
	product.HandleFunc("/createproduct", rh.CreateProduct).Methods(http.MethodPut)
	product.HandleFunc("/updateproduct/{product_id}", rh.UpdateProduct).Methods(http.MethodPatch)
	product.HandleFunc("/deleteproduct/{product_id}", rh.DeleteProduct).Methods(http.MethodDelete)
	product.HandleFunc("/getproduct/{product_id}", rh.GetProduct).Methods(http.MethodGet)
	product.HandleFunc("/getproducts/seller/{seller_id}", rh.GetProductsBySeller).Methods(http.MethodGet)

	cart := router.PathPrefix("/cart").Subrouter()
	cart.Use(gate)
	cart.HandleFunc("/add", rh.AddCartItem).Methods(http.MethodPost)
	cart.HandleFunc("/update/{user_id}/{product_id}", rh.UpdateCartItem).Methods(http.MethodPatch)
	cart.HandleFunc("/delete/{user_id}/{product_id}", rh.DeleteCartItem).Methods(http.MethodDelete)
	cart.HandleFunc("/getcart/{user_id}", rh.GetCart).Methods(http.MethodGet)

	orders := router.PathPrefix("/orders").Subrouter()
	orders.Use(gate)
	orders.HandleFunc("/confirm", rh.ConfirmOrder).Methods(http.MethodPost)
	orders.HandleFunc("/user/{user_id}", rh.GetUserOrders).Methods(http.MethodGet)

	payment := router.PathPrefix("/payment").Subrouter()
	payment.Use(gate)
	payment.HandleFunc("/add", rh.AddPayment).Methods(http.MethodPost)

	// Image passthrough; ungated, blob ids are unguessable.
	image := router.PathPrefix("/image").Subrouter()
	image.HandleFunc("/upload", rh.UploadImage).Methods(http.MethodPost)
	image.HandleFunc("/download/{file_id}", rh.DownloadImage).Methods(http.MethodGet)
	image.HandleFunc("/delete/{file_id}", rh.DeleteImage).Methods(http.MethodDelete)

	router.Use(LoggingMiddleware())
	router.Use(SessionMiddleware(rh.AuthApp))

	return router
}
