package routers

import (
	"abdm-link-service/internal/app/delivery/http/controllers"
	"abdm-link-service/internal/app/delivery/http/middlewares"
	"abdm-link-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachCareContextRoutes(router chi.Router, middlewares *middlewares.Middlewares, careContextController *controllers.CareContextController) {
	router.Post("/link", careContextController.LinkCareContext)
	router.Get(fmt.Sprintf("/transactions/{%s}", constvars.URLParamTransactionID), careContextController.FindLinkTransactionByID)
}
