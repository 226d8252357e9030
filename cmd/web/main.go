// @title           Axas House API
// @version         1.0
// @description     Аренда квартир: коды подтверждения, профиль, объявления и бронирования.
// @host            localhost:4000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"axas_backend/internal/app"

	_ "axas_backend/docs"
)

func main() {
	app.Run()
}
