package main

import "authgate/internal/app"

// @title           Authgate API
// @version         1.0
// @description     Username/password authentication service with emailed password reset.
// @BasePath        /api/auth
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
