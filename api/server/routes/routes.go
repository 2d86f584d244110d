// Package routes contains all the routes for the API
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/overcast302/activationd/api/server/routes/activation"
	"github.com/overcast302/activationd/api/server/routes/assets"
	"github.com/overcast302/activationd/api/server/routes/daemon"
	"github.com/overcast302/activationd/api/server/routes/devicelist"
)

// Add adds the routes to the router
func Add(rg *gin.RouterGroup, assetsRoot string) {
	activation.AddRoutes(rg, assetsRoot)
	assets.AddRoutes(rg, assetsRoot)
	daemon.AddRoutes(rg)
	devicelist.AddRoutes(rg)
}
