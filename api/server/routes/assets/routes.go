// Package assets provides the /assets route for asset tree inspection
package assets

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/overcast302/activationd/api/types"
	cmd "github.com/overcast302/activationd/internal/commands/assets"
)

// AddRoutes adds the assets routes to the router
func AddRoutes(rg *gin.RouterGroup, assetsRoot string) {
	// swagger:route GET /assets Assets getAssets
	//
	// Assets
	//
	// Scan the asset tree and report each artifact's validity.
	rg.GET("/assets", func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")

		artifacts, err := cmd.Scan(assetsRoot)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, types.GenericError{Error: err.Error()})
			return
		}

		c.IndentedJSON(http.StatusOK, gin.H{
			"count":     len(artifacts),
			"artifacts": artifacts,
		})
	})
}
