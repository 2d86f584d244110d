// Package devicelist contains the routes for the device_list API
package devicelist

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/overcast302/activationd/pkg/devices"
)

// AddRoutes adds the device_list routes to the router
func AddRoutes(rg *gin.RouterGroup) {
	rg.GET("/device_list", func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")

		devs := devices.Supported()
		sort.Sort(devices.ByProductType{Devices: devs})

		c.JSON(http.StatusOK, gin.H{
			"devices":  devs,
			"versions": devices.Versions(),
		})
	})
}
