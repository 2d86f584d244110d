// Package activation provides the /payload route that serves a device its
// provisioning artifact.
package activation

import (
	"errors"
	"net/http"
	"os"
	"syscall"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"github.com/overcast302/activationd/api/types"
	cmd "github.com/overcast302/activationd/internal/commands/activation"
)

// AddRoutes adds the activation routes to the router
func AddRoutes(rg *gin.RouterGroup, assetsRoot string) {
	// swagger:route GET /payload Activation getPayload
	//
	// Payload
	//
	// Serve the provisioning artifact matching the device's User-Agent
	// model and build tokens. The device may use any method.
	rg.Any("/payload", payloadHandler(cmd.NewResolver(assetsRoot)))
}

func payloadHandler(resolver *cmd.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := cmd.ParseIdentification(c.GetHeader("User-Agent"))
		path, err := resolver.Resolve(id)
		if err != nil {
			if cmd.Denied(err) {
				// every denial looks the same to the caller
				log.WithFields(log.Fields{
					"model": id.Model,
					"build": id.Build,
				}).WithError(err).Debug("payload denied")
				c.String(http.StatusForbidden, "Forbidden")
				return
			}
			// never echo internal detail to the client
			log.WithError(err).Error("payload lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, types.GenericError{Error: "internal server error"})
			return
		}

		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR) {
				c.String(http.StatusForbidden, "Forbidden")
				return
			}
			log.WithError(err).Error("failed to open artifact")
			c.AbortWithStatusJSON(http.StatusInternalServerError, types.GenericError{Error: "internal server error"})
			return
		}
		defer f.Close()

		fi, err := f.Stat()
		if err != nil {
			log.WithError(err).Error("failed to stat artifact")
			c.AbortWithStatusJSON(http.StatusInternalServerError, types.GenericError{Error: "internal server error"})
			return
		}

		log.WithFields(log.Fields{
			"model": id.Model,
			"build": id.Build,
			"size":  fi.Size(),
		}).Info("serving payload")

		c.DataFromReader(http.StatusOK, fi.Size(), "application/xml", f, map[string]string{
			"Content-Disposition": `attachment; filename="` + cmd.ArtifactName + `"`,
			"Cache-Control":       "must-revalidate",
			"Pragma":              "public",
		})
	}
}
