//go:build unit

package api_test

import (
	"bookstore-api/internal/domain/auth"
	"bookstore-api/internal/handler/httperr"
	"bookstore-api/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
	binding.EnableDecoderDisallowUnknownFields = true
	httperr.RegisterJSONFieldNames()
}

// asIdentity stands in for RequireAuth.
func asIdentity(identity auth.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, identity)
		c.Next()
	}
}

func customerIdentity(customerID uuid.UUID) auth.Identity {
	return auth.Identity{UserID: uuid.New(), Username: "reader", CustomerID: &customerID}
}
