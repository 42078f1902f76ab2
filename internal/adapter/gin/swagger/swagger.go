// Package swagger serves the OpenAPI document and the Swagger UI.
package swagger

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// DocPath is where the OpenAPI document is served
const DocPath = "/openapi.json"

//go:embed openapi.json
var document []byte

// Document returns the embedded OpenAPI document.
func Document() []byte {
	return document
}

// Register mounts the document and the UI under /swagger/ on r.
func Register(r gin.IRoutes) {
	r.GET(DocPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", document)
	})
	r.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL(DocPath),
	)))
}
