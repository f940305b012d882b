package routes

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	middleware "github.com/oapi-codegen/gin-middleware"
	"github.com/swaggest/swgui/v5emb"
)

//go:embed openapi.yaml
var openapiDoc []byte

// LoadOpenAPI carga y valida el documento embebido
func LoadOpenAPI() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiDoc)
	if err != nil {
		return nil, fmt.Errorf("load openapi: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi: %w", err)
	}
	return doc, nil
}

// RegisterDocs publica /openapi.yaml y la UI en /api/docs/, y retorna el
// middleware que valida los requests contra el documento.
func RegisterDocs(router *gin.Engine) (gin.HandlerFunc, error) {
	doc, err := LoadOpenAPI()
	if err != nil {
		return nil, err
	}

	swUi := v5emb.New(
		"Dripzoid Storefront",
		"/openapi.yaml",
		"/api/docs/",
	)

	docs := router.Group("/api/docs/")
	{
		docs.Any("/*any", gin.WrapH(swUi))
	}
	router.GET("/openapi.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", openapiDoc)
	})

	return middleware.OapiRequestValidator(doc), nil
}
