package api

import (
	"encoding/json"
	"net/http"
)

// RegisterDocsRoutes registers documentation routes on the given mux.
//
// GET /                  → Redirect to /docs
//
// GET /docs              → Swagger UI
//
// GET /docs/openapi      → OpenAPI document (JSON)
//
// GET /docs/openapi.yaml → OpenAPI document as embedded
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", handleRootRedirect)
	mux.HandleFunc("GET /docs", handleSwaggerUI)
	mux.HandleFunc("GET /docs/openapi", handleOpenAPIJSON)
	mux.HandleFunc("GET /docs/openapi.yaml", handleOpenAPIYAML)
}

func handleRootRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/docs", http.StatusMovedPermanently)
}

func handleOpenAPIJSON(w http.ResponseWriter, _ *http.Request) {
	doc, err := GetSwagger()
	if err != nil {
		http.Error(w, "OpenAPI document unavailable", http.StatusInternalServerError)
		return
	}

	data, err := json.Marshal(doc)
	if err != nil {
		http.Error(w, "OpenAPI document unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write(data) //nolint:errcheck // Nothing useful to do if write fails
}

func handleOpenAPIYAML(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write(rawSpec) //nolint:errcheck // Nothing useful to do if write fails
}

func handleSwaggerUI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(swaggerUIHTML)) //nolint:errcheck // Nothing useful to do if write fails
}

// The UI keeps the bearer token across reloads; mint one with `homebid token <user-id>`.
const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>HomeBid API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      SwaggerUIBundle({
        url: '/docs/openapi',
        dom_id: '#swagger-ui',
        persistAuthorization: true,
        displayRequestDuration: true,
        tryItOutEnabled: true
      });
    };
  </script>
</body>
</html>`
