// Package docs provides Swagger documentation for the API.
package docs

// @title OutFlo Backend API
// @version 1.0
// @description Campaign and lead management API with AI-assisted outreach message generation

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
