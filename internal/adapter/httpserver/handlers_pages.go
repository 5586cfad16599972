package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/Pratikmehata/Sentiment-app/web"
)

// Immutable fingerprint-free assets, cached for a year like the original deployment.
const staticCacheControl = "public, max-age=31536000, immutable"

func (s *Server) registerPageRoutes() {
	s.echo.GET("/", s.handleHome)

	static := s.echo.Group("/static", staticCacheMiddleware)
	static.StaticFS("/", echo.MustSubFS(web.StaticFiles, "static"))
}

func (s *Server) handleHome(c echo.Context) error {
	return s.renderTemplate(c, "index.html", nil)
}

func staticCacheMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control", staticCacheControl)
		return next(c)
	}
}
