package middleware

import "github.com/labstack/echo/v4"

// CGIPath routes a CGI invocation by its PATH_INFO instead of the script
// URL. An empty PATH_INFO goes to fallback. Register with Echo.Pre.
func CGIPath(pathInfo, fallback string) echo.MiddlewareFunc {
	path := pathInfo
	if path == "" {
		path = fallback
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Request().URL.Path = path
			c.Request().URL.RawPath = ""
			return next(c)
		}
	}
}
