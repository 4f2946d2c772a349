package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appconfig "github.com/ar2rodelvalle/manual-splitter-backend/config"
	"github.com/ar2rodelvalle/manual-splitter-backend/internal/tokenizer"
)

// Run configures and starts the HTTP API on addr, blocking until the server
// exits. When addr is empty the configured server address applies; a bare
// port number is accepted and normalized to ":<port>".
func Run(addr string, cfg *appconfig.Config) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	// Unified HTTP error handler with structured JSON and logging
	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s rid=%s from %s: %v", code, req.Method, req.URL.Path, requestID(c), c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))
	e.Use(withRequestID)
	e.Use(withMetrics)

	e.GET("/", health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	registerDocs(e)

	tok, err := tokenizer.New(cfg.Tokenizer.Encoding)
	if err != nil {
		return err
	}

	root := e.Group("")
	dh := &DocumentsHandler{
		Tokenizer:        tok,
		AllowedExtension: cfg.Upload.AllowedExtension,
		Debug:            cfg.General.Debug,
		Logger:           log.New(log.Writer(), "[SERVER] ", log.LstdFlags),
	}
	dh.Register(root)
	xh := &ExportsHandler{
		DefaultOutputPath: cfg.Export.OutputPath,
		Debug:             cfg.General.Debug,
		Logger:            log.New(log.Writer(), "[EXPORT] ", log.LstdFlags),
	}
	xh.Register(root)

	addr = listenAddr(addr, cfg.Server.Address)
	log.Printf("listening on %s", addr)
	return e.Start(addr)
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// listenAddr resolves the effective listen address: an explicit addr wins,
// then the configured fallback, then ":8000". A bare port number becomes
// ":<port>".
func listenAddr(addr, fallback string) string {
	if addr == "" {
		addr = fallback
	}
	if addr == "" {
		addr = ":8000"
	}
	if _, err := strconv.Atoi(addr); err == nil {
		addr = ":" + addr
	}
	return addr
}
