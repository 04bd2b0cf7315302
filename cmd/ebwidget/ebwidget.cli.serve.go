package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/itsatony/go-ebwidget"
	"go.uber.org/zap"
)

// serveConfig holds parsed serve command configuration
type serveConfig struct {
	global globalConfig
	addr   string
}

func runServe(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseServeFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	engine, logger, code := setup(&cfg.global, stderr)
	if code != ExitCodeSuccess {
		return code
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg.addr, engine, logger); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgServeFailed, err)
		return ExitCodeError
	}
	return ExitCodeSuccess
}

// serve runs the preview server until ctx is cancelled, then shuts it down
func serve(ctx context.Context, addr string, engine *ebwidget.Engine, logger *zap.Logger) error {
	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(engine, logger),
		ReadHeaderTimeout: ServerReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(LogMsgServerStarting, zap.String(LogFieldAddr, addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info(LogMsgServerStopping)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ServerShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newRouter builds the preview API
func newRouter(engine *ebwidget.Engine, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET(RouteHealth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": HealthStatusOK})
	})

	r.GET(RouteStylesheet, func(c *gin.Context) {
		c.Data(http.StatusOK, ContentTypeCSS, ebwidget.Stylesheet)
	})

	r.GET(RouteValidate, func(c *gin.Context) {
		result := validateEventID(c.Query(QueryEventID))
		status := http.StatusOK
		if !result.Valid {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, result)
	})

	r.POST(RouteRender, func(c *gin.Context) {
		body, ok := readBody(c, logger)
		if !ok {
			return
		}
		assets, _ := strconv.ParseBool(c.Query(QueryAssets))
		html, err := renderPage(c.Request.Context(), engine, string(body), assets)
		if err != nil {
			logger.Warn(LogMsgRequestFailed, zap.String(LogFieldRoute, RouteRender), zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": ErrMsgExpandFailed})
			return
		}
		c.Data(http.StatusOK, ContentTypeHTML, []byte(html))
	})

	r.POST(RoutePreview, func(c *gin.Context) {
		body, ok := readBody(c, logger)
		if !ok {
			return
		}
		html, err := previewBlock(engine, body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": ErrMsgBlockInvalid, "detail": err.Error()})
			return
		}
		c.Data(http.StatusOK, ContentTypeHTML, []byte(html))
	})

	return r
}

func readBody(c *gin.Context, logger *zap.Logger) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxRequestBodyBytes))
	if err != nil {
		logger.Warn(LogMsgRequestFailed, zap.String(LogFieldRoute, c.FullPath()), zap.Error(err))
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": ErrMsgReadBodyFailed})
		return nil, false
	}
	return body, true
}

func parseServeFlags(args []string) (*serveConfig, error) {
	cfg := &serveConfig{}
	fs := newFlagSet(CmdNameServe, &cfg.global)

	fs.StringVar(&cfg.addr, FlagAddr, FlagDefaultAddr, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}
