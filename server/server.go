package server

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/telartis/picqer-ontime/config"
	"github.com/telartis/picqer-ontime/controllers/shipment"
	"github.com/telartis/picqer-ontime/httpServices/ontime"
	"github.com/telartis/picqer-ontime/logger"
	"github.com/telartis/picqer-ontime/routes"
	"github.com/telartis/picqer-ontime/services/shipping"
	"github.com/telartis/picqer-ontime/types"
)

// Server is the webhook HTTP service with its audit logger.
type Server struct {
	App   *fiber.App
	Audit *logger.AsyncLogger
	cfg   *config.Config
}

// NewService wires the carrier client and request builder for cfg.
func NewService(cfg *config.Config) (*shipping.Service, *ontime.Client) {
	client := ontime.NewClient(cfg.Carrier)
	builder := shipping.NewRequestBuilder(cfg.Carrier.Credentials, cfg.Shipping)
	return shipping.NewService(client, builder), client
}

// New builds the fiber app and starts the audit worker writing to sinks.
func New(cfg *config.Config, sinks ...logger.Sink) *Server {
	service, client := NewService(cfg)
	return NewWithService(cfg, service, client.Redactor(), sinks...)
}

// NewWithService is New with an already wired shipping service.
func NewWithService(cfg *config.Config, service *shipping.Service, redactor ontime.Redactor, sinks ...logger.Sink) *Server {
	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768, // 32KB read buffer
		WriteBufferSize: 32768, // 32KB write buffer
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    cfg.Carrier.Timeout*2 + time.Second*30,
		BodyLimit:       4 * 1024 * 1024,
		ErrorHandler:    errorHandler,
	})
	app.Use(recover.New())

	asyncLogger := logger.NewAsyncLogger(redactor.Redact, sinks...)
	go asyncLogger.ProcessLog()

	shipmentController := shipment.NewShipmentController(service, asyncLogger, redactor)
	routes.SetupRoutes(app, cfg, shipmentController)

	return &Server{App: app, Audit: asyncLogger, cfg: cfg}
}

// Run listens on the configured address until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	addr := s.cfg.Host + ":" + s.cfg.Port
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Join(err, s.Audit.Close())
	}
	logger.Success("Server is running on " + addr)
	return s.Serve(ctx, ln)
}

// Serve handles requests on ln until ctx is done. It returns once in-flight
// requests have finished and the audit log is flushed.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	shutdown := make(chan error, 1)
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down")
		shutdown <- s.Shutdown()
	}()

	if err := s.App.Listener(ln); err != nil {
		return errors.Join(err, s.Audit.Close())
	}
	return <-shutdown
}

// Shutdown stops accepting requests and flushes the audit log.
func (s *Server) Shutdown() error {
	return errors.Join(s.App.Shutdown(), s.Audit.Close())
}

// errorHandler keeps the {error} shape for routing failures such as 404.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(types.ErrorResponse{Error: err.Error()})
}
