package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/caretab/clinic_backend/config"
	"github.com/caretab/clinic_backend/internal/api/http/handler"
	"github.com/caretab/clinic_backend/internal/service/patient"
	"github.com/caretab/clinic_backend/internal/service/record"
	"github.com/caretab/clinic_backend/internal/web"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	Redis      *redis.Client
	PatientSvc patient.Service
	RecordSvc  record.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

// Register wires the full routing table. Resource routes sit at the server
// root; clients of the previous deployment depend on these exact paths.
func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	patientH := handler.NewPatientHandler(r.p.PatientSvc, r.p.RecordSvc)
	recordH := handler.NewRecordHandler(r.p.RecordSvc)

	r.registerPatientRoutes(app, patientH)
	r.registerRecordRoutes(app, recordH)

	web.Register(app)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
