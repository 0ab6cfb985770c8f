package app

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/caretab/clinic_backend/config"
	"github.com/caretab/clinic_backend/internal/repo"
	"github.com/caretab/clinic_backend/internal/service/patient"
	"github.com/caretab/clinic_backend/internal/service/record"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideRecordService,
		ProvidePatientService,
	),
)

func ProvideRecordService(db *repo.Client, rdb *redis.Client, cfg *config.Config) record.Service {
	ttl := time.Duration(cfg.Cache.RecordsTTLSeconds) * time.Second
	return record.New(db, rdb, ttl)
}

func ProvidePatientService(db *repo.Client, rdb *redis.Client) patient.Service {
	return patient.New(db, rdb)
}
