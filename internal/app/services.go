package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/fitlog-backend/internal/adapter/postgres"
	exerciserepo "github.com/heartmarshall/fitlog-backend/internal/adapter/postgres/exercise"
	measurementrepo "github.com/heartmarshall/fitlog-backend/internal/adapter/postgres/measurement"
	recordrepo "github.com/heartmarshall/fitlog-backend/internal/adapter/postgres/record"
	templaterepo "github.com/heartmarshall/fitlog-backend/internal/adapter/postgres/template"
	userrepo "github.com/heartmarshall/fitlog-backend/internal/adapter/postgres/user"
	workoutlogrepo "github.com/heartmarshall/fitlog-backend/internal/adapter/postgres/workoutlog"
	"github.com/heartmarshall/fitlog-backend/internal/service/exercise"
	"github.com/heartmarshall/fitlog-backend/internal/service/history"
	"github.com/heartmarshall/fitlog-backend/internal/service/measurement"
	"github.com/heartmarshall/fitlog-backend/internal/service/template"
	"github.com/heartmarshall/fitlog-backend/internal/service/user"
	"github.com/heartmarshall/fitlog-backend/internal/service/workoutlog"
)

// Services bundles the fully wired service layer. Callers embed it behind
// whatever delivery mechanism they run.
type Services struct {
	WorkoutLogs  *workoutlog.Service
	Exercises    *exercise.Service
	Measurements *measurement.Service
	Templates    *template.Service
	History      *history.Service
	Users        *user.Service
}

// NewServices wires every repository and service onto the given pool.
func NewServices(log *slog.Logger, pool *pgxpool.Pool) *Services {
	tx := postgres.NewTxManager(pool)

	exercises := exerciserepo.New(pool)
	logs := workoutlogrepo.New(pool)
	records := recordrepo.New(pool)
	measurements := measurementrepo.New(pool)
	measureTypes := measurementrepo.NewTypeRepo(pool)
	templates := templaterepo.New(pool)
	users := userrepo.New(pool)

	return &Services{
		WorkoutLogs:  workoutlog.NewService(log, exercises, logs, records, tx),
		Exercises:    exercise.NewService(log, exercises),
		Measurements: measurement.NewService(log, measureTypes, measurements),
		Templates:    template.NewService(log, templates, exercises, tx),
		History:      history.NewService(log, logs, exercises, records),
		Users:        user.NewService(log, users),
	}
}
