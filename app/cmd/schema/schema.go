package schema

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/ribgsilva/notes-web/persistence/v1/schema"
	"github.com/ribgsilva/notes-web/platform/env"
	"github.com/ribgsilva/notes-web/sys"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

func ListCommands() {
	println("Schema Commands")
	println("\tcreate\t\t\t- Creates the schema")
	println("\tdelete\t\t\t- Deletes the schema")
	println("\thelp\t\t\t- Print the commands available")
}

func Run(options []string) {
	if len(options) == 0 {
		ListCommands()
		return
	}
	// empty logger
	log := zap.NewNop().Sugar()

	cfg, db, err := initVars(log)
	if err != nil {
		println("error:", err.Error())
		return
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}()

	m := schema.NewManager(db, cfg.Database.Driver)

	switch options[0] {
	case "create":
		println("creating schema")
		if err := m.Create(context.Background()); err != nil {
			println("failed to create schema:", err.Error())
		} else {
			println("created schema")
		}
	case "delete":
		println("deleting schema")
		if err := m.Drop(context.Background()); err != nil {
			println("failed to delete schema:", err.Error())
		} else {
			println("deleted schema")
		}
	case "help":
		fallthrough
	default:
		ListCommands()
	}
}

func initVars(log *zap.SugaredLogger) (*sys.Config, *sql.DB, error) {
	cfg := &sys.Config{}
	cfg.Database.Driver = env.OrDefault(log, "DATABASE_DRIVER", "sqlite")
	cfg.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "file:notes.db?_pragma=foreign_keys(1)")
	cfg.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	cfg.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")

	db, err := sql.Open(cfg.Database.Driver, cfg.Database.ConnectionURL)
	if err != nil {
		return nil, nil, fmt.Errorf("error to connect to database: %w", err)
	}
	dbCtx, dbCancel := context.WithTimeout(context.Background(), cfg.Database.PingTimeout)
	defer dbCancel()
	if err := db.PingContext(dbCtx); err != nil {
		return nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}
	return cfg, db, nil
}
