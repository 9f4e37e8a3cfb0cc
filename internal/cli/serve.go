package cli

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"watchtune/internal/constants"
	"watchtune/internal/logger"
	"watchtune/internal/server"
	"watchtune/internal/server/store"
)

// ServeCmd runs the dev stub settings backend, for working on the console
// without the monitoring pipeline around.
type ServeCmd struct {
	Addr string `help:"Listen address." default:":8000"`
	DB   string `help:"Path to the sqlite database. Defaults to the user config dir."`
}

func (c *ServeCmd) Run(ctx *Context) error {
	dbPath := c.DB
	if dbPath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("failed to determine config dir: %w", err)
		}
		dbPath = filepath.Join(configDir, constants.AppName, "devserver.db")
	}

	st := store.NewStore(dbPath)
	if err := st.Init(); err != nil {
		return err
	}
	defer st.Close()

	srv := server.New(st)
	logger.Info("Dev settings backend listening", "addr", c.Addr, "db", dbPath)
	fmt.Printf("watchtune dev backend listening on %s (db: %s)\n", c.Addr, dbPath)
	return http.ListenAndServe(c.Addr, srv.Router())
}
