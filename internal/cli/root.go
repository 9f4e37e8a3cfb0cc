package cli

import (
	"watchtune/internal/client"
	"watchtune/internal/notify"
)

// Context carries the shared dependencies into every command.
type Context struct {
	Client *client.Client
	Sink   notify.Sink

	ServerURL string
	Debug     bool
}
