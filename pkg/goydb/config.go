package goydb

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/goydb/alldocs/internal/adapter/storage"
	"github.com/goydb/alldocs/internal/handler"
	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/public"
)

type Config struct {
	ListenAddress   string `env:"GOYDB_LISTEN_ADDRESS" envDefault:":7070"`
	DatabasesDir    string `env:"GOYDB_DB_DIR" envDefault:"./dbs"`
	PublicDir       string `env:"GOYDB_PUBLIC_DIR"`
	Admins          string `env:"GOYDB_ADMINS"`
	CookieSecret    string `env:"GOYDB_COOKIE_SECRET"`
	ExportBatchSize int    `env:"GOYDB_EXPORT_BATCH_SIZE" envDefault:"1000"`
	Compress        bool   `env:"GOYDB_COMPRESS" envDefault:"true"`
}

// NewConfig reads the configuration from the environment
func NewConfig() (*Config, error) {
	var cfg Config
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseFlags allows to override the environment
// using command line flags
func (c *Config) ParseFlags() {
	c.parseFlags(flag.CommandLine, os.Args[1:])
}

func (c *Config) parseFlags(fs *flag.FlagSet, args []string) error {
	fs.StringVar(&c.ListenAddress, "addr", c.ListenAddress, "address to listen on")
	fs.StringVar(&c.DatabasesDir, "dbs", c.DatabasesDir, "directory of the databases")
	fs.StringVar(&c.PublicDir, "public", c.PublicDir, "directory with static files and zip archives to serve")
	fs.StringVar(&c.Admins, "admins", c.Admins, "server admins, user:password;user2:password2")
	fs.StringVar(&c.CookieSecret, "cookie-secret", c.CookieSecret, "key to sign session cookies, random if empty")
	fs.IntVar(&c.ExportBatchSize, "export-batch-size", c.ExportBatchSize, "page size of _export requests")
	fs.BoolVar(&c.Compress, "compress", c.Compress, "compress responses if supported by the client")
	return fs.Parse(args)
}

// sessionKey returns the key to sign session cookies with. Without
// configured secret a random key is used, sessions end with a restart then.
func (c *Config) sessionKey() ([]byte, error) {
	if c.CookieSecret != "" {
		return []byte(c.CookieSecret), nil
	}

	key := securecookie.GenerateRandomKey(32)
	if key == nil {
		return nil, fmt.Errorf("failed to generate a session key")
	}
	log.Printf("No cookie secret configured, sessions will not survive a restart")
	return key, nil
}

func (c *Config) BuildDatabase() (*Goydb, error) {
	admins, err := model.ParseAdmins(c.Admins)
	if err != nil {
		return nil, err
	}

	key, err := c.sessionKey()
	if err != nil {
		return nil, err
	}

	err = os.MkdirAll(c.DatabasesDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create databases dir: %w", err)
	}

	s, err := storage.Open(c.DatabasesDir)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	if c.PublicDir != "" {
		err = public.Public{Dir: c.PublicDir}.Mount(r)
		if err != nil {
			s.Close() // nolint: errcheck
			return nil, err
		}
	}

	err = handler.Router{
		Storage:         s,
		SessionStore:    sessions.NewCookieStore(key),
		Admins:          admins,
		ExportBatchSize: c.ExportBatchSize,
	}.Build(r)
	if err != nil {
		s.Close() // nolint: errcheck
		return nil, err
	}

	var h http.Handler = r
	if c.Compress {
		h = handlers.CompressHandler(h)
	}

	return &Goydb{
		Storage: storage.PortStorage{Storage: s},
		Handler: h,
	}, nil
}
