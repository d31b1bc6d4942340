package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/goydb/alldocs/internal/adapter/couchdb"
	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/paginator"
)

type Config struct {
	URL      string `env:"ALLDOCS_URL" envDefault:"http://localhost:7070"`
	Database string `env:"ALLDOCS_DB"`
	Limit    int    `env:"ALLDOCS_LIMIT"`

	StartKey    string
	EndKey      string
	Descending  bool
	IncludeDocs bool
	QueriesFile string
	Pages       bool
}

func NewConfig() (*Config, error) {
	var cfg Config
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("alldocs", flag.ContinueOnError)
	fs.StringVar(&c.URL, "url", c.URL, "server url, may contain the credentials")
	fs.StringVar(&c.Database, "db", c.Database, "name of the database")
	fs.IntVar(&c.Limit, "limit", c.Limit, "page size, 0 requests everything at once")
	fs.StringVar(&c.StartKey, "startkey", "", "first document id")
	fs.StringVar(&c.EndKey, "endkey", "", "last document id")
	fs.BoolVar(&c.Descending, "descending", false, "reverse order")
	fs.BoolVar(&c.IncludeDocs, "include-docs", false, "include the document bodies")
	fs.StringVar(&c.QueriesFile, "queries", "", "JSON file with a list of queries, replaces the query flags")
	fs.BoolVar(&c.Pages, "pages", false, "write pages instead of rows")

	err := fs.Parse(args)
	if err != nil {
		return err
	}
	if c.Database == "" {
		return errors.New("the database is required")
	}
	return nil
}

// Queries returns the queries of the queries file or
// the query build from the flags
func (c *Config) Queries() ([]model.AllDocsOptions, error) {
	if c.QueriesFile == "" {
		var o model.AllDocsOptions
		if c.StartKey != "" {
			o.StartKey = model.Str(c.StartKey)
		}
		if c.EndKey != "" {
			o.EndKey = model.Str(c.EndKey)
		}
		if c.Limit > 0 {
			o.Limit = model.Int(c.Limit)
		}
		o.Descending = c.Descending
		o.IncludeDocs = c.IncludeDocs
		return []model.AllDocsOptions{o}, nil
	}

	f, err := os.Open(c.QueriesFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raw []map[string]interface{}
	err = json.NewDecoder(f).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("failed to read queries file: %w", err)
	}

	queries := make([]model.AllDocsOptions, len(raw))
	for i, q := range raw {
		queries[i], err = model.DecodeAllDocsOptions(q)
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
		queries[i] = queries[i].WithPageSize(c.Limit)
	}
	return queries, nil
}

// Run writes the results of all queries to w and
// returns the number of written results
func (c *Config) Run(ctx context.Context, w io.Writer) (int, error) {
	client, err := couchdb.NewClient(c.URL)
	if err != nil {
		return 0, err
	}

	queries, err := c.Queries()
	if err != nil {
		return 0, err
	}

	source := client.Database(c.Database)
	if c.Pages {
		return write(ctx, w, paginator.QueriesOf(source, paginator.Pages, queries...))
	}
	return write(ctx, w, paginator.QueriesOf(source, paginator.Rows, queries...))
}

func write[T any](ctx context.Context, w io.Writer, it paginator.Iterator[T]) (int, error) {
	enc := json.NewEncoder(w)
	var n int
	for v, err := range paginator.Seq(ctx, it) {
		if err != nil {
			return n, err
		}
		err = enc.Encode(v)
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
