package faults

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"io"
	"io/fs"
	"net"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
)

// ErrDriverNotFound is returned when a driver name is not registered with database/sql
var ErrDriverNotFound = eris.New("driver not registered")

func resourceScenarios(files afero.Fs, missingFile, databaseURL, driverName string, connectTimeout time.Duration) []Scenario {
	return []Scenario{
		{
			Name:     "read-file",
			Category: CategoryResource,
			Run: func(context.Context) error {
				return ReadFirstLine(files, missingFile)
			},
			Classify: classifyRead,
		},
		{
			Name:     "connect-database",
			Category: CategoryResource,
			Run: func(ctx context.Context) error {
				return ConnectDatabase(ctx, databaseURL, connectTimeout)
			},
			// Any failure to reach the server counts, including a malformed URL
			Classify: func(error) (Kind, bool) {
				return KindDatabaseConnection, true
			},
		},
		{
			Name:     "load-driver",
			Category: CategoryResource,
			Run: func(context.Context) error {
				return LoadDriver(driverName)
			},
			Classify: func(err error) (Kind, bool) {
				if errors.Is(err, ErrDriverNotFound) {
					return KindDriverNotFound, true
				}
				return 0, false
			},
		},
	}
}

// ReadFirstLine opens the named file and reads its first line
func ReadFirstLine(files afero.Fs, name string) error {
	f, err := files.Open(name)
	if err != nil {
		return eris.Wrapf(err, "failed to open %q", name)
	}
	defer f.Close()

	if _, err := bufio.NewReader(f).ReadString('\n'); err != nil {
		return eris.Wrapf(err, "failed to read first line of %q", name)
	}
	return nil
}

// classifyRead checks the most specific failure first: a missing file,
// then a truncated read, then any other I/O failure.
func classifyRead(err error) (Kind, bool) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindFileNotFound, true
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return KindUnexpectedEOF, true
	default:
		return KindIO, true
	}
}

// ConnectDatabase attempts a PostgreSQL connection through a dialer that
// always refuses, so no network traffic is ever produced.
func ConnectDatabase(ctx context.Context, databaseURL string, timeout time.Duration) error {
	connConfig, err := pgx.ParseConfig(databaseURL)
	if err != nil {
		return eris.Wrap(err, "invalid database url")
	}
	connConfig.ConnectTimeout = timeout
	connConfig.LookupFunc = func(_ context.Context, host string) ([]string, error) {
		return []string{host}, nil
	}
	connConfig.DialFunc = refuseDial

	conn, err := pgx.ConnectConfig(ctx, connConfig)
	if err != nil {
		return eris.Wrap(err, "failed to connect to database")
	}
	return conn.Close(ctx)
}

func refuseDial(_ context.Context, network, addr string) (net.Conn, error) {
	return nil, &net.OpError{
		Op:  "dial",
		Net: network,
		Err: syscall.ECONNREFUSED,
	}
}

// LoadDriver resolves a database/sql driver by name
func LoadDriver(name string) error {
	drivers := sql.Drivers()
	if !slices.Contains(drivers, name) {
		return eris.Wrapf(ErrDriverNotFound, "cannot load %q (registered: %s)", name, strings.Join(drivers, ", "))
	}

	db, err := sql.Open(name, "")
	if err != nil {
		return eris.Wrapf(err, "failed to open driver %q", name)
	}
	return db.Close()
}
