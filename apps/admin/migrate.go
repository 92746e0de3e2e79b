package main

import (
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/secwepemc-ed/curricula/core"
	appfs "github.com/secwepemc-ed/curricula/fs"
	"github.com/secwepemc-ed/curricula/storage/database"
)

// mockable
var (
	dbOpenFunc   = func(conf *core.Config) (*sqlx.DB, error) { return database.Open(conf) }
	dbPingFunc   = func(db *sqlx.DB) error { return database.Ping(db) }
	gooseRunFunc = goose.Run
)

func (cli *commandLine) migrate(args []string) error {
	db, err := dbOpenFunc(cli.conf)
	if err != nil {
		return err
	}
	defer db.Close()
	if err = dbPingFunc(db); err != nil {
		return err
	}

	goose.SetBaseFS(appfs.FS)
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}

	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(args[0], db.DB, "migrations", arguments...)
}
