// Package sqlstore implements the relational store interfaces on top of
// database/sql. Two drivers are supported: PostgreSQL through pgx and SQLite
// through go-sqlite3. Queries use $N placeholders, which both drivers accept,
// so a single set of store implementations serves either backend.
//
// Schema changes are applied with goose from migrations embedded per dialect.
package sqlstore
