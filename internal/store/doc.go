// Package store defines interfaces for data persistence operations.
// Users, tasks and the error log live in a relational store; task
// descriptions and reflections live in a document store and reference tasks
// by ID only. These interfaces keep the services independent of either
// backend.
package store
