// Package domain contains the core business entities of the task tracker:
// users, their ranked tasks, the task descriptions and reflections attached
// to those tasks, and the error audit trail. It has no knowledge of the
// stores or the HTTP layer.
package domain
