// Package mongostore implements the document store interfaces on MongoDB.
//
// Task descriptions and reflections are stored in their own collections and
// reference tasks by the string form of the task UUID. The relational store
// is the only authority on whether a task exists.
package mongostore
