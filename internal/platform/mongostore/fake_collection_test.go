package mongostore

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeCollection is an in-memory collection that understands the two filter
// shapes the stores issue: match-all and task_id $in.
type fakeCollection struct {
	mu         sync.Mutex
	docs       []interface{}
	uniqueTask bool
	findCalls  int
	err        error
}

func taskIDOf(doc interface{}) string {
	switch d := doc.(type) {
	case taskDescriptionDoc:
		return d.TaskID
	case reflectionDoc:
		return d.TaskID
	default:
		return ""
	}
}

func (f *fakeCollection) InsertOne(
	_ context.Context,
	document interface{},
	_ ...*options.InsertOneOptions,
) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.uniqueTask {
		for _, d := range f.docs {
			if taskIDOf(d) == taskIDOf(document) {
				return nil, mongo.WriteException{
					WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
				}
			}
		}
	}
	f.docs = append(f.docs, document)
	return &mongo.InsertOneResult{}, nil
}

func (f *fakeCollection) Find(
	_ context.Context,
	filter interface{},
	_ ...*options.FindOptions,
) (*mongo.Cursor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls++
	if f.err != nil {
		return nil, f.err
	}

	matched := make([]interface{}, 0, len(f.docs))
	for _, d := range f.docs {
		if matches(filter, d) {
			matched = append(matched, d)
		}
	}
	return mongo.NewCursorFromDocuments(matched, nil, nil)
}

func (f *fakeCollection) CountDocuments(
	_ context.Context,
	filter interface{},
	_ ...*options.CountOptions,
) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, d := range f.docs {
		if matches(filter, d) {
			n++
		}
	}
	return n, nil
}

func matches(filter interface{}, doc interface{}) bool {
	m, ok := filter.(bson.M)
	if !ok || len(m) == 0 {
		return true
	}
	switch cond := m["task_id"].(type) {
	case string:
		return taskIDOf(doc) == cond
	case bson.M:
		in, _ := cond["$in"].([]string)
		for _, id := range in {
			if id == taskIDOf(doc) {
				return true
			}
		}
		return false
	}
	return false
}

var errFakeDown = errors.New("server selection timeout")
