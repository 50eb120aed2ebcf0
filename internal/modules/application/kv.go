package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/amherst-artisan-market/market-backend/internal/common"
	"github.com/amherst-artisan-market/market-backend/internal/platform/kvstore"
)

const (
	recordKeyPrefix = "vendor_application_"
	indexKey        = "vendor_applications_index"
)

type kvRepository struct {
	kv kvstore.KV
}

// NewKVRepository creates an application repository on the key-value store.
// Each record lives under its own key; the index is a set of ids updated
// atomically, so concurrent submissions cannot lose entries.
func NewKVRepository(kv kvstore.KV) Repository {
	return &kvRepository{kv: kv}
}

func recordKey(id string) string {
	return recordKeyPrefix + id
}

func (r *kvRepository) Save(ctx context.Context, app *Application) error {
	value, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("failed to encode application %s: %w", app.ID, err)
	}
	if err := r.kv.Set(ctx, recordKey(app.ID), value); err != nil {
		return common.NewError(common.CodeDownstream, "failed to store application", err)
	}
	if err := r.kv.AddSetMember(ctx, indexKey, app.ID); err != nil {
		return common.NewError(common.CodeDownstream, "failed to index application", err)
	}
	return nil
}

func (r *kvRepository) Get(ctx context.Context, id string) (*Application, error) {
	value, found, err := r.kv.Get(ctx, recordKey(id))
	if err != nil {
		return nil, common.NewError(common.CodeDownstream, "failed to fetch application", err)
	}
	if !found {
		return nil, common.NewNotFound("Application not found")
	}
	var app Application
	if err := json.Unmarshal(value, &app); err != nil {
		return nil, common.NewError(common.CodeDownstream, "failed to decode application", err)
	}
	return &app, nil
}

func (r *kvRepository) List(ctx context.Context) ([]*Application, error) {
	ids, err := r.kv.SetMembers(ctx, indexKey)
	if err != nil {
		return nil, common.NewError(common.CodeDownstream, "failed to read application index", err)
	}

	apps := make([]*Application, 0, len(ids))
	for _, id := range ids {
		value, found, err := r.kv.Get(ctx, recordKey(id))
		if err != nil {
			return nil, common.NewError(common.CodeDownstream, "failed to fetch application", err)
		}
		if !found {
			// Tolerate a dangling index entry instead of failing the call.
			logrus.WithField("application_id", id).Warn("indexed application record is missing")
			continue
		}
		var app Application
		if err := json.Unmarshal(value, &app); err != nil {
			logrus.WithField("application_id", id).WithError(err).Warn("skipping undecodable application record")
			continue
		}
		apps = append(apps, &app)
	}
	return apps, nil
}

func (r *kvRepository) IndexSize(ctx context.Context) (int, error) {
	size, err := r.kv.SetSize(ctx, indexKey)
	if err != nil {
		return 0, common.NewError(common.CodeDownstream, "failed to read application index", err)
	}
	return int(size), nil
}
