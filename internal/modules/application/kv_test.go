package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amherst-artisan-market/market-backend/internal/common"
)

// fakeKV is an in-memory stand-in for the key-value store.
type fakeKV struct {
	mu     sync.Mutex
	values map[string][]byte
	sets   map[string]map[string]struct{}
}

func newFakeKV() *fakeKV {
	return &fakeKV{
		values: make(map[string][]byte),
		sets:   make(map[string]map[string]struct{}),
	}
}

func (kv *fakeKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	value, ok := kv.values[key]
	return value, ok, nil
}

func (kv *fakeKV) Set(ctx context.Context, key string, value []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.values[key] = value
	return nil
}

func (kv *fakeKV) AddSetMember(ctx context.Context, key, member string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	set, ok := kv.sets[key]
	if !ok {
		set = make(map[string]struct{})
		kv.sets[key] = set
	}
	set[member] = struct{}{}
	return nil
}

func (kv *fakeKV) SetMembers(ctx context.Context, key string) ([]string, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	members := make([]string, 0, len(kv.sets[key]))
	for member := range kv.sets[key] {
		members = append(members, member)
	}
	return members, nil
}

func (kv *fakeKV) SetSize(ctx context.Context, key string) (int64, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	return int64(len(kv.sets[key])), nil
}

func sampleApplication(id string) *Application {
	return &Application{
		ID:                    id,
		BusinessName:          "Clay & Kiln",
		ContactName:           "Sam Potter",
		Email:                 "sam@clayandkiln.com",
		Phone:                 "555-0199",
		VendorType:            "crafts",
		Description:           "Hand-thrown pottery",
		ProductsServices:      "Mugs, bowls, vases",
		FoodPermits:           "NA",
		AvailabilityStartWeek: "May 1",
		Status:                StatusPending,
		SubmittedAt:           time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestKVRepository_SaveAndGet(t *testing.T) {
	kv := newFakeKV()
	repo := NewKVRepository(kv)

	app := sampleApplication("app-1")
	require.NoError(t, repo.Save(context.Background(), app))

	stored, err := repo.Get(context.Background(), "app-1")
	require.NoError(t, err)
	assert.Equal(t, app.ID, stored.ID)
	assert.Equal(t, app.BusinessName, stored.BusinessName)
	assert.Equal(t, app.Status, stored.Status)
	assert.True(t, app.SubmittedAt.Equal(stored.SubmittedAt))
	assert.Nil(t, stored.ReviewedAt)

	// The record key and index entry the store holds.
	_, found, err := kv.Get(context.Background(), "vendor_application_app-1")
	require.NoError(t, err)
	assert.True(t, found)
	members, err := kv.SetMembers(context.Background(), "vendor_applications_index")
	require.NoError(t, err)
	assert.Equal(t, []string{"app-1"}, members)
}

func TestKVRepository_GetMissing(t *testing.T) {
	repo := NewKVRepository(newFakeKV())

	_, err := repo.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeNotFound))
}

func TestKVRepository_SaveIsIdempotentOnIndex(t *testing.T) {
	kv := newFakeKV()
	repo := NewKVRepository(kv)

	app := sampleApplication("app-1")
	require.NoError(t, repo.Save(context.Background(), app))
	app.Status = StatusApproved
	require.NoError(t, repo.Save(context.Background(), app))

	size, err := repo.IndexSize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, size)

	stored, err := repo.Get(context.Background(), "app-1")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, stored.Status)
}

func TestKVRepository_ListSkipsDanglingIndexEntries(t *testing.T) {
	kv := newFakeKV()
	repo := NewKVRepository(kv)

	require.NoError(t, repo.Save(context.Background(), sampleApplication("app-1")))
	require.NoError(t, repo.Save(context.Background(), sampleApplication("app-2")))

	// Drop one record while leaving its id indexed.
	kv.mu.Lock()
	delete(kv.values, "vendor_application_app-2")
	kv.mu.Unlock()

	apps, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "app-1", apps[0].ID)

	size, err := repo.IndexSize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, size)
}

func TestKVRepository_ListEmpty(t *testing.T) {
	repo := NewKVRepository(newFakeKV())

	apps, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)
}
