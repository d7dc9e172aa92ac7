package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"medtrack_backend/internal/feature/ngos/domain/entity"
)

type mockNGORepository struct {
	listFn     func(ctx context.Context, activeOnly bool) ([]entity.NGO, error)
	findByIDFn func(ctx context.Context, id uint) (*entity.NGO, error)
	createFn   func(ctx context.Context, ngo *entity.NGO) error
}

func (m *mockNGORepository) List(ctx context.Context, activeOnly bool) ([]entity.NGO, error) {
	if m.listFn != nil {
		return m.listFn(ctx, activeOnly)
	}
	return nil, nil
}

func (m *mockNGORepository) FindByID(ctx context.Context, id uint) (*entity.NGO, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockNGORepository) Create(ctx context.Context, ngo *entity.NGO) error {
	if m.createFn != nil {
		return m.createFn(ctx, ngo)
	}
	return nil
}

func testNGOs() []entity.NGO {
	return []entity.NGO{
		{ID: 1, Name: "Hope Foundation", Active: true},
		{ID: 2, Name: "Care NGO", Active: true},
	}
}

func TestNewCachingNGORepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "ngos",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingNGORepository(nil, tt.ttl, &mockNGORepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

func TestCachingNGORepository_List_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	want := testNGOs()
	dbCalls := 0
	inner := &mockNGORepository{
		listFn: func(ctx context.Context, activeOnly bool) ([]entity.NGO, error) {
			dbCalls++
			return want, nil
		},
	}

	repo := NewCachingNGORepository(rdb, time.Minute, inner, "ngos")

	payload, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	mock.ExpectGet("ngos:list:true").RedisNil()
	mock.ExpectSet("ngos:list:true", payload, time.Minute).SetVal("OK")

	got, err := repo.List(context.Background(), true)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d NGOs, got %d", len(want), len(got))
	}
	if dbCalls != 1 {
		t.Errorf("expected one database call, got %d", dbCalls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("redis expectations: %v", err)
	}
}

func TestCachingNGORepository_List_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	want := testNGOs()
	inner := &mockNGORepository{
		listFn: func(ctx context.Context, activeOnly bool) ([]entity.NGO, error) {
			t.Fatal("database should not be queried on cache hit")
			return nil, nil
		},
	}

	repo := NewCachingNGORepository(rdb, time.Minute, inner, "ngos")

	payload, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	mock.ExpectGet("ngos:list:true").SetVal(string(payload))

	got, err := repo.List(context.Background(), true)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Hope Foundation" {
		t.Errorf("unexpected cached result: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("redis expectations: %v", err)
	}
}

func TestCachingNGORepository_List_NilRedisBypassesCache(t *testing.T) {
	t.Parallel()

	want := testNGOs()
	inner := &mockNGORepository{
		listFn: func(ctx context.Context, activeOnly bool) ([]entity.NGO, error) {
			return want, nil
		},
	}

	repo := NewCachingNGORepository(nil, time.Minute, inner, "ngos")

	got, err := repo.List(context.Background(), false)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 NGOs, got %d", len(got))
	}
}

func TestCachingNGORepository_List_DatabaseError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	dbErr := errors.New("db down")
	inner := &mockNGORepository{
		listFn: func(ctx context.Context, activeOnly bool) ([]entity.NGO, error) {
			return nil, dbErr
		},
	}

	repo := NewCachingNGORepository(rdb, time.Minute, inner, "ngos")

	mock.ExpectGet("ngos:list:true").RedisNil()

	_, err := repo.List(context.Background(), true)
	if !errors.Is(err, dbErr) {
		t.Errorf("expected database error, got %v", err)
	}
}

func TestCachingNGORepository_Create_InvalidatesLists(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	created := false
	inner := &mockNGORepository{
		createFn: func(ctx context.Context, ngo *entity.NGO) error {
			created = true
			return nil
		},
	}

	repo := NewCachingNGORepository(rdb, time.Minute, inner, "ngos")

	mock.ExpectDel("ngos:list:true", "ngos:list:false").SetVal(2)

	if err := repo.Create(context.Background(), &entity.NGO{Name: "New NGO"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !created {
		t.Error("expected inner Create to be called")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("redis expectations: %v", err)
	}
}

func TestCachingNGORepository_Create_InnerErrorSkipsInvalidation(t *testing.T) {
	t.Parallel()

	rdb, _ := redismock.NewClientMock()
	innerErr := errors.New("insert failed")
	inner := &mockNGORepository{
		createFn: func(ctx context.Context, ngo *entity.NGO) error {
			return innerErr
		},
	}

	repo := NewCachingNGORepository(rdb, time.Minute, inner, "ngos")

	err := repo.Create(context.Background(), &entity.NGO{Name: "New NGO"})
	if !errors.Is(err, innerErr) {
		t.Errorf("expected inner error, got %v", err)
	}
}
