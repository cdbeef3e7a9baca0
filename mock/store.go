package mock

import (
	"context"

	"github.com/raingarden/plantfill"
)

var _ plantfill.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of plantfill.RecordStore.
type RecordStore struct {
	UpsertFn     func(ctx context.Context, records []*plantfill.Record) (int, int, error)
	FindByNameFn func(ctx context.Context, botanicalName string) (*plantfill.Record, error)
	FindAllFn    func(ctx context.Context) ([]*plantfill.Record, error)
}

func (s *RecordStore) Upsert(ctx context.Context, records []*plantfill.Record) (int, int, error) {
	return s.UpsertFn(ctx, records)
}

func (s *RecordStore) FindByName(ctx context.Context, botanicalName string) (*plantfill.Record, error) {
	return s.FindByNameFn(ctx, botanicalName)
}

func (s *RecordStore) FindAll(ctx context.Context) ([]*plantfill.Record, error) {
	return s.FindAllFn(ctx)
}
