package http

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/michaeljohnaustria/my-garden/internal/domain"
)

// memTable is an in-memory stand-in for one table keyed by a serial id.
type memTable[T any] struct {
	mu     sync.Mutex
	rows   map[int64]T
	order  []int64
	nextID int64
	writes int
	err    error
}

func newMemTable[T any]() *memTable[T] {
	return &memTable[T]{rows: map[int64]T{}, nextID: 1}
}

func (m *memTable[T]) list() ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]T, 0, len(m.rows))
	for _, id := range m.order {
		if row, ok := m.rows[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memTable[T]) get(id int64) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &row, nil
}

func (m *memTable[T]) insert(build func(id int64) T) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.err != nil {
		return 0, m.err
	}
	id := m.nextID
	m.nextID++
	m.rows[id] = build(id)
	m.order = append(m.order, id)
	return id, nil
}

func (m *memTable[T]) update(id int64, apply func(*T)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.err != nil {
		return m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return pgx.ErrNoRows
	}
	apply(&row)
	m.rows[id] = row
	return nil
}

func (m *memTable[T]) remove(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.rows, id)
	return nil
}

func (m *memTable[T]) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func set[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}

type fakeVegetables struct{ *memTable[domain.Vegetable] }

func (f fakeVegetables) List(context.Context) ([]domain.Vegetable, error) { return f.list() }
func (f fakeVegetables) GetByID(_ context.Context, id int64) (*domain.Vegetable, error) {
	return f.get(id)
}
func (f fakeVegetables) Create(_ context.Context, v *domain.Vegetable) error {
	id, err := f.insert(func(id int64) domain.Vegetable { row := *v; row.ID = id; return row })
	v.ID = id
	return err
}
func (f fakeVegetables) Update(_ context.Context, id int64, p domain.VegetablePatch) error {
	return f.update(id, func(v *domain.Vegetable) {
		set(&v.Name, p.Name)
		if p.RecommendedSoilType != nil {
			v.RecommendedSoilType = p.RecommendedSoilType
		}
	})
}
func (f fakeVegetables) Delete(_ context.Context, id int64) error { return f.remove(id) }

type fakeSoilTypes struct{ *memTable[domain.SoilType] }

func (f fakeSoilTypes) List(context.Context) ([]domain.SoilType, error) { return f.list() }
func (f fakeSoilTypes) GetByID(_ context.Context, id int64) (*domain.SoilType, error) {
	return f.get(id)
}
func (f fakeSoilTypes) Create(_ context.Context, s *domain.SoilType) error {
	id, err := f.insert(func(id int64) domain.SoilType { row := *s; row.ID = id; return row })
	s.ID = id
	return err
}
func (f fakeSoilTypes) Update(_ context.Context, id int64, p domain.SoilTypePatch) error {
	return f.update(id, func(s *domain.SoilType) { set(&s.Description, p.Description) })
}
func (f fakeSoilTypes) Delete(_ context.Context, id int64) error { return f.remove(id) }

type fakePests struct{ *memTable[domain.Pest] }

func (f fakePests) List(context.Context) ([]domain.Pest, error) { return f.list() }
func (f fakePests) GetByID(_ context.Context, id int64) (*domain.Pest, error) {
	return f.get(id)
}
func (f fakePests) Create(_ context.Context, p *domain.Pest) error {
	id, err := f.insert(func(id int64) domain.Pest { row := *p; row.ID = id; return row })
	p.ID = id
	return err
}
func (f fakePests) Update(_ context.Context, id int64, patch domain.PestPatch) error {
	return f.update(id, func(p *domain.Pest) {
		set(&p.Description, patch.Description)
		set(&p.RemedyDescription, patch.RemedyDescription)
	})
}
func (f fakePests) Delete(_ context.Context, id int64) error { return f.remove(id) }

type fakeFacts struct{ *memTable[domain.Fact] }

func (f fakeFacts) List(context.Context) ([]domain.Fact, error) { return f.list() }
func (f fakeFacts) GetByID(_ context.Context, id int64) (*domain.Fact, error) {
	return f.get(id)
}
func (f fakeFacts) Create(_ context.Context, fact *domain.Fact) error {
	id, err := f.insert(func(id int64) domain.Fact { row := *fact; row.ID = id; return row })
	fact.ID = id
	return err
}
func (f fakeFacts) Update(_ context.Context, id int64, p domain.FactPatch) error {
	return f.update(id, func(fact *domain.Fact) {
		set(&fact.VegetableID, p.VegetableID)
		set(&fact.SoilTypeID, p.SoilTypeID)
		set(&fact.BestTimeToSow, p.BestTimeToSow)
		set(&fact.BestTimeToHarvest, p.BestTimeToHarvest)
	})
}
func (f fakeFacts) Delete(_ context.Context, id int64) error { return f.remove(id) }
