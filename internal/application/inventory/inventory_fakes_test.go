package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jefftricks/shamba-api/internal/domain/entity"
)

// fakeInventoryRepo is a map-backed InventoryRepository safe for the
// concurrent waves the bulk updater runs.
type fakeInventoryRepo struct {
	mu      sync.Mutex
	items   map[string]*entity.InventoryItem
	listErr error
	// failIDs makes UpdateFields and SetLocation fail for specific rows.
	failIDs map[string]error
	// setLocationCalls counts marker writes per item id.
	setLocationCalls map[string]int
}

func newFakeInventoryRepo(items ...*entity.InventoryItem) *fakeInventoryRepo {
	f := &fakeInventoryRepo{
		items:            make(map[string]*entity.InventoryItem),
		failIDs:          make(map[string]error),
		setLocationCalls: make(map[string]int),
	}
	for _, item := range items {
		f.items[item.ID] = item
	}
	return f
}

func (f *fakeInventoryRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID] = item
	return nil
}

func (f *fakeInventoryRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[id], nil
}

func (f *fakeInventoryRepo) List(context.Context) ([]*entity.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*entity.InventoryItem, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeInventoryRepo) Update(_ context.Context, item *entity.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID] = item
	return nil
}

func (f *fakeInventoryRepo) UpdateFields(_ context.Context, id string, fields map[string]any) (*entity.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failIDs[id]; err != nil {
		return nil, err
	}
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	if v, ok := fields["quantity"]; ok {
		item.Quantity = v.(float64)
	}
	if v, ok := fields["unit_cost"]; ok {
		item.UnitCost = v.(decimal.Decimal)
	}
	if v, ok := fields["min_threshold"]; ok {
		item.MinThreshold = v.(float64)
	}
	if v, ok := fields["location"]; ok {
		item.Location = v.(string)
	}
	if v, ok := fields["supplier"]; ok {
		item.Supplier = v.(string)
	}
	if v, ok := fields["last_updated"]; ok {
		item.LastUpdated = v.(time.Time)
	}
	return item, nil
}

func (f *fakeInventoryRepo) SetLocation(_ context.Context, id, location string, ts time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setLocationCalls[id]++
	if err := f.failIDs[id]; err != nil {
		return err
	}
	if item, ok := f.items[id]; ok {
		item.Location = location
		item.LastUpdated = ts
	}
	return nil
}

func (f *fakeInventoryRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*entity.Profile
	err      error
}

func (f *fakeProfileRepo) Create(_ context.Context, p *entity.Profile) error {
	f.profiles[p.UserID] = p
	return nil
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*entity.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[userID], nil
}

func profileWithRole(userID, role string) *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*entity.Profile{
		userID: {ID: "p-" + userID, UserID: userID, Role: role},
	}}
}

func stockItem(id, name string, qty, threshold float64, unitCost float64) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:           id,
		ItemName:     name,
		Category:     "feed",
		Quantity:     qty,
		Unit:         "kg",
		UnitCost:     decimal.NewFromFloat(unitCost),
		MinThreshold: threshold,
		Location:     "Main Store",
	}
}
