package holiday

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/induspriya/attendance-portal/internal/domain/holiday"
)

type fakeHolidayRepo struct {
	holidays map[string]holiday.Holiday
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{holidays: make(map[string]holiday.Holiday)}
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	for _, existing := range f.holidays {
		if existing.Date.Equal(h.Date) {
			return holiday.Holiday{}, holiday.ErrDuplicateDate
		}
	}
	h.CreatedAt = time.Now()
	f.holidays[h.ID] = h
	return h, nil
}

func (f *fakeHolidayRepo) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	h, ok := f.holidays[id]
	if !ok {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	return h, nil
}

func (f *fakeHolidayRepo) List(ctx context.Context, filter holiday.ListFilter) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if filter.Year != nil && h.Date.Year() != *filter.Year {
			continue
		}
		if filter.Month != nil && int(h.Date.Month()) != *filter.Month {
			continue
		}
		if filter.Type != nil && string(h.Type) != *filter.Type {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeHolidayRepo) Upcoming(ctx context.Context, from time.Time, n int) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if !h.Date.Before(from) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (f *fakeHolidayRepo) Update(ctx context.Context, h holiday.Holiday) error {
	if _, ok := f.holidays[h.ID]; !ok {
		return holiday.ErrHolidayNotFound
	}
	f.holidays[h.ID] = h
	return nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.holidays[id]; !ok {
		return holiday.ErrHolidayNotFound
	}
	delete(f.holidays, id)
	return nil
}

func TestHolidayService_Create_DuplicateDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewHolidayService(newFakeHolidayRepo(), nil)

	req := holiday.CreateRequest{Name: "Republic Day", Date: "2024-01-26", Type: "gazetted"}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	req.Name = "Duplicate"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, holiday.ErrDuplicateDate)
}

func TestHolidayService_List_Filters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewHolidayService(newFakeHolidayRepo(), nil)

	seed := []holiday.CreateRequest{
		{Name: "Republic Day", Date: "2024-01-26", Type: "gazetted"},
		{Name: "Holi", Date: "2024-03-25", Type: "gazetted"},
		{Name: "Karva Chauth", Date: "2024-10-20", Type: "restricted"},
	}
	for _, req := range seed {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	year := 2024
	all, err := svc.List(ctx, holiday.ListFilter{Year: &year})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Ascending by date.
	assert.Equal(t, "Republic Day", all[0].Name)
	assert.Equal(t, "Karva Chauth", all[2].Name)

	typ := "restricted"
	restricted, err := svc.List(ctx, holiday.ListFilter{Type: &typ})
	require.NoError(t, err)
	require.Len(t, restricted, 1)
	assert.Equal(t, "Karva Chauth", restricted[0].Name)

	month := 3
	march, err := svc.List(ctx, holiday.ListFilter{Month: &month})
	require.NoError(t, err)
	require.Len(t, march, 1)
	assert.Equal(t, "Holi", march[0].Name)
}

func TestHolidayService_Upcoming(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	svc := NewHolidayService(newFakeHolidayRepo(), now)

	seed := []holiday.CreateRequest{
		{Name: "Republic Day", Date: "2024-01-26", Type: "gazetted"},
		{Name: "Holi", Date: "2024-03-25", Type: "gazetted"},
		{Name: "Independence Day", Date: "2024-08-15", Type: "gazetted"},
	}
	for _, req := range seed {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	upcoming, err := svc.Upcoming(ctx, 1)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Holi", upcoming[0].Name)
}

func TestHolidayService_UpdateAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewHolidayService(newFakeHolidayRepo(), nil)

	created, err := svc.Create(ctx, holiday.CreateRequest{Name: "Holi", Date: "2024-03-25", Type: "gazetted"})
	require.NoError(t, err)

	newName := "Holi Festival"
	updated, err := svc.Update(ctx, holiday.UpdateRequest{ID: created.ID, Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Holi Festival", updated.Name)
	assert.Equal(t, "2024-03-25", updated.Date)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), holiday.ErrHolidayNotFound)
}

func TestHolidayService_Create_InvalidType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewHolidayService(newFakeHolidayRepo(), nil)

	_, err := svc.Create(ctx, holiday.CreateRequest{Name: "X", Date: "2024-03-25", Type: "bogus"})
	assert.Error(t, err)
}
