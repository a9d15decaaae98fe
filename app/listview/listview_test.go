package listview

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type record struct {
	ID     string
	Name   string
	Status string
}

func sampleRecords(n int) []record {
	items := make([]record, n)
	for i := range items {
		items[i] = record{
			ID:     string(rune('a' + i)),
			Name:   "Person " + string(rune('A'+i)),
			Status: []string{"PENDING", "APPROVED"}[i%2],
		}
	}
	return items
}

func TestTextFilterMatchesCaseInsensitiveSubstring(t *testing.T) {
	items := []record{
		{ID: "1", Name: "Alice Johnson"},
		{ID: "2", Name: "Bob Smith"},
		{ID: "3", Name: "alison brown"},
	}

	filtered := Apply(items, Text("ali", func(r record) string { return r.Name }))

	if len(filtered) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(filtered))
	}
	if filtered[0].ID != "1" || filtered[1].ID != "3" {
		t.Errorf("unexpected matches: %+v", filtered)
	}
}

func TestEmptyFiltersMatchEverything(t *testing.T) {
	items := sampleRecords(5)

	filtered := Apply(items,
		Text("", func(r record) string { return r.Name }),
		Exact("", func(r record) string { return r.Status }),
	)

	if !reflect.DeepEqual(filtered, items) {
		t.Errorf("empty filters should keep all records, got %+v", filtered)
	}
}

func TestFiltersComposeWithAnd(t *testing.T) {
	items := []record{
		{ID: "1", Name: "Alice", Status: "PENDING"},
		{ID: "2", Name: "Alice", Status: "APPROVED"},
		{ID: "3", Name: "Bob", Status: "PENDING"},
	}

	filtered := Apply(items,
		Text("alice", func(r record) string { return r.Name }),
		Exact("PENDING", func(r record) string { return r.Status }),
	)

	if len(filtered) != 1 || filtered[0].ID != "1" {
		t.Errorf("expected only record 1, got %+v", filtered)
	}

	// The result is exactly the set satisfying every predicate
	for _, r := range filtered {
		if r.Name != "Alice" || r.Status != "PENDING" {
			t.Errorf("record %+v does not satisfy all predicates", r)
		}
	}
}

func TestFilteredResultIsSubsetOfInput(t *testing.T) {
	items := sampleRecords(20)

	filtered := Apply(items, Exact("PENDING", func(r record) string { return r.Status }))

	index := make(map[string]bool, len(items))
	for _, r := range items {
		index[r.ID] = true
	}
	for _, r := range filtered {
		if !index[r.ID] {
			t.Errorf("filtered record %q not present in input", r.ID)
		}
	}
}

func TestPaginateReturnsExactSlice(t *testing.T) {
	items := sampleRecords(25)

	for index := 0; index < 3; index++ {
		page := Paginate(items, index, 10)
		start := index * 10
		end := start + 10
		if end > len(items) {
			end = len(items)
		}
		if !reflect.DeepEqual(page.Items, items[start:end]) {
			t.Errorf("page %d: expected items[%d:%d]", index, start, end)
		}
	}
}

func TestPaginateBoundaries(t *testing.T) {
	items := sampleRecords(25)

	first := Paginate(items, 0, 10)
	if first.HasPrev {
		t.Error("first page must not have prev")
	}
	if !first.HasNext {
		t.Error("first page of 25 records must have next")
	}

	last := Paginate(items, 2, 10)
	if last.HasNext {
		t.Error("last page must not have next")
	}
	if !last.HasPrev {
		t.Error("last page must have prev")
	}
	if len(last.Items) != 5 {
		t.Errorf("last page should hold 5 records, got %d", len(last.Items))
	}

	exact := Paginate(sampleRecords(20), 1, 10)
	if exact.HasNext {
		t.Error("page covering the final record must not have next")
	}
}

func TestPaginateOutOfRangeFallsBackToFirstPage(t *testing.T) {
	items := sampleRecords(5)

	page := Paginate(items, 7, 10)
	if page.Index != 0 {
		t.Errorf("expected fallback to page 0, got %d", page.Index)
	}
	if len(page.Items) != 5 {
		t.Errorf("expected all 5 records on page 0, got %d", len(page.Items))
	}

	negative := Paginate(items, -1, 10)
	if negative.Index != 0 {
		t.Errorf("negative index should clamp to 0, got %d", negative.Index)
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	page := Paginate([]record{}, 0, 10)
	if len(page.Items) != 0 || page.HasNext || page.HasPrev {
		t.Errorf("empty collection should yield an empty, boundary-disabled page: %+v", page)
	}
	if page.TotalPages != 0 {
		t.Errorf("expected 0 total pages, got %d", page.TotalPages)
	}
}

func TestCollectionLoadCachesFetchResult(t *testing.T) {
	calls := 0
	col := NewCollection(func(ctx context.Context) ([]record, error) {
		calls++
		return sampleRecords(3), nil
	})

	if col.State() != StateIdle {
		t.Fatalf("new collection should be idle, got %v", col.State())
	}

	first, err := col.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	second, err := col.Load(context.Background())
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}

	if calls != 1 {
		t.Errorf("fetch should run once, ran %d times", calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("cached snapshot changed between loads")
	}
	if col.State() != StateLoaded {
		t.Errorf("expected loaded state, got %v", col.State())
	}
}

func TestCollectionFailureSticksUntilReset(t *testing.T) {
	fetchErr := errors.New("backend unavailable")
	calls := 0
	col := NewCollection(func(ctx context.Context) ([]record, error) {
		calls++
		if calls == 1 {
			return nil, fetchErr
		}
		return sampleRecords(2), nil
	})

	if _, err := col.Load(context.Background()); err != fetchErr {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if col.State() != StateFailed {
		t.Fatalf("expected failed state, got %v", col.State())
	}

	// No automatic retry: the failure is returned again
	if _, err := col.Load(context.Background()); err != fetchErr {
		t.Fatalf("failed collection must not retry, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("fetch ran %d times, want 1", calls)
	}

	// Reset models a remount and allows a fresh fetch
	col.Reset()
	if col.State() != StateIdle {
		t.Fatalf("reset should return to idle, got %v", col.State())
	}
	items, err := col.Load(context.Background())
	if err != nil {
		t.Fatalf("load after reset failed: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 records after recovery, got %d", len(items))
	}
}

func TestUpdateRewritesOnlyMatchingRecord(t *testing.T) {
	col := NewCollection(func(ctx context.Context) ([]record, error) {
		return []record{
			{ID: "L1", Status: "PENDING"},
			{ID: "L2", Status: "PENDING"},
			{ID: "L3", Status: "PENDING"},
		}, nil
	})
	if _, err := col.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	ok := col.Update(
		func(r record) bool { return r.ID == "L2" },
		func(r record) record { r.Status = "APPROVED"; return r },
	)
	if !ok {
		t.Fatal("expected a record to be updated")
	}

	items, _ := col.Load(context.Background())
	for _, r := range items {
		want := "PENDING"
		if r.ID == "L2" {
			want = "APPROVED"
		}
		if r.Status != want {
			t.Errorf("record %s: status %q, want %q", r.ID, r.Status, want)
		}
	}
}

func TestUpdateMissingRecordReturnsFalse(t *testing.T) {
	col := NewCollection(func(ctx context.Context) ([]record, error) {
		return sampleRecords(2), nil
	})
	if _, err := col.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	if col.Update(
		func(r record) bool { return r.ID == "missing" },
		func(r record) record { return r },
	) {
		t.Error("update of a missing record must report false")
	}
}

func TestPrependPutsNewRecordFirst(t *testing.T) {
	col := NewCollection(func(ctx context.Context) ([]record, error) {
		return sampleRecords(3), nil
	})
	if _, err := col.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	col.Prepend(record{ID: "new", Name: "Policy Update"})

	items, _ := col.Load(context.Background())
	if len(items) != 4 {
		t.Fatalf("expected 4 records, got %d", len(items))
	}
	if items[0].ID != "new" {
		t.Errorf("new record should be first, got %q", items[0].ID)
	}
}

func TestFindLooksUpCachedRecord(t *testing.T) {
	col := NewCollection(func(ctx context.Context) ([]record, error) {
		return sampleRecords(3), nil
	})
	if _, err := col.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	got, ok := col.Find(func(r record) bool { return r.ID == "b" })
	if !ok || got.ID != "b" {
		t.Errorf("expected record b, got %+v (found=%v)", got, ok)
	}

	if _, ok := col.Find(func(r record) bool { return r.ID == "zz" }); ok {
		t.Error("lookup of a missing record must report false")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	col := NewCollection(func(ctx context.Context) ([]record, error) {
		return sampleRecords(2), nil
	})
	items, err := col.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	items[0].Status = "MUTATED"

	fresh, _ := col.Load(context.Background())
	if fresh[0].Status == "MUTATED" {
		t.Error("mutating a snapshot must not leak into the cache")
	}
}
