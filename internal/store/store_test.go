package store

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user_directory/internal/domain"
)

func TestCreateUsesMaxIDPlusOne(t *testing.T) {
	s := New("db.json", []domain.RawUser{
		domain.NewRawUser(domain.User{ID: 7, Name: "A", Role: "a"}),
		domain.NewRawUser(domain.User{ID: 3, Name: "B", Role: "b"}),
	})

	u := s.Create("C", "c")
	assert.Equal(t, domain.User{ID: 8, Name: "C", Role: "c"}, u)
	assert.Len(t, s.Snapshot(), 3)
}

func TestCreateIntoEmptySetStartsAtOne(t *testing.T) {
	s := New("db.json", nil)
	assert.Equal(t, int64(1), s.Create("A", "a").ID)
	assert.Equal(t, int64(2), s.Create("B", "b").ID)
}

func TestCreateIgnoresNonNumericIDs(t *testing.T) {
	s := New("db.json", []domain.RawUser{
		{ID: json.RawMessage(`"99"`)},
		domain.NewRawUser(domain.User{ID: 4, Name: "A", Role: "a"}),
	})
	assert.Equal(t, int64(5), s.Create("B", "b").ID)
}

func TestDeleteRemovesOnlyMatch(t *testing.T) {
	s := New("db.json", domain.SeedUsers())
	created := s.Create("C", "c")

	removed, err := s.Delete(2)
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: 2, Name: "User", Role: "user"}, removed)

	left := s.Snapshot()
	require.Len(t, left, 2)
	first, _ := left[0].NumericID()
	second, _ := left[1].NumericID()
	assert.Equal(t, []int64{1, created.ID}, []int64{first, second})
}

func TestDeleteMissingID(t *testing.T) {
	s := New("db.json", domain.SeedUsers())
	_, err := s.Delete(42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, s.Snapshot(), 2)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New("db.json", domain.SeedUsers())
	snap := s.Snapshot()
	snap[0] = domain.RawUser{}
	id, ok := s.Snapshot()[0].NumericID()
	assert.True(t, ok)
	assert.Equal(t, int64(1), id)
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	s := New("db.json", nil)
	const n = 50

	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- s.Create("U", "u").ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
