package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"animal-registry/internal/adapters/storage/memory"
	"animal-registry/internal/domain/animals"

	"github.com/google/go-cmp/cmp"
	"github.com/m-mizutani/gt"
)

func animal(id, name string) animals.Animal {
	return animals.Animal{ID: id, Name: name, Breed: animals.BreedDog, Age: 1, Weight: 1, Height: 1}
}

func TestAnimalRepo_AppendKeepsOrder(t *testing.T) {
	repo := memory.NewAnimalRepo()
	ctx := context.Background()

	r1 := animal("id-1", "Milou")
	r2 := animal("id-2", "Rex")
	gt.NoError(t, repo.Append(ctx, r1)).Required()
	gt.NoError(t, repo.Append(ctx, r2)).Required()

	got, err := repo.List(ctx)
	gt.NoError(t, err).Required()
	if diff := cmp.Diff([]animals.Animal{r1, r2}, got); diff != "" {
		t.Fatalf("list mismatch:\n%s", diff)
	}
}

func TestAnimalRepo_ListIsIdempotent(t *testing.T) {
	repo := memory.NewAnimalRepo()
	ctx := context.Background()

	empty, err := repo.List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, empty).Length(0)

	gt.NoError(t, repo.Append(ctx, animal("id-1", "Milou"))).Required()

	first, err := repo.List(ctx)
	gt.NoError(t, err).Required()
	second, err := repo.List(ctx)
	gt.NoError(t, err).Required()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("list changed without append:\n%s", diff)
	}
}

func TestAnimalRepo_ListReturnsCopy(t *testing.T) {
	repo := memory.NewAnimalRepo()
	ctx := context.Background()
	gt.NoError(t, repo.Append(ctx, animal("id-1", "Milou"))).Required()

	got, err := repo.List(ctx)
	gt.NoError(t, err).Required()
	got[0].Name = "changed"

	again, err := repo.List(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, again[0].Name).Equal("Milou")
}

func TestAnimalRepo_RejectsEmptyAndDuplicateID(t *testing.T) {
	repo := memory.NewAnimalRepo()
	ctx := context.Background()

	gt.Value(t, repo.Append(ctx, animal("", "Milou"))).NotNil()
	gt.NoError(t, repo.Append(ctx, animal("id-1", "Milou"))).Required()
	gt.Value(t, repo.Append(ctx, animal("id-1", "Rex"))).NotNil()

	n, err := repo.Count(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, n).Equal(1)
}

func TestAnimalRepo_GetByID(t *testing.T) {
	repo := memory.NewAnimalRepo()
	ctx := context.Background()

	gt.NoError(t, repo.Append(ctx, animal("id-1", "Milou"))).Required()
	gt.NoError(t, repo.Append(ctx, animal("id-2", "Rex"))).Required()

	got, err := repo.GetByID(ctx, "id-2")
	gt.NoError(t, err).Required()
	gt.Value(t, got.Name).Equal("Rex")

	_, err = repo.GetByID(ctx, "id-3")
	gt.Error(t, err).Is(memory.ErrNotFound)
	gt.Error(t, err).Is(animals.ErrNotFound)
}

func TestAnimalRepo_ConcurrentAppend(t *testing.T) {
	repo := memory.NewAnimalRepo()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Append(ctx, animal(fmt.Sprintf("id-%d", i), "Milou"))
		}(i)
	}
	wg.Wait()

	items, err := repo.List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, items).Length(n)

	for _, a := range items {
		got, err := repo.GetByID(ctx, a.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.ID).Equal(a.ID)
	}
}
