package ports

import (
	"context"
	"testing"

	"github.com/aretw0/registrar/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// StoreFactory returns an empty RecordStore. It is called once per contract case.
type StoreFactory func(t *testing.T) RecordStore

// RunRecordStoreContract runs a suite of tests to verify that a RecordStore
// implementation adheres to the interface contract.
func RunRecordStoreContract(t *testing.T, newStore StoreFactory) {
	ctx := context.Background()

	t.Run("Insert and Get", func(t *testing.T) {
		store := newStore(t)

		in := sample("Ada", "Lovelace", 3.9, "Math")
		in.ID = 99
		in.IsDeleted = true

		id, err := store.Insert(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id, "identifiers start at 1")

		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		want := in
		want.ID = id
		want.IsDeleted = false
		assert.Equal(t, want, got)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		store := newStore(t)
		_, err := store.Get(ctx, 42)
		assert.ErrorIs(t, err, domain.ErrStudentNotFound)
	})

	t.Run("Identifiers Are Monotonic", func(t *testing.T) {
		store := newStore(t)
		var last int64
		for i := 0; i < 3; i++ {
			id, err := store.Insert(ctx, sample("F", "L", 2.0, "CS"))
			require.NoError(t, err)
			assert.Greater(t, id, last)
			last = id
		}
		require.NoError(t, store.SoftDelete(ctx, last))
		id, err := store.Insert(ctx, sample("F", "L", 2.0, "CS"))
		require.NoError(t, err)
		assert.Greater(t, id, last, "identifiers are never reused")
	})

	t.Run("ListAll Ordered", func(t *testing.T) {
		store := newStore(t)
		empty, err := store.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, empty)

		require.NoError(t, store.BulkLoad(ctx, []domain.Student{
			sample("A", "One", 1.0, "CS"),
			sample("B", "Two", 2.0, "Math"),
			sample("C", "Three", 3.0, "CS"),
		}))

		rows, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		for i, row := range rows {
			assert.Equal(t, int64(i+1), row.ID)
			assert.False(t, row.IsDeleted)
		}
		assert.Equal(t, "B", rows[1].FirstName)
		assert.Equal(t, 2.0, rows[1].GPA)
	})

	t.Run("UpdateField", func(t *testing.T) {
		store := newStore(t)
		id, err := store.Insert(ctx, sample("A", "One", 1.0, "CS"))
		require.NoError(t, err)
		other, err := store.Insert(ctx, sample("B", "Two", 2.0, "CS"))
		require.NoError(t, err)

		require.NoError(t, store.UpdateField(ctx, id, domain.FieldMajor, "Physics"))
		require.NoError(t, store.UpdateField(ctx, id, domain.FieldGPA, 3.25))
		require.NoError(t, store.UpdateField(ctx, id, domain.FieldCity, "Oakland"))

		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Physics", got.Major)
		assert.Equal(t, 3.25, got.GPA)
		assert.Equal(t, "Oakland", got.City)

		untouched, err := store.Get(ctx, other)
		require.NoError(t, err)
		assert.Equal(t, "CS", untouched.Major, "only the identified row changes")
		assert.Equal(t, 2.0, untouched.GPA)
	})

	t.Run("UpdateField Errors", func(t *testing.T) {
		store := newStore(t)
		id, err := store.Insert(ctx, sample("A", "One", 1.0, "CS"))
		require.NoError(t, err)

		assert.ErrorIs(t, store.UpdateField(ctx, 42, domain.FieldMajor, "Physics"), domain.ErrStudentNotFound)
		assert.ErrorIs(t, store.UpdateField(ctx, id, domain.FieldStudentID, int64(5)), domain.ErrFieldNotWritable)
		assert.ErrorIs(t, store.UpdateField(ctx, id, domain.Field(99), "x"), domain.ErrUnknownField)
		assert.ErrorIs(t, store.UpdateField(ctx, id, domain.FieldGPA, "abc"), domain.ErrInvalidValue)

		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 1.0, got.GPA)
	})

	t.Run("SoftDelete", func(t *testing.T) {
		store := newStore(t)
		id, err := store.Insert(ctx, sample("A", "One", 1.0, "CS"))
		require.NoError(t, err)

		require.NoError(t, store.SoftDelete(ctx, id))

		got, err := store.Get(ctx, id)
		require.NoError(t, err, "soft-deleted rows are still present")
		assert.True(t, got.IsDeleted)

		rows, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.True(t, rows[0].IsDeleted)

		assert.ErrorIs(t, store.SoftDelete(ctx, 42), domain.ErrStudentNotFound)
	})

	t.Run("QueryByField", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.BulkLoad(ctx, []domain.Student{
			sample("A", "One", 3.5, "CS"),
			sample("B", "Two", 2.0, "Math"),
			sample("C", "Three", 3.5, "CS"),
			sample("D", "Four", 1.0, "cs"),
		}))

		rows, err := store.QueryByField(ctx, domain.FieldMajor, "CS")
		require.NoError(t, err)
		require.Len(t, rows, 2, "exact match only")
		assert.Equal(t, int64(1), rows[0].ID)
		assert.Equal(t, int64(3), rows[1].ID)

		rows, err = store.QueryByField(ctx, domain.FieldGPA, 3.5)
		require.NoError(t, err)
		assert.Len(t, rows, 2)

		rows, err = store.QueryByField(ctx, domain.FieldMajor, "C%")
		require.NoError(t, err)
		assert.Empty(t, rows, "no pattern matching")

		require.NoError(t, store.SoftDelete(ctx, 1))
		rows, err = store.QueryByField(ctx, domain.FieldMajor, "CS")
		require.NoError(t, err)
		assert.Len(t, rows, 2, "soft-deleted rows remain queryable")

		rows, err = store.QueryByField(ctx, domain.FieldIsDeleted, 1)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(1), rows[0].ID)

		_, err = store.QueryByField(ctx, domain.Field(99), "x")
		assert.ErrorIs(t, err, domain.ErrUnknownField)
	})
}

func sample(first, last string, gpa float64, major string) domain.Student {
	return domain.Student{
		FirstName:         first,
		LastName:          last,
		GPA:               gpa,
		Major:             major,
		FacultyAdvisor:    "Dr. Hopper",
		Address:           "1 Main St",
		City:              "Springfield",
		State:             "IL",
		ZipCode:           "62701",
		MobilePhoneNumber: "555-0100",
	}
}
