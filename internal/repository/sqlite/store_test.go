package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"go-booking-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "booking.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func strPtr(s string) *string { return &s }

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestOpenTwiceAppliesMigrationsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booking.db")
	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestOpenWithExistingAppointmentsTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booking.db")
	raw, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = raw.Exec(`CREATE TABLE appointments (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL,
    company TEXT,
    service TEXT NOT NULL,
    preferred_date TEXT NOT NULL,
    preferred_time TEXT NOT NULL,
    description TEXT,
    status TEXT NOT NULL DEFAULT 'pending',
    created_at INTEGER NOT NULL
)`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	msg := &domain.ContactSubmission{Name: "Ravi", Email: "ravi@example.com", Subject: "Quote", Message: "Hello"}
	require.NoError(t, store.Contacts().Create(context.Background(), msg))
	require.NoError(t, store.Roles().GrantRole(context.Background(), "user-1", domain.RoleAdmin))
}

func TestAppointmentRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Should assign id, pending status and created_at", func(t *testing.T) {
		repo := openTempStore(t).Appointments()
		appt := &domain.Appointment{
			Name: "A", Email: "a@x.com", Phone: "9825014775",
			Service: "HT/LT Installation", PreferredDate: "2025-01-10", PreferredTime: "09:00 AM - 10:00 AM",
		}
		require.NoError(t, repo.Create(ctx, appt))

		assert.NotEmpty(t, appt.ID)
		assert.Equal(t, domain.AppointmentPending, appt.Status)
		assert.False(t, appt.CreatedAt.IsZero())

		items, err := repo.ListRecent(ctx, domain.ListOptions{Limit: 10})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, appt.ID, items[0].ID)
		assert.Nil(t, items[0].Company)
		assert.Nil(t, items[0].Description)
		assert.Equal(t, "2025-01-10", items[0].PreferredDate)
	})

	t.Run("Should keep optional fields", func(t *testing.T) {
		repo := openTempStore(t).Appointments()
		appt := &domain.Appointment{
			Name: "B", Email: "b@x.com", Phone: "9825014775", Company: strPtr("Acme"),
			Service: "Other", PreferredDate: "2025-01-11", PreferredTime: "02:00 PM - 03:00 PM",
			Description: strPtr("Panel upgrade"),
		}
		require.NoError(t, repo.Create(ctx, appt))

		items, err := repo.ListRecent(ctx, domain.ListOptions{})
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.NotNil(t, items[0].Company)
		assert.Equal(t, "Acme", *items[0].Company)
		assert.Equal(t, "Panel upgrade", *items[0].Description)
	})

	t.Run("Should list newest first and filter by status", func(t *testing.T) {
		repo := openTempStore(t).Appointments()
		var ids []string
		for _, name := range []string{"first", "second", "third"} {
			appt := &domain.Appointment{
				Name: name, Email: "a@x.com", Phone: "9825014775",
				Service: "Other", PreferredDate: "2025-01-10", PreferredTime: "09:00 AM - 10:00 AM",
			}
			require.NoError(t, repo.Create(ctx, appt))
			ids = append(ids, appt.ID)
		}

		items, err := repo.ListRecent(ctx, domain.ListOptions{Limit: 10})
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "third", items[0].Name)
		assert.Equal(t, "first", items[2].Name)

		_, err = repo.UpdateStatus(ctx, ids[0], domain.AppointmentConfirmed)
		require.NoError(t, err)

		confirmed, err := repo.ListRecent(ctx, domain.ListOptions{Status: "confirmed", Limit: 10})
		require.NoError(t, err)
		require.Len(t, confirmed, 1)
		assert.Equal(t, ids[0], confirmed[0].ID)

		page, err := repo.ListRecent(ctx, domain.ListOptions{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "second", page[0].Name)
	})

	t.Run("Should change only the status", func(t *testing.T) {
		repo := openTempStore(t).Appointments()
		appt := &domain.Appointment{
			Name: "A", Email: "a@x.com", Phone: "9825014775",
			Service: "Other", PreferredDate: "2025-01-10", PreferredTime: "09:00 AM - 10:00 AM",
		}
		require.NoError(t, repo.Create(ctx, appt))

		updated, err := repo.UpdateStatus(ctx, appt.ID, domain.AppointmentCancelled)
		require.NoError(t, err)
		assert.Equal(t, domain.AppointmentCancelled, updated.Status)
		assert.Equal(t, appt.Name, updated.Name)
		assert.True(t, appt.CreatedAt.Equal(updated.CreatedAt))

		back, err := repo.UpdateStatus(ctx, appt.ID, domain.AppointmentPending)
		require.NoError(t, err)
		assert.Equal(t, domain.AppointmentPending, back.Status)
	})

	t.Run("Should return ErrNotFound for an unknown id", func(t *testing.T) {
		repo := openTempStore(t).Appointments()
		_, err := repo.UpdateStatus(ctx, "missing", domain.AppointmentConfirmed)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		items, err := repo.ListRecent(ctx, domain.ListOptions{})
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Should reject a label outside the closed set", func(t *testing.T) {
		repo := openTempStore(t).Appointments()
		appt := &domain.Appointment{
			Name: "A", Email: "a@x.com", Phone: "9825014775",
			Service: "Other", PreferredDate: "2025-01-10", PreferredTime: "09:00 AM - 10:00 AM",
		}
		require.NoError(t, repo.Create(ctx, appt))

		_, err := repo.UpdateStatus(ctx, appt.ID, domain.AppointmentStatus("archived"))
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}

func TestContactRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Should store a message with status new", func(t *testing.T) {
		repo := openTempStore(t).Contacts()
		msg := &domain.ContactSubmission{Name: "Ravi", Email: "ravi@example.com", Subject: "Quote", Message: "Hello"}
		require.NoError(t, repo.Create(ctx, msg))
		assert.Equal(t, domain.ContactNew, msg.Status)

		items, err := repo.ListRecent(ctx, domain.ListOptions{Status: "new"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Nil(t, items[0].Phone)
	})

	t.Run("Should update status and report missing rows", func(t *testing.T) {
		repo := openTempStore(t).Contacts()
		msg := &domain.ContactSubmission{Name: "Ravi", Email: "ravi@example.com", Phone: strPtr("9825014775"), Subject: "Quote", Message: "Hello"}
		require.NoError(t, repo.Create(ctx, msg))

		updated, err := repo.UpdateStatus(ctx, msg.ID, domain.ContactReplied)
		require.NoError(t, err)
		assert.Equal(t, domain.ContactReplied, updated.Status)
		assert.Equal(t, "9825014775", *updated.Phone)

		_, err = repo.UpdateStatus(ctx, "missing", domain.ContactArchived)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRoleRepository(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	roles := store.Roles()

	ok, err := roles.HasRole(ctx, "user-1", domain.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, roles.GrantRole(ctx, "user-1", domain.RoleAdmin))
	require.NoError(t, roles.GrantRole(ctx, "user-1", domain.RoleAdmin))

	ok, err = roles.HasRole(ctx, "user-1", domain.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Ping(ctx))
}
