package filestorage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"hr-admin-backend/models"
)

func TestDocumentKey(t *testing.T) {
	t.Run(`key layout`, func(t *testing.T) {
		key := DocumentKey("company-1", "user-1", "Passport Scan.PDF")
		require.True(t, strings.HasPrefix(key, "company-1/user-1/"))
		require.True(t, strings.HasSuffix(key, ".pdf"))
		require.NotEqual(t, key, DocumentKey("company-1", "user-1", "Passport Scan.PDF"))
	})

	t.Run(`company scope`, func(t *testing.T) {
		require.True(t, BelongsToCompany("company-1", "company-1/user-1/a.pdf"))
		require.False(t, BelongsToCompany("company-1", "company-2/user-1/a.pdf"))
		require.False(t, BelongsToCompany("company-1", "company-1/../company-2/a.pdf"))
		require.False(t, BelongsToCompany("", "/user-1/a.pdf"))
	})

	t.Run(`user scope`, func(t *testing.T) {
		require.True(t, BelongsToUser("company-1", "user-1", "company-1/user-1/a.pdf"))
		require.False(t, BelongsToUser("company-1", "user-1", "company-1/user-10/a.pdf"))
		require.False(t, BelongsToUser("company-1", "user-1", "company-1/user-2/a.pdf"))
		require.False(t, BelongsToUser("company-1", "", "company-1//a.pdf"))
	})

	t.Run(`read access by role`, func(t *testing.T) {
		employee := models.Principal{UserID: "user-1", CompanyID: "company-1", Role: models.EmployeeRole}
		manager := models.Principal{UserID: "user-2", CompanyID: "company-1", Role: models.ManagerRole}
		require.True(t, CanRead(employee, "company-1/user-1/a.pdf"))
		require.False(t, CanRead(employee, "company-1/user-3/a.pdf"))
		require.True(t, CanRead(manager, "company-1/user-3/a.pdf"))
		require.False(t, CanRead(manager, "company-2/user-3/a.pdf"))
	})

	t.Run(`foreign document is not found before storage access`, func(t *testing.T) {
		storage := impl{}
		employee := models.Principal{UserID: "user-1", CompanyID: "company-1", Role: models.EmployeeRole}
		data, _, err := storage.GetDocument(context.Background(), employee, "company-1/user-3/a.pdf")
		require.NoError(t, err)
		require.Nil(t, data)

		_, _, err = storage.GetDocument(context.Background(), employee, "company-1/user-1/a.pdf")
		require.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run(`not configured storage`, func(t *testing.T) {
		storage := impl{}
		_, err := storage.UploadDocument(context.Background(), "company-1", "user-1", strings.NewReader("x"), 1, "a.txt", "")
		require.ErrorIs(t, err, ErrNotConfigured)
	})
}
