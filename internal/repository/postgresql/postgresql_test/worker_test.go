package postgresql_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagebook/wagebook-backend-go/internal/domain/attendance"
	"github.com/wagebook/wagebook-backend-go/internal/domain/worker"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
	"github.com/wagebook/wagebook-backend-go/internal/repository/postgresql"
)

var testDB *database.DB

func init() {
	setup, err := NewTestDatabase()
	if err != nil {
		panic("Failed to connect to test database: " + err.Error())
	}
	testDB = setup.DB
}

// Tests isolate through per-test unique rows rather than truncation, so
// they stay safe under t.Parallel.

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().Unix(), time.Now().Nanosecond())
}

func uniquePhone() string {
	return fmt.Sprintf("9%09d", time.Now().UnixNano()%1000000000)
}

func createTestWorker(t *testing.T, ctx context.Context, name, opening string) string {
	t.Helper()
	var workerID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO workers (id, name, opening_balance)
		VALUES (gen_random_uuid(), $1, $2)
		RETURNING id
	`, name, opening).Scan(&workerID)
	require.NoError(t, err)
	return workerID
}

func createTestCategory(t *testing.T, ctx context.Context, name string) string {
	t.Helper()
	var categoryID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO categories (id, name)
		VALUES (gen_random_uuid(), $1)
		RETURNING id
	`, name).Scan(&categoryID)
	require.NoError(t, err)
	return categoryID
}

func createTestSubcategory(t *testing.T, ctx context.Context, categoryID, name string) string {
	t.Helper()
	var subcategoryID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO subcategories (id, category_id, name)
		VALUES (gen_random_uuid(), $1, $2)
		RETURNING id
	`, categoryID, name).Scan(&subcategoryID)
	require.NoError(t, err)
	return subcategoryID
}

// ===== WORKER REPOSITORY TESTS =====

func TestWorkerRepository_Create_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	workerRepo := postgresql.NewWorkerRepository(testDB)

	phone := uniquePhone()
	newWorker := worker.Worker{
		Name:           uniqueName("mason"),
		Phone:          strPtr(phone),
		Address:        strPtr("12 Canal Road"),
		OpeningBalance: decimal.RequireFromString("250.00"),
	}

	err := workerRepo.Create(ctx, &newWorker)

	assert.NoError(t, err)
	assert.NotEmpty(t, newWorker.ID)
	assert.False(t, newWorker.CreatedAt.IsZero())
	assert.False(t, newWorker.UpdatedAt.IsZero())
}

func TestWorkerRepository_Create_DuplicatePhone(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	workerRepo := postgresql.NewWorkerRepository(testDB)

	phone := uniquePhone()
	first := worker.Worker{Name: uniqueName("mason"), Phone: strPtr(phone)}
	require.NoError(t, workerRepo.Create(ctx, &first))

	second := worker.Worker{Name: uniqueName("mason"), Phone: strPtr(phone)}
	err := workerRepo.Create(ctx, &second)

	assert.ErrorIs(t, err, worker.ErrPhoneExists)
}

func TestWorkerRepository_GetByID_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	workerRepo := postgresql.NewWorkerRepository(testDB)

	name := uniqueName("painter")
	workerID := createTestWorker(t, ctx, name, "175.50")

	retrieved, err := workerRepo.GetByID(ctx, workerID)

	assert.NoError(t, err)
	assert.Equal(t, workerID, retrieved.ID)
	assert.Equal(t, name, retrieved.Name)
	assert.True(t, retrieved.OpeningBalance.Equal(decimal.RequireFromString("175.50")))
	assert.Nil(t, retrieved.Phone)
	assert.Nil(t, retrieved.Address)
}

func TestWorkerRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	workerRepo := postgresql.NewWorkerRepository(testDB)

	_, err := workerRepo.GetByID(ctx, uuid.New().String())

	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestWorkerRepository_Update_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	workerRepo := postgresql.NewWorkerRepository(testDB)

	workerID := createTestWorker(t, ctx, uniqueName("mason"), "100.00")
	current, err := workerRepo.GetByID(ctx, workerID)
	require.NoError(t, err)

	current.Name = uniqueName("foreman")
	current.Address = strPtr("7 Mill Lane")
	current.OpeningBalance = decimal.RequireFromString("300.00")
	err = workerRepo.Update(ctx, current)

	assert.NoError(t, err)

	updated, err := workerRepo.GetByID(ctx, workerID)
	assert.NoError(t, err)
	assert.Equal(t, current.Name, updated.Name)
	require.NotNil(t, updated.Address)
	assert.Equal(t, "7 Mill Lane", *updated.Address)
	assert.True(t, updated.OpeningBalance.Equal(decimal.RequireFromString("300.00")))
}

func TestWorkerRepository_Update_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	workerRepo := postgresql.NewWorkerRepository(testDB)

	missing := worker.Worker{ID: uuid.New().String(), Name: "nobody"}
	err := workerRepo.Update(ctx, &missing)

	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestWorkerRepository_Delete_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	workerRepo := postgresql.NewWorkerRepository(testDB)

	workerID := createTestWorker(t, ctx, uniqueName("mason"), "0")

	err := workerRepo.Delete(ctx, workerID)

	assert.NoError(t, err)

	_, err = workerRepo.GetByID(ctx, workerID)
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestWorkerRepository_Delete_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	workerRepo := postgresql.NewWorkerRepository(testDB)

	err := workerRepo.Delete(ctx, uuid.New().String())

	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestWorkerRepository_List_SearchAndPagination(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	workerRepo := postgresql.NewWorkerRepository(testDB)

	needle := uniqueName("crew")
	createTestWorker(t, ctx, needle+"-a", "0")
	createTestWorker(t, ctx, needle+"-b", "0")
	createTestWorker(t, ctx, needle+"-c", "0")

	firstPage, total, err := workerRepo.List(ctx, &worker.ListWorkersRequest{
		Search: needle,
		Page:   1,
		Limit:  2,
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, firstPage, 2)
	assert.Equal(t, needle+"-a", firstPage[0].Name)
	assert.Equal(t, needle+"-b", firstPage[1].Name)

	secondPage, total, err := workerRepo.List(ctx, &worker.ListWorkersRequest{
		Search: needle,
		Page:   2,
		Limit:  2,
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, secondPage, 1)
	assert.Equal(t, needle+"-c", secondPage[0].Name)
}

// ===== ATTENDANCE REPOSITORY TESTS =====

func TestAttendanceRepository_Create_ReturnsJoinedNames(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	attendanceRepo := postgresql.NewAttendanceRepository(testDB)

	workerName := uniqueName("mason")
	categoryName := uniqueName("masonry")
	workerID := createTestWorker(t, ctx, workerName, "0")
	categoryID := createTestCategory(t, ctx, categoryName)
	subcategoryID := createTestSubcategory(t, ctx, categoryID, "Brick Work")

	created, err := attendanceRepo.Create(ctx, &attendance.Record{
		WorkerID:      workerID,
		Date:          time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:        attendance.StatusPresent,
		CategoryID:    strPtr(categoryID),
		SubcategoryID: strPtr(subcategoryID),
		Amount:        decPtr("500.00"),
	})

	assert.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	require.NotNil(t, created.WorkerName)
	assert.Equal(t, workerName, *created.WorkerName)
	require.NotNil(t, created.CategoryName)
	assert.Equal(t, categoryName, *created.CategoryName)
	require.NotNil(t, created.SubcategoryName)
	assert.Equal(t, "Brick Work", *created.SubcategoryName)
	require.NotNil(t, created.Amount)
	assert.True(t, created.Amount.Equal(decimal.RequireFromString("500.00")))
}

func TestAttendanceRepository_Create_DuplicateDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	attendanceRepo := postgresql.NewAttendanceRepository(testDB)

	workerID := createTestWorker(t, ctx, uniqueName("mason"), "0")
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := attendanceRepo.Create(ctx, &attendance.Record{
		WorkerID: workerID,
		Date:     date,
		Status:   attendance.StatusPresent,
		Amount:   decPtr("500.00"),
	})
	require.NoError(t, err)

	_, err = attendanceRepo.Create(ctx, &attendance.Record{
		WorkerID: workerID,
		Date:     date,
		Status:   attendance.StatusAbsent,
	})

	assert.ErrorIs(t, err, attendance.ErrDuplicateDay)
}

func TestAttendanceRepository_GetByID_NullOptionals(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	attendanceRepo := postgresql.NewAttendanceRepository(testDB)

	workerID := createTestWorker(t, ctx, uniqueName("mason"), "0")

	created, err := attendanceRepo.Create(ctx, &attendance.Record{
		WorkerID: workerID,
		Date:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:   attendance.StatusAbsent,
	})
	require.NoError(t, err)

	retrieved, err := attendanceRepo.GetByID(ctx, created.ID)

	assert.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, retrieved.Status)
	assert.Nil(t, retrieved.CategoryID)
	assert.Nil(t, retrieved.SubcategoryID)
	assert.Nil(t, retrieved.Amount)
	assert.Nil(t, retrieved.Narration)
	assert.NotNil(t, retrieved.WorkerName)
	assert.Nil(t, retrieved.CategoryName)
	assert.Nil(t, retrieved.SubcategoryName)
}

func TestAttendanceRepository_CreateBatch_SortsByWorkerName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	attendanceRepo := postgresql.NewAttendanceRepository(testDB)

	prefix := uniqueName("crew")
	firstID := createTestWorker(t, ctx, prefix+"-a", "0")
	secondID := createTestWorker(t, ctx, prefix+"-b", "0")
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	// Queue in reverse name order to prove the fetch sorts.
	created, err := attendanceRepo.CreateBatch(ctx, []attendance.Record{
		{WorkerID: secondID, Date: date, Status: attendance.StatusPresent, Amount: decPtr("400.00")},
		{WorkerID: firstID, Date: date, Status: attendance.StatusHalfday, Amount: decPtr("200.00")},
	})

	assert.NoError(t, err)
	require.Len(t, created, 2)
	require.NotNil(t, created[0].WorkerName)
	assert.Equal(t, prefix+"-a", *created[0].WorkerName)
	assert.Equal(t, attendance.StatusHalfday, created[0].Status)
	require.NotNil(t, created[1].WorkerName)
	assert.Equal(t, prefix+"-b", *created[1].WorkerName)
	assert.Equal(t, attendance.StatusPresent, created[1].Status)
}

func TestAttendanceRepository_List_StatusAndDateFilters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	attendanceRepo := postgresql.NewAttendanceRepository(testDB)

	workerID := createTestWorker(t, ctx, uniqueName("mason"), "0")
	days := []attendance.Record{
		{WorkerID: workerID, Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent, Amount: decPtr("500.00")},
		{WorkerID: workerID, Date: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), Status: attendance.StatusAbsent},
		{WorkerID: workerID, Date: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent, Amount: decPtr("500.00")},
	}
	for i := range days {
		_, err := attendanceRepo.Create(ctx, &days[i])
		require.NoError(t, err)
	}

	present, total, err := attendanceRepo.List(ctx, &attendance.AttendanceFilter{
		WorkerID: strPtr(workerID),
		Status:   strPtr(attendance.StatusPresent),
		Page:     1,
		Limit:    20,
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, present, 2)

	single, total, err := attendanceRepo.List(ctx, &attendance.AttendanceFilter{
		WorkerID: strPtr(workerID),
		Date:     strPtr("2024-03-11"),
		Page:     1,
		Limit:    20,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, single, 1)
	assert.Equal(t, attendance.StatusAbsent, single[0].Status)
}

// ===== HELPER FUNCTIONS =====

func strPtr(s string) *string {
	return &s
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
