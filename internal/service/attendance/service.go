package attendance

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wagebook/wagebook-backend-go/internal/domain/attendance"
	"github.com/wagebook/wagebook-backend-go/internal/domain/audit"
	"github.com/wagebook/wagebook-backend-go/internal/domain/master/category"
	"github.com/wagebook/wagebook-backend-go/internal/domain/master/subcategory"
	"github.com/wagebook/wagebook-backend-go/internal/domain/worker"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/validator"
	"github.com/wagebook/wagebook-backend-go/internal/repository/postgresql"
	"github.com/wagebook/wagebook-backend-go/internal/service/ledger"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	worker.WorkerRepository
	category.CategoryRepository
	subcategory.SubcategoryRepository
	audit.AuditRepository
	ledgerService ledger.LedgerService
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	workerRepo worker.WorkerRepository,
	categoryRepo category.CategoryRepository,
	subcategoryRepo subcategory.SubcategoryRepository,
	auditRepo audit.AuditRepository,
	ledgerService ledger.LedgerService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                    db,
		AttendanceRepository:  attendanceRepo,
		WorkerRepository:      workerRepo,
		CategoryRepository:    categoryRepo,
		SubcategoryRepository: subcategoryRepo,
		AuditRepository:       auditRepo,
		ledgerService:         ledgerService,
	}
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.WorkerRepository.GetByID(ctx, req.WorkerID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.verifyRefs(ctx, req.CategoryID, req.SubcategoryID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	status := strings.ToLower(req.Status)

	rec := &attendance.Record{
		WorkerID:      req.WorkerID,
		Date:          date,
		Status:        status,
		CategoryID:    normalizeRef(req.CategoryID),
		SubcategoryID: normalizeRef(req.SubcategoryID),
		Amount:        wageFor(status, req.Amount),
		Narration:     req.Narration,
	}

	oldBalance, err := s.ledgerService.WorkerBalance(ctx, req.WorkerID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created, err := s.AttendanceRepository.Create(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.auditBalanceChange(ctx, req.WorkerID, oldBalance, audit.ReasonAttendanceMarked)

	return attendance.ToAttendanceResponse(created), nil
}

// BulkMark implements attendance.AttendanceService. All entries are written
// in one transaction, so a duplicate day for any worker rolls back the
// whole batch.
func (s *AttendanceServiceImpl) BulkMark(ctx context.Context, req attendance.BulkMarkRequest) (attendance.BulkMarkResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BulkMarkResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	records := make([]attendance.Record, 0, len(req.Entries))
	oldBalances := make(map[string]decimal.Decimal, len(req.Entries))
	for _, entry := range req.Entries {
		if _, err := s.WorkerRepository.GetByID(ctx, entry.WorkerID); err != nil {
			return attendance.BulkMarkResponse{}, err
		}
		if err := s.verifyRefs(ctx, entry.CategoryID, entry.SubcategoryID); err != nil {
			return attendance.BulkMarkResponse{}, err
		}

		balance, err := s.ledgerService.WorkerBalance(ctx, entry.WorkerID)
		if err != nil {
			return attendance.BulkMarkResponse{}, err
		}
		oldBalances[entry.WorkerID] = balance

		status := strings.ToLower(entry.Status)
		records = append(records, attendance.Record{
			WorkerID:      entry.WorkerID,
			Date:          date,
			Status:        status,
			CategoryID:    normalizeRef(entry.CategoryID),
			SubcategoryID: normalizeRef(entry.SubcategoryID),
			Amount:        wageFor(status, entry.Amount),
			Narration:     entry.Narration,
		})
	}

	var created []attendance.Record
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.AttendanceRepository.CreateBatch(txCtx, records)
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return attendance.BulkMarkResponse{}, err
	}

	for workerID, oldBalance := range oldBalances {
		s.auditBalanceChange(ctx, workerID, oldBalance, audit.ReasonAttendanceMarked)
	}

	resp := attendance.BulkMarkResponse{
		Date:    req.Date,
		Records: make([]attendance.AttendanceResponse, 0, len(created)),
	}
	for i := range created {
		resp.Records = append(resp.Records, attendance.ToAttendanceResponse(&created[i]))
	}

	return resp, nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	if !validator.IsValidUUID(id) {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	rec, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToAttendanceResponse(rec), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.AttendanceRepository.List(ctx, &filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	resp := attendance.ListAttendanceResponse{
		Records: make([]attendance.AttendanceResponse, 0, len(records)),
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
	}
	for i := range records {
		resp.Records = append(resp.Records, attendance.ToAttendanceResponse(&records[i]))
	}

	return resp, nil
}

// UpdateAttendance implements attendance.AttendanceService. Fields left out
// of the request keep their stored values, and the merged record must still
// satisfy the same rules as a fresh mark.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Status != nil {
		rec.Status = strings.ToLower(*req.Status)
	}
	if req.CategoryID != nil {
		rec.CategoryID = normalizeRef(req.CategoryID)
	}
	if req.SubcategoryID != nil {
		rec.SubcategoryID = normalizeRef(req.SubcategoryID)
	}
	if req.Amount != nil {
		parsed, provided, perr := validator.ParseAmount(*req.Amount)
		if perr != nil {
			return attendance.AttendanceResponse{}, perr
		}
		if provided {
			rec.Amount = &parsed
		} else {
			rec.Amount = nil
		}
	}
	if req.Narration != nil {
		if validator.IsEmpty(*req.Narration) {
			rec.Narration = nil
		} else {
			rec.Narration = req.Narration
		}
	}

	if err := s.validateMerged(rec, req.Amount != nil); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.verifyRefs(ctx, rec.CategoryID, rec.SubcategoryID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	oldBalance, err := s.ledgerService.WorkerBalance(ctx, rec.WorkerID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.auditBalanceChange(ctx, rec.WorkerID, oldBalance, audit.ReasonAttendanceUpdated)

	updated, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToAttendanceResponse(updated), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return attendance.ErrAttendanceNotFound
	}

	rec, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	oldBalance, err := s.ledgerService.WorkerBalance(ctx, rec.WorkerID)
	if err != nil {
		return err
	}

	if err := s.AttendanceRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.auditBalanceChange(ctx, rec.WorkerID, oldBalance, audit.ReasonAttendanceRemoved)

	return nil
}

// validateMerged enforces the cross-field rules on the record after the
// request has been merged in. amountGiven tells an explicit wage in the
// request apart from one carried over from the stored row: flipping a paid
// day to absent silently clears the wage, but sending a wage together with
// absent is rejected.
func (s *AttendanceServiceImpl) validateMerged(rec *attendance.Record, amountGiven bool) error {
	if rec.Status == attendance.StatusAbsent {
		if rec.Amount != nil && rec.Amount.IsPositive() {
			if amountGiven {
				return attendance.ErrAbsentWithAmount
			}
			rec.Amount = nil
		}
		if rec.Amount != nil && rec.Amount.IsZero() {
			rec.Amount = nil
		}
		return nil
	}

	var errs validator.ValidationErrors
	if rec.Amount == nil || !rec.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero for present and halfday records",
		})
	}
	if rec.CategoryID == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "category_id",
			Message: "category_id is required for present and halfday records",
		})
	}
	if rec.SubcategoryID == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "subcategory_id",
			Message: "subcategory_id is required for present and halfday records",
		})
	}
	if len(errs) > 0 {
		return errs
	}

	return nil
}

// verifyRefs checks that referenced categories and subcategories exist and
// that the subcategory belongs to the category when both are given.
func (s *AttendanceServiceImpl) verifyRefs(ctx context.Context, categoryID, subcategoryID *string) error {
	var sc *subcategory.Subcategory
	if subcategoryID != nil && *subcategoryID != "" {
		got, err := s.SubcategoryRepository.GetByID(ctx, *subcategoryID)
		if err != nil {
			return err
		}
		sc = &got
	}

	if categoryID != nil && *categoryID != "" {
		if sc != nil {
			if sc.CategoryID != *categoryID {
				return subcategory.ErrCategoryMismatch
			}
			// The subcategory row proves the category exists.
			return nil
		}
		if _, err := s.CategoryRepository.GetByID(ctx, *categoryID); err != nil {
			return err
		}
	}

	return nil
}

// auditBalanceChange appends a balance audit row when the worker's balance
// moved. The append is best effort and never fails the triggering write.
func (s *AttendanceServiceImpl) auditBalanceChange(ctx context.Context, workerID string, oldBalance decimal.Decimal, reason string) {
	newBalance, err := s.ledgerService.WorkerBalance(ctx, workerID)
	if err != nil || oldBalance.Equal(newBalance) {
		return
	}
	_ = s.AuditRepository.Append(ctx, &audit.BalanceAudit{
		WorkerID:     workerID,
		OldBalance:   oldBalance,
		NewBalance:   newBalance,
		ChangeReason: reason,
	})
}

// normalizeRef maps empty reference strings to nil so optional columns are
// stored as NULL.
func normalizeRef(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}

// wageFor parses the wage amount for a record. Absent days never carry a
// wage, and a zero amount is stored as NULL.
func wageFor(status, amount string) *decimal.Decimal {
	if status == attendance.StatusAbsent {
		return nil
	}
	parsed, provided, err := validator.ParseAmount(amount)
	if err != nil || !provided || !parsed.IsPositive() {
		return nil
	}
	return &parsed
}
