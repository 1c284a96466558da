package worker

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wagebook/wagebook-backend-go/internal/domain/audit"
	"github.com/wagebook/wagebook-backend-go/internal/domain/worker"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/validator"
	"github.com/wagebook/wagebook-backend-go/internal/service/ledger"
)

type WorkerService interface {
	CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error)
	GetWorker(ctx context.Context, id string) (worker.WorkerResponse, error)
	ListWorkers(ctx context.Context, req worker.ListWorkersRequest) (worker.ListWorkersResponse, error)
	UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error)
	DeleteWorker(ctx context.Context, id string) error
	ListWorkerAudits(ctx context.Context, workerID string, limit int) ([]audit.BalanceAuditResponse, error)
}

type workerServiceImpl struct {
	workerRepo    worker.WorkerRepository
	auditRepo     audit.AuditRepository
	ledgerService ledger.LedgerService
}

func NewWorkerService(
	workerRepo worker.WorkerRepository,
	auditRepo audit.AuditRepository,
	ledgerService ledger.LedgerService,
) WorkerService {
	return &workerServiceImpl{
		workerRepo:    workerRepo,
		auditRepo:     auditRepo,
		ledgerService: ledgerService,
	}
}

// CreateWorker implements WorkerService.
func (s *workerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	opening, _, err := validator.ParseAmount(req.OpeningBalance)
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to parse opening balance: %w", err)
	}

	entity := worker.Worker{
		Name:           req.Name,
		Address:        req.Address,
		Phone:          normalizePhonePtr(req.Phone),
		OpeningBalance: opening,
	}

	if err := s.workerRepo.Create(ctx, &entity); err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to create worker: %w", err)
	}

	s.auditBalanceChange(ctx, entity.ID, decimal.Zero, audit.ReasonOpeningBalanceSet)

	return s.toResponse(ctx, &entity)
}

// GetWorker implements WorkerService.
func (s *workerServiceImpl) GetWorker(ctx context.Context, id string) (worker.WorkerResponse, error) {
	if !validator.IsValidUUID(id) {
		return worker.WorkerResponse{}, worker.ErrWorkerNotFound
	}

	entity, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return s.toResponse(ctx, entity)
}

// ListWorkers implements WorkerService.
func (s *workerServiceImpl) ListWorkers(ctx context.Context, req worker.ListWorkersRequest) (worker.ListWorkersResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.ListWorkersResponse{}, err
	}

	workers, total, err := s.workerRepo.List(ctx, &req)
	if err != nil {
		return worker.ListWorkersResponse{}, fmt.Errorf("failed to list workers: %w", err)
	}

	resp := worker.ListWorkersResponse{
		Workers: make([]worker.WorkerResponse, 0, len(workers)),
		Total:   total,
		Page:    req.Page,
		Limit:   req.Limit,
	}
	for i := range workers {
		wr, err := s.toResponse(ctx, &workers[i])
		if err != nil {
			return worker.ListWorkersResponse{}, err
		}
		resp.Workers = append(resp.Workers, wr)
	}

	return resp, nil
}

// UpdateWorker implements WorkerService.
func (s *workerServiceImpl) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	entity, err := s.workerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	openingChanged := false
	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.Address != nil {
		entity.Address = req.Address
	}
	if req.Phone != nil {
		entity.Phone = normalizePhonePtr(req.Phone)
	}
	if req.OpeningBalance != nil {
		opening, _, err := validator.ParseAmount(*req.OpeningBalance)
		if err != nil {
			return worker.WorkerResponse{}, fmt.Errorf("failed to parse opening balance: %w", err)
		}
		openingChanged = !entity.OpeningBalance.Equal(opening)
		entity.OpeningBalance = opening
	}

	oldBalance := decimal.Zero
	if openingChanged {
		oldBalance, err = s.ledgerService.WorkerBalance(ctx, entity.ID)
		if err != nil {
			return worker.WorkerResponse{}, err
		}
	}

	if err := s.workerRepo.Update(ctx, entity); err != nil {
		return worker.WorkerResponse{}, err
	}

	if openingChanged {
		s.auditBalanceChange(ctx, entity.ID, oldBalance, audit.ReasonOpeningBalanceUpdated)
	}

	return s.toResponse(ctx, entity)
}

// DeleteWorker implements WorkerService. The worker's attendance, payment
// and audit rows cascade away with it.
func (s *workerServiceImpl) DeleteWorker(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return worker.ErrWorkerNotFound
	}

	return s.workerRepo.Delete(ctx, id)
}

// ListWorkerAudits implements WorkerService.
func (s *workerServiceImpl) ListWorkerAudits(ctx context.Context, workerID string, limit int) ([]audit.BalanceAuditResponse, error) {
	if !validator.IsValidUUID(workerID) {
		return nil, worker.ErrWorkerNotFound
	}

	if _, err := s.workerRepo.GetByID(ctx, workerID); err != nil {
		return nil, err
	}

	audits, err := s.auditRepo.ListByWorker(ctx, workerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list balance audits: %w", err)
	}

	responses := make([]audit.BalanceAuditResponse, 0, len(audits))
	for i := range audits {
		responses = append(responses, audit.ToBalanceAuditResponse(&audits[i]))
	}

	return responses, nil
}

// auditBalanceChange appends a balance audit row when the worker's balance
// moved. The append is best effort and never fails the triggering write.
func (s *workerServiceImpl) auditBalanceChange(ctx context.Context, workerID string, oldBalance decimal.Decimal, reason string) {
	newBalance, err := s.ledgerService.WorkerBalance(ctx, workerID)
	if err != nil || oldBalance.Equal(newBalance) {
		return
	}
	_ = s.auditRepo.Append(ctx, &audit.BalanceAudit{
		WorkerID:     workerID,
		OldBalance:   oldBalance,
		NewBalance:   newBalance,
		ChangeReason: reason,
	})
}

func (s *workerServiceImpl) toResponse(ctx context.Context, entity *worker.Worker) (worker.WorkerResponse, error) {
	resp := worker.ToWorkerResponse(entity)

	balance, err := s.ledgerService.WorkerBalance(ctx, entity.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	resp.Balance = balance.StringFixed(2)

	return resp, nil
}

func normalizePhonePtr(phone *string) *string {
	if phone == nil || validator.IsEmpty(*phone) {
		return nil
	}
	normalized := validator.NormalizePhone(*phone)
	return &normalized
}
