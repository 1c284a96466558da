package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wagebook/wagebook-backend-go/internal/domain/audit"
	"github.com/wagebook/wagebook-backend-go/internal/domain/payment"
	"github.com/wagebook/wagebook-backend-go/internal/domain/worker"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/validator"
	"github.com/wagebook/wagebook-backend-go/internal/service/ledger"
)

type PaymentService interface {
	// RecordPayment registers money handed to a worker and reduces what is
	// owed to them.
	RecordPayment(ctx context.Context, req payment.RecordPaymentRequest) (payment.PaymentResponse, error)

	// GetPayment retrieves a single payment by ID.
	GetPayment(ctx context.Context, id string) (payment.PaymentResponse, error)

	// ListPayments retrieves payments with filters.
	ListPayments(ctx context.Context, filter payment.PaymentFilter) (payment.ListPaymentsResponse, error)

	// DeletePayment removes a payment, restoring the amount to the
	// worker's balance.
	DeletePayment(ctx context.Context, id string) error
}

type paymentServiceImpl struct {
	paymentRepo   payment.PaymentRepository
	workerRepo    worker.WorkerRepository
	auditRepo     audit.AuditRepository
	ledgerService ledger.LedgerService
}

func NewPaymentService(
	paymentRepo payment.PaymentRepository,
	workerRepo worker.WorkerRepository,
	auditRepo audit.AuditRepository,
	ledgerService ledger.LedgerService,
) PaymentService {
	return &paymentServiceImpl{
		paymentRepo:   paymentRepo,
		workerRepo:    workerRepo,
		auditRepo:     auditRepo,
		ledgerService: ledgerService,
	}
}

// RecordPayment implements PaymentService.
func (s *paymentServiceImpl) RecordPayment(ctx context.Context, req payment.RecordPaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		return payment.PaymentResponse{}, err
	}

	amount, _, err := validator.ParseAmount(req.Amount)
	if err != nil {
		return payment.PaymentResponse{}, fmt.Errorf("failed to parse amount: %w", err)
	}

	oldBalance, err := s.ledgerService.WorkerBalance(ctx, req.WorkerID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	// Paying out more than is owed needs an explicit confirmation.
	if amount.GreaterThan(oldBalance) && !req.AllowNegativeBalance {
		return payment.PaymentResponse{}, payment.ErrExceedsBalance
	}

	date, _ := validator.IsValidDate(req.Date)

	entity := &payment.Payment{
		WorkerID:    req.WorkerID,
		Date:        date,
		Amount:      amount,
		PaymentMode: strings.ToLower(req.PaymentMode),
		Narration:   req.Narration,
	}

	created, err := s.paymentRepo.Create(ctx, entity)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	s.auditBalanceChange(ctx, req.WorkerID, oldBalance, audit.ReasonPaymentReceived)

	return payment.ToPaymentResponse(created), nil
}

// GetPayment implements PaymentService.
func (s *paymentServiceImpl) GetPayment(ctx context.Context, id string) (payment.PaymentResponse, error) {
	if !validator.IsValidUUID(id) {
		return payment.PaymentResponse{}, payment.ErrPaymentNotFound
	}

	entity, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	return payment.ToPaymentResponse(entity), nil
}

// ListPayments implements PaymentService.
func (s *paymentServiceImpl) ListPayments(ctx context.Context, filter payment.PaymentFilter) (payment.ListPaymentsResponse, error) {
	if err := filter.Validate(); err != nil {
		return payment.ListPaymentsResponse{}, err
	}

	payments, total, err := s.paymentRepo.List(ctx, &filter)
	if err != nil {
		return payment.ListPaymentsResponse{}, fmt.Errorf("failed to list payments: %w", err)
	}

	resp := payment.ListPaymentsResponse{
		Payments: make([]payment.PaymentResponse, 0, len(payments)),
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}
	for i := range payments {
		resp.Payments = append(resp.Payments, payment.ToPaymentResponse(&payments[i]))
	}

	return resp, nil
}

// DeletePayment implements PaymentService.
func (s *paymentServiceImpl) DeletePayment(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return payment.ErrPaymentNotFound
	}

	entity, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	oldBalance, err := s.ledgerService.WorkerBalance(ctx, entity.WorkerID)
	if err != nil {
		return err
	}

	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditBalanceChange(ctx, entity.WorkerID, oldBalance, audit.ReasonPaymentRemoved)

	return nil
}

// auditBalanceChange appends a balance audit row when the worker's balance
// moved. The append is best effort and never fails the triggering write.
func (s *paymentServiceImpl) auditBalanceChange(ctx context.Context, workerID string, oldBalance decimal.Decimal, reason string) {
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
