package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"upi_escrow/internal/domain/entities"
	"upi_escrow/internal/usecase/interfaces"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrInvalidPaymentState = errors.New("invalid payment state")
	ErrInvalidPrincipal    = errors.New("invalid principal")
)

var (
	errStoreNotConfigured  = errors.New("payment store not configured")
	errOracleNotConfigured = errors.New("authorization oracle not configured")
)

// IEscrowLedgerUseCase is the escrow state machine over the payment store.
//
// Mutations succeed fully or leave the store untouched: every check runs
// before the single write that ends the call.

type IEscrowLedgerUseCase interface {
	CreatePayment(ctx context.Context, proof entities.AuthorizationProof, id uint64, user, merchant entities.Principal, amount entities.Amount) (entities.Payment, error)
	ConfirmPayment(ctx context.Context, proof entities.AuthorizationProof, id uint64, merchant entities.Principal) (entities.Payment, error)
	CancelPayment(ctx context.Context, proof entities.AuthorizationProof, id uint64, user entities.Principal) (entities.Payment, error)
	GetPayment(ctx context.Context, id uint64) (entities.Payment, error)
}

type EscrowLedgerUseCase struct {
	store  interfaces.IPaymentStore
	oracle interfaces.IAuthorizationOracle

	// strictTransitions rejects confirm/cancel once a payment is terminal.
	strictTransitions bool

	// mu gives mutating invocations a total order.
	mu sync.Mutex
}

var _ IEscrowLedgerUseCase = (*EscrowLedgerUseCase)(nil)

func NewEscrowLedgerUseCase(store interfaces.IPaymentStore, oracle interfaces.IAuthorizationOracle, strictTransitions bool) *EscrowLedgerUseCase {
	return &EscrowLedgerUseCase{store: store, oracle: oracle, strictTransitions: strictTransitions}
}

func (u *EscrowLedgerUseCase) CreatePayment(ctx context.Context, proof entities.AuthorizationProof, id uint64, user, merchant entities.Principal, amount entities.Amount) (entities.Payment, error) {
	log.Printf("[escrow][usecase] create start payment_id=%d user=%s merchant=%s amount=%s", id, user, merchant, amount)
	if user.IsZero() || merchant.IsZero() {
		log.Printf("[escrow][usecase] create invalid principal payment_id=%d", id)
		return entities.Payment{}, ErrInvalidPrincipal
	}
	if err := u.ready(); err != nil {
		return entities.Payment{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.authorize(ctx, proof, user); err != nil {
		log.Printf("[escrow][usecase] create not authorized payment_id=%d user=%s err=%v", id, user, err)
		return entities.Payment{}, err
	}

	p := entities.Payment{
		ID:       id,
		User:     user,
		Merchant: merchant,
		Amount:   amount,
		Status:   entities.PaymentStatusPending,
	}
	if err := u.store.Set(ctx, p); err != nil {
		log.Printf("[escrow][usecase] create store failed payment_id=%d err=%v", id, err)
		return entities.Payment{}, fmt.Errorf("store payment %d: %w", id, err)
	}
	log.Printf("[escrow][usecase] create success payment_id=%d status=%s", id, p.Status)
	return p, nil
}

func (u *EscrowLedgerUseCase) ConfirmPayment(ctx context.Context, proof entities.AuthorizationProof, id uint64, merchant entities.Principal) (entities.Payment, error) {
	return u.transition(ctx, "confirm", proof, id, merchant, merchantOf, entities.PaymentStatusComplete)
}

func (u *EscrowLedgerUseCase) CancelPayment(ctx context.Context, proof entities.AuthorizationProof, id uint64, user entities.Principal) (entities.Payment, error) {
	return u.transition(ctx, "cancel", proof, id, user, userOf, entities.PaymentStatusCanceled)
}

func (u *EscrowLedgerUseCase) GetPayment(ctx context.Context, id uint64) (entities.Payment, error) {
	if u.store == nil {
		return entities.Payment{}, errStoreNotConfigured
	}
	p, found, err := u.store.Get(ctx, id)
	if err != nil {
		log.Printf("[escrow][usecase] get failed payment_id=%d err=%v", id, err)
		return entities.Payment{}, fmt.Errorf("load payment %d: %w", id, err)
	}
	if !found {
		return entities.Payment{}, fmt.Errorf("%w: id=%d", ErrPaymentNotFound, id)
	}
	return p, nil
}

func merchantOf(p entities.Payment) entities.Principal { return p.Merchant }

func userOf(p entities.Payment) entities.Principal { return p.User }

// transition runs the confirm/cancel checks in order (proof, existence,
// party, status) and writes the new status only when all of them pass.
func (u *EscrowLedgerUseCase) transition(
	ctx context.Context,
	op string,
	proof entities.AuthorizationProof,
	id uint64,
	caller entities.Principal,
	party func(entities.Payment) entities.Principal,
	to entities.PaymentStatus,
) (entities.Payment, error) {
	log.Printf("[escrow][usecase] %s start payment_id=%d caller=%s", op, id, caller)
	if caller.IsZero() {
		log.Printf("[escrow][usecase] %s invalid principal payment_id=%d", op, id)
		return entities.Payment{}, ErrInvalidPrincipal
	}
	if err := u.ready(); err != nil {
		return entities.Payment{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.authorize(ctx, proof, caller); err != nil {
		log.Printf("[escrow][usecase] %s not authorized payment_id=%d caller=%s err=%v", op, id, caller, err)
		return entities.Payment{}, err
	}

	p, err := u.GetPayment(ctx, id)
	if err != nil {
		log.Printf("[escrow][usecase] %s lookup failed payment_id=%d err=%v", op, id, err)
		return entities.Payment{}, err
	}

	if party(p) != caller {
		log.Printf("[escrow][usecase] %s wrong party payment_id=%d caller=%s", op, id, caller)
		return entities.Payment{}, fmt.Errorf("%w: %s is not the payment's party for %s", ErrUnauthorized, caller, op)
	}

	if p.Status.IsTerminal() {
		if u.strictTransitions {
			log.Printf("[escrow][usecase] %s rejected payment_id=%d status=%s", op, id, p.Status)
			return entities.Payment{}, fmt.Errorf("%w: payment %d is %s", ErrInvalidPaymentState, id, p.Status)
		}
		log.Printf("[escrow][usecase] %s overwriting terminal status payment_id=%d from=%s to=%s", op, id, p.Status, to)
	}

	p.Status = to
	if err := u.store.Set(ctx, p); err != nil {
		log.Printf("[escrow][usecase] %s store failed payment_id=%d err=%v", op, id, err)
		return entities.Payment{}, fmt.Errorf("store payment %d: %w", id, err)
	}
	log.Printf("[escrow][usecase] %s success payment_id=%d status=%s", op, id, p.Status)
	return p, nil
}

func (u *EscrowLedgerUseCase) authorize(ctx context.Context, proof entities.AuthorizationProof, principal entities.Principal) error {
	ok, err := u.oracle.Verify(ctx, proof, principal)
	if err != nil {
		return fmt.Errorf("authorization oracle: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: proof not valid for %s", ErrUnauthorized, principal)
	}
	return nil
}

func (u *EscrowLedgerUseCase) ready() error {
	if u.store == nil {
		log.Printf("[escrow][usecase] payment store not configured")
		return errStoreNotConfigured
	}
	if u.oracle == nil {
		log.Printf("[escrow][usecase] authorization oracle not configured")
		return errOracleNotConfigured
	}
	return nil
}
