package service

import (
	"context"
	"errors"
	"testing"

	"boltcard-wallet/internal/core/domain"
	"boltcard-wallet/internal/core/ports"
	"boltcard-wallet/internal/core/ports/mocks"
	"boltcard-wallet/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type withdrawDeps struct {
	svc      *WithdrawService
	cardRepo *mocks.MockCardRepository
	rates    *mocks.MockRateProvider
	checker  *mocks.MockInvoiceChecker
	conns    *mocks.MockConnectionsWatcher
	chans    *mocks.MockChannelsWatcher
	store    *memVersionedStore
}

func setupWithdrawService(t *testing.T) *withdrawDeps {
	ctrl := gomock.NewController(t)
	d := &withdrawDeps{
		cardRepo: mocks.NewMockCardRepository(ctrl),
		rates:    mocks.NewMockRateProvider(ctrl),
		checker:  mocks.NewMockInvoiceChecker(ctrl),
		conns:    mocks.NewMockConnectionsWatcher(ctrl),
		chans:    mocks.NewMockChannelsWatcher(ctrl),
		store:    &memVersionedStore{},
	}
	log := nopLogger()
	d.svc = NewWithdrawService(
		d.cardRepo,
		NewCryptogramValidator(log),
		NewLimitEvaluator(d.cardRepo, d.rates, log),
		NewInvoiceGate(d.checker, log),
		NewReadinessWaiter(d.conns, d.chans, log),
		NewSettlementCoordinator(d.store, domain.ProcessApp, log),
		log,
	)
	return d
}

// expectReady makes the network look established and the invoice payable.
func (d *withdrawDeps) expectReady() {
	d.checker.EXPECT().CheckForBadInvoice(gomock.Any(), gomock.Any()).Return(nil, nil)
	d.conns.EXPECT().Connections(gomock.Any()).Return(connFeed(
		ports.ConnectionState{PeerEstablished: true},
	), nil)
	d.chans.EXPECT().Channels(gomock.Any()).Return(channelFeed(
		[]ports.ChannelState{{ChannelID: "a", IsUsable: true}},
	), nil)
}

func withdrawTestCard(t *testing.T, keys domain.CardKeySet, counter uint32) domain.Card {
	t.Helper()
	return domain.Card{
		ID:               newUUID(t),
		Name:             "test card",
		Keys:             keys,
		IsActive:         true,
		LastKnownCounter: counter,
	}
}

func withdrawReq(t *testing.T, keys domain.CardKeySet, counter uint32) domain.WithdrawRequest {
	t.Helper()
	piccData, mac := forgeCryptogram(t, keys, []byte{1, 2, 3, 4, 5, 6, 7}, counter)
	return domain.NewWithdrawRequest(piccData, mac,
		domain.PaymentMethod{Kind: domain.PaymentMethodBolt11, Invoice: "lnbc1invoice"}, 10_000)
}

func TestWithdrawService_UnknownCryptogram(t *testing.T) {
	d := setupWithdrawService(t)
	card := withdrawTestCard(t, testKeySet(0x10), 5)
	d.cardRepo.EXPECT().ListCards(gomock.Any()).Return([]domain.Card{card}, nil)
	// No SaveCard expectation: nothing may be mutated.

	req := withdrawReq(t, testKeySet(0x20), 6)
	status, err := d.svc.CheckWithdrawRequest(context.Background(), req)

	assert.Nil(t, status)
	assert.Equal(t, apperror.KindUnknownCard, withdrawKind(t, err))
}

func TestWithdrawService_ReplayedCounter(t *testing.T) {
	d := setupWithdrawService(t)
	keys := testKeySet(0x10)
	card := withdrawTestCard(t, keys, 5)
	d.cardRepo.EXPECT().ListCards(gomock.Any()).Return([]domain.Card{card}, nil)
	// Counter equal to the stored watermark: rejected before any save.

	status, err := d.svc.CheckWithdrawRequest(context.Background(), withdrawReq(t, keys, 5))

	assert.Nil(t, status)
	assert.Equal(t, apperror.KindReplayDetected, withdrawKind(t, err))
}

func TestWithdrawService_FrozenCardStillAdvancesCounter(t *testing.T) {
	d := setupWithdrawService(t)
	keys := testKeySet(0x10)
	card := withdrawTestCard(t, keys, 5)
	card.IsActive = false

	d.cardRepo.EXPECT().ListCards(gomock.Any()).Return([]domain.Card{card}, nil)
	d.cardRepo.EXPECT().SaveCard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved *domain.Card) error {
			assert.Equal(t, uint32(6), saved.LastKnownCounter)
			return nil
		})

	status, err := d.svc.CheckWithdrawRequest(context.Background(), withdrawReq(t, keys, 6))

	assert.Nil(t, status)
	assert.Equal(t, apperror.KindFrozenCard, withdrawKind(t, err))
}

func TestWithdrawService_Success(t *testing.T) {
	d := setupWithdrawService(t)
	keys := testKeySet(0x10)
	card := withdrawTestCard(t, keys, 5)

	d.cardRepo.EXPECT().ListCards(gomock.Any()).Return([]domain.Card{card}, nil)
	d.expectReady()
	d.cardRepo.EXPECT().SaveCard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved *domain.Card) error {
			assert.Equal(t, uint32(6), saved.LastKnownCounter)
			return nil
		})

	req := withdrawReq(t, keys, 6)
	status, err := d.svc.CheckWithdrawRequest(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, domain.OutcomeContinueAndSendPayment, status.Outcome)
	assert.Equal(t, card.ID, status.Card.ID)
	assert.Equal(t, req.Method, status.Method)
	assert.Equal(t, req.AmountMsat, status.AmountMsat)

	entries := storedEntries(t, d.store)
	require.Len(t, entries, 1)
	assert.Equal(t, req.DatabaseHash, entries[0].Hash)
}

func TestWithdrawService_HandledElsewhereSkipsCounterSave(t *testing.T) {
	d := setupWithdrawService(t)
	keys := testKeySet(0x10)
	card := withdrawTestCard(t, keys, 5)
	req := withdrawReq(t, keys, 6)

	// The sibling process already claimed this exact request.
	seed, err := domain.EncodeHandlerEntries([]domain.HandlerEntry{
		{Hash: req.DatabaseHash, Process: domain.ProcessNotifier, Date: fixedNow},
	})
	require.NoError(t, err)
	_, swapped, err := d.store.CompareAndSwap(context.Background(), domain.HandlerSlotKey, seed, 0)
	require.NoError(t, err)
	require.True(t, swapped)

	d.cardRepo.EXPECT().ListCards(gomock.Any()).Return([]domain.Card{card}, nil)
	d.expectReady()
	// No SaveCard expectation: the winning process owns the counter update.

	status, err := d.svc.CheckWithdrawRequest(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, domain.OutcomeAbortHandledElsewhere, status.Outcome)
	assert.Len(t, storedEntries(t, d.store), 1, "the losing process must not append an entry")
}

func TestWithdrawService_LimitFailureStillAdvancesCounter(t *testing.T) {
	d := setupWithdrawService(t)
	keys := testKeySet(0x10)
	card := withdrawTestCard(t, keys, 5)
	card.DailyLimit = satLimit(1)

	d.cardRepo.EXPECT().ListCards(gomock.Any()).Return([]domain.Card{card}, nil)
	d.cardRepo.EXPECT().ListPaymentsSince(gomock.Any(), card.ID, gomock.Any()).Return(nil, nil)
	d.cardRepo.EXPECT().SaveCard(gomock.Any(), gomock.Any()).Return(nil)

	status, err := d.svc.CheckWithdrawRequest(context.Background(), withdrawReq(t, keys, 6))

	assert.Nil(t, status)
	assert.Equal(t, apperror.KindDailyLimitExceeded, withdrawKind(t, err))
}

func TestWithdrawService_BadInvoiceStillAdvancesCounter(t *testing.T) {
	d := setupWithdrawService(t)
	keys := testKeySet(0x10)
	card := withdrawTestCard(t, keys, 5)

	defect := ports.InvoiceExpired
	d.cardRepo.EXPECT().ListCards(gomock.Any()).Return([]domain.Card{card}, nil)
	d.checker.EXPECT().CheckForBadInvoice(gomock.Any(), gomock.Any()).Return(&defect, nil)
	d.cardRepo.EXPECT().SaveCard(gomock.Any(), gomock.Any()).Return(nil)

	status, err := d.svc.CheckWithdrawRequest(context.Background(), withdrawReq(t, keys, 6))

	assert.Nil(t, status)
	assert.Equal(t, apperror.KindBadInvoice, withdrawKind(t, err))
}

func TestWithdrawService_CardDatabaseUnavailable(t *testing.T) {
	d := setupWithdrawService(t)
	d.cardRepo.EXPECT().ListCards(gomock.Any()).Return(nil, errors.New("db down"))

	status, err := d.svc.CheckWithdrawRequest(context.Background(), withdrawReq(t, testKeySet(0x10), 6))

	assert.Nil(t, status)
	assert.Equal(t, apperror.KindInternalError, withdrawKind(t, err))
}

func TestWithdrawService_CounterSaveFailureDoesNotFailRequest(t *testing.T) {
	d := setupWithdrawService(t)
	keys := testKeySet(0x10)
	card := withdrawTestCard(t, keys, 5)

	d.cardRepo.EXPECT().ListCards(gomock.Any()).Return([]domain.Card{card}, nil)
	d.expectReady()
	d.cardRepo.EXPECT().SaveCard(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	status, err := d.svc.CheckWithdrawRequest(context.Background(), withdrawReq(t, keys, 6))

	require.NoError(t, err, "a failed counter save is logged, not surfaced")
	require.NotNil(t, status)
	assert.Equal(t, domain.OutcomeContinueAndSendPayment, status.Outcome)
}
