package reservation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/club-backend/internal/club"
	"github.com/courtside/club-backend/internal/court"
	"github.com/courtside/club-backend/internal/pkg/cache"
	"github.com/courtside/club-backend/internal/wallet"
)

type fakeRepo struct {
	Repository

	created   []*Reservation
	createErr error

	byID      map[string]*Reservation
	cancelled []string

	expired     int64
	expireAfter time.Time
}

func (f *fakeRepo) CreateBatch(_ context.Context, reservations []*Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	for i, r := range reservations {
		r.ID = fmt.Sprintf("res-%d", len(f.created)+i+1)
	}
	f.created = append(f.created, reservations...)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Reservation, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id string, _ time.Time) error {
	f.cancelled = append(f.cancelled, id)
	return nil
}

func (f *fakeRepo) ExpirePending(_ context.Context, before time.Time) (int64, error) {
	f.expireAfter = before
	return f.expired, nil
}

type fakeCourtService struct {
	court.Service
	court *court.Court
}

func (f *fakeCourtService) GetByID(_ context.Context, id string) (*court.Court, error) {
	if f.court == nil || f.court.ID != id {
		return nil, court.ErrNotFound
	}
	return f.court, nil
}

type fakeClubService struct {
	club.Service
	role    string
	roleErr error
	manager bool
}

func (f *fakeClubService) RoleOf(_ context.Context, _, _ string) (string, error) {
	return f.role, f.roleErr
}

func (f *fakeClubService) IsManagerOrAbove(_ context.Context, _, _ string) (bool, error) {
	return f.manager, nil
}

type fakeWalletService struct {
	wallet.Service

	wallet    *wallet.Wallet
	charged   []float64
	chargeErr error
	refunded  []float64
}

func (f *fakeWalletService) GetOrCreate(_ context.Context, _, _ string) (*wallet.Wallet, error) {
	return f.wallet, nil
}

func (f *fakeWalletService) Charge(_ context.Context, _, _ string, amount float64) (*wallet.Wallet, error) {
	if f.chargeErr != nil {
		return nil, f.chargeErr
	}
	f.charged = append(f.charged, amount)
	return f.wallet, nil
}

func (f *fakeWalletService) Refund(_ context.Context, _, _ string, amount float64) (*wallet.Wallet, error) {
	f.refunded = append(f.refunded, amount)
	return f.wallet, nil
}

func testCourt() *court.Court {
	return &court.Court{
		ID:               "court-1",
		ClubID:           "club-1",
		Name:             "Center Court",
		AvailableFrom:    "08:00",
		AvailableUntil:   "22:00",
		TimeSlotInterval: 60,
		HourlyRate:       20,
		HeatingCost:      5,
		LightingCost:     3,
	}
}

type testEnv struct {
	repo    *fakeRepo
	courts  *fakeCourtService
	clubs   *fakeClubService
	wallets *fakeWalletService
	svc     *service
}

func newTestEnv() *testEnv {
	env := &testEnv{
		repo:    &fakeRepo{byID: map[string]*Reservation{}},
		courts:  &fakeCourtService{court: testCourt()},
		clubs:   &fakeClubService{role: "member"},
		wallets: &fakeWalletService{wallet: &wallet.Wallet{ClubID: "club-1", UserID: "user-1", Balance: 100}},
	}
	env.svc = NewService(
		env.repo,
		env.courts,
		env.clubs,
		env.wallets,
		cache.New(nil),
		30*time.Minute,
	).(*service)
	env.svc.now = func() time.Time {
		return time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)
	}
	return env
}

func TestCreatePendingBooking(t *testing.T) {
	env := newTestEnv()

	booking, err := env.svc.Create(context.Background(), CreateRequest{
		CourtID: "court-1",
		UserID:  "user-1",
		Date:    "2030-05-10",
		Times:   []string{"10:00", "11:00"},
	})
	require.NoError(t, err)

	require.Len(t, booking.Reservations, 2)
	assert.Equal(t, StatusPending, booking.Reservations[0].Status)
	assert.Equal(t, "10:00", booking.Reservations[0].Time)
	assert.Equal(t, "11:00", booking.Reservations[0].EndTime)
	assert.Equal(t, KindNormal, booking.Reservations[0].Kind)
	assert.Equal(t, 40.0, booking.Charged)
	assert.Len(t, env.repo.created, 2)
	assert.Empty(t, env.wallets.charged, "pending bookings must not touch the wallet")
}

func TestCreateAddOnFeesOnFirstRowOnly(t *testing.T) {
	env := newTestEnv()

	booking, err := env.svc.Create(context.Background(), CreateRequest{
		CourtID: "court-1",
		UserID:  "user-1",
		Date:    "2030-05-10",
		Times:   []string{"10:00", "11:00"},
		Heater:  true,
		Light:   true,
	})
	require.NoError(t, err)

	require.Len(t, booking.Reservations, 2)
	assert.Equal(t, 28.0, booking.Reservations[0].AmountPaid)
	assert.Equal(t, 20.0, booking.Reservations[1].AmountPaid)
	assert.Equal(t, 48.0, booking.Charged)
	assert.True(t, booking.Reservations[1].Heater, "flags are recorded on every row")
}

func TestCreateCouponConsumedAcrossRows(t *testing.T) {
	env := newTestEnv()

	booking, err := env.svc.Create(context.Background(), CreateRequest{
		CourtID:              "court-1",
		UserID:               "user-1",
		Date:                 "2030-05-10",
		Times:                []string{"10:00", "11:00"},
		CouponCode:           "SPRING",
		CouponDiscountAmount: 25,
	})
	require.NoError(t, err)

	// Coupon eats the first row down to zero, remainder comes off the second.
	assert.Equal(t, 0.0, booking.Reservations[0].AmountPaid)
	assert.Equal(t, 15.0, booking.Reservations[1].AmountPaid)
	assert.Equal(t, 15.0, booking.Charged)

	assert.True(t, booking.Reservations[0].CouponApplied)
	assert.Equal(t, "SPRING", booking.Reservations[0].CouponCode)
	assert.False(t, booking.Reservations[1].CouponApplied)

	var sum float64
	for _, r := range booking.Reservations {
		sum += r.AmountPaid
	}
	assert.Equal(t, booking.Charged, sum)
}

func TestCreateWalletPayment(t *testing.T) {
	env := newTestEnv()

	booking, err := env.svc.Create(context.Background(), CreateRequest{
		CourtID:       "court-1",
		UserID:        "user-1",
		Date:          "2030-05-10",
		Times:         []string{"10:00"},
		PayWithWallet: true,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusActive, booking.Reservations[0].Status)
	assert.True(t, booking.Reservations[0].PaidWithWallet)
	assert.Equal(t, []float64{20}, env.wallets.charged)
}

func TestCreateWalletInsufficientBalance(t *testing.T) {
	env := newTestEnv()
	env.wallets.wallet.Balance = 10

	_, err := env.svc.Create(context.Background(), CreateRequest{
		CourtID:       "court-1",
		UserID:        "user-1",
		Date:          "2030-05-10",
		Times:         []string{"10:00"},
		PayWithWallet: true,
	})
	assert.ErrorIs(t, err, wallet.ErrInsufficientBalance)
	assert.Empty(t, env.repo.created, "nothing is inserted when the member cannot pay")
}

func TestCreateNegativeBalanceAllowed(t *testing.T) {
	env := newTestEnv()
	env.wallets.wallet.Balance = 10
	env.wallets.wallet.AllowNegativeBalance = true
	env.wallets.wallet.NegativeBalanceLimit = 50

	_, err := env.svc.Create(context.Background(), CreateRequest{
		CourtID:       "court-1",
		UserID:        "user-1",
		Date:          "2030-05-10",
		Times:         []string{"10:00"},
		PayWithWallet: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, []float64{20}, env.wallets.charged)
}

func TestCreateChargeFailureReleasesSlots(t *testing.T) {
	env := newTestEnv()
	env.wallets.chargeErr = errors.New("charge raced")

	_, err := env.svc.Create(context.Background(), CreateRequest{
		CourtID:       "court-1",
		UserID:        "user-1",
		Date:          "2030-05-10",
		Times:         []string{"10:00", "11:00"},
		PayWithWallet: true,
	})
	require.Error(t, err)

	// The inserted rows must be released so the failed booking does not
	// keep holding the slots.
	assert.Equal(t, []string{"res-1", "res-2"}, env.repo.cancelled)
}

func TestCreateRejectsBadSlots(t *testing.T) {
	env := newTestEnv()

	cases := []struct {
		name    string
		date    string
		times   []string
		wantErr error
	}{
		{"empty", "2030-05-10", nil, ErrNoSlots},
		{"off grid", "2030-05-10", []string{"10:30"}, ErrSlotNotInGrid},
		{"before opening", "2030-05-10", []string{"07:00"}, ErrSlotNotInGrid},
		{"duplicate", "2030-05-10", []string{"10:00", "10:00"}, ErrSlotTaken},
		{"past date", "2030-04-30", []string{"10:00"}, ErrSlotInPast},
		{"earlier today", "2030-05-01", []string{"10:00"}, ErrSlotInPast},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.svc.Create(context.Background(), CreateRequest{
				CourtID: "court-1",
				UserID:  "user-1",
				Date:    tc.date,
				Times:   tc.times,
			})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreateNonMember(t *testing.T) {
	env := newTestEnv()
	env.clubs.roleErr = club.ErrNotMember

	_, err := env.svc.Create(context.Background(), CreateRequest{
		CourtID: "court-1",
		UserID:  "stranger",
		Date:    "2030-05-10",
		Times:   []string{"10:00"},
	})
	assert.ErrorIs(t, err, ErrNotMember)
}

func TestCreateAcceptsDottedDate(t *testing.T) {
	env := newTestEnv()

	booking, err := env.svc.Create(context.Background(), CreateRequest{
		CourtID: "court-1",
		UserID:  "user-1",
		Date:    "10.05.2030",
		Times:   []string{"10:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, "2030-05-10", booking.Reservations[0].Date)
}

func TestCancelRefundsWalletPayment(t *testing.T) {
	env := newTestEnv()
	env.repo.byID["res-1"] = &Reservation{
		ID:             "res-1",
		ClubID:         "club-1",
		UserID:         "user-1",
		Status:         StatusActive,
		PaidWithWallet: true,
		AmountPaid:     20,
	}

	res, err := env.svc.Cancel(context.Background(), "res-1", "user-1")
	require.NoError(t, err)

	assert.Equal(t, StatusCancelled, res.Status)
	require.NotNil(t, res.CancelledAt)
	assert.Equal(t, []float64{20}, env.wallets.refunded)
}

func TestCancelPendingDoesNotRefund(t *testing.T) {
	env := newTestEnv()
	env.repo.byID["res-1"] = &Reservation{
		ID:     "res-1",
		ClubID: "club-1",
		UserID: "user-1",
		Status: StatusPending,
	}

	_, err := env.svc.Cancel(context.Background(), "res-1", "user-1")
	require.NoError(t, err)
	assert.Empty(t, env.wallets.refunded)
}

func TestCancelAlreadyCancelled(t *testing.T) {
	env := newTestEnv()
	env.repo.byID["res-1"] = &Reservation{ID: "res-1", UserID: "user-1", Status: StatusCancelled}

	_, err := env.svc.Cancel(context.Background(), "res-1", "user-1")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancelByManager(t *testing.T) {
	env := newTestEnv()
	env.clubs.manager = true
	env.repo.byID["res-1"] = &Reservation{ID: "res-1", ClubID: "club-1", UserID: "user-1", Status: StatusPending}

	_, err := env.svc.Cancel(context.Background(), "res-1", "manager-1")
	assert.NoError(t, err)
}

func TestCancelForbiddenForOthers(t *testing.T) {
	env := newTestEnv()
	env.repo.byID["res-1"] = &Reservation{ID: "res-1", ClubID: "club-1", UserID: "user-1", Status: StatusPending}

	_, err := env.svc.Cancel(context.Background(), "res-1", "someone-else")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestExpirePendingUsesTTLCutoff(t *testing.T) {
	env := newTestEnv()
	env.repo.expired = 3

	n, err := env.svc.ExpirePending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	want := time.Date(2030, 5, 1, 11, 30, 0, 0, time.UTC)
	assert.Equal(t, want, env.repo.expireAfter)
}

func TestMonthlyReportRejectsBadMonth(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.MonthlyReport(context.Background(), "club-1", "May 2030")
	assert.Error(t, err)
}
