package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/courtside/club-backend/internal/club"
	"github.com/courtside/club-backend/internal/court"
	"github.com/courtside/club-backend/internal/pkg/cache"
	"github.com/courtside/club-backend/internal/pkg/metrics"
	"github.com/courtside/club-backend/internal/pkg/validation"
	"github.com/courtside/club-backend/internal/pricing"
	"github.com/courtside/club-backend/internal/schedule"
	"github.com/courtside/club-backend/internal/wallet"
)

// CreateRequest describes a booking of one or more slots on a single court
// and date. All slots share the same add-on flags and are paid together.
type CreateRequest struct {
	CourtID string
	UserID  string
	Date    string   // ISO or DD.MM.YYYY
	Times   []string // "HH:MM" slot starts, must lie on the court's grid

	Heater             bool
	Light              bool
	IsGuestReservation bool
	IsTraining         bool
	IsLesson           bool
	IsChallenge        bool
	IsGift             bool

	CouponCode           string
	CouponDiscountAmount float64
	JointPayment         bool
	JointAmount          float64

	// PayWithWallet charges the member's club wallet immediately and the
	// reservation becomes active. Otherwise it is created pending and must
	// be paid externally before the pending TTL expires.
	PayWithWallet bool
}

// Booking is the result of a successful create.
type Booking struct {
	Reservations []*Reservation
	Quote        pricing.Quote
	Charged      float64
}

// DayAvailability is one court's classified slot grid for one date.
type DayAvailability struct {
	CourtID   string    `json:"court_id"`
	Date      string    `json:"date"`
	Interval  int       `json:"interval"`
	Slots     []Slot    `json:"slots"`
	Occupancy Occupancy `json:"occupancy"`
}

// CourtOccupancy pairs a court with its occupancy for the overview view.
type CourtOccupancy struct {
	CourtID   string    `json:"court_id"`
	CourtName string    `json:"court_name"`
	Occupancy Occupancy `json:"occupancy"`
}

// ClubAvailability is the whole-club overview for one date: the union of all
// courts' slot grids plus per-court and aggregate occupancy.
type ClubAvailability struct {
	ClubID    string           `json:"club_id"`
	Date      string           `json:"date"`
	SlotTimes []string         `json:"slot_times"`
	Courts    []CourtOccupancy `json:"courts"`
	Total     Occupancy        `json:"total"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id, userID string) (*Reservation, error)
	ListByUser(ctx context.Context, clubID, userID string, page, pageSize int) ([]*Reservation, int, error)
	Cancel(ctx context.Context, id, userID string) (*Reservation, error)
	CourtDay(ctx context.Context, courtID, date, userID string) (*DayAvailability, error)
	ClubDay(ctx context.Context, clubID, date string) (*ClubAvailability, error)
	MonthlyReport(ctx context.Context, clubID, month string) (*Report, error)
	ExpirePending(ctx context.Context) (int64, error)
}

type service struct {
	repo          Repository
	courtService  court.Service
	clubService   club.Service
	walletService wallet.Service
	reportCache   *cache.Cache
	pendingTTL    time.Duration
	now           func() time.Time
}

const reportCacheTTL = 10 * time.Minute

func NewService(
	repo Repository,
	courtService court.Service,
	clubService club.Service,
	walletService wallet.Service,
	reportCache *cache.Cache,
	pendingTTL time.Duration,
) Service {
	return &service{
		repo:          repo,
		courtService:  courtService,
		clubService:   clubService,
		walletService: walletService,
		reportCache:   reportCache,
		pendingTTL:    pendingTTL,
		now:           time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if len(req.Times) == 0 {
		return nil, ErrNoSlots
	}

	date, err := ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	ct, err := s.courtService.GetByID(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}

	role, err := s.clubService.RoleOf(ctx, ct.ClubID, req.UserID)
	if err != nil {
		return nil, ErrNotMember
	}

	if err := s.checkSlots(ct, date, req.Times); err != nil {
		return nil, err
	}

	quote, err := ct.Tariff().Total(req.Times, role, ct.TimeSlotInterval, req.Heater, req.Light)
	if err != nil {
		return nil, err
	}

	kind := KindOf(req.IsTraining, req.IsLesson, req.IsChallenge, req.IsGift)
	status := StatusPending
	if req.PayWithWallet {
		status = StatusActive
	}

	reservations, charged, err := s.buildRows(ct, req, date, role, quote, kind, status)
	if err != nil {
		return nil, err
	}

	if req.PayWithWallet {
		w, err := s.walletService.GetOrCreate(ctx, ct.ClubID, req.UserID)
		if err != nil {
			return nil, err
		}
		if aff := w.Affordability(charged); !aff.CanAfford {
			return nil, wallet.ErrInsufficientBalance
		}
	}

	if err := s.repo.CreateBatch(ctx, reservations); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			metrics.SlotConflicts.Inc()
		}
		return nil, err
	}

	if req.PayWithWallet && charged > 0 {
		if _, err := s.walletService.Charge(ctx, ct.ClubID, req.UserID, charged); err != nil {
			// Compensate: another charge raced the affordability check.
			// Release the slots so the failed booking does not hold them.
			now := s.now()
			for _, res := range reservations {
				_ = s.repo.Cancel(ctx, res.ID, now)
			}
			return nil, err
		}
	}

	metrics.ReservationsCreated.WithLabelValues(status).Add(float64(len(reservations)))

	return &Booking{Reservations: reservations, Quote: quote, Charged: charged}, nil
}

// checkSlots verifies every requested time lies on the court's grid, is not
// in the past, and is not requested twice.
func (s *service) checkSlots(ct *court.Court, date string, times []string) error {
	grid, err := ct.Slots()
	if err != nil {
		return err
	}
	onGrid := make(map[string]bool, len(grid))
	for _, t := range grid {
		onGrid[t] = true
	}

	now := s.now()
	today := now.Format(isoDateLayout)
	nowMin := now.Hour()*60 + now.Minute()

	seen := make(map[string]bool, len(times))
	for _, t := range times {
		startMin, err := schedule.ParseClock("times", t)
		if err != nil {
			return err
		}
		canonical := schedule.FormatClock(startMin)
		if !onGrid[canonical] {
			return ErrSlotNotInGrid
		}
		if seen[canonical] {
			return ErrSlotTaken
		}
		seen[canonical] = true

		if date < today || (date == today && startMin < nowMin) {
			return ErrSlotInPast
		}
	}
	return nil
}

// buildRows creates one reservation row per slot. Heater/light fees are
// whole-booking add-ons, so they land on the first row only; the coupon is
// consumed row by row so that the sum of amount_paid equals the charge.
func (s *service) buildRows(ct *court.Court, req CreateRequest, date, role string, quote pricing.Quote, kind Kind, status string) ([]*Reservation, float64, error) {
	tariff := ct.Tariff()
	coupon := req.CouponDiscountAmount
	if coupon < 0 {
		coupon = 0
	}

	var rows []*Reservation
	var charged float64
	for i, t := range req.Times {
		info, err := tariff.ForSlot(t, role, ct.TimeSlotInterval)
		if err != nil {
			return nil, 0, err
		}

		endTime, err := schedule.EndTime(t, ct.TimeSlotInterval)
		if err != nil {
			return nil, 0, err
		}

		amount := info.DiscountedPrice
		original := info.OriginalPrice
		if i == 0 {
			amount += quote.HeaterFee + quote.LightFee
			original += quote.HeaterFee + quote.LightFee
		}
		if coupon > 0 {
			cut := coupon
			if cut > amount {
				cut = amount
			}
			amount -= cut
			coupon -= cut
		}

		res := &Reservation{
			ClubID:             ct.ClubID,
			CourtID:            ct.ID,
			UserID:             req.UserID,
			Date:               date,
			Time:               t,
			EndTime:            endTime,
			Duration:           ct.TimeSlotInterval,
			Status:             status,
			Kind:               kind,
			Heater:             req.Heater,
			Light:              req.Light,
			IsGuestReservation: req.IsGuestReservation,
			AmountPaid:         amount,
			OriginalPrice:      original,
			DiscountPercentage: info.DiscountPercentage,
			DiscountApplied:    info.DiscountPercentage > 0,
			JointPayment:       req.JointPayment,
			JointAmount:        req.JointAmount,
			PaidWithWallet:     req.PayWithWallet,
		}
		if req.CouponCode != "" && req.CouponDiscountAmount > 0 && i == 0 {
			res.CouponApplied = true
			res.CouponCode = req.CouponCode
			res.CouponDiscountAmount = req.CouponDiscountAmount
		}

		rows = append(rows, res)
		charged += amount
	}
	return rows, charged, nil
}

func (s *service) GetByID(ctx context.Context, id, userID string) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkAccess(ctx, res, userID); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) ListByUser(ctx context.Context, clubID, userID string, page, pageSize int) ([]*Reservation, int, error) {
	return s.repo.ListByUser(ctx, clubID, userID, page, pageSize)
}

func (s *service) Cancel(ctx context.Context, id, userID string) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	if err := s.checkAccess(ctx, res, userID); err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.repo.Cancel(ctx, id, now); err != nil {
		return nil, err
	}

	if res.Status == StatusActive && res.PaidWithWallet && res.AmountPaid > 0 {
		if _, err := s.walletService.Refund(ctx, res.ClubID, res.UserID, res.AmountPaid); err != nil {
			return nil, fmt.Errorf("reservation cancelled but refund failed: %w", err)
		}
	}

	metrics.ReservationsCancelled.WithLabelValues("user").Inc()

	res.Status = StatusCancelled
	res.CancelledAt = &now
	return res, nil
}

// checkAccess allows the reservation's owner and club managers.
func (s *service) checkAccess(ctx context.Context, res *Reservation, userID string) error {
	if res.UserID == userID {
		return nil
	}
	ok, err := s.clubService.IsManagerOrAbove(ctx, res.ClubID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

func (s *service) CourtDay(ctx context.Context, courtID, date, userID string) (*DayAvailability, error) {
	canonical, err := ParseDate("date", date)
	if err != nil {
		return nil, err
	}

	ct, err := s.courtService.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}

	role, err := s.clubService.RoleOf(ctx, ct.ClubID, userID)
	if err != nil {
		return nil, ErrNotMember
	}

	grid, err := ct.Slots()
	if err != nil {
		return nil, err
	}

	reservations, err := s.repo.ListByCourtAndDate(ctx, courtID, canonical)
	if err != nil {
		return nil, err
	}

	tariff := ct.Tariff()
	now := s.now()

	slots := make([]Slot, 0, len(grid))
	for _, t := range grid {
		slot, err := ClassifySlot(courtID, canonical, t, reservations, now)
		if err != nil {
			return nil, err
		}
		end, err := schedule.EndTime(t, ct.TimeSlotInterval)
		if err != nil {
			return nil, err
		}
		slot.EndTime = end
		if slot.Status == SlotAvailable {
			info, err := tariff.ForSlot(t, role, ct.TimeSlotInterval)
			if err != nil {
				return nil, err
			}
			slot.Price = &info
		}
		slots = append(slots, slot)
	}

	return &DayAvailability{
		CourtID:   courtID,
		Date:      canonical,
		Interval:  ct.TimeSlotInterval,
		Slots:     slots,
		Occupancy: ComputeOccupancy(len(grid), reservations),
	}, nil
}

func (s *service) ClubDay(ctx context.Context, clubID, date string) (*ClubAvailability, error) {
	canonical, err := ParseDate("date", date)
	if err != nil {
		return nil, err
	}

	courts, _, err := s.courtService.ListByClub(ctx, court.Filter{ClubID: clubID, PageSize: 500})
	if err != nil {
		return nil, err
	}

	reservations, err := s.repo.ListByClubAndDate(ctx, clubID, canonical)
	if err != nil {
		return nil, err
	}

	byCourt := make(map[string][]*Reservation)
	for _, res := range reservations {
		byCourt[res.CourtID] = append(byCourt[res.CourtID], res)
	}

	overview := &ClubAvailability{
		ClubID: clubID,
		Date:   canonical,
		Courts: make([]CourtOccupancy, 0, len(courts)),
	}

	grids := make([][]string, 0, len(courts))
	for _, ct := range courts {
		grid, err := ct.Slots()
		if err != nil {
			return nil, err
		}
		grids = append(grids, grid)

		occ := ComputeOccupancy(len(grid), byCourt[ct.ID])
		overview.Courts = append(overview.Courts, CourtOccupancy{
			CourtID:   ct.ID,
			CourtName: ct.Name,
			Occupancy: occ,
		})

		overview.Total.TotalSlots += occ.TotalSlots
		overview.Total.ReservedCount += occ.ReservedCount
		overview.Total.AvailableCount += occ.AvailableCount
		overview.Total.Inconsistent = overview.Total.Inconsistent || occ.Inconsistent
	}
	overview.SlotTimes = schedule.Union(grids...)

	return overview, nil
}

func (s *service) MonthlyReport(ctx context.Context, clubID, month string) (*Report, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, validation.Errorf("month", "invalid month %q: want YYYY-MM", month)
	}

	cacheKey := "report:" + clubID + ":" + month
	var cached Report
	if hit, err := s.reportCache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	fromDate := first.Format(isoDateLayout)
	toDate := first.AddDate(0, 1, -1).Format(isoDateLayout)

	reservations, err := s.repo.ListByClubBetween(ctx, clubID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	report := BuildReport(month, reservations)
	_ = s.reportCache.SetJSON(ctx, cacheKey, report, reportCacheTTL)
	return &report, nil
}

func (s *service) ExpirePending(ctx context.Context) (int64, error) {
	n, err := s.repo.ExpirePending(ctx, s.now().Add(-s.pendingTTL))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		metrics.ReservationsCancelled.WithLabelValues("expired").Add(float64(n))
	}
	return n, nil
}
