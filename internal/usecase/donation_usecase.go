package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"ngo_portal/internal/domain/entities"
	"ngo_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidDonationID     = errors.New("invalid donation id")
	ErrDonationNotFound      = errors.New("donation not found")
	ErrInvalidDonationFilter = errors.New("invalid donation filter")
	ErrReportStoreNotEnabled = errors.New("report store not configured")
)

const (
	DonationSortCreatedAt = "created_at"
	DonationSortAmount    = "amount"
)

// DonationFilter narrows the admin donation list.
//
// Search matches donor name, email and payment reference (case-insensitive).
// Sort defaults to newest first.
type DonationFilter struct {
	Status entities.PaymentStatus
	Search string
	SortBy string
	Asc    bool
}

// DonationExport is an uploaded CSV export.
type DonationExport struct {
	Key      string
	Location string
	Rows     int
}

type IDonationUseCase interface {
	List(ctx context.Context, f DonationFilter) ([]entities.Donation, error)
	GetByID(ctx context.Context, id string) (entities.Donation, error)
	ExportCSV(ctx context.Context, f DonationFilter) ([]byte, error)
	ExportCSVToStore(ctx context.Context, f DonationFilter) (DonationExport, error)
}

type DonationUseCase struct {
	repo    interfaces.IDonationRepository
	reports interfaces.IReportStore
	now     func() time.Time
}

var _ IDonationUseCase = (*DonationUseCase)(nil)

// NewDonationUseCase accepts a nil reports store; ExportCSVToStore then fails with ErrReportStoreNotEnabled.
func NewDonationUseCase(repo interfaces.IDonationRepository, reports interfaces.IReportStore) *DonationUseCase {
	return &DonationUseCase{repo: repo, reports: reports, now: func() time.Time { return time.Now().UTC() }}
}

func (u *DonationUseCase) List(ctx context.Context, f DonationFilter) ([]entities.Donation, error) {
	f, err := normalizeDonationFilter(f)
	if err != nil {
		return nil, err
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Donation, 0, len(all))
	for _, d := range all {
		if f.Status != "" && d.Status != f.Status {
			continue
		}
		if f.Search != "" && !donationMatches(d, f.Search) {
			continue
		}
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		switch f.SortBy {
		case DonationSortAmount:
			if out[i].Amount == out[j].Amount {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			less = out[i].Amount < out[j].Amount
		default:
			less = out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		if f.Asc {
			return less
		}
		return !less
	})
	return out, nil
}

func (u *DonationUseCase) GetByID(ctx context.Context, id string) (entities.Donation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Donation{}, ErrInvalidDonationID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Donation{}, err
	}
	if d.ID == "" {
		return entities.Donation{}, ErrDonationNotFound
	}
	return d, nil
}

var donationCSVHeader = []string{
	"payment_reference", "donor_name", "donor_email", "donor_phone", "amount", "currency",
	"status", "gateway_order_id", "gateway_payment_id", "created_at",
}

func (u *DonationUseCase) ExportCSV(ctx context.Context, f DonationFilter) ([]byte, error) {
	items, err := u.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return encodeDonationsCSV(items)
}

func (u *DonationUseCase) ExportCSVToStore(ctx context.Context, f DonationFilter) (DonationExport, error) {
	if u.reports == nil {
		return DonationExport{}, ErrReportStoreNotEnabled
	}
	items, err := u.List(ctx, f)
	if err != nil {
		return DonationExport{}, err
	}
	body, err := encodeDonationsCSV(items)
	if err != nil {
		return DonationExport{}, err
	}

	key := fmt.Sprintf("exports/donations-%s-%s.csv", u.now().Format("20060102T150405Z"), uuid.NewString())
	location, err := u.reports.Put(ctx, key, "text/csv", body)
	if err != nil {
		log.Printf("[donation][usecase] export upload failed key=%s err=%v", key, err)
		return DonationExport{}, err
	}
	log.Printf("[donation][usecase] export uploaded key=%s rows=%d", key, len(items))
	return DonationExport{Key: key, Location: location, Rows: len(items)}, nil
}

func encodeDonationsCSV(items []entities.Donation) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(donationCSVHeader); err != nil {
		return nil, err
	}
	for _, d := range items {
		row := []string{
			d.PaymentReference,
			csvCell(d.DonorName),
			csvCell(d.DonorEmail),
			csvCell(d.DonorPhone),
			entities.FormatMinor(d.Amount),
			d.Currency,
			string(d.Status),
			d.GatewayOrderID,
			d.GatewayPaymentID,
			d.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// csvCell neutralizes donor-entered text that a spreadsheet would evaluate as a formula.
func csvCell(v string) string {
	if v != "" && strings.ContainsRune("=+-@\t\r", rune(v[0])) {
		return "'" + v
	}
	return v
}

func normalizeDonationFilter(f DonationFilter) (DonationFilter, error) {
	f.Status = entities.PaymentStatus(strings.ToLower(strings.TrimSpace(string(f.Status))))
	f.Search = strings.ToLower(strings.TrimSpace(f.Search))
	f.SortBy = strings.ToLower(strings.TrimSpace(f.SortBy))
	if f.Status != "" && !f.Status.Valid() {
		return f, fmt.Errorf("%w: unknown status %q", ErrInvalidDonationFilter, f.Status)
	}
	switch f.SortBy {
	case "", DonationSortCreatedAt, DonationSortAmount:
	default:
		return f, fmt.Errorf("%w: unknown sort %q", ErrInvalidDonationFilter, f.SortBy)
	}
	return f, nil
}

func donationMatches(d entities.Donation, q string) bool {
	return strings.Contains(strings.ToLower(d.DonorName), q) ||
		strings.Contains(strings.ToLower(d.DonorEmail), q) ||
		strings.Contains(strings.ToLower(d.PaymentReference), q)
}
