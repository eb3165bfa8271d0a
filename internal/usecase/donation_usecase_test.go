package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"ngo_portal/internal/domain/entities"
	mock_interfaces "ngo_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sampleDonations() []entities.Donation {
	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	return []entities.Donation{
		{ID: "d1", DonorName: "Asha Rao", DonorEmail: "asha@test.com", Amount: 50000, Currency: "INR", Status: entities.PaymentStatusSuccess, PaymentReference: "DON-20260110-AAAAAA", CreatedAt: base},
		{ID: "d2", DonorName: "Ravi Kumar", DonorEmail: "ravi@test.com", Amount: 250000, Currency: "INR", Status: entities.PaymentStatusPending, PaymentReference: "DON-20260111-BBBBBB", CreatedAt: base.Add(24 * time.Hour)},
		{ID: "d3", DonorName: "Meera, \"M\"", DonorEmail: "meera@test.com", Amount: 100000, Currency: "INR", Status: entities.PaymentStatusSuccess, PaymentReference: "DON-20260112-CCCCCC", CreatedAt: base.Add(48 * time.Hour)},
	}
}

func TestDonationUseCase_List(t *testing.T) {
	t.Run("defaults to newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonationRepository(ctrl)
		uc := NewDonationUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return(sampleDonations(), nil)

		items, err := uc.List(context.Background(), DonationFilter{})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(items) != 3 || items[0].ID != "d3" || items[2].ID != "d1" {
			t.Fatalf("unexpected order: %+v", items)
		}
	})

	t.Run("status and search", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonationRepository(ctrl)
		uc := NewDonationUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return(sampleDonations(), nil)

		items, err := uc.List(context.Background(), DonationFilter{Status: "SUCCESS", Search: "asha"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(items) != 1 || items[0].ID != "d1" {
			t.Fatalf("unexpected items: %+v", items)
		}
	})

	t.Run("sort by amount ascending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonationRepository(ctrl)
		uc := NewDonationUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return(sampleDonations(), nil)

		items, err := uc.List(context.Background(), DonationFilter{SortBy: "amount", Asc: true})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if items[0].ID != "d1" || items[1].ID != "d3" || items[2].ID != "d2" {
			t.Fatalf("unexpected order: %+v", items)
		}
	})

	t.Run("invalid filter", func(t *testing.T) {
		uc := NewDonationUseCase(nil, nil)
		if _, err := uc.List(context.Background(), DonationFilter{Status: "paid"}); !errors.Is(err, ErrInvalidDonationFilter) {
			t.Fatalf("expected ErrInvalidDonationFilter, got %v", err)
		}
		if _, err := uc.List(context.Background(), DonationFilter{SortBy: "name"}); !errors.Is(err, ErrInvalidDonationFilter) {
			t.Fatalf("expected ErrInvalidDonationFilter, got %v", err)
		}
	})
}

func TestDonationUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDonationRepository(ctrl)
	uc := NewDonationUseCase(repo, nil)

	repo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Donation{}, nil)

	if _, err := uc.GetByID(context.Background(), "nope"); !errors.Is(err, ErrDonationNotFound) {
		t.Fatalf("expected ErrDonationNotFound, got %v", err)
	}
	if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidDonationID) {
		t.Fatalf("expected ErrInvalidDonationID, got %v", err)
	}
}

func TestDonationUseCase_ExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDonationRepository(ctrl)
	uc := NewDonationUseCase(repo, nil)

	repo.EXPECT().List(gomock.Any()).Return(sampleDonations(), nil)

	body, err := uc.ExportCSV(context.Background(), DonationFilter{Status: entities.PaymentStatusSuccess})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	rows, err := csv.NewReader(strings.NewReader(string(body))).ReadAll()
	if err != nil {
		t.Fatalf("csv not parseable: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "payment_reference" || rows[0][4] != "amount" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != `Meera, "M"` || rows[1][4] != "1000.00" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
}

func TestDonationUseCase_ExportCSV_NeutralizesFormulas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDonationRepository(ctrl)
	uc := NewDonationUseCase(repo, nil)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Donation{
		{ID: "d1", DonorName: "=HYPERLINK(\"http://x\")", DonorEmail: "@sum@test.com", DonorPhone: "+919876543210", Amount: 50000, Currency: "INR", Status: entities.PaymentStatusSuccess, PaymentReference: "DON-20260110-AAAAAA"},
	}, nil)

	body, err := uc.ExportCSV(context.Background(), DonationFilter{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	rows, err := csv.NewReader(strings.NewReader(string(body))).ReadAll()
	if err != nil {
		t.Fatalf("csv not parseable: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(rows))
	}
	if rows[1][1] != `'=HYPERLINK("http://x")` || rows[1][2] != "'@sum@test.com" || rows[1][3] != "'+919876543210" {
		t.Fatalf("formula cells not neutralized: %v", rows[1])
	}
	if rows[1][0] != "DON-20260110-AAAAAA" || rows[1][4] != "500.00" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
}

func TestDonationUseCase_ExportCSVToStore(t *testing.T) {
	t.Run("store not configured", func(t *testing.T) {
		uc := NewDonationUseCase(nil, nil)
		_, err := uc.ExportCSVToStore(context.Background(), DonationFilter{})
		if !errors.Is(err, ErrReportStoreNotEnabled) {
			t.Fatalf("expected ErrReportStoreNotEnabled, got %v", err)
		}
	})

	t.Run("uploads csv", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonationRepository(ctrl)
		store := mock_interfaces.NewMockIReportStore(ctrl)
		uc := NewDonationUseCase(repo, store)
		uc.now = fixedNow

		repo.EXPECT().List(gomock.Any()).Return(sampleDonations(), nil)
		store.EXPECT().Put(gomock.Any(), gomock.Any(), "text/csv", gomock.Any()).DoAndReturn(
			func(_ context.Context, key, _ string, body []byte) (string, error) {
				if !strings.HasPrefix(key, "exports/donations-20260118T103000Z-") || !strings.HasSuffix(key, ".csv") {
					t.Fatalf("unexpected key: %s", key)
				}
				if !strings.HasPrefix(string(body), "payment_reference,") {
					t.Fatalf("unexpected body: %s", body)
				}
				return "s3://reports/" + key, nil
			},
		)

		res, err := uc.ExportCSVToStore(context.Background(), DonationFilter{})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Rows != 3 || !strings.HasPrefix(res.Location, "s3://reports/exports/") {
			t.Fatalf("unexpected export: %+v", res)
		}
	})
}
