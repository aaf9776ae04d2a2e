package service

import (
	"sort"
	"strings"
	"time"

	"go-autoshop/internal/model"
	"go-autoshop/internal/repository"
)

type ReportService interface {
	SalesReport(ownerEmail string, filter ReportFilter) (*SalesReport, error)
	DashboardStats(ownerEmail string) (*repository.DashboardStats, error)
	UnlockReports(ownerEmail, password string) error
}

// ReportFilter narrows the report window. Date bounds are inclusive on
// both ends (start-of-day / end-of-day).
type ReportFilter struct {
	From            *time.Time
	To              *time.Time
	CustomerContact string
}

// DailyPoint is one bucket of the revenue/profit chart series.
type DailyPoint struct {
	Date    string  `json:"date"` // local calendar date, YYYY-MM-DD
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

type SalesReport struct {
	TotalRevenue float64                 `json:"total_revenue"`
	TotalProfit  float64                 `json:"total_profit"`
	AvgMarginPct float64                 `json:"avg_margin_pct"`
	Count        int                     `json:"count"`
	DailySeries  []DailyPoint            `json:"daily_series"`
	Sales        []model.SaleTransaction `json:"sales"`
}

type reportService struct {
	saleRepo repository.SaleRepository
	userRepo repository.UserRepository
}

func NewReportService(saleRepo repository.SaleRepository, userRepo repository.UserRepository) ReportService {
	return &reportService{saleRepo: saleRepo, userRepo: userRepo}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func (s *reportService) SalesReport(ownerEmail string, filter ReportFilter) (*SalesReport, error) {
	var sales []model.SaleTransaction
	var err error

	if filter.From != nil || filter.To != nil {
		// Open-ended ranges fall back to a wide window on the
		// unbounded side.
		start := time.Unix(0, 0)
		end := endOfDay(time.Now())
		if filter.From != nil {
			start = startOfDay(*filter.From)
		}
		if filter.To != nil {
			end = endOfDay(*filter.To)
		}
		sales, err = s.saleRepo.FindByDateRange(ownerEmail, start, end)
	} else {
		sales, err = s.saleRepo.FindAll(ownerEmail)
	}
	if err != nil {
		return nil, err
	}

	if contact := strings.TrimSpace(filter.CustomerContact); contact != "" {
		matched := sales[:0]
		for _, sale := range sales {
			if sale.ContactNumber == contact {
				matched = append(matched, sale)
			}
		}
		sales = matched
	}

	return aggregate(sales), nil
}

// aggregate derives the summary cards and the day-bucketed chart
// series from the filtered sales.
func aggregate(sales []model.SaleTransaction) *SalesReport {
	report := &SalesReport{Count: len(sales), Sales: sales}

	daily := make(map[string]*DailyPoint)
	for _, sale := range sales {
		report.TotalRevenue += sale.TotalAmount
		report.TotalProfit += sale.Profit

		date := sale.Timestamp.Format("2006-01-02")
		point, ok := daily[date]
		if !ok {
			point = &DailyPoint{Date: date}
			daily[date] = point
		}
		point.Revenue += sale.TotalAmount
		point.Profit += sale.Profit
	}

	if report.TotalRevenue != 0 {
		report.AvgMarginPct = report.TotalProfit / report.TotalRevenue * 100
	}

	report.DailySeries = make([]DailyPoint, 0, len(daily))
	for _, point := range daily {
		report.DailySeries = append(report.DailySeries, *point)
	}
	sort.Slice(report.DailySeries, func(i, j int) bool {
		return report.DailySeries[i].Date < report.DailySeries[j].Date
	})
	return report
}

func (s *reportService) DashboardStats(ownerEmail string) (*repository.DashboardStats, error) {
	return s.saleRepo.GetDashboardStats(ownerEmail)
}

// UnlockReports verifies the shop's reports-page password. Shops with
// no password set are always unlocked.
func (s *reportService) UnlockReports(ownerEmail, password string) error {
	user, err := s.userRepo.FindByEmail(ownerEmail)
	if err != nil {
		return err
	}
	if !user.CheckReportsPassword(password) {
		return ErrWrongPassword
	}
	return nil
}
