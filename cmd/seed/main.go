package main

import (
	"context"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
	"github.com/loanscope/loanscope/internal/infrastructure/adapter"
	"github.com/loanscope/loanscope/internal/infrastructure/config"
	pgRepo "github.com/loanscope/loanscope/internal/infrastructure/persistence/postgres"
	"github.com/loanscope/loanscope/pkg/observability"
	"github.com/loanscope/loanscope/pkg/postgres"
)

type productSpec struct {
	name           string
	loanType       string
	minAmount      string
	maxAmount      string
	minTermMonths  int
	maxTermMonths  int
	baseRateBps    int
	variableRate   bool
	minCreditScore int
	perks          []string
	requirements   []string
	hasFees        bool
}

type institutionSpec struct {
	name          string
	website       string
	loanTypes     []string
	serviceRating float64
	products      []productSpec
}

var sampleCatalog = []institutionSpec{
	{
		name:          "First Meridian Bank",
		website:       "https://firstmeridian.example.com",
		loanTypes:     []string{"MORTGAGE", "AUTO", "PERSONAL"},
		serviceRating: 4.4,
		products: []productSpec{
			{
				name: "30-Year Fixed Mortgage", loanType: "MORTGAGE",
				minAmount: "50000", maxAmount: "1500000",
				minTermMonths: 360, maxTermMonths: 360,
				baseRateBps: 435, minCreditScore: 620,
				perks:        []string{"No prepayment penalty", "Rate lock for 60 days"},
				requirements: []string{"Proof of income", "20% down payment for best rates"},
				hasFees:      true,
			},
			{
				name: "15-Year Fixed Mortgage", loanType: "MORTGAGE",
				minAmount: "50000", maxAmount: "1500000",
				minTermMonths: 180, maxTermMonths: 180,
				baseRateBps: 380, minCreditScore: 640,
				perks:        []string{"No prepayment penalty"},
				requirements: []string{"Proof of income"},
				hasFees:      true,
			},
			{
				name: "New Auto Loan", loanType: "AUTO",
				minAmount: "5000", maxAmount: "150000",
				minTermMonths: 24, maxTermMonths: 84,
				baseRateBps: 619, minCreditScore: 600,
				perks: []string{"Flexible payment schedule"},
			},
		},
	},
	{
		name:          "Cascade Credit Union",
		website:       "https://cascadecu.example.com",
		loanTypes:     []string{"MORTGAGE", "AUTO", "PERSONAL", "STUDENT"},
		serviceRating: 4.8,
		products: []productSpec{
			{
				name: "Member Mortgage", loanType: "MORTGAGE",
				minAmount: "75000", maxAmount: "1000000",
				minTermMonths: 120, maxTermMonths: 360,
				baseRateBps: 450, minCreditScore: 660,
				perks:        []string{"Prepayment allowed", "Member rate discount"},
				requirements: []string{"Credit union membership"},
			},
			{
				name: "Personal Flex Loan", loanType: "PERSONAL",
				minAmount: "1000", maxAmount: "50000",
				minTermMonths: 12, maxTermMonths: 72,
				baseRateBps: 1049, minCreditScore: 640,
				perks: []string{"Flexible payment dates", "No origination fee"},
			},
			{
				name: "Graduate Student Loan", loanType: "STUDENT",
				minAmount: "1000", maxAmount: "",
				minTermMonths: 60, maxTermMonths: 240,
				baseRateBps: 520, variableRate: true, minCreditScore: 0,
				perks:        []string{"Deferred repayment while enrolled"},
				requirements: []string{"Enrollment verification"},
			},
		},
	},
	{
		name:          "Bluepeak Lending",
		website:       "https://bluepeak.example.com",
		loanTypes:     []string{"MORTGAGE", "PERSONAL", "BUSINESS"},
		serviceRating: 3.9,
		products: []productSpec{
			{
				name: "Digital Mortgage", loanType: "MORTGAGE",
				minAmount: "100000", maxAmount: "2000000",
				minTermMonths: 180, maxTermMonths: 360,
				baseRateBps: 460, minCreditScore: 680,
				perks:   []string{"Fully online closing", "Rate match guarantee"},
				hasFees: true,
			},
			{
				name: "Small Business Term Loan", loanType: "BUSINESS",
				minAmount: "10000", maxAmount: "500000",
				minTermMonths: 12, maxTermMonths: 120,
				baseRateBps: 825, minCreditScore: 680,
				requirements: []string{"Two years of business financials"},
				hasFees:      true,
			},
		},
	},
}

// seed populates the database with a sample catalog and an initial set of
// rate observations so the analysis API is usable immediately.
func main() {
	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: "text",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pgCfg := postgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := postgres.NewPool(ctx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(pgCfg.DSN(), "migrations"); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	institutionRepo := pgRepo.NewInstitutionRepo(pool)
	productRepo := pgRepo.NewProductRepo(pool)
	rateRepo := pgRepo.NewRateRepo(pool)
	feed := adapter.NewMockRateFeed(adapter.MockRateFeedConfig{Seed: cfg.Tracker.FeedSeed})

	now := time.Now().UTC()
	seededProducts := 0
	seededObservations := 0

	for _, is := range sampleCatalog {
		loanTypes, err := parseLoanTypes(is.loanTypes)
		if err != nil {
			logger.Error("invalid institution loan types", "institution", is.name, "error", err)
			os.Exit(1)
		}

		inst, err := model.NewInstitution(is.name, is.website, "", loanTypes, is.serviceRating, now)
		if err != nil {
			logger.Error("invalid institution", "institution", is.name, "error", err)
			os.Exit(1)
		}
		if err := institutionRepo.Save(ctx, inst); err != nil {
			logger.Error("save institution failed", "institution", is.name, "error", err)
			os.Exit(1)
		}

		for _, ps := range is.products {
			product, err := buildProduct(inst.ID(), ps, now)
			if err != nil {
				logger.Error("invalid product", "product", ps.name, "error", err)
				os.Exit(1)
			}
			if err := productRepo.Save(ctx, product); err != nil {
				logger.Error("save product failed", "product", ps.name, "error", err)
				os.Exit(1)
			}
			seededProducts++

			quotes, err := feed.Quotes(ctx, product)
			if err != nil {
				logger.Error("generate quotes failed", "product", ps.name, "error", err)
				os.Exit(1)
			}
			for _, obs := range quotes {
				if err := rateRepo.Append(ctx, obs); err != nil {
					logger.Error("append observation failed", "product", ps.name, "error", err)
					os.Exit(1)
				}
				seededObservations++
			}
		}
	}

	logger.Info("seed completed",
		"institutions", len(sampleCatalog),
		"products", seededProducts,
		"observations", seededObservations,
	)
}

func buildProduct(institutionID string, ps productSpec, now time.Time) (model.LoanProduct, error) {
	loanType, err := valueobject.ParseLoanType(ps.loanType)
	if err != nil {
		return model.LoanProduct{}, err
	}
	minAmount, err := decimal.NewFromString(ps.minAmount)
	if err != nil {
		return model.LoanProduct{}, err
	}
	maxAmount := decimal.Zero
	if ps.maxAmount != "" {
		maxAmount, err = decimal.NewFromString(ps.maxAmount)
		if err != nil {
			return model.LoanProduct{}, err
		}
	}
	return model.NewLoanProduct(
		institutionID, ps.name, loanType,
		minAmount, maxAmount,
		ps.minTermMonths, ps.maxTermMonths,
		ps.baseRateBps, ps.variableRate, ps.minCreditScore,
		ps.perks, ps.requirements, ps.hasFees,
		now,
	)
}

func parseLoanTypes(names []string) ([]valueobject.LoanType, error) {
	types := make([]valueobject.LoanType, 0, len(names))
	for _, name := range names {
		t, err := valueobject.ParseLoanType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}
