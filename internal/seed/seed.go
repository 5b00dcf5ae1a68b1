// Package seed creates the default records a fresh deployment needs.
package seed

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adjei/scholarhub/internal/app/models"
	"github.com/adjei/scholarhub/internal/app/repositories"
	"github.com/adjei/scholarhub/internal/pkg/auth"
)

const defaultAdminEmail = "admin@scholarhub.local"

// CreateDefaultData seeds the administrator account and, on an empty catalog,
// a couple of sample schemes. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)
	schemeRepo := repositories.NewSchemeRepository(dbPool)

	var finalErr error

	if err := seedAdmin(ctx, userRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedSchemes(ctx, schemeRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	return finalErr
}

func seedAdmin(ctx context.Context, userRepo repositories.IUserRepository, lgr zerolog.Logger) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = defaultAdminEmail
	}

	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for admin account")
		return err
	}
	if exists {
		return nil
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "ChangeMe123!"
		lgr.Warn().Str("email", adminEmail).Msg("Seeding admin with the default password, change it immediately")
	}

	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	_, err = userRepo.Create(ctx, &models.User{
		FullName:     "Portal Administrator",
		Email:        adminEmail,
		MobileNumber: "0000000000",
		Password:     hashed,
		Role:         models.RoleAdmin,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	lgr.Info().Str("email", adminEmail).Msg("Admin account created")
	return nil
}

func seedSchemes(ctx context.Context, schemeRepo repositories.ISchemeRepository, lgr zerolog.Logger) error {
	existing, err := schemeRepo.ListAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing schemes for seeding")
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	samples := []*models.Scheme{
		{
			SchemeName:   "Merit Scholarship",
			SchemeType:   "merit",
			Grade:        "undergraduate",
			Year:         time.Now().Format("2006"),
			Category:     "general",
			Criteria:     "GPA of 3.5 or above",
			DocsRequired: "Transcript, recommendation letter",
			Amount:       5000,
			LastDate:     time.Now().AddDate(0, 3, 0),
		},
		{
			SchemeName:   "Need-Based Grant",
			SchemeType:   "need",
			Grade:        "undergraduate",
			Year:         time.Now().Format("2006"),
			Category:     "general",
			Criteria:     "Demonstrated financial need",
			DocsRequired: "Income statement, transcript",
			Amount:       3000,
			LastDate:     time.Now().AddDate(0, 6, 0),
		},
	}

	for _, scheme := range samples {
		if _, err := schemeRepo.Create(ctx, scheme); err != nil {
			lgr.Error().Err(err).Str("scheme", scheme.SchemeName).Msg("Error seeding scheme")
			return err
		}
	}

	lgr.Info().Int("count", len(samples)).Msg("Sample schemes seeded")
	return nil
}
