package seed

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
)

// Run seeds the database with sample patients spanning the three glycemic
// profiles. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Patient{}, &domain.SimulationRun{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	fasting := func(v float64) *float64 { return &v }

	patients := []domain.Patient{
		{
			ID:             uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Name:           "Alice Hartman",
			Age:            34,
			Weight:         62,
			Height:         168,
			Sex:            "female",
			DiabetesStatus: domain.StatusNormal,
			ActivityLevel:  "active",
			SmokingStatus:  "non_smoker",
			FastingGlucose: fasting(88),
		},
		{
			ID:             uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Name:           "Robert Keel",
			Age:            51,
			Weight:         94,
			Height:         178,
			Sex:            "male",
			DiabetesStatus: domain.StatusPrediabetic,
			ActivityLevel:  "light",
			SmokingStatus:  "former_smoker",
			FamilyHistory:  true,
			FastingGlucose: fasting(112),
		},
		{
			ID:             uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			Name:           "Maria Delgado",
			Age:            63,
			Weight:         88,
			Height:         158,
			Sex:            "female",
			DiabetesStatus: domain.StatusDiabetic,
			ActivityLevel:  "sedentary",
			SmokingStatus:  "non_smoker",
			FamilyHistory:  true,
			Medications:    []string{"Metformin"},
			FastingGlucose: fasting(152),
		},
	}

	for _, patient := range patients {
		if err := db.Where("id = ?", patient.ID).FirstOrCreate(&patient).Error; err != nil {
			return fmt.Errorf("failed to create patient %s: %w", patient.ID, err)
		}
	}

	log.Println("Seed completed")
	return nil
}
