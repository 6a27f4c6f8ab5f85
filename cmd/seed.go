package cmd

import (
	"fmt"
	"log"

	"github.com/jasakreatif/storefront-service/internal/config"
	"github.com/jasakreatif/storefront-service/internal/database"
	"github.com/jasakreatif/storefront-service/internal/model"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default catalog services if they are missing. Safe to re-run.",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

// Default catalog. Prices are in the smallest currency subunit.
var defaultServices = []model.Service{
	{
		Name:             "Desain Logo & Branding",
		Description:      "Logo, kartu nama, dan identitas visual untuk bisnis Anda.",
		ServiceType:      model.ServiceTypeGraphicDesign,
		StartingPrice:    15000000,
		DeliveryTimeDays: 3,
	},
	{
		Name:             "Artikel SEO",
		Description:      "Artikel blog 1000+ kata, riset kata kunci termasuk.",
		ServiceType:      model.ServiceTypeArticleWriting,
		StartingPrice:    5000000,
		DeliveryTimeDays: 2,
	},
	{
		Name:             "Penerjemahan ID-EN",
		Description:      "Terjemahan dokumen Indonesia-Inggris oleh penerjemah berpengalaman.",
		ServiceType:      model.ServiceTypeTranslation,
		StartingPrice:    3000000,
		DeliveryTimeDays: 1,
	},
	{
		Name:             "Edit Video Promosi",
		Description:      "Video promosi hingga 60 detik untuk media sosial.",
		ServiceType:      model.ServiceTypeVideoEditing,
		StartingPrice:    25000000,
		DeliveryTimeDays: 5,
	},
	{
		Name:             "Landing Page",
		Description:      "Website satu halaman, responsif, siap dipublikasikan.",
		ServiceType:      model.ServiceTypeWebsiteDevelopment,
		StartingPrice:    50000000,
		DeliveryTimeDays: 7,
	},
}

func runSeed(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	conn, err := database.Open(cfg.DSN())
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}

	created := 0
	for i := range defaultServices {
		svc := defaultServices[i]
		res := conn.Where("name = ?", svc.Name).FirstOrCreate(&svc)
		if res.Error != nil {
			return fmt.Errorf("seed %q: %w", svc.Name, res.Error)
		}
		if res.RowsAffected > 0 {
			created++
			log.Printf("seed: created %q (%s)", svc.Name, svc.ServiceType)
		}
	}
	log.Printf("seed: done, %d created, %d already present", created, len(defaultServices)-created)
	return nil
}
