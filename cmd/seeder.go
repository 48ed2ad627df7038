package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dschabow91/maintrack/internal"
	"github.com/dschabow91/maintrack/internal/asset"
	"github.com/dschabow91/maintrack/internal/inventory"
	"github.com/dschabow91/maintrack/internal/pmschedule"
	"github.com/dschabow91/maintrack/internal/user"
	"github.com/dschabow91/maintrack/internal/workorder"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			for _, table := range []string{"work_order_comments", "work_orders", "inventory_items", "assets", "pm_schedules", "handoffs", "daily_reports", "work_order_templates", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		admin := &user.User{
			ID:           uuid.NewString(),
			Name:         "Alex Admin",
			Email:        "admin@maintrack.local",
			PasswordHash: string(hash),
			Role:         internal.RoleAdmin,
		}
		seedUser(db, admin)

		techHash, _ := bcrypt.GenerateFromPassword([]byte("tech123"), bcrypt.DefaultCost)
		tech := &user.User{
			ID:           uuid.NewString(),
			Name:         "Taylor Tech",
			Email:        "tech@maintrack.local",
			PasswordHash: string(techHash),
			Role:         internal.RoleTech,
		}
		seedUser(db, tech)

		assets := []*asset.Asset{
			{ID: uuid.NewString(), Name: "AHU-1", Category: "HVAC", Location: "Roof", Criticality: asset.CriticalityHigh, CreatedAt: time.Now()},
			{ID: uuid.NewString(), Name: "Chiller-2", Category: "HVAC", Location: "Plant Room", Criticality: asset.CriticalityCritical, CreatedAt: time.Now()},
		}
		for _, a := range assets {
			if err := db.FirstOrCreate(a, "name = ?", a.Name).Error; err != nil {
				log.Fatalf("failed to seed asset %s: %v", a.Name, err)
			}
		}

		items := []*inventory.Item{
			{ID: uuid.NewString(), Name: "Air Filter 24x24", SKU: "FLT-2424", Qty: 12, Min: 4},
			{ID: uuid.NewString(), Name: "V-Belt A38", SKU: "BLT-A38", Qty: 2, Min: 2},
		}
		for _, i := range items {
			if err := db.FirstOrCreate(i, "sku = ?", i.SKU).Error; err != nil {
				log.Fatalf("failed to seed inventory item %s: %v", i.SKU, err)
			}
		}

		pm := &pmschedule.Schedule{
			ID:        uuid.NewString(),
			Asset:     "AHU-1",
			Task:      "Replace air filters",
			StartDate: time.Now().Format(internal.DateLayout),
			Frequency: pmschedule.FrequencyMonthly,
			Interval:  1,
			CreatedAt: time.Now(),
		}
		if err := db.FirstOrCreate(pm, "asset = ? AND task = ?", pm.Asset, pm.Task).Error; err != nil {
			log.Fatalf("failed to seed pm schedule: %v", err)
		}

		wo := &workorder.WorkOrder{
			ID:          uuid.NewString(),
			Title:       "Inspect AHU-1 belts",
			Description: "Quarterly belt inspection",
			Asset:       "AHU-1",
			Location:    "Roof",
			Priority:    workorder.PriorityMedium,
			Status:      workorder.StatusOpen,
			AssignedTo:  tech.Name,
			OwnerID:     admin.ID,
			Checklist:   []byte(`["Check tension","Check wear","Record readings"]`),
			CreatedAt:   time.Now(),
		}
		if err := db.FirstOrCreate(wo, "title = ?", wo.Title).Error; err != nil {
			log.Fatalf("failed to seed work order: %v", err)
		}

		fmt.Println("Seed complete")
	},
}

func seedUser(db *gorm.DB, u *user.User) {
	var existing user.User
	err := db.Where("lower(email) = lower(?)", u.Email).First(&existing).Error
	if err == nil {
		fmt.Printf("user %s already exists\n", u.Email)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("failed to check user %s: %v", u.Email, err)
	}
	if err := db.Create(u).Error; err != nil {
		log.Fatalf("failed to seed user %s: %v", u.Email, err)
	}
	fmt.Printf("Seeded user: %s\n", u.Email)
}
