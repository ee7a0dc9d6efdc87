// Сидер: заполняет каталог услуг и создает сетку временных слотов
// на скользящее окно будущих дат. Запускается отдельно от сервиса,
// повторный запуск безопасен (слоты создаются с ON CONFLICT DO NOTHING).
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/lumina-salon/reservation-service/internal/config"
	"github.com/lumina-salon/reservation-service/internal/domain"
	serviceRepo "github.com/lumina-salon/reservation-service/internal/infra/storage/services"
	timeSlotRepo "github.com/lumina-salon/reservation-service/internal/infra/storage/timeslots"
	"github.com/lumina-salon/reservation-service/pkg/logger"
)

// Каталог услуг салона
var seedServices = []*domain.Service{
	{
		Title:           "プレミアムフェイシャル",
		Description:     "高品質な美容成分を使用した贅沢なフェイシャルトリートメント。肌に輝きを与え、若々しさを取り戻します。",
		ImageURL:        "/images/services/facial.jpg",
		Price:           12000,
		DurationMinutes: 60,
	},
	{
		Title:           "ヘッドスパ",
		Description:     "心地よいマッサージと高品質なヘアケア製品を使用したリラックスできるヘッドスパ。頭皮環境を整え、美しい髪へ導きます。",
		ImageURL:        "/images/services/headspa.jpg",
		Price:           8000,
		DurationMinutes: 45,
	},
	{
		Title:           "アロマボディマッサージ",
		Description:     "厳選されたエッセンシャルオイルを使用した全身マッサージ。深いリラクゼーションと心身のバランスを整えます。",
		ImageURL:        "/images/services/massage.jpg",
		Price:           15000,
		DurationMinutes: 90,
	},
	{
		Title:           "ハンド＆フットケア",
		Description:     "手と足のためのプロフェッショナルケア。ネイルケアと保湿トリートメントで美しい手足を実現します。",
		ImageURL:        "/images/services/hand-foot.jpg",
		Price:           7000,
		DurationMinutes: 60,
	},
}

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	ctx := context.Background()
	services := serviceRepo.NewRepository(db)
	timeSlots := timeSlotRepo.NewRepository(db)

	// Каталог заполняем только один раз
	count, err := services.Count(ctx)
	if err != nil {
		log.Fatal("Failed to count services: %v", err)
	}

	if count == 0 {
		for _, svc := range seedServices {
			created, err := services.Create(ctx, svc)
			if err != nil {
				log.Fatal("Failed to create service %q: %v", svc.Title, err)
			}
			log.Info("Created service id=%d title=%q", created.ID, created.Title)
		}
	} else {
		log.Info("Service catalog already seeded (%d services), skipping", count)
	}

	allServices, err := services.List(ctx)
	if err != nil {
		log.Fatal("Failed to list services: %v", err)
	}

	// Сетка слотов: даты окна x фиксированные диапазоны x услуги
	today := domain.NormalizeDate(time.Now().UTC())
	slotsCreated := 0

	for day := 0; day < cfg.Seed.DaysAhead; day++ {
		date := today.AddDate(0, 0, day)

		for _, svc := range allServices {
			for _, timeRange := range domain.DefaultTimeRanges {
				slot := &domain.TimeSlot{
					ServiceID:           svc.ID,
					Date:                date,
					TimeRange:           timeRange,
					MaxCapacity:         cfg.Seed.MaxCapacity,
					CurrentReservations: 0,
				}
				if err := timeSlots.Create(ctx, slot); err != nil {
					log.Fatal("Failed to create time slot (service=%d, date=%s, range=%s): %v",
						svc.ID, date.Format(domain.DateFormat), timeRange, err)
				}
				slotsCreated++
			}
		}
	}

	log.Info("Seeding complete: %d services, %d slot rows processed (window=%d days, capacity=%d)",
		len(allServices), slotsCreated, cfg.Seed.DaysAhead, cfg.Seed.MaxCapacity)
}
