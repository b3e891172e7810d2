package database

import (
	"log"

	"adisyon-backend/internal/config"
	"adisyon-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	err = DB.AutoMigrate(
		&models.AppUser{},
		&models.UserSession{},
		&models.ProductGroup{},
		&models.Product{},
		&models.Table{},
		&models.TableItem{},
		&models.Transaction{},
		&models.AuditLog{},
		&models.MediaFile{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	// Grup silinince ürünleri de veritabanı seviyesinde silinsin.
	// AutoMigrate bu constraint'i ON DELETE CASCADE olarak eklemiyor,
	// o yüzden elle düzeltiyoruz.
	if DB.Migrator().HasTable(&models.Product{}) {
		var constraintExists bool
		DB.Raw(`
			SELECT EXISTS (
				SELECT 1
				FROM information_schema.table_constraints
				WHERE table_name = 'products'
				AND constraint_name = 'fk_products_group_cascade'
			)
		`).Scan(&constraintExists)

		if !constraintExists {
			log.Println("Product için cascade foreign key constraint ekleniyor (product_groups)...")
			if dropErr := DB.Exec("ALTER TABLE products DROP CONSTRAINT IF EXISTS fk_products_group CASCADE").Error; dropErr != nil {
				log.Printf("Eski constraint kaldırılırken hata (devam ediliyor): %v", dropErr)
			}
			if fkErr := DB.Exec(`
				ALTER TABLE products
				ADD CONSTRAINT fk_products_group_cascade
				FOREIGN KEY (group_id) REFERENCES product_groups(id) ON DELETE CASCADE
			`).Error; fkErr != nil {
				log.Printf("Foreign key constraint eklenirken hata: %v", fkErr)
			} else {
				log.Println("Product cascade foreign key constraint başarıyla eklendi")
			}
		}
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}
